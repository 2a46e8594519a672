package boon

// evaluateExclusiveMinimum checks the exclusive lower bound. In draft-4 the
// keyword is a boolean modifier of minimum; the compiler normalizes that
// form into this one.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-exclusiveminimum
func evaluateExclusiveMinimum(s *Schema, value *Rat) *EvaluationError {
	if value.Cmp(s.ExclusiveMinimum.Rat) <= 0 {
		return NewEvaluationError("exclusiveMinimum", "exclusive_minimum_mismatch", "{value} should be greater than {minimum}", map[string]any{
			"minimum": s.ExclusiveMinimum.Decimal(),
			"value":   value.Decimal(),
		})
	}
	return nil
}
