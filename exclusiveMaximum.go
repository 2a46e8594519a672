package boon

// evaluateExclusiveMaximum checks the exclusive upper bound. In draft-4 the
// keyword is a boolean modifier of maximum; the compiler normalizes that
// form into this one.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-exclusivemaximum
func evaluateExclusiveMaximum(s *Schema, value *Rat) *EvaluationError {
	if value.Cmp(s.ExclusiveMaximum.Rat) >= 0 {
		return NewEvaluationError("exclusiveMaximum", "exclusive_maximum_mismatch", "{value} should be less than {maximum}", map[string]any{
			"maximum": s.ExclusiveMaximum.Decimal(),
			"value":   value.Decimal(),
		})
	}
	return nil
}
