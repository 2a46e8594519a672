package boon

// evaluateMinimum checks the inclusive lower bound.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minimum
func evaluateMinimum(s *Schema, value *Rat) *EvaluationError {
	if value.Cmp(s.Minimum.Rat) < 0 {
		return NewEvaluationError("minimum", "minimum_mismatch", "{value} should be at least {minimum}", map[string]any{
			"minimum": s.Minimum.Decimal(),
			"value":   value.Decimal(),
		})
	}
	return nil
}
