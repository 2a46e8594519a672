package boon

// evaluateMaximum checks the inclusive upper bound.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maximum
func evaluateMaximum(s *Schema, value *Rat) *EvaluationError {
	if value.Cmp(s.Maximum.Rat) > 0 {
		return NewEvaluationError("maximum", "maximum_mismatch", "{value} should be at most {maximum}", map[string]any{
			"maximum": s.Maximum.Decimal(),
			"value":   value.Decimal(),
		})
	}
	return nil
}
