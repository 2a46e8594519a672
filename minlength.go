package boon

// evaluateMinLength checks the minimum string length, measured in Unicode
// code points rather than bytes.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minlength
func evaluateMinLength(s *Schema, value string) *EvaluationError {
	if lenCodePoints(value) < s.MinLength {
		return NewEvaluationError("minLength", "min_length_mismatch", "Value should be at least {min_length} characters", map[string]any{
			"min_length": s.MinLength,
		})
	}
	return nil
}
