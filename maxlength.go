package boon

// evaluateMaxLength checks the maximum string length, measured in Unicode
// code points rather than bytes.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maxlength
func evaluateMaxLength(s *Schema, value string) *EvaluationError {
	if lenCodePoints(value) > s.MaxLength {
		return NewEvaluationError("maxLength", "max_length_mismatch", "Value should be at most {max_length} characters", map[string]any{
			"max_length": s.MaxLength,
		})
	}
	return nil
}
