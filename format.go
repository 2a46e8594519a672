package boon

// evaluateFormat asserts the format keyword. The compiler resolves the
// validator only when the draft and configuration call for assertion;
// otherwise the keyword is annotation-only and never reaches here. Format
// validators ignore instances of types they do not apply to.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-format
func evaluateFormat(s *Schema, instance any) *EvaluationError {
	if s.format(instance) {
		return nil
	}
	return NewEvaluationError("format", "format_mismatch", "Value does not match format {format}", map[string]any{
		"format": "'" + s.Format + "'",
	})
}
