package boon

// evaluatePattern matches the string against the compiled pattern. Patterns
// are not implicitly anchored.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-pattern
func evaluatePattern(s *Schema, value string) *EvaluationError {
	if !s.Pattern.MatchString(value) {
		return NewEvaluationError("pattern", "pattern_mismatch", "Value does not match the required pattern {pattern}", map[string]any{
			"pattern": s.patternString,
		})
	}
	return nil
}
