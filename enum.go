package boon

// evaluateEnum checks that the instance equals one of the enumerated values,
// using structural json equality with exact numeric comparison.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-enum
func evaluateEnum(s *Schema, instance any) *EvaluationError {
	for _, value := range s.Enum {
		if equals(instance, value) {
			return nil
		}
	}
	return NewEvaluationError("enum", "enum_mismatch", "Value should be one of the allowed values")
}
