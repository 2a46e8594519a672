package boon

// evaluateMaxProperties checks the maximum number of object members.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maxproperties
func evaluateMaxProperties(s *Schema, object map[string]any) *EvaluationError {
	if len(object) > s.MaxProperties {
		return NewEvaluationError("maxProperties", "max_properties_mismatch", "Value should have at most {max_properties} properties", map[string]any{
			"max_properties": s.MaxProperties,
		})
	}
	return nil
}
