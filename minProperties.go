package boon

// evaluateMinProperties checks the minimum number of object members.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minproperties
func evaluateMinProperties(s *Schema, object map[string]any) *EvaluationError {
	if len(object) < s.MinProperties {
		return NewEvaluationError("minProperties", "min_properties_mismatch", "Value should have at least {min_properties} properties", map[string]any{
			"min_properties": s.MinProperties,
		})
	}
	return nil
}
