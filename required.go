package boon

import "strings"

// evaluateRequired checks that every required property is present.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-required
func evaluateRequired(s *Schema, object map[string]any) *EvaluationError {
	var missing []string
	for _, name := range s.Required {
		if _, ok := object[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if len(missing) == 1 {
		return NewEvaluationError("required", "required_property_missing", "Required property {property} is missing", map[string]any{
			"property": quoteList(missing),
		})
	}
	return NewEvaluationError("required", "required_properties_missing", "Required properties {properties} are missing", map[string]any{
		"properties": quoteList(missing),
	})
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return strings.Join(quoted, ", ")
}
