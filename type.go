package boon

import "strings"

// evaluateType checks the instance's runtime type against the "type"
// keyword. "integer" additionally accepts numbers whose exact decimal value
// has no fractional part, so 1.0 is an integer.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-type
func evaluateType(s *Schema, instance any) *EvaluationError {
	instanceType := jsonType(instance)
	for _, t := range s.Types {
		if t == instanceType {
			return nil
		}
		if t == "number" && instanceType == "integer" {
			return nil
		}
	}
	return NewEvaluationError("type", "type_mismatch", "Value is {received} but should be {expected}", map[string]any{
		"received": instanceType,
		"expected": strings.Join(s.Types, " or "),
	})
}
