package boon

import (
	"strconv"
	"strings"
)

// evaluateAllOf validates the instance against every subschema; all must
// succeed. Evaluated properties and items merge from the successful
// branches.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-allof
func evaluateAllOf(s *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	results := make([]*EvaluationResult, 0, len(s.AllOf))
	var invalid []string

	for i, sub := range s.AllOf {
		result, props, items := sub.evaluate(instance, ctx, loc.kw("allOf", strconv.Itoa(i)))
		results = append(results, result)
		if result.IsValid() {
			mergeStringMaps(evaluatedProps, props)
			mergeIntMaps(evaluatedItems, items)
		} else {
			invalid = append(invalid, strconv.Itoa(i))
		}
	}

	if len(invalid) > 0 {
		return results, NewEvaluationError("allOf", "all_of_mismatch", "Value does not match the schemas at indices {indices}", map[string]any{
			"indices": strings.Join(invalid, ", "),
		})
	}
	return results, nil
}
