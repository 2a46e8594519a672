package boon

import (
	"strconv"
	"strings"
)

// evaluateOneOf validates the instance against the subschemas; exactly one
// must succeed. The failure reports which indices matched so callers can
// tell zero matches from too many. Annotations come from the single
// successful branch.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-oneof
func evaluateOneOf(s *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	results := make([]*EvaluationResult, 0, len(s.OneOf))
	var matched []string
	var validProps map[string]bool
	var validItems map[int]bool

	for i, sub := range s.OneOf {
		result, props, items := sub.evaluate(instance, ctx, loc.kw("oneOf", strconv.Itoa(i)))
		results = append(results, result)
		if result.IsValid() {
			matched = append(matched, strconv.Itoa(i))
			validProps, validItems = props, items
		}
	}

	if len(matched) != 1 {
		return results, NewEvaluationError("oneOf", "one_of_mismatch", "Value should match exactly one schema but matched [{matched}]", map[string]any{
			"matched": strings.Join(matched, ", "),
		})
	}
	mergeStringMaps(evaluatedProps, validProps)
	mergeIntMaps(evaluatedItems, validItems)
	return results, nil
}
