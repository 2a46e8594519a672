package boon

import "strconv"

// evaluateAnyOf validates the instance against the subschemas; at least one
// must succeed. Annotations merge only from the successful branches.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-anyof
func evaluateAnyOf(s *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	results := make([]*EvaluationResult, 0, len(s.AnyOf))
	anyValid := false

	for i, sub := range s.AnyOf {
		result, props, items := sub.evaluate(instance, ctx, loc.kw("anyOf", strconv.Itoa(i)))
		results = append(results, result)
		if result.IsValid() {
			anyValid = true
			mergeStringMaps(evaluatedProps, props)
			mergeIntMaps(evaluatedItems, items)
		}
	}

	if !anyValid {
		return results, NewEvaluationError("anyOf", "any_of_mismatch", "Value does not match any of the schemas")
	}
	return results, nil
}
