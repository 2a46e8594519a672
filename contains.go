package boon

// evaluateContains counts array elements matching the contains schema and
// checks the count against minContains (default 1) and maxContains
// (default unbounded). From draft 2020-12 on, matching indices join the
// evaluated set.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-contains
func evaluateContains(s *Schema, items []any, evaluatedItems map[int]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	var results []*EvaluationResult
	validCount := 0

	for i, item := range items {
		result, _, _ := s.Contains.evaluate(item, ctx, loc.kw("contains").item(i))
		results = append(results, result)
		if result.IsValid() {
			validCount++
			if s.containsEval {
				evaluatedItems[i] = true
			}
		}
	}

	if validCount < s.MinContains {
		return results, NewEvaluationError("contains", "contains_too_few_items", "Value should contain at least {min_contains} matching items but found {count}", map[string]any{
			"min_contains": s.MinContains,
			"count":        validCount,
		})
	}
	if s.MaxContains != -1 && validCount > s.MaxContains {
		return results, NewEvaluationError("maxContains", "contains_too_many_items", "Value should contain at most {max_contains} matching items but found {count}", map[string]any{
			"max_contains": s.MaxContains,
			"count":        validCount,
		})
	}
	return results, nil
}
