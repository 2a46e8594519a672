package boon

import "strconv"

// evaluateUnevaluatedItems applies to array positions that no sibling
// applicator or reference considered, and marks them evaluated for callers
// further out.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-unevaluateditems
func evaluateUnevaluatedItems(s *Schema, instance any, evaluatedItems map[int]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	items, ok := instance.([]any)
	if !ok {
		return nil, nil
	}

	var results []*EvaluationResult
	var invalid []string

	for i, item := range items {
		if evaluatedItems[i] {
			continue
		}
		result, _, _ := s.UnevaluatedItems.evaluate(item, ctx, loc.kw("unevaluatedItems").item(i))
		results = append(results, result)
		evaluatedItems[i] = true
		if !result.IsValid() {
			invalid = append(invalid, strconv.Itoa(i))
		}
	}

	if len(invalid) > 0 {
		return results, NewEvaluationError("unevaluatedItems", "unevaluated_items_mismatch", "Items at indices {indices} do not match the unevaluatedItems schema", map[string]any{
			"indices": quoteList(invalid),
		})
	}
	return results, nil
}
