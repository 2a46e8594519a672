package boon

import "strconv"

// evaluateItems validates array positions beyond the prefix, whether the
// source draft spelled that "items" (2020-12, or the schema form in earlier
// drafts) or "additionalItems".
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-items
func evaluateItems(s *Schema, items []any, evaluatedItems map[int]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	var results []*EvaluationResult
	var invalid []string

	for i := len(s.PrefixItems); i < len(items); i++ {
		result, _, _ := s.Items.evaluate(items[i], ctx, loc.kw(s.itemsKeyword).item(i))
		results = append(results, result)
		evaluatedItems[i] = true
		if !result.IsValid() {
			invalid = append(invalid, strconv.Itoa(i))
		}
	}

	if len(invalid) > 0 {
		return results, NewEvaluationError(s.itemsKeyword, "items_mismatch", "Items at indices {indices} do not match the schema", map[string]any{
			"indices": quoteList(invalid),
		})
	}
	return results, nil
}
