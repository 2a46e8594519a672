package boon

import "strconv"

// evaluatePrefixItems positionally validates the array prefix. The compiler
// stores the array form of "items" from drafts before 2020-12 here as well, so the validator
// sees one shape across drafts.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-prefixitems
func evaluatePrefixItems(s *Schema, items []any, evaluatedItems map[int]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	var results []*EvaluationResult
	var invalid []string

	for i, sub := range s.PrefixItems {
		if i >= len(items) {
			break
		}
		result, _, _ := sub.evaluate(items[i], ctx, loc.kw("prefixItems", strconv.Itoa(i)).item(i))
		results = append(results, result)
		evaluatedItems[i] = true
		if !result.IsValid() {
			invalid = append(invalid, strconv.Itoa(i))
		}
	}

	if len(invalid) > 0 {
		return results, NewEvaluationError("prefixItems", "prefix_items_mismatch", "Items at indices {indices} do not match their schemas", map[string]any{
			"indices": quoteList(invalid),
		})
	}
	return results, nil
}
