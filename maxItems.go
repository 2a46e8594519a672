package boon

// evaluateMaxItems checks the maximum array size.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maxitems
func evaluateMaxItems(s *Schema, items []any) *EvaluationError {
	if len(items) > s.MaxItems {
		return NewEvaluationError("maxItems", "max_items_mismatch", "Value should have at most {max_items} items", map[string]any{
			"max_items": s.MaxItems,
		})
	}
	return nil
}
