package boon

// evaluateMinItems checks the minimum array size.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minitems
func evaluateMinItems(s *Schema, items []any) *EvaluationError {
	if len(items) < s.MinItems {
		return NewEvaluationError("minItems", "min_items_mismatch", "Value should have at least {min_items} items", map[string]any{
			"min_items": s.MinItems,
		})
	}
	return nil
}
