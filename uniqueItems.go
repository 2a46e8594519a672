package boon

import (
	"fmt"
	"strings"
)

// evaluateUniqueItems checks that no two array elements are structurally
// equal. Equality follows json semantics: object member order is
// irrelevant, and numbers compare by exact decimal value, so 1, 1.0 and 1e0
// are duplicates of each other.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-uniqueitems
func evaluateUniqueItems(s *Schema, items []any) *EvaluationError {
	var duplicates []string
	for i := 1; i < len(items); i++ {
		for j := 0; j < i; j++ {
			if equals(items[i], items[j]) {
				duplicates = append(duplicates, fmt.Sprintf("(%d, %d)", j, i))
			}
		}
	}
	if len(duplicates) > 0 {
		return NewEvaluationError("uniqueItems", "unique_items_mismatch", "Found duplicates at the following index pairs: {duplicates}", map[string]any{
			"duplicates": strings.Join(duplicates, ", "),
		})
	}
	return nil
}
