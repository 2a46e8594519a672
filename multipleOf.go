package boon

import "math/big"

// evaluateMultipleOf checks that division by the "multipleOf" value yields
// an integer. The comparison uses exact decimal arithmetic; a floating-point
// fallback would mis-report values like 0.0075 / 0.0001.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-multipleof
func evaluateMultipleOf(s *Schema, value *Rat) *EvaluationError {
	if s.MultipleOf.Sign() <= 0 {
		return NewEvaluationError("multipleOf", "invalid_multiple_of", "Multiple of {multiple_of} should be greater than 0", map[string]any{
			"multiple_of": s.MultipleOf.Decimal(),
		})
	}
	quotient := new(big.Rat).Quo(value.Rat, s.MultipleOf.Rat)
	if !quotient.IsInt() {
		return NewEvaluationError("multipleOf", "not_multiple_of", "{value} should be a multiple of {multiple_of}", map[string]any{
			"multiple_of": s.MultipleOf.Decimal(),
			"value":       value.Decimal(),
		})
	}
	return nil
}
