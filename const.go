package boon

// evaluateConst checks that the instance equals the constant value.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-const
func evaluateConst(s *Schema, instance any) *EvaluationError {
	if equals(instance, s.Const[0]) {
		return nil
	}
	return NewEvaluationError("const", "const_mismatch", "Value should be the constant value")
}
