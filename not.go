package boon

// evaluateNot succeeds iff the subschema validation fails. It contributes no
// annotations either way.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-not
func evaluateNot(s *Schema, instance any, ctx *validationContext, loc location) (*EvaluationResult, *EvaluationError) {
	result, _, _ := s.Not.evaluate(instance, ctx, loc.kw("not"))
	if result.IsValid() {
		return result, NewEvaluationError("not", "not_mismatch", "Value matches the schema it should not match")
	}
	return result, nil
}
