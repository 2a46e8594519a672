package boon

// evaluateUnevaluatedProperties applies to object members that no sibling
// applicator or reference considered. It runs last within a schema so the
// evaluated set it observes is complete; the members it checks then join
// that set for any caller further out.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-unevaluatedproperties
func evaluateUnevaluatedProperties(s *Schema, instance any, evaluatedProps map[string]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	object, ok := instance.(map[string]any)
	if !ok {
		return nil, nil
	}

	var results []*EvaluationResult
	var invalid []string

	for _, name := range sortedKeys(object) {
		value := object[name]
		if evaluatedProps[name] {
			continue
		}
		result, _, _ := s.UnevaluatedProperties.evaluate(value, ctx, loc.kw("unevaluatedProperties").prop(name))
		results = append(results, result)
		evaluatedProps[name] = true
		if !result.IsValid() {
			invalid = append(invalid, name)
		}
	}

	if len(invalid) > 0 {
		return results, NewEvaluationError("unevaluatedProperties", "unevaluated_properties_mismatch", "Properties {properties} do not match the unevaluatedProperties schema", map[string]any{
			"properties": quoteList(invalid),
		})
	}
	return results, nil
}
