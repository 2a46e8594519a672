package boon

// evaluateDependentSchemas applies each dependent schema whose trigger
// property is present in the instance. The compiler also routes the schema
// form of draft-7 "dependencies" here.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-dependentschemas
func evaluateDependentSchemas(s *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	object, ok := instance.(map[string]any)
	if !ok {
		return nil, nil
	}

	var results []*EvaluationResult
	var invalid []string

	for _, trigger := range sortedKeys(s.DependentSchemas) {
		sub := s.DependentSchemas[trigger]
		if _, present := object[trigger]; !present {
			continue
		}
		result, props, items := sub.evaluate(instance, ctx, loc.kw("dependentSchemas", trigger))
		results = append(results, result)
		if result.IsValid() {
			mergeStringMaps(evaluatedProps, props)
			mergeIntMaps(evaluatedItems, items)
		} else {
			invalid = append(invalid, trigger)
		}
	}

	if len(invalid) > 0 {
		return results, NewEvaluationError("dependentSchemas", "dependent_schemas_mismatch", "Value does not match the dependent schemas of {properties}", map[string]any{
			"properties": quoteList(invalid),
		})
	}
	return results, nil
}
