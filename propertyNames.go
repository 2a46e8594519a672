package boon

// evaluatePropertyNames validates every member name of the object, as a
// string instance, against the propertyNames schema.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-propertynames
func evaluatePropertyNames(s *Schema, object map[string]any, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	var results []*EvaluationResult
	var invalid []string

	for _, name := range sortedKeys(object) {
		result, _, _ := s.PropertyNames.evaluate(name, ctx, loc.kw("propertyNames").prop(name))
		results = append(results, result)
		if !result.IsValid() {
			invalid = append(invalid, name)
		}
	}

	if len(invalid) > 0 {
		return results, NewEvaluationError("propertyNames", "property_names_mismatch", "Property names {properties} do not match the schema", map[string]any{
			"properties": quoteList(invalid),
		})
	}
	return results, nil
}
