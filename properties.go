package boon

// evaluateProperties validates each instance member that has a schema under
// "properties". Every considered key joins the evaluated set so later
// unevaluatedProperties accounting can see it.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-properties
func evaluateProperties(s *Schema, object map[string]any, evaluatedProps map[string]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	var results []*EvaluationResult
	var invalid []string

	for _, name := range sortedKeys(s.Properties) {
		sub := s.Properties[name]
		value, present := object[name]
		if !present {
			continue
		}
		result, _, _ := sub.evaluate(value, ctx, loc.kw("properties", name).prop(name))
		results = append(results, result)
		evaluatedProps[name] = true
		if !result.IsValid() {
			invalid = append(invalid, name)
		}
	}

	if len(invalid) == 1 {
		return results, NewEvaluationError("properties", "property_mismatch", "Property {property} does not match the schema", map[string]any{
			"property": quoteList(invalid),
		})
	} else if len(invalid) > 1 {
		return results, NewEvaluationError("properties", "properties_mismatch", "Properties {properties} do not match their schemas", map[string]any{
			"properties": quoteList(invalid),
		})
	}
	return results, nil
}
