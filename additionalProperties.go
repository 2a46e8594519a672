package boon

// evaluateAdditionalProperties validates the members left over after
// "properties" and "patternProperties": keys named by neither, whatever the
// outcome of those keywords was for the rest.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-additionalproperties
func evaluateAdditionalProperties(s *Schema, object map[string]any, evaluatedProps map[string]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	var results []*EvaluationResult
	var invalid []string

	for _, name := range sortedKeys(object) {
		value := object[name]
		if _, ok := s.Properties[name]; ok {
			continue
		}
		matched := false
		for _, re := range s.patternRegexps {
			if re.MatchString(name) {
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		result, _, _ := s.AdditionalProperties.evaluate(value, ctx, loc.kw("additionalProperties").prop(name))
		results = append(results, result)
		evaluatedProps[name] = true
		if !result.IsValid() {
			invalid = append(invalid, name)
		}
	}

	if len(invalid) > 0 {
		return results, NewEvaluationError("additionalProperties", "additional_properties_mismatch", "Additional properties {properties} do not match the schema", map[string]any{
			"properties": quoteList(invalid),
		})
	}
	return results, nil
}
