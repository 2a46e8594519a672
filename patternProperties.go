package boon

// evaluatePatternProperties validates instance members whose names match a
// patternProperties regex. A key matching several patterns is validated
// against each of them, and joins the evaluated set regardless of outcome.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-patternproperties
func evaluatePatternProperties(s *Schema, object map[string]any, evaluatedProps map[string]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	var results []*EvaluationResult
	var invalid []string

	for _, pattern := range sortedKeys(s.PatternProperties) {
		sub := s.PatternProperties[pattern]
		re := s.patternRegexps[pattern]
		for _, name := range sortedKeys(object) {
			value := object[name]
			if !re.MatchString(name) {
				continue
			}
			result, _, _ := sub.evaluate(value, ctx, loc.kw("patternProperties", pattern).prop(name))
			results = append(results, result)
			evaluatedProps[name] = true
			if !result.IsValid() {
				invalid = append(invalid, name)
			}
		}
	}

	if len(invalid) > 0 {
		return results, NewEvaluationError("patternProperties", "pattern_properties_mismatch", "Properties {properties} do not match their pattern schemas", map[string]any{
			"properties": quoteList(invalid),
		})
	}
	return results, nil
}
