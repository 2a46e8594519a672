package boon

// evaluateDependentRequired checks that when a trigger property is present,
// every property it depends on is present too. The compiler also routes the
// array form of draft-7 "dependencies" here.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-dependentrequired
func evaluateDependentRequired(s *Schema, object map[string]any) *EvaluationError {
	for _, trigger := range sortedKeys(s.DependentRequired) {
		required := s.DependentRequired[trigger]
		if _, ok := object[trigger]; !ok {
			continue
		}
		var missing []string
		for _, name := range required {
			if _, ok := object[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return NewEvaluationError("dependentRequired", "dependent_required_missing", "Properties {properties} are required when {trigger} is present", map[string]any{
				"trigger":    "'" + trigger + "'",
				"properties": quoteList(missing),
			})
		}
	}
	return nil
}
