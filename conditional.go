package boon

// evaluateConditional applies if/then/else. The "if" outcome is control
// flow only, never a user-visible error; whichever of "then" or "else" runs
// contributes to the outcome. Evaluated properties and items merge from
// every branch that succeeded.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-if
func evaluateConditional(s *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *validationContext, loc location) ([]*EvaluationResult, *EvaluationError) {
	ifResult, ifProps, ifItems := s.If.evaluate(instance, ctx, loc.kw("if"))
	results := []*EvaluationResult{ifResult}

	if ifResult.IsValid() {
		mergeStringMaps(evaluatedProps, ifProps)
		mergeIntMaps(evaluatedItems, ifItems)

		if s.Then != nil {
			thenResult, thenProps, thenItems := s.Then.evaluate(instance, ctx, loc.kw("then"))
			results = append(results, thenResult)
			if !thenResult.IsValid() {
				return results, NewEvaluationError("then", "if_then_mismatch", "Value meets the 'if' condition but does not match the 'then' schema")
			}
			mergeStringMaps(evaluatedProps, thenProps)
			mergeIntMaps(evaluatedItems, thenItems)
		}
		return results, nil
	}

	if s.Else != nil {
		elseResult, elseProps, elseItems := s.Else.evaluate(instance, ctx, loc.kw("else"))
		results = append(results, elseResult)
		if !elseResult.IsValid() {
			return results, NewEvaluationError("else", "if_else_mismatch", "Value fails the 'if' condition and does not match the 'else' schema")
		}
		mergeStringMaps(evaluatedProps, elseProps)
		mergeIntMaps(evaluatedItems, elseItems)
	}
	return results, nil
}
