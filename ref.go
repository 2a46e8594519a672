package boon

// evaluateRef validates the instance against the targets of $ref,
// $recursiveRef and $dynamicRef.
//
// $ref always uses its statically resolved target. $recursiveRef (2019-09)
// searches the dynamic scope for the outermost schema whose resource
// declared $recursiveAnchor true. $dynamicRef (2020-12) searches the scope
// for the outermost resource declaring a matching $dynamicAnchor; compiled
// without such an anchor at its static target, it behaves exactly like $ref.
//
// Evaluated properties and items of the referenced schema merge back into
// the caller's sets for drafts >= 2019-09, on success and on failure alike.
func evaluateRef(s *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *validationContext, loc location) ([]*EvaluationResult, []*EvaluationError) {
	var results []*EvaluationResult
	var errors []*EvaluationError

	merge := func(props map[string]bool, items map[int]bool) {
		if s.draftVer >= 2019 {
			mergeStringMaps(evaluatedProps, props)
			mergeIntMaps(evaluatedItems, items)
		}
	}

	if s.Ref != nil {
		refResult, props, items := s.Ref.evaluate(instance, ctx, loc.kw("$ref"))
		results = append(results, refResult)
		if !refResult.IsValid() {
			errors = append(errors, NewEvaluationError("$ref", "ref_mismatch", "Value does not match the reference schema"))
		}
		merge(props, items)
	}

	if s.RecursiveRef != nil {
		target := s.RecursiveRef
		for _, frame := range ctx.scope {
			if frame.recursiveAnchorRef != nil {
				target = frame.recursiveAnchorRef
				break
			}
		}
		refResult, props, items := target.evaluate(instance, ctx, loc.kw("$recursiveRef"))
		results = append(results, refResult)
		if !refResult.IsValid() {
			errors = append(errors, NewEvaluationError("$recursiveRef", "recursive_ref_mismatch", "Value does not match the recursive reference schema"))
		}
		merge(props, items)
	}

	if s.DynamicRef != nil {
		target := s.DynamicRef
		if s.dynamicRefAnchor != "" {
			for _, frame := range ctx.scope {
				if t, ok := frame.dynamicAnchors[s.dynamicRefAnchor]; ok {
					target = t
					break
				}
			}
		}
		refResult, props, items := target.evaluate(instance, ctx, loc.kw("$dynamicRef"))
		results = append(results, refResult)
		if !refResult.IsValid() {
			errors = append(errors, NewEvaluationError("$dynamicRef", "dynamic_ref_mismatch", "Value does not match the dynamic reference schema"))
		}
		merge(props, items)
	}

	return results, errors
}
