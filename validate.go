package boon

import (
	"strconv"

	"github.com/kaptinlin/jsonpointer"
)

// location carries the dynamic evaluation path and the instance location of
// the evaluation in flight.
type location struct {
	evalPath string
	instLoc  string
}

// kw extends the evaluation path with keyword segments.
func (l location) kw(segs ...string) location {
	l.evalPath += jsonpointer.Format(segs...)
	return l
}

// prop extends the instance location with an object key.
func (l location) prop(name string) location {
	l.instLoc += jsonpointer.Format(name)
	return l
}

// item extends the instance location with an array index.
func (l location) item(i int) location {
	l.instLoc += jsonpointer.Format(strconv.Itoa(i))
	return l
}

type visitKey struct {
	schema  *Schema
	instLoc string
}

// validationContext threads the dynamic scope, the cycle trap and the
// short-circuit mode through one validation call.
type validationContext struct {
	scope   []*Schema
	visited map[visitKey]struct{}
	flag    bool
}

func newValidationContext(flag bool) *validationContext {
	return &validationContext{
		visited: map[visitKey]struct{}{},
		flag:    flag,
	}
}

// Validate checks the instance against the schema, collecting every sibling
// failure into the outcome tree. The returned error is non-nil only for a
// validation cycle, which aborts the whole call.
func (s *Schema) Validate(instance any) (result *EvaluationResult, err error) {
	defer catchCycle(&err)
	res, _, _ := s.evaluate(instance, newValidationContext(false), location{})
	return res, nil
}

// IsValid is the flag-output fast path: it may stop at the first failure.
func (s *Schema) IsValid(instance any) (valid bool, err error) {
	defer catchCycle(&err)
	res, _, _ := s.evaluate(instance, newValidationContext(true), location{})
	return res.IsValid(), nil
}

func catchCycle(err *error) {
	if r := recover(); r != nil {
		if ce, ok := r.(*ValidationCycleError); ok {
			*err = ce
			return
		}
		panic(r)
	}
}

// evaluate runs one schema against one instance location. Keyword order is
// deterministic: assertions, then applicators, then references, then the
// unevaluated keywords last so they observe the full annotation set.
func (s *Schema) evaluate(instance any, ctx *validationContext, loc location) (*EvaluationResult, map[string]bool, map[int]bool) {
	key := visitKey{s, loc.instLoc}
	if _, ok := ctx.visited[key]; ok {
		panic(&ValidationCycleError{SchemaLocation: s.Location, InstanceLocation: loc.instLoc})
	}
	ctx.visited[key] = struct{}{}
	ctx.scope = append(ctx.scope, s)
	defer func() {
		delete(ctx.visited, key)
		ctx.scope = ctx.scope[:len(ctx.scope)-1]
	}()

	result := NewEvaluationResult(s).
		SetEvaluationPath(loc.evalPath).
		SetSchemaLocation(s.Location).
		SetInstanceLocation(loc.instLoc)

	evaluatedProps := make(map[string]bool)
	evaluatedItems := make(map[int]bool)

	if s.Bool != nil {
		if err := s.evaluateBoolean(instance, evaluatedProps, evaluatedItems); err != nil {
			result.AddError(err)
		}
		return result, evaluatedProps, evaluatedItems
	}

	// assertions: cheap rejects first
	s.evaluateAssertions(instance, result, ctx, loc)
	if ctx.flag && !result.IsValid() {
		return result, evaluatedProps, evaluatedItems
	}

	// applicators
	s.evaluateApplicators(instance, result, evaluatedProps, evaluatedItems, ctx, loc)
	if ctx.flag && !result.IsValid() {
		return result, evaluatedProps, evaluatedItems
	}

	// references
	refResults, refErrors := evaluateRef(s, instance, evaluatedProps, evaluatedItems, ctx, loc)
	for _, refResult := range refResults {
		result.AddDetail(refResult)
	}
	for _, refError := range refErrors {
		result.AddError(refError)
	}
	if ctx.flag && !result.IsValid() {
		return result, evaluatedProps, evaluatedItems
	}

	// unevaluated keywords observe everything above
	if s.UnevaluatedProperties != nil {
		unevalResults, unevalError := evaluateUnevaluatedProperties(s, instance, evaluatedProps, ctx, loc)
		for _, r := range unevalResults {
			result.AddDetail(r)
		}
		if unevalError != nil {
			result.AddError(unevalError)
		}
	}
	if s.UnevaluatedItems != nil {
		unevalResults, unevalError := evaluateUnevaluatedItems(s, instance, evaluatedItems, ctx, loc)
		for _, r := range unevalResults {
			result.AddDetail(r)
		}
		if unevalError != nil {
			result.AddError(unevalError)
		}
	}

	return result, evaluatedProps, evaluatedItems
}

func (s *Schema) evaluateBoolean(instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool) *EvaluationError {
	if *s.Bool {
		switch v := instance.(type) {
		case map[string]any:
			for key := range v {
				evaluatedProps[key] = true
			}
		case []any:
			for index := range v {
				evaluatedItems[index] = true
			}
		}
		return nil
	}
	return NewEvaluationError("schema", "false_schema_mismatch", "No values are allowed because the schema is set to 'false'")
}

func (s *Schema) evaluateAssertions(instance any, result *EvaluationResult, ctx *validationContext, loc location) {
	if s.Types != nil {
		if err := evaluateType(s, instance); err != nil {
			result.AddError(err)
			if ctx.flag {
				return
			}
		}
	}
	if s.Enum != nil {
		if err := evaluateEnum(s, instance); err != nil {
			result.AddError(err)
		}
	}
	if s.Const != nil {
		if err := evaluateConst(s, instance); err != nil {
			result.AddError(err)
		}
	}

	if isNumber(instance) {
		if value := NewRat(instance); value != nil {
			for _, err := range evaluateNumeric(s, value) {
				result.AddError(err)
			}
		}
	}

	if str, ok := instance.(string); ok {
		for _, err := range evaluateString(s, str) {
			result.AddError(err)
		}
	}

	if arr, ok := instance.([]any); ok {
		if s.MaxItems != -1 {
			if err := evaluateMaxItems(s, arr); err != nil {
				result.AddError(err)
			}
		}
		if s.MinItems != -1 {
			if err := evaluateMinItems(s, arr); err != nil {
				result.AddError(err)
			}
		}
		if s.UniqueItems {
			if err := evaluateUniqueItems(s, arr); err != nil {
				result.AddError(err)
			}
		}
	}

	if obj, ok := instance.(map[string]any); ok {
		if s.MaxProperties != -1 {
			if err := evaluateMaxProperties(s, obj); err != nil {
				result.AddError(err)
			}
		}
		if s.MinProperties != -1 {
			if err := evaluateMinProperties(s, obj); err != nil {
				result.AddError(err)
			}
		}
		if len(s.Required) > 0 {
			if err := evaluateRequired(s, obj); err != nil {
				result.AddError(err)
			}
		}
		if len(s.DependentRequired) > 0 {
			if err := evaluateDependentRequired(s, obj); err != nil {
				result.AddError(err)
			}
		}
	}

	if s.format != nil {
		if err := evaluateFormat(s, instance); err != nil {
			result.AddError(err)
		}
	}

	if s.ContentEncoding != "" || s.ContentMediaType != "" || s.ContentSchema != nil {
		contentResult, contentError := evaluateContent(s, instance, ctx, loc)
		if contentResult != nil {
			result.AddDetail(contentResult)
		}
		if contentError != nil {
			result.AddError(contentError)
		}
	}
}

// evaluateNumeric groups the validation of all numeric-specific keywords.
func evaluateNumeric(s *Schema, value *Rat) []*EvaluationError {
	var errors []*EvaluationError
	if s.MultipleOf != nil {
		if err := evaluateMultipleOf(s, value); err != nil {
			errors = append(errors, err)
		}
	}
	if s.Maximum != nil {
		if err := evaluateMaximum(s, value); err != nil {
			errors = append(errors, err)
		}
	}
	if s.ExclusiveMaximum != nil {
		if err := evaluateExclusiveMaximum(s, value); err != nil {
			errors = append(errors, err)
		}
	}
	if s.Minimum != nil {
		if err := evaluateMinimum(s, value); err != nil {
			errors = append(errors, err)
		}
	}
	if s.ExclusiveMinimum != nil {
		if err := evaluateExclusiveMinimum(s, value); err != nil {
			errors = append(errors, err)
		}
	}
	return errors
}

// evaluateString groups the validation of all string-specific keywords.
func evaluateString(s *Schema, value string) []*EvaluationError {
	var errors []*EvaluationError
	if s.MaxLength != -1 {
		if err := evaluateMaxLength(s, value); err != nil {
			errors = append(errors, err)
		}
	}
	if s.MinLength != -1 {
		if err := evaluateMinLength(s, value); err != nil {
			errors = append(errors, err)
		}
	}
	if s.Pattern != nil {
		if err := evaluatePattern(s, value); err != nil {
			errors = append(errors, err)
		}
	}
	return errors
}

func (s *Schema) evaluateApplicators(instance any, result *EvaluationResult, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *validationContext, loc location) {
	if s.AllOf != nil {
		allOfResults, allOfError := evaluateAllOf(s, instance, evaluatedProps, evaluatedItems, ctx, loc)
		for _, r := range allOfResults {
			result.AddDetail(r)
		}
		if allOfError != nil {
			result.AddError(allOfError)
		}
	}
	if s.AnyOf != nil {
		anyOfResults, anyOfError := evaluateAnyOf(s, instance, evaluatedProps, evaluatedItems, ctx, loc)
		for _, r := range anyOfResults {
			result.AddDetail(r)
		}
		if anyOfError != nil {
			result.AddError(anyOfError)
		}
	}
	if s.OneOf != nil {
		oneOfResults, oneOfError := evaluateOneOf(s, instance, evaluatedProps, evaluatedItems, ctx, loc)
		for _, r := range oneOfResults {
			result.AddDetail(r)
		}
		if oneOfError != nil {
			result.AddError(oneOfError)
		}
	}
	if s.Not != nil {
		notResult, notError := evaluateNot(s, instance, ctx, loc)
		if notResult != nil {
			result.AddDetail(notResult)
		}
		if notError != nil {
			result.AddError(notError)
		}
	}
	if s.If != nil {
		condResults, condError := evaluateConditional(s, instance, evaluatedProps, evaluatedItems, ctx, loc)
		for _, r := range condResults {
			result.AddDetail(r)
		}
		if condError != nil {
			result.AddError(condError)
		}
	}
	if s.DependentSchemas != nil {
		depResults, depError := evaluateDependentSchemas(s, instance, evaluatedProps, evaluatedItems, ctx, loc)
		for _, r := range depResults {
			result.AddDetail(r)
		}
		if depError != nil {
			result.AddError(depError)
		}
	}

	if obj, ok := instance.(map[string]any); ok {
		if s.Properties != nil {
			propResults, propError := evaluateProperties(s, obj, evaluatedProps, ctx, loc)
			for _, r := range propResults {
				result.AddDetail(r)
			}
			if propError != nil {
				result.AddError(propError)
			}
		}
		if s.PatternProperties != nil {
			patResults, patError := evaluatePatternProperties(s, obj, evaluatedProps, ctx, loc)
			for _, r := range patResults {
				result.AddDetail(r)
			}
			if patError != nil {
				result.AddError(patError)
			}
		}
		if s.AdditionalProperties != nil {
			addResults, addError := evaluateAdditionalProperties(s, obj, evaluatedProps, ctx, loc)
			for _, r := range addResults {
				result.AddDetail(r)
			}
			if addError != nil {
				result.AddError(addError)
			}
		}
		if s.PropertyNames != nil {
			nameResults, nameError := evaluatePropertyNames(s, obj, ctx, loc)
			for _, r := range nameResults {
				result.AddDetail(r)
			}
			if nameError != nil {
				result.AddError(nameError)
			}
		}
	}

	if arr, ok := instance.([]any); ok {
		if len(s.PrefixItems) > 0 {
			prefixResults, prefixError := evaluatePrefixItems(s, arr, evaluatedItems, ctx, loc)
			for _, r := range prefixResults {
				result.AddDetail(r)
			}
			if prefixError != nil {
				result.AddError(prefixError)
			}
		}
		if s.Items != nil {
			itemsResults, itemsError := evaluateItems(s, arr, evaluatedItems, ctx, loc)
			for _, r := range itemsResults {
				result.AddDetail(r)
			}
			if itemsError != nil {
				result.AddError(itemsError)
			}
		}
		if s.Contains != nil {
			containsResults, containsError := evaluateContains(s, arr, evaluatedItems, ctx, loc)
			for _, r := range containsResults {
				result.AddDetail(r)
			}
			if containsError != nil {
				result.AddError(containsError)
			}
		}
	}
}
