package boon

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/go-i18n"
)

// EvaluationError represents a single keyword failure during validation.
type EvaluationError struct {
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// NewEvaluationError creates a new evaluation error with the specified details.
func NewEvaluationError(keyword string, code string, message string, params ...map[string]any) *EvaluationError {
	e := &EvaluationError{
		Keyword: keyword,
		Code:    code,
		Message: message,
	}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

func (e *EvaluationError) Error() string {
	return replace(e.Message, e.Params)
}

// Localize returns a localized error message using the provided localizer.
func (e *EvaluationError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(e.Code, i18n.Vars(e.Params))
	}
	return e.Error()
}

// replace substitutes {placeholder} markers in a template with parameter values.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}
	return template
}

// Flag is the flag output format: just validity.
type Flag struct {
	Valid bool `json:"valid"`
}

// List is the list output format. Produced hierarchical it is the detailed
// format; produced flat it is the basic format.
type List struct {
	Valid            bool              `json:"valid"`
	EvaluationPath   string            `json:"evaluationPath"`
	SchemaLocation   string            `json:"schemaLocation"`
	InstanceLocation string            `json:"instanceLocation"`
	Annotations      map[string]any    `json:"annotations,omitempty"`
	Errors           map[string]string `json:"errors,omitempty"`
	Details          []List            `json:"details,omitempty"`
}

// EvaluationResult is the outcome tree of one schema evaluation.
type EvaluationResult struct {
	schema           *Schema
	Valid            bool                        `json:"valid"`
	EvaluationPath   string                      `json:"evaluationPath"`
	SchemaLocation   string                      `json:"schemaLocation"`
	InstanceLocation string                      `json:"instanceLocation"`
	Annotations      map[string]any              `json:"annotations,omitempty"`
	Errors           map[string]*EvaluationError `json:"errors,omitempty"`
	Details          []*EvaluationResult         `json:"details,omitempty"`
}

// NewEvaluationResult creates a valid result for the given schema and
// collects its annotation keywords.
func NewEvaluationResult(schema *Schema) *EvaluationResult {
	e := &EvaluationResult{
		schema: schema,
		Valid:  true,
	}
	e.collectAnnotations()
	return e
}

func (e *EvaluationResult) collectAnnotations() {
	s := e.schema
	if s == nil {
		return
	}
	add := func(keyword string, value any) {
		if e.Annotations == nil {
			e.Annotations = make(map[string]any)
		}
		e.Annotations[keyword] = value
	}
	if s.Title != "" {
		add("title", s.Title)
	}
	if s.Description != "" {
		add("description", s.Description)
	}
	if s.Default != nil {
		add("default", s.Default)
	}
	if s.Deprecated {
		add("deprecated", true)
	}
	if s.ReadOnly {
		add("readOnly", true)
	}
	if s.WriteOnly {
		add("writeOnly", true)
	}
	if s.Examples != nil {
		add("examples", s.Examples)
	}
	if s.Format != "" {
		add("format", s.Format)
	}
}

// SetEvaluationPath sets the dynamic evaluation path for this result.
func (e *EvaluationResult) SetEvaluationPath(path string) *EvaluationResult {
	e.EvaluationPath = path
	return e
}

// SetSchemaLocation sets the absolute keyword location for this result.
func (e *EvaluationResult) SetSchemaLocation(location string) *EvaluationResult {
	e.SchemaLocation = location
	return e
}

// SetInstanceLocation sets the instance location for this result.
func (e *EvaluationResult) SetInstanceLocation(location string) *EvaluationResult {
	e.InstanceLocation = location
	return e
}

// IsValid reports whether this result is valid.
func (e *EvaluationResult) IsValid() bool {
	return e.Valid
}

// AddError records a keyword failure and marks the result invalid.
func (e *EvaluationResult) AddError(err *EvaluationError) *EvaluationResult {
	if e.Errors == nil {
		e.Errors = make(map[string]*EvaluationError)
	}
	e.Valid = false
	e.Errors[err.Keyword] = err
	return e
}

// AddDetail appends a child result.
func (e *EvaluationResult) AddDetail(detail *EvaluationResult) *EvaluationResult {
	e.Details = append(e.Details, detail)
	return e
}

// AddAnnotation records an annotation produced by a keyword.
func (e *EvaluationResult) AddAnnotation(keyword string, annotation any) *EvaluationResult {
	if e.Annotations == nil {
		e.Annotations = make(map[string]any)
	}
	e.Annotations[keyword] = annotation
	return e
}

// ToFlag converts the result to the flag output format.
func (e *EvaluationResult) ToFlag() *Flag {
	return &Flag{Valid: e.Valid}
}

// ToList converts the result to list output. With hierarchy (the default)
// this is the detailed format; without, details are flattened into the basic
// format.
func (e *EvaluationResult) ToList(includeHierarchy ...bool) *List {
	hierarchyIncluded := true
	if len(includeHierarchy) > 0 {
		hierarchyIncluded = includeHierarchy[0]
	}
	return e.ToLocalizeList(nil, hierarchyIncluded)
}

// ToLocalizeList is ToList with error messages rendered by localizer.
func (e *EvaluationResult) ToLocalizeList(localizer *i18n.Localizer, includeHierarchy ...bool) *List {
	hierarchyIncluded := true
	if len(includeHierarchy) > 0 {
		hierarchyIncluded = includeHierarchy[0]
	}

	list := &List{
		Valid:            e.Valid,
		EvaluationPath:   e.EvaluationPath,
		SchemaLocation:   e.SchemaLocation,
		InstanceLocation: e.InstanceLocation,
		Annotations:      e.Annotations,
		Errors:           e.convertErrors(localizer),
	}

	if hierarchyIncluded {
		for _, detail := range e.Details {
			childList := detail.ToLocalizeList(localizer, true)
			list.Details = append(list.Details, *childList)
		}
	} else {
		e.flattenDetailsToList(localizer, list, e.Details)
	}

	return list
}

func (e *EvaluationResult) flattenDetailsToList(localizer *i18n.Localizer, list *List, details []*EvaluationResult) {
	for _, detail := range details {
		flatDetail := List{
			Valid:            detail.Valid,
			EvaluationPath:   detail.EvaluationPath,
			SchemaLocation:   detail.SchemaLocation,
			InstanceLocation: detail.InstanceLocation,
			Annotations:      detail.Annotations,
			Errors:           detail.convertErrors(localizer),
		}
		list.Details = append(list.Details, flatDetail)

		if len(detail.Details) > 0 {
			e.flattenDetailsToList(localizer, list, detail.Details)
		}
	}
}

func (e *EvaluationResult) convertErrors(localizer *i18n.Localizer) map[string]string {
	if len(e.Errors) == 0 {
		return nil
	}
	errors := make(map[string]string, len(e.Errors))
	for key, err := range e.Errors {
		if localizer != nil {
			errors[key] = err.Localize(localizer)
		} else {
			errors[key] = err.Error()
		}
	}
	return errors
}
