package boon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateStr(t *testing.T, schema, instance string) *EvaluationResult {
	t.Helper()
	sch := compileStr(t, schema)
	result, err := sch.Validate(mustUnmarshal(t, instance))
	require.NoError(t, err)
	return result
}

func TestValidateType(t *testing.T) {
	tests := []struct {
		schema   string
		instance string
		valid    bool
	}{
		{`{"type": "object"}`, `{}`, true},
		{`{"type": "object"}`, `[]`, false},
		{`{"type": "integer"}`, `1`, true},
		{`{"type": "integer"}`, `1.0`, true},
		{`{"type": "integer"}`, `1.5`, false},
		{`{"type": "number"}`, `1`, true},
		{`{"type": ["string", "null"]}`, `null`, true},
		{`{"type": ["string", "null"]}`, `12`, false},
	}
	for _, test := range tests {
		result := validateStr(t, test.schema, test.instance)
		assert.Equal(t, test.valid, result.IsValid(), "schema %s instance %s", test.schema, test.instance)
	}
}

func TestValidateEnumAndConst(t *testing.T) {
	// numbers compare by mathematical value
	assert.True(t, validateStr(t, `{"enum": [1, "a"]}`, `1.0`).IsValid())
	assert.False(t, validateStr(t, `{"enum": [1, "a"]}`, `2`).IsValid())
	assert.True(t, validateStr(t, `{"const": {"a": [1]}}`, `{"a": [1e0]}`).IsValid())
	assert.False(t, validateStr(t, `{"const": null}`, `0`).IsValid())
}

func TestValidateNumericExactDecimals(t *testing.T) {
	// floating point would report 0.0075 / 0.0001 as a non-integer
	assert.True(t, validateStr(t, `{"multipleOf": 0.0001}`, `0.0075`).IsValid())
	assert.False(t, validateStr(t, `{"multipleOf": 0.3}`, `1.0`).IsValid())
	assert.True(t, validateStr(t, `{"minimum": 1.1, "maximum": 1.2}`, `1.15`).IsValid())
	assert.False(t, validateStr(t, `{"exclusiveMinimum": 1.1}`, `1.1`).IsValid())
	assert.False(t, validateStr(t, `{"exclusiveMaximum": 1.1}`, `1.1`).IsValid())
	assert.True(t, validateStr(t, `{"exclusiveMaximum": 1.1}`, `1.09`).IsValid())
}

func TestValidateDraft4BooleanExclusive(t *testing.T) {
	schema := `{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"minimum": 3, "exclusiveMinimum": true
	}`
	assert.False(t, validateStr(t, schema, `3`).IsValid())
	assert.True(t, validateStr(t, schema, `4`).IsValid())
}

func TestValidateStringLengthInCodePoints(t *testing.T) {
	schema := `{"minLength": 3, "maxLength": 4}`
	assert.True(t, validateStr(t, schema, `"日本語"`).IsValid())
	assert.False(t, validateStr(t, schema, `"日本"`).IsValid())
	assert.True(t, validateStr(t, schema, `"héll"`).IsValid())
	assert.False(t, validateStr(t, schema, `"héllo"`).IsValid())
}

func TestValidatePatternUnanchored(t *testing.T) {
	schema := `{"pattern": "b.t"}`
	assert.True(t, validateStr(t, schema, `"rabbit's bat"`).IsValid())
	assert.False(t, validateStr(t, schema, `"bb"`).IsValid())
	assert.True(t, validateStr(t, schema, `12`).IsValid(), "non-string ignored")
}

func TestValidateUniqueItems(t *testing.T) {
	schema := `{"uniqueItems": true}`
	assert.False(t, validateStr(t, schema, `[1, 1.0]`).IsValid())
	assert.False(t, validateStr(t, schema, `[1, 1e0]`).IsValid())
	assert.True(t, validateStr(t, schema, `[1, 1.5]`).IsValid())
	assert.False(t, validateStr(t, schema, `[{"a": 1, "b": 2}, {"b": 2, "a": 1}]`).IsValid())
	assert.True(t, validateStr(t, schema, `[{"a": 1}, {"a": 2}]`).IsValid())
}

func TestValidateRequiredAndDependents(t *testing.T) {
	schema := `{
		"required": ["a"],
		"dependentRequired": {"b": ["c"]},
		"dependentSchemas": {"d": {"minProperties": 3}}
	}`
	assert.False(t, validateStr(t, schema, `{}`).IsValid())
	assert.True(t, validateStr(t, schema, `{"a": 1}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"a": 1, "b": 2}`).IsValid())
	assert.True(t, validateStr(t, schema, `{"a": 1, "b": 2, "c": 3}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"a": 1, "d": 2}`).IsValid())
	assert.True(t, validateStr(t, schema, `{"a": 1, "d": 2, "e": 3}`).IsValid())
}

func TestValidateProperties(t *testing.T) {
	schema := `{
		"properties": {"a": {"type": "string"}},
		"patternProperties": {"^n": {"type": "number"}},
		"additionalProperties": false
	}`
	assert.True(t, validateStr(t, schema, `{"a": "x", "n1": 5}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"a": 1}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"n1": "x"}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"other": 1}`).IsValid())
}

func TestValidatePropertyNames(t *testing.T) {
	schema := `{"propertyNames": {"maxLength": 2}}`
	assert.True(t, validateStr(t, schema, `{"ab": 1}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"abc": 1}`).IsValid())
}

func TestValidateItems2020(t *testing.T) {
	schema := `{
		"prefixItems": [{"type": "string"}, {"type": "number"}],
		"items": {"type": "boolean"}
	}`
	assert.True(t, validateStr(t, schema, `["a", 1, true, false]`).IsValid())
	assert.False(t, validateStr(t, schema, `["a", 1, "no"]`).IsValid())
	assert.False(t, validateStr(t, schema, `[1]`).IsValid())
	assert.True(t, validateStr(t, schema, `[]`).IsValid())
}

func TestValidateTupleItemsDraft7(t *testing.T) {
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"items": [{"type": "string"}],
		"additionalItems": {"type": "number"}
	}`
	assert.True(t, validateStr(t, schema, `["a", 1, 2]`).IsValid())
	assert.False(t, validateStr(t, schema, `["a", "b"]`).IsValid())
}

func TestValidateContains(t *testing.T) {
	schema := `{"contains": {"type": "integer"}, "minContains": 2, "maxContains": 3}`
	assert.False(t, validateStr(t, schema, `[1, "a"]`).IsValid())
	assert.True(t, validateStr(t, schema, `[1, 2, "a"]`).IsValid())
	assert.False(t, validateStr(t, schema, `[1, 2, 3, 4]`).IsValid())

	// minContains 0 accepts an array with no matches
	schema = `{"contains": {"type": "integer"}, "minContains": 0}`
	assert.True(t, validateStr(t, schema, `["a"]`).IsValid())
}

func TestValidateLogicalApplicators(t *testing.T) {
	assert.True(t, validateStr(t, `{"allOf": [{"minimum": 2}, {"maximum": 3}]}`, `2.5`).IsValid())
	assert.False(t, validateStr(t, `{"allOf": [{"minimum": 2}, {"maximum": 3}]}`, `4`).IsValid())

	assert.True(t, validateStr(t, `{"anyOf": [{"type": "string"}, {"minimum": 2}]}`, `3`).IsValid())
	assert.False(t, validateStr(t, `{"anyOf": [{"type": "string"}, {"minimum": 2}]}`, `1`).IsValid())

	assert.True(t, validateStr(t, `{"oneOf": [{"type": "integer"}, {"minimum": 2}]}`, `1`).IsValid())
	assert.False(t, validateStr(t, `{"oneOf": [{"type": "integer"}, {"minimum": 2}]}`, `3`).IsValid())
	assert.True(t, validateStr(t, `{"oneOf": [{"type": "integer"}, {"minimum": 2}]}`, `2.5`).IsValid())

	assert.True(t, validateStr(t, `{"not": {"type": "string"}}`, `1`).IsValid())
	assert.False(t, validateStr(t, `{"not": {"type": "string"}}`, `"x"`).IsValid())
}

func TestValidateConditional(t *testing.T) {
	schema := `{
		"if": {"properties": {"kind": {"const": "a"}}, "required": ["kind"]},
		"then": {"required": ["size"]},
		"else": {"required": ["name"]}
	}`
	assert.True(t, validateStr(t, schema, `{"kind": "a", "size": 1}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"kind": "a"}`).IsValid())
	assert.True(t, validateStr(t, schema, `{"kind": "b", "name": "x"}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"kind": "b"}`).IsValid())
}

func TestValidateLocalRef(t *testing.T) {
	schema := `{
		"properties": {"a": {"$ref": "#/$defs/str"}},
		"$defs": {"str": {"type": "string"}}
	}`
	assert.True(t, validateStr(t, schema, `{"a": "x"}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"a": 1}`).IsValid())
}

func TestValidateRefSiblingsIgnoredDraft7(t *testing.T) {
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"$ref": "#/definitions/str",
		"type": "number",
		"definitions": {"str": {"type": "string"}}
	}`
	// in draft-7 every sibling of $ref is ignored
	assert.True(t, validateStr(t, schema, `"x"`).IsValid())
	assert.False(t, validateStr(t, schema, `1`).IsValid())
}

func TestValidateRefSiblingsEvaluated2020(t *testing.T) {
	schema := `{
		"$ref": "#/$defs/str",
		"maxLength": 2,
		"$defs": {"str": {"type": "string"}}
	}`
	assert.True(t, validateStr(t, schema, `"ab"`).IsValid())
	assert.False(t, validateStr(t, schema, `"abc"`).IsValid())
}

func TestValidateCrossDocumentRef(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://x/main.json", mustUnmarshal(t, `{
		"properties": {"a": {"$ref": "other.json"}}
	}`)))
	require.NoError(t, c.AddResource("http://x/other.json", mustUnmarshal(t, `{"type": "string"}`)))

	sch, err := c.Compile("http://x/main.json")
	require.NoError(t, err)

	result, err := sch.Validate(mustUnmarshal(t, `{"a": "ok"}`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())

	result, err = sch.Validate(mustUnmarshal(t, `{"a": 1}`))
	require.NoError(t, err)
	assert.False(t, result.IsValid())
}

func TestValidateUnevaluatedProperties(t *testing.T) {
	schema := `{
		"allOf": [{"properties": {"a": true}}],
		"unevaluatedProperties": false
	}`
	assert.True(t, validateStr(t, schema, `{"a": 1}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"a": 1, "b": 2}`).IsValid())
}

func TestValidateUnevaluatedPropagatesThroughRef(t *testing.T) {
	schema := `{
		"$ref": "#/$defs/base",
		"unevaluatedProperties": false,
		"$defs": {"base": {"properties": {"a": true}}}
	}`
	assert.True(t, validateStr(t, schema, `{"a": 1}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"b": 1}`).IsValid())
}

func TestValidateUnevaluatedItems(t *testing.T) {
	schema := `{
		"allOf": [{"prefixItems": [true]}],
		"unevaluatedItems": false
	}`
	assert.True(t, validateStr(t, schema, `[1]`).IsValid())
	assert.False(t, validateStr(t, schema, `[1, 2]`).IsValid())
}

func TestValidateDynamicRef(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://x/list.json", mustUnmarshal(t, `{
		"$id": "http://x/list.json",
		"$defs": {"elements": {"$dynamicAnchor": "items"}},
		"type": "array",
		"items": {"$dynamicRef": "#items"}
	}`)))
	require.NoError(t, c.AddResource("http://x/strings.json", mustUnmarshal(t, `{
		"$id": "http://x/strings.json",
		"$ref": "list.json",
		"$defs": {"strict": {"$dynamicAnchor": "items", "type": "string"}}
	}`)))

	list, err := c.Compile("http://x/list.json")
	require.NoError(t, err)
	strict, err := c.Compile("http://x/strings.json")
	require.NoError(t, err)

	// without an outer dynamic anchor anything is accepted
	result, err := list.Validate(mustUnmarshal(t, `[1, "a"]`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())

	// the outer scope overrides the element schema
	result, err = strict.Validate(mustUnmarshal(t, `["a", "b"]`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())

	result, err = strict.Validate(mustUnmarshal(t, `["a", 1]`))
	require.NoError(t, err)
	assert.False(t, result.IsValid())
}

func TestValidateRecursiveRef2019(t *testing.T) {
	c := NewCompiler()
	require.NoError(t, c.AddResource("http://x/tree.json", mustUnmarshal(t, `{
		"$schema": "https://json-schema.org/draft/2019-09/schema",
		"$id": "http://x/tree.json",
		"$recursiveAnchor": true,
		"type": "object",
		"properties": {
			"data": true,
			"children": {"type": "array", "items": {"$recursiveRef": "#"}}
		}
	}`)))
	require.NoError(t, c.AddResource("http://x/strict-tree.json", mustUnmarshal(t, `{
		"$schema": "https://json-schema.org/draft/2019-09/schema",
		"$id": "http://x/strict-tree.json",
		"$recursiveAnchor": true,
		"$ref": "tree.json",
		"unevaluatedProperties": false
	}`)))

	strict, err := c.Compile("http://x/strict-tree.json")
	require.NoError(t, err)

	result, err := strict.Validate(mustUnmarshal(t, `{"children": [{"data": 1}]}`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())

	// the typo'd property in the nested node must be caught, which only
	// happens if the recursion re-enters the strict schema
	result, err = strict.Validate(mustUnmarshal(t, `{"children": [{"daat": 1}]}`))
	require.NoError(t, err)
	assert.False(t, result.IsValid())
}

func TestValidateCycleDetection(t *testing.T) {
	sch := compileStr(t, `{"$ref": "#"}`)

	_, err := sch.Validate(mustUnmarshal(t, `{"a": 1}`))
	var cerr *ValidationCycleError
	require.ErrorAs(t, err, &cerr)

	_, err = sch.IsValid(mustUnmarshal(t, `1`))
	require.ErrorAs(t, err, &cerr)
}

func TestIsValidFlagMode(t *testing.T) {
	sch := compileStr(t, `{"type": "object", "required": ["a"]}`)

	valid, err := sch.IsValid(mustUnmarshal(t, `{"a": 1}`))
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = sch.IsValid(mustUnmarshal(t, `[]`))
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestValidateFormatAnnotationVsAssertion(t *testing.T) {
	// formats are annotations by default in 2020-12
	assert.True(t, validateStr(t, `{"format": "ipv4"}`, `"999.1.1.1"`).IsValid())

	c := NewCompiler()
	c.AssertFormat = true
	require.NoError(t, c.AddResource("schema.json", mustUnmarshal(t, `{"format": "ipv4"}`)))
	sch, err := c.Compile("schema.json")
	require.NoError(t, err)

	result, err := sch.Validate(mustUnmarshal(t, `"999.1.1.1"`))
	require.NoError(t, err)
	assert.False(t, result.IsValid())

	result, err = sch.Validate(mustUnmarshal(t, `"127.0.0.1"`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}

func TestValidatePeriodFormat(t *testing.T) {
	c := NewCompiler()
	c.AssertFormat = true
	require.NoError(t, c.AddResource("schema.json", mustUnmarshal(t, `{"format": "period"}`)))
	sch, err := c.Compile("schema.json")
	require.NoError(t, err)

	result, err := sch.Validate(mustUnmarshal(t, `"1963-06-19T08:30:06Z/P4DT12H30M5S"`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())

	result, err = sch.Validate(mustUnmarshal(t, `"P4DT12H30M5S/P4DT12H30M5S"`))
	require.NoError(t, err)
	assert.False(t, result.IsValid())

	// non-string instances never fail format checks
	result, err = sch.Validate(mustUnmarshal(t, `12`))
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}

func TestValidateContentAssertion(t *testing.T) {
	schema := `{
		"contentEncoding": "base64",
		"contentMediaType": "application/json",
		"contentSchema": {"type": "object"}
	}`

	// annotation only by default
	assert.True(t, validateStr(t, schema, `"!!!not-base64!!!"`).IsValid())

	c := NewCompiler()
	c.AssertContent = true
	require.NoError(t, c.AddResource("schema.json", mustUnmarshal(t, schema)))
	sch, err := c.Compile("schema.json")
	require.NoError(t, err)

	valid, err := sch.Validate(mustUnmarshal(t, `"eyJhIjogMX0="`)) // {"a": 1}
	require.NoError(t, err)
	assert.True(t, valid.IsValid())

	// decode failure reports contentEncoding only
	result, err := sch.Validate(mustUnmarshal(t, `"!!!not-base64!!!"`))
	require.NoError(t, err)
	require.False(t, result.IsValid())
	assert.Contains(t, result.Errors, "contentEncoding")
	assert.NotContains(t, result.Errors, "contentMediaType")
	assert.NotContains(t, result.Errors, "contentSchema")

	// decoded but not an object
	result, err = sch.Validate(mustUnmarshal(t, `"WzFd"`)) // [1]
	require.NoError(t, err)
	require.False(t, result.IsValid())
	assert.Contains(t, result.Errors, "contentSchema")
}

func TestValidateDependenciesDraft7(t *testing.T) {
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"dependencies": {
			"a": ["b"],
			"c": {"required": ["d"]}
		}
	}`
	assert.True(t, validateStr(t, schema, `{}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"a": 1}`).IsValid())
	assert.True(t, validateStr(t, schema, `{"a": 1, "b": 2}`).IsValid())
	assert.False(t, validateStr(t, schema, `{"c": 1}`).IsValid())
	assert.True(t, validateStr(t, schema, `{"c": 1, "d": 2}`).IsValid())
}
