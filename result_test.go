package boon

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultOutputFormats(t *testing.T) {
	sch := compileStr(t, `{
		"type": "object",
		"properties": {"a": {"type": "string"}},
		"required": ["a", "b"]
	}`)

	result, err := sch.Validate(mustUnmarshal(t, `{"a": 1}`))
	require.NoError(t, err)
	require.False(t, result.IsValid())

	flag := result.ToFlag()
	assert.False(t, flag.Valid)

	detailed := result.ToList()
	assert.False(t, detailed.Valid)
	assert.NotEmpty(t, detailed.Errors)
	require.NotEmpty(t, detailed.Details)
	assert.Equal(t, "/properties/a", detailed.Details[0].EvaluationPath)
	assert.Equal(t, "/a", detailed.Details[0].InstanceLocation)
	assert.Contains(t, detailed.Details[0].SchemaLocation, "#/properties/a")

	// basic output flattens every nested detail to depth one
	basic := result.ToList(false)
	for _, detail := range basic.Details {
		assert.Empty(t, detail.Details)
	}
}

func TestResultDeterministicOutput(t *testing.T) {
	schema := `{
		"properties": {
			"a": {"type": "string"},
			"b": {"type": "string"},
			"c": {"type": "string"}
		},
		"additionalProperties": false
	}`
	instance := `{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5}`

	marshal := func() string {
		result := validateStr(t, schema, instance)
		data, err := json.Marshal(result.ToList())
		require.NoError(t, err)
		return string(data)
	}

	first := marshal()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, marshal())
	}
}

func TestResultLocalizedErrors(t *testing.T) {
	bundle, err := I18n()
	require.NoError(t, err)
	localizer := bundle.NewLocalizer("zh-Hans")

	sch := compileStr(t, `{"type": "object"}`)
	result, err := sch.Validate(mustUnmarshal(t, `12`))
	require.NoError(t, err)
	require.False(t, result.IsValid())

	list := result.ToLocalizeList(localizer)
	require.Contains(t, list.Errors, "type")
	assert.NotEmpty(t, list.Errors["type"])
	assert.NotEqual(t, result.ToList().Errors["type"], list.Errors["type"])
}

func TestResultAnnotations(t *testing.T) {
	sch := compileStr(t, `{
		"title": "Person",
		"description": "A person record",
		"type": "object"
	}`)

	result, err := sch.Validate(mustUnmarshal(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, "Person", result.Annotations["title"])
	assert.Equal(t, "A person record", result.Annotations["description"])
}

func TestEvaluationErrorInterpolation(t *testing.T) {
	err := NewEvaluationError("minimum", "minimum_mismatch", "{value} should be at least {minimum}", map[string]any{
		"minimum": "3",
		"value":   "2",
	})
	assert.Equal(t, "2 should be at least 3", err.Error())
}
