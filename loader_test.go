package boon

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONPreservesNumbers(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`{"n": 0.0075}`))
	require.NoError(t, err)

	obj := doc.(map[string]any)
	num, ok := obj["n"].(json.Number)
	require.True(t, ok, "numbers must decode as json.Number")
	assert.Equal(t, "0.0075", num.String())
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{} []`))
	assert.Error(t, err)
}

func TestSchemeURLLoaderDispatch(t *testing.T) {
	loader := SchemeURLLoader{}
	_, err := loader.Load("ftp://x/s.json")
	var serr *UnsupportedURLSchemeError
	require.ErrorAs(t, err, &serr)
}

func TestLoaderCachesDocuments(t *testing.T) {
	calls := 0
	c := NewCompiler()
	c.UseLoader(loaderFunc(func(u string) (any, error) {
		calls++
		return map[string]any{"type": "string"}, nil
	}))

	_, err := c.Compile("http://x/a.json")
	require.NoError(t, err)
	_, err = c.Compile("http://x/a.json")
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "each url is fetched at most once")
}

type loaderFunc func(url string) (any, error)

func (f loaderFunc) Load(url string) (any, error) { return f(url) }

func TestLoadURLErrorWrapsCause(t *testing.T) {
	c := NewCompiler()
	_, err := c.Compile("does-not-exist.json")
	var lerr *LoadURLError
	require.ErrorAs(t, err, &lerr)
	assert.Contains(t, lerr.URL, "does-not-exist.json")
	assert.Error(t, lerr.Err)
}
