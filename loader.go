package boon

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	gourl "net/url"
	"os"

	"github.com/goccy/go-json"
)

// URLLoader knows how to load the json document at a given url.
//
// Loaders are synchronous; the compiler caches every loaded document by its
// canonical url, so each url is fetched at most once per compiler.
type URLLoader interface {
	// Load loads the document at given absolute url.
	Load(url string) (any, error)
}

// FileLoader loads file: urls and bare filesystem paths.
type FileLoader struct{}

// Load implements URLLoader.
func (FileLoader) Load(u string) (any, error) {
	path := u
	if parsed, err := gourl.Parse(u); err == nil && parsed.Scheme == "file" {
		path = parsed.Path
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck
	return DecodeJSON(f)
}

// HTTPLoader loads http(s): urls. The zero value uses http.DefaultClient
// semantics; convert a configured http.Client to HTTPLoader to set timeouts.
type HTTPLoader http.Client

// Load implements URLLoader.
func (l *HTTPLoader) Load(u string) (any, error) {
	client := (*http.Client)(l)
	resp, err := client.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status code %d", u, resp.StatusCode)
	}
	return DecodeJSON(resp.Body)
}

// SchemeURLLoader dispatches to a loader by url scheme. Urls without a
// scheme are treated as file paths.
type SchemeURLLoader map[string]URLLoader

// Load implements URLLoader.
func (l SchemeURLLoader) Load(u string) (any, error) {
	scheme := "file"
	if parsed, err := gourl.Parse(u); err == nil && parsed.Scheme != "" {
		scheme = parsed.Scheme
	}
	ll, ok := l[scheme]
	if !ok {
		return nil, &UnsupportedURLSchemeError{u}
	}
	return ll.Load(u)
}

// DecodeJSON decodes a json document from r, preserving numbers as
// json.Number so exact decimal comparisons remain possible.
func DecodeJSON(r io.Reader) (any, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}
	var extra any
	if err := decoder.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("invalid character after top-level value")
	}
	return doc, nil
}

// UnmarshalJSON decodes a json document from bytes with the same number
// handling as DecodeJSON.
func UnmarshalJSON(data []byte) (any, error) {
	return DecodeJSON(bytes.NewReader(data))
}

// defaultLoader wraps a URLLoader with the compiler's append-only document
// cache and the embedded meta-schema documents.
type defaultLoader struct {
	docs   map[url]any
	loader URLLoader
}

// add preloads a document; reports false if the url was already present.
func (l *defaultLoader) add(u url, doc any) bool {
	if _, ok := l.docs[u]; ok {
		return false
	}
	l.docs[u] = doc
	return true
}

func (l *defaultLoader) load(u url) (any, error) {
	if doc, ok := l.docs[u]; ok {
		return doc, nil
	}
	if doc, ok := loadMeta(u); ok {
		l.docs[u] = doc
		return doc, nil
	}
	if l.loader == nil {
		return nil, &UnsupportedURLSchemeError{u.String()}
	}
	doc, err := l.loader.Load(u.String())
	if err != nil {
		if _, ok := err.(*UnsupportedURLSchemeError); ok {
			return nil, err
		}
		return nil, &LoadURLError{URL: u.String(), Err: err}
	}
	l.docs[u] = doc
	return doc, nil
}
