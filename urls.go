package boon

import (
	gourl "net/url"
	"path/filepath"
	"strings"
)

// url is a canonical absolute URL without fragment.
type url string

func (u url) String() string { return string(u) }

// join resolves ref against u per RFC 3986 and splits off the fragment.
func (u url) join(ref string) (*urlFrag, error) {
	base, err := gourl.Parse(string(u))
	if err != nil {
		return nil, err
	}
	resolved, err := base.Parse(ref)
	if err != nil {
		return nil, err
	}
	return splitParsed(resolved)
}

// anchor is a plain-name fragment identifier.
type anchor string

// fragment is a percent-decoded url fragment: either a json pointer or a
// plain-name anchor. Fragments are decoded before interpretation; an
// undecoded fragment is never compared directly.
type fragment string

// convert classifies the fragment: empty or "/"-prefixed means json pointer,
// anything else a plain-name anchor.
func (f fragment) convert() any {
	if f == "" || strings.HasPrefix(string(f), "/") {
		return jsonPointer(f)
	}
	return anchor(f)
}

type urlFrag struct {
	url  url
	frag fragment
}

func (uf *urlFrag) String() string {
	return string(uf.url) + "#" + string(uf.frag)
}

type urlPtr struct {
	url url
	ptr jsonPointer
}

func (up *urlPtr) String() string {
	return string(up.url) + "#" + string(up.ptr)
}

// splitFragment parses s into its canonical url and decoded fragment.
// Pointer fragments are checked for malformed '~' escapes here, so every
// downstream consumer sees only valid pointers. A location without a scheme
// is a file path and becomes a file: url, resolved against the working
// directory when relative.
func splitFragment(s string) (url, fragment, error) {
	parsed, err := gourl.Parse(s)
	if err != nil {
		return "", "", err
	}
	if !parsed.IsAbs() {
		abs, err := filepath.Abs(filepath.FromSlash(parsed.Path))
		if err != nil {
			return "", "", err
		}
		parsed.Scheme, parsed.Path, parsed.RawPath = "file", filepath.ToSlash(abs), ""
	}
	uf, err := splitParsed(parsed)
	if err != nil {
		return "", "", err
	}
	return uf.url, uf.frag, nil
}

func splitParsed(parsed *gourl.URL) (*urlFrag, error) {
	// gourl keeps Fragment percent-decoded, which is the form fragments
	// must be interpreted in.
	frag := fragment(parsed.Fragment)
	if _, ok := frag.convert().(jsonPointer); ok {
		if err := validateJSONPointer(string(frag)); err != nil {
			return nil, err
		}
	}
	stripped := *parsed
	stripped.Fragment = ""
	stripped.RawFragment = ""
	return &urlFrag{url(stripped.String()), frag}, nil
}
