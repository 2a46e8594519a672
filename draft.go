package boon

import (
	"slices"
	"strconv"
	"strings"
)

// A Draft represents a version of the JSON Schema specification: which
// keyword identifies schemas, where subschemas may appear, and which
// vocabularies exist.
type Draft struct {
	version       int
	url           url
	id            string // property name used to represent schema id.
	subschemas    subschemaKinds
	vocabPrefix   string
	allVocabs     []string
	defaultVocabs []string
}

// Version returns the numeric draft version: 4, 6, 7, 2019 or 2020.
func (d *Draft) Version() int { return d.version }

// URL returns the canonical meta-schema url of the draft.
func (d *Draft) URL() string { return d.url.String() }

// subschemaKinds records, per keyword, how subschemas nest under it.
type subschemaKinds struct {
	self  []string // value is itself a schema
	props []string // value is an object whose member values are schemas
	items []string // value is an array of schemas
}

// collect gathers the subschema positions directly under obj into out,
// keyed by json pointer relative to obj's position.
func (k subschemaKinds) collect(obj map[string]any, ptr jsonPointer, out map[jsonPointer]any) {
	isSchemaLike := func(v any) bool {
		switch v.(type) {
		case map[string]any, bool:
			return true
		}
		return false
	}
	for _, kw := range k.items {
		if arr, ok := obj[kw].([]any); ok {
			for i, v := range arr {
				if isSchemaLike(v) {
					out[ptr.append2(kw, strconv.Itoa(i))] = v
				}
			}
		}
	}
	for _, kw := range k.self {
		v, ok := obj[kw]
		if !ok {
			continue
		}
		if _, isArr := v.([]any); isArr && slices.Contains(k.items, kw) {
			continue // already collected positionally
		}
		if isSchemaLike(v) {
			out[ptr.append(kw)] = v
		}
	}
	for _, kw := range k.props {
		if m, ok := obj[kw].(map[string]any); ok {
			for name, v := range m {
				if isSchemaLike(v) {
					out[ptr.append2(kw, name)] = v
				}
			}
		}
	}
}

// getID returns the resolved identifier declared on obj, with any anchor
// fragment stripped for drafts that allow one inside the id keyword.
func (d *Draft) getID(obj map[string]any) string {
	id, ok := strVal(obj, d.id)
	if !ok || id == "" {
		return ""
	}
	if d.version <= 7 {
		// anchors may ride inside id; the identifier is the part before '#'
		if hash := strings.IndexByte(id, '#'); hash != -1 {
			id = id[:hash]
		}
	}
	return id
}

var (
	// Draft4 represents json-schema draft-04.
	Draft4 = &Draft{
		version: 4,
		url:     "http://json-schema.org/draft-04/schema",
		id:      "id",
		subschemas: subschemaKinds{
			self:  []string{"items", "additionalItems", "additionalProperties", "not"},
			props: []string{"properties", "patternProperties", "definitions", "dependencies"},
			items: []string{"items", "allOf", "anyOf", "oneOf"},
		},
	}

	// Draft6 represents json-schema draft-06.
	Draft6 = &Draft{
		version: 6,
		url:     "http://json-schema.org/draft-06/schema",
		id:      "$id",
		subschemas: subschemaKinds{
			self:  []string{"items", "additionalItems", "additionalProperties", "not", "propertyNames", "contains"},
			props: []string{"properties", "patternProperties", "definitions", "dependencies"},
			items: []string{"items", "allOf", "anyOf", "oneOf"},
		},
	}

	// Draft7 represents json-schema draft-07.
	Draft7 = &Draft{
		version: 7,
		url:     "http://json-schema.org/draft-07/schema",
		id:      "$id",
		subschemas: subschemaKinds{
			self:  []string{"items", "additionalItems", "additionalProperties", "not", "propertyNames", "contains", "if", "then", "else"},
			props: []string{"properties", "patternProperties", "definitions", "dependencies"},
			items: []string{"items", "allOf", "anyOf", "oneOf"},
		},
	}

	// Draft2019 represents json-schema draft 2019-09.
	Draft2019 = &Draft{
		version: 2019,
		url:     "https://json-schema.org/draft/2019-09/schema",
		id:      "$id",
		subschemas: subschemaKinds{
			self: []string{
				"items", "additionalItems", "additionalProperties", "not",
				"propertyNames", "contains", "if", "then", "else",
				"unevaluatedProperties", "unevaluatedItems", "contentSchema",
			},
			props: []string{"properties", "patternProperties", "definitions", "$defs", "dependentSchemas"},
			items: []string{"items", "allOf", "anyOf", "oneOf"},
		},
		vocabPrefix: "https://json-schema.org/draft/2019-09/vocab/",
		allVocabs:   []string{"core", "applicator", "validation", "meta-data", "format", "content"},
		// the vocabulary set of the standard meta-schema, used when no
		// custom $vocabulary governs the resource
		defaultVocabs: []string{"core", "applicator", "validation", "meta-data", "format", "content"},
	}

	// Draft2020 represents json-schema draft 2020-12.
	Draft2020 = &Draft{
		version: 2020,
		url:     "https://json-schema.org/draft/2020-12/schema",
		id:      "$id",
		subschemas: subschemaKinds{
			self: []string{
				"items", "additionalProperties", "not",
				"propertyNames", "contains", "if", "then", "else",
				"unevaluatedProperties", "unevaluatedItems", "contentSchema",
			},
			props: []string{"properties", "patternProperties", "definitions", "$defs", "dependentSchemas"},
			items: []string{"prefixItems", "allOf", "anyOf", "oneOf"},
		},
		vocabPrefix: "https://json-schema.org/draft/2020-12/vocab/",
		allVocabs: []string{
			"core", "applicator", "unevaluated", "validation",
			"meta-data", "format-annotation", "format-assertion", "content",
		},
		defaultVocabs: []string{
			"core", "applicator", "unevaluated", "validation",
			"meta-data", "format-annotation", "content",
		},
	}

	draftLatest = Draft2020
)

var drafts = []*Draft{Draft4, Draft6, Draft7, Draft2019, Draft2020}

// draftFromURL resolves a $schema url to a built-in draft, or nil.
func draftFromURL(s string) *Draft {
	s = strings.TrimSuffix(s, "#")
	isHTTPS := strings.HasPrefix(s, "https://")
	if !isHTTPS && !strings.HasPrefix(s, "http://") {
		return nil
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "https://"), "http://")
	if s == "json-schema.org/schema" {
		return draftLatest
	}
	for _, d := range drafts {
		du := strings.TrimPrefix(strings.TrimPrefix(d.url.String(), "https://"), "http://")
		if s == du {
			return d
		}
	}
	return nil
}

// getVocabs reads the $vocabulary map of a meta-schema document. A required
// vocabulary outside the draft's known set is an error; optional unknown
// vocabularies are silently dropped. nil means "no $vocabulary declared".
func (d *Draft) getVocabs(u url, doc any) ([]string, error) {
	if d.version < 2019 {
		return nil, nil
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, nil
	}
	vocabulary, ok := obj["$vocabulary"].(map[string]any)
	if !ok {
		return nil, nil
	}

	var vocabs []string
	for vocabURL, required := range vocabulary {
		name, known := strings.CutPrefix(vocabURL, d.vocabPrefix)
		if known {
			known = slices.Contains(d.allVocabs, name)
		}
		if !known {
			if required, ok := required.(bool); ok && required {
				return nil, &UnsupportedVocabularyError{URL: u.String(), Vocabulary: vocabURL}
			}
			continue
		}
		if !slices.Contains(vocabs, name) {
			vocabs = append(vocabs, name)
		}
	}
	return vocabs, nil
}

// dialect is a draft plus the set of vocabularies active for a resource,
// and the meta-schema url the resource's schemas must validate against.
type dialect struct {
	draft   *Draft
	vocabs  []string // nil means the draft's default vocabularies
	metaURL url
}

func defaultDialect(d *Draft) dialect {
	return dialect{draft: d, metaURL: d.url}
}

// hasVocab tells whether the named vocabulary is active. Drafts below
// 2019-09 predate vocabularies; everything is active there.
func (d dialect) hasVocab(name string) bool {
	if d.draft.version < 2019 || name == "core" {
		return true
	}
	if d.vocabs == nil {
		return slices.Contains(d.draft.defaultVocabs, name)
	}
	return slices.Contains(d.vocabs, name)
}
