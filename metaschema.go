package boon

import (
	"embed"
	"strings"
	"sync"
)

//go:embed metaschemas
var metaFS embed.FS

// metaPaths maps scheme-stripped meta-schema urls to embedded files. Both
// http and https spellings of a url resolve to the same document.
var metaPaths = map[string]string{
	"json-schema.org/draft-04/schema": "metaschemas/draft-04.json",
	"json-schema.org/draft-06/schema": "metaschemas/draft-06.json",
	"json-schema.org/draft-07/schema": "metaschemas/draft-07.json",

	"json-schema.org/draft/2019-09/schema":          "metaschemas/draft/2019-09/schema.json",
	"json-schema.org/draft/2019-09/meta/core":       "metaschemas/draft/2019-09/meta/core.json",
	"json-schema.org/draft/2019-09/meta/applicator": "metaschemas/draft/2019-09/meta/applicator.json",
	"json-schema.org/draft/2019-09/meta/validation": "metaschemas/draft/2019-09/meta/validation.json",
	"json-schema.org/draft/2019-09/meta/meta-data":  "metaschemas/draft/2019-09/meta/meta-data.json",
	"json-schema.org/draft/2019-09/meta/format":     "metaschemas/draft/2019-09/meta/format.json",
	"json-schema.org/draft/2019-09/meta/content":    "metaschemas/draft/2019-09/meta/content.json",

	"json-schema.org/draft/2020-12/schema":                 "metaschemas/draft/2020-12/schema.json",
	"json-schema.org/draft/2020-12/meta/core":              "metaschemas/draft/2020-12/meta/core.json",
	"json-schema.org/draft/2020-12/meta/applicator":        "metaschemas/draft/2020-12/meta/applicator.json",
	"json-schema.org/draft/2020-12/meta/unevaluated":       "metaschemas/draft/2020-12/meta/unevaluated.json",
	"json-schema.org/draft/2020-12/meta/validation":        "metaschemas/draft/2020-12/meta/validation.json",
	"json-schema.org/draft/2020-12/meta/meta-data":         "metaschemas/draft/2020-12/meta/meta-data.json",
	"json-schema.org/draft/2020-12/meta/format-annotation": "metaschemas/draft/2020-12/meta/format-annotation.json",
	"json-schema.org/draft/2020-12/meta/content":           "metaschemas/draft/2020-12/meta/content.json",
}

var (
	metaMu   sync.Mutex
	metaDocs = map[string]any{}
)

// isMetaURL tells whether u names one of the embedded meta-schema resources.
// Such documents are self-validating: they bootstrap meta-validation and are
// never themselves meta-validated.
func isMetaURL(u url) bool {
	_, ok := metaPaths[stripScheme(u)]
	return ok
}

func stripScheme(u url) string {
	s := strings.TrimSuffix(u.String(), "#")
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	return s
}

// loadMeta returns the embedded meta-schema document for u, if any.
func loadMeta(u url) (any, bool) {
	path, ok := metaPaths[stripScheme(u)]
	if !ok {
		return nil, false
	}

	metaMu.Lock()
	defer metaMu.Unlock()
	if doc, ok := metaDocs[path]; ok {
		return doc, true
	}
	data, err := metaFS.ReadFile(path)
	if err != nil {
		return nil, false
	}
	doc, err := UnmarshalJSON(data)
	if err != nil {
		return nil, false
	}
	metaDocs[path] = doc
	return doc, true
}
