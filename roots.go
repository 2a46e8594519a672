package boon

import (
	"strings"
)

// roots caches one indexed root per loaded document and resolves the draft
// and vocabularies governing each resource.
type roots struct {
	defaultDraft *Draft
	roots        map[url]*root
	loader       defaultLoader
}

func newRoots() *roots {
	return &roots{
		defaultDraft: draftLatest,
		roots:        map[url]*root{},
		loader: defaultLoader{
			docs:   map[url]any{},
			loader: SchemeURLLoader{"file": FileLoader{}},
		},
	}
}

func (rr *roots) orLoad(u url) (*root, error) {
	if r, ok := rr.roots[u]; ok {
		return r, nil
	}
	doc, err := rr.loader.load(u)
	if err != nil {
		return nil, err
	}
	return rr.addRoot(u, doc)
}

func (rr *roots) addRoot(u url, doc any) (*root, error) {
	r := &root{
		url:                 u,
		doc:                 doc,
		resources:           map[jsonPointer]*resource{},
		subschemasProcessed: map[jsonPointer]struct{}{},
	}
	if err := rr.collectResources(r, doc, u, "", defaultDialect(rr.defaultDraft)); err != nil {
		return nil, err
	}
	rr.roots[u] = r
	return r, nil
}

func (rr *roots) resolveFragment(uf urlFrag) (urlPtr, error) {
	r, err := rr.orLoad(uf.url)
	if err != nil {
		return urlPtr{}, err
	}
	return r.resolveFragment(uf.frag)
}

// ensureSubschema indexes the subschema at up if it was not reached during
// initial resource collection.
func (rr *roots) ensureSubschema(up urlPtr) error {
	r, err := rr.orLoad(up.url)
	if err != nil {
		return err
	}
	return rr.addSubschema(r, up.ptr)
}

// getDraft resolves the draft governing sch. A custom $schema is loaded and
// chased through its own $schema chain until a built-in draft is reached;
// revisiting a url on the way is a meta-schema cycle.
func (rr *roots) getDraft(up urlPtr, sch any, defaultDraft *Draft, cycle map[url]struct{}) (*Draft, error) {
	obj, ok := sch.(map[string]any)
	if !ok {
		return defaultDraft, nil
	}
	sc, ok := strVal(obj, "$schema")
	if !ok {
		return defaultDraft, nil
	}
	if draft := draftFromURL(sc); draft != nil {
		return draft, nil
	}
	mu, frag, err := splitFragment(sc)
	if err != nil || frag != "" {
		return nil, &UnsupportedDraftError{sc}
	}
	if strings.Contains(mu.String(), "json-schema.org/draft") {
		// inside the known namespace but not a draft we support
		return nil, &UnsupportedDraftError{sc}
	}
	if _, ok := cycle[mu]; ok {
		return nil, &MetaSchemaCycleError{mu.String()}
	}
	cycle[mu] = struct{}{}
	mdoc, err := rr.loader.load(mu)
	if err != nil {
		return nil, err
	}
	return rr.getDraft(urlPtr{mu, ""}, mdoc, defaultDraft, cycle)
}

// getMetaVocabs reads the $vocabulary of the meta-schema named by sc.
// Built-in meta-schemas keep the draft's default vocabularies.
func (rr *roots) getMetaVocabs(sc string, draft *Draft) ([]string, error) {
	if draftFromURL(sc) != nil {
		return nil, nil
	}
	mu, _, err := splitFragment(sc)
	if err != nil {
		return nil, &UnsupportedDraftError{sc}
	}
	mdoc, err := rr.loader.load(mu)
	if err != nil {
		return nil, err
	}
	return draft.getVocabs(mu, mdoc)
}
