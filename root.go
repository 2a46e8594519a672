package boon

import (
	"strings"
)

// root indexes one loaded document: every resource declared via the draft's
// id keyword, and every anchor within each resource's base scope.
type root struct {
	url                 url
	doc                 any
	resources           map[jsonPointer]*resource
	subschemasProcessed map[jsonPointer]struct{}
}

// resource is a subschema with its own base uri, forming a nested scope.
type resource struct {
	ptr             jsonPointer
	id              url
	dialect         dialect
	anchors         map[anchor]jsonPointer
	dynamicAnchors  map[anchor]jsonPointer
	recursiveAnchor bool
}

func newResource(ptr jsonPointer, id url) *resource {
	return &resource{
		ptr:            ptr,
		id:             id,
		anchors:        map[anchor]jsonPointer{},
		dynamicAnchors: map[anchor]jsonPointer{},
	}
}

func (r *root) rootResource() *resource {
	return r.resources[""]
}

// resource returns the nearest enclosing resource of ptr.
func (r *root) resource(ptr jsonPointer) *resource {
	for {
		if res, ok := r.resources[ptr]; ok {
			return res
		}
		slash := strings.LastIndexByte(string(ptr), '/')
		if slash == -1 {
			break
		}
		ptr = ptr[:slash]
	}
	return r.rootResource()
}

func (r *root) resolveFragmentIn(frag fragment, res *resource) (urlPtr, error) {
	var ptr jsonPointer
	switch f := frag.convert().(type) {
	case jsonPointer:
		ptr = res.ptr.concat(f)
	case anchor:
		aptr, ok := res.anchors[f]
		if !ok {
			return urlPtr{}, &AnchorNotFoundError{
				URL:       r.url.String(),
				Reference: (&urlFrag{res.id, frag}).String(),
			}
		}
		ptr = aptr
	}
	return urlPtr{r.url, ptr}, nil
}

func (r *root) resolveFragment(frag fragment) (urlPtr, error) {
	return r.resolveFragmentIn(frag, r.rootResource())
}

// resolve maps uf to a location within this document, matching either the
// document url or a resource id. Returns nil if uf is external.
func (r *root) resolve(uf urlFrag) (*urlPtr, error) {
	var res *resource
	if uf.url == r.url {
		res = r.rootResource()
	} else {
		for _, v := range r.resources {
			if v.id == uf.url {
				res = v
				break
			}
		}
		if res == nil {
			return nil, nil // external url
		}
	}
	up, err := r.resolveFragmentIn(uf.frag, res)
	return &up, err
}

func (rr *roots) collectResources(r *root, sch any, base url, schPtr jsonPointer, fallback dialect) error {
	if _, ok := r.subschemasProcessed[schPtr]; ok {
		return nil
	}
	if err := rr._collectResources(r, sch, base, schPtr, fallback); err != nil {
		return err
	}
	r.subschemasProcessed[schPtr] = struct{}{}
	return nil
}

func (rr *roots) _collectResources(r *root, sch any, base url, schPtr jsonPointer, fallback dialect) error {
	if _, ok := sch.(bool); ok {
		if schPtr.isEmpty() {
			res := newResource(schPtr, base)
			res.dialect = fallback
			r.resources[schPtr] = res
		}
		return nil
	}
	obj, ok := sch.(map[string]any)
	if !ok {
		return nil
	}

	sc, hasSchema := strVal(obj, "$schema")

	draft, err := rr.getDraft(urlPtr{r.url, schPtr}, sch, fallback.draft, map[url]struct{}{r.url: {}})
	if err != nil {
		return err
	}
	id := draft.getID(obj)
	if id == "" && !schPtr.isEmpty() {
		// $schema is honored only on documents and on subschemas that
		// open their own resource
		draft = fallback.draft
		hasSchema = false
		id = draft.getID(obj)
	}
	if id != "" && draft.version >= 2019 {
		// pointer or anchor fragments are not allowed inside $id anymore
		if hash := strings.IndexByte(id, '#'); hash != -1 && hash != len(id)-1 {
			loc := urlPtr{r.url, schPtr}
			return &ParseIDError{loc.String()}
		}
		id = strings.TrimSuffix(id, "#")
	}

	var res *resource
	if id != "" {
		uf, err := base.join(id)
		if err != nil {
			loc := urlPtr{r.url, schPtr}
			return &ParseIDError{loc.String()}
		}
		base = uf.url
		res = newResource(schPtr, base)
	} else if schPtr.isEmpty() {
		res = newResource(schPtr, base)
	}

	if res != nil {
		for _, existing := range r.resources {
			if existing.id == base && existing.ptr != schPtr {
				return &DuplicateIDError{base.String(), r.url.String(), string(schPtr), string(existing.ptr)}
			}
		}
		if _, ok := r.resources[schPtr]; !ok {
			if hasSchema {
				vocabs, err := rr.getMetaVocabs(sc, draft)
				if err != nil {
					return err
				}
				mu, _, err := splitFragment(sc)
				if err != nil {
					return err
				}
				res.dialect = dialect{draft: draft, vocabs: vocabs, metaURL: mu}
			} else {
				res.dialect = fallback
			}
			r.resources[schPtr] = res
		}
	}

	// collect anchors into the base resource
	for _, res := range r.resources {
		if res.id == base {
			if err := r.collectAnchors(sch, schPtr, res); err != nil {
				return err
			}
			break
		}
	}

	dlct := r.resource(schPtr).dialect
	subschemas := map[jsonPointer]any{}
	dlct.draft.subschemas.collect(obj, schPtr, subschemas)
	for ptr, v := range subschemas {
		if err := rr.collectResources(r, v, base, ptr, dlct); err != nil {
			return err
		}
	}

	return nil
}

// addSubschema indexes a subschema position reached through a fragment that
// was not walked during initial collection (e.g. inside unknown keywords).
func (rr *roots) addSubschema(r *root, ptr jsonPointer) error {
	if _, ok := r.subschemasProcessed[ptr]; ok {
		return nil
	}
	up := urlPtr{r.url, ptr}
	v, err := up.lookup(r.doc)
	if err != nil {
		return err
	}
	res := r.resource(ptr)
	if err := rr.collectResources(r, v, res.id, ptr, res.dialect); err != nil {
		return err
	}
	if _, ok := r.resources[ptr]; !ok {
		if err := r.collectAnchors(v, ptr, r.resource(ptr)); err != nil {
			return err
		}
	}
	return nil
}

// isSubschema tells whether ptr names a subschema position per the keyword
// tables of the draft governing each enclosing resource.
func (r *root) isSubschema(ptr jsonPointer) bool {
	if ptr.isEmpty() {
		return true
	}
	segs := strings.Split(string(ptr[1:]), "/")
	cur := jsonPointer("")
	for i := 0; i < len(segs); {
		kinds := r.resource(cur).dialect.draft.subschemas
		kw := unescape(segs[i])
		switch {
		case contains(kinds.items, kw) && i+1 < len(segs) && isDigits(segs[i+1]):
			cur += jsonPointer("/" + segs[i] + "/" + segs[i+1])
			i += 2
		case contains(kinds.self, kw):
			cur += jsonPointer("/" + segs[i])
			i++
		case contains(kinds.props, kw) && i+1 < len(segs):
			cur += jsonPointer("/" + segs[i] + "/" + segs[i+1])
			i += 2
		default:
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (r *root) collectAnchors(sch any, schPtr jsonPointer, res *resource) error {
	obj, ok := sch.(map[string]any)
	if !ok {
		return nil
	}

	addAnchor := func(a anchor) error {
		if ptr1, ok := res.anchors[a]; ok {
			if ptr1 == schPtr {
				return nil
			}
			return &DuplicateAnchorError{
				string(a), r.url.String(), string(ptr1), string(schPtr),
			}
		}
		res.anchors[a] = schPtr
		return nil
	}

	version := res.dialect.draft.version
	if version < 2019 {
		if _, ok := obj["$ref"]; ok {
			// all other properties in a "$ref" object MUST be ignored
			return nil
		}
		// an anchor rides in the fragment of the id keyword
		if id, ok := strVal(obj, res.dialect.draft.id); ok {
			_, frag, err := splitFragment(id)
			if err != nil {
				loc := urlPtr{r.url, schPtr}
				return &ParseAnchorError{loc.String()}
			}
			if a, ok := frag.convert().(anchor); ok {
				if err := addAnchor(a); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if s, ok := strVal(obj, "$anchor"); ok {
		if err := addAnchor(anchor(s)); err != nil {
			return err
		}
	}
	if version == 2019 {
		if b, ok := boolVal(obj, "$recursiveAnchor"); ok && b && schPtr == res.ptr {
			res.recursiveAnchor = true
		}
	}
	if version >= 2020 {
		if s, ok := strVal(obj, "$dynamicAnchor"); ok {
			if err := addAnchor(anchor(s)); err != nil {
				return err
			}
			res.dynamicAnchors[anchor(s)] = schPtr
		}
	}

	return nil
}
