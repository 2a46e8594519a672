package boon

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Regexp is a compiled regular expression.
type Regexp interface {
	MatchString(s string) bool
	String() string
}

// RegexpEngine compiles ECMA-262 style regular expressions. The default
// engine wraps the standard library; hosts needing full ECMA-262 semantics
// can inject their own with Compiler.UseRegexpEngine.
type RegexpEngine func(s string) (Regexp, error)

func goRegexpCompile(s string) (Regexp, error) {
	re, err := regexp.Compile(s)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// Compiler compiles json schemas into immutable *Schema handles, caching
// everything it loads and compiles. A compiler is not safe for concurrent
// use; the schemas it produces are.
type Compiler struct {
	schemas     map[urlPtr]*Schema // owner table of compiled schemas
	metaSchemas map[urlPtr]*Schema // meta-schemas compile with format assertion forced on
	roots       *roots
	validated   map[url]struct{} // documents that passed meta-validation

	// AssertFormat enables format assertions for drafts >= 2019-09.
	// Drafts up to 7 assert format by default.
	AssertFormat bool

	// AssertContent enables content assertions for drafts >= 7.
	AssertContent bool

	// Decoders for contentEncoding values.
	Decoders map[string]func(string) ([]byte, error)

	// MediaTypes parsers for contentMediaType values.
	MediaTypes map[string]func([]byte) (any, error)

	formats      map[string]func(any) bool
	regexpEngine RegexpEngine
}

// NewCompiler creates a Compiler with file loading, base64 decoding and
// json/yaml media types preconfigured.
func NewCompiler() *Compiler {
	c := &Compiler{
		schemas:      map[urlPtr]*Schema{},
		metaSchemas:  map[urlPtr]*Schema{},
		roots:        newRoots(),
		validated:    map[url]struct{}{},
		formats:      map[string]func(any) bool{},
		regexpEngine: goRegexpCompile,
		Decoders: map[string]func(string) ([]byte, error){
			"base64": base64.StdEncoding.DecodeString,
		},
		MediaTypes: map[string]func([]byte) (any, error){},
	}
	c.MediaTypes["application/json"] = func(data []byte) (any, error) {
		return UnmarshalJSON(data)
	}
	c.MediaTypes["application/yaml"] = func(data []byte) (any, error) {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	return c
}

// DefaultDraft overrides the draft used when $schema is absent. The default
// is Draft2020.
func (c *Compiler) DefaultDraft(d *Draft) *Compiler {
	c.roots.defaultDraft = d
	return c
}

// UseLoader sets the loader used to fetch documents.
func (c *Compiler) UseLoader(loader URLLoader) *Compiler {
	c.roots.loader.loader = loader
	return c
}

// UseRegexpEngine replaces the regexp engine used for pattern keywords.
func (c *Compiler) UseRegexpEngine(engine RegexpEngine) *Compiler {
	c.regexpEngine = engine
	return c
}

// RegisterFormat adds or replaces a format validator.
func (c *Compiler) RegisterFormat(name string, fn func(any) bool) *Compiler {
	c.formats[name] = fn
	return c
}

// RegisterDecoder adds a decoder for a contentEncoding value.
func (c *Compiler) RegisterDecoder(name string, fn func(string) ([]byte, error)) *Compiler {
	c.Decoders[name] = fn
	return c
}

// RegisterMediaType adds a parser for a contentMediaType value.
func (c *Compiler) RegisterMediaType(name string, fn func([]byte) (any, error)) *Compiler {
	c.MediaTypes[name] = fn
	return c
}

// AddResource preloads an in-memory document for the given url, so that
// Compile and $ref resolution never hit the loader for it.
func (c *Compiler) AddResource(loc string, doc any) error {
	u, frag, err := splitFragment(loc)
	if err != nil {
		return err
	}
	if frag != "" {
		return ErrFragmentInResourceURL
	}
	c.roots.loader.add(u, doc)
	return nil
}

// MustCompile is like Compile but panics on error. It simplifies safe
// initialization of global variables holding compiled schemas.
func (c *Compiler) MustCompile(loc string) *Schema {
	s, err := c.Compile(loc)
	if err != nil {
		panic(fmt.Sprintf("boon: %v", err))
	}
	return s
}

// Compile compiles the schema at the given location, which may carry a json
// pointer or plain-name anchor fragment. Compile is idempotent: repeated
// calls for the same location return the same handle.
func (c *Compiler) Compile(loc string) (*Schema, error) {
	s, err := c.compile(loc)
	if err != nil {
		c.sweepIncomplete()
		return nil, err
	}
	return s, nil
}

func (c *Compiler) compile(loc string) (*Schema, error) {
	u, frag, err := splitFragment(loc)
	if err != nil {
		return nil, err
	}
	r, err := c.loadRoot(u)
	if err != nil {
		return nil, err
	}
	up, err := r.resolveFragment(frag)
	if err != nil {
		return nil, err
	}
	if err := c.roots.ensureSubschema(up); err != nil {
		return nil, err
	}
	if !r.isSubschema(up.ptr) {
		return nil, &SchemaValidationError{URL: up.String()}
	}
	return c.compileAt(up, false)
}

// sweepIncomplete removes placeholders whose translation never finished, so
// a failed compilation leaves unrelated compiled schemas untouched.
func (c *Compiler) sweepIncomplete() {
	for _, table := range []map[urlPtr]*Schema{c.schemas, c.metaSchemas} {
		for up, s := range table {
			if !s.compiled {
				delete(table, up)
			}
		}
	}
}

// loadRoot loads and indexes the document at u, then validates it against
// its meta-schema. Embedded meta-schema documents are self-validating.
func (c *Compiler) loadRoot(u url) (*root, error) {
	if r, ok := c.roots.roots[u]; ok {
		return r, nil
	}
	r, err := c.roots.orLoad(u)
	if err != nil {
		return nil, err
	}
	if err := c.validateRoot(r); err != nil {
		delete(c.roots.roots, u)
		return nil, err
	}
	return r, nil
}

func (c *Compiler) validateRoot(r *root) error {
	if _, ok := c.validated[r.url]; ok {
		return nil
	}
	if isMetaURL(r.url) {
		c.validated[r.url] = struct{}{}
		return nil
	}
	meta, err := c.metaSchemaFor(r.rootResource().dialect)
	if err != nil {
		return err
	}
	result, err := meta.Validate(r.doc)
	if err != nil {
		return &SchemaValidationError{URL: r.url.String()}
	}
	if !result.Valid {
		return &SchemaValidationError{URL: r.url.String(), Result: result}
	}
	c.validated[r.url] = struct{}{}
	return nil
}

// metaSchemaFor compiles the meta-schema governing a resource. Custom
// meta-schemas are themselves validated against their hosting draft, a
// recursion that terminates at the embedded built-ins.
func (c *Compiler) metaSchemaFor(d dialect) (*Schema, error) {
	mu := d.metaURL
	if mu == "" {
		mu = d.draft.url
	}
	if _, err := c.loadRoot(mu); err != nil {
		return nil, err
	}
	return c.compileAt(urlPtr{mu, ""}, true)
}

// compileAt compiles the subschema at up. A placeholder is inserted before
// translating keywords so reference cycles close on the placeholder instead
// of recursing forever.
func (c *Compiler) compileAt(up urlPtr, forMeta bool) (*Schema, error) {
	table := c.schemas
	if forMeta {
		table = c.metaSchemas
	}
	if s, ok := table[up]; ok {
		return s, nil
	}

	r, err := c.loadRoot(up.url)
	if err != nil {
		return nil, err
	}
	v, err := up.lookup(r.doc)
	if err != nil {
		return nil, err
	}

	s := newSchema(up)
	table[up] = s
	if err := c.compileValue(s, r, v, forMeta); err != nil {
		return nil, err
	}
	s.compiled = true
	return s, nil
}

func (c *Compiler) compileValue(s *Schema, r *root, v any, forMeta bool) error {
	res := r.resource(s.up.ptr)
	s.resPtr = s.up.ptr[len(res.ptr):]
	s.draftVer = res.dialect.draft.version
	s.vocabs = res.dialect.vocabs
	if s.vocabs == nil {
		s.vocabs = res.dialect.draft.defaultVocabs
	}

	switch v := v.(type) {
	case bool:
		s.Bool = &v
		return nil
	case map[string]any:
		return c.compileObject(s, r, res, v, forMeta)
	}
	return ErrSchemaNotObject
}

func (c *Compiler) compileObject(s *Schema, r *root, res *resource, obj map[string]any, forMeta bool) error {
	dlct := res.dialect
	draft := dlct.draft
	version := draft.version
	base := res.id

	// carry the resource's dynamic anchors on every schema of the
	// resource, so any frame of the runtime scope can answer the walk
	if version == 2019 && res.recursiveAnchor {
		target, err := c.compileAt(urlPtr{r.url, res.ptr}, forMeta)
		if err != nil {
			return err
		}
		s.recursiveAnchorRef = target
	}
	if version >= 2020 && len(res.dynamicAnchors) > 0 {
		s.dynamicAnchors = map[anchor]*Schema{}
		for name, aptr := range res.dynamicAnchors {
			target, err := c.compileAt(urlPtr{r.url, aptr}, forMeta)
			if err != nil {
				return err
			}
			s.dynamicAnchors[name] = target
		}
	}

	var err error
	if ref, ok := strVal(obj, "$ref"); ok {
		s.Ref, err = c.compileRef(r, base, ref, forMeta)
		if err != nil {
			return err
		}
		if version < 2019 {
			// all other properties in a "$ref" object MUST be ignored
			return nil
		}
	}
	if version == 2019 {
		if ref, ok := strVal(obj, "$recursiveRef"); ok {
			s.RecursiveRef, err = c.compileRef(r, base, ref, forMeta)
			if err != nil {
				return err
			}
		}
	}
	if version >= 2020 {
		if ref, ok := strVal(obj, "$dynamicRef"); ok {
			s.DynamicRef, err = c.compileRef(r, base, ref, forMeta)
			if err != nil {
				return err
			}
			// the scope walk happens only if the static target's
			// resource declares a matching $dynamicAnchor; otherwise
			// this degenerates to plain $ref semantics
			if uf, err := base.join(ref); err == nil {
				if a, ok := uf.frag.convert().(anchor); ok {
					if tr, ok := c.roots.roots[s.DynamicRef.up.url]; ok {
						tres := tr.resource(s.DynamicRef.up.ptr)
						if _, ok := tres.dynamicAnchors[a]; ok {
							s.dynamicRefAnchor = a
						}
					}
				}
			}
		}
	}

	loadSchema := func(kw string) (*Schema, error) {
		switch obj[kw].(type) {
		case map[string]any, bool:
			return c.compileAt(urlPtr{r.url, s.up.ptr.append(kw)}, forMeta)
		}
		return nil, nil
	}
	loadSchemas := func(kw string) ([]*Schema, error) {
		arr, ok := obj[kw].([]any)
		if !ok {
			return nil, nil
		}
		schemas := make([]*Schema, 0, len(arr))
		for i := range arr {
			sch, err := c.compileAt(urlPtr{r.url, s.up.ptr.append2(kw, strconv.Itoa(i))}, forMeta)
			if err != nil {
				return nil, err
			}
			schemas = append(schemas, sch)
		}
		return schemas, nil
	}
	loadSchemaMap := func(kw string) (map[string]*Schema, error) {
		m, ok := obj[kw].(map[string]any)
		if !ok {
			return nil, nil
		}
		schemas := make(map[string]*Schema, len(m))
		for name := range m {
			sch, err := c.compileAt(urlPtr{r.url, s.up.ptr.append2(kw, name)}, forMeta)
			if err != nil {
				return nil, err
			}
			schemas[name] = sch
		}
		return schemas, nil
	}
	loadInt := func(kw string) int {
		if num, ok := obj[kw].(json.Number); ok {
			if i, err := num.Int64(); err == nil {
				return int(i)
			}
		}
		return -1
	}
	loadRat := func(kw string) *Rat {
		if v, ok := obj[kw]; ok {
			return NewRat(v)
		}
		return nil
	}

	if dlct.hasVocab("applicator") {
		if s.AllOf, err = loadSchemas("allOf"); err != nil {
			return err
		}
		if s.AnyOf, err = loadSchemas("anyOf"); err != nil {
			return err
		}
		if s.OneOf, err = loadSchemas("oneOf"); err != nil {
			return err
		}
		if s.Not, err = loadSchema("not"); err != nil {
			return err
		}

		if version >= 7 {
			if s.If, err = loadSchema("if"); err != nil {
				return err
			}
			if s.If != nil {
				if s.Then, err = loadSchema("then"); err != nil {
					return err
				}
				if s.Else, err = loadSchema("else"); err != nil {
					return err
				}
			}
		}

		if s.Properties, err = loadSchemaMap("properties"); err != nil {
			return err
		}
		if patternProps, ok := obj["patternProperties"].(map[string]any); ok {
			s.PatternProperties = make(map[string]*Schema, len(patternProps))
			s.patternRegexps = make(map[string]Regexp, len(patternProps))
			for pattern := range patternProps {
				re, err := c.regexpEngine(pattern)
				if err != nil {
					loc := urlPtr{r.url, s.up.ptr.append2("patternProperties", pattern)}
					return &InvalidRegexError{URL: loc.String(), Regex: pattern, Err: err}
				}
				s.patternRegexps[pattern] = re
				if s.PatternProperties[pattern], err = c.compileAt(urlPtr{r.url, s.up.ptr.append2("patternProperties", pattern)}, forMeta); err != nil {
					return err
				}
			}
		}
		if s.AdditionalProperties, err = loadSchema("additionalProperties"); err != nil {
			return err
		}
		if version >= 6 {
			if s.PropertyNames, err = loadSchema("propertyNames"); err != nil {
				return err
			}
		}

		if version >= 2020 {
			if s.PrefixItems, err = loadSchemas("prefixItems"); err != nil {
				return err
			}
			if s.Items, err = loadSchema("items"); err != nil {
				return err
			}
			s.itemsKeyword = "items"
		} else {
			switch obj["items"].(type) {
			case []any:
				if s.PrefixItems, err = loadSchemas("items"); err != nil {
					return err
				}
				if s.Items, err = loadSchema("additionalItems"); err != nil {
					return err
				}
				s.itemsKeyword = "additionalItems"
			default:
				if s.Items, err = loadSchema("items"); err != nil {
					return err
				}
				s.itemsKeyword = "items"
			}
		}

		if version >= 6 {
			if s.Contains, err = loadSchema("contains"); err != nil {
				return err
			}
			s.containsEval = version >= 2020
		}

		if version <= 7 {
			if deps, ok := obj["dependencies"].(map[string]any); ok {
				for pname, pvalue := range deps {
					switch pvalue := pvalue.(type) {
					case []any:
						if s.DependentRequired == nil {
							s.DependentRequired = map[string][]string{}
						}
						s.DependentRequired[pname] = toStrings(pvalue)
					case map[string]any, bool:
						if s.DependentSchemas == nil {
							s.DependentSchemas = map[string]*Schema{}
						}
						sch, err := c.compileAt(urlPtr{r.url, s.up.ptr.append2("dependencies", pname)}, forMeta)
						if err != nil {
							return err
						}
						s.DependentSchemas[pname] = sch
					}
				}
			}
		} else {
			if s.DependentSchemas, err = loadSchemaMap("dependentSchemas"); err != nil {
				return err
			}
		}
	}

	unevaluatedActive := dlct.hasVocab("applicator")
	if version >= 2020 {
		unevaluatedActive = dlct.hasVocab("unevaluated")
	}
	if version >= 2019 && unevaluatedActive {
		if s.UnevaluatedProperties, err = loadSchema("unevaluatedProperties"); err != nil {
			return err
		}
		if s.UnevaluatedItems, err = loadSchema("unevaluatedItems"); err != nil {
			return err
		}
	}

	if dlct.hasVocab("validation") {
		if t, ok := obj["type"]; ok {
			switch t := t.(type) {
			case string:
				s.Types = []string{t}
			case []any:
				s.Types = toStrings(t)
			}
		}
		if e, ok := obj["enum"].([]any); ok {
			s.Enum = e
		}
		if version >= 6 {
			if cv, ok := obj["const"]; ok {
				s.Const = []any{cv}
			}
		}

		s.MultipleOf = loadRat("multipleOf")
		s.Maximum = loadRat("maximum")
		s.Minimum = loadRat("minimum")
		if exclusive, ok := obj["exclusiveMaximum"]; ok {
			if exclusive, ok := exclusive.(bool); ok {
				if exclusive {
					s.Maximum, s.ExclusiveMaximum = nil, s.Maximum
				}
			} else if version >= 6 {
				s.ExclusiveMaximum = loadRat("exclusiveMaximum")
			}
		}
		if exclusive, ok := obj["exclusiveMinimum"]; ok {
			if exclusive, ok := exclusive.(bool); ok {
				if exclusive {
					s.Minimum, s.ExclusiveMinimum = nil, s.Minimum
				}
			} else if version >= 6 {
				s.ExclusiveMinimum = loadRat("exclusiveMinimum")
			}
		}

		s.MinLength, s.MaxLength = loadInt("minLength"), loadInt("maxLength")
		if pattern, ok := strVal(obj, "pattern"); ok {
			re, err := c.regexpEngine(pattern)
			if err != nil {
				return &InvalidRegexError{URL: s.keywordLocation("pattern"), Regex: pattern, Err: err}
			}
			s.Pattern = re
			s.patternString = pattern
		}

		s.MinItems, s.MaxItems = loadInt("minItems"), loadInt("maxItems")
		if unique, ok := boolVal(obj, "uniqueItems"); ok {
			s.UniqueItems = unique
		}
		if version >= 2019 {
			if min := loadInt("minContains"); min != -1 {
				s.MinContains = min
			}
			s.MaxContains = loadInt("maxContains")
		}

		s.MinProperties, s.MaxProperties = loadInt("minProperties"), loadInt("maxProperties")
		if req, ok := obj["required"].([]any); ok {
			s.Required = toStrings(req)
		}
		if version >= 2019 {
			if deps, ok := obj["dependentRequired"].(map[string]any); ok {
				s.DependentRequired = make(map[string][]string, len(deps))
				for pname, pvalue := range deps {
					if arr, ok := pvalue.([]any); ok {
						s.DependentRequired[pname] = toStrings(arr)
					}
				}
			}
		}
	}

	if format, ok := strVal(obj, "format"); ok {
		s.Format = format
		if c.assertsFormat(dlct, forMeta) {
			s.format = c.resolveFormat(format)
		}
	}

	if version >= 7 && (version < 2019 || dlct.hasVocab("content")) {
		if encoding, ok := strVal(obj, "contentEncoding"); ok {
			s.ContentEncoding = encoding
			if c.AssertContent && !forMeta {
				s.decoder = c.Decoders[encoding]
			}
		}
		if mediaType, ok := strVal(obj, "contentMediaType"); ok {
			s.ContentMediaType = mediaType
			if c.AssertContent && !forMeta {
				s.mediaType = c.MediaTypes[mediaType]
			}
		}
		if version >= 2019 && c.AssertContent && !forMeta {
			if s.ContentSchema, err = loadSchema("contentSchema"); err != nil {
				return err
			}
		}
	}

	if dlct.hasVocab("meta-data") {
		s.Title, _ = strVal(obj, "title")
		s.Description, _ = strVal(obj, "description")
		s.Default = obj["default"]
		if version >= 7 {
			s.ReadOnly, _ = boolVal(obj, "readOnly")
			s.WriteOnly, _ = boolVal(obj, "writeOnly")
		}
		if version >= 2019 {
			s.Deprecated, _ = boolVal(obj, "deprecated")
		}
		if examples, ok := obj["examples"].([]any); ok {
			s.Examples = examples
		}
	}

	return nil
}

// compileRef resolves a reference against base and compiles its target.
func (c *Compiler) compileRef(r *root, base url, ref string, forMeta bool) (*Schema, error) {
	uf, err := base.join(ref)
	if err != nil {
		return nil, err
	}

	up, err := r.resolve(*uf)
	if err != nil {
		return nil, err
	}
	if up == nil {
		// the target may be a resource embedded in another loaded document
		for _, r2 := range c.roots.roots {
			up2, err := r2.resolve(*uf)
			if err != nil {
				return nil, err
			}
			if up2 != nil {
				up, r = up2, r2
				break
			}
		}
	}
	if up == nil {
		// external document
		r2, err := c.loadRoot(uf.url)
		if err != nil {
			return nil, err
		}
		resolved, err := r2.resolveFragment(uf.frag)
		if err != nil {
			return nil, err
		}
		up = &resolved
		r = r2
	}
	if err := c.roots.ensureSubschema(*up); err != nil {
		return nil, err
	}
	if !r.isSubschema(up.ptr) {
		return nil, &SchemaValidationError{URL: up.String()}
	}
	return c.compileAt(*up, forMeta)
}

func (c *Compiler) assertsFormat(dlct dialect, forMeta bool) bool {
	if forMeta {
		// meta-schemas assert formats so invalid regular expressions in
		// schema documents are caught during meta-validation
		return true
	}
	switch version := dlct.draft.version; {
	case version < 2019:
		return true
	case version == 2019:
		return c.AssertFormat
	default:
		return c.AssertFormat || dlct.hasVocab("format-assertion")
	}
}

func (c *Compiler) resolveFormat(name string) func(any) bool {
	if fn, ok := c.formats[name]; ok {
		return fn
	}
	return Formats[name]
}

func toStrings(arr []any) []string {
	s := make([]string, 0, len(arr))
	for _, v := range arr {
		if str, ok := v.(string); ok {
			s = append(s, str)
		}
	}
	return s
}
