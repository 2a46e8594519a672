package boon

// Schema is a compiled schema node, identified by its absolute location.
// Schemas are immutable once compilation completes. The compiler's table
// exclusively owns every node; fields referring to other schemas are plain
// handles into that table, which keeps cyclic reference graphs safe.
type Schema struct {
	up       urlPtr
	resPtr   jsonPointer // location relative to the enclosing resource
	vocabs   []string    // vocabularies active for this schema
	draftVer int

	// Location is the absolute location of the schema: canonical url plus
	// json pointer fragment.
	Location string

	// Bool is set for boolean schemas: true accepts everything, false
	// rejects everything.
	Bool *bool

	// Reference keywords, resolved to compiled handles.
	Ref              *Schema
	RecursiveRef     *Schema
	DynamicRef       *Schema
	dynamicRefAnchor anchor // empty means plain $ref semantics

	// dynamicAnchors maps the $dynamicAnchor names of this schema's
	// resource to their compiled targets; used by the runtime scope walk.
	dynamicAnchors map[anchor]*Schema
	// recursiveAnchorRef is the compiled resource root when the resource
	// declares $recursiveAnchor true (draft 2019-09).
	recursiveAnchorRef *Schema

	// Logical applicators.
	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema
	Not   *Schema

	// Conditional applicators.
	If               *Schema
	Then             *Schema
	Else             *Schema
	DependentSchemas map[string]*Schema

	// Object applicators.
	Properties           map[string]*Schema
	PatternProperties    map[string]*Schema
	patternRegexps       map[string]Regexp
	AdditionalProperties *Schema
	PropertyNames        *Schema

	// Array applicators. Items holds the schema for positions beyond
	// PrefixItems, whichever keyword spelled it in the source draft.
	PrefixItems  []*Schema
	Items        *Schema
	itemsKeyword string
	Contains     *Schema
	MinContains  int
	MaxContains  int
	containsEval bool

	// Unevaluated applicators; evaluated last so they observe the full
	// annotation set.
	UnevaluatedProperties *Schema
	UnevaluatedItems      *Schema

	// Assertions. Integer bounds use -1 for "absent".
	Types             []string
	Enum              []any
	Const             []any // one element when present
	MultipleOf        *Rat
	Maximum           *Rat
	ExclusiveMaximum  *Rat
	Minimum           *Rat
	ExclusiveMinimum  *Rat
	MaxLength         int
	MinLength         int
	Pattern           Regexp
	patternString     string
	MaxItems          int
	MinItems          int
	UniqueItems       bool
	MaxProperties     int
	MinProperties     int
	Required          []string
	DependentRequired map[string][]string

	// Format; format is non-nil only when asserted.
	Format string
	format func(any) bool

	// Content keywords; decoder/mediaType are non-nil only when asserted.
	ContentEncoding  string
	decoder          func(string) ([]byte, error)
	ContentMediaType string
	mediaType        func([]byte) (any, error)
	ContentSchema    *Schema

	// Annotations.
	Title       string
	Description string
	Default     any
	Deprecated  bool
	ReadOnly    bool
	WriteOnly   bool
	Examples    []any

	// compiled marks a node whose translation finished; placeholders that
	// never complete are swept from the table when compilation fails.
	compiled bool
}

func newSchema(up urlPtr) *Schema {
	return &Schema{
		up:            up,
		Location:      up.String(),
		MinContains:   1,
		MaxContains:   -1,
		MaxLength:     -1,
		MinLength:     -1,
		MaxItems:      -1,
		MinItems:      -1,
		MaxProperties: -1,
		MinProperties: -1,
	}
}

// DraftVersion returns the numeric draft version the schema was compiled
// under: 4, 6, 7, 2019 or 2020.
func (s *Schema) DraftVersion() int { return s.draftVer }

// Vocabularies returns the vocabulary names active for this schema.
func (s *Schema) Vocabularies() []string { return s.vocabs }

// ResourceLocation returns the schema's json pointer relative to its
// enclosing resource.
func (s *Schema) ResourceLocation() string { return string(s.resPtr) }

// keywordLocation returns the absolute location of a keyword of this schema.
func (s *Schema) keywordLocation(kw string) string {
	return s.Location + "/" + kw
}
