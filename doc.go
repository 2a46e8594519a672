// Package boon implements a two-phase JSON Schema engine for Go: a compiler
// that turns a set of interrelated schema documents into an immutable,
// URI-keyed schema graph, and a validator that checks JSON instances against
// any compiled schema, producing structured hierarchical output.
//
// Drafts 4, 6, 7, 2019-09 and 2020-12 are supported, including nested $id
// scopes, $anchor/$dynamicAnchor discovery, $ref/$dynamicRef/$recursiveRef
// resolution, $vocabulary gating and unevaluatedProperties/unevaluatedItems
// accounting.
//
// Compile once, validate many:
//
//	c := boon.NewCompiler()
//	if err := c.AddResource("schema.json", doc); err != nil { ... }
//	sch, err := c.Compile("schema.json")
//	if err != nil { ... }
//	result, err := sch.Validate(instance)
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format validators.
package boon
