// Package transform turns an OpenRPC document into a JSON Schema document
// that a type generator can consume directly.
//
// Components become definitions, and every allOf composition over named
// components is expanded into either one merged object or a oneOf of
// named variants, one per combination of the components' branches.
package transform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	go_jsonschema_walk "github.com/etclabscore/go-jsonschema-walk"
	"github.com/go-openapi/spec"
)

const (
	// DraftSchemaURL is the $schema of every emitted document.
	DraftSchemaURL = "http://json-schema.org/draft-07/schema#"

	// MethodsExtension is the root extension key carrying the method index.
	MethodsExtension = "x-openrpc-methods"

	definitionsRefPrefix = "#/definitions/"
)

// Options configures a transformation.
type Options struct {
	// Discriminators are property names whose const value tags a request variant.
	Discriminators []string

	// SchemaMutations run on every definition after the built-in mutations
	// and before compositions are expanded.
	SchemaMutations []SchemaMutation
}

var DefaultOptions = &Options{
	Discriminators: []string{"request_type", "changes_type", "type"},
}

// Transform converts doc into a JSON Schema document.
func Transform(doc *Document, opts *Options) (*spec.Schema, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}
	if opts == nil {
		opts = DefaultOptions
	}

	// Poor man's glue.
	// The components are handed to the schema model as JSON, with the ref
	// paths rewritten on the way.
	comps := bytes.Replace(doc.Components(),
		[]byte(`"`+componentsRefPrefix), []byte(`"`+definitionsRefPrefix), -1)

	definitions := map[string]spec.Schema{}
	if err := json.Unmarshal(comps, &definitions); err != nil {
		return nil, fmt.Errorf("unmarshal components: %w", err)
	}

	root := &spec.Schema{}
	root.Schema = spec.SchemaURL(DraftSchemaURL)
	root.Definitions = definitions

	mutations := []SchemaMutation{
		SchemaMutationCollapseSingleAllOf,
		SchemaMutationCollapseNullable,
		SchemaMutationDiscriminatorConst(opts.Discriminators...),
	}
	mutations = append(mutations, opts.SchemaMutations...)

	walker := go_jsonschema_walk.NewWalker()
	for _, name := range sortedNames(definitions) {
		def := definitions[name]
		for _, m := range mutations {
			if err := walker.DepthFirst(&def, m(root)); err != nil {
				return nil, fmt.Errorf("definition %s: %w", name, err)
			}
		}
		definitions[name] = def
	}

	if err := expandCompositions(definitions); err != nil {
		return nil, err
	}

	for _, name := range sortedNames(definitions) {
		def := definitions[name]
		if err := walker.DepthFirst(&def, checkResolved(name, definitions)); err != nil {
			return nil, err
		}
	}

	root.AddExtension(MethodsExtension, doc.Methods())
	return root, nil
}

// Marshal renders a transformed document as indented JSON.
// Output is stable for equal input.
func Marshal(s *spec.Schema) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	out := bytes.Buffer{}
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Unmarshal parses a JSON Schema document previously written by Marshal.
func Unmarshal(b []byte) (*spec.Schema, error) {
	s := &spec.Schema{}
	if err := json.Unmarshal(b, s); err != nil {
		return nil, err
	}
	return s, nil
}

// MethodsOf returns the method index stored on a transformed document.
// It works both for documents fresh from Transform and for ones read back from JSON.
func MethodsOf(s *spec.Schema) ([]Method, error) {
	v, ok := s.Extensions[MethodsExtension]
	if !ok {
		return nil, nil
	}
	if ms, ok := v.([]Method); ok {
		return ms, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var ms []Method
	if err := json.Unmarshal(b, &ms); err != nil {
		return nil, fmt.Errorf("decode %s: %w", MethodsExtension, err)
	}
	return ms, nil
}

// RefName returns the definition name a schema references, or "".
func RefName(s *spec.Schema) string {
	return refName(s.Ref.String())
}

func checkResolved(name string, definitions map[string]spec.Schema) func(*spec.Schema) error {
	return func(s *spec.Schema) error {
		if len(s.AllOf) > 0 {
			return newError(ErrNotEnumerable, name, "allOf is only supported at the top of a definition")
		}
		if ref := RefName(s); ref != "" {
			if _, ok := definitions[ref]; !ok {
				return newError(ErrUnresolvedReference, name, "%s", ref)
			}
		}
		return nil
	}
}

func sortedNames(m map[string]spec.Schema) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
