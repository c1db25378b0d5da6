// Package generate renders a transformed JSON Schema document as Go source.
package generate

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/etclabscore/go-openrpc-near/internal/naming"
	"github.com/etclabscore/go-openrpc-near/transform"
	"github.com/go-openapi/spec"
)

// Generator turns a schema document into source-level type definitions.
type Generator interface {
	Generate(schema *spec.Schema) ([]byte, error)
}

const (
	DefaultPackageName    = "types"
	DefaultRuntimePackage = "github.com/etclabscore/go-openrpc-near/variant"
	DefaultHeader         = "Code generated by near-openrpc-gen. DO NOT EDIT."
)

// GoGeneratorT holds the knobs of the Go generator.
// Each Fn field, when set, overrides the matching default.
type GoGeneratorT struct {
	PackageName    string
	Header         string
	RuntimePackage string

	FnTypeName  func(definition string) string
	FnFieldName func(property string) string
	FnConstName func(typeName string, value string) string
}

// GoGenerator is a GoGeneratorT with every default in place.
var GoGenerator = &GoGeneratorT{}

var _ Generator = (*GoGeneratorT)(nil)

func (g *GoGeneratorT) packageName() string {
	if g.PackageName != "" {
		return g.PackageName
	}
	return DefaultPackageName
}

func (g *GoGeneratorT) header() string {
	if g.Header != "" {
		return g.Header
	}
	return DefaultHeader
}

func (g *GoGeneratorT) runtime() string {
	if g.RuntimePackage != "" {
		return g.RuntimePackage
	}
	return DefaultRuntimePackage
}

func (g *GoGeneratorT) TypeName(definition string) string {
	if g.FnTypeName != nil {
		return g.FnTypeName(definition)
	}
	return naming.Identifier(definition)
}

func (g *GoGeneratorT) FieldName(property string) string {
	if g.FnFieldName != nil {
		return g.FnFieldName(property)
	}
	return naming.Identifier(property)
}

func (g *GoGeneratorT) ConstName(typeName string, value string) string {
	if g.FnConstName != nil {
		return g.FnConstName(typeName, value)
	}
	return typeName + naming.Pascal(value)
}

// Generate renders every definition of schema, sorted by name, plus the
// method name constants found in its method index.
func (g *GoGeneratorT) Generate(schema *spec.Schema) ([]byte, error) {
	if schema == nil {
		return nil, fmt.Errorf("nil schema")
	}
	methods, err := transform.MethodsOf(schema)
	if err != nil {
		return nil, err
	}

	f := jen.NewFile(g.packageName())
	f.HeaderComment(g.header())
	f.ImportName(g.runtime(), "variant")

	c := &goFile{
		g:        g,
		f:        f,
		defs:     schema.Definitions,
		declared: map[string]string{},
	}
	c.methodConsts(methods)

	names := make([]string, 0, len(schema.Definitions))
	for k := range schema.Definitions {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := c.definition(name, schema.Definitions[name]); err != nil {
			return nil, err
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Render(buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// goFile is the state of one Generate call.
type goFile struct {
	g    *GoGeneratorT
	f    *jen.File
	defs spec.Definitions

	// declared maps each emitted Go type name to the schema path that produced it.
	declared map[string]string
}

func (c *goFile) declare(typeName, origin string) error {
	if prev, ok := c.declared[typeName]; ok {
		return fmt.Errorf("type %s declared by both %s and %s", typeName, prev, origin)
	}
	c.declared[typeName] = origin
	return nil
}

func (c *goFile) methodConsts(methods []transform.Method) {
	if len(methods) == 0 {
		return
	}
	sorted := make([]transform.Method, len(methods))
	copy(sorted, methods)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	defs := make([]jen.Code, 0, len(sorted))
	for _, m := range sorted {
		id := "Method" + naming.Pascal(m.Name)
		if m.Summary != "" {
			defs = append(defs, jen.Comment(id+" "+lowerFirst(m.Summary)))
		}
		if m.Deprecated {
			defs = append(defs, jen.Comment("Deprecated: "+m.Name+" is deprecated upstream."))
		}
		defs = append(defs, jen.Id(id).Op("=").Lit(m.Name))
	}
	c.f.Comment("JSON-RPC method names.")
	c.f.Const().Defs(defs...)
	c.f.Line()
}

func (c *goFile) docComment(typeName string, s spec.Schema) {
	if s.Description == "" {
		return
	}
	for i, line := range strings.Split(strings.TrimSpace(s.Description), "\n") {
		if i == 0 {
			c.f.Comment(typeName + ": " + line)
			continue
		}
		c.f.Comment(line)
	}
}

func lowerFirst(s string) string {
	rs := []rune(s)
	if len(rs) > 1 && unicode.IsUpper(rs[0]) && unicode.IsLower(rs[1]) {
		rs[0] = unicode.ToLower(rs[0])
	}
	return string(rs)
}
