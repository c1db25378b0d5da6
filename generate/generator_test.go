package generate

import (
	"errors"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"sort"
	"strings"
	"testing"

	"github.com/etclabscore/go-openrpc-near/transform"
	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const composeDoc = `{
  "openrpc": "1.3.2",
  "info": {"title": "compose", "version": "0.0.1"},
  "methods": [
    {
      "name": "compose",
      "summary": "Composes things.",
      "params": [{"name": "request", "required": true, "schema": {"$ref": "#/components/schemas/Composed"}}],
      "result": {"name": "response", "schema": {"$ref": "#/components/schemas/Merged"}}
    },
    {
      "name": "EXPERIMENTAL_ping",
      "params": [],
      "result": {"name": "response", "schema": {"type": "null"}}
    }
  ],
  "components": {
    "schemas": {
      "A": {"title": "A", "type": "object", "properties": {"a": {"type": "string"}, "note": {"type": "string"}}, "required": ["a"]},
      "B": {"title": "B", "type": "object", "properties": {"b": {"type": "integer", "format": "uint64"}}, "required": ["b"]},
      "C": {"title": "C", "type": "object", "properties": {"c": {"type": "boolean"}, "request_type": {"type": "string", "const": "c"}}, "required": ["c", "request_type"]},
      "BorC": {"oneOf": [{"$ref": "#/components/schemas/B"}, {"$ref": "#/components/schemas/C"}]},
      "Composed": {"title": "Composed", "description": "A with B or C.", "allOf": [{"$ref": "#/components/schemas/A"}, {"$ref": "#/components/schemas/BorC"}]},
      "Merged": {"allOf": [{"$ref": "#/components/schemas/A"}, {"$ref": "#/components/schemas/B"}]},
      "Single": {"allOf": [{"$ref": "#/components/schemas/A"}]},
      "Level": {"type": "string", "enum": ["low", "near-final"]},
      "Payload": {"type": "array", "items": {"type": "integer", "format": "uint8"}},
      "Bag": {"type": "object", "properties": {
        "items": {"type": "array", "items": {"$ref": "#/components/schemas/A"}},
        "maybe": {"anyOf": [{"$ref": "#/components/schemas/B"}, {"type": "null"}]},
        "labels": {"type": "object", "additionalProperties": {"type": "string"}},
        "inner": {"type": "object", "properties": {"x": {"type": "number"}}, "required": ["x"]},
        "any": {}
      }, "required": ["items", "inner"]}
    }
  }
}`

func generateDoc(t *testing.T, doc []byte) []byte {
	t.Helper()
	d, err := transform.ParseDocument(doc)
	require.NoError(t, err)
	s, err := transform.Transform(d, nil)
	require.NoError(t, err)
	out, err := GoGenerator.Generate(s)
	require.NoError(t, err)
	return out
}

// decls indexes the top level declarations of a Go source file.
type decls struct {
	types   map[string]ast.Expr
	aliases map[string]bool
	consts  map[string]string
	methods map[string]bool
}

func parseDecls(t *testing.T, src []byte) decls {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "generated.go", src, parser.ParseComments)
	require.NoError(t, err, string(src))

	d := decls{
		types:   map[string]ast.Expr{},
		aliases: map[string]bool{},
		consts:  map[string]string{},
		methods: map[string]bool{},
	}
	for _, decl := range f.Decls {
		switch x := decl.(type) {
		case *ast.GenDecl:
			for _, sp := range x.Specs {
				switch s := sp.(type) {
				case *ast.TypeSpec:
					d.types[s.Name.Name] = s.Type
					if s.Assign.IsValid() {
						d.aliases[s.Name.Name] = true
					}
				case *ast.ValueSpec:
					if x.Tok != token.CONST {
						continue
					}
					for i, n := range s.Names {
						if lit, ok := s.Values[i].(*ast.BasicLit); ok {
							d.consts[n.Name] = lit.Value
						}
					}
				}
			}
		case *ast.FuncDecl:
			if x.Recv == nil {
				continue
			}
			recv := x.Recv.List[0].Type
			if star, ok := recv.(*ast.StarExpr); ok {
				recv = star.X
			}
			d.methods[recv.(*ast.Ident).Name+"."+x.Name.Name] = true
		}
	}
	return d
}

func structFields(t *testing.T, e ast.Expr) map[string]string {
	t.Helper()
	st, ok := e.(*ast.StructType)
	require.True(t, ok, "want struct type")
	out := map[string]string{}
	for _, f := range st.Fields.List {
		var b strings.Builder
		require.NoError(t, format.Node(&b, token.NewFileSet(), f.Type))
		tag := ""
		if f.Tag != nil {
			tag = " " + f.Tag.Value
		}
		for _, n := range f.Names {
			out[n.Name] = b.String() + tag
		}
	}
	return out
}

func TestGenerateCompose(t *testing.T) {
	src := generateDoc(t, []byte(composeDoc))
	assert.True(t, strings.HasPrefix(string(src), "// "+DefaultHeader+"\n"))
	assert.Contains(t, string(src), "package types\n")

	formatted, err := format.Source(src)
	require.NoError(t, err)
	assert.Equal(t, string(formatted), string(src), "output is gofmt clean")

	d := parseDecls(t, src)

	assert.Equal(t, `"compose"`, d.consts["MethodCompose"])
	assert.Equal(t, `"EXPERIMENTAL_ping"`, d.consts["MethodExperimentalPing"])
	assert.Equal(t, `"near-final"`, d.consts["LevelNearFinal"])
	assert.Equal(t, `"low"`, d.consts["LevelLow"])

	assert.True(t, d.aliases["Single"])

	assert.Equal(t, map[string]string{
		"A":    "string `json:\"a\"`",
		"Note": "*string `json:\"note,omitempty\"`",
	}, structFields(t, d.types["A"]))

	// request_type is elided and written back by MarshalJSON.
	assert.Equal(t, map[string]string{
		"C": "bool `json:\"c\"`",
	}, structFields(t, d.types["C"]))
	assert.True(t, d.methods["C.MarshalJSON"])

	assert.Equal(t, map[string]string{
		"B": "*B",
		"C": "*C",
	}, structFields(t, d.types["BorC"]))

	assert.Equal(t, map[string]string{
		"AB": "*ComposedAB",
		"AC": "*ComposedAC",
	}, structFields(t, d.types["Composed"]))
	assert.True(t, d.methods["Composed.MarshalJSON"])
	assert.True(t, d.methods["Composed.UnmarshalJSON"])
	assert.True(t, d.methods["ComposedAC.MarshalJSON"])
	assert.False(t, d.methods["ComposedAB.MarshalJSON"])

	assert.Equal(t, map[string]string{
		"A":    "string `json:\"a\"`",
		"B":    "uint64 `json:\"b\"`",
		"Note": "*string `json:\"note,omitempty\"`",
	}, structFields(t, d.types["Merged"]))

	assert.Equal(t, map[string]string{
		"Any":    "json.RawMessage `json:\"any,omitempty\"`",
		"Inner":  "BagInner `json:\"inner\"`",
		"Items":  "[]A `json:\"items\"`",
		"Labels": "map[string]string `json:\"labels,omitempty\"`",
		"Maybe":  "*B `json:\"maybe,omitempty\"`",
	}, structFields(t, d.types["Bag"]))
	assert.Equal(t, map[string]string{
		"X": "float64 `json:\"x\"`",
	}, structFields(t, d.types["BagInner"]))

	assert.True(t, d.aliases["Payload"])
	payload, ok := d.types["Payload"].(*ast.SelectorExpr)
	require.True(t, ok)
	assert.Equal(t, "Bytes", payload.Sel.Name)
}

func TestGenerateDeterministic(t *testing.T) {
	a := generateDoc(t, []byte(composeDoc))
	b := generateDoc(t, []byte(composeDoc))
	assert.Equal(t, string(a), string(b))
}

func TestGenerateOverrides(t *testing.T) {
	d, err := transform.ParseDocument([]byte(composeDoc))
	require.NoError(t, err)
	s, err := transform.Transform(d, nil)
	require.NoError(t, err)

	g := &GoGeneratorT{
		PackageName: "nearapi",
		Header:      "Hand tuned.",
		FnTypeName: func(definition string) string {
			return "T" + definition
		},
	}
	src, err := g.Generate(s)
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Hand tuned.\n")
	assert.Contains(t, string(src), "package nearapi\n")

	decls := parseDecls(t, src)
	_, ok := decls.types["TMerged"]
	assert.True(t, ok)
	_, ok = decls.types["Merged"]
	assert.False(t, ok)
}

func TestGenerateTypeNameCollision(t *testing.T) {
	s := &spec.Schema{}
	s.Definitions = spec.Definitions{
		"foo_bar": *spec.StringProperty(),
		"FooBar":  *spec.Int64Property(),
	}
	_, err := GoGenerator.Generate(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FooBar")
}

func TestGenerateUnresolved(t *testing.T) {
	s := &spec.Schema{}
	holder := spec.Schema{}
	holder.Type = spec.StringOrArray{"object"}
	holder.Properties = map[string]spec.Schema{"x": *spec.RefSchema("#/definitions/Missing")}
	s.Definitions = spec.Definitions{"Holder": holder}

	_, err := GoGenerator.Generate(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, transform.ErrUnresolvedReference))
}

func TestGenerateNEARDocument(t *testing.T) {
	doc, err := transform.LoadFile("../openrpc.json")
	require.NoError(t, err)
	s, err := transform.Transform(doc, nil)
	require.NoError(t, err)
	src, err := GoGenerator.Generate(s)
	require.NoError(t, err)

	d := parseDecls(t, src)

	methods := []string{}
	for k := range d.consts {
		if strings.HasPrefix(k, "Method") {
			methods = append(methods, k)
		}
	}
	sort.Strings(methods)
	assert.Len(t, methods, 32)
	assert.Equal(t, `"EXPERIMENTAL_view_account"`, d.consts["MethodExperimentalViewAccount"])
	assert.Equal(t, `"send_tx"`, d.consts["MethodSendTx"])
	assert.Equal(t, `"EXPERIMENTAL_changes"`, d.consts["MethodExperimentalChanges"])
	assert.Equal(t, `"light_client_proof"`, d.consts["MethodLightClientProof"])

	query := structFields(t, d.types["RpcQueryRequest"])
	assert.Len(t, query, 27)
	assert.Equal(t, "*RpcQueryRequestViewAccountFinality", query["ViewAccountFinality"])
	assert.Equal(t, "*RpcQueryRequestCallFunctionSyncCheckpoint", query["CallFunctionSyncCheckpoint"])
	assert.Equal(t, "*RpcQueryRequestViewGlobalContractCodeBlockId", query["ViewGlobalContractCodeBlockId"])
	assert.True(t, d.methods["RpcQueryRequestViewAccountFinality.MarshalJSON"])

	assert.Equal(t, map[string]string{
		"AccountIds": "[]AccountId `json:\"account_ids\"`",
		"BlockId":    "BlockId `json:\"block_id\"`",
	}, structFields(t, d.types["RpcStateChangesInBlockByTypeRequestAccountChangesBlockId"]))
	assert.True(t, d.methods["RpcLightClientExecutionProofRequestReceipt.MarshalJSON"])

	assert.Equal(t, map[string]string{
		"AccountId": "AccountId `json:\"account_id\"`",
		"Finality":  "Finality `json:\"finality\"`",
	}, structFields(t, d.types["RpcQueryRequestViewAccountFinality"]))

	assert.Equal(t, `"final"`, d.consts["FinalityFinal"])
	assert.Equal(t, `"near-final"`, d.consts["FinalityNearFinal"])

	result := structFields(t, d.types["CallResult"])
	assert.Equal(t, "variant.Bytes `json:\"result\"`", result["Result"])
}
