package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const nearDocument = "../../openrpc.json"

func init() {
	log.SetLevel(log.WarnLevel)
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Source.Path = nearDocument
	cfg.Generate.Output = filepath.Join(t.TempDir(), "types", "generated.go")
	return cfg
}

func TestLoadTomlConfig(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "gen.toml")
	require.NoError(t, os.WriteFile(conf, []byte(`
[source]
path = "spec/openrpc.yaml"
url = "https://example.com/openrpc.json"
patches = ["patches/a.json", "/abs/b.json"]

[transform]
discriminators = ["request_type", "kind"]

[generate]
output = "out/generated.go"
schema_output = "-"
`), 0644))

	cfg := DefaultConfig()
	require.NoError(t, LoadTomlConfig(conf, cfg))

	assert.Equal(t, filepath.Join(dir, "spec", "openrpc.yaml"), cfg.Source.Path)
	assert.Equal(t, "https://example.com/openrpc.json", cfg.Source.URL)
	assert.Equal(t, []string{filepath.Join(dir, "patches", "a.json"), "/abs/b.json"}, cfg.Source.Patches)
	assert.Equal(t, []string{"request_type", "kind"}, cfg.Transform.Discriminators)
	assert.Equal(t, "types", cfg.Generate.Package, "unset keys keep their default")
	assert.Equal(t, filepath.Join(dir, "out", "generated.go"), cfg.Generate.Output)
	assert.Equal(t, "-", cfg.Generate.SchemaOutput)
}

func TestLoadTomlConfigErrors(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "gen.toml")
	require.NoError(t, os.WriteFile(conf, []byte("[source]\nlocation = \"x\"\n"), 0644))
	assert.Error(t, LoadTomlConfig(conf, DefaultConfig()))

	assert.Error(t, LoadTomlConfig(filepath.Join(dir, "missing.toml"), DefaultConfig()))
}

func TestRepositoryConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, LoadTomlConfig("../../near-openrpc-gen.toml", cfg))
	assert.Equal(t, filepath.Join("..", "..", "openrpc.json"), cfg.Source.Path)
	assert.Equal(t, filepath.Join("..", "..", "types", "generated.go"), cfg.Generate.Output)
	assert.Equal(t, "types", cfg.Generate.Package)
}

func TestGenerateThenCheck(t *testing.T) {
	cfg := testConfig(t)
	cfg.Generate.SchemaOutput = filepath.Join(filepath.Dir(cfg.Generate.Output), "schema.json")

	require.NoError(t, Generate(cfg))

	src, err := os.ReadFile(cfg.Generate.Output)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package types")
	assert.Contains(t, string(src), "MethodStatus")

	schema, err := os.ReadFile(cfg.Generate.SchemaOutput)
	require.NoError(t, err)
	assert.True(t, gjson.GetBytes(schema, "definitions.RpcStatusResponse").Exists())
	assert.True(t, strings.HasSuffix(string(schema), "}\n"), "schema ends in a single newline")

	out := &bytes.Buffer{}
	ok, err := Check(cfg, out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, out.String())

	stale := strings.Replace(string(src), `"status"`, `"stat"`, 1)
	require.NoError(t, os.WriteFile(cfg.Generate.Output, []byte(stale), 0644))

	ok, err = Check(cfg, out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, out.String(), `-`)
	assert.Contains(t, out.String(), `+`)
	assert.Contains(t, out.String(), `"stat"`)
	assert.NotContains(t, out.String(), "\x1b[", "buffers are not terminals")
}

func TestCheckMissingOutput(t *testing.T) {
	cfg := testConfig(t)
	ok, err := Check(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadSourceAppliesPatches(t *testing.T) {
	dir := t.TempDir()
	patch := filepath.Join(dir, "drop-first-method.json")
	require.NoError(t, os.WriteFile(patch, []byte(`[{"op":"remove","path":"/methods/0"}]`), 0644))

	cfg := testConfig(t)
	full, err := LoadSource(cfg)
	require.NoError(t, err)

	cfg.Source.Patches = []string{patch}
	patched, err := LoadSource(cfg)
	require.NoError(t, err)
	assert.Len(t, patched.Methods(), len(full.Methods())-1)
	assert.NotEqual(t, full.Methods()[0].Name, patched.Methods()[0].Name)

	cfg.Source.Patches = []string{filepath.Join(dir, "missing.json")}
	_, err = LoadSource(cfg)
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	doc, err := os.ReadFile(nearDocument)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/openrpc.json":
			w.Write(doc)
		case "/garbage":
			w.Write([]byte("<html></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.Source.Path = filepath.Join(t.TempDir(), "openrpc.json")

	cfg.Source.URL = srv.URL + "/openrpc.json"
	require.NoError(t, Fetch(context.Background(), srv.Client(), cfg))
	got, err := os.ReadFile(cfg.Source.Path)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	cfg.Source.URL = srv.URL + "/missing"
	assert.Error(t, Fetch(context.Background(), srv.Client(), cfg))

	cfg.Source.URL = srv.URL + "/garbage"
	assert.Error(t, Fetch(context.Background(), srv.Client(), cfg))
	got, err = os.ReadFile(cfg.Source.Path)
	require.NoError(t, err)
	assert.Equal(t, doc, got, "a bad download leaves the document alone")

	cfg.Source.URL = ""
	assert.Error(t, Fetch(context.Background(), srv.Client(), cfg))
}

func TestRenderDiff(t *testing.T) {
	a := "one\ntwo\nthree\nfour\nfive\nsix\nseven\neight\nnine\nten\n"
	b := "one\ntwo\nthree\nfour\nfive\nsix\nseven\neight\nNINE\nten\n"

	d := RenderDiff(a, b, false)
	assert.Contains(t, d, "-nine\n")
	assert.Contains(t, d, "+NINE\n")
	assert.Contains(t, d, " ten\n")
	assert.Contains(t, d, "@@ 5 unchanged lines @@\n")
	assert.Contains(t, d, " six\n")
	assert.NotContains(t, d, " five\n")

	colored := RenderDiff(a, b, true)
	assert.Contains(t, colored, "\x1b[31m-nine")
	assert.Contains(t, colored, "\x1b[32m+NINE")

	assert.False(t, colorize(&bytes.Buffer{}))
}

func TestAppGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nearapi", "generated.go")
	err := App.Run([]string{"near-openrpc-gen",
		"--verbosity", "3",
		"--source", nearDocument,
		"--package", "nearapi",
		"--output", out,
		"generate",
	})
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(src), "// Code generated by near-openrpc-gen. DO NOT EDIT."))
	assert.Contains(t, string(src), "package nearapi")

	err = App.Run([]string{"near-openrpc-gen", "--verbosity", "9", "generate"})
	assert.Error(t, err)
}
