package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/etclabscore/go-openrpc-near/generate"
	"github.com/etclabscore/go-openrpc-near/transform"
	"github.com/go-openapi/spec"
	"github.com/urfave/cli"
)

const fetchTimeout = 30 * time.Second

var (
	FetchCommand = cli.Command{
		Name:   "fetch",
		Usage:  "Download the OpenRPC document to the source path",
		Action: fetchAction,
	}

	SchemaCommand = cli.Command{
		Name:   "schema",
		Usage:  "Write the transformed JSON Schema",
		Action: schemaAction,
	}

	GenerateCommand = cli.Command{
		Name:   "generate",
		Usage:  "Write Go types for the OpenRPC document",
		Action: generateAction,
	}

	CheckCommand = cli.Command{
		Name:   "check",
		Usage:  "Fail if the generated file differs from a fresh generation",
		Action: checkAction,
	}
)

func fetchAction(ctx *cli.Context) error {
	cfg, err := GetConfig(ctx)
	if err != nil {
		return err
	}
	c, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	return Fetch(c, http.DefaultClient, cfg)
}

func schemaAction(ctx *cli.Context) error {
	cfg, err := GetConfig(ctx)
	if err != nil {
		return err
	}
	s, err := TransformSource(cfg)
	if err != nil {
		return err
	}
	out := cfg.Generate.SchemaOutput
	if out == "" {
		out = "-"
	}
	return writeSchema(s, out)
}

func generateAction(ctx *cli.Context) error {
	cfg, err := GetConfig(ctx)
	if err != nil {
		return err
	}
	return Generate(cfg)
}

func checkAction(ctx *cli.Context) error {
	cfg, err := GetConfig(ctx)
	if err != nil {
		return err
	}
	ok, err := Check(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return cli.NewExitError(fmt.Sprintf("%s is stale, run near-openrpc-gen generate", cfg.Generate.Output), 1)
	}
	return nil
}

// Fetch downloads cfg.Source.URL to cfg.Source.Path. The download is
// parsed before it replaces the existing document.
func Fetch(ctx context.Context, client *http.Client, cfg *Config) error {
	if cfg.Source.URL == "" {
		return fmt.Errorf("no source url configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Source.URL, nil)
	if err != nil {
		return err
	}
	log.WithField("url", cfg.Source.URL).Info("Fetching OpenRPC document")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: %s", cfg.Source.URL, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	doc, err := transform.ParseDocument(b)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", cfg.Source.URL, err)
	}
	log.WithFields(log.Fields{
		"openrpc": doc.OpenRPC(),
		"methods": len(doc.Methods()),
	}).Debug("Parsed fetched document")
	return writeFile(cfg.Source.Path, b)
}

// LoadSource reads the source document and applies the configured patches in order.
func LoadSource(cfg *Config) (*transform.Document, error) {
	doc, err := transform.LoadFile(cfg.Source.Path)
	if err != nil {
		return nil, err
	}
	for _, p := range cfg.Source.Patches {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		if err := doc.ApplyPatch(b); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		log.WithField("patch", p).Debug("Applied patch")
	}
	return doc, nil
}

func TransformSource(cfg *Config) (*spec.Schema, error) {
	doc, err := LoadSource(cfg)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"source":  cfg.Source.Path,
		"title":   doc.Title(),
		"methods": len(doc.Methods()),
	}).Debug("Loaded OpenRPC document")
	return transform.Transform(doc, &transform.Options{
		Discriminators: cfg.Transform.Discriminators,
	})
}

// Render runs the whole pipeline and returns the Go source.
func Render(cfg *Config) ([]byte, *spec.Schema, error) {
	s, err := TransformSource(cfg)
	if err != nil {
		return nil, nil, err
	}
	g := &generate.GoGeneratorT{PackageName: cfg.Generate.Package}
	src, err := g.Generate(s)
	if err != nil {
		return nil, nil, err
	}
	return src, s, nil
}

// Generate writes the Go source, and the schema when a schema output is set.
func Generate(cfg *Config) error {
	src, s, err := Render(cfg)
	if err != nil {
		return err
	}
	if err := writeFile(cfg.Generate.Output, src); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"output":  cfg.Generate.Output,
		"package": cfg.Generate.Package,
	}).Info("Wrote generated types")
	if cfg.Generate.SchemaOutput != "" {
		return writeSchema(s, cfg.Generate.SchemaOutput)
	}
	return nil
}

// Check regenerates in memory and reports whether the output file is current.
// A diff is written to w when it is not.
func Check(cfg *Config, w io.Writer) (bool, error) {
	src, _, err := Render(cfg)
	if err != nil {
		return false, err
	}
	current, err := os.ReadFile(cfg.Generate.Output)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if bytes.Equal(current, src) {
		log.WithField("output", cfg.Generate.Output).Info("Generated types are up to date")
		return true, nil
	}
	fmt.Fprintf(w, "--- %s\n+++ %s (regenerated)\n", cfg.Generate.Output, cfg.Generate.Output)
	fmt.Fprint(w, RenderDiff(string(current), string(src), colorize(w)))
	return false, nil
}

func writeSchema(s *spec.Schema, path string) error {
	b, err := transform.Marshal(s)
	if err != nil {
		return err
	}
	if path == "-" {
		_, err := os.Stdout.Write(b)
		return err
	}
	if err := writeFile(path, b); err != nil {
		return err
	}
	log.WithField("output", path).Info("Wrote JSON Schema")
	return nil
}

func writeFile(path string, b []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0644)
}
