package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/naoina/toml"
	"github.com/urfave/cli"
)

// Config is the generator configuration. Relative paths in a config file
// are resolved against the file's directory.
type Config struct {
	Source    Source         `toml:"source"`
	Transform Transform      `toml:"transform"`
	Generate  GenerateConfig `toml:"generate"`
}

type Source struct {
	Path    string   `toml:"path"`
	URL     string   `toml:"url"`
	Patches []string `toml:"patches"`
}

type Transform struct {
	Discriminators []string `toml:"discriminators"`
}

type GenerateConfig struct {
	Package      string `toml:"package"`
	Output       string `toml:"output"`
	SchemaOutput string `toml:"schema_output"`
}

// DefaultConfig creates a default config
func DefaultConfig() *Config {
	return &Config{
		Source: Source{
			Path: "openrpc.json",
		},
		Transform: Transform{
			Discriminators: []string{"request_type", "changes_type", "type"},
		},
		Generate: GenerateConfig{
			Package: "types",
			Output:  filepath.Join("types", "generated.go"),
		},
	}
}

// LoadTomlConfig overrides cfg with the values set in the file at path.
func LoadTomlConfig(path string, cfg *Config) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	var file Config
	if err := toml.NewDecoder(fh).Decode(&file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)

	if file.Source.Path != "" {
		cfg.Source.Path = anchor(dir, file.Source.Path)
	}
	if file.Source.URL != "" {
		cfg.Source.URL = file.Source.URL
	}
	if file.Source.Patches != nil {
		cfg.Source.Patches = make([]string, len(file.Source.Patches))
		for i, p := range file.Source.Patches {
			cfg.Source.Patches[i] = anchor(dir, p)
		}
	}

	if file.Transform.Discriminators != nil {
		cfg.Transform.Discriminators = file.Transform.Discriminators
	}

	if file.Generate.Package != "" {
		cfg.Generate.Package = file.Generate.Package
	}
	if file.Generate.Output != "" {
		cfg.Generate.Output = anchor(dir, file.Generate.Output)
	}
	if file.Generate.SchemaOutput != "" {
		cfg.Generate.SchemaOutput = anchor(dir, file.Generate.SchemaOutput)
	}
	return nil
}

func anchor(dir, p string) string {
	if p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// ApplyFlags overrides cfg with the flags set on the command line.
func ApplyFlags(ctx *cli.Context, cfg *Config) {
	if ctx.GlobalIsSet(SourceFlag.Name) {
		cfg.Source.Path = ctx.GlobalString(SourceFlag.Name)
	}
	if ctx.GlobalIsSet(URLFlag.Name) {
		cfg.Source.URL = ctx.GlobalString(URLFlag.Name)
	}
	if ctx.GlobalIsSet(PatchFlag.Name) {
		cfg.Source.Patches = ctx.GlobalStringSlice(PatchFlag.Name)
	}

	if ctx.GlobalIsSet(DiscriminatorFlag.Name) {
		cfg.Transform.Discriminators = ctx.GlobalStringSlice(DiscriminatorFlag.Name)
	}

	if ctx.GlobalIsSet(PackageFlag.Name) {
		cfg.Generate.Package = ctx.GlobalString(PackageFlag.Name)
	}
	if ctx.GlobalIsSet(OutputFlag.Name) {
		cfg.Generate.Output = ctx.GlobalString(OutputFlag.Name)
	}
	if ctx.GlobalIsSet(SchemaOutputFlag.Name) {
		cfg.Generate.SchemaOutput = ctx.GlobalString(SchemaOutputFlag.Name)
	}
}

// GetConfig builds the effective config: defaults, then the config file,
// then flags.
func GetConfig(ctx *cli.Context) (*Config, error) {
	cfg := DefaultConfig()
	if conf := ctx.GlobalString(ConfigFlag.Name); conf != "" {
		if err := LoadTomlConfig(conf, cfg); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	ApplyFlags(ctx, cfg)
	return cfg, nil
}
