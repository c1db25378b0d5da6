package transform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	meta_schema "github.com/open-rpc/meta-schema"
	"github.com/tidwall/gjson"
)

const componentsRefPrefix = "#/components/schemas/"

// Document is a parsed OpenRPC document.
// The raw JSON is kept alongside the typed method objects because the
// components section is handed to the schema library as-is.
type Document struct {
	raw     []byte
	methods []meta_schema.MethodObject
	index   []Method
}

// Method is the part of an OpenRPC method object the generators care about.
type Method struct {
	Name       string  `json:"name"`
	Summary    string  `json:"summary,omitempty"`
	Deprecated bool    `json:"deprecated,omitempty"`
	Params     []Param `json:"params"`
	Result     string  `json:"result,omitempty"`
}

// Param describes one content descriptor of a method's params list.
// Schema is the component name the descriptor references, if any.
type Param struct {
	Name     string `json:"name"`
	Schema   string `json:"schema,omitempty"`
	Required bool   `json:"required,omitempty"`
}

// LoadFile reads an OpenRPC document from disk.
func LoadFile(path string) (*Document, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Load(fh)
}

// Load reads an OpenRPC document from r.
func Load(r io.Reader) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseDocument(b)
}

// ParseDocument parses an OpenRPC document given as JSON or YAML.
func ParseDocument(b []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty openrpc document")
	}
	if trimmed[0] != '{' {
		j, err := yaml.YAMLToJSON(trimmed)
		if err != nil {
			return nil, fmt.Errorf("convert yaml document: %w", err)
		}
		trimmed = j
	}
	if !gjson.ValidBytes(trimmed) {
		return nil, fmt.Errorf("openrpc document is not valid JSON")
	}
	d := &Document{raw: trimmed}
	if err := d.parse(); err != nil {
		return nil, err
	}
	return d, nil
}

// ApplyPatch applies an RFC 6902 JSON Patch to the document and re-indexes it.
func (d *Document) ApplyPatch(patch []byte) error {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("decode patch: %w", err)
	}
	out, err := p.Apply(d.raw)
	if err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	prev := d.raw
	d.raw = out
	if err := d.parse(); err != nil {
		d.raw = prev
		return err
	}
	return nil
}

// OpenRPC returns the document's openrpc version field.
func (d *Document) OpenRPC() string {
	return gjson.GetBytes(d.raw, "openrpc").String()
}

// Title returns info.title.
func (d *Document) Title() string {
	return gjson.GetBytes(d.raw, "info.title").String()
}

// Methods returns the method index in document order.
func (d *Document) Methods() []Method {
	out := make([]Method, len(d.index))
	copy(out, d.index)
	return out
}

// MethodObjects returns the typed OpenRPC method objects.
func (d *Document) MethodObjects() []meta_schema.MethodObject {
	return d.methods
}

// Components returns the raw components.schemas object.
func (d *Document) Components() []byte {
	return []byte(gjson.GetBytes(d.raw, "components.schemas").Raw)
}

// Bytes returns the (possibly patched) document.
func (d *Document) Bytes() []byte {
	return d.raw
}

func (d *Document) parse() error {
	schemas := gjson.GetBytes(d.raw, "components.schemas")
	if !schemas.Exists() || !schemas.IsObject() {
		return ErrMissingComponents
	}

	methods := []meta_schema.MethodObject{}
	if raw := gjson.GetBytes(d.raw, "methods"); raw.Exists() {
		if err := json.Unmarshal([]byte(raw.Raw), &methods); err != nil {
			return fmt.Errorf("decode methods: %w", err)
		}
	}

	index := make([]Method, 0, len(methods))
	seen := map[string]bool{}
	for i, m := range methods {
		if m.Name == nil || *m.Name == "" {
			return fmt.Errorf("method %d has no name", i)
		}
		name := string(*m.Name)
		if seen[name] {
			return fmt.Errorf("duplicate method %q", name)
		}
		seen[name] = true

		me := Method{Name: name, Params: []Param{}}
		if m.Summary != nil {
			me.Summary = string(*m.Summary)
		}
		if m.Deprecated != nil {
			me.Deprecated = bool(*m.Deprecated)
		}

		methodPath := fmt.Sprintf("methods.%d", i)
		if m.Params != nil {
			for j, p := range *m.Params {
				cd := p.ContentDescriptorObject
				if cd == nil {
					return fmt.Errorf("method %s: param %d: content descriptor references are not supported", name, j)
				}
				par := Param{}
				if cd.Name != nil {
					par.Name = string(*cd.Name)
				}
				if cd.Required != nil {
					par.Required = bool(*cd.Required)
				}
				par.Schema = refName(gjson.GetBytes(d.raw, fmt.Sprintf("%s.params.%d.schema.$ref", methodPath, j)).String())
				me.Params = append(me.Params, par)
			}
		}
		if m.Result != nil && m.Result.ContentDescriptorObject != nil {
			me.Result = refName(gjson.GetBytes(d.raw, methodPath+".result.schema.$ref").String())
		}
		index = append(index, me)
	}

	d.methods = methods
	d.index = index
	return nil
}

// MethodNames returns the sorted method names.
func (d *Document) MethodNames() []string {
	out := make([]string, 0, len(d.index))
	for _, m := range d.index {
		out = append(out, m.Name)
	}
	sort.Strings(out)
	return out
}

// refName returns the component name from a "#/components/schemas/X" or
// "#/definitions/X" reference.
func refName(ref string) string {
	if ref == "" {
		return ""
	}
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
