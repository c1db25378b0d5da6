package transform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/etclabscore/go-openrpc-near/internal/naming"
	"github.com/go-openapi/spec"
)

type expandState int

const (
	expandPending expandState = iota
	expandActive
	expandDone
)

// branch is one possible shape a composed component contributes.
// label is empty for components that contribute no name part.
type branch struct {
	label  string
	schema spec.Schema
}

type expander struct {
	defs  map[string]spec.Schema
	state map[string]expandState
}

// expandCompositions rewrites every definition of the form allOf [A, B, ...]
// in place. Definitions are visited in name order; a component that is itself
// composed is expanded before use, so nested compositions resolve depth first
// in document order.
func expandCompositions(defs map[string]spec.Schema) error {
	e := &expander{defs: defs, state: make(map[string]expandState, len(defs))}
	for _, name := range sortedNames(defs) {
		if err := e.expand(name); err != nil {
			return err
		}
	}
	return nil
}

func (e *expander) expand(name string) error {
	switch e.state[name] {
	case expandDone:
		return nil
	case expandActive:
		return newError(ErrReferenceCycle, name, "composition refers back to itself")
	}
	def, ok := e.defs[name]
	if !ok {
		return newError(ErrUnresolvedReference, name, "no such definition")
	}
	if len(def.AllOf) == 0 {
		e.state[name] = expandDone
		return nil
	}

	e.state[name] = expandActive
	out, err := e.compose(name, def)
	if err != nil {
		return err
	}
	e.defs[name] = out
	e.state[name] = expandDone
	return nil
}

func (e *expander) compose(name string, def spec.Schema) (spec.Schema, error) {
	parts := make([][]branch, 0, len(def.AllOf))
	for i, item := range def.AllOf {
		bs, err := e.branches(name, i, item)
		if err != nil {
			return spec.Schema{}, err
		}
		parts = append(parts, bs)
	}
	// Sibling properties next to allOf act as one more untitled component.
	if len(def.Properties) > 0 {
		own := spec.Schema{}
		own.Properties = def.Properties
		own.Required = def.Required
		parts = append(parts, []branch{{schema: own}})
	}

	variants := []spec.Schema{}
	seen := map[string]string{}
	for _, combo := range cartesian(parts) {
		v, label, err := merge(name, combo)
		if err != nil {
			return spec.Schema{}, err
		}
		key := describe(combo)
		if prev, dup := seen[label]; dup {
			return spec.Schema{}, newError(ErrVariantNameCollision, name, "%q from both %s and %s", label, prev, key)
		}
		seen[label] = key
		v.Title = label
		variants = append(variants, v)
	}

	if len(variants) == 1 {
		out := variants[0]
		out.Title = def.Title
		out.Description = def.Description
		return out, nil
	}
	out := spec.Schema{}
	out.Title = def.Title
	out.Description = def.Description
	out.OneOf = variants
	return out, nil
}

// branches lists the shapes an allOf item can take.
func (e *expander) branches(owner string, index int, item spec.Schema) ([]branch, error) {
	target, ref, err := e.resolve(owner, item)
	if err != nil {
		return nil, err
	}
	component := ref
	if component == "" {
		component = fmt.Sprintf("%sPart%d", owner, index)
	}

	if len(target.OneOf) == 0 {
		if !isObject(target) {
			return nil, newError(ErrNotEnumerable, owner, "component %s is not an object or a union of objects", component)
		}
		label := item.Title
		if label == "" {
			label = target.Title
		}
		return []branch{{label: label, schema: target}}, nil
	}

	out := make([]branch, 0, len(target.OneOf))
	for i, b := range target.OneOf {
		resolved, bRef, err := e.resolve(owner, b)
		if err != nil {
			return nil, err
		}
		if len(resolved.OneOf) > 0 || !isObject(resolved) {
			return nil, newError(ErrNotEnumerable, owner, "branch %d of %s is not an object", i, component)
		}
		label := b.Title
		if label == "" {
			label = resolved.Title
		}
		if label == "" {
			label = bRef
		}
		if label == "" {
			label = fmt.Sprintf("%sVariant%d", component, i)
		}
		out = append(out, branch{label: label, schema: resolved})
	}
	return out, nil
}

// resolve follows $ref chains, expanding referenced compositions first.
func (e *expander) resolve(owner string, s spec.Schema) (spec.Schema, string, error) {
	name := ""
	for hops := 0; ; hops++ {
		ref := RefName(&s)
		if ref == "" {
			return s, name, nil
		}
		if hops > len(e.defs) {
			return spec.Schema{}, "", newError(ErrReferenceCycle, owner, "$ref chain through %s", ref)
		}
		if _, ok := e.defs[ref]; !ok {
			return spec.Schema{}, "", newError(ErrUnresolvedReference, owner, "%s", ref)
		}
		if err := e.expand(ref); err != nil {
			return spec.Schema{}, "", err
		}
		next := e.defs[ref]
		if name == "" {
			name = ref
		}
		s = next
	}
}

func merge(owner string, combo []branch) (spec.Schema, string, error) {
	out := spec.Schema{}
	out.Type = spec.StringOrArray{"object"}
	out.Properties = map[string]spec.Schema{}

	labels := make([]string, 0, len(combo))
	for _, b := range combo {
		if b.label != "" {
			labels = append(labels, naming.Identifier(b.label))
		}
		names := make([]string, 0, len(b.schema.Properties))
		for k := range b.schema.Properties {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, pname := range names {
			p := b.schema.Properties[pname]
			if prev, ok := out.Properties[pname]; ok {
				if !sameSchema(prev, p) {
					return spec.Schema{}, "", newError(ErrPropertyConflict, owner, "property %q differs between components", pname)
				}
				continue
			}
			out.Properties[pname] = p
		}
		for _, r := range b.schema.Required {
			if !contains(out.Required, r) {
				out.Required = append(out.Required, r)
			}
		}
	}
	return out, strings.Join(labels, ""), nil
}

// cartesian returns every combination picking one branch per part.
// The first part varies slowest.
func cartesian(parts [][]branch) [][]branch {
	out := [][]branch{{}}
	for _, part := range parts {
		next := make([][]branch, 0, len(out)*len(part))
		for _, prefix := range out {
			for _, b := range part {
				combo := make([]branch, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, b))
			}
		}
		out = next
	}
	return out
}

func describe(combo []branch) string {
	labels := make([]string, len(combo))
	for i, b := range combo {
		labels[i] = b.label
		if labels[i] == "" {
			labels[i] = "_"
		}
	}
	return "[" + strings.Join(labels, ", ") + "]"
}

func isObject(s spec.Schema) bool {
	return s.Type.Contains("object") || len(s.Properties) > 0
}

func sameSchema(a, b spec.Schema) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
