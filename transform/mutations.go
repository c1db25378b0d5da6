package transform

import (
	"github.com/go-openapi/spec"
)

// SchemaMutation builds a per-node mutation function for a walk over the
// definitions of root. The outer call lets a mutation see the whole document.
type SchemaMutation func(root *spec.Schema) func(s *spec.Schema) error

// SchemaMutationCollapseSingleAllOf replaces an allOf holding exactly one schema
// with that schema. Title and description of the outer schema win.
func SchemaMutationCollapseSingleAllOf(root *spec.Schema) func(*spec.Schema) error {
	return func(s *spec.Schema) error {
		if len(s.AllOf) != 1 {
			return nil
		}
		inner := s.AllOf[0]
		title, description := s.Title, s.Description
		if len(s.Properties) > 0 || len(s.Required) > 0 {
			// Sibling keywords; leave it for the expansion step which knows how to merge.
			return nil
		}
		*s = inner
		if title != "" {
			s.Title = title
		}
		if description != "" {
			s.Description = description
		}
		return nil
	}
}

// SchemaMutationCollapseNullable rewrites anyOf/oneOf [X, {"type":"null"}] into X
// marked nullable.
func SchemaMutationCollapseNullable(root *spec.Schema) func(*spec.Schema) error {
	return func(s *spec.Schema) error {
		for _, list := range []*[]spec.Schema{&s.AnyOf, &s.OneOf} {
			if len(*list) != 2 {
				continue
			}
			var keep *spec.Schema
			nulls := 0
			for i := range *list {
				if isNullSchema((*list)[i]) {
					nulls++
					continue
				}
				keep = &(*list)[i]
			}
			if nulls != 1 || keep == nil {
				continue
			}
			title, description := s.Title, s.Description
			*s = *keep
			s.Nullable = true
			if title != "" {
				s.Title = title
			}
			if description != "" {
				s.Description = description
			}
			return nil
		}
		return nil
	}
}

// SchemaMutationDiscriminatorConst turns {"const": v} on the named properties into
// {"enum": [v], "default": v} and drops the property from required. A property that
// already is a single-value enum gets the default as well. Generated code can then
// elide the field and inject it when marshaling.
func SchemaMutationDiscriminatorConst(names ...string) SchemaMutation {
	return func(root *spec.Schema) func(*spec.Schema) error {
		return func(s *spec.Schema) error {
			for _, name := range names {
				prop, ok := s.Properties[name]
				if !ok {
					continue
				}
				if v, ok := prop.ExtraProps["const"]; ok {
					delete(prop.ExtraProps, "const")
					if len(prop.ExtraProps) == 0 {
						prop.ExtraProps = nil
					}
					prop.Enum = []interface{}{v}
				}
				if len(prop.Enum) != 1 {
					continue
				}
				prop.Default = prop.Enum[0]
				s.Properties[name] = prop
				s.Required = without(s.Required, name)
			}
			return nil
		}
	}
}

func isNullSchema(s spec.Schema) bool {
	return len(s.Type) == 1 && s.Type.Contains("null") && len(s.Properties) == 0
}

func without(list []string, drop string) []string {
	var out []string
	for _, v := range list {
		if v != drop {
			out = append(out, v)
		}
	}
	return out
}
