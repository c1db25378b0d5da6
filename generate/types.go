package generate

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/dave/jennifer/jen"
	"github.com/etclabscore/go-openrpc-near/transform"
	"github.com/go-openapi/spec"
)

func (c *goFile) definition(name string, s spec.Schema) error {
	typeName := c.g.TypeName(name)
	if err := c.declare(typeName, name); err != nil {
		return err
	}

	if ref := transform.RefName(&s); ref != "" {
		c.docComment(typeName, s)
		c.f.Type().Id(typeName).Op("=").Id(c.g.TypeName(ref))
		c.f.Line()
		return nil
	}
	return c.named(typeName, name, s)
}

// named declares typeName for s. origin names the schema location in errors.
func (c *goFile) named(typeName, origin string, s spec.Schema) error {
	if values, ok := stringEnum(s); ok {
		c.docComment(typeName, s)
		c.stringEnum(typeName, values)
		return nil
	}
	if len(s.OneOf) > 0 {
		return c.union(typeName, origin, s)
	}
	if primaryType(s) == "object" && len(s.Properties) > 0 {
		return c.object(typeName, origin, s)
	}
	expr, err := c.typeExpr(typeName, origin, s)
	if err != nil {
		return err
	}
	c.docComment(typeName, s)
	if isBytes(s) {
		// An alias keeps the number array encoding of Bytes.
		c.f.Type().Id(typeName).Op("=").Add(expr)
	} else {
		c.f.Type().Id(typeName).Add(expr)
	}
	c.f.Line()
	return nil
}

// typeExpr returns the Go type for an inline schema. Schemas that need a
// declaration of their own (objects, unions, enums) are declared as ctx.
func (c *goFile) typeExpr(ctx, origin string, s spec.Schema) (*jen.Statement, error) {
	if ref := transform.RefName(&s); ref != "" {
		if _, ok := c.defs[ref]; !ok {
			return nil, fmt.Errorf("%s: %w: %s", origin, transform.ErrUnresolvedReference, ref)
		}
		return jen.Id(c.g.TypeName(ref)), nil
	}
	if _, ok := stringEnum(s); ok || len(s.OneOf) > 0 || (primaryType(s) == "object" && len(s.Properties) > 0) {
		if err := c.declare(ctx, origin); err != nil {
			return nil, err
		}
		if err := c.named(ctx, origin, s); err != nil {
			return nil, err
		}
		return jen.Id(ctx), nil
	}

	switch primaryType(s) {
	case "string":
		return jen.String(), nil
	case "integer":
		return integerType(s.Format), nil
	case "number":
		return jen.Float64(), nil
	case "boolean":
		return jen.Bool(), nil
	case "null":
		return jen.Struct(), nil
	case "array":
		if s.Items == nil || s.Items.Schema == nil {
			return jen.Index().Qual("encoding/json", "RawMessage"), nil
		}
		if isBytes(s) {
			return jen.Qual(c.g.runtime(), "Bytes"), nil
		}
		elem, err := c.typeExpr(ctx+"Item", origin+"[]", *s.Items.Schema)
		if err != nil {
			return nil, err
		}
		return jen.Index().Add(elem), nil
	case "object":
		if s.AdditionalProperties != nil && s.AdditionalProperties.Schema != nil {
			elem, err := c.typeExpr(ctx+"Value", origin+"{}", *s.AdditionalProperties.Schema)
			if err != nil {
				return nil, err
			}
			return jen.Map(jen.String()).Add(elem), nil
		}
	}
	return jen.Qual("encoding/json", "RawMessage"), nil
}

func (c *goFile) stringEnum(typeName string, values []string) {
	c.f.Type().Id(typeName).String()
	c.f.Line()
	defs := make([]jen.Code, 0, len(values))
	for _, v := range values {
		defs = append(defs, jen.Id(c.g.ConstName(typeName, v)).Id(typeName).Op("=").Lit(v))
	}
	c.f.Const().Defs(defs...)
	c.f.Line()
}

func (c *goFile) object(typeName, origin string, s spec.Schema) error {
	consts := constProperties(s)
	fields := []jen.Code{}
	for _, pname := range propertyNames(s) {
		if _, ok := consts[pname]; ok {
			continue
		}
		p := s.Properties[pname]
		fieldName := c.g.FieldName(pname)
		t, err := c.typeExpr(typeName+fieldName, origin+"."+pname, p)
		if err != nil {
			return err
		}
		tag := pname
		if !isRequired(s, pname) || isNullable(p) {
			tag += ",omitempty"
			if !c.nilable(p) {
				t = jen.Op("*").Add(t)
			}
		}
		fields = append(fields, jen.Id(fieldName).Add(t).Tag(map[string]string{"json": tag}))
	}

	c.docComment(typeName, s)
	c.f.Type().Id(typeName).Struct(fields...)
	c.f.Line()
	if len(consts) > 0 {
		c.constMarshaler(typeName, consts)
	}
	return nil
}

// constMarshaler emits a MarshalJSON that writes the elided constant fields.
func (c *goFile) constMarshaler(typeName string, consts map[string]interface{}) {
	dict := jen.Dict{}
	for k, v := range consts {
		dict[jen.Lit(k)] = jen.Lit(v)
	}
	c.f.Func().Params(jen.Id("v").Id(typeName)).Id("MarshalJSON").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.Type().Id("plain").Id(typeName),
		jen.Return(jen.Qual(c.g.runtime(), "MarshalWithConsts").Call(
			jen.Id("plain").Call(jen.Id("v")),
			jen.Map(jen.String()).Interface().Values(dict),
		)),
	)
	c.f.Line()
}

// nilable reports whether the Go type for s already has a nil value.
func (c *goFile) nilable(s spec.Schema) bool {
	if transform.RefName(&s) != "" {
		return false
	}
	if _, ok := stringEnum(s); ok || len(s.OneOf) > 0 {
		return false
	}
	switch primaryType(s) {
	case "array":
		return true
	case "object":
		return len(s.Properties) == 0
	case "":
		return true
	}
	return false
}

func integerType(format string) *jen.Statement {
	switch format {
	case "uint64":
		return jen.Uint64()
	case "uint32":
		return jen.Uint32()
	case "uint16":
		return jen.Uint16()
	case "uint8":
		return jen.Uint8()
	case "int32":
		return jen.Int32()
	}
	return jen.Int64()
}

// primaryType is the first non-null type of s, with properties implying object.
func primaryType(s spec.Schema) string {
	for _, t := range s.Type {
		if t != "null" {
			return t
		}
	}
	if len(s.Type) == 1 {
		return "null"
	}
	if len(s.Properties) > 0 {
		return "object"
	}
	return ""
}

func isBytes(s spec.Schema) bool {
	if primaryType(s) != "array" || s.Items == nil || s.Items.Schema == nil {
		return false
	}
	item := *s.Items.Schema
	return primaryType(item) == "integer" && item.Format == "uint8"
}

func isNullable(s spec.Schema) bool {
	return s.Nullable || (len(s.Type) > 1 && s.Type.Contains("null"))
}

func isRequired(s spec.Schema, name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

func propertyNames(s spec.Schema) []string {
	out := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// constProperties returns the discriminator properties: single-value enums
// carrying the same default.
func constProperties(s spec.Schema) map[string]interface{} {
	out := map[string]interface{}{}
	for name, p := range s.Properties {
		if len(p.Enum) == 1 && p.Default != nil && reflect.DeepEqual(p.Default, p.Enum[0]) {
			out[name] = p.Enum[0]
		}
	}
	return out
}

// stringEnum reports the values of a string enum, including the
// oneOf-of-single-value-enums form.
func stringEnum(s spec.Schema) ([]string, bool) {
	if len(s.OneOf) > 0 {
		values := []string{}
		for _, b := range s.OneOf {
			if len(b.Enum) != 1 || transform.RefName(&b) != "" {
				return nil, false
			}
			v, ok := b.Enum[0].(string)
			if !ok {
				return nil, false
			}
			values = append(values, v)
		}
		return values, true
	}
	if len(s.Enum) == 0 {
		return nil, false
	}
	values := make([]string, 0, len(s.Enum))
	for _, e := range s.Enum {
		v, ok := e.(string)
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}
