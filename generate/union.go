package generate

import (
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/etclabscore/go-openrpc-near/internal/naming"
	"github.com/etclabscore/go-openrpc-near/transform"
	"github.com/go-openapi/spec"
)

type unionMember struct {
	field   string
	typ     *jen.Statement
	matcher jen.Code
}

// union declares a struct with one pointer field per oneOf branch, plus the
// MarshalJSON/UnmarshalJSON pair that keeps exactly one of them set.
func (c *goFile) union(typeName, origin string, s spec.Schema) error {
	members := make([]unionMember, 0, len(s.OneOf))
	fields := map[string]bool{}
	for i, b := range s.OneOf {
		ref := transform.RefName(&b)
		label := b.Title
		if label == "" {
			label = ref
		}
		if label == "" {
			if values, ok := stringEnum(b); ok && len(values) == 1 {
				label = values[0]
			}
		}
		if label == "" {
			label = fmt.Sprintf("Variant%d", i)
		}
		field := c.g.FieldName(label)
		if fields[field] {
			return fmt.Errorf("%s: %w: %s", origin, transform.ErrVariantNameCollision, field)
		}
		fields[field] = true

		m := unionMember{field: field}
		if ref != "" {
			target, err := c.resolveDefinition(origin, ref)
			if err != nil {
				return err
			}
			m.typ = jen.Id(c.g.TypeName(ref))
			m.matcher = c.matcher(c.g.TypeName(ref), target)
		} else {
			variantType := typeName + field
			if err := c.declare(variantType, origin+"/"+label); err != nil {
				return err
			}
			if err := c.named(variantType, origin+"/"+label, b); err != nil {
				return err
			}
			m.typ = jen.Id(variantType)
			m.matcher = c.matcher(variantType, b)
		}
		members = append(members, m)
	}

	structFields := make([]jen.Code, 0, len(members))
	matchers := make([]jen.Code, 0, len(members))
	marshalArgs := []jen.Code{jen.Lit(typeName)}
	cases := make([]jen.Code, 0, len(members))
	for i, m := range members {
		structFields = append(structFields, jen.Id(m.field).Op("*").Add(m.typ))
		matchers = append(matchers, m.matcher)
		marshalArgs = append(marshalArgs, jen.Id("u").Dot(m.field))
		cases = append(cases, jen.Case(jen.Lit(i)).Block(
			jen.Id("u").Dot(m.field).Op("=").New(m.typ.Clone()),
			jen.Return(jen.Qual("encoding/json", "Unmarshal").Call(jen.Id("data"), jen.Id("u").Dot(m.field))),
		))
	}
	matchersVar := naming.Unexported(typeName) + "Variants"

	c.docComment(typeName, s)
	if s.Description == "" {
		c.f.Comment(typeName + " holds exactly one of its variants.")
	}
	c.f.Type().Id(typeName).Struct(structFields...)
	c.f.Line()

	c.f.Var().Id(matchersVar).Op("=").Index().Qual(c.g.runtime(), "Matcher").Custom(multiLine("{", "}"), matchers...)
	c.f.Line()

	c.f.Func().Params(jen.Id("u").Id(typeName)).Id("MarshalJSON").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.Return(jen.Qual(c.g.runtime(), "MarshalOne").Custom(multiLine("(", ")"), marshalArgs...)),
	)
	c.f.Line()

	c.f.Func().Params(jen.Id("u").Op("*").Id(typeName)).Id("UnmarshalJSON").Params(jen.Id("data").Index().Byte()).Error().Block(
		jen.List(jen.Id("i"), jen.Err()).Op(":=").Qual(c.g.runtime(), "Select").Call(jen.Lit(typeName), jen.Id("data"), jen.Id(matchersVar)),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Op("*").Id("u").Op("=").Id(typeName).Values(),
		jen.Switch(jen.Id("i")).Block(cases...),
		jen.Return(jen.Nil()),
	)
	c.f.Line()
	return nil
}

func multiLine(open, close string) jen.Options {
	return jen.Options{Open: open, Close: close, Separator: ",", Multi: true}
}

// matcher builds the variant.Matcher literal that recognizes the JSON form of s.
func (c *goFile) matcher(typeName string, s spec.Schema) jen.Code {
	if values, ok := stringEnum(s); ok {
		lits := make([]jen.Code, 0, len(values))
		for _, v := range values {
			lits = append(lits, jen.Lit(v))
		}
		return jen.Qual(c.g.runtime(), "Enum").Values(lits...)
	}
	if len(s.OneOf) == 0 && primaryType(s) == "object" && len(s.Properties) > 0 {
		consts := constProperties(s)
		var required, optional []jen.Code
		for _, name := range propertyNames(s) {
			if _, ok := consts[name]; ok {
				continue
			}
			if isRequired(s, name) {
				required = append(required, jen.Lit(name))
			} else {
				optional = append(optional, jen.Lit(name))
			}
		}
		fields := jen.Dict{}
		if len(required) > 0 {
			fields[jen.Id("Required")] = jen.Index().String().Values(required...)
		}
		if len(optional) > 0 {
			fields[jen.Id("Optional")] = jen.Index().String().Values(optional...)
		}
		if len(consts) > 0 {
			dict := jen.Dict{}
			for k, v := range consts {
				dict[jen.Lit(k)] = jen.Lit(v)
			}
			fields[jen.Id("Consts")] = jen.Map(jen.String()).Interface().Values(dict)
		}
		return jen.Qual(c.g.runtime(), "Object").Values(fields)
	}
	return jen.Qual(c.g.runtime(), "Strict").Types(jen.Id(typeName)).Values()
}

// resolveDefinition follows alias definitions to the schema that gives a
// reference its JSON shape.
func (c *goFile) resolveDefinition(origin, name string) (spec.Schema, error) {
	for hops := 0; hops <= len(c.defs); hops++ {
		s, ok := c.defs[name]
		if !ok {
			return spec.Schema{}, fmt.Errorf("%s: %w: %s", origin, transform.ErrUnresolvedReference, name)
		}
		next := transform.RefName(&s)
		if next == "" {
			return s, nil
		}
		name = next
	}
	return spec.Schema{}, fmt.Errorf("%s: %w: alias chain through %s", origin, transform.ErrReferenceCycle, name)
}
