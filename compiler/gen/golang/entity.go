package golang

import (
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/Ecialo/thriftgen/compiler/gen"
	"github.com/Ecialo/thriftgen/idl"
)

// GenStruct generates the unit of a struct, union or exception: the
// type declaration with wire tags, a constructor, presence predicates
// for the absent-capable fields, and the error contract for exceptions.
func (d *Dialect) GenStruct(s *idl.Schema, st *idl.Struct) *gen.Unit {
	name := TypeName(st.Name)

	fields := make([]jen.Code, len(st.Fields))
	for i, f := range st.Fields {
		optional := f.Optional || st.Kind == idl.StructKindUnion
		tags := map[string]string{
			"thrift": f.Name + "," + strconv.Itoa(int(f.ID)),
			"json":   jsonTag(f.Name, optional),
		}
		fields[i] = jen.Id(d.FieldName(f)).
			Add(d.TypeFor(s, f.Type, optional)).
			Tag(tags)
	}

	decls := []jen.Code{
		jen.Commentf("%s is the %s %s declared in %s.", name, st.Name, st.Kind, s.Name),
		jen.Type().Id(name).Struct(fields...),
		jen.Line(),
		jen.Commentf("New%s returns a new empty %s.", name, name),
		jen.Func().Id("New" + name).Params().Op("*").Id(name).Block(
			jen.Return(jen.Op("&").Id(name).Values()),
		),
	}

	for _, f := range st.Fields {
		optional := f.Optional || st.Kind == idl.StructKindUnion
		if !optional && !d.nilable(s, f.Type) {
			continue
		}
		fname := d.FieldName(f)
		decls = append(decls,
			jen.Line(),
			jen.Commentf("IsSet%s reports if the %s field is set.", fname, f.Name),
			jen.Func().Params(jen.Id("v").Op("*").Id(name)).Id("IsSet"+fname).Params().Bool().Block(
				jen.Return(jen.Id("v").Dot(fname).Op("!=").Nil()),
			),
		)
	}

	if st.Kind == idl.StructKindException {
		decls = append(decls,
			jen.Line(),
			jen.Commentf("Error implements the error interface."),
			jen.Func().Params(jen.Id("v").Op("*").Id(name)).Id("Error").Params().String().Block(
				jen.Return(jen.Qual("fmt", "Sprintf").Call(
					jen.Lit(name+"(%+v)"), jen.Op("*").Id("v"),
				)),
			),
		)
	}

	return &gen.Unit{
		Kind:    structKind(st.Kind),
		Package: gen.PackageName(s),
		Decls:   decls,
	}
}

func structKind(k idl.StructKind) gen.Kind {
	switch k {
	case idl.StructKindUnion:
		return gen.KindUnion
	case idl.StructKindException:
		return gen.KindException
	default:
		return gen.KindStruct
	}
}

func jsonTag(name string, optional bool) string {
	if optional {
		return name + ",omitempty"
	}
	return name
}
