package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/Ecialo/thriftgen/compiler/gen"
	"github.com/Ecialo/thriftgen/idl"
)

// GenEnum generates the unit of one enum: a named int32 type, one
// constant per member and a String method over the declared names.
func (d *Dialect) GenEnum(s *idl.Schema, e *idl.Enum) *gen.Unit {
	name := TypeName(e.Name)

	decls := []jen.Code{
		jen.Commentf("%s is the %s enum.", name, e.Name),
		jen.Type().Id(name).Int32(),
	}

	if len(e.Members) > 0 {
		consts := make([]jen.Code, len(e.Members))
		for i, m := range e.Members {
			consts[i] = jen.Id(memberName(e, m)).Id(name).Op("=").Lit(int(m.Value))
		}
		decls = append(decls,
			jen.Line(),
			jen.Commentf("Members of %s.", name),
			jen.Const().Defs(consts...),
		)
	}

	cases := make([]jen.Code, 0, len(e.Members)+1)
	for _, m := range e.Members {
		cases = append(cases, jen.Case(jen.Id(memberName(e, m))).Block(
			jen.Return(jen.Lit(m.Name)),
		))
	}
	cases = append(cases, jen.Default().Block(
		jen.Return(jen.Lit(name+"(").Op("+").Qual("strconv", "FormatInt").Call(
			jen.Int64().Call(jen.Id("v")), jen.Lit(10),
		).Op("+").Lit(")")),
	))
	decls = append(decls,
		jen.Line(),
		jen.Commentf("String returns the declared name of the member."),
		jen.Func().Params(jen.Id("v").Id(name)).Id("String").Params().String().Block(
			jen.Switch(jen.Id("v")).Block(cases...),
		),
	)

	return &gen.Unit{
		Kind:    gen.KindEnum,
		Package: gen.PackageName(s),
		Decls:   decls,
	}
}
