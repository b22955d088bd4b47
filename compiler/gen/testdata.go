package gen

import (
	"go/token"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/Ecialo/thriftgen/idl"
)

// companionSuffix is the naming transform marking a unit as the
// test-data companion of an entity.
const companionSuffix = ".TestData"

// TestDataArtifacts synthesizes the companion test-data unit of every
// typedef, struct, exception, union and enum the schema declares. Each
// companion exposes a draw function (a lazy propgen.Gen value) and a
// default-application function, both parameterized by an opaque
// generation context threaded through unchanged.
func (g *Generator) TestDataArtifacts(s *idl.Schema) []Artifact {
	r := s.Resolver
	var out []Artifact

	// A typedef has no body of its own, only a reference to another
	// type's shape, so its companion name is derived from the alias
	// capitalized under the schema's own module and re-resolved like
	// any other entity.
	for _, td := range s.Typedefs {
		out = append(out, Artifact{
			Name:   r.ResolveName(s, idl.Title(td.Name)) + companionSuffix,
			Stream: StreamTestData,
			Unit:   g.typedefCompanion(s, td),
		})
	}
	for _, st := range s.Structs {
		out = append(out, Artifact{
			Name:   r.ResolveName(s, st.Name) + companionSuffix,
			Stream: StreamTestData,
			Unit:   g.structCompanion(s, st),
		})
	}
	for _, ex := range s.Exceptions {
		out = append(out, Artifact{
			Name:   r.ResolveName(s, ex.Name) + companionSuffix,
			Stream: StreamTestData,
			Unit:   g.structCompanion(s, ex),
		})
	}
	for _, u := range s.Unions {
		out = append(out, Artifact{
			Name:   r.ResolveName(s, u.Name) + companionSuffix,
			Stream: StreamTestData,
			Unit:   g.structCompanion(s, u),
		})
	}
	for _, e := range s.Enums {
		out = append(out, Artifact{
			Name:   r.ResolveName(s, e.Name) + companionSuffix,
			Stream: StreamTestData,
			Unit:   g.enumCompanion(s, e),
		})
	}
	return out
}

// ctxParam builds the generation context parameter. The context is an
// opaque capability token; used means the body threads it somewhere.
func (g *Generator) ctxParam(used bool) jen.Code {
	name := "ctx"
	if !used {
		name = "_"
	}
	return jen.Id(name).Op("*").Qual(g.PropgenPkg(), "Context")
}

// structCompanion builds the companion unit of a struct, union or
// exception by lowering the compiled draw/default IR.
func (g *Generator) structCompanion(s *idl.Schema, st *idl.Struct) *Unit {
	d := g.dialect
	instType := jen.Op("*").Add(d.EntityType(s, st))

	decls := []jen.Code{
		jen.Commentf("%s draws one pseudo-random valid %s. The function value is a", GenerateFuncName(st.Name), st.Name),
		jen.Comment("lazy propgen.Gen; every invocation performs an independent fresh draw."),
		g.lowerDrawFunc(s, st, instType, compileDraw(st)),
		jen.Line(),
		jen.Commentf("%s returns an equivalent %s with declared defaults", DefaultsFuncName(st.Name), st.Name),
		jen.Comment("recursively applied to every unset field."),
		g.lowerDefaultsFunc(s, st, instType, compileDefaults(st)),
	}
	return &Unit{Kind: KindTestData, Package: PackageName(s), Decls: decls}
}

// lowerDrawFunc lowers a draw expression into the emitted function, in
// one pass over the IR.
func (g *Generator) lowerDrawFunc(s *idl.Schema, st *idl.Struct, instType jen.Code, e drawExpr) jen.Code {
	d := g.dialect
	name := GenerateFuncName(st.Name)
	switch e := e.(type) {
	case drawPoint:
		return jen.Func().Id(name).
			Params(g.ctxParam(false)).
			Add(instType).
			Block(jen.Return(jen.Op("&").Add(d.EntityType(s, st)).Values()))
	case drawInstance:
		stmts := make([]jen.Code, 0, len(e.binds)+1)
		values := jen.Dict{}
		for _, b := range e.binds {
			local := localName(d.FieldName(b.field))
			stmts = append(stmts, jen.Id(local).Op(":=").Add(g.lowerDraw(s, b.expr)).Call(jen.Id("ctx")))
			values[jen.Id(d.FieldName(b.field))] = jen.Id(local)
		}
		stmts = append(stmts, jen.Return(jen.Op("&").Add(d.EntityType(s, st)).Values(values)))
		return jen.Func().Id(name).
			Params(g.ctxParam(true)).
			Add(instType).
			Block(stmts...)
	default:
		panic("gen: unexpected draw expression for entity " + st.Name)
	}
}

// lowerDraw lowers one draw expression into a generator value.
func (g *Generator) lowerDraw(s *idl.Schema, e drawExpr) jen.Code {
	d := g.dialect
	switch e := e.(type) {
	case drawType:
		return d.GeneratorFor(s, e.typ)
	case drawOptional:
		return d.MaybeFor(s, e.typ, g.lowerDraw(s, e.elem))
	default:
		panic("gen: draw expression cannot be lowered to a generator value")
	}
}

// lowerDefaultsFunc lowers a default-application expression into the
// emitted function. Rebuilds happen in a single step so an immutable
// instance representation would work just as well.
func (g *Generator) lowerDefaultsFunc(s *idl.Schema, st *idl.Struct, instType jen.Code, e defaultExpr) jen.Code {
	d := g.dialect
	name := DefaultsFuncName(st.Name)
	switch e := e.(type) {
	case defaultIdentity:
		return jen.Func().Id(name).
			Params(jen.Id("v").Add(instType), g.ctxParam(false)).
			Add(instType).
			Block(jen.Return(jen.Id("v")))
	case defaultRebuild:
		values := jen.Dict{}
		for _, fd := range e.fields {
			f := fd.field
			cur := jen.Id("v").Dot(d.FieldName(f))
			expr := d.DefaultsFor(s, f.Type, cur)
			if f.Default != nil {
				optional := f.Optional || st.Kind == idl.StructKindUnion
				expr = d.FallbackFor(s, f.Type, optional, expr, f.Default)
			}
			values[jen.Id(d.FieldName(f))] = expr
		}
		return jen.Func().Id(name).
			Params(jen.Id("v").Add(instType), g.ctxParam(true)).
			Add(instType).
			Block(
				jen.If(jen.Id("v").Op("==").Nil()).Block(jen.Return(jen.Id("v"))),
				jen.Return(jen.Op("&").Add(d.EntityType(s, st)).Values(values)),
			)
	default:
		panic("gen: unexpected default expression for entity " + st.Name)
	}
}

// enumCompanion builds the companion unit of an enum: a point generator
// over the first declared member and identity defaults.
func (g *Generator) enumCompanion(s *idl.Schema, e *idl.Enum) *Unit {
	d := g.dialect
	enumType := d.TypeFor(s, &idl.TypeRef{Type: idl.TypeNamed, Name: e.Name}, false)

	var point jen.Code
	if len(e.Members) > 0 {
		point = d.EnumMemberRef(s, e, e.Members[0])
	} else {
		point = jen.Add(enumType).Call(jen.Lit(0))
	}

	decls := []jen.Code{
		jen.Commentf("%s is the point generator of %s.", GenerateFuncName(e.Name), e.Name),
		jen.Func().Id(GenerateFuncName(e.Name)).
			Params(g.ctxParam(false)).
			Add(enumType).
			Block(jen.Return(point)),
		jen.Line(),
		jen.Commentf("%s is the identity: enums carry no fields to default.", DefaultsFuncName(e.Name)),
		jen.Func().Id(DefaultsFuncName(e.Name)).
			Params(jen.Id("v").Add(enumType), g.ctxParam(false)).
			Add(enumType).
			Block(jen.Return(jen.Id("v"))),
	}
	return &Unit{Kind: KindTestData, Package: PackageName(s), Decls: decls}
}

// typedefCompanion builds the companion unit of a typedef by forwarding
// to the aliased type's generator and defaulting rules.
func (g *Generator) typedefCompanion(s *idl.Schema, td *idl.Typedef) *Unit {
	d := g.dialect
	aliasType := d.TypeFor(s, td.Type, false)

	defaults := d.DefaultsFor(s, td.Type, jen.Id("v"))

	decls := []jen.Code{
		jen.Commentf("%s draws one pseudo-random value of the %s alias.", GenerateFuncName(td.Name), td.Name),
		jen.Func().Id(GenerateFuncName(td.Name)).
			Params(g.ctxParam(true)).
			Add(aliasType).
			Block(jen.Return(jen.Add(d.GeneratorFor(s, td.Type)).Call(jen.Id("ctx")))),
		jen.Line(),
		jen.Commentf("%s applies defaults through the %s alias.", DefaultsFuncName(td.Name), td.Name),
		jen.Func().Id(DefaultsFuncName(td.Name)).
			Params(jen.Id("v").Add(aliasType), g.ctxParam(RecursesDefaults(s, td.Type))).
			Add(aliasType).
			Block(jen.Return(defaults)),
	}
	return &Unit{Kind: KindTestData, Package: PackageName(s), Decls: decls}
}

// localName derives the binding identifier of a field draw.
func localName(field string) string {
	n := strings.ToLower(field[:1]) + field[1:]
	if n == "ctx" || token.IsKeyword(n) {
		n += "_"
	}
	return n
}
