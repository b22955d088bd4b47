package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/Ecialo/thriftgen/idl"
)

// fakeDialect emits minimal placeholder units so core tests exercise
// dispatch, naming and resolution without a real target language.
type fakeDialect struct{}

func (fakeDialect) Name() string { return "fake" }

func (fakeDialect) GenEnum(s *idl.Schema, e *idl.Enum) *Unit {
	return fakeUnit(KindEnum, s, "enum "+e.Name)
}

func (fakeDialect) GenConstants(s *idl.Schema, consts []*idl.Constant) *Unit {
	u := fakeUnit(KindConstant, s, "constants")
	for _, c := range consts {
		u.Decls = append(u.Decls, jen.Comment("const "+c.Name))
	}
	return u
}

func (fakeDialect) GenStruct(s *idl.Schema, st *idl.Struct) *Unit {
	kind := KindStruct
	switch st.Kind {
	case idl.StructKindUnion:
		kind = KindUnion
	case idl.StructKindException:
		kind = KindException
	}
	return fakeUnit(kind, s, st.Kind.String()+" "+st.Name)
}

func (fakeDialect) GenService(s *idl.Schema, svc *idl.Service) *Unit {
	return fakeUnit(KindService, s, "service "+svc.Name)
}

func (fakeDialect) GenBehaviour(s *idl.Schema, svc *idl.Service) *Unit {
	return fakeUnit(KindBehaviour, s, "behaviour "+svc.Name)
}

func (fakeDialect) GeneratorFor(s *idl.Schema, t *idl.TypeRef) jen.Code {
	return jen.Id("draw_" + t.Type.String())
}

func (fakeDialect) MaybeFor(s *idl.Schema, t *idl.TypeRef, draw jen.Code) jen.Code {
	return jen.Id("maybe").Call(draw)
}

func (fakeDialect) DefaultsFor(s *idl.Schema, t *idl.TypeRef, value jen.Code) jen.Code {
	return value
}

func (fakeDialect) FallbackFor(s *idl.Schema, t *idl.TypeRef, optional bool, value jen.Code, def *idl.Value) jen.Code {
	return jen.Id("fallback").Call(value)
}

func (fakeDialect) TypeFor(s *idl.Schema, t *idl.TypeRef, optional bool) jen.Code {
	return jen.Id("T")
}

func (fakeDialect) EntityType(s *idl.Schema, st *idl.Struct) jen.Code {
	return jen.Id(idl.Title(st.Name))
}

func (fakeDialect) EnumMemberRef(s *idl.Schema, e *idl.Enum, m idl.EnumMember) jen.Code {
	return jen.Id(e.Name + "_" + m.Name)
}

func (fakeDialect) FieldName(f *idl.Field) string {
	return idl.Title(f.Name)
}

func fakeUnit(kind Kind, s *idl.Schema, marker string) *Unit {
	return &Unit{Kind: kind, Package: PackageName(s), Decls: []jen.Code{jen.Comment(marker)}}
}

// titleResolver resolves names under the schema's own module with no
// namespace handling; every declared constant is owned.
type titleResolver struct{}

func (titleResolver) ResolveName(s *idl.Schema, local string) string {
	if local == "" {
		return s.Module()
	}
	return s.Module() + "." + idl.Title(local)
}

func (titleResolver) OwnsConstant(s *idl.Schema, name string) bool { return true }

func newTestGenerator() *Generator {
	cfg, _ := NewConfig(WithPackage("example.com/out"))
	g := NewGenerator(cfg)
	g.WithDialect(fakeDialect{})
	return g
}
