package gen

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/Ecialo/thriftgen/idl"
)

// Dialect is the target-language backend consumed by the generator: the
// leaf emitters producing one unit per entity, plus the per-type
// emission primitives the test-data synthesizer composes. The core
// treats every unit body as opaque; only the kind tag is inspected, for
// collision resolution.
//
// The dispatcher guarantees each emitter is called at most once per
// entity per generation pass, so implementations may be stateless.
type Dialect interface {
	// Name returns the dialect name (e.g. "golang").
	Name() string

	// GenEnum generates the unit of one enum declaration.
	GenEnum(s *idl.Schema, e *idl.Enum) *Unit
	// GenConstants generates the single unit holding all constants the
	// schema owns. Never called with an empty constant list.
	GenConstants(s *idl.Schema, consts []*idl.Constant) *Unit
	// GenStruct generates the unit of a struct, union or exception.
	GenStruct(s *idl.Schema, st *idl.Struct) *Unit
	// GenService generates the client-facing unit of a service.
	GenService(s *idl.Schema, svc *idl.Service) *Unit
	// GenBehaviour generates the handler contract unit of a service.
	GenBehaviour(s *idl.Schema, svc *idl.Service) *Unit

	// GeneratorFor returns a draw expression (a propgen.Gen value) for
	// the given type reference. Assumed total over every type reachable
	// from a valid schema.
	GeneratorFor(s *idl.Schema, t *idl.TypeRef) jen.Code
	// MaybeFor wraps a draw expression in the absent/present choice
	// used for optional fields of the given type.
	MaybeFor(s *idl.Schema, t *idl.TypeRef, draw jen.Code) jen.Code
	// DefaultsFor returns an expression that recursively applies
	// declared defaults to the current value of the given type. For
	// types with no fields of their own it returns value unchanged.
	DefaultsFor(s *idl.Schema, t *idl.TypeRef, value jen.Code) jen.Code
	// FallbackFor wraps a recursively defaulted value in the
	// fall-back-to-literal step of a field with a declared default.
	// For representations that can never be absent it returns value
	// unchanged.
	FallbackFor(s *idl.Schema, t *idl.TypeRef, optional bool, value jen.Code, def *idl.Value) jen.Code

	// TypeFor returns the target type expression of a type reference.
	TypeFor(s *idl.Schema, t *idl.TypeRef, optional bool) jen.Code
	// EntityType returns the bare named type of a schema-local data
	// entity, without pointer decoration.
	EntityType(s *idl.Schema, st *idl.Struct) jen.Code
	// EnumMemberRef returns a reference to one enum member.
	EnumMemberRef(s *idl.Schema, e *idl.Enum, m idl.EnumMember) jen.Code
	// FieldName returns the target-language identifier of a field.
	FieldName(f *idl.Field) string
}

// PackageName returns the target package of a schema's generated units:
// the lowered leading segment of the schema's resolved module, matching
// the directory the writer places its files in. Shared between the core
// and dialect implementations so both sides of a cross-schema reference
// agree.
func PackageName(s *idl.Schema) string {
	module := s.Module()
	if s.Resolver != nil {
		module = s.Resolver.ResolveName(s, "")
	}
	if i := strings.IndexByte(module, '.'); i >= 0 {
		module = module[:i]
	}
	return strings.ToLower(module)
}

// GenerateFuncName returns the name of the emitted draw function of an
// entity's companion test-data unit.
func GenerateFuncName(entity string) string {
	return "Generate" + idl.Title(entity)
}

// DefaultsFuncName returns the name of the emitted default-application
// function of an entity's companion test-data unit.
func DefaultsFuncName(entity string) string {
	return "Apply" + idl.Title(entity) + "Defaults"
}

// RecursesDefaults reports whether applying defaults to a value of the
// given type recurses into a nested companion. A type with no fields of
// its own terminates the recursion trivially.
func RecursesDefaults(s *idl.Schema, t *idl.TypeRef) bool {
	switch t.Type {
	case idl.TypeNamed:
		e, ok := s.ResolveType(t.Name)
		if !ok {
			return false
		}
		switch e.Kind {
		case idl.KindStruct, idl.KindUnion, idl.KindException:
			return true
		case idl.KindTypedef:
			return RecursesDefaults(e.Schema, e.Typedef.Type)
		}
		return false
	case idl.TypeList, idl.TypeSet:
		return RecursesDefaults(s, t.Elem)
	case idl.TypeMap:
		return RecursesDefaults(s, t.Elem)
	default:
		return false
	}
}
