package golang

import (
	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"

	"github.com/Ecialo/thriftgen/idl"
)

const uuidPkg = "github.com/google/uuid"

// TypeName returns the Go type name of a declared entity.
func TypeName(entity string) string {
	return idl.Title(entity)
}

// FieldName returns the exported Go identifier of a field.
func (d *Dialect) FieldName(f *idl.Field) string {
	return inflect.Camelize(f.Name)
}

// EntityType returns the bare Go type of a schema-local data entity.
func (d *Dialect) EntityType(s *idl.Schema, st *idl.Struct) jen.Code {
	return jen.Id(TypeName(st.Name))
}

// EnumMemberRef returns a reference to one member constant of an enum.
func (d *Dialect) EnumMemberRef(s *idl.Schema, e *idl.Enum, m idl.EnumMember) jen.Code {
	return d.qual(s, s, memberName(e, m))
}

// memberName is the Go constant name of an enum member,
// e.g. Status_ACTIVE.
func memberName(e *idl.Enum, m idl.EnumMember) string {
	return TypeName(e.Name) + "_" + m.Name
}

// qual references an identifier declared by the owner schema from code
// emitted into s. Same-schema references stay unqualified; anything
// else imports the owner's generated package.
func (d *Dialect) qual(s, owner *idl.Schema, name string) *jen.Statement {
	if owner == s {
		return jen.Id(name)
	}
	return jen.Qual(d.h.EntityPkgPath(owner), name)
}

// TypeFor returns the Go type of a type reference. Optional fields of
// value-shaped types become pointers; nilable shapes already encode
// absence as nil.
func (d *Dialect) TypeFor(s *idl.Schema, t *idl.TypeRef, optional bool) jen.Code {
	base := d.baseType(s, s, t)
	if optional && !d.nilable(s, t) {
		return jen.Op("*").Add(base)
	}
	return base
}

// baseType returns the Go type without optionality decoration. Names in
// t resolve against s, while cross-package qualification is relative to
// emit, the schema whose generated package the code lands in. The two
// diverge when a typedef chases into an including schema.
func (d *Dialect) baseType(emit, s *idl.Schema, t *idl.TypeRef) jen.Code {
	switch t.Type {
	case idl.TypeBool:
		return jen.Bool()
	case idl.TypeI8:
		return jen.Int8()
	case idl.TypeI16:
		return jen.Int16()
	case idl.TypeI32:
		return jen.Int32()
	case idl.TypeI64:
		return jen.Int64()
	case idl.TypeDouble:
		return jen.Float64()
	case idl.TypeString:
		return jen.String()
	case idl.TypeBinary:
		return jen.Index().Byte()
	case idl.TypeUUID:
		return jen.Qual(uuidPkg, "UUID")
	case idl.TypeList, idl.TypeSet:
		return jen.Index().Add(d.baseType(emit, s, t.Elem))
	case idl.TypeMap:
		return jen.Map(d.baseType(emit, s, t.Key)).Add(d.baseType(emit, s, t.Elem))
	case idl.TypeNamed:
		e, ok := d.named(s, t.Name)
		if !ok {
			// Dangling references are a precondition violation owned
			// by the upstream validator.
			panic("golang: dangling type reference " + t.Name)
		}
		switch e.Kind {
		case idl.KindEnum:
			return d.qual(emit, e.Schema, TypeName(e.Enum.Name))
		case idl.KindTypedef:
			return d.baseType(emit, e.Schema, e.Typedef.Type)
		default:
			// Struct, union and exception instances are always
			// pointer-shaped.
			return jen.Op("*").Add(d.qual(emit, e.Schema, TypeName(e.Struct.Name)))
		}
	default:
		panic("golang: invalid type reference")
	}
}

// nilable reports if the Go representation of the type already encodes
// absence as nil.
func (d *Dialect) nilable(s *idl.Schema, t *idl.TypeRef) bool {
	switch t.Type {
	case idl.TypeBinary, idl.TypeList, idl.TypeSet, idl.TypeMap:
		return true
	case idl.TypeNamed:
		e, ok := d.named(s, t.Name)
		if !ok {
			return false
		}
		switch e.Kind {
		case idl.KindStruct, idl.KindUnion, idl.KindException:
			return true
		case idl.KindTypedef:
			return d.nilable(e.Schema, e.Typedef.Type)
		}
		return false
	default:
		return false
	}
}

// zeroFor returns the zero value of a type's Go representation.
func (d *Dialect) zeroFor(emit, s *idl.Schema, t *idl.TypeRef) jen.Code {
	if t == nil || d.nilable(s, t) {
		return jen.Nil()
	}
	switch t.Type {
	case idl.TypeBool:
		return jen.False()
	case idl.TypeString:
		return jen.Lit("")
	case idl.TypeUUID:
		return jen.Qual(uuidPkg, "Nil")
	case idl.TypeNamed:
		e, ok := d.named(s, t.Name)
		if !ok {
			return jen.Nil()
		}
		switch e.Kind {
		case idl.KindEnum:
			return jen.Add(d.qual(emit, e.Schema, TypeName(e.Enum.Name))).Call(jen.Lit(0))
		case idl.KindTypedef:
			return d.zeroFor(emit, e.Schema, e.Typedef.Type)
		}
		return jen.Nil()
	default:
		return jen.Lit(0)
	}
}
