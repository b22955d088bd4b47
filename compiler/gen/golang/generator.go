package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/Ecialo/thriftgen/compiler/gen"
	"github.com/Ecialo/thriftgen/idl"
)

// GeneratorFor returns a propgen.Gen expression drawing one value of
// the given type. Containers compose element generators; named data
// entities defer to their companion's draw function, descending one
// recursion level per draw so self-referential schemas stay bounded.
func (d *Dialect) GeneratorFor(s *idl.Schema, t *idl.TypeRef) jen.Code {
	return d.generator(s, s, t)
}

func (d *Dialect) generator(emit, s *idl.Schema, t *idl.TypeRef) jen.Code {
	pg := d.h.PropgenPkg()
	switch t.Type {
	case idl.TypeBool:
		return jen.Qual(pg, "Bool").Call()
	case idl.TypeI8:
		return jen.Qual(pg, "I8").Call()
	case idl.TypeI16:
		return jen.Qual(pg, "I16").Call()
	case idl.TypeI32:
		return jen.Qual(pg, "I32").Call()
	case idl.TypeI64:
		return jen.Qual(pg, "I64").Call()
	case idl.TypeDouble:
		return jen.Qual(pg, "Double").Call()
	case idl.TypeString:
		return jen.Qual(pg, "String").Call()
	case idl.TypeBinary:
		return jen.Qual(pg, "Binary").Call()
	case idl.TypeUUID:
		return jen.Qual(pg, "UUID").Call()
	case idl.TypeList:
		return jen.Qual(pg, "SliceOf").Call(d.generator(emit, s, t.Elem))
	case idl.TypeSet:
		return jen.Qual(pg, "SetOf").Call(d.generator(emit, s, t.Elem))
	case idl.TypeMap:
		return jen.Qual(pg, "MapOf").Call(d.generator(emit, s, t.Key), d.generator(emit, s, t.Elem))
	case idl.TypeNamed:
		e, ok := d.named(s, t.Name)
		if !ok {
			panic("golang: dangling type reference " + t.Name)
		}
		switch e.Kind {
		case idl.KindEnum:
			return d.enumGenerator(emit, e)
		case idl.KindTypedef:
			return d.generator(emit, e.Schema, e.Typedef.Type)
		default:
			return jen.Qual(pg, "Deferred").Call(
				d.qual(emit, e.Schema, gen.GenerateFuncName(e.Struct.Name)),
			)
		}
	default:
		panic("golang: invalid type reference")
	}
}

// enumGenerator draws uniformly over the declared members of an enum
// used in a field position.
func (d *Dialect) enumGenerator(emit *idl.Schema, e *idl.NamedEntity) jen.Code {
	pg := d.h.PropgenPkg()
	if len(e.Enum.Members) == 0 {
		zero := jen.Add(d.qual(emit, e.Schema, TypeName(e.Enum.Name))).Call(jen.Lit(0))
		return jen.Qual(pg, "Just").Call(zero)
	}
	members := make([]jen.Code, len(e.Enum.Members))
	for i, m := range e.Enum.Members {
		members[i] = d.qual(emit, e.Schema, memberName(e.Enum, m))
	}
	return jen.Qual(pg, "EnumOf").Call(members...)
}

// MaybeFor wraps a draw in the uniform present/absent choice used for
// optional fields. Value-shaped types gain a pointer; nilable shapes
// reuse their zero value as the absent branch.
func (d *Dialect) MaybeFor(s *idl.Schema, t *idl.TypeRef, draw jen.Code) jen.Code {
	pg := d.h.PropgenPkg()
	if d.nilable(s, t) {
		return jen.Qual(pg, "OrAbsent").Call(draw)
	}
	return jen.Qual(pg, "Maybe").Call(draw)
}
