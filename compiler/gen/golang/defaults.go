package golang

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/Ecialo/thriftgen/compiler/gen"
	"github.com/Ecialo/thriftgen/idl"
)

// DefaultsFor returns an expression applying declared defaults through
// the given type: nested entities route through their companion's
// defaulting function, containers map it over their elements, and
// everything else passes through untouched.
func (d *Dialect) DefaultsFor(s *idl.Schema, t *idl.TypeRef, value jen.Code) jen.Code {
	return d.defaults(s, s, t, value)
}

func (d *Dialect) defaults(emit, s *idl.Schema, t *idl.TypeRef, value jen.Code) jen.Code {
	if !gen.RecursesDefaults(s, t) {
		return value
	}
	pg := d.h.PropgenPkg()
	switch t.Type {
	case idl.TypeList, idl.TypeSet:
		return jen.Qual(pg, "DefaultEach").Call(value, d.defaultsFunc(emit, s, t.Elem), jen.Id("ctx"))
	case idl.TypeMap:
		return jen.Qual(pg, "DefaultValues").Call(value, d.defaultsFunc(emit, s, t.Elem), jen.Id("ctx"))
	case idl.TypeNamed:
		e, ok := d.named(s, t.Name)
		if !ok {
			panic("golang: dangling type reference " + t.Name)
		}
		if e.Kind == idl.KindTypedef {
			return d.defaults(emit, e.Schema, e.Typedef.Type, value)
		}
		return d.qual(emit, e.Schema, gen.DefaultsFuncName(e.Struct.Name)).Call(value, jen.Id("ctx"))
	default:
		return value
	}
}

// defaultsFunc returns a function value of shape func(T, *Context) T
// applying defaults to one element. Entity elements reuse their
// companion function directly; nested containers need a closure.
func (d *Dialect) defaultsFunc(emit, s *idl.Schema, t *idl.TypeRef) jen.Code {
	pg := d.h.PropgenPkg()
	switch t.Type {
	case idl.TypeList, idl.TypeSet, idl.TypeMap:
		elem := d.baseType(emit, s, t)
		return jen.Func().
			Params(jen.Id("v").Add(elem), jen.Id("ctx").Op("*").Qual(pg, "Context")).
			Add(d.baseType(emit, s, t)).
			Block(jen.Return(d.defaults(emit, s, t, jen.Id("v"))))
	case idl.TypeNamed:
		e, ok := d.named(s, t.Name)
		if !ok {
			panic("golang: dangling type reference " + t.Name)
		}
		if e.Kind == idl.KindTypedef {
			return d.defaultsFunc(emit, e.Schema, e.Typedef.Type)
		}
		return d.qual(emit, e.Schema, gen.DefaultsFuncName(e.Struct.Name))
	default:
		panic("golang: type has no defaulting function")
	}
}

// FallbackFor wraps a recursively defaulted value in the
// fall-back-to-literal step of a field carrying a declared default.
// Only representations that can actually be absent get a fallback;
// a required value-shaped field is always present and keeps whatever
// it holds.
func (d *Dialect) FallbackFor(s *idl.Schema, t *idl.TypeRef, optional bool, value jen.Code, def *idl.Value) jen.Code {
	pg := d.h.PropgenPkg()
	rs, rt := d.resolveAlias(s, t)
	switch rt.Type {
	case idl.TypeBinary, idl.TypeList, idl.TypeSet:
		return jen.Qual(pg, "FallbackSlice").Call(value, d.literal(s, rs, rt, def))
	case idl.TypeMap:
		return jen.Qual(pg, "FallbackMap").Call(value, d.literal(s, rs, rt, def))
	case idl.TypeNamed:
		if e, ok := d.named(rs, rt.Name); ok && e.Kind == idl.KindEnum {
			if !optional {
				return value
			}
			return jen.Qual(pg, "Fallback").Call(value, d.literal(s, rs, rt, def))
		}
		// Entity-literal defaults have no Go constant form; the
		// rebuilt value keeps whatever the draw produced.
		return value
	default:
		if !optional {
			return value
		}
		return jen.Qual(pg, "Fallback").Call(value, d.literal(s, rs, rt, def))
	}
}

// LiteralFor returns the Go expression of a declared literal of the
// given type.
func (d *Dialect) LiteralFor(s *idl.Schema, t *idl.TypeRef, def *idl.Value) jen.Code {
	rs, rt := d.resolveAlias(s, t)
	return d.literal(s, rs, rt, def)
}

// resolveAlias chases typedefs to the terminal type reference and the
// schema its names resolve in.
func (d *Dialect) resolveAlias(s *idl.Schema, t *idl.TypeRef) (*idl.Schema, *idl.TypeRef) {
	if t.Type != idl.TypeNamed {
		return s, t
	}
	e, ok := d.named(s, t.Name)
	if !ok || e.Kind != idl.KindTypedef {
		return s, t
	}
	return d.resolveAlias(e.Schema, e.Typedef.Type)
}

// literal lowers one IDL literal to Go. Names in def resolve against s;
// qualification is relative to emit.
func (d *Dialect) literal(emit, s *idl.Schema, t *idl.TypeRef, def *idl.Value) jen.Code {
	if def.Ident != "" {
		return d.identRef(emit, s, t, def.Ident)
	}
	switch t.Type {
	case idl.TypeBool:
		if def.Bool != nil {
			return jen.Lit(*def.Bool)
		}
		// Thrift accepts 0/1 in boolean positions.
		return jen.Lit(*def.Int != 0)
	case idl.TypeI8, idl.TypeI16, idl.TypeI32:
		return jen.Lit(int(*def.Int))
	case idl.TypeI64:
		return jen.Lit(*def.Int)
	case idl.TypeDouble:
		if def.Double != nil {
			return jen.Lit(*def.Double)
		}
		return jen.Lit(float64(*def.Int))
	case idl.TypeString:
		return jen.Lit(*def.String)
	case idl.TypeBinary:
		return jen.Index().Byte().Parens(jen.Lit(*def.String))
	case idl.TypeUUID:
		return jen.Qual(uuidPkg, "MustParse").Call(jen.Lit(*def.String))
	case idl.TypeList, idl.TypeSet:
		elems := make([]jen.Code, len(def.List))
		for i, ev := range def.List {
			es, et := d.resolveAlias(s, t.Elem)
			elems[i] = d.literal(emit, es, et, ev)
		}
		return jen.Add(d.baseType(emit, s, t)).Values(elems...)
	case idl.TypeMap:
		dict := jen.Dict{}
		for _, kv := range def.Map {
			ks, kt := d.resolveAlias(s, t.Key)
			vs, vt := d.resolveAlias(s, t.Elem)
			dict[d.literal(emit, ks, kt, kv.Key)] = d.literal(emit, vs, vt, kv.Value)
		}
		return jen.Add(d.baseType(emit, s, t)).Values(dict)
	case idl.TypeNamed:
		e, ok := d.named(s, t.Name)
		if ok && e.Kind == idl.KindEnum && def.Int != nil {
			return jen.Add(d.qual(emit, e.Schema, TypeName(e.Enum.Name))).Call(jen.Lit(int(*def.Int)))
		}
		panic("golang: unsupported literal for named type " + t.Name)
	default:
		panic("golang: invalid literal")
	}
}

// identRef resolves a literal identifier to a generated Go constant.
// Dotted forms cover include-qualified names and enum members; a bare
// name is an enum member when the target type is an enum, otherwise a
// top-level constant.
func (d *Dialect) identRef(emit, s *idl.Schema, t *idl.TypeRef, ident string) jen.Code {
	parts := strings.Split(ident, ".")
	owner := s
	if len(parts) > 1 {
		if inc, ok := s.Includes[parts[0]]; ok {
			owner = inc
			parts = parts[1:]
		}
	}
	if len(parts) == 2 {
		for _, e := range owner.Enums {
			if e.Name != parts[0] {
				continue
			}
			for _, m := range e.Members {
				if m.Name == parts[1] {
					return d.qual(emit, owner, memberName(e, m))
				}
			}
		}
		panic("golang: unresolved enum member " + ident)
	}
	if t != nil && t.Type == idl.TypeNamed {
		if e, ok := d.named(s, t.Name); ok && e.Kind == idl.KindEnum {
			for _, m := range e.Enum.Members {
				if m.Name == parts[0] {
					return d.qual(emit, e.Schema, memberName(e.Enum, m))
				}
			}
		}
	}
	return d.qual(emit, owner, idl.Title(parts[0]))
}
