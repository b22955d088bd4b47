package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/Ecialo/thriftgen/compiler/gen"
	"github.com/Ecialo/thriftgen/idl"
)

// GenConstants generates the single unit holding every constant the
// schema owns. Scalar and string constants become Go consts; container
// and named-type constants have no constant representation and become
// package vars.
func (d *Dialect) GenConstants(s *idl.Schema, consts []*idl.Constant) *gen.Unit {
	var cdefs, vdefs []jen.Code
	for _, c := range consts {
		name := idl.Title(c.Name)
		typ := d.baseType(s, s, c.Type)
		val := d.LiteralFor(s, c.Type, c.Value)
		if constExpressible(d, s, c.Type) {
			cdefs = append(cdefs, jen.Id(name).Add(typ).Op("=").Add(val))
		} else {
			vdefs = append(vdefs, jen.Id(name).Add(typ).Op("=").Add(val))
		}
	}

	var decls []jen.Code
	if len(cdefs) > 0 {
		decls = append(decls,
			jen.Commentf("Constants declared in %s.", s.Name),
			jen.Const().Defs(cdefs...),
		)
	}
	if len(vdefs) > 0 {
		if len(decls) > 0 {
			decls = append(decls, jen.Line())
		}
		decls = append(decls,
			jen.Commentf("Composite constants declared in %s.", s.Name),
			jen.Var().Defs(vdefs...),
		)
	}

	return &gen.Unit{
		Kind:    gen.KindConstant,
		Package: gen.PackageName(s),
		Decls:   decls,
	}
}

// constExpressible reports if values of the type fit a Go const
// declaration.
func constExpressible(d *Dialect, s *idl.Schema, t *idl.TypeRef) bool {
	rs, rt := d.resolveAlias(s, t)
	switch rt.Type {
	case idl.TypeBool, idl.TypeI8, idl.TypeI16, idl.TypeI32, idl.TypeI64,
		idl.TypeDouble, idl.TypeString:
		return true
	case idl.TypeNamed:
		e, ok := d.named(rs, rt.Name)
		return ok && e.Kind == idl.KindEnum
	default:
		return false
	}
}
