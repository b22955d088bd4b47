package golang

import (
	"go/token"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/Ecialo/thriftgen/compiler/gen"
	"github.com/Ecialo/thriftgen/idl"
)

// GenService generates the client-facing unit of a service: an
// interface with one context-first method per declared function.
func (d *Dialect) GenService(s *idl.Schema, svc *idl.Service) *gen.Unit {
	name := TypeName(svc.Name)

	var methods []jen.Code
	if svc.Extends != "" {
		methods = append(methods, d.serviceRef(s, svc.Extends, ""))
	}
	for _, fn := range svc.Funcs {
		methods = append(methods, d.funcSig(s, fn))
	}

	decls := []jen.Code{
		jen.Commentf("%s is the client contract of the %s service.", name, svc.Name),
		jen.Type().Id(name).Interface(methods...),
	}

	return &gen.Unit{
		Kind:    gen.KindService,
		Package: gen.PackageName(s),
		Decls:   decls,
	}
}

// GenBehaviour generates the handler contract of a service: the
// interface a server implementation satisfies, plus an embeddable
// stub rejecting every call.
func (d *Dialect) GenBehaviour(s *idl.Schema, svc *idl.Service) *gen.Unit {
	name := TypeName(svc.Name)
	iface := name + "Behaviour"
	stub := "Unimplemented" + name

	var methods []jen.Code
	if svc.Extends != "" {
		methods = append(methods, d.serviceRef(s, svc.Extends, "Behaviour"))
	}
	for _, fn := range svc.Funcs {
		methods = append(methods, d.funcSig(s, fn))
	}

	decls := []jen.Code{
		jen.Commentf("%s is the handler contract of the %s service.", iface, svc.Name),
		jen.Type().Id(iface).Interface(methods...),
		jen.Line(),
		jen.Commentf("%s rejects every call; embed it to satisfy %s partially.", stub, iface),
		jen.Type().Id(stub).Struct(),
	}

	for _, fn := range svc.Funcs {
		decls = append(decls, jen.Line(), d.stubMethod(s, stub, svc, fn))
	}

	return &gen.Unit{
		Kind:    gen.KindBehaviour,
		Package: gen.PackageName(s),
		Decls:   decls,
	}
}

// funcSig builds the method signature of one service function. Every
// method takes a context first and returns an error last; oneway and
// void functions return the error alone.
func (d *Dialect) funcSig(s *idl.Schema, fn *idl.Function) jen.Code {
	params := make([]jen.Code, 0, len(fn.Params)+1)
	params = append(params, jen.Id("ctx").Qual("context", "Context"))
	for _, p := range fn.Params {
		params = append(params, jen.Id(paramName(p)).Add(d.TypeFor(s, p.Type, p.Optional)))
	}
	sig := jen.Id(idl.Title(fn.Name)).Params(params...)
	if fn.Oneway || fn.Return == nil {
		return sig.Error()
	}
	return sig.Params(d.TypeFor(s, fn.Return, false), jen.Error())
}

// stubMethod emits one rejecting method of the unimplemented stub.
func (d *Dialect) stubMethod(s *idl.Schema, stub string, svc *idl.Service, fn *idl.Function) jen.Code {
	params := make([]jen.Code, 0, len(fn.Params)+1)
	params = append(params, jen.Id("_").Qual("context", "Context"))
	for _, p := range fn.Params {
		params = append(params, jen.Id("_").Add(d.TypeFor(s, p.Type, p.Optional)))
	}
	err := jen.Qual("errors", "New").Call(jen.Lit(svc.Name + ": " + fn.Name + " not implemented"))

	m := jen.Func().Params(jen.Id(stub)).Id(idl.Title(fn.Name)).Params(params...)
	if fn.Oneway || fn.Return == nil {
		return m.Error().Block(jen.Return(err))
	}
	return m.Params(d.TypeFor(s, fn.Return, false), jen.Error()).Block(
		jen.Return(d.zeroFor(s, s, fn.Return), err),
	)
}

// serviceRef resolves a possibly include-qualified service name to the
// embedded interface of an extends clause.
func (d *Dialect) serviceRef(s *idl.Schema, ref, suffix string) jen.Code {
	owner := s
	name := ref
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		if inc, ok := s.Includes[ref[:i]]; ok {
			owner = inc
			name = ref[i+1:]
		}
	}
	return d.qual(s, owner, TypeName(name)+suffix)
}

// paramName returns a usable Go parameter identifier.
func paramName(f *idl.Field) string {
	n := f.Name
	if n == "ctx" || token.IsKeyword(n) {
		return n + "_"
	}
	return n
}
