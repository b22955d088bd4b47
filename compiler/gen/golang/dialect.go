// Package golang is the Go target dialect: it implements the leaf
// emitters and per-type emission primitives of gen.Dialect, producing
// idiomatic Go declarations for every IDL entity.
package golang

import (
	"github.com/Ecialo/thriftgen/compiler/gen"
	"github.com/Ecialo/thriftgen/idl"
)

// Dialect emits Go code. It is stateless; all context comes from the
// generator helper and the schema being generated.
type Dialect struct {
	h gen.Helper
}

// NewDialect creates the Go dialect bound to a generator.
//
// Example:
//
//	g := gen.NewGenerator(cfg)
//	g.WithDialect(golang.NewDialect(g))
func NewDialect(h gen.Helper) *Dialect {
	return &Dialect{h: h}
}

// Name returns the dialect name.
func (d *Dialect) Name() string { return "golang" }

// Verify Dialect implements gen.Dialect at compile time.
var _ gen.Dialect = (*Dialect)(nil)

// named follows a type reference to its declaring entity.
func (d *Dialect) named(s *idl.Schema, name string) (*idl.NamedEntity, bool) {
	return s.ResolveType(name)
}
