package gen

import "github.com/Ecialo/thriftgen/idl"

// Intermediate representation of the per-field draw and default logic.
// The compile step composes IR trees from the schema; lowering turns a
// tree into target declarations in one pass (see testdata.go). Keeping
// the two apart means the compositional rules here never depend on a
// particular emission backend.

// drawExpr describes how to draw one pseudo-random value.
type drawExpr interface{ isDraw() }

type (
	// drawType delegates to the external generator-for-type primitive.
	drawType struct {
		typ *idl.TypeRef
	}
	// drawOptional replaces a draw with a uniform choice between it
	// and the explicit absent value.
	drawOptional struct {
		typ  *idl.TypeRef
		elem drawExpr
	}
	// drawInstance binds every field's draw to its name and constructs
	// one instance from all bindings simultaneously. No binding may
	// depend on another; fields draw independently in declaration
	// order, construction happens once at the end.
	drawInstance struct {
		strct *idl.Struct
		binds []fieldBind
	}
	// drawPoint is the constant generator of a zero-field entity.
	drawPoint struct {
		strct *idl.Struct
	}
)

// fieldBind pairs one field with its compiled draw.
type fieldBind struct {
	field *idl.Field
	expr  drawExpr
}

func (drawType) isDraw()     {}
func (drawOptional) isDraw() {}
func (drawInstance) isDraw() {}
func (drawPoint) isDraw()    {}

// compileDraw builds the draw expression of a data-bearing entity.
// Union fields are implicitly optional: a declared default never
// suppresses the absent branch at generation time.
func compileDraw(st *idl.Struct) drawExpr {
	if len(st.Fields) == 0 {
		return drawPoint{strct: st}
	}
	binds := make([]fieldBind, 0, len(st.Fields))
	for _, f := range st.Fields {
		var e drawExpr = drawType{typ: f.Type}
		if f.Optional || st.Kind == idl.StructKindUnion {
			e = drawOptional{typ: f.Type, elem: e}
		}
		binds = append(binds, fieldBind{field: f, expr: e})
	}
	return drawInstance{strct: st, binds: binds}
}

// defaultExpr describes how to apply declared defaults to an instance.
type defaultExpr interface{ isDefault() }

type (
	// defaultIdentity returns the input unchanged. Covers zero-field
	// entities and enums.
	defaultIdentity struct{}
	// defaultRebuild rebuilds the instance once with every field
	// replaced by its defaulted value: recursive application first,
	// then the literal fallback when the recursion came back absent.
	defaultRebuild struct {
		strct  *idl.Struct
		fields []fieldDefault
	}
)

// fieldDefault is the defaulting rule of one field.
type fieldDefault struct {
	field *idl.Field
}

func (defaultIdentity) isDefault() {}
func (defaultRebuild) isDefault()  {}

// compileDefaults builds the default-application expression of a
// data-bearing entity.
func compileDefaults(st *idl.Struct) defaultExpr {
	if len(st.Fields) == 0 {
		return defaultIdentity{}
	}
	fields := make([]fieldDefault, 0, len(st.Fields))
	for _, f := range st.Fields {
		fields = append(fields, fieldDefault{field: f})
	}
	return defaultRebuild{strct: st, fields: fields}
}
