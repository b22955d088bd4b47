package golang

import (
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"

	"github.com/Ecialo/thriftgen/idl"
)

func TestDefaultsFor(t *testing.T) {
	_, d := newTestDialect()
	shared := sharedSchema()
	s := tutorialSchema(shared)
	value := jen.Id("v").Dot("Field")

	t.Run("scalar passes through", func(t *testing.T) {
		got := renderExpr(t, d.DefaultsFor(s, &idl.TypeRef{Type: idl.TypeI32}, value))
		assert.Contains(t, got, "var probe = v.Field")
		assert.NotContains(t, got, "propgen")
	})
	t.Run("local struct routes through its companion", func(t *testing.T) {
		got := renderExpr(t, d.DefaultsFor(s, &idl.TypeRef{Type: idl.TypeNamed, Name: "User"}, value))
		assert.Contains(t, got, "ApplyUserDefaults(v.Field, ctx)")
	})
	t.Run("cross-schema struct routes qualified", func(t *testing.T) {
		got := renderExpr(t, d.DefaultsFor(s, &idl.TypeRef{Type: idl.TypeNamed, Name: "shared.Point"}, value))
		assert.Contains(t, got, "shared.ApplyPointDefaults(v.Field, ctx)")
	})
	t.Run("list of structs maps the companion", func(t *testing.T) {
		typ := &idl.TypeRef{Type: idl.TypeList, Elem: &idl.TypeRef{Type: idl.TypeNamed, Name: "shared.Point"}}
		got := renderExpr(t, d.DefaultsFor(s, typ, value))
		assert.Contains(t, got, "propgen.DefaultEach(v.Field, shared.ApplyPointDefaults, ctx)")
	})
	t.Run("map of structs defaults values only", func(t *testing.T) {
		typ := &idl.TypeRef{
			Type: idl.TypeMap,
			Key:  &idl.TypeRef{Type: idl.TypeString},
			Elem: &idl.TypeRef{Type: idl.TypeNamed, Name: "User"},
		}
		got := renderExpr(t, d.DefaultsFor(s, typ, value))
		assert.Contains(t, got, "propgen.DefaultValues(v.Field, ApplyUserDefaults, ctx)")
	})
	t.Run("list of scalars passes through", func(t *testing.T) {
		typ := &idl.TypeRef{Type: idl.TypeList, Elem: &idl.TypeRef{Type: idl.TypeI64}}
		got := renderExpr(t, d.DefaultsFor(s, typ, value))
		assert.NotContains(t, got, "DefaultEach")
	})
	t.Run("nested containers use a closure", func(t *testing.T) {
		typ := &idl.TypeRef{
			Type: idl.TypeList,
			Elem: &idl.TypeRef{Type: idl.TypeList, Elem: &idl.TypeRef{Type: idl.TypeNamed, Name: "shared.Point"}},
		}
		got := renderExpr(t, d.DefaultsFor(s, typ, value))
		assert.Contains(t, got, "propgen.DefaultEach(v.Field, func(v []*shared.Point, ctx *propgen.Context) []*shared.Point")
	})
}

func TestFallbackFor(t *testing.T) {
	_, d := newTestDialect()
	s := tutorialSchema(sharedSchema())
	value := jen.Id("v").Dot("Field")

	t.Run("required value shape keeps the value", func(t *testing.T) {
		got := renderExpr(t, d.FallbackFor(s, &idl.TypeRef{Type: idl.TypeI32}, false, value, idl.IntValue(7)))
		assert.NotContains(t, got, "Fallback")
	})
	t.Run("optional value shape falls back", func(t *testing.T) {
		got := renderExpr(t, d.FallbackFor(s, &idl.TypeRef{Type: idl.TypeString}, true, value, idl.StringValue("origin")))
		assert.Contains(t, got, `propgen.Fallback(v.Field, "origin")`)
	})
	t.Run("list falls back even when required", func(t *testing.T) {
		typ := &idl.TypeRef{Type: idl.TypeList, Elem: &idl.TypeRef{Type: idl.TypeI32}}
		def := &idl.Value{List: []*idl.Value{idl.IntValue(1), idl.IntValue(2)}}
		got := renderExpr(t, d.FallbackFor(s, typ, false, value, def))
		assert.Contains(t, got, "propgen.FallbackSlice(v.Field, []int32{1, 2})")
	})
	t.Run("map falls back", func(t *testing.T) {
		typ := &idl.TypeRef{Type: idl.TypeMap, Key: &idl.TypeRef{Type: idl.TypeString}, Elem: &idl.TypeRef{Type: idl.TypeI32}}
		def := &idl.Value{Map: []idl.MapKV{{Key: idl.StringValue("a"), Value: idl.IntValue(1)}}}
		got := renderExpr(t, d.FallbackFor(s, typ, false, value, def))
		assert.Contains(t, got, "propgen.FallbackMap(v.Field, map[string]int32{")
	})
	t.Run("optional enum falls back to the member", func(t *testing.T) {
		typ := &idl.TypeRef{Type: idl.TypeNamed, Name: "Status"}
		got := renderExpr(t, d.FallbackFor(s, typ, true, value, &idl.Value{Ident: "Status.ACTIVE"}))
		assert.Contains(t, got, "propgen.Fallback(v.Field, Status_ACTIVE)")
	})
	t.Run("entity default keeps the drawn value", func(t *testing.T) {
		typ := &idl.TypeRef{Type: idl.TypeNamed, Name: "shared.Point"}
		got := renderExpr(t, d.FallbackFor(s, typ, true, value, &idl.Value{}))
		assert.NotContains(t, got, "Fallback")
	})
	t.Run("typedef falls back through the alias", func(t *testing.T) {
		got := renderExpr(t, d.FallbackFor(s, &idl.TypeRef{Type: idl.TypeNamed, Name: "shared.UserId"}, true, value, idl.IntValue(9)))
		assert.Contains(t, got, "propgen.Fallback(v.Field, 9)")
	})
}

func TestLiteralFor(t *testing.T) {
	_, d := newTestDialect()
	s := tutorialSchema(sharedSchema())

	cases := []struct {
		name string
		typ  *idl.TypeRef
		def  *idl.Value
		want string
	}{
		{"bool", &idl.TypeRef{Type: idl.TypeBool}, idl.BoolValue(true), "true"},
		{"int as bool", &idl.TypeRef{Type: idl.TypeBool}, idl.IntValue(1), "true"},
		{"i32", &idl.TypeRef{Type: idl.TypeI32}, idl.IntValue(-5), "-5"},
		{"double", &idl.TypeRef{Type: idl.TypeDouble}, idl.DoubleValue(2.5), "2.5"},
		{"int as double", &idl.TypeRef{Type: idl.TypeDouble}, idl.IntValue(3), "3.0"},
		{"string", &idl.TypeRef{Type: idl.TypeString}, idl.StringValue("hi"), `"hi"`},
		{"binary", &idl.TypeRef{Type: idl.TypeBinary}, idl.StringValue("hi"), `[]byte("hi")`},
		{"uuid", &idl.TypeRef{Type: idl.TypeUUID}, idl.StringValue("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), `uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")`},
		{
			"list",
			&idl.TypeRef{Type: idl.TypeList, Elem: &idl.TypeRef{Type: idl.TypeString}},
			&idl.Value{List: []*idl.Value{idl.StringValue("a"), idl.StringValue("b")}},
			`[]string{"a", "b"}`,
		},
		{
			"enum member ident",
			&idl.TypeRef{Type: idl.TypeNamed, Name: "Status"},
			&idl.Value{Ident: "Status.ACTIVE"},
			"Status_ACTIVE",
		},
		{
			"bare member ident resolves against the field type",
			&idl.TypeRef{Type: idl.TypeNamed, Name: "Status"},
			&idl.Value{Ident: "SUSPENDED"},
			"Status_SUSPENDED",
		},
		{
			"constant ident",
			&idl.TypeRef{Type: idl.TypeI32},
			&idl.Value{Ident: "MAX_POINTS"},
			"MAX_POINTS",
		},
		{
			"enum ordinal literal",
			&idl.TypeRef{Type: idl.TypeNamed, Name: "Status"},
			idl.IntValue(2),
			"Status(2)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := renderExpr(t, d.LiteralFor(s, tc.typ, tc.def))
			assert.Contains(t, got, tc.want)
		})
	}
}
