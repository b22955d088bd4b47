package propgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallback(t *testing.T) {
	t.Run("keeps present value", func(t *testing.T) {
		v := 7
		got := Fallback(&v, 42)
		assert.Same(t, &v, got)
	})
	t.Run("substitutes absent value", func(t *testing.T) {
		got := Fallback(nil, 42)
		assert.NotNil(t, got)
		assert.Equal(t, 42, *got)
	})
}

func TestFallbackSlice(t *testing.T) {
	def := []int{1, 2, 3}
	t.Run("keeps present value", func(t *testing.T) {
		v := []int{9}
		assert.Equal(t, v, FallbackSlice(v, def))
	})
	t.Run("keeps empty non-nil value", func(t *testing.T) {
		v := []int{}
		got := FallbackSlice(v, def)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
	t.Run("substitutes nil", func(t *testing.T) {
		assert.Equal(t, def, FallbackSlice(nil, def))
	})
}

func TestFallbackMap(t *testing.T) {
	def := map[string]int{"a": 1}
	t.Run("keeps present value", func(t *testing.T) {
		v := map[string]int{"b": 2}
		assert.Equal(t, v, FallbackMap(v, def))
	})
	t.Run("keeps empty non-nil value", func(t *testing.T) {
		v := map[string]int{}
		got := FallbackMap(v, def)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
	t.Run("substitutes nil", func(t *testing.T) {
		assert.Equal(t, def, FallbackMap(nil, def))
	})
}

func TestDefaultEach(t *testing.T) {
	ctx := NewContext(1)
	double := func(v int, _ *Context) int { return v * 2 }

	t.Run("applies once per element in order", func(t *testing.T) {
		got := DefaultEach([]int{1, 2, 3}, double, ctx)
		assert.Equal(t, []int{2, 4, 6}, got)
	})
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, DefaultEach(nil, double, ctx))
	})
	t.Run("does not mutate the input", func(t *testing.T) {
		in := []int{1}
		DefaultEach(in, double, ctx)
		assert.Equal(t, []int{1}, in)
	})
}

// Applying defaults is idempotent: the first pass settles every absent
// field and later passes find nothing left to substitute. The applied
// function here mirrors the shape of a generated Apply*Defaults body.
func TestApplyDefaultsIdempotent(t *testing.T) {
	type point struct {
		X     float64
		Label *string
		Tags  []string
		Attrs map[string]int64
	}
	ctx := NewContext(1)
	apply := func(v *point, ctx *Context) *point {
		if v == nil {
			return v
		}
		return &point{
			X:     v.X,
			Label: Fallback(v.Label, "origin"),
			Tags:  FallbackSlice(v.Tags, []string{"a", "b"}),
			Attrs: FallbackMap(v.Attrs, map[string]int64{"k": 1}),
		}
	}

	t.Run("absent fields settle after one pass", func(t *testing.T) {
		once := apply(&point{X: 1.5}, ctx)
		twice := apply(once, ctx)
		assert.Equal(t, once, twice)
		assert.Equal(t, twice, apply(twice, ctx))
	})
	t.Run("present fields never move", func(t *testing.T) {
		label := "set"
		in := &point{X: 2, Label: &label, Tags: []string{}, Attrs: map[string]int64{}}
		once := apply(in, ctx)
		assert.Equal(t, in, once)
		assert.Equal(t, once, apply(once, ctx))
	})
	t.Run("container elements settle with the whole", func(t *testing.T) {
		settle := func(v *int64, ctx *Context) *int64 { return Fallback(v, 7) }
		in := []*int64{nil, ptr(int64(3))}
		once := DefaultEach(in, settle, ctx)
		assert.Equal(t, once, DefaultEach(once, settle, ctx))
	})
}

func ptr[T any](v T) *T { return &v }

func TestDefaultValues(t *testing.T) {
	ctx := NewContext(1)
	double := func(v int, _ *Context) int { return v * 2 }

	t.Run("applies to values only", func(t *testing.T) {
		got := DefaultValues(map[string]int{"a": 1, "b": 2}, double, ctx)
		assert.Equal(t, map[string]int{"a": 2, "b": 4}, got)
	})
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, DefaultValues(map[string]int(nil), double, ctx))
	})
}
