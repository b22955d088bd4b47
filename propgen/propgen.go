// Package propgen is the runtime library for generated test-data code.
// It provides lazy, restartable value generators and the default-value
// helpers that the companion units emitted by compiler/gen link against.
//
// A Gen is a description, not a value: building one has no side effects,
// and every invocation with a Context performs an independent fresh draw.
package propgen

import (
	"math/rand"
	"sort"
)

// Context carries the generation state threaded through every draw:
// the random source, a size hint for containers and strings, and the
// recursion depth bound for self-referential types.
type Context struct {
	// Size bounds the length of generated containers and strings.
	Size int
	// MaxDepth bounds recursion into nested entities. Past the bound,
	// optional draws are always absent and container draws are empty,
	// which terminates generation for recursive schemas.
	MaxDepth int

	rnd   *rand.Rand
	depth int
}

const (
	defaultSize     = 8
	defaultMaxDepth = 6
)

// NewContext returns a generation context seeded with the given seed.
func NewContext(seed int64) *Context {
	return &Context{
		Size:     defaultSize,
		MaxDepth: defaultMaxDepth,
		rnd:      rand.New(rand.NewSource(seed)),
	}
}

// Deeper returns a child context one level deeper. The random source is
// shared; only the depth counter changes.
func (c *Context) Deeper() *Context {
	child := *c
	child.depth++
	return &child
}

// Exhausted reports if the recursion depth bound has been reached.
func (c *Context) Exhausted() bool {
	return c.depth >= c.MaxDepth
}

// Intn returns a uniform value in [0, n).
func (c *Context) Intn(n int) int {
	return c.rnd.Intn(n)
}

// Int63 returns a uniform non-negative int64.
func (c *Context) Int63() int64 {
	return c.rnd.Int63()
}

// Float64 returns a uniform value in [0, 1).
func (c *Context) Float64() float64 {
	return c.rnd.Float64()
}

// len returns a container/string length in [0, Size], zero once the
// depth bound is exhausted.
func (c *Context) len() int {
	if c.Exhausted() || c.Size <= 0 {
		return 0
	}
	return c.rnd.Intn(c.Size + 1)
}

// Gen describes how to draw one pseudo-random value of type T.
type Gen[T any] func(*Context) T

// Just returns a point generator whose every draw is v.
func Just[T any](v T) Gen[T] {
	return func(*Context) T { return v }
}

// OneOf draws uniformly from the given generators.
func OneOf[T any](gens ...Gen[T]) Gen[T] {
	if len(gens) == 0 {
		panic("propgen: OneOf requires at least one generator")
	}
	return func(ctx *Context) T {
		return gens[ctx.Intn(len(gens))](ctx)
	}
}

// Deferred adapts the draw function of a generated entity into a Gen
// that descends one recursion level per draw. Referencing the function
// rather than its result keeps construction lazy for self-referential
// entities.
func Deferred[T any](f func(*Context) T) Gen[T] {
	return func(ctx *Context) T { return f(ctx.Deeper()) }
}

// Map transforms the drawn value.
func Map[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return func(ctx *Context) U {
		return f(g(ctx))
	}
}

// Maybe wraps a value draw in a 50/50 choice between a pointer to a
// fresh draw and nil. Used for optional fields with a value-typed
// representation. Always absent once the depth bound is exhausted.
func Maybe[T any](g Gen[T]) Gen[*T] {
	return func(ctx *Context) *T {
		if ctx.Exhausted() || ctx.Intn(2) == 0 {
			return nil
		}
		v := g(ctx)
		return &v
	}
}

// OrAbsent wraps a draw of a nilable type (pointer, slice or map) in a
// 50/50 choice between a fresh draw and the zero value. Always absent
// once the depth bound is exhausted.
func OrAbsent[T any](g Gen[T]) Gen[T] {
	return func(ctx *Context) T {
		if ctx.Exhausted() || ctx.Intn(2) == 0 {
			var zero T
			return zero
		}
		return g(ctx)
	}
}

// SliceOf draws a slice of 0..Size independent elements.
func SliceOf[T any](elem Gen[T]) Gen[[]T] {
	return func(ctx *Context) []T {
		n := ctx.len()
		out := make([]T, n)
		for i := range out {
			out[i] = elem(ctx)
		}
		return out
	}
}

// SetOf draws a slice of distinct elements. Duplicates drawn by the
// element generator are dropped, so the result may be shorter than the
// size hint.
func SetOf[T comparable](elem Gen[T]) Gen[[]T] {
	return func(ctx *Context) []T {
		n := ctx.len()
		seen := make(map[T]struct{}, n)
		out := make([]T, 0, n)
		for i := 0; i < n; i++ {
			v := elem(ctx)
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
		return out
	}
}

// MapOf draws a map of up to Size independent key/value pairs.
func MapOf[K comparable, V any](key Gen[K], val Gen[V]) Gen[map[K]V] {
	return func(ctx *Context) map[K]V {
		n := ctx.len()
		out := make(map[K]V, n)
		for i := 0; i < n; i++ {
			out[key(ctx)] = val(ctx)
		}
		return out
	}
}

// EnumOf draws uniformly from the declared members of an enum type.
func EnumOf[T ~int32](members ...T) Gen[T] {
	if len(members) == 0 {
		panic("propgen: EnumOf requires at least one member")
	}
	sorted := make([]T, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return func(ctx *Context) T {
		return sorted[ctx.Intn(len(sorted))]
	}
}
