package propgen

// Default-application helpers used by generated Apply*Defaults code.
// Each keeps the current value when it is present and substitutes the
// declared literal only when the value is absent.

// Fallback returns v unchanged when present, or a pointer to the
// declared default when v is nil.
func Fallback[T any](v *T, def T) *T {
	if v != nil {
		return v
	}
	return &def
}

// FallbackSlice returns v unchanged when present (including an empty
// non-nil slice), or the declared default when v is nil.
func FallbackSlice[T any](v []T, def []T) []T {
	if v != nil {
		return v
	}
	return def
}

// FallbackMap returns v unchanged when present (including an empty
// non-nil map), or the declared default when v is nil.
func FallbackMap[K comparable, V any](v map[K]V, def map[K]V) map[K]V {
	if v != nil {
		return v
	}
	return def
}

// DefaultEach applies a defaulting function to every element of a
// slice, once, in order. A nil slice stays nil: absence of the whole
// container is not an element concern.
func DefaultEach[T any](v []T, apply func(T, *Context) T, ctx *Context) []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v))
	for i, e := range v {
		out[i] = apply(e, ctx)
	}
	return out
}

// DefaultValues applies a defaulting function to every value of a map.
// Keys pass through untouched; a nil map stays nil.
func DefaultValues[K comparable, V any](m map[K]V, apply func(V, *Context) V, ctx *Context) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, e := range m {
		out[k] = apply(e, ctx)
	}
	return out
}
