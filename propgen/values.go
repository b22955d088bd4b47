package propgen

import (
	"math"

	"github.com/google/uuid"
)

// Bool draws a uniform boolean.
func Bool() Gen[bool] {
	return func(ctx *Context) bool { return ctx.Intn(2) == 1 }
}

// I8 draws a uniform int8.
func I8() Gen[int8] {
	return func(ctx *Context) int8 { return int8(ctx.Int63()) }
}

// I16 draws a uniform int16.
func I16() Gen[int16] {
	return func(ctx *Context) int16 { return int16(ctx.Int63()) }
}

// I32 draws a uniform int32.
func I32() Gen[int32] {
	return func(ctx *Context) int32 { return int32(ctx.Int63()) }
}

// I64 draws a uniform int64. The sign bit is drawn separately since
// the underlying source only yields non-negative values.
func I64() Gen[int64] {
	return func(ctx *Context) int64 {
		v := ctx.Int63()
		if ctx.Intn(2) == 1 {
			return -v - 1
		}
		return v
	}
}

// Double draws a finite float64. Values concentrate around sane
// magnitudes rather than spanning the whole exponent range; NaN and
// infinities are never drawn.
func Double() Gen[float64] {
	return func(ctx *Context) float64 {
		v := (ctx.Float64() - 0.5) * math.Pow10(ctx.Intn(7))
		return v
	}
}

const stringAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 _-"

// String draws a printable string of 0..Size runes.
func String() Gen[string] {
	return func(ctx *Context) string {
		n := ctx.len()
		out := make([]byte, n)
		for i := range out {
			out[i] = stringAlphabet[ctx.Intn(len(stringAlphabet))]
		}
		return string(out)
	}
}

// Binary draws a byte slice of 0..Size bytes.
func Binary() Gen[[]byte] {
	return func(ctx *Context) []byte {
		n := ctx.len()
		out := make([]byte, n)
		for i := range out {
			out[i] = byte(ctx.Intn(256))
		}
		return out
	}
}

// UUID draws a random UUID from the context's own source, keeping draws
// reproducible for a fixed seed.
func UUID() Gen[uuid.UUID] {
	return func(ctx *Context) uuid.UUID {
		var u uuid.UUID
		for i := range u {
			u[i] = byte(ctx.Intn(256))
		}
		u[6] = (u[6] & 0x0f) | 0x40 // version 4
		u[8] = (u[8] & 0x3f) | 0x80 // variant 10
		return u
	}
}
