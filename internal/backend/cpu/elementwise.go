package cpu

import (
	"fmt"
	"iter"

	"github.com/arrgo-ml/arrgo/internal/array"
)

// pair holds one aligned element pair of a binary operation.
type pair[T any] struct {
	x, y T
}

// zip returns a finite, restartable sequence over aligned element pairs.
// Each range over the sequence starts from the beginning; no iteration
// state is shared between consumers.
func zip[T any](a, b []T) iter.Seq2[int, pair[T]] {
	return func(yield func(int, pair[T]) bool) {
		for i := range a {
			if !yield(i, pair[T]{a[i], b[i]}) {
				return
			}
		}
	}
}

// arith applies a same-dtype binary arithmetic op. Operand shapes are
// identical by the wrapper's contract.
func (cpu *CPUBackend) arith(op string, a, b *array.RawArray,
	ff func(x, y float64) float64, fi func(x, y int64) int64) *array.RawArray {
	out := newRaw(op, a.Shape(), a.DType())

	switch a.DType() {
	case array.Float64:
		dst := out.AsFloat64()
		for i, p := range zip(a.AsFloat64(), b.AsFloat64()) {
			dst[i] = ff(p.x, p.y)
		}
	case array.Int64:
		dst := out.AsInt64()
		for i, p := range zip(a.AsInt64(), b.AsInt64()) {
			dst[i] = fi(p.x, p.y)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}
	return out
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *array.RawArray) *array.RawArray {
	return cpu.arith("add", a, b,
		func(x, y float64) float64 { return x + y },
		func(x, y int64) int64 { return x + y })
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *array.RawArray) *array.RawArray {
	return cpu.arith("sub", a, b,
		func(x, y float64) float64 { return x - y },
		func(x, y int64) int64 { return x - y })
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *array.RawArray) *array.RawArray {
	return cpu.arith("mul", a, b,
		func(x, y float64) float64 { return x * y },
		func(x, y int64) int64 { return x * y })
}

// Div performs element-wise true division. The result is always Float64;
// division by zero follows IEEE-754 and yields ±Inf or NaN.
func (cpu *CPUBackend) Div(a, b *array.RawArray) *array.RawArray {
	out := newRaw("div", a.Shape(), array.Float64)
	dst := out.AsFloat64()
	for i, p := range zip(floats(a), floats(b)) {
		dst[i] = p.x / p.y
	}
	return out
}

// floats returns the array's elements as float64. Float64 arrays are
// accessed zero-copy; other dtypes are widened into a fresh slice.
func floats(x *array.RawArray) []float64 {
	switch x.DType() {
	case array.Float64:
		return x.AsFloat64()
	case array.Int64:
		src := x.AsInt64()
		out := make([]float64, len(src))
		for i, v := range src {
			out[i] = float64(v)
		}
		return out
	case array.Bool:
		src := x.AsBool()
		out := make([]float64, len(src))
		for i, v := range src {
			if v {
				out[i] = 1
			}
		}
		return out
	default:
		panic(fmt.Sprintf("unsupported dtype %s", x.DType()))
	}
}
