package cpu

import (
	"fmt"

	"github.com/arrgo-ml/arrgo/internal/array"
)

// Scalar operations: the scalar operand is broadcast to every position.

func toFloat64(scalar any) (float64, bool) {
	switch s := scalar.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	case int32:
		return float64(s), true
	case int64:
		return float64(s), true
	default:
		return 0, false
	}
}

func toInt64(scalar any) (int64, bool) {
	switch s := scalar.(type) {
	case int64:
		return s, true
	case int:
		return int64(s), true
	case int32:
		return int64(s), true
	case float64:
		return int64(s), true
	case float32:
		return int64(s), true
	default:
		return 0, false
	}
}

func (cpu *CPUBackend) scalarArith(op string, x *array.RawArray, scalar any,
	ff func(v, s float64) float64, fi func(v, s int64) int64) *array.RawArray {
	out := newRaw(op, x.Shape(), x.DType())

	switch x.DType() {
	case array.Float64:
		s, ok := toFloat64(scalar)
		if !ok {
			panic(fmt.Sprintf("%s: cannot broadcast %T over a float64 array", op, scalar))
		}
		dst := out.AsFloat64()
		for i, v := range x.AsFloat64() {
			dst[i] = ff(v, s)
		}
	case array.Int64:
		s, ok := toInt64(scalar)
		if !ok {
			panic(fmt.Sprintf("%s: cannot broadcast %T over an int64 array", op, scalar))
		}
		dst := out.AsInt64()
		for i, v := range x.AsInt64() {
			dst[i] = fi(v, s)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}
	return out
}

// AddScalar adds a broadcast scalar to every element.
func (cpu *CPUBackend) AddScalar(x *array.RawArray, scalar any) *array.RawArray {
	return cpu.scalarArith("addscalar", x, scalar,
		func(v, s float64) float64 { return v + s },
		func(v, s int64) int64 { return v + s })
}

// SubScalar subtracts a broadcast scalar from every element.
func (cpu *CPUBackend) SubScalar(x *array.RawArray, scalar any) *array.RawArray {
	return cpu.scalarArith("subscalar", x, scalar,
		func(v, s float64) float64 { return v - s },
		func(v, s int64) int64 { return v - s })
}

// MulScalar multiplies every element by a broadcast scalar.
func (cpu *CPUBackend) MulScalar(x *array.RawArray, scalar any) *array.RawArray {
	return cpu.scalarArith("mulscalar", x, scalar,
		func(v, s float64) float64 { return v * s },
		func(v, s int64) int64 { return v * s })
}

// DivScalar divides every element by a broadcast scalar. Like Div, the
// result is Float64 and division by zero follows IEEE-754.
func (cpu *CPUBackend) DivScalar(x *array.RawArray, scalar any) *array.RawArray {
	s, ok := toFloat64(scalar)
	if !ok {
		panic(fmt.Sprintf("divscalar: cannot broadcast %T", scalar))
	}
	out := newRaw("divscalar", x.Shape(), array.Float64)
	dst := out.AsFloat64()
	for i, v := range floats(x) {
		dst[i] = v / s
	}
	return out
}
