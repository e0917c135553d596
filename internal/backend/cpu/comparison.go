package cpu

import "github.com/arrgo-ml/arrgo/internal/array"

// Comparison operations - return Bool arrays. Int64 operands compare in
// integer arithmetic to stay exact beyond 2^53.

func (cpu *CPUBackend) compare(op string, a, b *array.RawArray,
	ff func(x, y float64) bool, fi func(x, y int64) bool) *array.RawArray {
	out := newRaw(op, a.Shape(), array.Bool)
	dst := out.AsBool()

	if a.DType() == array.Int64 && b.DType() == array.Int64 {
		for i, p := range zip(a.AsInt64(), b.AsInt64()) {
			dst[i] = fi(p.x, p.y)
		}
		return out
	}

	for i, p := range zip(floats(a), floats(b)) {
		dst[i] = ff(p.x, p.y)
	}
	return out
}

// Equal returns a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("equal", a, b,
		func(x, y float64) bool { return x == y },
		func(x, y int64) bool { return x == y })
}

// NotEqual returns a != b element-wise.
func (cpu *CPUBackend) NotEqual(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("notequal", a, b,
		func(x, y float64) bool { return x != y },
		func(x, y int64) bool { return x != y })
}

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("greater", a, b,
		func(x, y float64) bool { return x > y },
		func(x, y int64) bool { return x > y })
}

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("greaterequal", a, b,
		func(x, y float64) bool { return x >= y },
		func(x, y int64) bool { return x >= y })
}

// Lower returns a < b element-wise.
func (cpu *CPUBackend) Lower(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("lower", a, b,
		func(x, y float64) bool { return x < y },
		func(x, y int64) bool { return x < y })
}

// LowerEqual returns a <= b element-wise.
func (cpu *CPUBackend) LowerEqual(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("lowerequal", a, b,
		func(x, y float64) bool { return x <= y },
		func(x, y int64) bool { return x <= y })
}
