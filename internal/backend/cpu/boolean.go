package cpu

import "github.com/arrgo-ml/arrgo/internal/array"

// Boolean operations. Operands of any dtype are interpreted by truthiness:
// a non-zero element is true. Note that NaN is non-zero and thus truthy.

// truthy maps the array's elements to booleans.
func truthy(x *array.RawArray) []bool {
	if x.DType() == array.Bool {
		return x.AsBool()
	}
	vals := floats(x)
	out := make([]bool, len(vals))
	for i, v := range vals {
		out[i] = v != 0
	}
	return out
}

// And computes element-wise logical AND.
func (cpu *CPUBackend) And(a, b *array.RawArray) *array.RawArray {
	out := newRaw("and", a.Shape(), array.Bool)
	dst := out.AsBool()
	for i, p := range zip(truthy(a), truthy(b)) {
		dst[i] = p.x && p.y
	}
	return out
}

// Or computes element-wise logical OR.
func (cpu *CPUBackend) Or(a, b *array.RawArray) *array.RawArray {
	out := newRaw("or", a.Shape(), array.Bool)
	dst := out.AsBool()
	for i, p := range zip(truthy(a), truthy(b)) {
		dst[i] = p.x || p.y
	}
	return out
}

// Not computes element-wise logical NOT.
func (cpu *CPUBackend) Not(x *array.RawArray) *array.RawArray {
	out := newRaw("not", x.Shape(), array.Bool)
	dst := out.AsBool()
	for i, v := range truthy(x) {
		dst[i] = !v
	}
	return out
}
