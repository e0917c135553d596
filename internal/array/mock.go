package array

import (
	"fmt"
	"math"
	"slices"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements every operation naively in float64 for correctness
// verification, without the per-dtype paths of the real CPU backend.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// toFloat64Slice widens any dtype into a fresh float64 slice.
func (m *MockBackend) toFloat64Slice(r *RawArray) []float64 {
	switch r.DType() {
	case Float64:
		return slices.Clone(r.AsFloat64())
	case Int64:
		src := r.AsInt64()
		out := make([]float64, len(src))
		for i, v := range src {
			out[i] = float64(v)
		}
		return out
	case Bool:
		src := r.AsBool()
		out := make([]float64, len(src))
		for i, v := range src {
			if v {
				out[i] = 1
			}
		}
		return out
	default:
		panic("unsupported dtype")
	}
}

// fromFloat64Slice stores float64 values back into a raw array's dtype.
func (m *MockBackend) fromFloat64Slice(vals []float64, dst *RawArray) {
	switch dst.DType() {
	case Float64:
		copy(dst.AsFloat64(), vals)
	case Int64:
		out := dst.AsInt64()
		for i, v := range vals {
			out[i] = int64(v)
		}
	case Bool:
		out := dst.AsBool()
		for i, v := range vals {
			out[i] = v != 0
		}
	default:
		panic("unsupported dtype")
	}
}

func (m *MockBackend) newRaw(shape Shape, dtype DataType) *RawArray {
	out, err := NewRaw(shape, dtype)
	if err != nil {
		panic(err)
	}
	return out
}

// elementWise applies op over aligned element pairs.
func (m *MockBackend) elementWise(a, b *RawArray, dtype DataType, op func(x, y float64) float64) *RawArray {
	result := m.newRaw(a.Shape(), dtype)
	av := m.toFloat64Slice(a)
	bv := m.toFloat64Slice(b)
	out := make([]float64, len(av))
	for i := range av {
		out[i] = op(av[i], bv[i])
	}
	m.fromFloat64Slice(out, result)
	return result
}

// Add performs element-wise addition.
func (m *MockBackend) Add(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, a.DType(), func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func (m *MockBackend) Sub(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, a.DType(), func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func (m *MockBackend) Mul(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, a.DType(), func(x, y float64) float64 { return x * y })
}

// Div performs element-wise true division into a Float64 result.
func (m *MockBackend) Div(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, Float64, func(x, y float64) float64 { return x / y })
}

func (m *MockBackend) scalarWise(x *RawArray, dtype DataType, scalar any, op func(x, s float64) float64) *RawArray {
	s, ok := numericValue(scalar)
	if !ok {
		if b, isBool := scalar.(bool); isBool && b {
			s = 1
		}
	}
	result := m.newRaw(x.Shape(), dtype)
	xv := m.toFloat64Slice(x)
	out := make([]float64, len(xv))
	for i := range xv {
		out[i] = op(xv[i], s)
	}
	m.fromFloat64Slice(out, result)
	return result
}

// AddScalar adds a broadcast scalar to every element.
func (m *MockBackend) AddScalar(x *RawArray, scalar any) *RawArray {
	return m.scalarWise(x, x.DType(), scalar, func(v, s float64) float64 { return v + s })
}

// SubScalar subtracts a broadcast scalar from every element.
func (m *MockBackend) SubScalar(x *RawArray, scalar any) *RawArray {
	return m.scalarWise(x, x.DType(), scalar, func(v, s float64) float64 { return v - s })
}

// MulScalar multiplies every element by a broadcast scalar.
func (m *MockBackend) MulScalar(x *RawArray, scalar any) *RawArray {
	return m.scalarWise(x, x.DType(), scalar, func(v, s float64) float64 { return v * s })
}

// DivScalar divides every element by a broadcast scalar (Float64 result).
func (m *MockBackend) DivScalar(x *RawArray, scalar any) *RawArray {
	return m.scalarWise(x, Float64, scalar, func(v, s float64) float64 { return v / s })
}

func (m *MockBackend) compare(a, b *RawArray, op func(x, y float64) bool) *RawArray {
	result := m.newRaw(a.Shape(), Bool)
	av := m.toFloat64Slice(a)
	bv := m.toFloat64Slice(b)
	out := result.AsBool()
	for i := range av {
		out[i] = op(av[i], bv[i])
	}
	return result
}

// Equal returns a == b element-wise.
func (m *MockBackend) Equal(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x == y })
}

// NotEqual returns a != b element-wise.
func (m *MockBackend) NotEqual(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x != y })
}

// Greater returns a > b element-wise.
func (m *MockBackend) Greater(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x > y })
}

// GreaterEqual returns a >= b element-wise.
func (m *MockBackend) GreaterEqual(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x >= y })
}

// Lower returns a < b element-wise.
func (m *MockBackend) Lower(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x < y })
}

// LowerEqual returns a <= b element-wise.
func (m *MockBackend) LowerEqual(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x <= y })
}

// And performs element-wise logical AND by truthiness.
func (m *MockBackend) And(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x != 0 && y != 0 })
}

// Or performs element-wise logical OR by truthiness.
func (m *MockBackend) Or(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x != 0 || y != 0 })
}

// Not performs element-wise logical negation by truthiness.
func (m *MockBackend) Not(x *RawArray) *RawArray {
	result := m.newRaw(x.Shape(), Bool)
	xv := m.toFloat64Slice(x)
	out := result.AsBool()
	for i := range xv {
		out[i] = xv[i] == 0
	}
	return result
}

// Sum returns the sum of all elements.
func (m *MockBackend) Sum(x *RawArray) float64 {
	total := 0.0
	for _, v := range m.toFloat64Slice(x) {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean.
func (m *MockBackend) Mean(x *RawArray) float64 {
	return m.Sum(x) / float64(x.NumElements())
}

// Min returns the smallest element.
func (m *MockBackend) Min(x *RawArray) float64 {
	vals := m.toFloat64Slice(x)
	lowest := vals[0]
	for _, v := range vals[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}

// Max returns the largest element.
func (m *MockBackend) Max(x *RawArray) float64 {
	vals := m.toFloat64Slice(x)
	highest := vals[0]
	for _, v := range vals[1:] {
		if v > highest {
			highest = v
		}
	}
	return highest
}

// Var returns the variance with divisor size - ddof.
func (m *MockBackend) Var(x *RawArray, ddof int) float64 {
	vals := m.toFloat64Slice(x)
	mean := m.Mean(x)
	ss := 0.0
	for _, v := range vals {
		d := v - mean
		ss += d * d
	}
	return ss / float64(len(vals)-ddof)
}

// Std returns the standard deviation with divisor size - ddof.
func (m *MockBackend) Std(x *RawArray, ddof int) float64 {
	return math.Sqrt(m.Var(x, ddof))
}

// Median returns the middle order statistic.
func (m *MockBackend) Median(x *RawArray) float64 {
	vals := m.toFloat64Slice(x)
	slices.Sort(vals)
	n := len(vals)
	if n%2 == 0 {
		return (vals[n/2-1] + vals[n/2]) / 2
	}
	return vals[n/2]
}

// Percentile returns the q-th percentile with linear interpolation.
func (m *MockBackend) Percentile(x *RawArray, q float64) float64 {
	vals := m.toFloat64Slice(x)
	slices.Sort(vals)
	n := len(vals)
	switch q {
	case 0:
		return vals[0]
	case 100:
		return vals[n-1]
	}

	idx := float64(n-1) * q / 100
	lower := int(idx)
	upper := lower + 1
	if upper >= n {
		return vals[lower]
	}
	weight := idx - float64(lower)
	return vals[lower]*(1-weight) + vals[upper]*weight
}

// Reshape copies the viewed window into a fresh owning array with newShape.
func (m *MockBackend) Reshape(x *RawArray, newShape Shape) *RawArray {
	result := m.newRaw(newShape, x.DType())
	copy(result.Data(), x.Data())
	return result
}

// Transpose permutes a 2-D array; 1-D is an identity copy.
func (m *MockBackend) Transpose(x *RawArray) *RawArray {
	shape := x.Shape()
	switch len(shape) {
	case 1:
		return x.Clone()
	case 2:
		rows, cols := shape[0], shape[1]
		result := m.newRaw(Shape{cols, rows}, x.DType())
		src := m.toFloat64Slice(x)
		out := make([]float64, len(src))
		k := 0
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				out[k] = src[i*cols+j]
				k++
			}
		}
		m.fromFloat64Slice(out, result)
		return result
	default:
		panic(fmt.Sprintf("transpose: unsupported rank %d", len(shape)))
	}
}
