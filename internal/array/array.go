package array

import (
	"fmt"
	"strings"
)

// Array is a generic N-dimensional array with element type T and backend B.
// It wraps a RawArray with type-safe operations.
//
// Type Parameters:
//   - T: element type (must satisfy the Scalar constraint)
//   - B: computation backend (must implement the Backend interface)
//
// Example:
//
//	backend := cpu.New()
//	a := array.Zeros[float64](array.Shape{3, 4}, backend)
//	b := a.AddScalar(1) // every element is 1
type Array[T Scalar, B Backend] struct {
	raw     *RawArray
	backend B
}

// New creates an Array from a RawArray and backend.
func New[T Scalar, B Backend](raw *RawArray, b B) *Array[T, B] {
	return &Array[T, B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates an owning array from a flat Go slice.
// The slice is copied into the array's buffer.
func FromSlice[T Scalar, B Backend](data []T, shape Shape, b B) (*Array[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("fromslice: %w: shape %v requires %d elements, but got %d",
			ErrShapeSizeMismatch, shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	a := New[T, B](raw, b)
	copy(a.Data(), data)

	return a, nil
}

// Shape returns the array's shape.
func (a *Array[T, B]) Shape() Shape {
	return a.raw.Shape()
}

// Size returns the total number of elements.
func (a *Array[T, B]) Size() int {
	return a.raw.NumElements()
}

// NDim returns the number of dimensions.
func (a *Array[T, B]) NDim() int {
	return len(a.raw.Shape())
}

// DType returns the array's data type.
func (a *Array[T, B]) DType() DataType {
	return a.raw.DType()
}

// Raw returns the underlying RawArray.
// Used by backend implementations for low-level operations.
func (a *Array[T, B]) Raw() *RawArray {
	return a.raw
}

// Backend returns the computation backend.
func (a *Array[T, B]) Backend() B {
	return a.backend
}

// IsView reports whether this array aliases another array's buffer.
func (a *Array[T, B]) IsView() bool {
	return a.raw.Offset() != 0 || a.raw.ByteSize() < len(a.raw.buf.data)
}

// Data returns a typed slice over the array's elements.
// The slice directly accesses the underlying memory (zero-copy); for a
// view it starts at the view's base offset.
//
// WARNING: modifications to the returned slice modify the array.
func (a *Array[T, B]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float64:
		return any(a.raw.AsFloat64()).([]T)
	case int64:
		return any(a.raw.AsInt64()).([]T)
	case bool:
		return any(a.raw.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}

// Clone creates a deep copy of the array. The copy always owns its buffer,
// even when the receiver is a view.
func (a *Array[T, B]) Clone() *Array[T, B] {
	return New[T, B](a.raw.Clone(), a.backend)
}

// String renders the array's logical nested structure.
func (a *Array[T, B]) String() string {
	if a.Size() == 0 {
		return "Array([])"
	}
	var sb strings.Builder
	sb.WriteString("Array(")
	formatNested(&sb, a.Data(), a.Shape(), 0)
	sb.WriteString(")")
	return sb.String()
}

func formatNested[T Scalar](sb *strings.Builder, data []T, shape Shape, start int) {
	if len(shape) == 0 {
		fmt.Fprintf(sb, "%v", data[start])
		return
	}
	if len(shape) == 1 {
		sb.WriteString("[")
		for i := 0; i < shape[0]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%v", data[start+i])
		}
		sb.WriteString("]")
		return
	}

	subSize := Shape(shape[1:]).NumElements()
	sb.WriteString("[")
	for i := 0; i < shape[0]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		formatNested(sb, data, shape[1:], start+i*subSize)
	}
	sb.WriteString("]")
}
