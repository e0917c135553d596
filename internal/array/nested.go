package array

import (
	"fmt"
	"math"
	"reflect"
)

// FromNested creates an owning array from arbitrarily nested Go slices,
// inferring the shape from the nesting structure.
//
// The shape is discovered by walking the first element at each nesting
// level until a non-slice or an empty slice is reached. The input is then
// flattened depth-first in encounter order and the flat length is checked
// against the product of the shape; ragged input fails with ErrRaggedShape.
//
// A non-slice top-level value fails with ErrInvalidInput. An empty
// top-level slice yields the empty array: shape (0,), size 0.
//
// Example:
//
//	a, err := array.FromNested[float64]([][]float64{{1, 2}, {3, 4}}, backend)
//	// a.Shape() == Shape{2, 2}, a.Data() == []float64{1, 2, 3, 4}
func FromNested[T Scalar, B Backend](data any, b B) (*Array[T, B], error) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("fromnested: %w: data must be a slice, got %T", ErrInvalidInput, data)
	}

	if v.Len() == 0 {
		raw, err := NewRaw(Shape{0}, inferDataType(*new(T)))
		if err != nil {
			return nil, err
		}
		return New[T, B](raw, b), nil
	}

	shape := inferShape(v)
	flat, err := flatten[T](v, nil)
	if err != nil {
		return nil, err
	}

	if len(flat) != shape.NumElements() {
		return nil, fmt.Errorf("fromnested: %w: shape %v requires %d elements, flattened to %d",
			ErrRaggedShape, shape, shape.NumElements(), len(flat))
	}

	raw, err := NewRaw(shape, inferDataType(*new(T)))
	if err != nil {
		return nil, err
	}
	a := New[T, B](raw, b)
	copy(a.Data(), flat)
	return a, nil
}

// inferShape walks the first element at each nesting level. Discovery stops
// at a non-slice or an empty slice; ragged branches are caught afterwards
// by the length check in FromNested.
func inferShape(v reflect.Value) Shape {
	var shape Shape
	for (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) && v.Len() > 0 {
		shape = append(shape, v.Len())
		v = elem(v.Index(0))
	}
	return shape
}

// flatten appends every leaf of the nested value to dst, depth-first.
func flatten[T Scalar](v reflect.Value, dst []T) ([]T, error) {
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		for i := 0; i < v.Len(); i++ {
			var err error
			dst, err = flatten[T](elem(v.Index(i)), dst)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	}

	s, err := convertScalar[T](v.Interface())
	if err != nil {
		return nil, err
	}
	return append(dst, s), nil
}

// elem unwraps interface values so that []any nesting walks the same as
// typed nested slices.
func elem(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface {
		return v.Elem()
	}
	return v
}

// convertScalar converts a leaf value into the array's element type.
// Any Go integer or float kind converts into a numeric element type;
// bool converts only into bool.
func convertScalar[T Scalar](v any) (T, error) {
	var zero T
	switch any(zero).(type) {
	case bool:
		b, ok := v.(bool)
		if !ok {
			return zero, fmt.Errorf("fromnested: %w: cannot store %T in a bool array", ErrInvalidInput, v)
		}
		return any(b).(T), nil
	case float64:
		f, ok := numericValue(v)
		if !ok {
			return zero, fmt.Errorf("fromnested: %w: unsupported element type %T", ErrInvalidInput, v)
		}
		return any(f).(T), nil
	case int64:
		// Integer sources convert exactly: a float64 round-trip would
		// corrupt magnitudes above 2^53.
		if i, ok, err := integerValue(v); err != nil {
			return zero, fmt.Errorf("fromnested: %w", err)
		} else if ok {
			return any(i).(T), nil
		}
		f, ok := numericValue(v)
		if !ok {
			return zero, fmt.Errorf("fromnested: %w: unsupported element type %T", ErrInvalidInput, v)
		}
		return any(int64(f)).(T), nil
	default:
		panic("unsupported type")
	}
}

// integerValue converts a Go integer kind to int64 without a float64
// round-trip. ok is false for non-integer sources; unsigned values above
// MaxInt64 fail rather than wrap.
func integerValue(v any) (int64, bool, error) {
	switch n := v.(type) {
	case int:
		return int64(n), true, nil
	case int8:
		return int64(n), true, nil
	case int16:
		return int64(n), true, nil
	case int32:
		return int64(n), true, nil
	case int64:
		return n, true, nil
	case uint8:
		return int64(n), true, nil
	case uint16:
		return int64(n), true, nil
	case uint32:
		return int64(n), true, nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, true, fmt.Errorf("%w: %d overflows int64", ErrInvalidInput, n)
		}
		return int64(n), true, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, true, fmt.Errorf("%w: %d overflows int64", ErrInvalidInput, n)
		}
		return int64(n), true, nil
	default:
		return 0, false, nil
	}
}

// numericValue widens any Go numeric kind to float64.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
