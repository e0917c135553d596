// Copyright 2026 The ArrGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/arrgo-ml/arrgo/internal/array"
)

// Type aliases for public API

// Scalar is a constraint for array element types.
// Supported types: float64, int64, bool.
type Scalar = array.Scalar

// DataType represents the underlying data type of an array.
type DataType = array.DataType

// Data type constants.
const (
	Float64 DataType = array.Float64
	Int64   DataType = array.Int64
	Bool    DataType = array.Bool
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3-D array with dimensions 2×3×4.
type Shape = array.Shape

// RawArray is the low-level array representation: flat storage, shape,
// strides and a base offset. Used by backend implementations.
type RawArray = array.RawArray

// Backend is the interface compute backends implement.
type Backend = array.Backend

// Array is a generic N-dimensional array with element type T and
// backend B.
type Array[T Scalar, B Backend] = array.Array[T, B]

// Sentinel errors, matched with errors.Is.
var (
	ErrInvalidInput      = array.ErrInvalidInput
	ErrRaggedShape       = array.ErrRaggedShape
	ErrIndexOutOfRange   = array.ErrIndexOutOfRange
	ErrTooManyIndices    = array.ErrTooManyIndices
	ErrInvalidAssignment = array.ErrInvalidAssignment
	ErrShapeSizeMismatch = array.ErrShapeSizeMismatch
	ErrUnsupportedRank   = array.ErrUnsupportedRank
	ErrNonUnitAxis       = array.ErrNonUnitAxis
	ErrShapeMismatch     = array.ErrShapeMismatch
	ErrEmptyArray        = array.ErrEmptyArray
	ErrDegenerateDivisor = array.ErrDegenerateDivisor
	ErrInvalidPercentile = array.ErrInvalidPercentile
)

// Construction

// New creates an Array from a RawArray and backend.
func New[T Scalar, B Backend](raw *RawArray, b B) *Array[T, B] {
	return array.New[T, B](raw, b)
}

// NewRaw creates a RawArray with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawArray, error) {
	return array.NewRaw(shape, dtype)
}

// FromNested creates an array from arbitrarily nested Go slices,
// inferring the shape from the nesting structure.
//
// Example:
//
//	a, err := array.FromNested[float64]([][]float64{{1, 2}, {3, 4}}, backend)
func FromNested[T Scalar, B Backend](data any, b B) (*Array[T, B], error) {
	return array.FromNested[T, B](data, b)
}

// FromSlice creates an array from a flat Go slice and an explicit shape.
//
// Example:
//
//	a, err := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3}, backend)
func FromSlice[T Scalar, B Backend](data []T, shape Shape, b B) (*Array[T, B], error) {
	return array.FromSlice[T, B](data, shape, b)
}

// Creation functions

// Zeros creates an array filled with zeros.
func Zeros[T Scalar, B Backend](shape Shape, b B) *Array[T, B] {
	return array.Zeros[T, B](shape, b)
}

// Ones creates an array filled with ones.
func Ones[T Scalar, B Backend](shape Shape, b B) *Array[T, B] {
	return array.Ones[T, B](shape, b)
}

// Full creates an array filled with a specific value.
func Full[T Scalar, B Backend](shape Shape, value T, b B) *Array[T, B] {
	return array.Full[T, B](shape, value, b)
}

// Empty creates an array whose contents the caller must not rely on.
// The buffer is zero-initialized, so garbage values are never handed out.
func Empty[T Scalar, B Backend](shape Shape, b B) *Array[T, B] {
	return array.Empty[T, B](shape, b)
}

// Eye creates an n×n identity matrix.
func Eye[T Scalar, B Backend](n int, b B) *Array[T, B] {
	return array.Eye[T, B](n, b)
}

// Arange creates a 1-D array with evenly spaced values in [start, stop).
//
// Example:
//
//	a, _ := array.Arange[int64](0, 10, 2, backend) // [0, 2, 4, 6, 8]
func Arange[T Scalar, B Backend](start, stop, step T, b B) (*Array[T, B], error) {
	return array.Arange[T, B](start, stop, step, b)
}

// Linspace creates a Float64 array of num evenly spaced values from start
// to stop.
func Linspace[B Backend](start, stop float64, num int, endpoint bool, b B) (*Array[float64, B], error) {
	return array.Linspace[B](start, stop, num, endpoint, b)
}
