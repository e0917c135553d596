package array

import (
	"fmt"
	"math"
)

// Zeros creates an array filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	a := array.Zeros[float64](array.Shape{3, 4}, backend)
func Zeros[T Scalar, B Backend](shape Shape, b B) *Array[T, B] {
	raw, err := NewRaw(shape, inferDataType(*new(T)))
	if err != nil {
		panic(err) // negative extents are a programmer error
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates an array filled with ones (true for bool arrays).
func Ones[T Scalar, B Backend](shape Shape, b B) *Array[T, B] {
	var one T
	switch p := any(&one).(type) {
	case *float64:
		*p = 1
	case *int64:
		*p = 1
	case *bool:
		*p = true
	}
	return Full[T, B](shape, one, b)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a := array.Full[float64](array.Shape{3, 3}, 3.14, backend)
func Full[T Scalar, B Backend](shape Shape, value T, b B) *Array[T, B] {
	a := Zeros[T, B](shape, b)
	data := a.Data()
	for i := range data {
		data[i] = value
	}
	return a
}

// Empty creates an uninitialized-by-contract array. The buffer is in fact
// zero-initialized: callers must not rely on the contents, but garbage
// values are never handed out.
func Empty[T Scalar, B Backend](shape Shape, b B) *Array[T, B] {
	return Zeros[T, B](shape, b)
}

// Eye creates an n×n identity matrix.
func Eye[T Scalar, B Backend](n int, b B) *Array[T, B] {
	a := Zeros[T, B](Shape{n, n}, b)
	var one T
	switch p := any(&one).(type) {
	case *float64:
		*p = 1
	case *int64:
		*p = 1
	case *bool:
		*p = true
	}
	data := a.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = one
	}
	return a
}

// Arange creates a 1-D array with evenly spaced values in [start, stop),
// stepping by step. A step moving away from stop yields an empty array;
// step 0 fails with ErrInvalidInput. Not supported for bool arrays.
//
// Example:
//
//	a, _ := array.Arange[int64](0, 10, 2, backend) // [0, 2, 4, 6, 8]
func Arange[T Scalar, B Backend](start, stop, step T, b B) (*Array[T, B], error) {
	// Int64 ranges are counted and filled in integer arithmetic so that
	// values above 2^53 stay exact; the float64 path rounds them.
	switch s := any(start).(type) {
	case bool:
		panic("arange: bool arrays are not supported")
	case int64:
		stopI := any(stop).(int64)
		stepI := any(step).(int64)
		if stepI == 0 {
			return nil, fmt.Errorf("arange: %w: step must be non-zero", ErrInvalidInput)
		}

		a := Zeros[T, B](Shape{intRangeLen(s, stopI, stepI)}, b)
		data := any(a.Data()).([]int64)
		for i := range data {
			data[i] = s + int64(i)*stepI
		}
		return a, nil
	}

	startF, _ := numericValue(any(start))
	stopF, _ := numericValue(any(stop))
	stepF, _ := numericValue(any(step))
	if stepF == 0 {
		return nil, fmt.Errorf("arange: %w: step must be non-zero", ErrInvalidInput)
	}

	n := int(math.Ceil((stopF - startF) / stepF))
	if n < 0 {
		n = 0
	}

	a := Zeros[T, B](Shape{n}, b)
	data := any(a.Data()).([]float64)
	for i := range data {
		data[i] = startF + float64(i)*stepF
	}
	return a, nil
}

// intRangeLen returns ceil((stop-start)/step) clamped to zero, computed
// entirely in integer arithmetic.
func intRangeLen(start, stop, step int64) int {
	diff := stop - start
	if (step > 0 && diff <= 0) || (step < 0 && diff >= 0) {
		return 0
	}
	n := diff / step
	if diff%step != 0 {
		n++
	}
	return int(n)
}

// Linspace creates a Float64 array of num evenly spaced values from start
// to stop. With endpoint true the last value is stop itself; otherwise the
// spacing is computed over num intervals and stop is excluded.
//
// Example:
//
//	a, _ := array.Linspace(0, 1, 5, true, backend) // [0, 0.25, 0.5, 0.75, 1]
func Linspace[B Backend](start, stop float64, num int, endpoint bool, b B) (*Array[float64, B], error) {
	if num < 0 {
		return nil, fmt.Errorf("linspace: %w: number of samples must be non-negative, got %d", ErrInvalidInput, num)
	}

	a := Zeros[float64, B](Shape{num}, b)
	data := a.Data()
	switch num {
	case 0:
	case 1:
		data[0] = start
	default:
		div := float64(num)
		if endpoint {
			div = float64(num - 1)
		}
		step := (stop - start) / div
		for i := range data {
			data[i] = start + float64(i)*step
		}
	}
	return a, nil
}
