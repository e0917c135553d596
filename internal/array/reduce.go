package array

import "fmt"

// Full-buffer reductions. Every reduction reads the flattened data and
// returns a single float64; there is no axis parameter. Validation happens
// here so that backends can assume well-formed input.

// Sum returns the sum of all elements. The sum of an empty array is the
// additive identity 0.
func (a *Array[T, B]) Sum() float64 {
	if a.Size() == 0 {
		return 0
	}
	return a.backend.Sum(a.raw)
}

// Mean returns the arithmetic mean. Fails with ErrEmptyArray on an empty
// array.
func (a *Array[T, B]) Mean() (float64, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("mean: %w", ErrEmptyArray)
	}
	return a.backend.Mean(a.raw), nil
}

// Min returns the smallest element. Fails with ErrEmptyArray on an empty
// array.
func (a *Array[T, B]) Min() (float64, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("min: %w", ErrEmptyArray)
	}
	return a.backend.Min(a.raw), nil
}

// Max returns the largest element. Fails with ErrEmptyArray on an empty
// array.
func (a *Array[T, B]) Max() (float64, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("max: %w", ErrEmptyArray)
	}
	return a.backend.Max(a.raw), nil
}

// Var returns the variance with the given delta degrees of freedom: the
// divisor is size - ddof. Fails with ErrEmptyArray on an empty array and
// with ErrDegenerateDivisor when size == ddof.
func (a *Array[T, B]) Var(ddof int) (float64, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("var: %w", ErrEmptyArray)
	}
	if a.Size() == ddof {
		return 0, fmt.Errorf("var: %w: size %d == ddof %d", ErrDegenerateDivisor, a.Size(), ddof)
	}
	return a.backend.Var(a.raw, ddof), nil
}

// Std returns the standard deviation with the given delta degrees of
// freedom. Shares Var's failure modes.
func (a *Array[T, B]) Std(ddof int) (float64, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("std: %w", ErrEmptyArray)
	}
	if a.Size() == ddof {
		return 0, fmt.Errorf("std: %w: size %d == ddof %d", ErrDegenerateDivisor, a.Size(), ddof)
	}
	return a.backend.Std(a.raw, ddof), nil
}

// Median returns the middle order statistic, or the midpoint of the two
// middle ones for even sizes. Fails with ErrEmptyArray on an empty array.
func (a *Array[T, B]) Median() (float64, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("median: %w", ErrEmptyArray)
	}
	return a.backend.Median(a.raw), nil
}

// Percentile returns the q-th percentile (0 <= q <= 100) using linear
// interpolation between the two nearest order statistics. Fails with
// ErrEmptyArray on an empty array and ErrInvalidPercentile for q outside
// [0, 100].
func (a *Array[T, B]) Percentile(q float64) (float64, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("percentile: %w", ErrEmptyArray)
	}
	if q < 0 || q > 100 {
		return 0, fmt.Errorf("percentile: %w: got %v", ErrInvalidPercentile, q)
	}
	return a.backend.Percentile(a.raw, q), nil
}
