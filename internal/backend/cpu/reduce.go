package cpu

import (
	"math"
	"slices"

	"github.com/arrgo-ml/arrgo/internal/array"
)

// Reductions collapse the full flattened buffer to one float64. The array
// wrapper guarantees non-empty input where required, ddof != size, and
// 0 <= q <= 100, so the loops here can assume well-formed arguments.

// Sum returns the sum of all elements.
func (cpu *CPUBackend) Sum(x *array.RawArray) float64 {
	total := 0.0
	for _, v := range floats(x) {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean.
func (cpu *CPUBackend) Mean(x *array.RawArray) float64 {
	return cpu.Sum(x) / float64(x.NumElements())
}

// Min returns the smallest element.
func (cpu *CPUBackend) Min(x *array.RawArray) float64 {
	vals := floats(x)
	lowest := vals[0]
	for _, v := range vals[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}

// Max returns the largest element.
func (cpu *CPUBackend) Max(x *array.RawArray) float64 {
	vals := floats(x)
	highest := vals[0]
	for _, v := range vals[1:] {
		if v > highest {
			highest = v
		}
	}
	return highest
}

// Var returns the variance with divisor size - ddof.
func (cpu *CPUBackend) Var(x *array.RawArray, ddof int) float64 {
	vals := floats(x)
	mean := cpu.Mean(x)
	ss := 0.0
	for _, v := range vals {
		d := v - mean
		ss += d * d
	}
	return ss / float64(len(vals)-ddof)
}

// Std returns the standard deviation with divisor size - ddof.
func (cpu *CPUBackend) Std(x *array.RawArray, ddof int) float64 {
	return math.Sqrt(cpu.Var(x, ddof))
}

// sortedCopy returns the elements sorted ascending. Always copies: floats
// may return a live window into the array's buffer.
func sortedCopy(x *array.RawArray) []float64 {
	vals := slices.Clone(floats(x))
	slices.Sort(vals)
	return vals
}

// Median returns the middle order statistic, or the midpoint of the two
// middle ones for even sizes.
func (cpu *CPUBackend) Median(x *array.RawArray) float64 {
	vals := sortedCopy(x)
	n := len(vals)
	if n%2 == 0 {
		return (vals[n/2-1] + vals[n/2]) / 2
	}
	return vals[n/2]
}

// Percentile returns the q-th percentile using linear interpolation
// between the two nearest order statistics.
func (cpu *CPUBackend) Percentile(x *array.RawArray, q float64) float64 {
	vals := sortedCopy(x)
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
