package array

import (
	"errors"
	"math"
	"testing"
)

func TestSum(t *testing.T) {
	m := NewMockBackend()

	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}, m)
	if got := a.Sum(); got != 10 {
		t.Errorf("Sum() = %v, want 10", got)
	}

	// The sum of an empty array is the additive identity.
	empty, _ := FromNested[float64]([]float64{}, m)
	if got := empty.Sum(); got != 0 {
		t.Errorf("empty Sum() = %v, want 0", got)
	}
}

func TestMeanMinMax(t *testing.T) {
	m := NewMockBackend()
	a, _ := FromSlice([]float64{3, 1, 4, 1, 5}, Shape{5}, m)

	if got, err := a.Mean(); err != nil || got != 2.8 {
		t.Errorf("Mean() = %v, %v, want 2.8", got, err)
	}
	if got, err := a.Min(); err != nil || got != 1 {
		t.Errorf("Min() = %v, %v, want 1", got, err)
	}
	if got, err := a.Max(); err != nil || got != 5 {
		t.Errorf("Max() = %v, %v, want 5", got, err)
	}
}

func TestReductionsOnEmpty(t *testing.T) {
	m := NewMockBackend()
	empty, _ := FromNested[float64]([]float64{}, m)

	if _, err := empty.Mean(); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Mean(): got %v, want ErrEmptyArray", err)
	}
	if _, err := empty.Min(); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Min(): got %v, want ErrEmptyArray", err)
	}
	if _, err := empty.Max(); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Max(): got %v, want ErrEmptyArray", err)
	}
	if _, err := empty.Var(0); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Var(0): got %v, want ErrEmptyArray", err)
	}
	if _, err := empty.Std(0); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Std(0): got %v, want ErrEmptyArray", err)
	}
	if _, err := empty.Median(); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Median(): got %v, want ErrEmptyArray", err)
	}
	if _, err := empty.Percentile(50); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("empty Percentile(50): got %v, want ErrEmptyArray", err)
	}
}

func TestVarStd(t *testing.T) {
	m := NewMockBackend()
	a, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{4}, m)

	// Population variance (ddof 0): mean 2.5, squared deviations sum 5.
	v, err := a.Var(0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v-1.25) > 1e-12 {
		t.Errorf("Var(0) = %v, want 1.25", v)
	}

	// Sample variance (ddof 1) divides by n-1.
	v1, err := a.Var(1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v1-5.0/3.0) > 1e-12 {
		t.Errorf("Var(1) = %v, want %v", v1, 5.0/3.0)
	}

	s, err := a.Std(0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s-math.Sqrt(1.25)) > 1e-12 {
		t.Errorf("Std(0) = %v, want %v", s, math.Sqrt(1.25))
	}
}

func TestVarDegenerateDivisor(t *testing.T) {
	m := NewMockBackend()
	a, _ := FromSlice([]float64{42}, Shape{1}, m)

	if _, err := a.Var(1); !errors.Is(err, ErrDegenerateDivisor) {
		t.Errorf("Var(1) of 1 element: got %v, want ErrDegenerateDivisor", err)
	}
	if _, err := a.Std(1); !errors.Is(err, ErrDegenerateDivisor) {
		t.Errorf("Std(1) of 1 element: got %v, want ErrDegenerateDivisor", err)
	}
}

func TestMedian(t *testing.T) {
	m := NewMockBackend()

	odd, _ := FromSlice([]float64{3, 1, 4, 1, 5}, Shape{5}, m)
	if got, err := odd.Median(); err != nil || got != 3 {
		t.Errorf("odd Median() = %v, %v, want 3", got, err)
	}

	// Even size: midpoint of the two middle order statistics.
	even, _ := FromSlice([]float64{4, 1, 3, 2}, Shape{4}, m)
	if got, err := even.Median(); err != nil || got != 2.5 {
		t.Errorf("even Median() = %v, %v, want 2.5", got, err)
	}

	// The input order does not matter and the buffer is not reordered.
	assertFloats(t, odd.Data(), []float64{3, 1, 4, 1, 5})
}

func TestPercentile(t *testing.T) {
	m := NewMockBackend()
	a, _ := FromSlice([]float64{3, 1, 4, 1, 5}, Shape{5}, m)

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{50, 3},
		{100, 5},
		{25, 1},   // idx = 1.0 into sorted [1 1 3 4 5]
		{75, 4},   // idx = 3.0
		{90, 4.6}, // idx = 3.6, interpolates 4 and 5
	}

	for _, tt := range tests {
		got, err := a.Percentile(tt.q)
		if err != nil {
			t.Errorf("Percentile(%v) failed: %v", tt.q, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Percentile(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestPercentileOutOfRange(t *testing.T) {
	m := NewMockBackend()
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3}, m)

	if _, err := a.Percentile(-1); !errors.Is(err, ErrInvalidPercentile) {
		t.Errorf("Percentile(-1): got %v, want ErrInvalidPercentile", err)
	}
	if _, err := a.Percentile(100.5); !errors.Is(err, ErrInvalidPercentile) {
		t.Errorf("Percentile(100.5): got %v, want ErrInvalidPercentile", err)
	}
}

// Reductions flatten: a 2-D array reduces the same as its flat data.
func TestReductionIgnoresShape(t *testing.T) {
	m := NewMockBackend()
	flat, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{6}, m)
	grid, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, m)

	if flat.Sum() != grid.Sum() {
		t.Errorf("Sum differs across shapes: %v vs %v", flat.Sum(), grid.Sum())
	}
	fm, _ := flat.Median()
	gm, _ := grid.Median()
	if fm != gm {
		t.Errorf("Median differs across shapes: %v vs %v", fm, gm)
	}
}
