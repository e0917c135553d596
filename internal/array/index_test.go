package array

import (
	"errors"
	"testing"
)

func TestAt(t *testing.T) {
	m := NewMockBackend()
	a, err := FromNested[int64]([][]int64{{1, 2, 3}, {4, 5, 6}}, m)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		indices []int
		want    int64
	}{
		{[]int{0, 0}, 1},
		{[]int{1, 2}, 6},
		{[]int{-1, -1}, 6},
		{[]int{-2, 1}, 2},
		{[]int{0, -3}, 1},
	}

	for _, tt := range tests {
		got, err := a.At(tt.indices...)
		if err != nil {
			t.Errorf("At(%v) failed: %v", tt.indices, err)
			continue
		}
		if got != tt.want {
			t.Errorf("At(%v) = %d, want %d", tt.indices, got, tt.want)
		}
	}
}

func TestAtErrors(t *testing.T) {
	m := NewMockBackend()
	a, _ := FromNested[int64]([][]int64{{1, 2, 3}, {4, 5, 6}}, m)

	if _, err := a.At(2, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("At(2, 0): got %v, want ErrIndexOutOfRange", err)
	}
	if _, err := a.At(0, -4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("At(0, -4): got %v, want ErrIndexOutOfRange", err)
	}
	if _, err := a.At(0, 0, 0); !errors.Is(err, ErrTooManyIndices) {
		t.Errorf("At(0, 0, 0): got %v, want ErrTooManyIndices", err)
	}
	if _, err := a.At(0); err == nil {
		t.Error("At(0) on a 2-D array must fail: a partial index is not a scalar")
	}
}

func TestViewAliasesParent(t *testing.T) {
	m := NewMockBackend()
	a, _ := FromNested[int64]([][]int64{{1, 2, 3}, {4, 5, 6}}, m)

	row, err := a.View(1)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, row, Shape{3})
	assertInts(t, row.Data(), []int64{4, 5, 6})
	if !row.IsView() {
		t.Error("View() must be marked as a view")
	}
	if !a.Raw().SharesBuffer(row.Raw()) {
		t.Error("View() must alias the parent buffer")
	}

	// Writes through the view land in the parent...
	if err := row.SetAt(99, 0); err != nil {
		t.Fatal(err)
	}
	if got, _ := a.At(1, 0); got != 99 {
		t.Errorf("parent At(1, 0) = %d after view write, want 99", got)
	}

	// ...and writes through the parent show up in the view.
	if err := a.SetAt(-7, 1, 2); err != nil {
		t.Fatal(err)
	}
	if got, _ := row.At(2); got != -7 {
		t.Errorf("view At(2) = %d after parent write, want -7", got)
	}
}

// A view of a view must resolve to the root buffer by accumulated offsets,
// even when the viewed value occurs earlier in the buffer.
func TestChainedViewOffsets(t *testing.T) {
	m := NewMockBackend()
	// 5 appears at both (0,0,0) and (1,1,0); the chain below must hit the latter.
	a, _ := FromNested[int64]([][][]int64{
		{{5, 1}, {2, 3}},
		{{4, 9}, {5, 6}},
	}, m)

	outer, err := a.View(1)
	if err != nil {
		t.Fatal(err)
	}
	inner, err := outer.View(1)
	if err != nil {
		t.Fatal(err)
	}
	assertShape(t, inner, Shape{2})
	assertInts(t, inner.Data(), []int64{5, 6})

	if err := inner.SetAt(77, 0); err != nil {
		t.Fatal(err)
	}
	if got, _ := a.At(0, 0, 0); got != 5 {
		t.Errorf("write through chained view touched the wrong occurrence: a[0,0,0] = %d, want 5", got)
	}
	if got, _ := a.At(1, 1, 0); got != 77 {
		t.Errorf("a[1,1,0] = %d after chained view write, want 77", got)
	}
}

func TestViewNegativeIndex(t *testing.T) {
	m := NewMockBackend()
	a, _ := FromNested[int64]([][]int64{{1, 2, 3}, {4, 5, 6}}, m)

	row, err := a.View(-1)
	if err != nil {
		t.Fatal(err)
	}
	assertInts(t, row.Data(), []int64{4, 5, 6})
}

func TestViewErrors(t *testing.T) {
	m := NewMockBackend()
	a, _ := FromNested[int64]([][]int64{{1, 2, 3}, {4, 5, 6}}, m)

	if _, err := a.View(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("View(): got %v, want ErrInvalidInput", err)
	}
	if _, err := a.View(0, 0); !errors.Is(err, ErrTooManyIndices) {
		t.Errorf("View(0, 0): full index is a scalar, got %v, want ErrTooManyIndices", err)
	}
	if _, err := a.View(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("View(5): got %v, want ErrIndexOutOfRange", err)
	}
}

func TestSetAtErrors(t *testing.T) {
	m := NewMockBackend()
	a, _ := FromNested[int64]([][]int64{{1, 2, 3}, {4, 5, 6}}, m)

	if err := a.SetAt(0, 1); !errors.Is(err, ErrInvalidAssignment) {
		t.Errorf("SetAt with partial index: got %v, want ErrInvalidAssignment", err)
	}
	if err := a.SetAt(0, 1, 2, 3); !errors.Is(err, ErrTooManyIndices) {
		t.Errorf("SetAt with too many indices: got %v, want ErrTooManyIndices", err)
	}

	// A failed write must leave the buffer untouched.
	if err := a.SetAt(99, 0, 7); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("SetAt out of range: got %v, want ErrIndexOutOfRange", err)
	}
	assertInts(t, a.Data(), []int64{1, 2, 3, 4, 5, 6})
}
