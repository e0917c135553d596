package array

import (
	"fmt"
	"slices"
)

// Reshape returns a new owning array with the same data and a different
// shape. The product of the new shape must equal the array's size; reshape
// never returns a view, so the result can be mutated without affecting the
// receiver.
//
// Example:
//
//	a, _ := array.FromSlice([]int64{1, 2, 3, 4, 5, 6}, array.Shape{6}, backend)
//	m, _ := a.Reshape(2, 3)
func (a *Array[T, B]) Reshape(newShape ...int) (*Array[T, B], error) {
	s := Shape(newShape)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w: %v", ErrInvalidInput, err)
	}
	if s.NumElements() != a.Size() {
		return nil, fmt.Errorf("reshape: %w: cannot reshape array of size %d into shape %v",
			ErrShapeSizeMismatch, a.Size(), s)
	}
	return New[T, B](a.backend.Reshape(a.raw, s), a.backend), nil
}

// Transpose returns a new owning array with permuted data so that
// result[j, i] == source[i, j]. A 1-D transpose is an identity copy.
// Rank 0 and rank > 2 fail with ErrUnsupportedRank.
func (a *Array[T, B]) Transpose() (*Array[T, B], error) {
	switch a.NDim() {
	case 1, 2:
		return New[T, B](a.backend.Transpose(a.raw), a.backend), nil
	default:
		return nil, fmt.Errorf("transpose: %w: rank %d", ErrUnsupportedRank, a.NDim())
	}
}

// T is a shortcut for Transpose. Panics if the rank is unsupported.
func (a *Array[T, B]) T() *Array[T, B] {
	out, err := a.Transpose()
	if err != nil {
		panic(err)
	}
	return out
}

// Squeeze removes axes of extent 1. With no arguments every unit axis is
// removed; otherwise only the named axes are, and naming an axis whose
// extent is not 1 fails with ErrNonUnitAxis. If every axis is removed the
// resulting shape is (1,) by convention, never ().
//
// Negative axis positions count back from the rank.
func (a *Array[T, B]) Squeeze(axes ...int) (*Array[T, B], error) {
	old := a.Shape()
	var squeezed Shape

	if len(axes) == 0 {
		for _, dim := range old {
			if dim != 1 {
				squeezed = append(squeezed, dim)
			}
		}
	} else {
		named := make(map[int]bool, len(axes))
		for _, ax := range axes {
			norm, err := normalizeIndex(ax, a.NDim(), 0)
			if err != nil {
				return nil, fmt.Errorf("squeeze: %w: axis %d is out of bounds for rank %d",
					ErrIndexOutOfRange, ax, a.NDim())
			}
			named[norm] = true
		}
		for i, dim := range old {
			if !named[i] {
				squeezed = append(squeezed, dim)
				continue
			}
			if dim != 1 {
				return nil, fmt.Errorf("squeeze: %w: axis %d has size %d", ErrNonUnitAxis, i, dim)
			}
		}
	}

	if len(squeezed) == 0 {
		squeezed = Shape{1}
	}
	return New[T, B](a.backend.Reshape(a.raw, squeezed), a.backend), nil
}

// ExpandDims inserts extent-1 axes at the given positions. Multiple
// positions are applied in ascending order; negative positions resolve
// against the grown rank, so -1 appends a trailing unit axis.
//
// Example:
//
//	a, _ := array.FromSlice([]float64{1, 2, 3}, array.Shape{3}, backend)
//	b, _ := a.ExpandDims(0)  // shape (1, 3)
//	c, _ := a.ExpandDims(-1) // shape (3, 1)
func (a *Array[T, B]) ExpandDims(axes ...int) (*Array[T, B], error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("expanddims: %w: at least one axis required", ErrInvalidInput)
	}

	expanded := a.Shape().Clone()
	sorted := slices.Clone(axes)
	slices.Sort(sorted)

	for _, ax := range sorted {
		pos := ax
		if pos < 0 {
			pos = len(expanded) + pos + 1
		}
		if pos < 0 || pos > len(expanded) {
			return nil, fmt.Errorf("expanddims: %w: axis %d is out of bounds for rank %d",
				ErrIndexOutOfRange, ax, len(expanded))
		}
		expanded = slices.Insert(expanded, pos, 1)
	}

	return New[T, B](a.backend.Reshape(a.raw, expanded), a.backend), nil
}
