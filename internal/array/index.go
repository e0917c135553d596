package array

import "fmt"

// Index translation: multi-dimensional keys resolve to flat offsets by the
// row-major stride formula. Negative components are normalized by adding
// the corresponding extent before bounds checking.

// normalizeIndex resolves a possibly-negative index against a dimension.
func normalizeIndex(idx, dim, axis int) (int, error) {
	norm := idx
	if norm < 0 {
		norm += dim
	}
	if norm < 0 || norm >= dim {
		return 0, fmt.Errorf("%w: index %d is out of bounds for axis %d with size %d",
			ErrIndexOutOfRange, idx, axis, dim)
	}
	return norm, nil
}

// flatOffset resolves a full or partial key to a flat element offset,
// local to this array's window.
func (a *Array[T, B]) flatOffset(indices []int) (int, error) {
	offset := 0
	strides := a.raw.Strides()
	shape := a.Shape()
	for d, idx := range indices {
		norm, err := normalizeIndex(idx, shape[d], d)
		if err != nil {
			return 0, err
		}
		offset += norm * strides[d]
	}
	return offset, nil
}

// At returns the scalar at a full multi-dimensional index.
//
// Each index component may be negative, counting back from the end of its
// axis. Fewer components than dimensions select a sub-array, not a scalar;
// use View for that.
//
// Example:
//
//	a, _ := array.FromNested[int64]([][]int64{{1, 2, 3}, {4, 5, 6}}, backend)
//	v, _ := a.At(1, 2) // 6
//	v, _ = a.At(-1, -1) // 6
func (a *Array[T, B]) At(indices ...int) (T, error) {
	var zero T
	nd := a.NDim()
	if len(indices) > nd {
		return zero, fmt.Errorf("at: %w: got %d indices for %d dimension(s)", ErrTooManyIndices, len(indices), nd)
	}
	if len(indices) < nd {
		return zero, fmt.Errorf("at: expected %d indices, got %d (partial indexing selects a sub-array, use View)",
			nd, len(indices))
	}

	offset, err := a.flatOffset(indices)
	if err != nil {
		return zero, fmt.Errorf("at: %w", err)
	}
	return a.Data()[offset], nil
}

// View returns a sub-array selected by a partial index. The result aliases
// the receiver's buffer instead of copying: its base offset is the
// receiver's offset plus the resolved flat offset, so writes through either
// array are visible through the other. A view of a view accumulates offsets
// into the same root buffer.
//
// Example:
//
//	a, _ := array.FromNested[int64]([][]int64{{1, 2, 3}, {4, 5, 6}}, backend)
//	row, _ := a.View(1)   // shape (3,), aliases elements 4, 5, 6
//	_ = row.SetAt(9, 0)   // a is now [[1, 2, 3], [9, 5, 6]]
func (a *Array[T, B]) View(indices ...int) (*Array[T, B], error) {
	nd := a.NDim()
	if len(indices) == 0 {
		return nil, fmt.Errorf("view: %w: at least one index required", ErrInvalidInput)
	}
	if len(indices) >= nd {
		return nil, fmt.Errorf("view: %w: got %d indices for %d dimension(s)", ErrTooManyIndices, len(indices), nd)
	}

	offset, err := a.flatOffset(indices)
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}

	sub := a.raw.View(offset, a.Shape()[len(indices):])
	return New[T, B](sub, a.backend), nil
}

// SetAt writes a scalar at a full multi-dimensional index. For a view the
// write lands in the root buffer and is immediately visible through the
// parent and every sibling view.
//
// A partial index addresses a multi-element sub-array slot and fails with
// ErrInvalidAssignment: there is no broadcasting on assignment. Offset
// validation happens before the write, so a failed call leaves the buffer
// untouched.
func (a *Array[T, B]) SetAt(value T, indices ...int) error {
	nd := a.NDim()
	if len(indices) > nd {
		return fmt.Errorf("setat: %w: got %d indices for %d dimension(s)", ErrTooManyIndices, len(indices), nd)
	}
	if len(indices) < nd {
		return fmt.Errorf("setat: %w: got %d indices for %d dimension(s)", ErrInvalidAssignment, len(indices), nd)
	}

	offset, err := a.flatOffset(indices)
	if err != nil {
		return fmt.Errorf("setat: %w", err)
	}
	a.Data()[offset] = value
	return nil
}
