package array

import (
	"fmt"
	"unsafe"
)

// buffer is the single contiguous allocation backing one or more arrays.
// Capacity is fixed at creation and never resized; every "growth" operation
// allocates a fresh buffer instead. Unlike a copy-on-write design, the
// buffer is shared directly: a write through any view is immediately visible
// through every other reference.
type buffer struct {
	data []byte
}

func newBuffer(size int) *buffer {
	return &buffer{data: make([]byte, size)}
}

// RawArray is the low-level array representation: a flat row-major buffer
// plus shape, strides and a base offset. Owning arrays have offset 0 into a
// buffer nothing else references; views alias a parent's buffer at a
// positive element offset. Offsets accumulate through view chains, so a
// view of a view still addresses the root buffer directly.
type RawArray struct {
	buf    *buffer  // shared flat storage
	shape  Shape    // array dimensions
	stride []int    // memory strides (row-major)
	dtype  DataType // runtime type information
	offset int      // byte offset into buf for views
}

// NewRaw creates a new RawArray with the given shape and type.
// Memory is zero-initialized.
func NewRaw(shape Shape, dtype DataType) (*RawArray, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawArray{
		buf:    newBuffer(byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		offset: 0,
	}, nil
}

// Shape returns the array's shape.
func (r *RawArray) Shape() Shape {
	return r.shape
}

// Strides returns the array's memory strides.
func (r *RawArray) Strides() []int {
	return r.stride
}

// DType returns the array's data type.
func (r *RawArray) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawArray) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the size of the viewed window in bytes.
func (r *RawArray) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Offset returns the base offset into the shared buffer, in elements.
func (r *RawArray) Offset() int {
	return r.offset / r.dtype.Size()
}

// SharesBuffer reports whether two arrays alias the same underlying buffer.
func (r *RawArray) SharesBuffer(other *RawArray) bool {
	return r.buf == other.buf
}

// Data returns the raw bytes of the viewed window.
// WARNING: direct access to underlying memory. Use with caution.
func (r *RawArray) Data() []byte {
	return r.buf.data[r.offset : r.offset+r.ByteSize()]
}

// AsFloat64 interprets the data as []float64.
// Panics if the array's dtype is not Float64.
func (r *RawArray) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("array dtype is %s, not float64", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buf.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), n)
}

// AsInt64 interprets the data as []int64.
// Panics if the array's dtype is not Int64.
func (r *RawArray) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("array dtype is %s, not int64", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buf.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), n)
}

// AsBool interprets the data as []bool.
// Panics if the array's dtype is not Bool.
func (r *RawArray) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("array dtype is %s, not bool", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buf.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&data[0])), n)
}

// Clone creates a deep copy of the viewed window into a fresh owning buffer.
func (r *RawArray) Clone() *RawArray {
	out, err := NewRaw(r.shape, r.dtype)
	if err != nil {
		panic(err) // shape of an existing array is always valid
	}
	copy(out.buf.data, r.Data())
	return out
}

// View creates a sub-array aliasing this array's buffer. The element offset
// is added to the receiver's own offset, so chained views always resolve
// into the root buffer by accumulated integer offsets, never by value.
func (r *RawArray) View(elemOffset int, shape Shape) *RawArray {
	return &RawArray{
		buf:    r.buf,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  r.dtype,
		offset: r.offset + elemOffset*r.dtype.Size(),
	}
}
