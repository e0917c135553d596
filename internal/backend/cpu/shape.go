package cpu

import (
	"fmt"

	"github.com/arrgo-ml/arrgo/internal/array"
)

// Structural kernels. Both allocate fresh owning arrays; aliasing results
// would leak stride assumptions across incompatible shapes.

// Reshape copies the viewed window into a new owning array with newShape.
// Size compatibility is validated by the caller.
func (cpu *CPUBackend) Reshape(x *array.RawArray, newShape array.Shape) *array.RawArray {
	out := newRaw("reshape", newShape, x.DType())
	copy(out.Data(), x.Data())
	return out
}

// Transpose permutes a 2-D array so that out[j, i] == x[i, j]; a 1-D
// transpose is an identity copy. Elements move as opaque byte groups, so
// the permutation is dtype-agnostic.
func (cpu *CPUBackend) Transpose(x *array.RawArray) *array.RawArray {
	shape := x.Shape()
	switch len(shape) {
	case 1:
		return x.Clone()
	case 2:
		rows, cols := shape[0], shape[1]
		out := newRaw("transpose", array.Shape{cols, rows}, x.DType())
		es := x.DType().Size()
		src, dst := x.Data(), out.Data()
		k := 0
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				copy(dst[k*es:(k+1)*es], src[(i*cols+j)*es:(i*cols+j+1)*es])
				k++
			}
		}
		return out
	default:
		panic(fmt.Sprintf("transpose: unsupported rank %d", len(shape)))
	}
}
