// Package cpu implements the mandatory pure-Go compute backend.
package cpu

import (
	"fmt"

	"github.com/arrgo-ml/arrgo/internal/array"
)

// CPUBackend implements array operations in pure Go. It is the default
// backend and the only one guaranteed to be available in every build;
// accelerated backends are explicit opt-ins selected at configuration time.
//
// Contract validation (shape equality, emptiness, argument ranges) happens
// in the array wrapper before dispatch; the backend panics on inputs that
// violate its preconditions, treating them as programmer errors.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "cpu"
}

func newRaw(op string, shape array.Shape, dtype array.DataType) *array.RawArray {
	out, err := array.NewRaw(shape, dtype)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result array: %v", op, err))
	}
	return out
}
