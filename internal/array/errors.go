package array

import "errors"

// Contract violations surfaced by the array core. All are returned
// synchronously from the call that violates the contract and are matched
// with errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrRaggedShape       = errors.New("inconsistent dimensions in nested input")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrTooManyIndices    = errors.New("too many indices for array")
	ErrInvalidAssignment = errors.New("cannot assign to a sub-array slot")
	ErrShapeSizeMismatch = errors.New("new shape is incompatible with array size")
	ErrUnsupportedRank   = errors.New("unsupported rank")
	ErrNonUnitAxis       = errors.New("cannot squeeze axis with size != 1")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrEmptyArray        = errors.New("operation not defined on empty array")
	ErrDegenerateDivisor = errors.New("degrees of freedom leave a zero divisor")
	ErrInvalidPercentile = errors.New("percentile must be between 0 and 100")
)
