package array

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for array operations; the Array
// wrapper performs all contract validation (shape equality, emptiness,
// argument ranges) before dispatching, so backends may assume valid inputs.
//
// Implementations:
//   - internal/backend/cpu: pure Go, always available, mandatory default
//   - MockBackend: naive in-package implementation for tests
//
// Optional accelerated backends (SIMD, BLAS) are selected explicitly at
// configuration time through the public backend package; unavailability is
// reported there, never silently swallowed inside arithmetic.
type Backend interface {
	// Element-wise binary operations. Operands have identical shapes.
	Add(a, b *RawArray) *RawArray
	Sub(a, b *RawArray) *RawArray
	Mul(a, b *RawArray) *RawArray
	// Div performs true division: the result dtype is always Float64 and
	// division by zero follows IEEE-754 (signed infinity or NaN).
	Div(a, b *RawArray) *RawArray

	// Scalar operations (element-wise with a broadcast scalar).
	AddScalar(x *RawArray, scalar any) *RawArray
	SubScalar(x *RawArray, scalar any) *RawArray
	MulScalar(x *RawArray, scalar any) *RawArray
	DivScalar(x *RawArray, scalar any) *RawArray

	// Comparison operations (element-wise, return Bool arrays).
	Equal(a, b *RawArray) *RawArray
	NotEqual(a, b *RawArray) *RawArray
	Greater(a, b *RawArray) *RawArray
	GreaterEqual(a, b *RawArray) *RawArray
	Lower(a, b *RawArray) *RawArray
	LowerEqual(a, b *RawArray) *RawArray

	// Boolean operations. Operands of any dtype are interpreted by
	// truthiness (non-zero is true); results are Bool arrays.
	And(a, b *RawArray) *RawArray
	Or(a, b *RawArray) *RawArray
	Not(x *RawArray) *RawArray

	// Full-buffer reductions. The caller guarantees non-empty input where
	// the operation requires it, ddof != size, and 0 <= q <= 100.
	Sum(x *RawArray) float64
	Mean(x *RawArray) float64
	Min(x *RawArray) float64
	Max(x *RawArray) float64
	Var(x *RawArray, ddof int) float64
	Std(x *RawArray, ddof int) float64
	Median(x *RawArray) float64
	Percentile(x *RawArray, q float64) float64

	// Structural operations. Both return new owning arrays; reshape size
	// compatibility and transpose rank are validated by the caller.
	Reshape(x *RawArray, newShape Shape) *RawArray
	Transpose(x *RawArray) *RawArray

	// Metadata.
	Name() string
}
