package array

import "fmt"

// Element-wise operations. Binary array operands must have exactly equal
// shapes — there is no shape broadcasting beyond scalar-vs-array — and
// every result is a freshly allocated owning array.

// checkShapes enforces exact shape equality for binary operations.
func checkShapes(op string, a, b Shape) error {
	if !a.Equal(b) {
		return fmt.Errorf("%s: %w: %v vs %v", op, ErrShapeMismatch, a, b)
	}
	return nil
}

// checkNumeric rejects arithmetic on bool arrays at the wrapper, keeping
// the kernel contract (numeric dtypes only) out of the panic path.
func checkNumeric(op string, dt DataType) error {
	if dt == Bool {
		return fmt.Errorf("%s: %w: arithmetic is not defined for bool arrays", op, ErrInvalidInput)
	}
	return nil
}

// Add performs element-wise addition. Fails with ErrInvalidInput on bool
// arrays; use And/Or/Not for boolean algebra.
func (a *Array[T, B]) Add(other *Array[T, B]) (*Array[T, B], error) {
	if err := checkNumeric("add", a.DType()); err != nil {
		return nil, err
	}
	if err := checkShapes("add", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[T, B](a.backend.Add(a.raw, other.raw), a.backend), nil
}

// Sub performs element-wise subtraction. Fails with ErrInvalidInput on
// bool arrays.
func (a *Array[T, B]) Sub(other *Array[T, B]) (*Array[T, B], error) {
	if err := checkNumeric("sub", a.DType()); err != nil {
		return nil, err
	}
	if err := checkShapes("sub", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[T, B](a.backend.Sub(a.raw, other.raw), a.backend), nil
}

// Mul performs element-wise multiplication. Fails with ErrInvalidInput on
// bool arrays.
func (a *Array[T, B]) Mul(other *Array[T, B]) (*Array[T, B], error) {
	if err := checkNumeric("mul", a.DType()); err != nil {
		return nil, err
	}
	if err := checkShapes("mul", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[T, B](a.backend.Mul(a.raw, other.raw), a.backend), nil
}

// Div performs element-wise true division. The result is always Float64
// and follows IEEE-754: division by zero yields signed infinity or NaN,
// it never fails.
func (a *Array[T, B]) Div(other *Array[T, B]) (*Array[float64, B], error) {
	if err := checkShapes("div", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[float64, B](a.backend.Div(a.raw, other.raw), a.backend), nil
}

// AddScalar adds a scalar to every element. Like the binary arithmetic
// methods, scalar arithmetic is defined for numeric arrays only; calling
// it on a bool array is a programmer error and panics in the backend.
func (a *Array[T, B]) AddScalar(scalar T) *Array[T, B] {
	return New[T, B](a.backend.AddScalar(a.raw, scalar), a.backend)
}

// SubScalar subtracts a scalar from every element.
func (a *Array[T, B]) SubScalar(scalar T) *Array[T, B] {
	return New[T, B](a.backend.SubScalar(a.raw, scalar), a.backend)
}

// MulScalar multiplies every element by a scalar.
func (a *Array[T, B]) MulScalar(scalar T) *Array[T, B] {
	return New[T, B](a.backend.MulScalar(a.raw, scalar), a.backend)
}

// DivScalar divides every element by a scalar. Like Div, the result is
// Float64 and division by zero follows IEEE-754.
func (a *Array[T, B]) DivScalar(scalar T) *Array[float64, B] {
	return New[float64, B](a.backend.DivScalar(a.raw, scalar), a.backend)
}

// Comparison operations. All return Bool arrays.

// Equal returns a Bool array marking element-wise equality.
func (a *Array[T, B]) Equal(other *Array[T, B]) (*Array[bool, B], error) {
	if err := checkShapes("equal", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[bool, B](a.backend.Equal(a.raw, other.raw), a.backend), nil
}

// NotEqual returns a Bool array marking element-wise inequality.
func (a *Array[T, B]) NotEqual(other *Array[T, B]) (*Array[bool, B], error) {
	if err := checkShapes("notequal", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[bool, B](a.backend.NotEqual(a.raw, other.raw), a.backend), nil
}

// Greater returns a Bool array where a > other element-wise.
func (a *Array[T, B]) Greater(other *Array[T, B]) (*Array[bool, B], error) {
	if err := checkShapes("greater", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[bool, B](a.backend.Greater(a.raw, other.raw), a.backend), nil
}

// GreaterEqual returns a Bool array where a >= other element-wise.
func (a *Array[T, B]) GreaterEqual(other *Array[T, B]) (*Array[bool, B], error) {
	if err := checkShapes("greaterequal", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[bool, B](a.backend.GreaterEqual(a.raw, other.raw), a.backend), nil
}

// Lower returns a Bool array where a < other element-wise.
func (a *Array[T, B]) Lower(other *Array[T, B]) (*Array[bool, B], error) {
	if err := checkShapes("lower", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[bool, B](a.backend.Lower(a.raw, other.raw), a.backend), nil
}

// LowerEqual returns a Bool array where a <= other element-wise.
func (a *Array[T, B]) LowerEqual(other *Array[T, B]) (*Array[bool, B], error) {
	if err := checkShapes("lowerequal", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[bool, B](a.backend.LowerEqual(a.raw, other.raw), a.backend), nil
}

// Scalar comparison variants. The scalar is materialized once with the
// operand's shape and compared element-wise.

// EqualScalar compares every element against a scalar.
func (a *Array[T, B]) EqualScalar(scalar T) *Array[bool, B] {
	other := Full[T, B](a.Shape(), scalar, a.backend)
	return New[bool, B](a.backend.Equal(a.raw, other.raw), a.backend)
}

// GreaterScalar returns a Bool array where a > scalar element-wise.
func (a *Array[T, B]) GreaterScalar(scalar T) *Array[bool, B] {
	other := Full[T, B](a.Shape(), scalar, a.backend)
	return New[bool, B](a.backend.Greater(a.raw, other.raw), a.backend)
}

// LowerScalar returns a Bool array where a < scalar element-wise.
func (a *Array[T, B]) LowerScalar(scalar T) *Array[bool, B] {
	other := Full[T, B](a.Shape(), scalar, a.backend)
	return New[bool, B](a.backend.Lower(a.raw, other.raw), a.backend)
}

// Boolean operations. Elements of any dtype are interpreted by truthiness:
// non-zero is true.

// And performs element-wise logical AND.
func (a *Array[T, B]) And(other *Array[T, B]) (*Array[bool, B], error) {
	if err := checkShapes("and", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[bool, B](a.backend.And(a.raw, other.raw), a.backend), nil
}

// Or performs element-wise logical OR.
func (a *Array[T, B]) Or(other *Array[T, B]) (*Array[bool, B], error) {
	if err := checkShapes("or", a.Shape(), other.Shape()); err != nil {
		return nil, err
	}
	return New[bool, B](a.backend.Or(a.raw, other.raw), a.backend), nil
}

// Not performs element-wise logical negation.
func (a *Array[T, B]) Not() *Array[bool, B] {
	return New[bool, B](a.backend.Not(a.raw), a.backend)
}
