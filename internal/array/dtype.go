// Package array provides the core N-dimensional array type for ArrGo.
package array

// Scalar is a constraint for supported array element types.
// It uses Go generics to ensure compile-time type safety.
type Scalar interface {
	~float64 | ~int64 | ~bool
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types for arrays.
const (
	Float64 DataType = iota
	Int64
	Bool
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float64, Int64:
		return 8
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Scalar](dummy T) DataType {
	switch any(dummy).(type) {
	case float64:
		return Float64
	case int64:
		return Int64
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
