package persist

import (
	"time"

	"github.com/arrgo-ml/arrgo/internal/array"
)

// Format constants.
const (
	MagicBytes      = "ARGO"
	FormatVersion   = 1
	HeaderAlignment = 64 // array data starts on a 64-byte boundary
	ChecksumSize    = 32 // SHA-256

	// maxHeaderSize bounds the JSON header so a corrupted length field
	// cannot trigger a huge allocation.
	maxHeaderSize = 16 * 1024 * 1024
)

// Data type names as stored in the header.
const (
	DTypeFloat64 = "float64"
	DTypeInt64   = "int64"
	DTypeBool    = "bool"
)

// Header is the JSON header of an .argo file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	ArrgoVersion  string            `json:"arrgo_version"`
	CreatedAt     time.Time         `json:"created_at"`
	Arrays        []ArrayMeta       `json:"arrays"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// ArrayMeta describes one array in the data section.
type ArrayMeta struct {
	Name   string `json:"name"`
	DType  string `json:"dtype"`
	Shape  []int  `json:"shape"`
	Offset int64  `json:"offset"` // bytes from the start of the data section
	Size   int64  `json:"size"`   // bytes
}

func dtypeToString(dt array.DataType) string {
	switch dt {
	case array.Float64:
		return DTypeFloat64
	case array.Int64:
		return DTypeInt64
	case array.Bool:
		return DTypeBool
	default:
		return "unknown"
	}
}

func stringToDtype(s string) (array.DataType, bool) {
	switch s {
	case DTypeFloat64:
		return array.Float64, true
	case DTypeInt64:
		return array.Int64, true
	case DTypeBool:
		return array.Bool, true
	default:
		return 0, false
	}
}
