package persist

import "errors"

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrUnknownDType       = errors.New("unknown data type")
	ErrUnknownArray       = errors.New("no array with that name")
	ErrOutOfBounds        = errors.New("array extends beyond data section")
	ErrOffsetOverlap      = errors.New("array offsets overlap")
	ErrShapeSizeMismatch  = errors.New("declared size does not match shape")
)
