package persist

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arrgo-ml/arrgo/internal/array"
)

// Reader reads .argo files.
type Reader struct {
	file       *os.File
	header     Header
	checksum   [ChecksumSize]byte
	dataOffset int64
	dataSize   int64
	byName     map[string]ArrayMeta
	opts       ReaderOptions
	closed     bool
}

// ReaderOptions configures Reader behavior.
type ReaderOptions struct {
	// SkipChecksumValidation opens the file without hashing the data
	// section. Faster, but corruption goes unnoticed.
	SkipChecksumValidation bool
}

// NewReader opens an .argo file and validates its header and checksum.
func NewReader(path string) (*Reader, error) {
	return NewReaderWithOptions(path, ReaderOptions{})
}

// NewReaderWithOptions opens an .argo file with custom options.
func NewReaderWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	r := &Reader{file: file, opts: opts}
	if err := r.parseHeader(); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("parse header: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}
	r.dataSize = info.Size() - r.dataOffset

	if err := r.validate(); err != nil {
		_ = file.Close()
		return nil, err
	}

	if !opts.SkipChecksumValidation {
		if err := r.validateChecksum(); err != nil {
			_ = file.Close()
			return nil, err
		}
	}
	return r, nil
}

func (r *Reader) parseHeader() error {
	var prefix [prefixSize]byte
	if _, err := io.ReadFull(r.file, prefix[:]); err != nil {
		return fmt.Errorf("read prefix: %w", err)
	}
	if string(prefix[:4]) != MagicBytes {
		return ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(prefix[4:8]); version != FormatVersion {
		return fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}
	copy(r.checksum[:], prefix[checksumOffset:checksumOffset+ChecksumSize])

	headerSize := binary.LittleEndian.Uint64(prefix[checksumOffset+ChecksumSize:])
	if headerSize > maxHeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r.file, headerJSON); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if err := json.Unmarshal(headerJSON, &r.header); err != nil {
		return fmt.Errorf("parse header JSON: %w", err)
	}

	pos := int64(prefixSize) + int64(headerSize)
	r.dataOffset = pos + (HeaderAlignment-pos%HeaderAlignment)%HeaderAlignment
	return nil
}

// validate checks every array's metadata against the data section before
// anything is materialized.
func (r *Reader) validate() error {
	type span struct {
		name       string
		start, end int64
	}
	spans := make([]span, 0, len(r.header.Arrays))
	r.byName = make(map[string]ArrayMeta, len(r.header.Arrays))

	for _, meta := range r.header.Arrays {
		dtype, ok := stringToDtype(meta.DType)
		if !ok {
			return fmt.Errorf("array %q: %w: %q", meta.Name, ErrUnknownDType, meta.DType)
		}
		shape := array.Shape(meta.Shape)
		if err := shape.Validate(); err != nil {
			return fmt.Errorf("array %q: %w", meta.Name, err)
		}
		if want := int64(shape.NumElements() * dtype.Size()); meta.Size != want {
			return fmt.Errorf("array %q: %w: declared %d bytes, shape %v needs %d",
				meta.Name, ErrShapeSizeMismatch, meta.Size, shape, want)
		}
		if meta.Offset < 0 || meta.Offset+meta.Size > r.dataSize {
			return fmt.Errorf("array %q: %w: [%d, %d) in a %d-byte data section",
				meta.Name, ErrOutOfBounds, meta.Offset, meta.Offset+meta.Size, r.dataSize)
		}
		for _, s := range spans {
			if meta.Offset < s.end && s.start < meta.Offset+meta.Size {
				return fmt.Errorf("arrays %q and %q: %w", s.name, meta.Name, ErrOffsetOverlap)
			}
		}
		spans = append(spans, span{meta.Name, meta.Offset, meta.Offset + meta.Size})
		r.byName[meta.Name] = meta
	}
	return nil
}

func (r *Reader) validateChecksum() error {
	if _, err := r.file.Seek(r.dataOffset, io.SeekStart); err != nil {
		return fmt.Errorf("seek data section: %w", err)
	}
	sum, err := computeChecksumReader(r.file)
	if err != nil {
		return fmt.Errorf("hash data section: %w", err)
	}
	if sum != r.checksum {
		return ErrChecksumMismatch
	}
	return nil
}

// Header returns the parsed file header.
func (r *Reader) Header() Header {
	return r.header
}

// Names returns the stored array names in header order.
func (r *Reader) Names() []string {
	names := make([]string, len(r.header.Arrays))
	for i, meta := range r.header.Arrays {
		names[i] = meta.Name
	}
	return names
}

// Read materializes one array by name.
func (r *Reader) Read(name string) (*array.RawArray, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}
	meta, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArray, name)
	}

	dtype, _ := stringToDtype(meta.DType) // validated on open
	raw, err := array.NewRaw(array.Shape(meta.Shape), dtype)
	if err != nil {
		return nil, fmt.Errorf("allocate array %q: %w", name, err)
	}
	if meta.Size > 0 {
		if _, err := r.file.ReadAt(raw.Data(), r.dataOffset+meta.Offset); err != nil {
			return nil, fmt.Errorf("read array %q: %w", name, err)
		}
	}
	return raw, nil
}

// ReadAll materializes every stored array.
func (r *Reader) ReadAll() (map[string]*array.RawArray, error) {
	out := make(map[string]*array.RawArray, len(r.header.Arrays))
	for _, meta := range r.header.Arrays {
		raw, err := r.Read(meta.Name)
		if err != nil {
			return nil, err
		}
		out[meta.Name] = raw
	}
	return out, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}

// Load is a convenience wrapper reading every array from path in one call.
func Load(path string) (map[string]*array.RawArray, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.ReadAll()
}
