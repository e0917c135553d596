package persist

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/arrgo-ml/arrgo/internal/array"
)

const arrgoVersion = "0.1.0"

// checksumOffset is where the data checksum lives in the fixed prefix:
// magic(4) + version(4) + flags(4).
const checksumOffset = 12

// prefixSize is the fixed prefix before the JSON header:
// magic(4) + version(4) + flags(4) + checksum(32) + headerSize(8).
const prefixSize = 4 + 4 + 4 + ChecksumSize + 8

// Writer writes .argo files.
//
// The layout is: fixed prefix, JSON header, padding to a 64-byte boundary,
// then the concatenated array data. The prefix carries a SHA-256 checksum
// over the data section, patched in after the data is written.
type Writer struct {
	file   *os.File
	closed bool
}

// NewWriter creates an .argo file writer, truncating path if it exists.
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &Writer{file: file}, nil
}

// Write stores the named arrays. Arrays are laid out in sorted name order
// so identical inputs produce byte-identical files.
func (w *Writer) Write(arrays map[string]*array.RawArray, metadata map[string]string) error {
	if w.closed {
		return fmt.Errorf("writer is closed")
	}

	names := make([]string, 0, len(arrays))
	for name := range arrays {
		names = append(names, name)
	}
	slices.Sort(names)

	header := Header{
		FormatVersion: FormatVersion,
		ArrgoVersion:  arrgoVersion,
		CreatedAt:     time.Now().UTC(),
		Arrays:        make([]ArrayMeta, 0, len(names)),
		Metadata:      metadata,
	}

	var offset int64
	for _, name := range names {
		raw := arrays[name]
		size := int64(raw.ByteSize())
		header.Arrays = append(header.Arrays, ArrayMeta{
			Name:   name,
			DType:  dtypeToString(raw.DType()),
			Shape:  raw.Shape().Clone(),
			Offset: offset,
			Size:   size,
		})
		offset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("marshal header: %w", err)
	}

	var prefix [prefixSize]byte
	copy(prefix[:4], MagicBytes)
	binary.LittleEndian.PutUint32(prefix[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(prefix[8:12], 0) // flags, reserved
	// Checksum slot stays zero until the data section is written.
	binary.LittleEndian.PutUint64(prefix[checksumOffset+ChecksumSize:], uint64(len(headerJSON)))

	if _, err := w.file.Write(prefix[:]); err != nil {
		return fmt.Errorf("write prefix: %w", err)
	}
	if _, err := w.file.Write(headerJSON); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	pos := int64(prefixSize) + int64(len(headerJSON))
	if padding := (HeaderAlignment - pos%HeaderAlignment) % HeaderAlignment; padding > 0 {
		if _, err := w.file.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("write padding: %w", err)
		}
	}

	hash := sha256.New()
	for _, name := range names {
		data := arrays[name].Data()
		if _, err := w.file.Write(data); err != nil {
			return fmt.Errorf("write array %s: %w", name, err)
		}
		hash.Write(data)
	}

	var sum [ChecksumSize]byte
	copy(sum[:], hash.Sum(nil))
	if _, err := w.file.WriteAt(sum[:], checksumOffset); err != nil {
		return fmt.Errorf("write checksum: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// Save is a convenience wrapper writing arrays to path in one call.
func Save(path string, arrays map[string]*array.RawArray, metadata map[string]string) error {
	w, err := NewWriter(path)
	if err != nil {
		return err
	}
	if err := w.Write(arrays, metadata); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
