package persist

import (
	"crypto/sha256"
	"io"
)

// computeChecksumReader streams the SHA-256 checksum of the data section
// so large files need not be resident in memory.
func computeChecksumReader(r io.Reader) ([ChecksumSize]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return [ChecksumSize]byte{}, err
	}
	var sum [ChecksumSize]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}
