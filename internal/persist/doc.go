// Package persist implements the .argo container format for storing named
// arrays on disk.
//
// An .argo file is a fixed binary prefix (magic bytes, format version,
// flags, SHA-256 checksum of the data section, header length), a JSON
// header describing every stored array (name, dtype, shape, offset, size),
// padding to a 64-byte boundary, and the concatenated raw array data in
// little-endian layout.
//
// The reader validates the header before materializing anything: unknown
// dtypes, shapes that disagree with the declared byte size, out-of-bounds
// offsets and overlapping data ranges are all rejected, and the data
// checksum is verified on open unless explicitly skipped.
package persist
