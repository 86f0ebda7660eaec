package bmp

import "errors"

var (
	// ErrNotBMP is returned when the signature bytes aren't "BM".
	ErrNotBMP = errors.New("bmp: not a bitmap file")
	// ErrTruncated is returned when a buffer is shorter than a header it
	// is being parsed from.
	ErrTruncated = errors.New("bmp: truncated header")
	// ErrUnsupportedFormat is returned for any bit depth other than 24
	// and any non-zero compression mode, per spec.md §1's scope note.
	ErrUnsupportedFormat = errors.New("bmp: only uncompressed 24-bit BGR is supported")
)
