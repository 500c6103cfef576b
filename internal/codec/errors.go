package codec

import "errors"

var (
	// ErrShortRead is returned when a field extends past the end of the
	// buffer.
	ErrShortRead = errors.New("codec: short read")

	// ErrExpansionFlags is returned when the expansion-flags trailer has a
	// flag set that this reader does not know about.
	ErrExpansionFlags = errors.New("codec: unknown expansion flag set")

	// ErrCompressedOverflow is returned when a compressed64 field claims more
	// than eight value bytes.
	ErrCompressedOverflow = errors.New("codec: compressed integer overflow")
)
