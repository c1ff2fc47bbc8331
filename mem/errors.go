package mem

import "errors"

var (
	// ErrOutOfRange indicates a read, write, or slice that does not fit
	// within a block's bounds.
	ErrOutOfRange = errors.New("mem: out of range")

	// ErrBadAlignment indicates an alignment that is not a positive power of two.
	ErrBadAlignment = errors.New("mem: alignment must be a positive power of two")

	// ErrUnsupportedCharset indicates a charset outside the recognized
	// standard set.
	ErrUnsupportedCharset = errors.New("mem: unsupported charset")
)
