package alloc

import "errors"

var (
	// ErrInvalidSize indicates a negative requested byte size.
	ErrInvalidSize = errors.New("alloc: negative byte size")

	// ErrBadAlignment indicates an alignment that is not a positive power of two.
	ErrBadAlignment = errors.New("alloc: alignment must be a positive power of two")

	// ErrNegativeCount indicates a negative array element count.
	ErrNegativeCount = errors.New("alloc: negative element count")

	// ErrSizeOverflow indicates a size computation (count * element size)
	// that overflows.
	ErrSizeOverflow = errors.New("alloc: allocation size overflows")

	// ErrOutOfBounds indicates the strategy cannot satisfy the request from
	// its backing region.
	ErrOutOfBounds = errors.New("alloc: request exceeds backing capacity")

	// ErrLayoutMismatch indicates a value whose width or kind does not match
	// the layout it is being stored with.
	ErrLayoutMismatch = errors.New("alloc: value does not match layout")

	// ErrClosed indicates use of an arena after Close.
	ErrClosed = errors.New("alloc: arena closed")
)
