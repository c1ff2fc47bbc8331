package alloc

import (
	"github.com/joshuapare/memkit/internal/buf"
	"github.com/joshuapare/memkit/mem"
)

// New allocates a block sized and aligned for the given layout.
func New(a Allocator, l mem.Layout) (mem.Block, error) {
	return a.Allocate(l.ByteSize(), l.ByteAlignment())
}

// NewArray allocates a block holding count consecutive elements of the
// given element layout, aligned for the element layout.
// Fails with ErrNegativeCount when count < 0 and with ErrSizeOverflow when
// elem.ByteSize() * count overflows.
func NewArray(a Allocator, elem mem.Layout, count int) (mem.Block, error) {
	if count < 0 {
		return mem.Block{}, ErrNegativeCount
	}
	size, ok := buf.MulOverflowSafe(elem.ByteSize(), count)
	if !ok {
		return mem.Block{}, ErrSizeOverflow
	}
	return a.Allocate(size, elem.ByteAlignment())
}

// NewBytes allocates a block of byteSize bytes with no alignment
// constraint.
func NewBytes(a Allocator, byteSize int) (mem.Block, error) {
	return a.Allocate(byteSize, 1)
}
