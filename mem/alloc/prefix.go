package alloc

import "github.com/joshuapare/memkit/mem"

// PrefixAllocator responds to every allocation request by recycling one
// backing block: each call returns a view starting at offset 0 with the
// requested size, so every allocation overlaps all previous ones from the
// same instance.
//
// The allocator holds no mutable state, so concurrent calls cannot corrupt
// memory bounds. They can still overwrite each other's content, because all
// views alias the same bytes: a caller that retains a view past the next
// Allocate will observe the next caller's writes. Intended usage is
// strictly sequential: obtain a view, fully consume it, discard it, request
// the next one.
//
// Like the slicing allocator, no zero-fill happens per request. That is the
// point of recycling: content written through one view is visible through
// the next.
type PrefixAllocator struct {
	backing mem.Block
}

// NewPrefix returns a prefix allocator recycling b. The caller owns b and
// must keep it alive for the lifetime of the allocator.
func NewPrefix(b mem.Block) *PrefixAllocator {
	return &PrefixAllocator{backing: b}
}

// Allocate returns the [0, byteSize) view of the backing block.
// Fails with ErrOutOfBounds when byteSize exceeds the backing length or the
// block's origin is not aligned to byteAlignment.
func (pa *PrefixAllocator) Allocate(byteSize, byteAlignment int) (mem.Block, error) {
	if err := checkRequest(byteSize, byteAlignment); err != nil {
		return mem.Block{}, err
	}
	view, err := pa.backing.SliceAligned(0, byteSize, byteAlignment)
	if err != nil {
		return mem.Block{}, ErrOutOfBounds
	}
	return view, nil
}

var _ Allocator = (*PrefixAllocator)(nil)
