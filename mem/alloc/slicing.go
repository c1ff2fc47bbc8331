package alloc

import (
	"github.com/joshuapare/memkit/internal/buf"
	"github.com/joshuapare/memkit/mem"
)

// SlicingAllocator responds to allocation requests by carving consecutive
// aligned sub-views out of one backing block. Allocation is a pure bump of
// a cursor: O(1), no fragmentation bookkeeping, because slices are never
// individually freed. The whole backing block is reclaimed as a unit by
// whoever owns it.
//
// Views handed out by one instance are pairwise non-overlapping and appear
// in non-decreasing offset order. The cursor is monotone: bytes skipped as
// alignment padding are never handed out later.
//
// Not safe for concurrent use: concurrent Allocate calls race on the cursor
// and can hand out overlapping ranges. Callers needing concurrency must
// synchronize externally.
//
// The allocator does not zero-fill per request; a view is zero exactly when
// the backing block's bytes in its range are. Build the backing block from
// fresh (zeroed) memory to get the protocol's zero guarantee.
type SlicingAllocator struct {
	backing mem.Block
	offset  int
}

// NewSlicing returns a slicing allocator that carves sub-views from b,
// starting at offset 0. The caller owns b and must keep it alive for the
// lifetime of the allocator.
func NewSlicing(b mem.Block) *SlicingAllocator {
	return &SlicingAllocator{backing: b}
}

// Allocate returns the next aligned sub-view of the backing block.
// Fails with ErrOutOfBounds when the remaining capacity cannot satisfy the
// request; the cursor is unchanged after a failure, so subsequent smaller
// requests still succeed.
func (sa *SlicingAllocator) Allocate(byteSize, byteAlignment int) (mem.Block, error) {
	if err := checkRequest(byteSize, byteAlignment); err != nil {
		return mem.Block{}, err
	}

	// Alignment is against the cumulative origin offset, not the backing
	// block's own start: a backing block that is itself a sub-view at an
	// odd offset must not yield misaligned views.
	mask := byteAlignment - 1
	abs, ok := buf.AddOverflowSafe(sa.backing.Offset(), sa.offset)
	if !ok {
		return mem.Block{}, ErrOutOfBounds
	}
	alignedAbs, ok := buf.AddOverflowSafe(abs, mask)
	if !ok {
		return mem.Block{}, ErrOutOfBounds
	}
	alignedAbs &= ^mask
	start := alignedAbs - sa.backing.Offset()

	end, ok := buf.AddOverflowSafe(start, byteSize)
	if !ok || end > sa.backing.Len() {
		return mem.Block{}, ErrOutOfBounds
	}

	view, err := sa.backing.Slice(start, byteSize)
	if err != nil {
		return mem.Block{}, err
	}
	sa.offset = end
	return view, nil
}

// Used returns the number of backing bytes consumed so far, alignment
// padding included.
func (sa *SlicingAllocator) Used() int { return sa.offset }

// Remaining returns the number of backing bytes still available before
// alignment padding.
func (sa *SlicingAllocator) Remaining() int { return sa.backing.Len() - sa.offset }

var _ Allocator = (*SlicingAllocator)(nil)
