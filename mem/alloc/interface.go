package alloc

import (
	"github.com/joshuapare/memkit/internal/buf"
	"github.com/joshuapare/memkit/mem"
)

// Allocator produces blocks of memory on request. This is the sole required
// extension point: any type with an Allocate method can serve the
// convenience functions in this package.
//
// Contract for every implementation:
//
//   - byteSize < 0 fails with ErrInvalidSize; byteAlignment that is not a
//     positive power of two fails with ErrBadAlignment.
//   - On success the returned block has length >= byteSize and its origin
//     offset is a multiple of byteAlignment.
//   - The returned block is fully zero-filled, unless it was produced
//     through the NoInitAllocator capability.
//   - Capacity exhaustion fails with ErrOutOfBounds (or a
//     strategy-specific resource error); a failed call never returns a
//     partially usable block.
//
// Allocate is not required to be safe for concurrent use; each concrete
// strategy documents its own concurrency behavior.
type Allocator interface {
	Allocate(byteSize, byteAlignment int) (mem.Block, error)
}

// NoInitAllocator is an optional capability an Allocator may implement when
// the memory it hands out is always either freshly zero or guaranteed never
// observed before the caller overwrites it. AllocateNoInit skips the
// zero-fill guarantee of Allocate.
//
// Only strategies that source memory fresh from the operating environment
// may implement this; strategies that reuse a backing block across requests
// (slicing, prefix) must not. The convenience functions in this package
// query for the capability and use it only when they immediately overwrite
// every byte of the block, so the elision is never observable to callers.
type NoInitAllocator interface {
	Allocator
	AllocateNoInit(byteSize, byteAlignment int) (mem.Block, error)
}

// checkRequest validates the shape of an allocation request. Every strategy
// applies it before touching its backing state.
func checkRequest(byteSize, byteAlignment int) error {
	if byteSize < 0 {
		return ErrInvalidSize
	}
	if !buf.PowerOfTwo(byteAlignment) {
		return ErrBadAlignment
	}
	return nil
}

// allocateNoInit requests a block without the zero-fill guarantee when the
// allocator exposes the capability, falling back to the standard path.
// Callers must overwrite every byte of the result before returning it.
func allocateNoInit(a Allocator, byteSize, byteAlignment int) (mem.Block, error) {
	if na, ok := a.(NoInitAllocator); ok {
		return na.AllocateNoInit(byteSize, byteAlignment)
	}
	return a.Allocate(byteSize, byteAlignment)
}
