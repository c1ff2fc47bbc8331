// Package alloc provides the block allocation protocol, concrete
// allocation strategies, and a typed convenience layer on top of them.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface with one method:
//
//	Allocate(byteSize, byteAlignment int) (mem.Block, error)
//
// Anyone building a new strategy implements exactly that. Every returned
// block is at least byteSize bytes, aligned to byteAlignment, and
// zero-filled unless produced through the NoInitAllocator capability.
//
// # Strategies
//
// SlicingAllocator: bump-pointer carving of consecutive aligned,
// non-overlapping sub-views out of one backing block
//
//   - O(1) allocation, no free lists, no fragmentation bookkeeping
//   - slices are never individually freed; the backing block is reclaimed
//     as a unit by its owner
//   - not safe for concurrent use
//
// PrefixAllocator: recycles one backing block, every request returning an
// aligned prefix view at offset 0
//
//   - stateless; memory-safe under concurrency but logically racy
//   - intended strictly sequential: consume a view fully before the next
//     request
//
// Arena: chunked bump allocator over fresh OS memory (anonymous mmap)
//
//   - never recycles, so it implements the NoInitAllocator fast path
//   - everything is released together by Close
//
// # Convenience Layer
//
// The typed operations are stateless compositions over any Allocator; they
// never bypass the protocol:
//
//	b, err := alloc.Int32(a, mem.Int32, 42)          // scalar
//	b, err := alloc.Int16s(a, mem.Int16, 1, 2, 3)    // array
//	b, err := alloc.StringUTF8(a, "hello")           // C string
//	b, err := alloc.New(a, mem.Float64)              // by layout
//	b, err := alloc.NewArray(a, mem.Int32, 10)       // by layout and count
//	b, err := alloc.NewBytes(a, 128)                 // by size
//
// When the allocator implements NoInitAllocator, the typed operations skip
// the redundant zero-fill, because they overwrite every byte of the block
// before returning it. The optimization is externally unobservable: results
// are byte-identical either way.
package alloc
