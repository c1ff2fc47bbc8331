package alloc

import (
	"fmt"

	"github.com/joshuapare/memkit/internal/buf"
	"github.com/joshuapare/memkit/mem"
)

// DefaultChunkSize is the default arena chunk size (64 KiB).
const DefaultChunkSize = 1 << 16

// pageSize is the granularity chunks are mapped at. Mapped chunk bases are
// page-aligned, so in-chunk offset alignment is also absolute address
// alignment for alignments up to this size.
const pageSize = 4096

// Arena is an allocator that sources memory fresh from the operating
// environment: chunks are obtained by anonymous memory mapping (plain Go
// allocation on platforms without mmap) and carved with a bump pointer.
// Memory handed out is never recycled within the arena's lifetime, which is
// what makes it safe for Arena to implement the NoInitAllocator capability:
// a block obtained through AllocateNoInit holds bytes nobody else will
// observe before the caller overwrites them.
//
// Allocate guarantees a zero-filled block. AllocateNoInit skips that
// explicit clear and is otherwise identical.
//
// All allocations are released together by Close; individual blocks cannot
// be freed. Using the arena after Close fails with ErrClosed.
//
// Not safe for concurrent use.
type Arena struct {
	chunks    []arenaChunk
	chunkSize int
	closed    bool
}

type arenaChunk struct {
	buf   []byte
	off   int
	unmap func() error
}

// NewArena returns an arena that grows in chunks of at least chunkSize
// bytes. chunkSize <= 0 selects DefaultChunkSize. No memory is mapped until
// the first allocation.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena{chunkSize: buf.RoundUp(chunkSize, pageSize)}
}

// Allocate returns a zero-filled block of byteSize bytes aligned to
// byteAlignment.
func (ar *Arena) Allocate(byteSize, byteAlignment int) (mem.Block, error) {
	b, err := ar.AllocateNoInit(byteSize, byteAlignment)
	if err != nil {
		return mem.Block{}, err
	}
	b.Clear()
	return b, nil
}

// AllocateNoInit is Allocate without the zero-fill guarantee. The caller
// must overwrite every byte before letting anything else read the block.
func (ar *Arena) AllocateNoInit(byteSize, byteAlignment int) (mem.Block, error) {
	if err := checkRequest(byteSize, byteAlignment); err != nil {
		return mem.Block{}, err
	}
	if ar.closed {
		return mem.Block{}, ErrClosed
	}

	if len(ar.chunks) > 0 {
		if view, ok := ar.chunks[len(ar.chunks)-1].carve(byteSize, byteAlignment); ok {
			return view, nil
		}
	}

	if err := ar.grow(byteSize, byteAlignment); err != nil {
		return mem.Block{}, err
	}
	view, ok := ar.chunks[len(ar.chunks)-1].carve(byteSize, byteAlignment)
	if !ok {
		return mem.Block{}, ErrOutOfBounds
	}
	return view, nil
}

// carve bump-allocates an aligned range from the chunk.
func (c *arenaChunk) carve(byteSize, byteAlignment int) (mem.Block, bool) {
	mask := byteAlignment - 1
	start, ok := buf.AddOverflowSafe(c.off, mask)
	if !ok {
		return mem.Block{}, false
	}
	start &= ^mask
	end, ok := buf.AddOverflowSafe(start, byteSize)
	if !ok || end > len(c.buf) {
		return mem.Block{}, false
	}
	view, err := mem.NewBlock(c.buf).Slice(start, byteSize)
	if err != nil {
		return mem.Block{}, false
	}
	c.off = end
	return view, true
}

// grow maps a new chunk large enough for a byteSize request at
// byteAlignment, rounded up to the configured chunk size.
func (ar *Arena) grow(byteSize, byteAlignment int) error {
	need, ok := buf.AddOverflowSafe(byteSize, byteAlignment-1)
	if !ok {
		return ErrOutOfBounds
	}
	size := ar.chunkSize
	if need > size {
		size = buf.RoundUp(need, pageSize)
		if size < need {
			return ErrOutOfBounds
		}
	}
	b, unmap, err := mapChunk(size)
	if err != nil {
		return fmt.Errorf("alloc: map %d-byte chunk: %w", size, err)
	}
	ar.chunks = append(ar.chunks, arenaChunk{buf: b, unmap: unmap})
	return nil
}

// Close unmaps every chunk and makes the arena unusable. Blocks previously
// handed out must not be used after Close. Close is idempotent.
func (ar *Arena) Close() error {
	if ar.closed {
		return nil
	}
	ar.closed = true
	var firstErr error
	for i := range ar.chunks {
		if err := ar.chunks[i].unmap(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	ar.chunks = nil
	return firstErr
}

var (
	_ Allocator       = (*Arena)(nil)
	_ NoInitAllocator = (*Arena)(nil)
)
