package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/mem"
)

// TestNew_ByLayout tests layout-driven size and alignment.
func TestNew_ByLayout(t *testing.T) {
	sa := NewSlicing(mem.NewBlock(make([]byte, 64)))

	// Push the cursor off alignment first.
	_, err := sa.Allocate(1, 1)
	require.NoError(t, err)

	b, err := New(sa, mem.Int64)
	require.NoError(t, err)
	assert.Equal(t, 8, b.Len())
	assert.Zero(t, b.Offset()%mem.Int64.ByteAlignment())
}

// TestNewArray tests count validation and sizing.
func TestNewArray(t *testing.T) {
	sa := NewSlicing(mem.NewBlock(make([]byte, 256)))

	b, err := NewArray(sa, mem.Int32, 10)
	require.NoError(t, err)
	assert.Equal(t, 40, b.Len())
	assert.Zero(t, b.Offset()%4)

	b, err = NewArray(sa, mem.Int32, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

// TestNewArray_InvalidCount tests the negative-count and overflow failures.
func TestNewArray_InvalidCount(t *testing.T) {
	sa := NewSlicing(mem.NewBlock(make([]byte, 64)))

	_, err := NewArray(sa, mem.Int32, -1)
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, err = NewArray(sa, mem.Int64, math.MaxInt/4)
	assert.ErrorIs(t, err, ErrSizeOverflow, "8 * (MaxInt/4) overflows")
}

// TestNewBytes tests the size-only wrapper.
func TestNewBytes(t *testing.T) {
	sa := NewSlicing(mem.NewBlock(make([]byte, 16)))

	b, err := NewBytes(sa, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, b.Len())

	_, err = NewBytes(sa, -1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

// TestConvenience_WorksThroughAnyAllocator tests the layer against an
// externally supplied strategy implementing only the protocol.
func TestConvenience_WorksThroughAnyAllocator(t *testing.T) {
	a := allocatorFunc(func(size, align int) (mem.Block, error) {
		if err := checkRequest(size, align); err != nil {
			return mem.Block{}, err
		}
		return mem.NewBlock(make([]byte, size)), nil
	})

	b, err := Int32(a, mem.Int32, 7)
	require.NoError(t, err)
	bits, err := b.Scalar(mem.Int32, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), bits)

	b, err = StringUTF8(a, "x")
	require.NoError(t, err)
	assert.Equal(t, []byte{'x', 0}, b.Bytes())
}

// allocatorFunc adapts a function to the Allocator interface, mirroring how
// third-party strategies can plug into the protocol.
type allocatorFunc func(byteSize, byteAlignment int) (mem.Block, error)

func (f allocatorFunc) Allocate(byteSize, byteAlignment int) (mem.Block, error) {
	return f(byteSize, byteAlignment)
}
