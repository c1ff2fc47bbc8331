package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/mem"
)

// TestPrefix_AlwaysOffsetZero tests that every allocation is a prefix view
// of the backing block.
func TestPrefix_AlwaysOffsetZero(t *testing.T) {
	pa := NewPrefix(mem.NewBlock(make([]byte, 64)))

	for _, size := range []int{8, 64, 1, 32, 0} {
		b, err := pa.Allocate(size, 1)
		require.NoError(t, err, "Allocate(%d) should succeed", size)
		assert.Equal(t, 0, b.Offset(), "every view starts at offset 0")
		assert.Equal(t, size, b.Len())
	}
}

// TestPrefix_Recycles tests that a write through one view is visible
// through the next, confirming recycling rather than isolation.
func TestPrefix_Recycles(t *testing.T) {
	pa := NewPrefix(mem.NewBlock(make([]byte, 16)))

	first, err := pa.Allocate(8, 1)
	require.NoError(t, err)
	require.NoError(t, first.SetByte(3, 0x7E))

	second, err := pa.Allocate(4, 1)
	require.NoError(t, err)
	got, err := second.Byte(3)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7E), got, "the new view aliases the previous one's bytes")
}

// TestPrefix_OutOfBounds tests capacity checking against the backing length.
func TestPrefix_OutOfBounds(t *testing.T) {
	pa := NewPrefix(mem.NewBlock(make([]byte, 16)))

	_, err := pa.Allocate(17, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Still usable after a failed request.
	_, err = pa.Allocate(16, 1)
	require.NoError(t, err)
}

// TestPrefix_InvalidArguments tests request-shape validation.
func TestPrefix_InvalidArguments(t *testing.T) {
	pa := NewPrefix(mem.NewBlock(make([]byte, 16)))

	_, err := pa.Allocate(-1, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = pa.Allocate(8, 6)
	assert.ErrorIs(t, err, ErrBadAlignment)
}

// TestPrefix_ConcurrentBoundsSafety tests that concurrent callers cannot
// corrupt bounds. Contents are expected to race; only memory safety is
// asserted here.
func TestPrefix_ConcurrentBoundsSafety(t *testing.T) {
	pa := NewPrefix(mem.NewBlock(make([]byte, 128)))

	done := make(chan struct{})
	for range 4 {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := range 1000 {
				b, err := pa.Allocate(64, 8)
				if err != nil {
					t.Error(err)
					return
				}
				_ = b.SetByte(i%64, byte(i))
			}
		}()
	}
	for range 4 {
		<-done
	}
}
