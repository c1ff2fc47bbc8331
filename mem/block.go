package mem

import (
	"fmt"

	"github.com/joshuapare/memkit/internal/buf"
)

// Block is a bounds-checked view over a contiguous byte region. A Block
// never owns the memory it covers: it is either wrapped around a caller
// slice with NewBlock or carved out of another Block with Slice. The zero
// Block is a valid empty region.
//
// A Block remembers its offset from the origin of the region it was carved
// from; alignment guarantees made by allocators are expressed against that
// origin. Region-sourcing strategies that obtain page-aligned backing memory
// (such as the arena in the alloc package) therefore also satisfy absolute
// address alignment for alignments up to the page size.
type Block struct {
	data []byte
	off  int
}

// NewBlock wraps an existing byte slice as a Block at origin offset 0.
// The caller retains ownership of the memory; the Block aliases it.
func NewBlock(b []byte) Block {
	return Block{data: b}
}

// Len returns the length of the block in bytes.
func (b Block) Len() int { return len(b.data) }

// Offset returns the block's offset from the origin of the region it was
// carved from. A block created with NewBlock has offset 0.
func (b Block) Offset() int { return b.off }

// Bytes returns the block's backing bytes. The returned slice aliases the
// block's memory; writes through it are visible to every overlapping view.
func (b Block) Bytes() []byte { return b.data }

// Slice returns the sub-view [off, off+length) of the block.
// Fails with ErrOutOfRange when the range does not fit.
func (b Block) Slice(off, length int) (Block, error) {
	sub, ok := buf.Slice(b.data, off, length)
	if !ok {
		return Block{}, fmt.Errorf("%w: slice [%d:+%d) of %d-byte block", ErrOutOfRange, off, length, len(b.data))
	}
	return Block{data: sub, off: b.off + off}, nil
}

// SliceAligned is Slice with an additional alignment constraint: the
// resulting view's origin offset must be a multiple of align.
// align must be a positive power of two.
func (b Block) SliceAligned(off, length, align int) (Block, error) {
	if !buf.PowerOfTwo(align) {
		return Block{}, fmt.Errorf("%w: alignment %d", ErrBadAlignment, align)
	}
	sub, err := b.Slice(off, length)
	if err != nil {
		return Block{}, err
	}
	if !buf.Aligned(sub.off, align) {
		return Block{}, fmt.Errorf("%w: offset %d not aligned to %d", ErrOutOfRange, sub.off, align)
	}
	return sub, nil
}

// Clear zero-fills the whole block.
func (b Block) Clear() {
	clear(b.data)
}

// Byte returns the byte at off.
func (b Block) Byte(off int) (byte, error) {
	if !buf.Has(b.data, off, 1) {
		return 0, fmt.Errorf("%w: byte at %d in %d-byte block", ErrOutOfRange, off, len(b.data))
	}
	return b.data[off], nil
}

// SetByte stores v at off.
func (b Block) SetByte(off int, v byte) error {
	if !buf.Has(b.data, off, 1) {
		return fmt.Errorf("%w: byte at %d in %d-byte block", ErrOutOfRange, off, len(b.data))
	}
	b.data[off] = v
	return nil
}

// Scalar reads the raw bits of a scalar stored at off with the given
// layout. The result is zero-extended to 64 bits; float kinds come back as
// their IEEE-754 bit patterns (use math.Float32frombits and friends to
// recover the value).
func (b Block) Scalar(l Layout, off int) (uint64, error) {
	raw, ok := buf.Slice(b.data, off, l.size)
	if !ok {
		return 0, fmt.Errorf("%w: %s at %d in %d-byte block", ErrOutOfRange, l.kind, off, len(b.data))
	}
	switch l.size {
	case 1:
		return uint64(raw[0]), nil
	case 2:
		return uint64(l.order.Uint16(raw)), nil
	case 4:
		return uint64(l.order.Uint32(raw)), nil
	case 8:
		return l.order.Uint64(raw), nil
	default:
		return 0, fmt.Errorf("mem: unsupported scalar size %d", l.size)
	}
}

// SetScalar stores the low l.ByteSize() bytes of bits at off in the
// layout's byte order. Callers pass integer values directly and float
// values as their bit patterns (math.Float64bits and friends).
func (b Block) SetScalar(l Layout, off int, bits uint64) error {
	raw, ok := buf.Slice(b.data, off, l.size)
	if !ok {
		return fmt.Errorf("%w: %s at %d in %d-byte block", ErrOutOfRange, l.kind, off, len(b.data))
	}
	switch l.size {
	case 1:
		raw[0] = byte(bits)
	case 2:
		l.order.PutUint16(raw, uint16(bits))
	case 4:
		l.order.PutUint32(raw, uint32(bits))
	case 8:
		l.order.PutUint64(raw, bits)
	default:
		return fmt.Errorf("mem: unsupported scalar size %d", l.size)
	}
	return nil
}

// CopyFrom copies src into the block starting at off.
// Fails with ErrOutOfRange when src does not fit.
func (b Block) CopyFrom(off int, src []byte) error {
	dst, ok := buf.Slice(b.data, off, len(src))
	if !ok {
		return fmt.Errorf("%w: copy of %d bytes at %d in %d-byte block", ErrOutOfRange, len(src), off, len(b.data))
	}
	copy(dst, src)
	return nil
}
