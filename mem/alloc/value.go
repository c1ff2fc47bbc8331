package alloc

import (
	"fmt"
	"math"

	"github.com/joshuapare/memkit/internal/buf"
	"github.com/joshuapare/memkit/mem"
)

// Typed allocate-and-initialize operations. Each allocates a block sized
// exactly for the value (through the no-init fast path when the allocator
// offers it, since every byte is overwritten before the block is returned)
// and stores the value at offset 0 in the layout's byte order.

// Int8 allocates a block with the given layout and stores v in it.
func Int8(a Allocator, l mem.Layout, v int8) (mem.Block, error) {
	return scalar(a, l, mem.KindInt8, uint64(uint8(v)))
}

// Int16 allocates a block with the given layout and stores v in it.
func Int16(a Allocator, l mem.Layout, v int16) (mem.Block, error) {
	return scalar(a, l, mem.KindInt16, uint64(uint16(v)))
}

// Int32 allocates a block with the given layout and stores v in it.
func Int32(a Allocator, l mem.Layout, v int32) (mem.Block, error) {
	return scalar(a, l, mem.KindInt32, uint64(uint32(v)))
}

// Int64 allocates a block with the given layout and stores v in it.
func Int64(a Allocator, l mem.Layout, v int64) (mem.Block, error) {
	return scalar(a, l, mem.KindInt64, uint64(v))
}

// Float32 allocates a block with the given layout and stores v in it.
func Float32(a Allocator, l mem.Layout, v float32) (mem.Block, error) {
	return scalar(a, l, mem.KindFloat32, uint64(math.Float32bits(v)))
}

// Float64 allocates a block with the given layout and stores v in it.
func Float64(a Allocator, l mem.Layout, v float64) (mem.Block, error) {
	return scalar(a, l, mem.KindFloat64, math.Float64bits(v))
}

// Address allocates a block with the given layout and stores addr in it.
// On 32-bit platforms addr is narrowed to 32 bits before storage; the
// narrowing is lossy and accepted by contract.
func Address(a Allocator, l mem.Layout, addr uint64) (mem.Block, error) {
	if mem.AddressSize == 4 {
		addr = uint64(uint32(addr))
	}
	return scalar(a, l, mem.KindAddress, addr)
}

// Int8s allocates an array block with the given element layout and stores
// vs in it.
func Int8s(a Allocator, l mem.Layout, vs ...int8) (mem.Block, error) {
	return scalars(a, l, mem.KindInt8, len(vs), func(i int) uint64 { return uint64(uint8(vs[i])) })
}

// Int16s allocates an array block with the given element layout and stores
// vs in it.
func Int16s(a Allocator, l mem.Layout, vs ...int16) (mem.Block, error) {
	return scalars(a, l, mem.KindInt16, len(vs), func(i int) uint64 { return uint64(uint16(vs[i])) })
}

// Int32s allocates an array block with the given element layout and stores
// vs in it.
func Int32s(a Allocator, l mem.Layout, vs ...int32) (mem.Block, error) {
	return scalars(a, l, mem.KindInt32, len(vs), func(i int) uint64 { return uint64(uint32(vs[i])) })
}

// Int64s allocates an array block with the given element layout and stores
// vs in it.
func Int64s(a Allocator, l mem.Layout, vs ...int64) (mem.Block, error) {
	return scalars(a, l, mem.KindInt64, len(vs), func(i int) uint64 { return uint64(vs[i]) })
}

// Float32s allocates an array block with the given element layout and
// stores vs in it.
func Float32s(a Allocator, l mem.Layout, vs ...float32) (mem.Block, error) {
	return scalars(a, l, mem.KindFloat32, len(vs), func(i int) uint64 { return uint64(math.Float32bits(vs[i])) })
}

// Float64s allocates an array block with the given element layout and
// stores vs in it.
func Float64s(a Allocator, l mem.Layout, vs ...float64) (mem.Block, error) {
	return scalars(a, l, mem.KindFloat64, len(vs), func(i int) uint64 { return math.Float64bits(vs[i]) })
}

func checkKind(l mem.Layout, k mem.Kind) error {
	if l.Kind() != k {
		return fmt.Errorf("%w: %s value with %s layout", ErrLayoutMismatch, k, l.Kind())
	}
	return nil
}

func scalar(a Allocator, l mem.Layout, k mem.Kind, bits uint64) (mem.Block, error) {
	if err := checkKind(l, k); err != nil {
		return mem.Block{}, err
	}
	b, err := allocateNoInit(a, l.ByteSize(), l.ByteAlignment())
	if err != nil {
		return mem.Block{}, err
	}
	if err := b.SetScalar(l, 0, bits); err != nil {
		return mem.Block{}, err
	}
	return b, nil
}

// scalars bulk-copies n elements at consecutive offsets i*l.ByteSize(),
// applying the layout's byte order to each. The result is byte-identical to
// storing each element individually.
func scalars(a Allocator, l mem.Layout, k mem.Kind, n int, bits func(i int) uint64) (mem.Block, error) {
	if err := checkKind(l, k); err != nil {
		return mem.Block{}, err
	}
	size, ok := buf.MulOverflowSafe(l.ByteSize(), n)
	if !ok {
		return mem.Block{}, ErrSizeOverflow
	}
	b, err := allocateNoInit(a, size, l.ByteAlignment())
	if err != nil {
		return mem.Block{}, err
	}
	for i := 0; i < n; i++ {
		if err := b.SetScalar(l, i*l.ByteSize(), bits(i)); err != nil {
			return mem.Block{}, err
		}
	}
	return b, nil
}
