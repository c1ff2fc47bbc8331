// Package mem provides the memory model the allocator package is built
// against: bounds-checked byte regions, scalar value layouts, and the
// recognized charset set for encoded strings.
//
// # Blocks
//
// A Block is a view over contiguous bytes. It never owns memory: wrap an
// existing slice with NewBlock, or carve aligned sub-views out of a block
// with Slice and SliceAligned. Every read, write, and slice is bounds
// checked and fails with ErrOutOfRange rather than panicking.
//
// # Layouts
//
// A Layout describes how one scalar value is stored: byte size, alignment,
// byte order, and value kind. The package predeclares naturally aligned
// native-order layouts (Int8 through Float64, and Address for
// platform-word values); derive foreign-order variants with WithOrder:
//
//	be := mem.Int32.WithOrder(binary.BigEndian)
//
// Composite layouts (structs, unions, nested arrays) are out of scope.
//
// # Charsets
//
// Charset enumerates the recognized standard encodings for null-terminated
// string allocation. The set is closed: anything else fails with
// ErrUnsupportedCharset. TerminatorSize reports how many zero bytes
// terminate a string in that charset (2 for the UTF-16 family, 1 for the
// single-byte ones).
package mem
