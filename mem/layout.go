package mem

import "encoding/binary"

// Kind identifies the value category a scalar layout describes.
type Kind uint8

const (
	// KindInt8 is an 8-bit integer value.
	KindInt8 Kind = iota + 1
	// KindInt16 is a 16-bit integer value.
	KindInt16
	// KindInt32 is a 32-bit integer value.
	KindInt32
	// KindInt64 is a 64-bit integer value.
	KindInt64
	// KindFloat32 is a 32-bit IEEE-754 value.
	KindFloat32
	// KindFloat64 is a 64-bit IEEE-754 value.
	KindFloat64
	// KindAddress is a platform-word-sized address value. Stored values
	// wider than the platform word are narrowed on write; the narrowing
	// is lossy and accepted by contract.
	KindAddress
)

var kindNames = map[Kind]string{
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindAddress: "address",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Layout describes the storage shape of a scalar value: its byte size, its
// alignment requirement, the byte order its bytes are stored in, and the
// value kind it carries. Layouts are immutable values; derive variants with
// WithOrder.
//
// Composite (multi-field) layouts are out of scope for this package.
type Layout struct {
	size  int
	align int
	order binary.ByteOrder
	kind  Kind
}

// AddressSize is the storage size of a KindAddress value on this platform.
const AddressSize = 4 << (^uintptr(0) >> 63)

// Predefined layouts in native byte order, naturally aligned.
var (
	Int8    = Layout{size: 1, align: 1, order: binary.NativeEndian, kind: KindInt8}
	Int16   = Layout{size: 2, align: 2, order: binary.NativeEndian, kind: KindInt16}
	Int32   = Layout{size: 4, align: 4, order: binary.NativeEndian, kind: KindInt32}
	Int64   = Layout{size: 8, align: 8, order: binary.NativeEndian, kind: KindInt64}
	Float32 = Layout{size: 4, align: 4, order: binary.NativeEndian, kind: KindFloat32}
	Float64 = Layout{size: 8, align: 8, order: binary.NativeEndian, kind: KindFloat64}
	Address = Layout{size: AddressSize, align: AddressSize, order: binary.NativeEndian, kind: KindAddress}
)

// ByteSize returns the storage size of the layout in bytes.
func (l Layout) ByteSize() int { return l.size }

// ByteAlignment returns the alignment requirement of the layout in bytes.
func (l Layout) ByteAlignment() int { return l.align }

// Order returns the byte order values of this layout are stored in.
func (l Layout) Order() binary.ByteOrder { return l.order }

// Kind returns the value kind this layout describes.
func (l Layout) Kind() Kind { return l.kind }

// WithOrder returns a copy of the layout that stores values in the given
// byte order.
func (l Layout) WithOrder(order binary.ByteOrder) Layout {
	l.order = order
	return l
}
