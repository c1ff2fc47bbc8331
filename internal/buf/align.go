package buf

// Alignment utilities for allocator offset math. Alignments are always
// powers of two, so round-up is a mask operation.

// PowerOfTwo reports whether align is a positive power of two.
func PowerOfTwo(align int) bool {
	return align > 0 && align&(align-1) == 0
}

// RoundUp returns n aligned up to the next multiple of align.
// align must be a positive power of two.
//
// Example:
//
//	RoundUp(1, 8)  = 8
//	RoundUp(8, 8)  = 8
//	RoundUp(9, 8)  = 16
func RoundUp(n, align int) int {
	mask := align - 1
	return (n + mask) & ^mask
}

// Aligned reports whether n is a multiple of align.
// align must be a positive power of two.
func Aligned(n, align int) bool {
	return n&(align-1) == 0
}
