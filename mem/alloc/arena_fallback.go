//go:build !unix

package alloc

// mapChunk falls back to Go-allocated memory on platforms without anonymous
// mmap. Go zeroes fresh allocations, so the arena's freshness contract holds.
func mapChunk(n int) ([]byte, func() error, error) {
	return make([]byte, n), func() error { return nil }, nil
}
