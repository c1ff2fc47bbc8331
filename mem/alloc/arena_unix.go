//go:build unix

package alloc

import "golang.org/x/sys/unix"

// mapChunk obtains n bytes of fresh zero memory from the OS via anonymous
// mmap. The mapping is page-aligned.
func mapChunk(n int) ([]byte, func() error, error) {
	b, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, err
	}
	return b, func() error { return unix.Munmap(b) }, nil
}
