package alloc

import (
	"fmt"

	"github.com/joshuapare/memkit/internal/buf"
	"github.com/joshuapare/memkit/mem"
)

// String encodes str with the given charset and allocates a null-terminated
// copy of it: the encoded bytes at offset 0, followed by the charset's
// terminator (one zero byte for single-byte charsets, two for the UTF-16
// family).
//
// Embedded NUL characters in str are encoded verbatim, not treated
// specially; a consumer reading the block back as a C string will observe
// truncation at the first NUL.
//
// Fails with mem.ErrUnsupportedCharset when cs is outside the recognized
// standard set.
func String(a Allocator, str string, cs mem.Charset) (mem.Block, error) {
	encoded, err := cs.Encode(str)
	if err != nil {
		return mem.Block{}, err
	}
	term := cs.TerminatorSize()
	size, ok := buf.AddOverflowSafe(len(encoded), term)
	if !ok {
		return mem.Block{}, ErrSizeOverflow
	}
	b, err := allocateNoInit(a, size, 1)
	if err != nil {
		return mem.Block{}, err
	}
	if err := b.CopyFrom(0, encoded); err != nil {
		return mem.Block{}, err
	}
	for i := 0; i < term; i++ {
		if err := b.SetByte(len(encoded)+i, 0); err != nil {
			return mem.Block{}, fmt.Errorf("write terminator: %w", err)
		}
	}
	return b, nil
}

// StringUTF8 is String with the UTF-8 charset.
func StringUTF8(a Allocator, str string) (mem.Block, error) {
	return String(a, str, mem.UTF8)
}
