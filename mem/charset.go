package mem

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Charset identifies one of the recognized standard text encodings used to
// produce null-terminated encoded strings. Any other value is rejected with
// ErrUnsupportedCharset rather than best-effort encoded.
type Charset uint8

const (
	// UTF8 is the UTF-8 encoding. This is the default charset.
	UTF8 Charset = iota
	// ASCII is the US-ASCII encoding. Non-ASCII runes are replaced with '?'.
	ASCII
	// Latin1 is the ISO-8859-1 encoding.
	Latin1
	// UTF16 is the UTF-16 encoding with a big-endian byte order mark.
	UTF16
	// UTF16LE is the UTF-16 little-endian encoding, no byte order mark.
	UTF16LE
	// UTF16BE is the UTF-16 big-endian encoding, no byte order mark.
	UTF16BE
)

var charsetNames = map[Charset]string{
	UTF8:    "UTF-8",
	ASCII:   "US-ASCII",
	Latin1:  "ISO-8859-1",
	UTF16:   "UTF-16",
	UTF16LE: "UTF-16LE",
	UTF16BE: "UTF-16BE",
}

func (cs Charset) String() string {
	if s, ok := charsetNames[cs]; ok {
		return s
	}
	return fmt.Sprintf("charset(%d)", uint8(cs))
}

// ParseCharset resolves a charset by its canonical name, case-insensitively.
// Fails with ErrUnsupportedCharset for names outside the recognized set.
func ParseCharset(name string) (Charset, error) {
	for cs, n := range charsetNames {
		if strings.EqualFold(n, name) {
			return cs, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCharset, name)
}

// TerminatorSize returns the width in bytes of the null terminator for
// strings encoded with this charset: 2 for the UTF-16 family, 1 otherwise.
func (cs Charset) TerminatorSize() int {
	switch cs {
	case UTF16, UTF16LE, UTF16BE:
		return 2
	default:
		return 1
	}
}

// Encode converts s to its byte representation under the charset. Embedded
// NUL characters are encoded like any other; no terminator is appended.
// Fails with ErrUnsupportedCharset when cs is not a recognized charset.
func (cs Charset) Encode(s string) ([]byte, error) {
	switch cs {
	case UTF8:
		return []byte(s), nil
	case ASCII:
		return encodeASCII(s), nil
	case Latin1:
		return encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).Bytes([]byte(s))
	case UTF16:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(s))
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCharset, cs)
	}
}

// encodeASCII maps s to US-ASCII, substituting '?' for runes above 0x7F.
// x/text ships no US-ASCII encoder, so the mapping is done directly.
func encodeASCII(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0x7F {
			out = append(out, '?')
			continue
		}
		out = append(out, byte(r))
	}
	return out
}
