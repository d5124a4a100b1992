// Package utf8codec converts between Unicode code points and their UTF-8
// encoding packed into a uint32, and reports the length of an encoded
// sequence from its lead byte.
//
// A packed Sequence stores its bytes most-significant-byte first: the lead
// byte of an n-byte sequence occupies bits [8(n-1), 8n-1] and the final
// continuation byte occupies bits [0, 7]. The length is not stored in the
// Sequence; it is returned by Encode or derived again from the lead byte by
// Size.
//
// Decode trusts the shape declared by the lead byte. It does not check that
// continuation bytes carry the 10xxxxxx prefix and it does not reject
// overlong encodings or surrogate code points.
package utf8codec

import (
	"errors"
	"fmt"
)

const (
	tx = 0x80 // 1000 0000
	t2 = 0xC0 // 1100 0000
	t3 = 0xE0 // 1110 0000
	t4 = 0xF0 // 1111 0000

	maskx = 0x3F // 0011 1111
	mask2 = 0x1F // 0001 1111
	mask3 = 0x0F // 0000 1111
	mask4 = 0x07 // 0000 0111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

// MaxCodePoint is the largest valid Unicode code point.
const MaxCodePoint CodePoint = 0x10FFFF

// UTFMax is the maximum number of bytes of an encoded sequence.
const UTFMax = 4

var (
	// ErrInvalidLeadByte is returned when a byte (or the most significant byte
	// of a Sequence) is a continuation byte or a malformed lead byte.
	ErrInvalidLeadByte = errors.New("utf8codec: invalid lead byte")
	// ErrCodePointOutOfRange is returned by Encode for code points above
	// MaxCodePoint.
	ErrCodePointOutOfRange = errors.New("utf8codec: code point out of range")
)

// CodePoint is an integer identifying a Unicode character.
type CodePoint uint64

// Valid reports whether c is within [0, MaxCodePoint].
func (c CodePoint) Valid() bool {
	return c <= MaxCodePoint
}

func (c CodePoint) String() string {
	return fmt.Sprintf("U+%04X", uint64(c))
}

// Sequence is a UTF-8 byte sequence of 1 to 4 bytes packed big-endian.
type Sequence uint32

// Lead returns the lead byte of s, assuming s holds n bytes.
func (s Sequence) Lead(n int) byte {
	if n < 1 || n > UTFMax {
		return 0
	}
	return byte(s >> (8 * uint(n-1)))
}

// AppendBytes appends the n bytes of s to dst, lead byte first.
func (s Sequence) AppendBytes(dst []byte, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(s>>(8*uint(i))))
	}
	return dst
}

func (s Sequence) String() string {
	return fmt.Sprintf("0x%X", uint32(s))
}
