package utf8codec

// Encode encodes c as UTF-8 and returns the bytes packed into a Sequence
// together with their number.
//
//	U+0000   - U+007F   0xxxxxxx
//	U+0080   - U+07FF   110xxxxx 10xxxxxx
//	U+0800   - U+FFFF   1110xxxx 10xxxxxx 10xxxxxx
//	U+10000  - U+10FFFF 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
//
// Code points above MaxCodePoint yield 0, 0 and ErrCodePointOutOfRange.
func Encode(c CodePoint) (Sequence, int, error) {
	switch {
	case c <= rune1Max:
		// 1-byte, 7-bit sequence; the top bit is already 0.
		return Sequence(c), 1, nil
	case c <= rune2Max:
		// total: 11 bits (5 + 6)
		b1 := t2 | uint32(c>>6)&mask2
		b2 := tx | uint32(c)&maskx
		return Sequence(b1<<8 | b2), 2, nil
	case c <= rune3Max:
		// total: 16 bits (4 + 6 + 6)
		b1 := t3 | uint32(c>>12)&mask3
		b2 := tx | uint32(c>>6)&maskx
		b3 := tx | uint32(c)&maskx
		return Sequence(b1<<16 | b2<<8 | b3), 3, nil
	case c <= MaxCodePoint:
		// total: 21 bits (3 + 6 + 6 + 6)
		b1 := t4 | uint32(c>>18)&mask4
		b2 := tx | uint32(c>>12)&maskx
		b3 := tx | uint32(c>>6)&maskx
		b4 := tx | uint32(c)&maskx
		return Sequence(b1<<24 | b2<<16 | b3<<8 | b4), 4, nil
	}
	return 0, 0, ErrCodePointOutOfRange
}
