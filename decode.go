package utf8codec

import "io"

// Decode decodes the packed sequence s and returns its code point.
//
// The prefixes are looked for at the position each lead byte would occupy,
// starting with the 4-byte form:
//   - bits 31..27 == 11110: 4-byte sequence
//   - bits 23..20 == 1110: 3-byte sequence
//   - bits 15..13 == 110: 2-byte sequence
//   - s <= 0x7F: ASCII, returned unchanged
//
// Otherwise Decode returns 0 and ErrInvalidLeadByte. Continuation bytes are
// not checked for the 10xxxxxx prefix and overlong forms are accepted.
func Decode(s Sequence) (CodePoint, error) {
	x := uint32(s)
	switch {
	case x>>27 == 0x1E:
		// total: 21 bits (3 + 6 + 6 + 6)
		c := (x>>24&mask4)<<18 | (x>>16&maskx)<<12 | (x>>8&maskx)<<6 | x&maskx
		return CodePoint(c), nil
	case x>>20&0x0F == 0x0E:
		// total: 16 bits (4 + 6 + 6)
		c := (x>>16&mask3)<<12 | (x>>8&maskx)<<6 | x&maskx
		return CodePoint(c), nil
	case x>>13&0x07 == 0x06:
		// total: 11 bits (5 + 6)
		c := (x>>8&mask2)<<6 | x&maskx
		return CodePoint(c), nil
	case x <= rune1Max:
		return CodePoint(x), nil
	}
	return 0, ErrInvalidLeadByte
}

// Pack packs the first encoded sequence of p into a Sequence and returns it
// with its length. The length is taken from the lead byte p[0]; bytes past
// that length are ignored.
//
// Pack returns io.EOF if p is empty and io.ErrUnexpectedEOF if p ends before
// the declared length.
func Pack(p []byte) (Sequence, int, error) {
	if len(p) == 0 {
		return 0, 0, io.EOF
	}
	n, err := Size(p[0])
	if err != nil {
		return 0, 0, err
	}
	if len(p) < n {
		return 0, 0, io.ErrUnexpectedEOF
	}
	var s Sequence
	for _, b := range p[:n] {
		s = s<<8 | Sequence(b)
	}
	return s, n, nil
}
