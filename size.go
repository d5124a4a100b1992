package utf8codec

// Size returns how many bytes (1 to 4) the sequence introduced by lead
// occupies. An ASCII byte has size 1.
//
// The lead byte is classified from the most specific prefix to the least:
//
//	11110xxx -> 4
//	1110xxxx -> 3
//	110xxxxx -> 2
//	0xxxxxxx -> 1
//
// Any other byte (a continuation byte 10xxxxxx, or 11111xxx) yields
// 0 and ErrInvalidLeadByte.
func Size(lead byte) (int, error) {
	switch {
	case lead>>3 == 0x1E:
		return 4, nil
	case lead>>4 == 0x0E:
		return 3, nil
	case lead>>5 == 0x06:
		return 2, nil
	case lead>>7 == 0:
		return 1, nil
	}
	return 0, ErrInvalidLeadByte
}
