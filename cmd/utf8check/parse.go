package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pchchv/utf8codec"
)

// parseCodePoint accepts U+XXXX, 0x-prefixed hex, decimal, or a single
// literal character.
func parseCodePoint(arg string) (utf8codec.CodePoint, error) {
	if hex, ok := cutPrefixFold(arg, "U+"); ok {
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid code point %q", arg)
		}
		return utf8codec.CodePoint(v), nil
	}
	if v, err := strconv.ParseUint(arg, 0, 64); err == nil {
		return utf8codec.CodePoint(v), nil
	}
	if rs := []rune(arg); len(rs) == 1 {
		return utf8codec.CodePoint(rs[0]), nil
	}
	return 0, fmt.Errorf("invalid code point %q", arg)
}

// parseSequence accepts hex with or without a 0x prefix; spaces between
// bytes are ignored.
func parseSequence(arg string) (utf8codec.Sequence, error) {
	v, err := parseHex(arg, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid packed sequence %q", arg)
	}
	return utf8codec.Sequence(v), nil
}

func parseLeadByte(arg string) (byte, error) {
	v, err := parseHex(arg, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid lead byte %q", arg)
	}
	return byte(v), nil
}

func parseHex(arg string, bitSize int) (uint64, error) {
	hex := strings.ReplaceAll(strings.TrimSpace(arg), " ", "")
	if h, ok := cutPrefixFold(hex, "0x"); ok {
		hex = h
	}
	return strconv.ParseUint(hex, 16, bitSize)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

func describeCodePoint(c utf8codec.CodePoint) (string, error) {
	s, n, err := utf8codec.Encode(c)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v %v %d % X", c, s, n, s.AppendBytes(nil, n)), nil
}

func describeSequence(s utf8codec.Sequence) (string, error) {
	c, err := utf8codec.Decode(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v %v", s, c), nil
}

func describeLeadByte(b byte) (string, error) {
	n, err := utf8codec.Size(b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("0x%02X %d", b, n), nil
}
