package bits

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/pchchv/utf8codec"
)

func TestReadSequence(t *testing.T) {
	data := []byte("$£И€\U00010348")
	want := []struct {
		s utf8codec.Sequence
		n int
	}{
		{0x24, 1},
		{0xC2A3, 2},
		{0xD098, 2},
		{0xE282AC, 3},
		{0xF0908D88, 4},
	}

	r := NewReader(bytes.NewReader(data))
	for i, w := range want {
		s, n, err := r.ReadSequence()
		if err != nil {
			t.Fatalf("i=%d; unable to read sequence; %v", i, err)
		}
		if s != w.s || n != w.n {
			t.Errorf("i=%d; expected %v (%d bytes), got %v (%d bytes)", i, w.s, w.n, s, n)
		}
	}

	if _, _, err := r.ReadSequence(); err != io.EOF {
		t.Errorf("expected err=%v at end of stream, got err=%v", io.EOF, err)
	}
	if off := r.Offset(); off != int64(len(data)) {
		t.Errorf("expected offset %d, got %d", len(data), off)
	}
}

func TestReadEOF(t *testing.T) {
	tests := []struct {
		data []byte
		err  error
	}{
		{[]byte{0x24}, nil},
		{[]byte{0xC2, 0xA3}, nil},
		{[]byte{}, io.EOF},
		{[]byte{0xC2}, io.ErrUnexpectedEOF},
		{[]byte{0xE2, 0x82}, io.ErrUnexpectedEOF},
		{[]byte{0xF0, 0x90, 0x8D}, io.ErrUnexpectedEOF},
		{[]byte{0x80}, utf8codec.ErrInvalidLeadByte},
		{[]byte{0xFF, 0x24}, utf8codec.ErrInvalidLeadByte},
	}

	for i, test := range tests {
		r := NewReader(bytes.NewReader(test.data))
		if _, _, err := r.ReadSequence(); !errors.Is(err, test.err) {
			t.Errorf("i=%d; reading sequence from %v, expected err=%v, got err=%v", i, test.data, test.err, err)
		}
	}
}

func TestReadCodePoint(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("a€")))
	for i, want := range []utf8codec.CodePoint{'a', 0x20AC} {
		c, err := r.ReadCodePoint()
		if err != nil {
			t.Fatalf("i=%d; unable to read code point; %v", i, err)
		}
		if c != want {
			t.Errorf("i=%d; expected %v, got %v", i, want, c)
		}
	}
}
