// Package bits moves packed UTF-8 sequences between byte streams and
// utf8codec.Sequence values, one encoded unit at a time.
package bits

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
	"github.com/pchchv/utf8codec"
)

// Reader reads encoded sequences from an underlying byte stream.
type Reader struct {
	br  *bitio.Reader // underlying bit reader
	off int64         // offset of the next lead byte
}

// NewReader returns a new Reader that reads sequences from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// Offset returns the byte offset of the next lead byte.
func (r *Reader) Offset() int64 {
	return r.off
}

// ReadSequence reads the next encoded sequence and returns it packed,
// together with its length in bytes.
// It returns io.EOF only if no byte remains before the lead byte, and
// io.ErrUnexpectedEOF if the stream ends inside a sequence.
func (r *Reader) ReadSequence() (s utf8codec.Sequence, n int, err error) {
	lead, err := r.br.ReadBits(8)
	if err != nil {
		return 0, 0, err
	}

	n, err = utf8codec.Size(byte(lead))
	if err != nil {
		return 0, 0, fmt.Errorf("bits.Reader.ReadSequence: offset %d; lead byte 0x%02X; %w", r.off, lead, err)
	}

	x := lead
	if n > 1 {
		rest, err := r.br.ReadBits(uint8(8 * (n - 1)))
		if err != nil {
			if err == io.EOF {
				return 0, 0, io.ErrUnexpectedEOF
			}
			return 0, 0, err
		}
		x = x<<(8*uint(n-1)) | rest
	}

	r.off += int64(n)
	return utf8codec.Sequence(x), n, nil
}

// ReadCodePoint reads and decodes the next encoded sequence.
func (r *Reader) ReadCodePoint() (utf8codec.CodePoint, error) {
	s, _, err := r.ReadSequence()
	if err != nil {
		return 0, err
	}
	return utf8codec.Decode(s)
}
