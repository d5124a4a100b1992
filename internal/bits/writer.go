package bits

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
	"github.com/pchchv/utf8codec"
)

// Writer writes encoded sequences to an underlying byte stream.
// Close must be called to flush pending writes.
type Writer struct {
	bw *bitio.Writer
}

// NewWriter returns a new Writer that writes sequences to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// WriteSequence writes the n bytes of s, lead byte first.
func (w *Writer) WriteSequence(s utf8codec.Sequence, n int) error {
	if n < 1 || n > utf8codec.UTFMax {
		return fmt.Errorf("bits.Writer.WriteSequence: invalid sequence length; n (%d) not in [1, %d]", n, utf8codec.UTFMax)
	}
	return w.bw.WriteBits(uint64(s), uint8(8*n))
}

// WriteCodePoint encodes c and writes the resulting sequence.
func (w *Writer) WriteCodePoint(c utf8codec.CodePoint) error {
	s, n, err := utf8codec.Encode(c)
	if err != nil {
		return fmt.Errorf("bits.Writer.WriteCodePoint: %v; %w", c, err)
	}
	return w.WriteSequence(s, n)
}

// Close flushes pending writes. It does not close the underlying writer.
func (w *Writer) Close() error {
	return w.bw.Close()
}
