// Package fixture holds the literal code point fixtures of the codec and
// runs them as a self-test.
package fixture

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pchchv/utf8codec"
)

// Case is a code point together with its expected encoding.
type Case struct {
	Name      string
	CodePoint utf8codec.CodePoint
	Sequence  utf8codec.Sequence
	Size      int
}

// Lead returns the lead byte of the expected encoding.
func (c Case) Lead() byte {
	return c.Sequence.Lead(c.Size)
}

// Cases are checked in both directions and against the size probe.
var Cases = []Case{
	{Name: "Dollar", CodePoint: 0x24, Sequence: 0x24, Size: 1},
	{Name: "Pound", CodePoint: 0xA3, Sequence: 0xC2A3, Size: 2},
	{Name: "Cyrillic I", CodePoint: 0x0418, Sequence: 0xD098, Size: 2},
	{Name: "Euro", CodePoint: 0x20AC, Sequence: 0xE282AC, Size: 3},
	{Name: "Hwair", CodePoint: 0x10348, Sequence: 0xF0908D88, Size: 4},
}

// Boundary is a single edge-case check.
type Boundary struct {
	Name  string
	Check func() error
}

// Boundaries are the range limits of the encoder and the lead bytes the size
// probe must reject.
var Boundaries = []Boundary{
	{Name: "last code point", Check: func() error {
		s, n, err := utf8codec.Encode(utf8codec.MaxCodePoint)
		if err != nil || s != 0xF48FBFBF || n != 4 {
			return fmt.Errorf("U+10FFFF encoded to %v (%d bytes, err=%v), not 0xF48FBFBF (4 bytes)", s, n, err)
		}
		return nil
	}},
	{Name: "past last code point", Check: func() error {
		s, n, err := utf8codec.Encode(utf8codec.MaxCodePoint + 1)
		if !errors.Is(err, utf8codec.ErrCodePointOutOfRange) || s != 0 || n != 0 {
			return fmt.Errorf("U+110000 encoded to %v (%d bytes, err=%v), expected failure", s, n, err)
		}
		return nil
	}},
	{Name: "continuation byte", Check: leadRejected(0x80)},
	{Name: "all bits set", Check: leadRejected(0xFF)},
}

func leadRejected(lead byte) func() error {
	return func() error {
		n, err := utf8codec.Size(lead)
		if !errors.Is(err, utf8codec.ErrInvalidLeadByte) {
			return fmt.Errorf("binary 0x%02X said to be of size %d, expected invalid lead byte", lead, n)
		}
		return nil
	}
}

// Report is the outcome of Run.
type Report struct {
	Passed   int
	Failures []string
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

func (r *Report) check(name, op, msg string) {
	log := Logger().With(zap.String("case", name), zap.String("op", op))
	if msg == "" {
		r.Passed++
		log.Debug("check passed")
		return
	}
	r.Failures = append(r.Failures, msg)
	log.Warn("check failed", zap.String("detail", msg))
}

// Run checks every case and boundary, writing one line per failure to w.
func Run(w io.Writer) *Report {
	r := &Report{}
	for _, c := range Cases {
		r.check(c.Name, "encode", checkEncode(c))
	}
	for _, c := range Cases {
		r.check(c.Name, "decode", checkDecode(c))
	}
	for _, c := range Cases {
		r.check(c.Name, "size", checkSize(c))
	}
	for _, b := range Boundaries {
		var msg string
		if err := b.Check(); err != nil {
			msg = fmt.Sprintf("Error: %s: %v.", b.Name, err)
		}
		r.check(b.Name, "boundary", msg)
	}
	for _, msg := range r.Failures {
		fmt.Fprintln(w, msg)
	}
	Logger().Info("fixtures checked", zap.Int("passed", r.Passed), zap.Int("failed", len(r.Failures)))
	return r
}

func checkEncode(c Case) string {
	s, n, err := utf8codec.Encode(c.CodePoint)
	if err != nil || s != c.Sequence || n != c.Size {
		return fmt.Sprintf("Error: %s %v encoded to %v (%d bytes), not %v (%s).", c.Name, c.CodePoint, s, n, c.Sequence, plural(c.Size))
	}
	return ""
}

func checkDecode(c Case) string {
	cp, err := utf8codec.Decode(c.Sequence)
	if err != nil || cp != c.CodePoint {
		return fmt.Sprintf("Error: %s binary %v decoded to %v, not %v.", c.Name, c.Sequence, cp, c.CodePoint)
	}
	return ""
}

func checkSize(c Case) string {
	n, err := utf8codec.Size(c.Lead())
	if err != nil || n != c.Size {
		return fmt.Sprintf("Error: %s binary 0x%02X said to be of size %d, not %d.", c.Name, c.Lead(), n, c.Size)
	}
	return ""
}

func plural(n int) string {
	if n == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", n)
}
