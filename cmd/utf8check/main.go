// Command utf8check exercises the utf8codec operations.
//
// Usage:
//
//	utf8check [-v] [test]              run the fixture self-test
//	utf8check encode U+20AC €          encode code points
//	utf8check decode 0xE282AC          decode packed sequences
//	utf8check size 0xE2                probe lead bytes
//	utf8check emit U+24 U+20AC         write raw UTF-8 bytes to stdout
//	utf8check dump < file              print the code points read from stdin
//	utf8check -i                       interactive mode with TUI
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/pchchv/utf8codec"
	"github.com/pchchv/utf8codec/internal/bits"
	"github.com/pchchv/utf8codec/internal/fixture"
)

// errFailed is returned when the self-test failed; it has already been reported.
var errFailed = errors.New("test failed")

func main() {
	var (
		verbose     = flag.Bool("v", false, "Log every check to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Usage = usage
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	fixture.SetLogger(log.Named("fixture"))

	var err error
	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			err = errors.New("interactive mode requires a terminal")
		} else {
			err = runInteractive()
		}
	} else {
		a := &app{log: log, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
		err = a.run(flag.Args())
	}
	_ = log.Sync()

	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: utf8check [-v] [test]")
	fmt.Fprintln(os.Stderr, "       utf8check encode <code point>...")
	fmt.Fprintln(os.Stderr, "       utf8check decode <packed sequence>...")
	fmt.Fprintln(os.Stderr, "       utf8check size <lead byte>...")
	fmt.Fprintln(os.Stderr, "       utf8check emit <code point>...")
	fmt.Fprintln(os.Stderr, "       utf8check dump < file")
	fmt.Fprintln(os.Stderr, "       utf8check -i  (interactive mode)")
	flag.PrintDefaults()
}

type app struct {
	log    *zap.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (a *app) run(args []string) error {
	cmd := "test"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}
	a.log.Debug("running command", zap.String("cmd", cmd), zap.Strings("args", args))

	switch cmd {
	case "test":
		return a.test()
	case "encode":
		return a.each(args, func(arg string) (string, error) {
			c, err := parseCodePoint(arg)
			if err != nil {
				return "", err
			}
			return describeCodePoint(c)
		})
	case "decode":
		return a.each(args, func(arg string) (string, error) {
			s, err := parseSequence(arg)
			if err != nil {
				return "", err
			}
			return describeSequence(s)
		})
	case "size":
		return a.each(args, func(arg string) (string, error) {
			b, err := parseLeadByte(arg)
			if err != nil {
				return "", err
			}
			return describeLeadByte(b)
		})
	case "emit":
		return a.emit(args)
	case "dump":
		return a.dump()
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (a *app) test() error {
	r := fixture.Run(a.stderr)
	if !r.OK() {
		fmt.Fprintln(a.stdout, "Test failed.")
		return errFailed
	}
	fmt.Fprintln(a.stdout, "Test succeeded!")
	return nil
}

// each applies f to every argument, printing one line per result.
// All arguments are processed; the first error is returned.
func (a *app) each(args []string, f func(arg string) (string, error)) error {
	if len(args) == 0 {
		return errors.New("missing arguments")
	}
	var first error
	for _, arg := range args {
		line, err := f(arg)
		if err != nil {
			a.log.Debug("argument rejected", zap.String("arg", arg), zap.Error(err))
			fmt.Fprintf(a.stderr, "%s: %v\n", arg, err)
			if first == nil {
				first = fmt.Errorf("%s: %w", arg, err)
			}
			continue
		}
		fmt.Fprintln(a.stdout, line)
	}
	return first
}

func (a *app) emit(args []string) error {
	if len(args) == 0 {
		return errors.New("missing arguments")
	}
	out := bufio.NewWriter(a.stdout)
	w := bits.NewWriter(out)
	for _, arg := range args {
		c, err := parseCodePoint(arg)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		if err := w.WriteCodePoint(c); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return out.Flush()
}

func (a *app) dump() error {
	r := bits.NewReader(a.stdin)
	for {
		off := r.Offset()
		s, n, err := r.ReadSequence()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		c, err := utf8codec.Decode(s)
		if err != nil {
			return fmt.Errorf("offset %d: %w", off, err)
		}
		fmt.Fprintf(a.stdout, "%08X  %-8v %-10v %d\n", off, c, s, n)
	}
}
