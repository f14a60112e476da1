package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// rawMode puts the terminal on in into raw mode, so every keystroke reaches
// the console director without waiting for Enter. It returns a restore
// function, and is a no-op when in is not a terminal.
func rawMode(in *os.File) (restore func(), raw bool, err error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, false, errors.Wrap(err, "entering raw terminal mode")
	}
	return func() { _ = term.Restore(fd, state) }, true, nil
}

// crlfWriter turns \n into \r\n; raw mode disables the terminal's own
// newline translation
type crlfWriter struct {
	out io.Writer
}

func (w crlfWriter) Write(p []byte) (int, error) {
	if _, err := w.out.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
