package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal is the operator's console: a byte stream in, a byte stream out,
// and the two screen controls the menus need.
type Terminal interface {
	io.Reader
	io.Writer

	// MakeRaw switches input to unbuffered, unechoed mode so single key
	// presses can be read. The returned func restores the previous mode.
	MakeRaw() (restore func(), err error)

	// Clear wipes the screen before the next frame is drawn.
	Clear()
}

// TTY is a Terminal backed by a real terminal device.
type TTY struct {
	in      *os.File
	out     *os.File
	fd      int
	initial *term.State
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewTTY wraps in/out and records the terminal state so Restore can put it
// back even if the program is interrupted while in raw mode.
func NewTTY(in, out *os.File) (*TTY, error) {
	fd := int(in.Fd())
	state, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("console.NewTTY: %w", err)
	}
	return &TTY{in: in, out: out, fd: fd, initial: state}, nil
}

func (t *TTY) Read(p []byte) (int, error)  { return t.in.Read(p) }
func (t *TTY) Write(p []byte) (int, error) { return t.out.Write(p) }

func (t *TTY) MakeRaw() (func(), error) {
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, fmt.Errorf("console.TTY.MakeRaw: %w", err)
	}
	return func() { _ = term.Restore(t.fd, state) }, nil
}

func (t *TTY) Clear() {
	fmt.Fprint(t.out, "\033[H\033[2J")
}

// Restore puts the terminal back into the state it had when NewTTY was called.
func (t *TTY) Restore() error {
	return term.Restore(t.fd, t.initial)
}

// pipe is a Terminal over plain streams: redirected input, or tests.
// Raw mode and clearing are no-ops.
type pipe struct {
	io.Reader
	io.Writer
}

// NewPipe returns a Terminal that reads from in and writes to out without
// any terminal control.
func NewPipe(in io.Reader, out io.Writer) Terminal {
	return pipe{Reader: in, Writer: out}
}

func (pipe) MakeRaw() (func(), error) { return func() {}, nil }
func (pipe) Clear()                   {}
