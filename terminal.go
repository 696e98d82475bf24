package progressw

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultColumns is used when the sink is not a terminal or its size is unknown.
const DefaultColumns = 100

// TerminalInfo reports the width of the terminal a bar is drawn on. It is
// queried on every accepted frame, so resizes are picked up lazily.
type TerminalInfo interface {
	Columns() int
}

// FdTerminal reads the size of the terminal behind a file descriptor.
type FdTerminal struct {
	fd uintptr
}

func NewFdTerminal(f *os.File) *FdTerminal {
	return &FdTerminal{fd: f.Fd()}
}

func (t *FdTerminal) IsTerminal() bool {
	return isatty.IsTerminal(t.fd) || isatty.IsCygwinTerminal(t.fd)
}

func (t *FdTerminal) Columns() int {
	if !t.IsTerminal() {
		return DefaultColumns
	}
	width, _, err := term.GetSize(int(t.fd))
	if err != nil || width <= 0 {
		return DefaultColumns
	}
	return MaxInt(width-columnsReserve, 0)
}

// FixedTerminal always reports the same width.
type FixedTerminal int

func (t FixedTerminal) Columns() int {
	return int(t)
}
