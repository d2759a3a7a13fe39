package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Adapter reports whether an output stream is attached to a terminal.
type Adapter struct {
	out io.Writer
}

// NewAdapter creates a new terminal adapter for out.
func NewAdapter(out io.Writer) *Adapter {
	return &Adapter{out: out}
}

// IsInteractive returns true if the stream is a terminal.
func (a *Adapter) IsInteractive() bool {
	if file, ok := a.out.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
