// Package clawio centralizes terminal concerns for go-claw: output stream
// bundling, TTY detection and width discovery. Help and error rendering in
// the engine route through it so library output degrades cleanly when
// redirected to a pipe or file.
package clawio

import (
	stdio "io"
	"os"

	"golang.org/x/term"
)

// defaultWidth is assumed when the writer is not a terminal or the size
// query fails.
const defaultWidth = 80

// Streams bundles the three process streams so callers can swap them out
// in one place, e.g. for tests.
type Streams struct {
	In  stdio.Reader
	Out stdio.Writer
	Err stdio.Writer
}

// Std returns a Streams bound to the process stdio.
func Std() *Streams {
	return &Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column width of the terminal behind w, or a default
// when w is not a terminal.
func Width(w stdio.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return defaultWidth
	}
	return cols
}
