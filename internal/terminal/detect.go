// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// StdoutIsTerminal reports whether standard output is an interactive
// terminal. Progress coloring is disabled when it is not.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout)
}
