package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalReader reports whether a file descriptor is attached to a terminal
type TerminalReader interface {
	IsTerminal(fd int) bool
}

// DefaultTerminal queries the operating system through golang.org/x/term
type DefaultTerminal struct{}

func (DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// IsInteractive is true when both stdin and stdout are terminals, i.e. when it is safe to hand them
// over to an interactive program such as an editor
func IsInteractive(reader TerminalReader, stdin, stdout *os.File) bool {
	if reader == nil {
		reader = DefaultTerminal{}
	}
	if stdin == nil || stdout == nil {
		return false
	}

	return reader.IsTerminal(int(stdin.Fd())) && reader.IsTerminal(int(stdout.Fd()))
}
