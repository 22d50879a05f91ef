package history

import (
	"bufio"
	"io"
)

// maxLineSize bounds a single history line. Multi-line commands stored by some
// shells can be long, so the scanner default of 64KiB is raised.
const maxLineSize = 1024 * 1024

// NewParser returns the Parser for the given shell.
// Any shell other than fish and zsh is read as plain one-command-per-line
// history, the same format bash uses.
func NewParser(shell Shell) Parser {
	switch shell {
	case ShellFish:
		return NewFishParser()
	case ShellZsh:
		return NewZshParser()
	default:
		return NewBashParser()
	}
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)
	return scanner
}
