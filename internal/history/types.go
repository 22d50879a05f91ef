package history

import "io"

// Shell identifies which shell's history format to read.
type Shell string

// Known shells.
const (
	ShellBash    Shell = "bash"
	ShellZsh     Shell = "zsh"
	ShellFish    Shell = "fish"
	ShellUnknown Shell = "unknown"
)

// String returns the shell name.
func (s Shell) String() string { return string(s) }

// Item represents a single command from shell history.
type Item struct {
	// Command is the trimmed command text. Never empty.
	Command string `json:"cmd" yaml:"cmd"`

	// Path is the working directory recorded with the command.
	// Only fish records it; empty otherwise.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Parser defines the interface for shell history parsers.
type Parser interface {
	Parse(r io.Reader) ([]Item, error)
}
