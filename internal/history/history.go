// Package history provides shell history parsing for bash, zsh and fish.
package history

import (
	"os"

	"go.uber.org/zap"
)

// Loader reads the history file for a shell.
type Loader struct {
	// Home is the user's home directory. Empty means it could not be resolved.
	Home string

	// Paths overrides the default history location per shell.
	Paths map[Shell]string

	logger *zap.Logger
}

// NewLoader creates a Loader rooted at home. A nil logger disables logging.
func NewLoader(home string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		Home:   home,
		Paths:  map[Shell]string{},
		logger: logger,
	}
}

// Path returns the history file the loader would read for shell.
func (l *Loader) Path(shell Shell) (string, bool) {
	if p, ok := l.Paths[shell]; ok && p != "" {
		return p, true
	}
	return HistoryPath(shell, l.Home)
}

// Load reads and parses the history for shell, earliest entry first.
//
// Load never fails: a missing home directory, an unsupported shell, or a
// missing or unreadable file all yield an empty slice. Callers treat an empty
// result as "history could not be loaded".
func (l *Loader) Load(shell Shell) []Item {
	path, ok := l.Path(shell)
	if !ok {
		l.logger.Debug("no history file for shell", zap.String("shell", shell.String()))
		return []Item{}
	}

	file, err := os.Open(path)
	if err != nil {
		l.logger.Debug("failed to open history", zap.String("path", path), zap.Error(err))
		return []Item{}
	}
	defer func() { _ = file.Close() }()

	items, err := NewParser(shell).Parse(file)
	if err != nil {
		l.logger.Warn("failed to parse history", zap.String("path", path), zap.Error(err))
		return []Item{}
	}

	l.logger.Debug("loaded history",
		zap.String("shell", shell.String()),
		zap.String("path", path),
		zap.Int("items", len(items)))

	if items == nil {
		return []Item{}
	}
	return items
}
