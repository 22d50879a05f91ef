package history

import (
	"path/filepath"
	"strings"
)

// DetectShell resolves the shell to use.
//
// A non-empty override is returned verbatim. Otherwise shellEnv (the value of
// $SHELL) is lower-cased and matched by substring against zsh, bash and fish,
// in that order. Anything else resolves to ShellUnknown.
func DetectShell(override, shellEnv string) Shell {
	if override != "" {
		return Shell(override)
	}

	shell := strings.ToLower(shellEnv)
	switch {
	case strings.Contains(shell, "zsh"):
		return ShellZsh
	case strings.Contains(shell, "bash"):
		return ShellBash
	case strings.Contains(shell, "fish"):
		return ShellFish
	default:
		return ShellUnknown
	}
}

// HistoryPath returns the default history file location for shell under home.
// It reports false for shells without a known history file or when home is empty.
func HistoryPath(shell Shell, home string) (string, bool) {
	if home == "" {
		return "", false
	}

	switch shell {
	case ShellBash:
		return filepath.Join(home, ".bash_history"), true
	case ShellZsh:
		return filepath.Join(home, ".zsh_history"), true
	case ShellFish:
		return filepath.Join(home, ".local", "share", "fish", "fish_history"), true
	default:
		return "", false
	}
}
