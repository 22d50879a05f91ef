// Package errors provides the error types shared by the soon CLI.
//
// Below the command layer most failures degrade to empty results, so only a
// handful of conditions surface as errors. They come in two shapes.
//
// Base errors (sentinel errors):
//   - ErrUnknownShell - the shell could not be determined
//   - ErrEmptyHistory - history for the shell is missing or empty
//   - ErrNotFound - resource not found
//   - ErrAlreadyExists - file already present
//   - ErrInvalid - validation failed
//   - ErrIO - file I/O error
//   - ErrNetwork - a network request failed
//
// Wrapped error types (add context):
//   - ShellError{Op, Shell, Err} - failures tied to a resolved shell
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	return &errors.ShellError{Op: "now", Shell: "zsh", Err: errors.ErrEmptyHistory}
//
//	if errors.IsUnknownShell(err) {
//	    // ask the user for --shell
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrUnknownShell indicates the shell could not be detected.
	ErrUnknownShell = baseError("unknown shell")

	// ErrEmptyHistory indicates no history entries could be loaded.
	ErrEmptyHistory = baseError("empty history")

	// ErrNotFound indicates a resource was not found.
	ErrNotFound = baseError("not found")

	// ErrAlreadyExists indicates a file is already present.
	ErrAlreadyExists = baseError("already exists")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")

	// ErrNetwork indicates a network request failed.
	ErrNetwork = baseError("network error")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// ShellError represents a failure for a particular shell.
type ShellError struct {
	// Op is the command being run (e.g., "now", "stats").
	Op string
	// Shell is the resolved shell name (optional).
	Shell string
	// Err is the underlying error.
	Err error
}

func (e *ShellError) Error() string {
	if e.Shell != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Shell, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *ShellError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsUnknownShell reports whether err is or wraps ErrUnknownShell.
func IsUnknownShell(err error) bool {
	return errors.Is(err, ErrUnknownShell)
}

// IsEmptyHistory reports whether err is or wraps ErrEmptyHistory.
func IsEmptyHistory(err error) bool {
	return errors.Is(err, ErrEmptyHistory)
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is or wraps ErrAlreadyExists.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsNetwork reports whether err is or wraps ErrNetwork.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// AsShellError reports whether err can be typed as a *ShellError.
func AsShellError(err error) (*ShellError, bool) {
	var se *ShellError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
