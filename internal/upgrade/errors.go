package upgrade

import "fmt"

// Exit codes for the update command.
const (
	ExitSuccess       = 0 // Success or update available
	ExitGenericError  = 1 // Generic error
	ExitNetworkError  = 2 // Network error (couldn't reach GitHub)
	ExitAlreadyLatest = 5 // Already on latest version (with --check-only)
)

// UpgradeError represents an update check error.
type UpgradeError struct {
	Code    int
	Message string
	Cause   error
}

func (e *UpgradeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *UpgradeError) Unwrap() error {
	return e.Cause
}

// NewError creates a new UpgradeError.
func NewError(code int, message string, cause error) *UpgradeError {
	return &UpgradeError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
