package cli

import "fmt"

// Exit codes for tenetlint commands. These support CI composition: a nonzero
// code means the repository's documents are not clean.
const (
	// ExitSuccess indicates all documents validated cleanly.
	ExitSuccess = 0

	// ExitValidationFailed indicates one or more validation errors.
	ExitValidationFailed = 1

	// ExitInvalidArguments indicates bad command arguments or configuration.
	ExitInvalidArguments = 3
)

// exitError is an error carrying an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates an error carrying the given exit code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitValidationFailed
}
