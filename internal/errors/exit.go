package errors

import "fmt"

// Process exit codes.
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitValidationError = 2
	ExitNotFound        = 5
	ExitAlreadyExists   = 7
)

// ExitError carries the exit code a command failure should end the process
// with. Printed is set when the command already reported the error, so the
// entry point must not print it again.
type ExitError struct {
	Err     error
	Code    int
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
