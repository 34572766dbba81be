package cmd

import (
	"errors"

	oerrors "github.com/rdt-dev/rdt/internal/errors"
)

// Exit codes, shared with internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
	ExitAlreadyExists   = oerrors.ExitAlreadyExists
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitAlreadyExists:
		return "Already Exists"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrValidation), errors.Is(err, oerrors.ErrUnsupported):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, oerrors.ErrExists):
		return ExitAlreadyExists
	default:
		return ExitGeneralError
	}
}

// withExitCode wraps err in an ExitError carrying its exit code.
func withExitCode(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Err: err, Code: ExitCodeFromError(err)}
}
