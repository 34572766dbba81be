package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template, file, or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrExists indicates a target path already exists.
	ErrExists = errors.New("already exists")

	// ErrUnsupported indicates a framework or combination the generator cannot handle.
	ErrUnsupported = errors.New("unsupported")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")
)
