package generator

import (
	"fmt"
	"strings"

	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/project"
)

// AlreadyExistsError is returned when the project directory already exists.
// Nothing has been written when it is returned.
type AlreadyExistsError struct {
	Path string
}

// Error implements the error interface.
func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("directory already exists: %s; choose a different name or remove it", e.Path)
}

// Unwrap returns oerrors.ErrExists.
func (e *AlreadyExistsError) Unwrap() error {
	return oerrors.ErrExists
}

// UnsupportedFrameworkError is returned when no strategy generates the
// configured framework.
type UnsupportedFrameworkError struct {
	Framework project.Framework
	Supported []project.Framework
}

// Error implements the error interface.
func (e *UnsupportedFrameworkError) Error() string {
	names := make([]string, len(e.Supported))
	for i, fw := range e.Supported {
		names[i] = string(fw)
	}
	return fmt.Sprintf("unsupported framework %q; supported frameworks: %s",
		e.Framework, strings.Join(names, ", "))
}

// Unwrap returns oerrors.ErrUnsupported.
func (e *UnsupportedFrameworkError) Unwrap() error {
	return oerrors.ErrUnsupported
}

// UnsupportedCombinationError is returned when a supported framework is paired
// with an ORM the template registry has no tables for. Nothing has been
// written when it is returned.
type UnsupportedCombinationError struct {
	Framework project.Framework
	ORM       project.ORM
}

// Error implements the error interface.
func (e *UnsupportedCombinationError) Error() string {
	return fmt.Sprintf("unsupported combination: %s with %s; use %s",
		e.Framework, e.ORM, joinORMs(project.CompatibleORMs(e.Framework)))
}

// Unwrap returns oerrors.ErrUnsupported.
func (e *UnsupportedCombinationError) Unwrap() error {
	return oerrors.ErrUnsupported
}

func joinORMs(orms []project.ORM) string {
	names := make([]string, len(orms))
	for i, o := range orms {
		names[i] = string(o)
	}
	return strings.Join(names, ", ")
}
