package templates

import (
	"fmt"
	"strings"

	oerrors "github.com/rdt-dev/rdt/internal/errors"
)

// TemplateNotFoundError is returned when a template id has no backing file.
type TemplateNotFoundError struct {
	ID         string
	SearchRoot string
}

// Error implements the error interface.
func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s (looking in %s)", e.ID, e.SearchRoot)
}

// Unwrap returns oerrors.ErrNotFound.
func (e *TemplateNotFoundError) Unwrap() error {
	return oerrors.ErrNotFound
}

// MissingTemplatesError lists required templates absent from a template set.
// It is reported by pre-flight validation and never raised during generation.
type MissingTemplatesError struct {
	Templates []string
}

// Error implements the error interface.
func (e *MissingTemplatesError) Error() string {
	return "missing templates: " + strings.Join(e.Templates, ", ")
}

// Unwrap returns oerrors.ErrNotFound.
func (e *MissingTemplatesError) Unwrap() error {
	return oerrors.ErrNotFound
}
