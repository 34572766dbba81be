// Package strategy lays out framework-specific project files. Each
// supported framework has one Strategy; the set is closed.
package strategy

import "github.com/rdt-dev/rdt/internal/project"

// Renderer renders a template to a file.
type Renderer interface {
	RenderToFile(id, out string, data map[string]any) error
}

// Strategy creates a framework's directory tree and files.
// Errors are returned unchanged; cleanup is the caller's job.
type Strategy interface {
	// Framework returns the framework the strategy generates.
	Framework() project.Framework

	// GenerateStructure creates the framework's directories under root.
	GenerateStructure(root string) error

	// GenerateFiles renders the framework's files under root.
	GenerateFiles(root string) error
}

// Constructor builds a Strategy for a configuration.
type Constructor func(cfg project.Config, r Renderer) Strategy

// Registry returns the strategy constructors keyed by framework.
// Each call returns a new map.
func Registry() map[project.Framework]Constructor {
	return map[project.Framework]Constructor{
		project.FlaskRestx: NewFlaskRestx,
		project.FastAPI:    NewFastAPI,
		project.DjangoRest: NewDjangoRest,
	}
}
