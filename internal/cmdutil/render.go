package cmdutil

import (
	"github.com/rdt-dev/rdt/internal/config"
	"github.com/rdt-dev/rdt/internal/output"
	"github.com/rdt-dev/rdt/internal/templates"
)

// NewRenderer returns a renderer over dir, or over the built-in templates
// when dir is empty.
func NewRenderer(dir string) (*templates.Renderer, error) {
	if dir == "" {
		return templates.NewEmbeddedRenderer(), nil
	}
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return nil, err
	}
	r, err := templates.NewDirRenderer(expanded)
	if err != nil {
		return nil, err
	}
	output.Debug("using template directory", "dir", expanded)
	return r, nil
}
