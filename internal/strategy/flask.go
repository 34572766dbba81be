package strategy

import (
	"path/filepath"

	"github.com/rdt-dev/rdt/internal/fsutil"
	"github.com/rdt-dev/rdt/internal/project"
	"github.com/rdt-dev/rdt/internal/templates"
)

// flaskEntryPoint is the static app.py written at the project root.
const flaskEntryPoint = `"""Application entry point."""
import os

from src import create_app

app = create_app(os.getenv("APP_ENV"))

if __name__ == "__main__":
    app.run(host="0.0.0.0", port=int(os.getenv("PORT", "5300")))
`

// FlaskRestx generates Flask-Restx projects with an app factory in src/.
type FlaskRestx struct {
	base
}

// NewFlaskRestx creates the Flask-Restx strategy.
func NewFlaskRestx(cfg project.Config, r Renderer) Strategy {
	return &FlaskRestx{base: newBase(cfg, r)}
}

// Framework implements Strategy.
func (s *FlaskRestx) Framework() project.Framework {
	return project.FlaskRestx
}

// GenerateStructure implements Strategy.
func (s *FlaskRestx) GenerateStructure(root string) error {
	if err := makePackages(root, "src/controllers"); err != nil {
		return err
	}
	return makeDirs(root, "migrations")
}

// GenerateFiles implements Strategy.
func (s *FlaskRestx) GenerateFiles(root string) error {
	tmpls := s.templates()

	outs := []fileOut{
		{s.authKey(tmpls, templates.KeyInit), "src/__init__.py"},
		{s.authKey(tmpls, templates.KeyExtensions), "src/extensions.py"},
		{templates.KeyConfig, "src/config/config.py"},
		{templates.KeyModels, "src/models/models.py"},
		{s.authKey(tmpls, templates.KeyRoutes), "src/routes/routes_example.py"},
	}
	if err := s.emitAll(root, tmpls, outs); err != nil {
		return err
	}

	return fsutil.WriteFileAtomic(filepath.Join(root, "app.py"), []byte(flaskEntryPoint), 0o644)
}
