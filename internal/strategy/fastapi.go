package strategy

import (
	"github.com/rdt-dev/rdt/internal/project"
	"github.com/rdt-dev/rdt/internal/templates"
)

// FastAPI generates async FastAPI projects under src/ with alembic migrations.
type FastAPI struct {
	base
}

// NewFastAPI creates the FastAPI strategy.
func NewFastAPI(cfg project.Config, r Renderer) Strategy {
	return &FastAPI{base: newBase(cfg, r)}
}

// Framework implements Strategy.
func (s *FastAPI) Framework() project.Framework {
	return project.FastAPI
}

// GenerateStructure implements Strategy.
func (s *FastAPI) GenerateStructure(root string) error {
	if err := makePackages(root, "src", "src/api", "src/schemas", "src/crud"); err != nil {
		return err
	}
	return makeDirs(root, "alembic")
}

// GenerateFiles implements Strategy.
func (s *FastAPI) GenerateFiles(root string) error {
	tmpls := s.templates()

	return s.emitAll(root, tmpls, []fileOut{
		{s.authKey(tmpls, templates.KeyMain), "src/main.py"},
		{templates.KeyDatabase, "src/database.py"},
		{templates.KeyConfig, "src/config/config.py"},
		{templates.KeyModels, "src/models/models.py"},
		{s.authKey(tmpls, templates.KeyRoutes), "src/api/routes_example.py"},
		{templates.KeySchemas, "src/schemas/schemas.py"},
	})
}
