package generator

import (
	"github.com/rdt-dev/rdt/internal/deps"
	"github.com/rdt-dev/rdt/internal/project"
	"github.com/rdt-dev/rdt/internal/templates"
)

// Features lists the optional parts of a generated project.
type Features struct {
	Authentication bool `json:"authentication"`
	Docker         bool `json:"docker"`
	Testing        bool `json:"testing"`
	Git            bool `json:"git"`
}

// Summary describes what Generate would produce.
type Summary struct {
	ProjectName    string            `json:"projectName"`
	Framework      project.Framework `json:"framework"`
	ORM            project.ORM       `json:"orm"`
	Database       project.Database  `json:"database"`
	Features       Features          `json:"features"`
	Dependencies   deps.Info         `json:"dependencies"`
	TemplatesCount int               `json:"templatesCount"`
	OutputPath     string            `json:"outputPath"`
}

// Summary reports what generating cfg would produce without writing anything.
func (g *Generator) Summary(cfg project.Config) (Summary, error) {
	out, err := cfg.OutputPath()
	if err != nil {
		return Summary{}, err
	}

	tmpls := templates.TemplatesForConfig(cfg.Framework, cfg.ORM, cfg.AuthEnabled, cfg.TestingSuite)

	return Summary{
		ProjectName: cfg.Name,
		Framework:   cfg.Framework,
		ORM:         cfg.ORM,
		Database:    cfg.Database,
		Features: Features{
			Authentication: cfg.AuthEnabled,
			Docker:         cfg.DockerSupport,
			Testing:        cfg.TestingSuite,
			Git:            cfg.GitInit,
		},
		Dependencies:   g.deps.Info(cfg),
		TemplatesCount: len(tmpls),
		OutputPath:     out,
	}, nil
}
