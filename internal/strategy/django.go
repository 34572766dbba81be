package strategy

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/rdt-dev/rdt/internal/fsutil"
	"github.com/rdt-dev/rdt/internal/project"
	"github.com/rdt-dev/rdt/internal/templates"
)

const manageScript = `#!/usr/bin/env python
"""Django's command-line utility for administrative tasks."""
import os
import sys


def main():
    """Run administrative tasks."""
    os.environ.setdefault("DJANGO_SETTINGS_MODULE", "%s.settings")
    try:
        from django.core.management import execute_from_command_line
    except ImportError as exc:
        raise ImportError(
            "Couldn't import Django. Are you sure it's installed and "
            "available on your PYTHONPATH environment variable? Did you "
            "forget to activate a virtual environment?"
        ) from exc
    execute_from_command_line(sys.argv)


if __name__ == "__main__":
    main()
`

// DjangoRest generates Django REST framework projects around an
// app package named after the project.
type DjangoRest struct {
	base
}

// NewDjangoRest creates the Django-Rest strategy.
func NewDjangoRest(cfg project.Config, r Renderer) Strategy {
	return &DjangoRest{base: newBase(cfg, r)}
}

// Framework implements Strategy.
func (s *DjangoRest) Framework() project.Framework {
	return project.DjangoRest
}

// GenerateStructure implements Strategy.
func (s *DjangoRest) GenerateStructure(root string) error {
	app := s.cfg.AppName()
	return makePackages(root,
		app,
		path.Join(app, "api"),
		path.Join(app, "management"),
		path.Join(app, "management", "commands"),
	)
}

// GenerateFiles implements Strategy.
func (s *DjangoRest) GenerateFiles(root string) error {
	app := s.cfg.AppName()
	tmpls := s.templates()

	outs := []fileOut{
		{templates.KeySettings, path.Join(app, "settings.py")},
		{templates.KeyURLs, path.Join(app, "urls.py")},
		{templates.KeyModels, path.Join(app, "api", "models.py")},
		{templates.KeySerializers, path.Join(app, "api", "serializers.py")},
		{s.authKey(tmpls, templates.KeyViews), path.Join(app, "api", "views.py")},
		{templates.KeySecurity, path.Join(app, "security.py")},
	}
	if err := s.emitAll(root, tmpls, outs); err != nil {
		return err
	}

	script := fmt.Sprintf(manageScript, app)
	return fsutil.WriteFileAtomic(filepath.Join(root, "manage.py"), []byte(script), 0o755)
}
