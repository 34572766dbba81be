package cmdutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rdt-dev/rdt/internal/generator"
	"github.com/rdt-dev/rdt/internal/output"
	"github.com/rdt-dev/rdt/internal/project"
)

// PrintErrors logs a headline followed by one line per error.
func PrintErrors(msg string, errs []error) {
	output.Error(msg)
	for _, err := range errs {
		output.Error("  " + err.Error())
	}
}

// SummaryTable renders the configuration summary shown before generation.
func SummaryTable(s generator.Summary) string {
	f := s.Features
	return output.NewTable().
		Title("Project Configuration").
		Row("Project Name", s.ProjectName).
		Row("Framework", string(s.Framework)).
		Row("ORM", string(s.ORM)).
		Row("Database", string(s.Database)).
		Row("Authentication", output.FeatureMark(f.Authentication, "Enabled", "Disabled")).
		Row("Docker", output.FeatureMark(f.Docker, "Included", "Not included")).
		Row("Testing", output.FeatureMark(f.Testing, "Included", "Not included")).
		Row("Git Init", output.FeatureMark(f.Git, "Yes", "No")).
		Row("Templates", fmt.Sprint(s.TemplatesCount)).
		Row("Dependencies", fmt.Sprint(s.Dependencies.Total)).
		Row("Output Path", s.OutputPath).
		String()
}

// fileDescriptions annotates well-known files in the generated tree.
var fileDescriptions = map[string]string{
	".env.example":         "environment template",
	".gitignore":           "git ignore rules",
	"Dockerfile":           "container image",
	"docker-compose.yml":   "local services",
	"README.md":            "project overview",
	"app.py":               "development server entry point",
	"manage.py":            "Django management",
	"pyproject.toml":       "packaging and tooling",
	"pytest.ini":           "test runner config",
	"requirements.txt":     "runtime dependencies",
	"requirements-dev.txt": "development dependencies",
	"src/main.py":          "application entry point",
	"src/security.py":      "JWT helpers",
	"tests/conftest.py":    "test fixtures",
}

// FileTree renders the files under root, skipping the .git directory and
// package markers.
func FileTree(root string) (string, error) {
	files := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == "__init__.py" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		files[rel] = fileDescriptions[rel]
		return nil
	})
	if err != nil {
		return "", err
	}
	return output.RenderFileTree(filepath.Base(root), files), nil
}

// NextSteps returns the markdown shown after a successful generation.
func NextSteps(path string, cfg project.Config) string {
	var b strings.Builder
	w := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
	}

	w("# Your project is ready\n\n")
	w("Location: `%s`\n\n", path)
	w("## Quick start\n\n")

	step := 0
	next := func(title string) {
		step++
		w("%d. %s:\n\n", step, title)
	}

	next("Enter the project and create a virtual environment")
	w("```bash\ncd %s\npython3 -m venv venv\nsource venv/bin/activate\n```\n\n", cfg.Name)
	next("Install dependencies and configure the environment")
	w("```bash\npip install -r requirements.txt\ncp .env.example .env\n```\n\n")

	if cmds := databaseInit(cfg); cmds != "" {
		next("Initialize the database")
		w("```bash\n%s\n```\n\n", cmds)
	}

	next("Run the server")
	w("```bash\n%s\n```\n\n", runCommand(cfg.Framework))

	switch cfg.Framework {
	case project.FastAPI:
		w("API docs: http://localhost:%d/docs\n\n", cfg.Port())
	case project.FlaskRestx:
		w("API docs: http://localhost:%d/\n\n", cfg.Port())
	}

	if cfg.DockerSupport {
		w("## Docker\n\n```bash\ndocker-compose up -d\n```\n\n")
	}
	if cfg.TestingSuite {
		w("## Tests\n\n```bash\npytest\npytest --cov=src --cov-report=html\n```\n")
	}
	return b.String()
}

func databaseInit(cfg project.Config) string {
	switch {
	case cfg.Framework == project.FlaskRestx && cfg.ORM == project.SQLAlchemy:
		return "flask db init\nflask db migrate -m \"Initial migration\"\nflask db upgrade"
	case cfg.Framework == project.FastAPI && cfg.ORM == project.SQLAlchemy:
		return "alembic init alembic\nalembic revision --autogenerate -m \"Initial migration\"\nalembic upgrade head"
	case cfg.ORM == project.TortoiseORM:
		return "aerich init -t src.config.config.TORTOISE_ORM\naerich init-db"
	case cfg.Framework == project.DjangoRest:
		return "python manage.py makemigrations\npython manage.py migrate"
	default:
		return ""
	}
}

func runCommand(fw project.Framework) string {
	switch fw {
	case project.FastAPI:
		return "uvicorn src.main:app --reload"
	case project.DjangoRest:
		return "python manage.py runserver"
	default:
		return "python app.py"
	}
}
