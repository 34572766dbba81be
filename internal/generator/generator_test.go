package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdt-dev/rdt/internal/deps"
	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/project"
	"github.com/rdt-dev/rdt/internal/strategy"
	"github.com/rdt-dev/rdt/internal/templates"
)

var errInjected = errors.New("injected failure")

// faultRenderer fails or panics on the Nth RenderToFile call.
type faultRenderer struct {
	*templates.Renderer
	failAt  int
	panicAt int
	calls   int
}

func (f *faultRenderer) RenderToFile(id, out string, data map[string]any) error {
	f.calls++
	if f.calls == f.panicAt {
		panic("renderer exploded")
	}
	if f.calls == f.failAt {
		return errInjected
	}
	return f.Renderer.RenderToFile(id, out, data)
}

// failingDeps fails writing the dev manifest.
type failingDeps struct {
	*deps.Manager
}

func (failingDeps) WriteDevManifest(string) error {
	return errInjected
}

func newConfig(t *testing.T, fw project.Framework, orm project.ORM) project.Config {
	t.Helper()
	return project.Config{
		Name:          "blog-api",
		Framework:     fw,
		ORM:           orm,
		Database:      project.SQLite,
		AuthEnabled:   true,
		DockerSupport: true,
		TestingSuite:  true,
		OutputDir:     t.TempDir(),
	}
}

func recordStates(states *[]State) Option {
	return WithStateHook(func(s State) {
		*states = append(*states, s)
	})
}

func TestGenerateFlaskWithEverything(t *testing.T) {
	cfg := newConfig(t, project.FlaskRestx, project.SQLAlchemy)
	var states []State

	path, err := New(templates.NewEmbeddedRenderer(), recordStates(&states)).Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "blog-api"), path)

	for _, rel := range []string{
		"app.py",
		"src/__init__.py",
		"src/extensions.py",
		"src/security.py",
		"src/models/__init__.py",
		"src/services/__init__.py",
		"src/utils/__init__.py",
		"src/routes/routes_example.py",
		".gitignore",
		".env.example",
		"README.md",
		"LICENSE",
		"pyproject.toml",
		deps.RuntimeManifest,
		deps.DevManifest,
		"tests/__init__.py",
		"tests/conftest.py",
		"tests/test_api.py",
		"tests/test_models.py",
		"tests/test_security.py",
		"pytest.ini",
		"Dockerfile",
		"docker-compose.yml",
		".dockerignore",
	} {
		assert.FileExists(t, filepath.Join(path, filepath.FromSlash(rel)))
	}
	assert.DirExists(t, filepath.Join(path, "tests", "integration"))

	assert.Equal(t, []State{
		Validating, DirectoryCreated, StructureBuilt, FilesEmitted, CommonFilesEmitted,
		DependenciesEmitted, TestsEmitted, DockerEmitted, Done,
	}, states)
}

func TestGenerateWithoutOptionalFeatures(t *testing.T) {
	cfg := newConfig(t, project.FastAPI, project.TortoiseORM)
	cfg.AuthEnabled = false
	cfg.DockerSupport = false
	cfg.TestingSuite = false
	var states []State

	path, err := New(templates.NewEmbeddedRenderer(), recordStates(&states)).Generate(cfg)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(path, "src", "main.py"))
	assert.FileExists(t, filepath.Join(path, deps.RuntimeManifest))
	assert.NoFileExists(t, filepath.Join(path, "src", "security.py"))
	assert.NoFileExists(t, filepath.Join(path, "Dockerfile"))
	assert.NoFileExists(t, filepath.Join(path, "pytest.ini"))
	assert.NoDirExists(t, filepath.Join(path, "tests"))

	assert.NotContains(t, states, TestsEmitted)
	assert.NotContains(t, states, DockerEmitted)
	assert.Equal(t, Done, states[len(states)-1])
}

func TestGenerateTestsWithoutAuth(t *testing.T) {
	cfg := newConfig(t, project.DjangoRest, project.DjangoORM)
	cfg.AuthEnabled = false

	path, err := New(templates.NewEmbeddedRenderer()).Generate(cfg)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(path, "tests", "conftest.py"))
	assert.NoFileExists(t, filepath.Join(path, "tests", "test_security.py"))
	assert.NoFileExists(t, filepath.Join(path, "src", "security.py"))
}

func TestGenerateEveryCombination(t *testing.T) {
	for _, pair := range templates.Combinations() {
		t.Run(string(pair.Framework)+"/"+string(pair.ORM), func(t *testing.T) {
			cfg := newConfig(t, pair.Framework, pair.ORM)
			_, err := New(templates.NewEmbeddedRenderer()).Generate(cfg)
			assert.NoError(t, err)
		})
	}
}

func TestGenerateExistingDirectory(t *testing.T) {
	cfg := newConfig(t, project.FlaskRestx, project.SQLAlchemy)
	existing := filepath.Join(cfg.OutputDir, cfg.Name)
	require.NoError(t, os.Mkdir(existing, 0o755))
	keep := filepath.Join(existing, "keep.txt")
	require.NoError(t, os.WriteFile(keep, []byte("mine"), 0o644))

	var states []State
	_, err := New(templates.NewEmbeddedRenderer(), recordStates(&states)).Generate(cfg)

	var exists *AlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, existing, exists.Path)
	assert.ErrorIs(t, err, oerrors.ErrExists)

	entries, err := os.ReadDir(existing)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, []State{Validating}, states)
}

func TestGenerateTwice(t *testing.T) {
	cfg := newConfig(t, project.FastAPI, project.SQLAlchemy)
	g := New(templates.NewEmbeddedRenderer())

	path, err := g.Generate(cfg)
	require.NoError(t, err)

	_, err = g.Generate(cfg)
	assert.ErrorIs(t, err, oerrors.ErrExists)
	assert.FileExists(t, filepath.Join(path, "src", "main.py"))
}

func TestGenerateUnsupportedFrameworkRollsBack(t *testing.T) {
	cfg := newConfig(t, project.Framework("bottle"), project.SQLAlchemy)
	var states []State

	_, err := New(templates.NewEmbeddedRenderer(), recordStates(&states)).Generate(cfg)

	var unsupported *UnsupportedFrameworkError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, project.Frameworks(), unsupported.Supported)
	assert.ErrorIs(t, err, oerrors.ErrUnsupported)
	assert.NoDirExists(t, filepath.Join(cfg.OutputDir, cfg.Name))
	assert.Equal(t, []State{Validating, DirectoryCreated, RolledBack}, states)
}

func TestGenerateRejectsUnregisteredCombination(t *testing.T) {
	cfg := newConfig(t, project.FlaskRestx, project.TortoiseORM)
	var states []State

	_, err := New(templates.NewEmbeddedRenderer(), recordStates(&states)).Generate(cfg)

	var combo *UnsupportedCombinationError
	require.ErrorAs(t, err, &combo)
	assert.Equal(t, project.FlaskRestx, combo.Framework)
	assert.Equal(t, project.TortoiseORM, combo.ORM)
	assert.ErrorIs(t, err, oerrors.ErrUnsupported)
	assert.Contains(t, err.Error(), "SQLAlchemy, Peewee")
	assert.NoDirExists(t, filepath.Join(cfg.OutputDir, cfg.Name))
	assert.Equal(t, []State{Validating}, states)
}

func TestGenerateRollsBackOnEveryRenderFailure(t *testing.T) {
	cfg := newConfig(t, project.FlaskRestx, project.Peewee)

	counter := &faultRenderer{Renderer: templates.NewEmbeddedRenderer()}
	path, err := New(counter).Generate(cfg)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(path))
	total := counter.calls
	require.Positive(t, total)

	for n := 1; n <= total; n++ {
		r := &faultRenderer{Renderer: templates.NewEmbeddedRenderer(), failAt: n}
		_, err := New(r).Generate(cfg)
		require.ErrorIs(t, err, errInjected, "call %d", n)
		assert.NoDirExists(t, path, "call %d", n)
	}
}

func TestGenerateRollsBackOnDependencyFailure(t *testing.T) {
	cfg := newConfig(t, project.FastAPI, project.SQLAlchemy)
	var states []State

	g := New(templates.NewEmbeddedRenderer(),
		WithDependencyManager(failingDeps{deps.NewManager()}),
		recordStates(&states))
	_, err := g.Generate(cfg)

	assert.ErrorIs(t, err, errInjected)
	assert.NoDirExists(t, filepath.Join(cfg.OutputDir, cfg.Name))
	assert.Equal(t, RolledBack, states[len(states)-1])
	assert.NotContains(t, states, DependenciesEmitted)
}

func TestGenerateRollsBackOnPanic(t *testing.T) {
	cfg := newConfig(t, project.DjangoRest, project.DjangoORM)
	r := &faultRenderer{Renderer: templates.NewEmbeddedRenderer(), panicAt: 3}

	assert.PanicsWithValue(t, "renderer exploded", func() {
		_, _ = New(r).Generate(cfg)
	})
	assert.NoDirExists(t, filepath.Join(cfg.OutputDir, cfg.Name))
}

func TestWithStrategies(t *testing.T) {
	cfg := newConfig(t, project.FastAPI, project.SQLAlchemy)
	only := map[project.Framework]strategy.Constructor{
		project.FlaskRestx: strategy.NewFlaskRestx,
	}

	_, err := New(templates.NewEmbeddedRenderer(), WithStrategies(only)).Generate(cfg)

	var unsupported *UnsupportedFrameworkError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, []project.Framework{project.FlaskRestx}, unsupported.Supported)
	assert.Contains(t, err.Error(), "Flask-Restx")
}

func TestValidateBeforeGenerate(t *testing.T) {
	t.Run("embedded templates", func(t *testing.T) {
		cfg := newConfig(t, project.FlaskRestx, project.SQLAlchemy)
		ok, errs := New(templates.NewEmbeddedRenderer()).ValidateBeforeGenerate(cfg)
		assert.True(t, ok)
		assert.Empty(t, errs)
		assert.NoDirExists(t, filepath.Join(cfg.OutputDir, cfg.Name))
	})

	t.Run("missing templates", func(t *testing.T) {
		cfg := newConfig(t, project.FastAPI, project.TortoiseORM)
		empty := templates.NewRenderer(fstest.MapFS{}, "empty")

		ok, errs := New(empty).ValidateBeforeGenerate(cfg)
		assert.False(t, ok)
		require.Len(t, errs, 1)

		var missing *templates.MissingTemplatesError
		require.ErrorAs(t, errs[0], &missing)
		assert.Equal(t, templates.RequiredTemplates(project.FastAPI, project.TortoiseORM), missing.Templates)
	})

	t.Run("unknown combination", func(t *testing.T) {
		cfg := newConfig(t, project.FlaskRestx, project.TortoiseORM)
		ok, errs := New(templates.NewEmbeddedRenderer()).ValidateBeforeGenerate(cfg)
		assert.False(t, ok)
		require.NotEmpty(t, errs)
		assert.ErrorIs(t, errs[0], oerrors.ErrUnsupported)
	})
}

func TestSummary(t *testing.T) {
	cfg := newConfig(t, project.FastAPI, project.SQLAlchemy)
	cfg.Database = project.PostgreSQL
	cfg.GitInit = true

	s, err := New(templates.NewEmbeddedRenderer()).Summary(cfg)
	require.NoError(t, err)

	assert.Equal(t, "blog-api", s.ProjectName)
	assert.Equal(t, project.FastAPI, s.Framework)
	assert.Equal(t, project.PostgreSQL, s.Database)
	assert.Equal(t, Features{Authentication: true, Docker: true, Testing: true, Git: true}, s.Features)
	assert.Equal(t, deps.NewManager().Info(cfg), s.Dependencies)
	assert.Equal(t, len(templates.TemplatesForConfig(cfg.Framework, cfg.ORM, true, true)), s.TemplatesCount)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "blog-api"), s.OutputPath)
	assert.NoDirExists(t, s.OutputPath)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "CommonFilesEmitted", CommonFilesEmitted.String())
	assert.Equal(t, "RolledBack", RolledBack.String())
	assert.Equal(t, "Unknown", State(42).String())
	assert.True(t, Done.Terminal())
	assert.True(t, RolledBack.Terminal())
	assert.False(t, TestsEmitted.Terminal())
}
