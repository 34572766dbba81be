// Package generator creates a project directory from a configuration. A run
// either leaves a complete project on disk or nothing at all.
package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/rdt-dev/rdt/internal/deps"
	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/fsutil"
	"github.com/rdt-dev/rdt/internal/output"
	"github.com/rdt-dev/rdt/internal/project"
	"github.com/rdt-dev/rdt/internal/strategy"
	"github.com/rdt-dev/rdt/internal/templates"
)

// Renderer renders templates and probes for their existence.
type Renderer interface {
	strategy.Renderer
	templates.Prober
}

// DependencyManager resolves dependencies and writes requirement manifests.
type DependencyManager interface {
	AllDependencies(cfg project.Config) []string
	CheckConflicts(deps []string) []string
	Info(cfg project.Config) deps.Info
	WriteRuntimeManifest(cfg project.Config, root string) error
	WriteDevManifest(root string) error
}

// Option configures a Generator.
type Option func(*Generator)

// WithDependencyManager replaces the default dependency manager.
func WithDependencyManager(m DependencyManager) Option {
	return func(g *Generator) {
		g.deps = m
	}
}

// WithStrategies replaces the strategy table.
func WithStrategies(s map[project.Framework]strategy.Constructor) Option {
	return func(g *Generator) {
		g.strategies = s
	}
}

// WithStateHook registers a function called on every state transition.
func WithStateHook(hook func(State)) Option {
	return func(g *Generator) {
		g.hook = hook
	}
}

// Generator generates projects.
type Generator struct {
	renderer   Renderer
	deps       DependencyManager
	strategies map[project.Framework]strategy.Constructor
	hook       func(State)
}

// New creates a Generator that renders with r.
func New(r Renderer, opts ...Option) *Generator {
	g := &Generator{
		renderer:   r,
		deps:       deps.NewManager(),
		strategies: strategy.Registry(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// run carries the state of a single Generate call.
type run struct {
	g      *Generator
	cfg    project.Config
	root   string
	ctx    map[string]any
	tmpls  map[string]string
	logger *log.Logger
}

func (r *run) enter(s State) {
	r.logger.Debug("generation state", "state", s)
	if r.g.hook != nil {
		r.g.hook(s)
	}
}

// Generate creates the project described by cfg and returns its path.
// On any failure after the project directory is created the directory is
// removed and the original error is returned.
func (g *Generator) Generate(cfg project.Config) (path string, err error) {
	r := &run{
		g:      g,
		cfg:    cfg,
		ctx:    cfg.TemplateContext(),
		tmpls:  templates.TemplatesForConfig(cfg.Framework, cfg.ORM, cfg.AuthEnabled, cfg.TestingSuite),
		logger: output.ProjectLogger(cfg.Name),
	}
	r.enter(Validating)

	root, err := cfg.OutputPath()
	if err != nil {
		return "", err
	}
	r.root = root

	if _, statErr := os.Lstat(root); statErr == nil {
		return "", &AlreadyExistsError{Path: root}
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return "", fmt.Errorf("checking %s: %w", root, statErr)
	}

	// An unknown framework is reported after mkdir, by the strategy lookup.
	if _, known := g.strategies[cfg.Framework]; known && !templates.HasCombination(cfg.Framework, cfg.ORM) {
		return "", &UnsupportedCombinationError{Framework: cfg.Framework, ORM: cfg.ORM}
	}

	if err := os.MkdirAll(filepath.Dir(root), 0o755); err != nil {
		return "", fmt.Errorf("creating parent directory: %w", err)
	}
	if err := os.Mkdir(root, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", &AlreadyExistsError{Path: root}
		}
		return "", fmt.Errorf("creating project directory: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		p := recover()
		r.rollback()
		if p != nil {
			panic(p)
		}
	}()

	r.enter(DirectoryCreated)

	if err := r.build(); err != nil {
		return "", err
	}

	committed = true
	r.enter(Done)
	r.logger.Info("project generated", "path", root)
	return root, nil
}

// rollback removes the project directory. A failed removal is logged and
// does not replace the error being returned.
func (r *run) rollback() {
	if rmErr := os.RemoveAll(r.root); rmErr != nil {
		output.Warn("could not remove partially generated project", "path", r.root, "error", rmErr)
	}
	r.enter(RolledBack)
}

func (r *run) build() error {
	ctor, ok := r.g.strategies[r.cfg.Framework]
	if !ok {
		return &UnsupportedFrameworkError{Framework: r.cfg.Framework, Supported: r.g.supported()}
	}
	s := ctor(r.cfg, r.g.renderer)

	if err := r.baseStructure(); err != nil {
		return err
	}
	if err := s.GenerateStructure(r.root); err != nil {
		return err
	}
	r.enter(StructureBuilt)

	if err := s.GenerateFiles(r.root); err != nil {
		return err
	}
	r.enter(FilesEmitted)

	if err := r.commonFiles(); err != nil {
		return err
	}
	r.enter(CommonFilesEmitted)

	if err := r.g.deps.WriteRuntimeManifest(r.cfg, r.root); err != nil {
		return err
	}
	if err := r.g.deps.WriteDevManifest(r.root); err != nil {
		return err
	}
	r.enter(DependenciesEmitted)

	if r.cfg.TestingSuite {
		if err := r.testFiles(); err != nil {
			return err
		}
		r.enter(TestsEmitted)
	}

	if r.cfg.DockerSupport {
		if err := r.dockerFiles(); err != nil {
			return err
		}
		r.enter(DockerEmitted)
	}
	return nil
}

// supported lists the frameworks that have a strategy, in display order.
func (g *Generator) supported() []project.Framework {
	var out []project.Framework
	known := make(map[project.Framework]bool)
	for _, fw := range project.Frameworks() {
		known[fw] = true
		if _, ok := g.strategies[fw]; ok {
			out = append(out, fw)
		}
	}
	var extra []project.Framework
	for fw := range g.strategies {
		if !known[fw] {
			extra = append(extra, fw)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

func (r *run) baseStructure() error {
	if err := os.MkdirAll(filepath.Join(r.root, "src"), 0o755); err != nil {
		return err
	}
	packages := []string{"src/models", "src/routes", "src/services", "src/config", "src/utils"}
	if r.cfg.TestingSuite {
		packages = append(packages, "tests")
	}
	for _, dir := range packages {
		if err := fsutil.MakePackage(filepath.Join(r.root, filepath.FromSlash(dir))); err != nil {
			return err
		}
	}
	if r.cfg.TestingSuite {
		if err := os.MkdirAll(filepath.Join(r.root, "tests", "integration"), 0o755); err != nil {
			return err
		}
	}
	return nil
}

// emit renders tmpls[key] to rel under the project root. Keys the
// configuration does not use are skipped.
func (r *run) emit(tmpls map[string]string, key, rel string) error {
	id, ok := tmpls[key]
	if !ok {
		return nil
	}
	return r.g.renderer.RenderToFile(id, filepath.Join(r.root, filepath.FromSlash(rel)), r.ctx)
}

func (r *run) emitAll(tmpls map[string]string, files [][2]string) error {
	for _, f := range files {
		if err := r.emit(tmpls, f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) commonFiles() error {
	files := [][2]string{
		{templates.KeyGitignore, ".gitignore"},
		{templates.KeyEnvExample, ".env.example"},
		{templates.KeyReadme, "README.md"},
		{templates.KeyLicense, "LICENSE"},
	}
	if r.cfg.AuthEnabled {
		files = append(files, [2]string{templates.KeySecurity, "src/security.py"})
	}
	files = append(files, [2]string{templates.KeyPyproject, "pyproject.toml"})
	return r.emitAll(r.tmpls, files)
}

func (r *run) testFiles() error {
	tests, ok := templates.TestTemplates(r.cfg.Framework, r.cfg.ORM, r.cfg.AuthEnabled)
	if !ok {
		r.logger.Warn("no test templates for combination; writing pytest.ini only",
			"framework", r.cfg.Framework, "orm", r.cfg.ORM)
	} else {
		err := r.emitAll(tests, [][2]string{
			{templates.KeyConftest, "tests/conftest.py"},
			{templates.KeyTestAPI, "tests/test_api.py"},
			{templates.KeyTestModels, "tests/test_models.py"},
			{templates.KeyTestSecurity, "tests/test_security.py"},
		})
		if err != nil {
			return err
		}
	}
	return r.emit(r.tmpls, templates.KeyPytestIni, "pytest.ini")
}

func (r *run) dockerFiles() error {
	return r.emitAll(r.tmpls, [][2]string{
		{templates.KeyDockerfile, "Dockerfile"},
		{templates.KeyDockerCompose, "docker-compose.yml"},
		{templates.KeyDockerignore, ".dockerignore"},
	})
}

// ValidateBeforeGenerate checks that every template the configuration
// needs exists and that its dependencies do not conflict. It never writes
// to the filesystem. Returned errors are data, not failures.
func (g *Generator) ValidateBeforeGenerate(cfg project.Config) (bool, []error) {
	var errs []error

	if !templates.HasCombination(cfg.Framework, cfg.ORM) {
		errs = append(errs, oerrors.Wrap(oerrors.ErrUnsupported,
			fmt.Sprintf("combination %s + %s", cfg.Framework, cfg.ORM)))
	} else if ok, missing := templates.ValidateTemplatesExist(g.renderer, cfg.Framework, cfg.ORM); !ok {
		errs = append(errs, &templates.MissingTemplatesError{Templates: missing})
	}

	for _, w := range g.deps.CheckConflicts(g.deps.AllDependencies(cfg)) {
		errs = append(errs, fmt.Errorf("dependency conflict: %s", w))
	}

	return len(errs) == 0, errs
}
