// Package deps builds the Python dependency lists and requirement manifests
// of a generated project.
package deps

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rdt-dev/rdt/internal/fsutil"
	"github.com/rdt-dev/rdt/internal/output"
	"github.com/rdt-dev/rdt/internal/project"
	"github.com/rdt-dev/rdt/internal/version"
)

const (
	// RuntimeManifest is the runtime requirements file name.
	RuntimeManifest = "requirements.txt"

	// DevManifest is the development requirements file name.
	DevManifest = "requirements-dev.txt"
)

// Info counts the dependencies of a configuration by category.
type Info struct {
	Total     int `json:"total"`
	Base      int `json:"base"`
	Framework int `json:"framework"`
	ORM       int `json:"orm"`
	Testing   int `json:"testing"`
	Auth      int `json:"auth"`
}

// Manager resolves dependency lists and writes requirement manifests.
// The zero value is ready to use.
type Manager struct{}

// NewManager returns a dependency manager.
func NewManager() *Manager {
	return &Manager{}
}

// AllDependencies returns the sorted, de-duplicated runtime dependencies.
func (m *Manager) AllDependencies(cfg project.Config) []string {
	set := make(map[string]struct{})
	add := func(items []string) {
		for _, d := range items {
			set[d] = struct{}{}
		}
	}

	add(baseDeps)
	if cfg.TestingSuite {
		add(testingDeps)
	}

	fw := frameworkDeps[cfg.Framework]
	add(fw.base)
	if cfg.AuthEnabled {
		add(fw.auth)
	}
	add(fw.production)

	orm := ormDeps[cfg.ORM]
	add(orm.base)
	add(orm.perFramework[cfg.Framework])

	drivers := dbDrivers[cfg.Database]
	if cfg.IsAsync() {
		add(drivers.async)
	} else {
		add(drivers.sync)
	}

	add(recommendedDeps)

	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// DevDependencies returns the sorted development-only dependencies.
func (m *Manager) DevDependencies() []string {
	out := append([]string(nil), devDeps...)
	sort.Strings(out)
	return out
}

// Info returns dependency counts for cfg.
func (m *Manager) Info(cfg project.Config) Info {
	fw := frameworkDeps[cfg.Framework]
	info := Info{
		Total:     len(m.AllDependencies(cfg)),
		Base:      len(baseDeps),
		Framework: len(fw.base),
		ORM:       len(ormDeps[cfg.ORM].base),
	}
	if cfg.TestingSuite {
		info.Testing = len(testingDeps)
	}
	if cfg.AuthEnabled {
		info.Auth = len(fw.auth)
	}
	return info
}

// PackageName strips the version specifier and extras from a requirement.
func PackageName(req string) string {
	name := req
	if i := strings.IndexAny(name, "<>=!~;"); i >= 0 {
		name = name[:i]
	}
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// CheckConflicts returns warnings for combinations of packages that
// should not be installed together.
func (m *Manager) CheckConflicts(deps []string) []string {
	pkgs := make(map[string]bool, len(deps))
	for _, d := range deps {
		pkgs[PackageName(d)] = true
	}

	var warnings []string
	if pkgs["sqlalchemy"] && pkgs["tortoise-orm"] {
		warnings = append(warnings,
			"using both SQLAlchemy and TortoiseORM; consider using only one ORM")
	}
	if pkgs["django"] && (pkgs["flask"] || pkgs["fastapi"]) {
		warnings = append(warnings,
			"mixing Django with other frameworks is unusual and may cause conflicts")
	}
	return warnings
}

// group splits deps into manifest sections.
func group(cfg project.Config, deps []string) (base, framework, orm, testing, other []string) {
	basePkgs := make(map[string]bool, len(baseDeps))
	for _, d := range baseDeps {
		basePkgs[PackageName(d)] = true
	}
	testPkgs := make(map[string]bool, len(testingDeps))
	for _, d := range testingDeps {
		testPkgs[PackageName(d)] = true
	}

	fwSet := make(map[string]bool)
	fw := frameworkDeps[cfg.Framework]
	for _, list := range [][]string{fw.base, fw.auth} {
		for _, d := range list {
			fwSet[d] = true
		}
	}
	ormSetFor := make(map[string]bool)
	for _, d := range ormDeps[cfg.ORM].base {
		ormSetFor[d] = true
	}
	for _, d := range ormDeps[cfg.ORM].perFramework[cfg.Framework] {
		ormSetFor[d] = true
	}

	for _, d := range deps {
		switch {
		case basePkgs[PackageName(d)]:
			base = append(base, d)
		case testPkgs[PackageName(d)]:
			testing = append(testing, d)
		case fwSet[d]:
			framework = append(framework, d)
		case ormSetFor[d]:
			orm = append(orm, d)
		default:
			other = append(other, d)
		}
	}
	return base, framework, orm, testing, other
}

// RuntimeManifestContent renders requirements.txt for cfg.
func (m *Manager) RuntimeManifestContent(cfg project.Config) string {
	deps := m.AllDependencies(cfg)
	base, framework, orm, testing, other := group(cfg, deps)

	lines := []string{
		fmt.Sprintf("# Requirements generated by rdt %s", version.Get().Version),
		"# Project: " + cfg.Name,
		"# Framework: " + string(cfg.Framework),
		"# ORM: " + string(cfg.ORM),
		"# Database: " + string(cfg.Database),
		"",
		"# Base dependencies",
	}
	lines = append(lines, base...)

	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		lines = append(lines, "", "# "+title)
		lines = append(lines, items...)
	}
	section(string(cfg.Framework)+" framework", framework)
	section(string(cfg.ORM)+" ORM", orm)
	section("Testing", testing)
	section("Other dependencies", other)

	return strings.Join(lines, "\n") + "\n"
}

// DevManifestContent renders requirements-dev.txt.
func (m *Manager) DevManifestContent() string {
	lines := []string{
		"# Development requirements",
		"# Install with: pip install -r " + DevManifest,
		"",
		"-r " + RuntimeManifest,
		"",
	}
	lines = append(lines, m.DevDependencies()...)
	return strings.Join(lines, "\n") + "\n"
}

// WriteRuntimeManifest writes requirements.txt into root.
func (m *Manager) WriteRuntimeManifest(cfg project.Config, root string) error {
	path := filepath.Join(root, RuntimeManifest)
	if err := fsutil.WriteFileAtomic(path, []byte(m.RuntimeManifestContent(cfg)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", RuntimeManifest, err)
	}
	output.Debug("wrote manifest", "path", path)
	return nil
}

// WriteDevManifest writes requirements-dev.txt into root.
func (m *Manager) WriteDevManifest(root string) error {
	path := filepath.Join(root, DevManifest)
	if err := fsutil.WriteFileAtomic(path, []byte(m.DevManifestContent()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", DevManifest, err)
	}
	output.Debug("wrote manifest", "path", path)
	return nil
}
