package strategy

import (
	"os"
	"path/filepath"

	"github.com/rdt-dev/rdt/internal/fsutil"
	"github.com/rdt-dev/rdt/internal/project"
	"github.com/rdt-dev/rdt/internal/templates"
)

// base holds what every strategy shares.
type base struct {
	cfg      project.Config
	renderer Renderer
}

func newBase(cfg project.Config, r Renderer) base {
	return base{cfg: cfg, renderer: r}
}

// templates resolves the framework/ORM and common layers. Test files are
// written by the generator, so the test layer is never requested here.
func (b base) templates() map[string]string {
	return templates.TemplatesForConfig(b.cfg.Framework, b.cfg.ORM, b.cfg.AuthEnabled, false)
}

// authKey picks key+"_auth" when auth is enabled and that variant exists.
func (b base) authKey(tmpls map[string]string, key string) string {
	if b.cfg.AuthEnabled {
		if _, ok := tmpls[key+templates.AuthSuffix]; ok {
			return key + templates.AuthSuffix
		}
	}
	return key
}

// emit renders tmpls[key] to out. A key missing from tmpls means the
// template does not apply and nothing is written.
func (b base) emit(tmpls map[string]string, key, out string) error {
	id, ok := tmpls[key]
	if !ok {
		return nil
	}
	return b.renderer.RenderToFile(id, out, b.cfg.TemplateContext())
}

// makePackages creates each directory under root with an __init__.py marker.
func makePackages(root string, dirs ...string) error {
	for _, dir := range dirs {
		if err := fsutil.MakePackage(filepath.Join(root, filepath.FromSlash(dir))); err != nil {
			return err
		}
	}
	return nil
}

// makeDirs creates plain directories under root.
func makeDirs(root string, dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0o755); err != nil {
			return err
		}
	}
	return nil
}

// fileOut maps a logical key to its path relative to the project root.
type fileOut struct {
	key  string
	path string
}

func (b base) emitAll(root string, tmpls map[string]string, outs []fileOut) error {
	for _, o := range outs {
		if err := b.emit(tmpls, o.key, filepath.Join(root, filepath.FromSlash(o.path))); err != nil {
			return err
		}
	}
	return nil
}
