package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"
	"text/template"
	"time"

	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/fsutil"
	"github.com/rdt-dev/rdt/internal/output"
)

// templateExt is the suffix every template id carries.
const templateExt = ".tmpl"

var (
	// actionRegex matches a template action.
	actionRegex = regexp.MustCompile(`\{\{-?(.*?)-?\}\}`)

	// fieldRegex matches a top-level field reference inside an action.
	fieldRegex = regexp.MustCompile(`(?:^|[\s(|,])\.([A-Za-z_][A-Za-z0-9_]*)`)
)

// Renderer renders templates from a template set.
type Renderer struct {
	fsys fs.FS
	root string
}

// NewRenderer creates a renderer over fsys. root labels the set in errors.
func NewRenderer(fsys fs.FS, root string) *Renderer {
	return &Renderer{fsys: fsys, root: root}
}

// NewEmbeddedRenderer creates a renderer over the built-in template set.
func NewEmbeddedRenderer() *Renderer {
	return NewRenderer(EmbeddedFS(), embeddedRoot)
}

// NewDirRenderer creates a renderer over a template directory on disk.
func NewDirRenderer(dir string) (*Renderer, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(
				"templates directory not found", dir,
				"Check --templates-dir or the templatesDir config value")
		}
		return nil, fmt.Errorf("reading templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewNotFoundError(
			"templates path is not a directory", dir, "")
	}
	return NewRenderer(os.DirFS(dir), dir), nil
}

// SearchRoot returns the template set label.
func (r *Renderer) SearchRoot() string {
	return r.root
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"pascal": PascalCase,
		"snake":  SnakeCase,
		"kebab":  KebabCase,
		"title":  TitleCase,
		"year":   func() int { return time.Now().Year() },
		"now":    time.Now,
	}
}

func (r *Renderer) source(id string) ([]byte, error) {
	if !fs.ValidPath(id) {
		return nil, &TemplateNotFoundError{ID: id, SearchRoot: r.root}
	}
	data, err := fs.ReadFile(r.fsys, id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, &TemplateNotFoundError{ID: id, SearchRoot: r.root}
		}
		return nil, fmt.Errorf("reading template %s: %w", id, err)
	}
	return data, nil
}

// Render renders the template id with data. Referencing a key that data
// does not contain is an error.
func (r *Renderer) Render(id string, data map[string]any) (string, error) {
	src, err := r.source(id)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(path.Base(id)).
		Funcs(r.funcs()).
		Option("missingkey=error").
		Parse(string(src))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", id, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", id, err)
	}
	return buf.String(), nil
}

// RenderToFile renders id and writes the result to out. Nothing is
// written unless rendering succeeds.
func (r *Renderer) RenderToFile(id, out string, data map[string]any) error {
	content, err := r.Render(id, data)
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(out, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	output.Debug("rendered template", "id", id, "path", out)
	return nil
}

// TemplateExists reports whether id names a template file.
func (r *Renderer) TemplateExists(id string) bool {
	if !fs.ValidPath(id) {
		return false
	}
	info, err := fs.Stat(r.fsys, id)
	return err == nil && !info.IsDir()
}

// ListTemplates returns the sorted ids in the set. An empty pattern lists
// every template; otherwise ids are matched with path.Match.
func (r *Renderer) ListTemplates(pattern string) ([]string, error) {
	if pattern != "" {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid pattern %q", pattern), "pattern",
				"Use shell-style wildcards, e.g. 'fastapi/*/*.tmpl'")
		}
	}

	var ids []string
	err := fs.WalkDir(r.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if pattern == "" {
			if strings.HasSuffix(p, templateExt) {
				ids = append(ids, p)
			}
			return nil
		}
		if ok, _ := path.Match(pattern, p); ok {
			ids = append(ids, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates in %s: %w", r.root, err)
	}

	sort.Strings(ids)
	return ids, nil
}

// Info returns metadata for id.
func (r *Renderer) Info(id string) (TemplateInfo, error) {
	if !r.TemplateExists(id) {
		return TemplateInfo{}, &TemplateNotFoundError{ID: id, SearchRoot: r.root}
	}
	st, err := fs.Stat(r.fsys, id)
	if err != nil {
		return TemplateInfo{}, fmt.Errorf("stat template %s: %w", id, err)
	}
	return TemplateInfo{
		ID:         id,
		SearchRoot: r.root,
		Size:       st.Size(),
		Modified:   st.ModTime(),
	}, nil
}

// MissingVariables returns the sorted top-level fields id references that
// data does not provide. Unknown templates yield nil.
func (r *Renderer) MissingVariables(id string, data map[string]any) []string {
	src, err := r.source(id)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var missing []string
	for _, action := range actionRegex.FindAllStringSubmatch(string(src), -1) {
		for _, m := range fieldRegex.FindAllStringSubmatch(action[1], -1) {
			name := m[1]
			if seen[name] {
				continue
			}
			seen[name] = true
			if _, ok := data[name]; !ok {
				missing = append(missing, name)
			}
		}
	}

	sort.Strings(missing)
	return missing
}
