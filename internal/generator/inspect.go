package generator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rdt-dev/rdt/internal/deps"
	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/project"
)

// Check is one item looked for in an existing project. Items ending in a
// slash are directories.
type Check struct {
	Item    string `json:"item"`
	Present bool   `json:"present"`
}

// Inspection is the result of checking an existing project directory.
type Inspection struct {
	Root string `json:"root"`
	// Framework is the framework detected from entry points, empty when
	// none was recognized.
	Framework project.Framework `json:"framework,omitempty"`
	Checks    []Check           `json:"checks"`
}

// Valid reports whether every check passed.
func (i Inspection) Valid() bool {
	return len(i.Missing()) == 0
}

// Missing lists the items that were not found.
func (i Inspection) Missing() []string {
	var missing []string
	for _, c := range i.Checks {
		if !c.Present {
			missing = append(missing, c.Item)
		}
	}
	return missing
}

var requiredItems = []string{
	deps.RuntimeManifest,
	"README.md",
	".gitignore",
	".env.example",
	"pyproject.toml",
	"src/",
}

// entryPoints identify the framework of a generated project.
var entryPoints = []struct {
	file      string
	framework project.Framework
}{
	{"manage.py", project.DjangoRest},
	{"src/main.py", project.FastAPI},
	{"app.py", project.FlaskRestx},
}

// Inspect checks that root looks like a generated project. It only reads
// the filesystem.
func Inspect(root string) (Inspection, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Inspection{}, oerrors.NewNotFoundError("project directory not found", root, "")
		}
		return Inspection{}, err
	}
	if !info.IsDir() {
		return Inspection{}, oerrors.NewNotFoundError("project path is not a directory", root, "")
	}

	in := Inspection{Root: root}
	for _, item := range requiredItems {
		in.Checks = append(in.Checks, Check{Item: item, Present: exists(root, item)})
	}
	for _, ep := range entryPoints {
		if exists(root, ep.file) {
			in.Framework = ep.framework
			break
		}
	}
	return in, nil
}

func exists(root, item string) bool {
	wantDir := strings.HasSuffix(item, "/")
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(item, "/"))))
	if err != nil {
		return false
	}
	return info.IsDir() == wantDir
}
