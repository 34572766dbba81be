package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/rdt-dev/rdt/internal/errors"
	"github.com/rdt-dev/rdt/internal/project"
	"github.com/rdt-dev/rdt/internal/templates"
)

func TestInspectGeneratedProjects(t *testing.T) {
	for _, pair := range templates.Combinations() {
		t.Run(string(pair.Framework)+"/"+string(pair.ORM), func(t *testing.T) {
			cfg := newConfig(t, pair.Framework, pair.ORM)
			path, err := New(templates.NewEmbeddedRenderer()).Generate(cfg)
			require.NoError(t, err)

			in, err := Inspect(path)
			require.NoError(t, err)
			assert.True(t, in.Valid(), "missing: %v", in.Missing())
			assert.Equal(t, pair.Framework, in.Framework)
		})
	}
}

func TestInspectReportsMissingItems(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), nil, 0o644))
	// A file named src is not the src directory.
	require.NoError(t, os.WriteFile(filepath.Join(root, "src"), nil, 0o644))

	in, err := Inspect(root)
	require.NoError(t, err)

	assert.False(t, in.Valid())
	assert.Equal(t, []string{"requirements.txt", ".gitignore", ".env.example", "pyproject.toml", "src/"}, in.Missing())
	assert.Equal(t, project.Framework(""), in.Framework)
}

func TestInspectMissingRoot(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, oerrors.ErrNotFound)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = Inspect(file)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}
