package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdt-dev/rdt/internal/testutil"
)

func createArgs(dir string, extra ...string) []string {
	args := []string{"create", "--no-interactive", "--no-git", "--output-dir", dir}
	return append(args, extra...)
}

func TestCreate_FastAPI(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, createArgs(dir,
		"-n", "my-api", "-f", "FastAPI", "-o", "SQLAlchemy", "-d", "PostgreSQL")...)
	require.NoError(t, err)

	root := filepath.Join(dir, "my-api")
	assert.Empty(t, testutil.MissingPaths(t, root,
		"src/main.py", "requirements.txt", "requirements-dev.txt",
		"README.md", ".gitignore", ".env.example", "pyproject.toml",
		"Dockerfile", "tests/conftest.py"))
	assert.NoDirExists(t, filepath.Join(root, ".git"))

	assert.Contains(t, out, "Project created at")
	assert.Contains(t, out, "Quick start")
}

func TestCreate_Django(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, createArgs(dir,
		"-n", "shop", "-f", "django-rest", "-d", "SQLite", "--no-docker", "--no-tests")...)
	require.NoError(t, err)

	root := filepath.Join(dir, "shop")
	assert.FileExists(t, filepath.Join(root, "manage.py"))
	assert.NoFileExists(t, filepath.Join(root, "Dockerfile"))
	assert.NoFileExists(t, filepath.Join(root, "pytest.ini"))
}

func TestCreate_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, createArgs(dir,
		"-n", "preview", "-f", "Flask-Restx", "-o", "Peewee", "-d", "MySQL", "--dry-run")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Flask-Restx")
	assert.NoDirExists(t, filepath.Join(dir, "preview"))
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{
			name:     "name required",
			args:     []string{"-f", "FastAPI", "-d", "SQLite"},
			wantCode: ExitValidationError,
		},
		{
			name:     "invalid name",
			args:     []string{"-n", "1api", "-f", "FastAPI", "-d", "SQLite"},
			wantCode: ExitValidationError,
		},
		{
			name:     "incompatible orm",
			args:     []string{"-n", "api", "-f", "Flask-Restx", "-o", "TortoiseORM", "-d", "SQLite"},
			wantCode: ExitValidationError,
		},
		{
			name:     "unknown framework",
			args:     []string{"-n", "api", "-f", "Rails", "-d", "SQLite"},
			wantCode: ExitValidationError,
		},
		{
			name:     "framework must be explicit without prompts",
			args:     []string{"-n", "api", "-d", "SQLite"},
			wantCode: ExitValidationError,
		},
		{
			name:     "missing templates directory",
			args:     []string{"-n", "api", "-f", "FastAPI", "-d", "SQLite", "--templates-dir", "/nonexistent/templates"},
			wantCode: ExitNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := execute(t, createArgs(dir, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, exitCode(err))

			entries, readErr := os.ReadDir(dir)
			require.NoError(t, readErr)
			assert.Empty(t, entries)
		})
	}
}

func TestCreate_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "taken"), 0o755))

	_, err := execute(t, createArgs(dir, "-n", "taken", "-f", "FastAPI", "-d", "SQLite")...)
	require.Error(t, err)
	assert.Equal(t, ExitAlreadyExists, exitCode(err))
	assert.DirExists(t, filepath.Join(dir, "taken"))
}

func TestCreate_AuthFlagsMutuallyExclusive(t *testing.T) {
	_, err := execute(t, createArgs(t.TempDir(),
		"-n", "api", "-f", "FastAPI", "-d", "SQLite", "--auth", "--no-auth")...)
	assert.Error(t, err)
}

func TestCreate_DefaultsFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testutil.WriteFile(t, t.TempDir(), "config.yaml", `
outputDir: `+dir+`
defaults:
  framework: Flask-Restx
  database: SQLite
  docker: false
  git: false
`)

	_, err := execute(t, "create", "--no-interactive", "--config", cfgPath, "-n", "from-config")
	require.NoError(t, err)

	root := filepath.Join(dir, "from-config")
	assert.FileExists(t, filepath.Join(root, "app.py"))
	assert.NoFileExists(t, filepath.Join(root, "Dockerfile"))
}

func TestCreate_InvalidConfigFile(t *testing.T) {
	cfgPath := testutil.WriteFile(t, t.TempDir(), "config.yaml", "defaults:\n  framework: Rails\n")

	_, err := execute(t, "create", "--no-interactive", "--no-git", "--config", cfgPath,
		"-n", "api", "-f", "FastAPI", "-d", "SQLite", "--output-dir", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, exitCode(err))
}
