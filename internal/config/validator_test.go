package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/rdt-dev/rdt/internal/errors"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator()
	require.NoError(t, err)
	return v
}

func TestValidateBytes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		fields []string
	}{
		{name: "empty document", input: ""},
		{
			name: "full config",
			input: `
templatesDir: /opt/templates
outputDir: ~/projects
defaults:
  framework: fastapi
  orm: TortoiseORM
  database: mysql
  auth: true
  docker: false
  tests: true
  git: false
log:
  timestamps: true
`,
		},
		{name: "unknown top-level key", input: "registry: ghcr.io\n", fields: []string{"registry"}},
		{name: "unknown nested key", input: "defaults:\n  license: MIT\n", fields: []string{"defaults.license"}},
		{name: "invalid framework", input: "defaults:\n  framework: rails\n", fields: []string{"defaults.framework"}},
		{name: "wrong type", input: "defaults:\n  auth: sometimes\n", fields: []string{"defaults.auth"}},
		{name: "empty string", input: "outputDir: \"\"\n", fields: []string{"outputDir"}},
		{name: "scalar where mapping expected", input: "log: verbose\n", fields: []string{"log"}},
		{
			name:   "incompatible defaults",
			input:  "defaults:\n  framework: Django-Rest\n  orm: SQLAlchemy\n",
			fields: []string{"defaults.orm"},
		},
		{
			name:   "several problems",
			input:  "extra: 1\ndefaults:\n  database: oracle\n",
			fields: []string{"extra", "defaults.database"},
		},
	}

	v := newValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.input))
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.ErrorIs(t, err, oerrors.ErrValidation)

			var got []string
			for _, e := range verrs {
				got = append(got, e.Field)
			}
			assert.ElementsMatch(t, tt.fields, got)
			assert.NotContains(t, err.Error(), "\n")
		})
	}
}

func TestValidateBytesInvalidYAML(t *testing.T) {
	err := newValidator(t).ValidateBytes([]byte("defaults: [unclosed\n"))

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "(file)", verrs[0].Field)
}

func TestValidateFile(t *testing.T) {
	v := newValidator(t)

	t.Run("missing file", func(t *testing.T) {
		err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, oerrors.ErrNotFound)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("defaults:\n  framework: FastAPI\n"), 0o644))
		assert.NoError(t, v.ValidateFile(path))
	})
}

func TestValidateLoadedConfig(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Validate(DefaultConfig()))

	cfg := &Config{Defaults: Defaults{Framework: "rails", Database: "oracle"}}
	var verrs ValidationErrors
	require.ErrorAs(t, v.Validate(cfg), &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "defaults.framework", verrs[0].Field)
	assert.Contains(t, verrs[0].Message, `"rails" is not one of`)

	cfg = &Config{Defaults: Defaults{Framework: "Flask-Restx", ORM: "TortoiseORM"}}
	require.ErrorAs(t, v.Validate(cfg), &verrs)
	assert.Equal(t, "defaults.orm", verrs[0].Field)
}
