package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".rdt-tmp-"), "temp file left behind: %s", e.Name())
	}
}

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "src", "config", "config.py")

	require.NoError(t, WriteFileAtomic(path, []byte("DEBUG = True\n"), 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG = True\n", string(got))
	assertNoTempFiles(t, filepath.Dir(path))
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")

	require.NoError(t, WriteFileAtomic(path, []byte("old"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWriteFileAtomicPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manage.py")

	require.NoError(t, WriteFileAtomic(path, []byte("#!/usr/bin/env python\n"), 0o755))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestWriteFileAtomicFailsOnDirectoryTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o755))

	err := WriteFileAtomic(target, []byte("x"), 0o644)
	assert.Error(t, err)
	assertNoTempFiles(t, dir)
}

func TestMakePackage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "src", "api")

	require.NoError(t, MakePackage(dir))
	require.NoError(t, MakePackage(dir))

	info, err := os.Stat(filepath.Join(dir, "__init__.py"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}
