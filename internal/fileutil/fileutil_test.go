package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "docker-compose.yml")

	err := WriteFileAtomic(path, []byte("services: {}\n"), 0644)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "services: {}\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFileAtomic_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.yml")

	require.NoError(t, WriteFileAtomic(path, []byte("old"), 0644))
	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileAtomic_NoTempLeftover(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.yml")

	require.NoError(t, WriteFileAtomic(path, []byte("data"), 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present")

	assert.False(t, Exists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, Exists(path))

	// Directories are not regular files
	assert.False(t, Exists(dir))
}

func TestWriteFileIfNotExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	written, err := WriteFileIfNotExists(path, []byte("ENV=dev\n"), 0600)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = WriteFileIfNotExists(path, []byte("ENV=prod\n"), 0600)
	require.NoError(t, err)
	assert.False(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ENV=dev\n", string(data))
}
