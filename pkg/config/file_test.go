package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadFile(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "dir", "cam"+ext)
			snap := testSnapshot(t)

			require.NoError(t, WriteFile(path, snap, WriteOptions{Header: []string{"serial: SIM-0001"}}))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

			back, err := ReadFile(path)
			require.NoError(t, err)
			assert.True(t, Equal(snap, back))

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "no temporary files are left behind")
		})
	}
}

func TestWriteFileOverwriteProtection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.yaml")
	original := []byte("# hand-written\nGain: 1.0\n")
	require.NoError(t, os.WriteFile(path, original, 0644))

	err := WriteFile(path, testSnapshot(t), WriteOptions{})
	assert.ErrorIs(t, err, ErrFileExists)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, after, "existing file is untouched")

	require.NoError(t, WriteFile(path, testSnapshot(t), WriteOptions{Overwrite: true}))
	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8, back.Len())
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- a\n- b\n"), 0644))
	_, err = ReadFile(bad)
	assert.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), bad)

	_, err = ReadFile(filepath.Join(dir, "cam.ini"))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestWriteFileUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.json")
	err := WriteFile(path, testSnapshot(t), WriteOptions{})
	assert.ErrorIs(t, err, ErrFormat)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
