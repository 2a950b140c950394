package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{"alias file", []byte("[general]\nll = \"ls -l\"\n"), 0o644},
		{"empty alias file", []byte{}, 0o644},
		{"private alias file", []byte("[group.secrets]\ntok = \"pass show api\"\n"), 0o600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "aliases.toml")
			require.NoError(t, AtomicWriteFile(path, tt.data, tt.perm))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)

			if runtime.GOOS != "windows" {
				info, err := os.Stat(path)
				require.NoError(t, err)
				assert.Equal(t, tt.perm, info.Mode().Perm())
			}
		})
	}
}

func TestAtomicWriteFile_Replaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general]\nold = \"x\"\n"), 0o644))

	want := []byte("[general]\nnew = \"y\"\n")
	require.NoError(t, AtomicWriteFile(path, want, 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAtomicWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, AtomicWriteFile(filepath.Join(dir, "aliases.toml"), []byte("x"), 0o644))

	leftovers, err := filepath.Glob(filepath.Join(dir, ".aliasman-atomic-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestAtomicWriteFile_MissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "aliases.toml")
	err := AtomicWriteFile(path, []byte("x"), 0o644)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating temp file")
}

func TestAtomicWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	in := map[string]any{"version": 1, "file": "aliases.toml"}
	require.NoError(t, AtomicWriteJSON(path, in))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), raw[len(raw)-1])
	assert.Contains(t, string(raw), "\n  \"file\": \"aliases.toml\"")

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "aliases.toml", out["file"])
}

func TestAtomicWriteJSON_Unmarshalable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	err := AtomicWriteJSON(path, map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshaling JSON")
	assert.NoFileExists(t, path)
}
