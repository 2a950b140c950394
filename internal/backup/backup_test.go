package backup

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/aliasman/internal/errors"
)

var epoch = time.Date(2026, 1, 23, 10, 7, 12, 0, time.UTC)

// steppingClock returns epoch, then advances by step on every call.
func steppingClock(step time.Duration) func() time.Time {
	next := epoch
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

func writeAliasFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))
	return path
}

func TestBackup(t *testing.T) {
	src := writeAliasFile(t, "[alias.general]\nls = \"ls -l\"\n")
	m := NewManager(WithBackupDir(t.TempDir()), withClock(steppingClock(time.Second)))

	manifest, err := m.Backup(src)
	require.NoError(t, err)

	assert.Equal(t, "20260123T100712", manifest.ID)
	assert.Equal(t, src, manifest.File.OriginalPath)
	assert.Equal(t, "config.toml", manifest.File.Name)
	assert.Equal(t, int64(len("[alias.general]\nls = \"ls -l\"\n")), manifest.File.Size)
	assert.Len(t, manifest.File.SHA256Hash, 64)

	copied, err := os.ReadFile(filepath.Join(m.Dir(), manifest.ID, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "[alias.general]\nls = \"ls -l\"\n", string(copied))

	loaded, err := m.Get(manifest.ID)
	require.NoError(t, err)
	assert.Equal(t, manifest.File, loaded.File)
	assert.Equal(t, ManifestVersion, loaded.Version)
	assert.Equal(t, Version, loaded.AliasmanVersion)
}

func TestBackup_Errors(t *testing.T) {
	m := NewManager(WithBackupDir(t.TempDir()))

	_, err := m.Backup(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = m.Backup(t.TempDir())
	assert.Error(t, err, "directories cannot be backed up")
}

func TestBackup_Collision(t *testing.T) {
	src := writeAliasFile(t, "[alias]\n")
	m := NewManager(WithBackupDir(t.TempDir()), withClock(func() time.Time { return epoch }))

	var ids []string
	for range 3 {
		manifest, err := m.Backup(src)
		require.NoError(t, err)
		ids = append(ids, manifest.ID)
	}
	assert.Equal(t, []string{"20260123T100712", "20260123T100712-1", "20260123T100712-2"}, ids)

	list, err := m.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "20260123T100712-2", list[0].ID, "newest suffix sorts first")
	assert.Equal(t, "20260123T100712", list[2].ID)
}

func TestList(t *testing.T) {
	m := NewManager(WithBackupDir(filepath.Join(t.TempDir(), "none")))
	_, err := m.List()
	assert.True(t, errors.Is(err, ErrNoBackupsFound))

	src := writeAliasFile(t, "[alias]\n")
	m = NewManager(WithBackupDir(t.TempDir()), withClock(steppingClock(time.Minute)))
	for range 3 {
		_, err := m.Backup(src)
		require.NoError(t, err)
	}
	// Stray directory without a manifest is ignored
	require.NoError(t, os.Mkdir(filepath.Join(m.Dir(), "junk"), 0o755))

	list, err := m.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "20260123T100912", list[0].ID)
	assert.Equal(t, "20260123T100812", list[1].ID)
	assert.Equal(t, "20260123T100712", list[2].ID)
}

func TestSnapshot(t *testing.T) {
	t.Run("missing file is skipped", func(t *testing.T) {
		m := NewManager(WithBackupDir(t.TempDir()))
		require.NoError(t, m.Snapshot(filepath.Join(t.TempDir(), "config.toml")))

		_, err := m.List()
		assert.True(t, errors.Is(err, ErrNoBackupsFound))
	})

	t.Run("prunes to retention", func(t *testing.T) {
		src := writeAliasFile(t, "[alias]\n")
		m := NewManager(WithBackupDir(t.TempDir()), WithRetentionCount(2), withClock(steppingClock(time.Second)))

		for range 4 {
			require.NoError(t, m.Snapshot(src))
		}

		list, err := m.List()
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "20260123T100715", list[0].ID)
		assert.Equal(t, "20260123T100714", list[1].ID)
	})

	t.Run("zero retention keeps everything", func(t *testing.T) {
		src := writeAliasFile(t, "[alias]\n")
		m := NewManager(WithBackupDir(t.TempDir()), WithRetentionCount(0), withClock(steppingClock(time.Second)))

		for range 7 {
			require.NoError(t, m.Snapshot(src))
		}

		list, err := m.List()
		require.NoError(t, err)
		assert.Len(t, list, 7)
	})
}

func TestRestore(t *testing.T) {
	src := writeAliasFile(t, "[alias.general]\nls = \"ls -l\"\n")
	m := NewManager(WithBackupDir(t.TempDir()))

	manifest, err := m.Backup(src)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(src, []byte("[alias]\n"), 0o600))

	restored, err := m.Restore(manifest.ID, "")
	require.NoError(t, err)
	assert.Equal(t, manifest.ID, restored.ID)

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "[alias.general]\nls = \"ls -l\"\n", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(src)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	}
}

func TestRestore_ToTarget(t *testing.T) {
	src := writeAliasFile(t, "[alias]\n")
	m := NewManager(WithBackupDir(t.TempDir()))
	manifest, err := m.Backup(src)
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "nested", "restored.toml")
	_, err = m.Restore(manifest.ID, target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "[alias]\n", string(data))
}

func TestRestore_Corrupted(t *testing.T) {
	src := writeAliasFile(t, "[alias]\n")
	m := NewManager(WithBackupDir(t.TempDir()))
	manifest, err := m.Backup(src)
	require.NoError(t, err)

	copyPath := filepath.Join(m.Dir(), manifest.ID, manifest.File.Name)
	require.NoError(t, os.Chmod(copyPath, 0o600))
	require.NoError(t, os.WriteFile(copyPath, []byte("tampered"), 0o600))

	_, err = m.Restore(manifest.ID, "")
	assert.True(t, errors.Is(err, ErrBackupCorrupted))

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "[alias]\n", string(data), "original left untouched")
}

func TestGet_Errors(t *testing.T) {
	m := NewManager(WithBackupDir(t.TempDir()))

	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"unknown", "20990101T000000"},
		{"traversal", "../etc"},
		{"dot dot", ".."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Get(tt.id)
			assert.Error(t, err)
		})
	}

	_, err := m.Get("20990101T000000")
	assert.True(t, errors.Is(err, ErrNoBackupsFound))
}

func TestPrune(t *testing.T) {
	src := writeAliasFile(t, "[alias]\n")
	m := NewManager(WithBackupDir(t.TempDir()), withClock(steppingClock(time.Second)))
	for range 3 {
		_, err := m.Backup(src)
		require.NoError(t, err)
	}

	removed, err := m.Prune(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"20260123T100713", "20260123T100712"}, removed)

	_, err = m.Prune(-1)
	assert.Error(t, err)

	empty := NewManager(WithBackupDir(filepath.Join(t.TempDir(), "none")))
	removed, err = empty.Prune(0)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestCompareIDs(t *testing.T) {
	assert.Negative(t, compareIDs("20260123T100712-9", "20260123T100712-10"))
	assert.Negative(t, compareIDs("20260123T100712", "20260123T100712-1"))
	assert.Zero(t, compareIDs("20260123T100712", "20260123T100712"))
}
