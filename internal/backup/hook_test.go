package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHook_OncePerPath(t *testing.T) {
	src := writeAliasFile(t, "[alias]\n")
	m := NewManager(WithBackupDir(t.TempDir()), withClock(steppingClock(time.Second)))
	h := NewHook(m)

	require.NoError(t, h.Snapshot(src))
	require.NoError(t, h.Snapshot(src))

	list, err := m.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	h.Reset()
	require.NoError(t, h.Snapshot(src))
	list, err = m.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestHook_RetriesAfterFailure(t *testing.T) {
	src := writeAliasFile(t, "[alias]\n")
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// Backup root below a regular file cannot be created
	h := NewHook(NewManager(WithBackupDir(filepath.Join(blocker, "backups"))))
	assert.Error(t, h.Snapshot(src))

	h.mgr.rootDir = t.TempDir()
	assert.NoError(t, h.Snapshot(src))
}
