package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/paths"
	"github.com/thoreinstein/aliasman/pkg/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// idLayout formats backup IDs from the creation time.
const idLayout = "20060102T150405"

// Manager creates, lists, restores and prunes alias file backups.
type Manager struct {
	rootDir        string
	retentionCount int
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir sets the root backup directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		if dir != "" {
			m.rootDir = dir
		}
	}
}

// WithRetentionCount sets how many backups Snapshot keeps.
// Zero disables pruning; negative values are ignored.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.retentionCount = n
		}
	}
}

// withClock overrides the time source.
func withClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a new backup Manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir:        paths.BackupDir(),
		retentionCount: DefaultRetentionCount,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dir returns the root backup directory.
func (m *Manager) Dir() string {
	return m.rootDir
}

// Backup copies the file at path into a new backup directory and returns
// its manifest. The copy is verified with a SHA256 hash.
func (m *Manager) Backup(path string) (*Manifest, error) {
	src, err := filepath.Abs(paths.ExpandHome(path))
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", path)
	}

	info, err := os.Stat(src)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if info.IsDir() {
		return nil, errors.Newf("%s is a directory", path)
	}

	if err := paths.EnsureDir(m.rootDir, 0); err != nil {
		return nil, errors.Wrap(err, "creating backup directory")
	}

	createdAt := m.now()
	id, err := m.reserveID(createdAt)
	if err != nil {
		return nil, err
	}
	dir := m.backupPath(id)

	name := filepath.Base(src)
	hash, mode, size, err := copyFile(src, filepath.Join(dir, name))
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, errors.Wrapf(err, "backing up %s", path)
	}

	manifest := &Manifest{
		Version:   ManifestVersion,
		CreatedAt: createdAt.UTC(),
		File: File{
			OriginalPath: src,
			Name:         name,
			SHA256Hash:   hash,
			Mode:         mode,
			Size:         size,
		},
		AliasmanVersion: Version,
		ID:              id,
	}

	if err := fileutil.AtomicWriteJSON(filepath.Join(dir, ManifestName), manifest); err != nil {
		_ = os.RemoveAll(dir)
		return nil, errors.Wrap(err, "writing manifest")
	}

	return manifest, nil
}

// reserveID creates the backup directory for t. When a backup from the same
// second exists, a numeric suffix is appended.
func (m *Manager) reserveID(t time.Time) (string, error) {
	base := t.Format(idLayout)
	for i := 0; ; i++ {
		id := base
		if i > 0 {
			id = fmt.Sprintf("%s-%d", base, i)
		}
		err := os.Mkdir(m.backupPath(id), 0o755)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", errors.Wrap(err, "creating backup directory")
		}
	}
}

// Snapshot backs up path if it exists and then prunes to the retention
// count. A missing file is not an error.
func (m *Manager) Snapshot(path string) error {
	if _, err := os.Stat(paths.ExpandHome(path)); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if _, err := m.Backup(path); err != nil {
		return err
	}

	if m.retentionCount == 0 {
		return nil
	}
	_, err := m.Prune(m.retentionCount)
	return err
}

// Restore copies the file from backup id back to target. An empty target
// restores to the original path. The stored copy's hash is checked first.
func (m *Manager) Restore(id, target string) (*Manifest, error) {
	if id == "" {
		return nil, errors.New("backup ID is required")
	}

	manifest, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	src := filepath.Join(m.backupPath(id), manifest.File.Name)
	hash, err := hashFile(src)
	if err != nil {
		return nil, errors.Wrapf(err, "reading backup file %s", manifest.File.Name)
	}
	if hash != manifest.File.SHA256Hash {
		return nil, errors.Wrapf(ErrBackupCorrupted, "backup %s hash mismatch", id)
	}

	if target == "" {
		target = manifest.File.OriginalPath
	}
	if err := paths.EnsureDir(filepath.Dir(target), 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating directory for %s", target)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, errors.Wrapf(err, "reading backup file %s", manifest.File.Name)
	}
	if err := fileutil.AtomicWriteFile(target, data, manifest.File.Mode.Perm()); err != nil {
		return nil, errors.Wrapf(err, "restoring %s", target)
	}

	return manifest, nil
}

// List returns all backups sorted newest first.
func (m *Manager) List() ([]Manifest, error) {
	entries, err := os.ReadDir(m.rootDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoBackupsFound
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	manifests := make([]Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := m.Get(entry.Name())
		if err != nil {
			// Skip directories without a readable manifest
			continue
		}
		manifests = append(manifests, *manifest)
	}

	if len(manifests) == 0 {
		return nil, ErrNoBackupsFound
	}

	slices.SortFunc(manifests, func(a, b Manifest) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return compareIDs(b.ID, a.ID)
	})

	return manifests, nil
}

// Prune removes all but the newest keep backups and returns the removed IDs.
func (m *Manager) Prune(keep int) ([]string, error) {
	if keep < 0 {
		return nil, errors.New("keep must be non-negative")
	}

	manifests, err := m.List()
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return nil, nil
		}
		return nil, err
	}

	var removed []string
	for i := keep; i < len(manifests); i++ {
		id := manifests[i].ID
		if err := os.RemoveAll(m.backupPath(id)); err != nil {
			return removed, errors.Wrapf(err, "removing backup %s", id)
		}
		removed = append(removed, id)
	}

	return removed, nil
}

// Get returns the manifest for a specific backup.
func (m *Manager) Get(id string) (*Manifest, error) {
	if id == "" {
		return nil, errors.New("backup ID is required")
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return nil, errors.Newf("invalid backup ID %q", id)
	}

	data, err := os.ReadFile(filepath.Join(m.backupPath(id), ManifestName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNoBackupsFound, "backup %s not found", id)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}

	manifest.ID = id
	return &manifest, nil
}

func (m *Manager) backupPath(id string) string {
	return filepath.Join(m.rootDir, id)
}

// compareIDs orders IDs from the same second by their numeric suffix.
func compareIDs(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

// hashFile computes the SHA256 hash of a file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening file")
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrap(err, "reading file")
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// copyFile copies src to dst, returning the SHA256 hash, mode and size.
// The destination gets the source's permissions.
func copyFile(src, dst string) (hash string, mode fs.FileMode, size int64, err error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return "", 0, 0, errors.Wrap(err, "opening source file")
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return "", 0, 0, errors.Wrap(err, "stat source file")
	}
	mode = srcInfo.Mode()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return "", 0, 0, errors.Wrap(err, "creating destination file")
	}

	// Compute hash while copying
	h := sha256.New()
	size, err = io.Copy(io.MultiWriter(dstFile, h), srcFile)
	if err != nil {
		dstFile.Close()
		return "", 0, 0, errors.Wrap(err, "copying file")
	}

	if err := dstFile.Close(); err != nil {
		return "", 0, 0, errors.Wrap(err, "closing destination file")
	}

	if err := os.Chmod(dst, mode.Perm()); err != nil {
		return "", 0, 0, errors.Wrap(err, "setting permissions")
	}

	return hex.EncodeToString(h.Sum(nil)), mode, size, nil
}
