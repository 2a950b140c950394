package backup

import (
	"io/fs"
	"time"

	"github.com/thoreinstein/aliasman/internal/errors"
)

// ManifestVersion is the manifest format version.
const ManifestVersion = 1

// ManifestName is the manifest file stored in every backup directory.
const ManifestName = "manifest.json"

// DefaultRetentionCount is the default number of backups kept after each
// snapshot.
const DefaultRetentionCount = 5

// Sentinel errors for backup operations.
var (
	// ErrNoBackupsFound indicates no backups exist, or the requested ID is unknown.
	ErrNoBackupsFound = errors.New("no backups found")

	// ErrBackupCorrupted indicates the stored copy no longer matches its
	// recorded SHA256 hash.
	ErrBackupCorrupted = errors.New("backup corrupted")
)

// Manifest describes one backup. It is stored as manifest.json.
type Manifest struct {
	Version int `json:"version"`

	CreatedAt time.Time `json:"created_at"`

	// File is the alias file captured by this backup.
	File File `json:"file"`

	// AliasmanVersion is the version of aliasman that created this backup.
	AliasmanVersion string `json:"aliasman_version"`

	// ID is the backup directory name (e.g. 20260123T100712 or
	// 20260123T100712-1). Populated when loading, not stored.
	ID string `json:"-"`
}

// File records the captured copy of the alias file.
type File struct {
	// OriginalPath is the absolute path the file was copied from.
	OriginalPath string `json:"original_path"`

	// Name is the copy's file name inside the backup directory.
	Name string `json:"name"`

	SHA256Hash string      `json:"sha256_hash"`
	Mode       fs.FileMode `json:"mode"`
	Size       int64       `json:"size"`
}
