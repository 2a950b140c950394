// Package backup snapshots the alias file before it is overwritten.
//
// Each backup is a directory under the backup root (by default
// <DataHome>/aliasman/backups) named by its creation time:
//
//	backups/
//	├── 20260123T100712/
//	│   ├── manifest.json
//	│   └── config.toml
//	└── 20260123T100712-1/
//	    └── ...
//
// A second backup within the same second gets a numeric suffix. The
// manifest records the original path, permissions and SHA256 hash of the
// copy; [Manager.Restore] refuses a copy whose hash no longer matches
// ([ErrBackupCorrupted]).
//
// [Manager.Snapshot] is the save hook: it skips missing files and prunes
// to the retention count afterwards. [Hook] wraps it so a file is backed up
// at most once per process.
package backup
