// Package fileutil holds the small file helpers shared by the alias store
// and the backup manager: size-capped reads and atomic replacement.
package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/thoreinstein/aliasman/internal/errors"
)

// AtomicWriteFile replaces path with data via a sibling temp file and a
// rename, so readers see either the old or the new content and never a
// partial write. The parent directory must already exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".aliasman-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := writeAndClose(tmp, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	renamed = true
	return nil
}

func writeAndClose(f *os.File, data []byte, perm os.FileMode) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "syncing temp file")
	}
	return errors.Wrap(f.Close(), "closing temp file")
}

// AtomicWriteJSON writes v as two-space indented JSON with a trailing
// newline and mode 0644.
func AtomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	return AtomicWriteFile(path, append(data, '\n'), 0o644)
}
