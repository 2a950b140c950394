// Package fileaccess is the seam between the alias store and the disk.
//
// The store only ever needs to read a whole file as text and write a whole
// file from text. [OS] does that against the real filesystem with atomic
// writes; [Memory] keeps files in a map for tests and dry runs.
package fileaccess

import (
	"io/fs"
	"os"

	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/pkg/fileutil"
)

// DefaultFilePerm is used when writing a file that does not exist yet.
const DefaultFilePerm fs.FileMode = 0o644

// Reader reads a whole file as text.
type Reader interface {
	ReadText(path string) (string, error)
}

// Writer replaces a whole file with text.
type Writer interface {
	WriteText(path, content string) error
}

// FileAccess reads and writes whole text files.
type FileAccess interface {
	Reader
	Writer
}

// OS implements FileAccess on the local filesystem.
//
// Reads are capped at fileutil.MaxFileSize. Writes go through a temp file
// and rename, keeping the permissions of an existing file.
type OS struct{}

// NewOS returns a filesystem-backed FileAccess.
func NewOS() *OS {
	return &OS{}
}

// ReadText returns the contents of path.
// A missing file yields an error matching fs.ErrNotExist.
func (OS) ReadText(path string) (string, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(data), nil
}

// WriteText atomically replaces path with content.
func (OS) WriteText(path, content string) error {
	perm := DefaultFilePerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := fileutil.AtomicWriteFile(path, []byte(content), perm); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
