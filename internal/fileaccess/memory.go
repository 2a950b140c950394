package fileaccess

import (
	"io/fs"

	"github.com/thoreinstein/aliasman/internal/errors"
)

// Memory implements FileAccess over an in-memory map.
// It is not safe for concurrent use.
type Memory struct {
	files  map[string]string
	writes int

	// WriteErr, when set, is returned by every WriteText call.
	WriteErr error
}

// NewMemory returns a Memory seeded with files (path -> content).
func NewMemory(files map[string]string) *Memory {
	m := &Memory{files: make(map[string]string, len(files))}
	for path, content := range files {
		m.files[path] = content
	}
	return m
}

// ReadText returns the stored content for path, or an error matching
// fs.ErrNotExist.
func (m *Memory) ReadText(path string) (string, error) {
	content, ok := m.files[path]
	if !ok {
		return "", errors.Wrapf(fs.ErrNotExist, "reading %s", path)
	}
	return content, nil
}

// WriteText stores content under path.
func (m *Memory) WriteText(path, content string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.files[path] = content
	m.writes++
	return nil
}

// Content returns the stored content for path and whether it exists.
func (m *Memory) Content(path string) (string, bool) {
	content, ok := m.files[path]
	return content, ok
}

// Writes returns how many successful WriteText calls were made.
func (m *Memory) Writes() int {
	return m.writes
}
