package backup

import (
	"path/filepath"
	"sync"

	"github.com/thoreinstein/aliasman/internal/errors"
)

// Hook snapshots each alias file at most once per process, before its
// first modification.
type Hook struct {
	mgr *Manager

	mu   sync.Mutex
	done map[string]bool
}

// NewHook returns a Hook backed by mgr.
func NewHook(mgr *Manager) *Hook {
	return &Hook{mgr: mgr, done: make(map[string]bool)}
}

// Snapshot backs up path on the first call for that path. A failed backup
// is not remembered, so the next call retries.
func (h *Hook) Snapshot(path string) error {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.done[key] {
		return nil
	}
	if err := h.mgr.Snapshot(path); err != nil {
		return errors.Wrapf(err, "creating backup of %s", path)
	}
	h.done[key] = true
	return nil
}

// Reset forgets which paths have been backed up.
func (h *Hook) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.done = make(map[string]bool)
}
