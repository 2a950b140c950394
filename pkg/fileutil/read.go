package fileutil

import (
	"fmt"
	"io"
	"os"

	"github.com/thoreinstein/aliasman/internal/errors"
)

// MaxFileSize caps how much of an alias file is loaded into memory.
const MaxFileSize = 1 << 20

// ErrFileTooLarge matches any *SizeError.
var ErrFileTooLarge = errors.New("file too large")

// SizeError reports input that went past a read limit.
type SizeError struct {
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("file exceeds maximum size of %d bytes", e.Limit)
}

// Is lets errors.Is(err, ErrFileTooLarge) match.
func (e *SizeError) Is(target error) bool {
	return target == ErrFileTooLarge
}

// ReadLimited drains r, failing with a *SizeError once more than limit
// bytes have been seen.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading")
	}
	if int64(len(data)) > limit {
		return nil, &SizeError{Limit: limit}
	}
	return data, nil
}

// ReadFileWithLimit reads path, refusing anything over MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, statErr := f.Stat(); statErr == nil && info.Size() > MaxFileSize {
		return nil, &SizeError{Limit: MaxFileSize}
	}
	return ReadLimited(f, MaxFileSize)
}
