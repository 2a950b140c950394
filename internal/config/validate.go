package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thoreinstein/aliasman/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrNegativeRetention indicates backup.retention is below zero.
	ErrNegativeRetention = errors.New("backup.retention must be >= 0")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, &VersionError{Version: cfg.Version})
	}

	if cfg.Backup.Retention < 0 {
		errs = append(errs, ErrNegativeRetention)
	}

	for _, field := range []struct{ name, path string }{
		{"alias_file", cfg.AliasFile},
		{"shell", cfg.Shell},
		{"backup.dir", cfg.Backup.Dir},
	} {
		if err := validatePath(field.path); err != nil {
			errs = append(errs, &PathError{Field: field.name, Path: field.path, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// VersionError reports an unsupported settings version.
type VersionError struct {
	Version int
}

func (e *VersionError) Error() string {
	return ErrUnsupportedVersion.Error() + ": " + strconv.Itoa(e.Version)
}

func (e *VersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + strconv.Quote(e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
