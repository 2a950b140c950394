package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName names the per-user directories owned by aliasman.
const AppName = "aliasman"

// DefaultAliasFile is the alias file used when no other location is configured.
// It is resolved relative to the working directory.
const DefaultAliasFile = "config.toml"

// SettingsName is the base name (without extension) of the settings file.
const SettingsName = "settings"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or an empty string if it cannot
// be determined. Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// SettingsDir returns the directory searched for the settings file.
// Returns: <ConfigHome>/aliasman/
func SettingsDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// BackupDir returns the default root directory for alias file backups.
// Returns: <DataHome>/aliasman/backups/
func BackupDir() string {
	return filepath.Join(DataHome(), AppName, "backups")
}

// ExpandHome expands a leading ~ to the user's home directory.
// Paths without a leading ~ and ~user forms are returned unchanged.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home := Home()
	if home == "" {
		return path
	}

	if path == "~" {
		return home
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}

	return path
}

// ResolveAliasFile cleans and expands an alias file path.
// An empty path resolves to DefaultAliasFile.
func ResolveAliasFile(path string) (string, error) {
	if path == "" {
		return DefaultAliasFile, nil
	}
	if strings.ContainsRune(path, '\x00') {
		return "", errors.Wrapf(ErrInvalidPath, "alias file %q", path)
	}
	return filepath.Clean(ExpandHome(path)), nil
}
