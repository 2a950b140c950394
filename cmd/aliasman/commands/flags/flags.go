// Package flags provides shared flag and settings accessors for CLI commands.
// This package exists to avoid import cycles between the root command
// and noun subpackages (alias, backup).
package flags

import (
	"github.com/thoreinstein/aliasman/internal/config"
	"github.com/thoreinstein/aliasman/internal/paths"
)

// fileFlag holds the value of the --file flag.
var fileFlag string

// settings holds the loaded settings.
var settings *config.Config

// GetFileFlag returns the current value of the --file flag.
func GetFileFlag() string {
	return fileFlag
}

// SetFileFlag sets the --file flag value.
func SetFileFlag(path string) {
	fileFlag = path
}

// Settings returns the loaded settings, or defaults when none were loaded.
func Settings() *config.Config {
	if settings == nil {
		return DefaultSettings()
	}
	return settings
}

// SetSettings replaces the loaded settings.
func SetSettings(cfg *config.Config) {
	settings = cfg
}

// DefaultSettings returns settings equal to the built-in defaults.
func DefaultSettings() *config.Config {
	return &config.Config{
		Version:   config.CurrentVersion,
		AliasFile: paths.DefaultAliasFile,
		Backup: config.BackupConfig{
			Enabled:   true,
			Retention: 5,
			Dir:       paths.BackupDir(),
		},
	}
}

// AliasPath resolves the alias file from --file and the settings.
func AliasPath() (string, error) {
	return Settings().AliasPath(fileFlag)
}
