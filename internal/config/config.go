// Package config provides settings management for aliasman using Viper.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/paths"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "ALIASMAN"

// CurrentVersion is the only supported settings schema version.
const CurrentVersion = 1

// Config represents the settings file.
type Config struct {
	Version          int          `mapstructure:"version" yaml:"version"`
	AliasFile        string       `mapstructure:"alias_file" yaml:"alias_file"`
	Shell            string       `mapstructure:"shell" yaml:"shell"`
	WriteOnRead      bool         `mapstructure:"write_on_read" yaml:"write_on_read"`
	PruneEmptyGroups bool         `mapstructure:"prune_empty_groups" yaml:"prune_empty_groups"`
	Backup           BackupConfig `mapstructure:"backup" yaml:"backup"`
}

// BackupConfig controls alias file snapshots.
type BackupConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
	Retention int    `mapstructure:"retention" yaml:"retention"`
	Dir       string `mapstructure:"dir" yaml:"dir"`
}

// Init resets Viper and installs the settings search paths, environment
// binding and defaults. Call this once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(paths.SettingsName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.SettingsDir())

	// ALIASMAN_BACKUP_RETENTION overrides backup.retention
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, value := range Defaults() {
		viper.SetDefault(key, value)
	}
}

// Defaults returns the default value of every settings key.
func Defaults() map[string]any {
	return map[string]any{
		"version":            CurrentVersion,
		"alias_file":         paths.DefaultAliasFile,
		"shell":              "",
		"write_on_read":      false,
		"prune_empty_groups": false,
		"backup.enabled":     true,
		"backup.retention":   5,
		"backup.dir":         paths.BackupDir(),
	}
}

// Load reads the settings file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load, defaults apply
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "settings file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	cfg.Backup.Dir = paths.ExpandHome(cfg.Backup.Dir)
	return &cfg, nil
}

// AliasPath resolves the alias file location. A non-empty override (the
// --file flag) wins over the alias_file setting, which already reflects
// ALIASMAN_ALIAS_FILE.
func (c *Config) AliasPath(override string) (string, error) {
	if override != "" {
		return paths.ResolveAliasFile(override)
	}
	return paths.ResolveAliasFile(c.AliasFile)
}
