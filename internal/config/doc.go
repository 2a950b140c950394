// Package config manages aliasman's own settings, as distinct from the
// alias file it edits.
//
// # Settings File
//
// Settings are read from settings.yaml in the working directory or in
// <ConfigHome>/aliasman/. Every key can be overridden with an ALIASMAN_
// environment variable, with dots replaced by underscores:
//
//	version: 1
//	alias_file: ~/aliases.toml      # ALIASMAN_ALIAS_FILE
//	shell: /bin/bash                # empty uses sh (cmd on Windows)
//	write_on_read: false            # save after every request
//	prune_empty_groups: false       # drop groups emptied by remove
//	backup:
//	  enabled: true
//	  retention: 5                  # ALIASMAN_BACKUP_RETENTION
//	  dir: ~/.local/share/aliasman/backups
//
// # Loading Settings
//
// Call [Init] once, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	path, err := cfg.AliasPath(fileFlag)
//
// A missing settings file is not an error unless its path was given
// explicitly. Loaded settings are checked with [Validate].
package config
