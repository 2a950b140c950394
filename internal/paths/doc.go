// Package paths provides cross-platform path resolution for aliasman.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for the settings directory and the
// backup directory:
//
//	paths.SettingsDir() // ~/.config/aliasman/
//	paths.BackupDir()   // ~/.local/share/aliasman/backups/
//
// # Alias File
//
// The alias file itself defaults to [DefaultAliasFile] in the working
// directory. [ResolveAliasFile] applies home expansion to user-supplied
// locations:
//
//	path, err := paths.ResolveAliasFile("~/aliases.toml")
package paths
