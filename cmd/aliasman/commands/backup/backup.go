// Package backup provides CLI commands for managing alias file backups.
package backup

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/cmd/aliasman/commands/flags"
	"github.com/thoreinstein/aliasman/internal/backup"
)

var (
	idColor    = color.New(color.FgGreen)
	checkColor = color.New(color.FgGreen)
	dimColor   = color.New(color.FgHiBlack)
	boldColor  = color.New(color.Bold)
)

// Cmd is the root backup command.
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage alias file backups",
	Long: `Manage alias file backups.

Before aliasman overwrites the alias file it copies the current version
into the backup directory (backup.dir setting). This command group lists,
restores and prunes those copies.`,
	Example: `  # List all backups
  aliasman backup list

  # Restore a specific backup over its original file
  aliasman backup restore 20260123T100712

  # Remove old backups, keeping the 3 most recent
  aliasman backup prune --keep 3

  See Also:
    aliasman backup list    - List available backups
    aliasman backup restore - Restore from a backup
    aliasman backup prune   - Remove old backups`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// newManager builds the backup manager from settings. Tests replace it.
var newManager = func() *backup.Manager {
	settings := flags.Settings()
	return backup.NewManager(
		backup.WithBackupDir(settings.Backup.Dir),
		backup.WithRetentionCount(settings.Backup.Retention),
	)
}
