package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/cmd/aliasman/commands/flags"
	"github.com/thoreinstein/aliasman/internal/backup"
	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/fileaccess"
	"github.com/thoreinstein/aliasman/internal/paths"
	"github.com/thoreinstein/aliasman/internal/store"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing alias file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty alias file",
	Long: `Create an empty alias file at the configured location.

The file contains an empty [alias] table and an empty general scope.
An existing file is left alone unless --force is given; with backups
enabled, the old file is snapshotted before it is replaced.`,
	Example: `  # Create ./config.toml
  aliasman init

  # Create a file elsewhere
  aliasman init --file ~/aliases.toml

  # Replace an existing file
  aliasman init --force

  See Also: aliasman alias add, aliasman backup list`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runInitWithWriter(c.OutOrStdout())
	},
}

func runInitWithWriter(w io.Writer) error {
	path, err := flags.AliasPath()
	if err != nil {
		return errors.NewUserError(err, "")
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if exists && !initForce {
		fmt.Fprintf(w, "Alias file already exists at %s\n", path)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating alias file directory"), "")
	}

	settings := flags.Settings()
	if exists && settings.Backup.Enabled {
		mgr := backup.NewManager(
			backup.WithBackupDir(settings.Backup.Dir),
			backup.WithRetentionCount(settings.Backup.Retention),
		)
		if err := mgr.Snapshot(path); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "backing up alias file"), "")
		}
	}

	if err := store.Save(fileaccess.NewOS(), path, store.New(nil)); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+filepath.Dir(path))
	}

	fmt.Fprintf(w, "Created %s\n", path)
	return nil
}
