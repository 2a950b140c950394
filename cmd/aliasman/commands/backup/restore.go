package backup

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/internal/backup"
	"github.com/thoreinstein/aliasman/internal/errors"
)

var restoreTo string

func init() {
	restoreCmd.Flags().StringVar(&restoreTo, "to", "", "Restore to this path instead of the original location")
	Cmd.AddCommand(restoreCmd)
}

var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore from a backup",
	Long: `Restore the alias file from a backup.

The stored copy is checked against the SHA256 hash recorded when it was
taken; a mismatch aborts the restore and leaves the current file alone.`,
	Example: `  aliasman backup restore 20260123T100712
  aliasman backup restore 20260123T100712 --to ./recovered.toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRestoreWithWriter(cmd.OutOrStdout(), args[0])
	},
}

func runRestoreWithWriter(w io.Writer, id string) error {
	manifest, err := newManager().Restore(id, restoreTo)
	if err != nil {
		switch {
		case errors.Is(err, backup.ErrNoBackupsFound):
			return errors.NewUserError(err, "Run: aliasman backup list")
		case errors.Is(err, backup.ErrBackupCorrupted):
			return errors.NewSystemError(err, "Choose an older backup")
		default:
			return errors.NewSystemError(err, "")
		}
	}

	target := restoreTo
	if target == "" {
		target = manifest.File.OriginalPath
	}
	fmt.Fprintf(w, "%s Restored %s from backup %s\n", checkColor.Sprint("✓"), target, manifest.ID)
	return nil
}
