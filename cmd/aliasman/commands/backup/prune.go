package backup

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/internal/backup"
	"github.com/thoreinstein/aliasman/internal/errors"
)

var pruneKeep int

func init() {
	pruneCmd.Flags().IntVar(&pruneKeep, "keep", backup.DefaultRetentionCount,
		"Number of backups to retain")
	Cmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old backups",
	Long: `Remove old backups beyond the retention count.

By default, keeps the 5 most recent backups and removes older ones.`,
	Example: `  # Keep the default 5 backups
  aliasman backup prune

  # Keep only the 3 most recent backups
  aliasman backup prune --keep 3

  # Remove all backups
  aliasman backup prune --keep 0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPruneWithWriter(cmd.OutOrStdout())
	},
}

func runPruneWithWriter(w io.Writer) error {
	if pruneKeep < 0 {
		return errors.NewUserError(errors.New("--keep must be non-negative"), "")
	}

	removed, err := newManager().Prune(pruneKeep)
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "pruning backups"), "")
	}

	if len(removed) == 0 {
		fmt.Fprintln(w, "No backups to prune")
		return nil
	}
	fmt.Fprintf(w, "%s Removed %d old backup(s)\n", checkColor.Sprint("✓"), len(removed))
	return nil
}
