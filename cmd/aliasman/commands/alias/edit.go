package alias

import (
	"context"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/cmd/aliasman/commands/flags"
	"github.com/thoreinstein/aliasman/internal/editor"
	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/fileaccess"
	"github.com/thoreinstein/aliasman/internal/store"
)

func init() {
	Cmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the alias file in $EDITOR",
	Long: `Open the alias file in your editor.

Uses $EDITOR, then $VISUAL, then nano, then vi. After the editor exits
the file is parsed again and a warning is printed if it is no longer a
valid alias file.`,
	Example: `  aliasman alias edit
  EDITOR="code --wait" aliasman alias edit`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

// openEditor launches the editor. Tests replace it.
var openEditor = editor.Open

func runEdit(cmd *cobra.Command, _ []string) error {
	path, err := flags.AliasPath()
	if err != nil {
		return errors.NewUserError(err, "")
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return errors.NewConfigError(errors.Wrapf(err, "alias file %s", path))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := openEditor(ctx, path); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to an installed editor")
	}

	if _, err := store.Load(fileaccess.NewOS(), path); err != nil {
		cmd.PrintErrf("Warning: %v\n", err)
	}
	return nil
}
