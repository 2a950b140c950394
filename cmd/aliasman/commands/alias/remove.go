package alias

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/internal/dispatch"
)

var removeTarget target

func init() {
	removeTarget.bindAlias(removeCmd)
	removeTarget.bindGroup(removeCmd)
	Cmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Remove an alias",
	Long: `Remove an alias from the general scope or a group.

A group left empty by the removal is kept unless the prune_empty_groups
setting is enabled. Removing an unknown alias prints "Alias not found".`,
	Example: `  aliasman alias remove -a ll
  aliasman alias rm -a pods -g k8s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRemoveWithWriter(cmd, cmd.OutOrStdout())
	},
}

func runRemoveWithWriter(cmd *cobra.Command, w io.Writer) error {
	return dispatchRequest(cmd, w, dispatch.Request{
		Op:    dispatch.OpRemove,
		Alias: removeTarget.alias,
		Group: removeTarget.group,
	})
}
