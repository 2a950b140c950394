package alias

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/internal/dispatch"
)

var (
	listTarget target
	listFormat string
)

func init() {
	listTarget.bindGroup(listCmd)
	listCmd.Flags().StringVar(&listFormat, "format", string(dispatch.FormatText), "Output format: text, json, yaml")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List aliases in a scope",
	Long: `List every alias in the general scope or in one group, sorted by name.

Text output prints one "name: command" line per alias.`,
	Example: `  aliasman alias list
  aliasman alias list -g aws
  aliasman alias list --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runListWithWriter(cmd, cmd.OutOrStdout())
	},
}

func runListWithWriter(cmd *cobra.Command, w io.Writer) error {
	return dispatchRequest(cmd, w, dispatch.Request{
		Op:     dispatch.OpList,
		Group:  listTarget.group,
		Format: dispatch.Format(listFormat),
	})
}
