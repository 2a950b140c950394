package alias

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/internal/dispatch"
)

var showTarget target

func init() {
	showTarget.bindAlias(showCmd)
	showTarget.bindGroup(showCmd)
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one alias",
	Example: `  aliasman alias show -a ll
  aliasman alias show -a pods -g k8s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runShowWithWriter(cmd, cmd.OutOrStdout())
	},
}

func runShowWithWriter(cmd *cobra.Command, w io.Writer) error {
	return dispatchRequest(cmd, w, dispatch.Request{
		Op:    dispatch.OpShow,
		Alias: showTarget.alias,
		Group: showTarget.group,
	})
}
