package alias

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/internal/dispatch"
)

var (
	addTarget  target
	addCommand string
)

func init() {
	addTarget.bindAlias(addCmd)
	addTarget.bindGroup(addCmd)
	addCmd.Flags().StringVarP(&addCommand, "command", "c", "", "Command text the alias runs")
	_ = addCmd.MarkFlagRequired("command")
	Cmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or overwrite an alias",
	Long: `Bind an alias name to a command string.

An existing alias with the same name in the same scope is overwritten.
Naming a group that does not exist yet creates it. The command string is
stored as given and interpreted by the shell only when executed.`,
	Example: `  aliasman alias add -a ll -c "ls -al"
  aliasman alias add -a pods -c "kubectl get pods -A" -g k8s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAddWithWriter(cmd, cmd.OutOrStdout())
	},
}

func runAddWithWriter(cmd *cobra.Command, w io.Writer) error {
	return dispatchRequest(cmd, w, dispatch.Request{
		Op:      dispatch.OpAdd,
		Alias:   addTarget.alias,
		Command: addCommand,
		Group:   addTarget.group,
	})
}
