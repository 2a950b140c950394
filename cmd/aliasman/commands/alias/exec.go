package alias

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/internal/dispatch"
)

var execTarget target

func init() {
	execTarget.bindAlias(execCmd)
	execTarget.bindGroup(execCmd)
	Cmd.AddCommand(execCmd)
}

var execCmd = &cobra.Command{
	Use:     "exec",
	Aliases: []string{"run"},
	Short:   "Execute an alias",
	Long: `Run the alias's command through the shell (sh -c, or cmd /C on Windows)
and print its exit status, stdout and stderr.

A non-zero exit status is reported, not treated as a failure. Failing to
start the shell exits with status 2. The shell can be changed with the
shell setting.`,
	Example: `  aliasman alias exec -a ll
  aliasman alias run -a whoami -g aws`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExecWithWriter(cmd, cmd.OutOrStdout())
	},
}

func runExecWithWriter(cmd *cobra.Command, w io.Writer) error {
	return dispatchRequest(cmd, w, dispatch.Request{
		Op:    dispatch.OpExec,
		Alias: execTarget.alias,
		Group: execTarget.group,
	})
}
