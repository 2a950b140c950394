// Package alias provides the alias command group for managing aliases.
package alias

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/cmd/aliasman/commands/flags"
	"github.com/thoreinstein/aliasman/internal/backup"
	"github.com/thoreinstein/aliasman/internal/dispatch"
	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/fileaccess"
	"github.com/thoreinstein/aliasman/internal/logging"
	"github.com/thoreinstein/aliasman/internal/runner"
)

// Cmd is the alias command that groups all alias subcommands.
var Cmd = &cobra.Command{
	Use:     "alias",
	Aliases: []string{"a"},
	Short:   "Manage aliases",
	Long: `Add, remove, list, show and execute aliases.

Every subcommand targets the general scope unless --group names a group.
An empty --group "" also means the general scope, so a group literally
named "" in the alias file cannot be addressed from the CLI. Groups are
created by the first add into them and stay, empty, after their last
alias is removed unless prune_empty_groups is set.`,
	Example: `  # Add an alias to the general scope
  aliasman alias add --alias ll --command "ls -al"

  # Add an alias to a group
  aliasman alias add -a whoami -c "aws sts get-caller-identity" -g aws

  # List a group as JSON
  aliasman alias list -g aws --format json

  # Run an alias
  aliasman alias exec -a ll

  See Also:
    aliasman alias add    - Add or overwrite an alias
    aliasman alias remove - Remove an alias
    aliasman alias list   - List aliases in a scope
    aliasman alias show   - Show one alias
    aliasman alias exec   - Execute an alias
    aliasman alias pick   - Pick an alias interactively and execute it
    aliasman alias edit   - Open the alias file in $EDITOR`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// newDispatcher builds the dispatcher for cmd, writing results to w.
// Tests replace it with an in-memory version.
var newDispatcher = func(cmd *cobra.Command, w io.Writer) (*dispatch.Dispatcher, error) {
	path, err := flags.AliasPath()
	if err != nil {
		return nil, errors.NewUserError(err, "")
	}

	settings := flags.Settings()
	logger := logging.FromContext(cmd.Context())

	r := runner.New(
		runner.WithShell(settings.Shell),
		runner.WithOutput(w),
		runner.WithLogger(logger),
	)

	opts := []dispatch.Option{
		dispatch.WithOutput(w),
		dispatch.WithLogger(logger),
		dispatch.WithWriteOnRead(settings.WriteOnRead),
		dispatch.WithPruneEmptyGroups(settings.PruneEmptyGroups),
	}
	if settings.Backup.Enabled {
		mgr := backup.NewManager(
			backup.WithBackupDir(settings.Backup.Dir),
			backup.WithRetentionCount(settings.Backup.Retention),
		)
		opts = append(opts, dispatch.WithSnapshotter(backup.NewHook(mgr)))
	}

	return dispatch.New(path, fileaccess.NewOS(), r, opts...), nil
}

// target holds the --alias and --group values shared by subcommands.
type target struct {
	alias string
	group string
}

func (t *target) bindGroup(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&t.group, "group", "g", "", "Target group (default: general scope)")
}

func (t *target) bindAlias(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&t.alias, "alias", "a", "", "Alias name")
	_ = cmd.MarkFlagRequired("alias")
}

// dispatchRequest builds a dispatcher and runs req.
func dispatchRequest(cmd *cobra.Command, w io.Writer, req dispatch.Request) error {
	d, err := newDispatcher(cmd, w)
	if err != nil {
		return err
	}
	return d.Dispatch(cmd.Context(), req)
}
