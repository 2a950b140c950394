package alias

import (
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/internal/dispatch"
	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/store"
)

var pickTarget target

func init() {
	pickTarget.bindGroup(pickCmd)
	Cmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick an alias interactively and execute it",
	Long: `Fuzzy-search aliases and execute the selected one.

Without --group every alias in every scope is offered. Press Esc or
Ctrl-C to abort without running anything.`,
	Example: `  aliasman alias pick
  aliasman alias pick -g aws`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPickWithWriter(cmd, cmd.OutOrStdout())
	},
}

// findEntry lets the user choose one of entries. Tests replace it.
var findEntry = func(entries []store.Entry) (int, error) {
	return fuzzyfinder.Find(
		entries,
		func(i int) string {
			if entries[i].Group == "" {
				return entries[i].Name
			}
			return entries[i].Group + "/" + entries[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]
			return fmt.Sprintf("Alias: %s\nScope: %s\n\nCommand:\n%s", e.Name, e.Scope(), e.Command)
		}),
	)
}

func runPickWithWriter(cmd *cobra.Command, w io.Writer) error {
	d, err := newDispatcher(cmd, w)
	if err != nil {
		return err
	}

	s, err := d.Load()
	if err != nil {
		return err
	}

	var entries []store.Entry
	if pickTarget.group != "" {
		entries, err = s.List(pickTarget.group)
		if errors.Is(err, store.ErrGroupNotFound) {
			return dispatch.Notify(w, dispatch.MsgGroupNotFound)
		}
	} else {
		entries = s.Entries()
	}
	if len(entries) == 0 {
		return dispatch.Notify(w, dispatch.MsgNoAliases)
	}

	idx, err := findEntry(entries)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive selection failed")
	}

	chosen := entries[idx]
	return d.Dispatch(cmd.Context(), dispatch.Request{
		Op:    dispatch.OpExec,
		Alias: chosen.Name,
		Group: chosen.Group,
	})
}
