package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/internal/backup"
	"github.com/thoreinstein/aliasman/internal/errors"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backups",
	Long:  `List all alias file backups, most recent first.`,
	Example: `  aliasman backup list
  aliasman backup list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runListWithWriter(cmd.OutOrStdout())
	},
}

// infoOutput represents a single backup in JSON output.
type infoOutput struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	OriginalPath    string    `json:"original_path"`
	Size            int64     `json:"size"`
	AliasmanVersion string    `json:"aliasman_version"`
}

func runListWithWriter(w io.Writer) error {
	mgr := newManager()

	manifests, err := mgr.List()
	if err != nil && !errors.Is(err, backup.ErrNoBackupsFound) {
		return errors.Wrap(err, "listing backups")
	}

	if listJSON {
		output := make([]infoOutput, len(manifests))
		for i, m := range manifests {
			output[i] = infoOutput{
				ID:              m.ID,
				CreatedAt:       m.CreatedAt,
				OriginalPath:    m.File.OriginalPath,
				Size:            m.File.Size,
				AliasmanVersion: m.AliasmanVersion,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(output), "encoding output")
	}

	if len(manifests) == 0 {
		fmt.Fprintln(w, "No backups available")
		fmt.Fprintf(w, "%s\n", dimColor.Sprintf("Backups are written to %s before the alias file changes.", mgr.Dir()))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		boldColor.Sprint("ID"), boldColor.Sprint("CREATED"), boldColor.Sprint("SIZE"), boldColor.Sprint("FILE"))
	for _, m := range manifests {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			idColor.Sprint(m.ID),
			m.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			m.File.Size,
			m.File.OriginalPath)
	}
	return tw.Flush()
}
