package dispatch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/store"
)

var nameColor = color.New(color.FgCyan, color.Bold)

// RenderEntries writes entries in the given format.
// Text output is one "name: command" line per entry.
func RenderEntries(w io.Writer, entries []store.Entry, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	default:
		for _, e := range entries {
			if err := RenderEntry(w, e); err != nil {
				return err
			}
		}
		return nil
	}
}

// RenderEntry writes a single "name: command" line.
func RenderEntry(w io.Writer, e store.Entry) error {
	if _, err := fmt.Fprintf(w, "%s: %s\n", nameColor.Sprint(e.Name), e.Command); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}
