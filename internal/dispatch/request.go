package dispatch

import (
	"fmt"
	"slices"

	"github.com/thoreinstein/aliasman/internal/errors"
)

// Op names a store operation.
type Op string

// Supported operations.
const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpList   Op = "list"
	OpShow   Op = "show"
	OpExec   Op = "exec"
)

// Mutating reports whether op can change the alias file.
func (o Op) Mutating() bool {
	return o == OpAdd || o == OpRemove
}

// Format selects how list results are rendered.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// Request is one parsed alias invocation.
type Request struct {
	Op      Op
	Alias   string
	Command string
	// Group is the target group. Empty means the general scope.
	Group  string
	Format Format
}

// Validate checks the operation and output format. Alias names and
// command strings are opaque: an empty value is stored as given, and flag
// presence is enforced by the CLI.
func (r Request) Validate() error {
	switch r.Op {
	case OpAdd, OpRemove, OpShow, OpExec, OpList:
	default:
		return errors.NewUserError(errors.Newf("unknown operation %q", r.Op), "")
	}

	if r.Format != "" && !slices.Contains(Formats, r.Format) {
		return errors.NewUserError(
			errors.Newf("unknown format %q", r.Format),
			fmt.Sprintf("Valid formats: %v", Formats),
		)
	}
	return nil
}
