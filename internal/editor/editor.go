// Package editor launches the user's preferred text editor on the alias file.
package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/aliasman/internal/errors"
)

// Editor runs an editor command attached to the terminal.
type Editor struct {
	// Command is the editor argv; the file path is appended.
	Command []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Detect returns an Editor for the user's preferred editor, attached to the
// process's standard streams.
func Detect() *Editor {
	return &Editor{
		Command: strings.Fields(detectEditor()),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Open launches the detected editor for path.
func Open(ctx context.Context, path string) error {
	return Detect().Open(ctx, path)
}

// Open runs the editor on path and waits for it to exit.
func (e *Editor) Open(ctx context.Context, path string) error {
	if len(e.Command) == 0 {
		return errors.New("no editor configured")
	}

	fmt.Fprintf(e.Stdout, "Location: %s\n", path)

	args := append(e.Command[1:len(e.Command):len(e.Command)], path)
	cmd := exec.CommandContext(ctx, e.Command[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", e.Command[0])
	}

	return nil
}

// detectEditor returns the editor command line based on environment
// variables and available binaries. Fallback chain: $EDITOR → $VISUAL → nano → vi
func detectEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	return "vi"
}
