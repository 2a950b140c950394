// Package main is the entry point for the aliasman CLI.
package main

import (
	"os"

	"github.com/thoreinstein/aliasman/cmd/aliasman/commands"
	"github.com/thoreinstein/aliasman/internal/errors"
)

func main() {
	os.Exit(errors.ExitCode(commands.Execute()))
}
