// Package commands implements the CLI commands for aliasman.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aliasman/cmd"
	"github.com/thoreinstein/aliasman/cmd/aliasman/commands/alias"
	"github.com/thoreinstein/aliasman/cmd/aliasman/commands/backup"
	"github.com/thoreinstein/aliasman/cmd/aliasman/commands/flags"
	internalbackup "github.com/thoreinstein/aliasman/internal/backup"
	"github.com/thoreinstein/aliasman/internal/config"
	"github.com/thoreinstein/aliasman/internal/errors"
	"github.com/thoreinstein/aliasman/internal/logging"
)

// fileFlag holds the value of the --file flag.
var fileFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configLoadErr holds any error that occurred during settings loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&fileFlag, "file", "",
		"alias file to operate on (default: alias_file setting, then ./config.toml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"only log errors")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("aliasman version {{.Version}}\n")
	internalbackup.Version = cmd.Version

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(alias.Cmd)
	rootCmd.AddCommand(backup.Cmd)
}

func initConfig() {
	config.Init()
	cfg, err := config.Load("")
	configLoadErr = err
	flags.SetSettings(cfg)
}

var rootCmd = &cobra.Command{
	Use:   "aliasman",
	Short: "Manage named shortcuts for shell commands",
	Long: `aliasman keeps named shortcuts for shell commands in a TOML file.

Aliases live either in the general scope or in a named group. Add, list,
show and remove them, or execute one through the shell:

  [alias.general]
  ll = "ls -al"

  [alias.group.aws]
  whoami = "aws sts get-caller-identity"

The alias file defaults to ./config.toml. Override it with --file, the
ALIASMAN_ALIAS_FILE environment variable, or the alias_file setting.`,
	Example: `  # Create an empty alias file
  aliasman init

  # Add and run an alias
  aliasman alias add -a ll -c "ls -al"
  aliasman alias exec -a ll

  # Work with a group
  aliasman alias add -a whoami -c "aws sts get-caller-identity" -g aws
  aliasman alias list -g aws

  See Also: aliasman alias, aliasman config, aliasman backup`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return validateSettings(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose are mutually exclusive"),
			"cannot use --quiet and --verbose together")
	}

	level := logging.ResolveLevel(verbosity, quiet)
	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Valid formats: text, json")
	}

	opts := &slog.HandlerOptions{Level: level}
	primaryHandler := logging.NewFormatHandler(format, cmd.ErrOrStderr(), opts)

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// validateSettings reports settings load failures and publishes --file.
func validateSettings(cmd *cobra.Command, _ []string) error {
	flags.SetFileFlag(fileFlag)

	// help and version work with broken settings
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewUserError(errors.Wrap(configLoadErr, "loading settings"),
			"Fix or remove settings.yaml, or check ALIASMAN_* environment variables")
	}

	if _, err := flags.AliasPath(); err != nil {
		return errors.NewUserError(err, "")
	}

	return nil
}

// Execute runs the root command, reports any error on stderr and returns it.
// Ctrl-C cancels the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	reportError(rootCmd.ErrOrStderr(), err)
	return errors.Wrap(err, "executing root command")
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", exitErr.Suggestion)
	}
}
