package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/aliasman/cmd/aliasman/commands/flags"
	"github.com/thoreinstein/aliasman/internal/errors"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show aliasman settings",
	Long: `Show the effective aliasman settings.

Settings come from settings.yaml (working directory, then the user config
directory), ALIASMAN_* environment variables and built-in defaults.
Without a subcommand, lists all settings.`,
	Example: `  # List all settings
  aliasman config

  # Get a specific value
  aliasman config get backup.retention

  # Print the alias file in use
  aliasman config path

  See Also: aliasman init`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runConfigListWithWriter(c.OutOrStdout())
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a setting",
	Long:  `Get a single setting by key. Nested keys use dot notation.`,
	Example: `  aliasman config get shell
  aliasman config get backup.dir`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runConfigGetWithWriter(c.OutOrStdout(), args[0])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Long:  `List all effective settings in YAML format.`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runConfigListWithWriter(c.OutOrStdout())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the alias file and settings file locations",
	RunE: func(c *cobra.Command, _ []string) error {
		return runConfigPathWithWriter(c.OutOrStdout())
	},
}

func runConfigGetWithWriter(w io.Writer, key string) error {
	if !viper.IsSet(key) {
		fmt.Fprintln(w, "not set")
		return nil
	}
	fmt.Fprintln(w, viper.GetString(key))
	return nil
}

func runConfigListWithWriter(w io.Writer) error {
	data, err := yaml.Marshal(flags.Settings())
	if err != nil {
		return errors.Wrap(err, "marshaling settings")
	}
	_, err = w.Write(data)
	return err
}

func runConfigPathWithWriter(w io.Writer) error {
	path, err := flags.AliasPath()
	if err != nil {
		return errors.NewUserError(err, "")
	}
	fmt.Fprintf(w, "alias file: %s\n", path)

	settingsFile := viper.ConfigFileUsed()
	if settingsFile == "" {
		settingsFile = "(none, using defaults)"
	}
	fmt.Fprintf(w, "settings:   %s\n", settingsFile)
	return nil
}
