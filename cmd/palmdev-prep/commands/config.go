package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/palmdev/palmdev-prep/internal/config"
	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/paths"
	"github.com/palmdev/palmdev-prep/pkg/fileutil"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false,
		"overwrite an existing config file")

	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage palmdev-prep configuration",
	Long: `Manage palmdev-prep configuration stored in
$XDG_CONFIG_HOME/palmdev-prep/config.yaml.

Without a subcommand, lists the effective configuration.`,
	Example: `  # Show the effective configuration
  palmdev-prep config

  # Write a config file with the defaults
  palmdev-prep config init

See Also: palmdev-prep doctor`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective configuration",
	Long: `List the effective configuration in YAML format, after defaults,
the config file and PALMDEV_PREP_* environment variables are applied.`,
	RunE: runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		path := config.ConfigFileUsed()
		if path == "" {
			path = paths.ConfigFile()
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file holding the effective configuration",
	Long: `Write the effective configuration to the config file, creating its
directory if needed. An existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := configFile
		if path == "" {
			path = paths.ConfigFile()
		}
		return writeConfig(cmd.OutOrStdout(), path, cfg, configInitForce)
	},
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	return listConfig(cmd.OutOrStdout(), cfg)
}

func listConfig(w io.Writer, c *config.Config) error {
	data, err := fileutil.MarshalYAML(c)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return errors.Wrap(err, "writing config")
}

// writeConfig saves c to path atomically.
func writeConfig(w io.Writer, path string, c *config.Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		err := errors.Newf("config file already exists at %s", path)
		return errors.NewUserError(err, "Use --force to overwrite it")
	}

	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(path, c); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}
