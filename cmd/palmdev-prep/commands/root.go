// Package commands implements the CLI commands for palmdev-prep.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/palmdev/palmdev-prep/cmd"
	"github.com/palmdev/palmdev-prep/internal/config"
	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/logging"
)

// ProgName prefixes warnings and errors written to stderr.
const ProgName = "palmdev-prep"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet/--silent flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// colorFlag holds the value of the --color flag.
var colorFlag string

// configFile holds the value of the --config flag.
var configFile string

// cfg is the configuration loaded before any command runs.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"display extra information about actions taken (-vv for debug logs)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress display of installation analysis")
	rootCmd.PersistentFlags().BoolVar(&quiet, "silent", false,
		"same as --quiet")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default $XDG_CONFIG_HOME/palmdev-prep/config.yaml)")

	addPrepFlags(rootCmd)

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("palmdev-prep version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "palmdev-prep [flags] [directory...]",
	Short: "Prepare GCC specs files for the installed Palm OS SDKs",
	Long: `palmdev-prep scans the PalmDev prefix (default /opt/palmdev) and any
directories listed for Palm OS SDKs, then writes a GCC specs file for each
target so that -palmosN selects the matching SDK's headers and libraries.

Directories listed are scanned in addition to the PalmDev prefix and any
scan_dirs from the configuration file. Each directory may contain sdk-*
subdirectories with include/ or Incs/ headers and lib/ or "GCC Libraries"
libraries, plus common material of its own.`,
	Example: `  # Analyze the installation and write the specs files
  palmdev-prep

  # Also scan an SDK kept in a home directory
  palmdev-prep ~/palm

  # Make SDK 3.5 the default and show what would be written
  palmdev-prep -d 3.5 --dump-specs m68k-palmos

  # Remove the files palmdev-prep installed
  palmdev-prep --remove

  See Also: palmdev-prep list, palmdev-prep doctor, palmdev-prep config`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	RunE: runPrep,
}

// setupLogging configures the default logger based on verbosity flags.
// Log records are diagnostics only; --quiet silences the analysis report,
// not warnings.
func setupLogging(cmd *cobra.Command) error {
	v := verbosity

	// CLI flags take precedence, but if not set, check env var
	if v == 0 {
		if val, ok := os.LookupEnv("PALMDEV_PREP_DEBUG"); ok {
			switch val {
			case "1", "true":
				v = 2 // Debug
			case "2":
				v = 3 // Trace
			}
		}
	}
	level := logging.LevelFromVerbosity(v)

	mode, err := logging.ParseColorMode(colorFlag)
	if err != nil {
		return errors.NewUserError(err, "Use --color auto, always or never")
	}
	logging.SetColorMode(mode)
	color.NoColor = !logging.SupportsColor(cmd.OutOrStdout())

	switch logging.Format(logFormat) {
	case logging.FormatJSON, logging.FormatText:
	default:
		return errors.NewUserError(errors.Newf("unknown log format %q", logFormat),
			"Use --log-format text or --log-format json")
	}
	primaryHandler := logging.NewFormatHandler(cmd.ErrOrStderr(), logging.Format(logFormat), level)

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, logging.NewFormatHandler(f, logging.FormatJSON, level))
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

// checkConfig surfaces config load errors for commands that need a config.
func checkConfig(cmd *cobra.Command) error {
	// version, help and config itself stay usable with a broken config
	switch cmd.Name() {
	case "help", "version", "path":
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
