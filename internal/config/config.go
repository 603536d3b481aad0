package config

import (
	"io/fs"
	"os"

	"github.com/spf13/viper"

	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/paths"
	"github.com/palmdev/palmdev-prep/internal/specs"
)

// AppName is the application name used for config file naming.
const AppName = paths.AppName

// CurrentVersion is the only config schema version understood.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// PalmDevPrefix is always scanned first for SDKs and common material.
	PalmDevPrefix string `mapstructure:"palmdev_prefix" yaml:"palmdev_prefix"`

	// ExecPrefix is the directory holding one subdirectory per target.
	ExecPrefix string `mapstructure:"exec_prefix" yaml:"exec_prefix"`

	// Targets lists the compiler targets that get a specs file.
	Targets []string `mapstructure:"targets" yaml:"targets"`

	// LibrarySubdir is searched beneath each libraries subdirectory.
	LibrarySubdir string `mapstructure:"library_subdir" yaml:"library_subdir"`

	// ScanDirs are scanned after PalmDevPrefix, before directories given
	// on the command line.
	ScanDirs []string `mapstructure:"scan_dirs" yaml:"scan_dirs"`

	// DefaultSDK names the SDK used when GCC is given no -palmos option.
	DefaultSDK string `mapstructure:"default_sdk" yaml:"default_sdk"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Version:       CurrentVersion,
		PalmDevPrefix: paths.DefaultPalmDevPrefix,
		ExecPrefix:    paths.DefaultExecPrefix,
		Targets:       []string{paths.DefaultTarget},
		LibrarySubdir: specs.DefaultLibrarySubdir,
		ScanDirs:      []string{},
	}
}

// Init resets Viper and installs the default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(paths.ConfigDir())

	// PALMDEV_PREP_EXEC_PREFIX and friends
	viper.SetEnvPrefix("PALMDEV_PREP")
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("palmdev_prefix", def.PalmDevPrefix)
	viper.SetDefault("exec_prefix", def.ExecPrefix)
	viper.SetDefault("targets", def.Targets)
	viper.SetDefault("library_subdir", def.LibrarySubdir)
	viper.SetDefault("scan_dirs", def.ScanDirs)
	viper.SetDefault("default_sdk", def.DefaultSDK)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			err = errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
			return nil, errors.WithHint(err, "Create one with: palmdev-prep config init")
		}
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// Only an implicit search may come up empty
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.expandHome(); err != nil {
		return nil, err
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// expandHome resolves "~/" in the directory settings.
func (c *Config) expandHome() error {
	var err error
	for _, p := range []*string{&c.PalmDevPrefix, &c.ExecPrefix} {
		if *p, err = paths.ExpandHome(*p); err != nil {
			return errors.Wrap(err, "expanding ~")
		}
	}
	for i := range c.ScanDirs {
		if c.ScanDirs[i], err = paths.ExpandHome(c.ScanDirs[i]); err != nil {
			return errors.Wrap(err, "expanding ~")
		}
	}
	return nil
}

// ConfigFileUsed returns the config file Viper read, or "".
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
