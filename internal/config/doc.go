// Package config provides configuration management for palmdev-prep.
//
// Configuration is read through Viper from, in order of precedence,
// PALMDEV_PREP_* environment variables, an explicit --config file, and
// config.yaml in the config directory (see [paths.ConfigDir]):
//
//	version: 1
//	palmdev_prefix: /opt/palmdev
//	exec_prefix: /usr/local/lib/gcc-lib
//	targets:
//	  - m68k-palmos
//	library_subdir: m68k-palmos-coff
//	scan_dirs:
//	  - /home/dev/palm-sdks
//	default_sdk: "5r3"
//
// Call [Init] once at startup, then [Load]. A missing default config file is
// not an error; a missing explicit one is. Loaded values are checked with
// [Validate] and the first problem is returned wrapped as
// "validating config: ...".
package config
