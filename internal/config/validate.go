package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/palmdev/palmdev-prep/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidTarget indicates a target that cannot name a directory.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrNoTargets indicates an empty target list.
	ErrNoTargets = errors.New("no targets configured")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnsupportedVersion, cfg.Version))
	}

	if len(cfg.Targets) == 0 {
		errs = append(errs, ErrNoTargets)
	}
	for _, target := range cfg.Targets {
		if !paths.ValidTarget(target) {
			errs = append(errs, &TargetError{Target: target, Err: ErrInvalidTarget})
		}
	}

	if err := validatePath(cfg.PalmDevPrefix); err != nil {
		errs = append(errs, &PathError{Field: "palmdev_prefix", Path: cfg.PalmDevPrefix, Err: err})
	}
	if err := validatePath(cfg.ExecPrefix); err != nil {
		errs = append(errs, &PathError{Field: "exec_prefix", Path: cfg.ExecPrefix, Err: err})
	}

	if strings.ContainsRune(cfg.LibrarySubdir, '\x00') || filepath.IsAbs(cfg.LibrarySubdir) {
		errs = append(errs, &PathError{Field: "library_subdir", Path: cfg.LibrarySubdir, Err: ErrInvalidPath})
	}

	for _, dir := range cfg.ScanDirs {
		if err := validatePath(dir); err != nil {
			errs = append(errs, &PathError{Field: "scan_dirs", Path: dir, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if path == "" {
		return ErrInvalidPath
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// TargetError represents an error for a specific target.
type TargetError struct {
	Target string
	Err    error
}

func (e *TargetError) Error() string {
	return e.Err.Error() + ": " + e.Target
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
