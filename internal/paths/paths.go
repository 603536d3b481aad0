package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is used for the config directory name.
const AppName = "palmdev-prep"

// Install locations used when nothing is configured.
const (
	// DefaultPalmDevPrefix is always scanned for SDKs.
	DefaultPalmDevPrefix = "/opt/palmdev"

	// DefaultExecPrefix is GCC's standard exec prefix; each target's specs
	// file lives beneath it.
	DefaultExecPrefix = "/usr/local/lib/gcc-lib"

	// DefaultTarget is the compiler target the specs are written for.
	DefaultTarget = "m68k-palmos"
)

// SpecsFileName is the file name GCC reads from <exec-prefix>/<target>/.
const SpecsFileName = "specs"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ExpandHome replaces a leading "~" or "~/" in path with the home
// directory. Other paths, including "~user", are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDirEnv overrides the config directory when set.
const ConfigDirEnv = "PALMDEV_PREP_CONFIG_DIR"

// ConfigDir returns $PALMDEV_PREP_CONFIG_DIR, or <ConfigHome>/palmdev-prep.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidTarget reports whether name can be used as a single path component
// under the exec prefix.
func ValidTarget(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00")
}

// SpecsFile returns <execPrefix>/<target>/specs. It returns "" when the
// target is not a valid path component.
func SpecsFile(execPrefix, target string) string {
	if !ValidTarget(target) {
		return ""
	}
	return execPrefix + "/" + target + "/" + SpecsFileName
}
