package sdk

import (
	"os"

	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/intern"
)

// MaxPathLen is the longest path a root may be composed into.
const MaxPathLen = 4096

// Candidate subdirectory names, in priority order.
var (
	headerDirs  = []string{"include", "Incs"}
	libraryDirs = []string{"lib", "GCC Libraries"}
)

// Root is a directory that may provide headers and/or libraries.
//
// Headers and Libraries hold the name of the subdirectory found, or "" when
// none exists. Key is set only for roots stored in an Inventory's SDK table.
type Root struct {
	Prefix    string `json:"prefix" yaml:"prefix" toml:"prefix"`
	Headers   string `json:"headers,omitempty" yaml:"headers,omitempty" toml:"headers,omitempty"`
	Libraries string `json:"libraries,omitempty" yaml:"libraries,omitempty" toml:"libraries,omitempty"`
	Key       string `json:"key,omitempty" yaml:"key,omitempty" toml:"key,omitempty"`
}

// IsDir reports whether path names a directory, following symlinks.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// JoinPath composes "base/name", or just base when name is empty. It
// returns ErrPathTooLong when the result would exceed MaxPathLen.
func JoinPath(base, name string) (string, error) {
	n := len(base)
	if name != "" {
		n += 1 + len(name)
	}
	if n > MaxPathLen {
		return "", errors.Wrapf(errors.ErrPathTooLong, "%d bytes exceeds %d", n, MaxPathLen)
	}
	if name == "" {
		return base, nil
	}
	return base + "/" + name, nil
}

// NewRoot builds the root for base/name (or base when name is empty) and
// records which conventional subdirectories it has. The prefix and the
// subdirectory names are interned in store.
func NewRoot(store *intern.Store, base, name string) (*Root, error) {
	path, err := JoinPath(base, name)
	if err != nil {
		return nil, err
	}

	root := &Root{Prefix: store.Intern(path)}
	root.Headers = store.Intern(firstDir(root.Prefix, headerDirs))
	root.Libraries = store.Intern(firstDir(root.Prefix, libraryDirs))
	return root, nil
}

func firstDir(prefix string, candidates []string) string {
	for _, name := range candidates {
		if IsDir(prefix + "/" + name) {
			return name
		}
	}
	return ""
}

// HasHeaders reports whether the root has a headers subdirectory.
func (r *Root) HasHeaders() bool {
	return r.Headers != ""
}

// HasLibraries reports whether the root has a libraries subdirectory.
func (r *Root) HasLibraries() bool {
	return r.Libraries != ""
}

// Useful reports whether the root provides anything at all.
func (r *Root) Useful() bool {
	return r.HasHeaders() || r.HasLibraries()
}

// HeadersDir returns the full path of the headers subdirectory, or "".
func (r *Root) HeadersDir() string {
	if !r.HasHeaders() {
		return ""
	}
	return r.Prefix + "/" + r.Headers
}

// LibrariesDir returns the full path of the libraries subdirectory with
// the target-specific nested component appended, or "" when the root has no
// libraries. An empty nested component yields the libraries directory.
func (r *Root) LibrariesDir(nested string) string {
	if !r.HasLibraries() {
		return ""
	}
	dir := r.Prefix + "/" + r.Libraries
	if nested != "" {
		dir += "/" + nested
	}
	return dir
}
