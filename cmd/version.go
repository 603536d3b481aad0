// Package cmd contains build-time variables injected via ldflags.
package cmd

import "fmt"

// Build-time variables set via ldflags, e.g.
//
//	go build -ldflags "-X github.com/palmdev/palmdev-prep/cmd.Version=1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// BuildInfo returns the multi-line version report printed by the version
// command.
func BuildInfo(name string) string {
	return fmt.Sprintf("%s version %s\n  commit: %s\n  built:  %s\n", name, Version, Commit, Date)
}
