package cmd

import "testing"

func TestBuildInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origVersion, origCommit, origDate })

	Version, Commit, Date = "1.2.0", "abc123", "2026-01-02"

	want := "palmdev-prep version 1.2.0\n  commit: abc123\n  built:  2026-01-02\n"
	if got := BuildInfo("palmdev-prep"); got != want {
		t.Errorf("BuildInfo() = %q, want %q", got, want)
	}
}
