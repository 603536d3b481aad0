package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmdev/palmdev-prep/cmd"
)

func TestVersionCommand(t *testing.T) {
	inst := newInstallation(t)

	out, _, err := execute(t, inst, "version")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "palmdev-prep version "+cmd.Version, lines[0])
	assert.Contains(t, lines[1], "commit: "+cmd.Commit)
	assert.Contains(t, lines[2], "built:  "+cmd.Date)
}

func TestVersionFlag(t *testing.T) {
	inst := newInstallation(t)

	out, _, err := execute(t, inst, "--version")
	require.NoError(t, err)
	assert.Equal(t, "palmdev-prep version "+cmd.Version+"\n", out)
}
