package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveSpecs(t *testing.T) {
	inst := newInstallation(t)
	inst.cfg.Targets = []string{"m68k-palmos", "arm-palmos"}
	require.NoError(t, os.WriteFile(inst.specsFile(), []byte("x"), 0o644))

	var out, errOut bytes.Buffer
	status := newRunStatus(&errOut)
	removeSpecs(context.Background(), &out, status, inst.cfg, false)

	assert.NoFileExists(t, inst.specsFile())
	assert.Empty(t, out.String())
	// arm-palmos never had a specs file.
	assert.Empty(t, errOut.String())
	assert.NoError(t, status.Err())
}

func TestRemoveSpecs_FailureWarns(t *testing.T) {
	inst := newInstallation(t)
	// A non-empty directory where the specs file should be cannot be removed.
	mkdirs(t, inst.specsFile(), "keep")

	var errOut bytes.Buffer
	status := newRunStatus(&errOut)
	removeSpecs(context.Background(), &bytes.Buffer{}, status, inst.cfg, true)

	assert.Equal(t, 1, status.Problems())
	assert.Contains(t, errOut.String(), "palmdev-prep: warning: can't remove '"+inst.specsFile()+"'")
	assert.DirExists(t, filepath.Join(inst.specsFile(), "keep"))
}

func TestRemove_Execute(t *testing.T) {
	inst := newInstallation(t)
	require.NoError(t, os.WriteFile(inst.specsFile(), []byte("x"), 0o644))

	_, _, err := execute(t, inst, "remove")
	require.NoError(t, err)
	assert.NoFileExists(t, inst.specsFile())
}
