package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/palmdev/palmdev-prep/internal/config"
	"github.com/palmdev/palmdev-prep/internal/paths"
)

// installation is a PalmDev prefix and GCC exec prefix laid out in a temp dir.
type installation struct {
	prefix     string
	execPrefix string
	cfg        *config.Config
}

// newInstallation creates
//
//	palmdev/sdk-3.5/include
//	palmdev/sdk-4/include
//	palmdev/sdk-4/lib/m68k-palmos-coff
//	palmdev/include
//	gcc-lib/m68k-palmos/
func newInstallation(t *testing.T) *installation {
	t.Helper()
	base := t.TempDir()
	inst := &installation{
		prefix:     filepath.Join(base, "palmdev"),
		execPrefix: filepath.Join(base, "gcc-lib"),
	}
	mkdirs(t, inst.prefix,
		"sdk-3.5/include",
		"sdk-4/include",
		"sdk-4/lib/m68k-palmos-coff",
		"include",
	)
	mkdirs(t, inst.execPrefix, paths.DefaultTarget)

	inst.cfg = config.Default()
	inst.cfg.PalmDevPrefix = inst.prefix
	inst.cfg.ExecPrefix = inst.execPrefix
	return inst
}

func (inst *installation) specsFile() string {
	return paths.SpecsFile(inst.execPrefix, paths.DefaultTarget)
}

func mkdirs(t *testing.T, base string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		require.NoError(t, os.MkdirAll(filepath.Join(base, filepath.FromSlash(r)), 0o755))
	}
}

// execute runs the root command with args against inst and returns stdout
// and stderr.
func execute(t *testing.T, inst *installation, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	t.Setenv("PALMDEV_PREP_PALMDEV_PREFIX", inst.prefix)
	t.Setenv("PALMDEV_PREP_EXEC_PREFIX", inst.execPrefix)
	t.Setenv("PALMDEV_PREP_DEBUG", "")

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag of c and its subcommands to its default.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
