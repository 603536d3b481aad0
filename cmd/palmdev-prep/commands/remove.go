package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/palmdev/palmdev-prep/internal/config"
	"github.com/palmdev/palmdev-prep/internal/logging"
	"github.com/palmdev/palmdev-prep/internal/paths"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove all files installed by palmdev-prep",
	Long: `Remove the specs file of every configured target.

Files that do not exist are skipped. Same as palmdev-prep --remove.`,
	Example: `  # Remove the specs files, listing each one
  palmdev-prep remove -v

See Also: palmdev-prep doctor`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		status := newRunStatus(cmd.ErrOrStderr())
		removeSpecs(cmd.Context(), cmd.OutOrStdout(), status, cfg, verbosity > 0)
		return status.Err()
	},
}

// removeSpecs deletes each target's specs file. Failures are warnings.
func removeSpecs(ctx context.Context, out io.Writer, status *runStatus, cfg *config.Config, verbose bool) {
	logger := logging.FromContext(ctx)

	for _, target := range cfg.Targets {
		path := paths.SpecsFile(cfg.ExecPrefix, target)
		if _, err := os.Stat(path); err != nil {
			logger.Debug("specs file already absent", "target", target, "path", path)
			continue
		}

		if err := os.Remove(path); err != nil {
			status.Warnf("can't remove '%s': %s", path, reason(err))
			continue
		}

		logger.Info("removed specs", "target", target, "path", path)
		if verbose {
			fmt.Fprintf(out, "Removed '%s'\n", path)
		}
	}
}
