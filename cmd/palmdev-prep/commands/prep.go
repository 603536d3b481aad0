package commands

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/palmdev/palmdev-prep/internal/config"
	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/intern"
	"github.com/palmdev/palmdev-prep/internal/logging"
	"github.com/palmdev/palmdev-prep/internal/paths"
	"github.com/palmdev/palmdev-prep/internal/sdk"
	"github.com/palmdev/palmdev-prep/internal/specs"
	"github.com/palmdev/palmdev-prep/pkg/fileutil"
)

// permissionMessage replaces "...done" when a specs file could not be
// written for lack of permission.
const permissionMessage = "Permission to write spec files denied -- try again as root"

var (
	defaultSDK  string
	removing    bool
	dumpTarget  string
	pickDefault bool
)

func addPrepFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVarP(&defaultSDK, "default", "d", "",
		"set default `SDK` (overrides default_sdk)")
	f.BoolVarP(&removing, "remove", "r", false,
		"remove all files installed by palmdev-prep")
	f.StringVar(&dumpTarget, "dump-specs", "",
		"write specs for `TARGET` to standard output")
	f.BoolVar(&pickDefault, "pick-default", false,
		"choose the default SDK interactively")

	c.MarkFlagsMutuallyExclusive("remove", "dump-specs")
	c.MarkFlagsMutuallyExclusive("default", "pick-default")
}

// prepOptions carries the command line of one run.
type prepOptions struct {
	// Dirs are scanned after the PalmDev prefix and the configured scan_dirs.
	Dirs []string

	// DefaultSDK overrides the configured default_sdk when set.
	DefaultSDK string

	// DumpTarget, when set, sends the specs to the output instead of the
	// target files.
	DumpTarget string

	// Pick chooses the default SDK with the interactive finder.
	Pick bool

	// Report shows the installation analysis.
	Report bool

	// Verbose lists each file written or removed.
	Verbose bool
}

func runPrep(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	status := newRunStatus(cmd.ErrOrStderr())

	if removing {
		removeSpecs(ctx, cmd.OutOrStdout(), status, cfg, verbosity > 0)
		return status.Err()
	}

	opts := prepOptions{
		Dirs:       args,
		DefaultSDK: defaultSDK,
		DumpTarget: dumpTarget,
		Pick:       pickDefault,
		Report:     !quiet,
		Verbose:    verbosity > 0,
	}
	if err := prepare(ctx, cmd.OutOrStdout(), status, cfg, opts); err != nil {
		return err
	}
	return status.Err()
}

// prepare analyzes the installation and writes or dumps the specs.
// Problems that do not stop the run are counted on status.
func prepare(ctx context.Context, out io.Writer, status *runStatus, cfg *config.Config, opts prepOptions) error {
	logger := logging.FromContext(ctx)

	var report *sdk.Reporter
	if opts.Report {
		report = sdk.NewReporter(out)
	}

	inv := scanAll(ctx, cfg, opts.Dirs, report, status)
	defer inv.Store().Release()

	sel, err := chooseDefault(ctx, inv, cfg, opts, status)
	if err != nil {
		return err
	}
	if sel.Root != nil && sel.Automatic() {
		report.DefaultChosen(sel.Root.Key)
	}

	specOpts := specs.Options{LibrarySubdir: cfg.LibrarySubdir}

	if opts.DumpTarget != "" {
		if err := specs.Write(out, inv, sel.Root, specOpts); err != nil {
			return errors.NewSystemError(err, "")
		}
		return nil
	}

	content, err := specs.Generate(inv, sel.Root, specOpts)
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	report.Printf("Writing SDK details to target specs files...\n")
	message := "...done"

	for _, target := range cfg.Targets {
		path := paths.SpecsFile(cfg.ExecPrefix, target)
		if err := writeSpecsFile(path, content); err != nil {
			if errors.Is(err, errors.ErrPermissionDenied) {
				message = permissionMessage
			}
			logger.Debug("writing specs failed", "target", target, "path", path, "error", err)
			status.Errorf("can't write to '%s': %s", path, reason(err))
			continue
		}

		logger.Info("wrote specs", "target", target, "path", path, "bytes", len(content))
		if opts.Verbose {
			fmt.Fprintf(out, "Wrote %s specs to '%s'\n", target, path)
		}
	}

	report.Printf("%s\n", message)
	return nil
}

// writeSpecsFile atomically replaces path with content. Failures are
// marked ErrWriteFailed, and also ErrPermissionDenied when access was refused.
func writeSpecsFile(path string, content []byte) error {
	err := fileutil.AtomicWriteFile(path, content, fileutil.DefaultFilePerm)
	if err == nil {
		return nil
	}
	err = errors.Mark(err, errors.ErrWriteFailed)
	if errors.Is(err, fs.ErrPermission) {
		err = errors.Mark(err, errors.ErrPermissionDenied)
	}
	return err
}

// scanAll analyzes the PalmDev prefix, then the configured scan_dirs, then
// dirs. Earlier directories win when SDK keys collide.
func scanAll(ctx context.Context, cfg *config.Config, dirs []string, report *sdk.Reporter, status *runStatus) *sdk.Inventory {
	inv := sdk.NewInventory(intern.New())
	analyzer := sdk.NewAnalyzer(inv, sdk.WithReporter(report))

	scan := func(dir string) {
		if err := analyzer.Analyze(ctx, dir); err != nil {
			status.Errorf("%v", err)
		}
	}

	scan(cfg.PalmDevPrefix)
	for _, dir := range slices.Concat(cfg.ScanDirs, dirs) {
		if err := openable(dir); err != nil {
			status.Warnf("can't open '%s': %s", dir, reason(err))
			continue
		}
		scan(dir)
	}

	return inv
}

// openable returns why dir cannot be scanned, or nil.
func openable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "open", Path: dir, Err: errors.New("not a directory")}
	}
	return nil
}

// chooseDefault selects the default SDK from the command line, the
// configuration, or interactively.
func chooseDefault(ctx context.Context, inv *sdk.Inventory, cfg *config.Config, opts prepOptions, status *runStatus) (sdk.Selection, error) {
	logger := logging.FromContext(ctx)

	requested := opts.DefaultSDK
	if requested == "" {
		requested = cfg.DefaultSDK
	}

	sel := sdk.SelectDefault(inv, requested)
	if err := sel.Err(); err != nil {
		logger.Debug("falling back to automatic default", "error", err)
		status.Warnf("SDK '%s' not found -- using highest found instead", requested)
	}

	if opts.Pick {
		return pickSDK(inv, sel)
	}
	return sel, nil
}
