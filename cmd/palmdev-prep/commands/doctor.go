package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/palmdev/palmdev-prep/internal/config"
	"github.com/palmdev/palmdev-prep/internal/doctor"
	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/paths"
	"github.com/palmdev/palmdev-prep/internal/sdk"
	"github.com/palmdev/palmdev-prep/internal/specs"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
	doctorFix     bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"rewrite missing or out-of-date specs files")

	doctorCmd.MarkFlagsMutuallyExclusive("json", "quiet", "verbose")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [directory...]",
	Short: "Diagnose the PalmDev installation",
	Long: `Run diagnostic checks on the PalmDev installation.

Checks that the PalmDev prefix and scan directories exist, that SDKs are
found, and that each target's specs file is writable and matches what
palmdev-prep would write now.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	runner, err := newDoctorRunner(ctx, cfg, args)
	if err != nil {
		return err
	}
	report := runner.Run(ctx)

	if doctorFix {
		fixes := runner.Fix(ctx)
		if !doctorQuiet && !doctorJSON {
			outputFixes(out, fixes)
		}
		if len(fixes) > 0 {
			report = runner.Run(ctx)
		}
	}

	if err := outputDoctorReport(out, report); err != nil {
		return err
	}

	if code := report.ExitCode(); code != 0 {
		return errors.NewExitError(nil, code)
	}
	return nil
}

// newDoctorRunner builds the checks for c. dirs are extra scan directories.
func newDoctorRunner(ctx context.Context, c *config.Config, dirs []string) (*doctor.Runner, error) {
	scanDirs := append(append([]string{}, c.ScanDirs...), dirs...)

	// Problems found while scanning are reported by the checks themselves.
	inv := scanAll(ctx, c, dirs, nil, newRunStatus(io.Discard))
	sel := sdk.SelectDefault(inv, c.DefaultSDK)

	content, err := specs.Generate(inv, sel.Root, specs.Options{LibrarySubdir: c.LibrarySubdir})
	if err != nil {
		return nil, errors.NewSystemError(err, "")
	}

	files := make([]doctor.SpecsFile, 0, len(c.Targets))
	for _, target := range c.Targets {
		files = append(files, doctor.SpecsFile{
			Target:  target,
			Path:    paths.SpecsFile(c.ExecPrefix, target),
			Content: content,
		})
	}

	return doctor.NewRunner(
		doctor.NewPrefixCheck(c.PalmDevPrefix),
		doctor.NewScanDirsCheck(scanDirs),
		doctor.NewSDKCheck(inv, c.DefaultSDK),
		doctor.NewSpecsCheck(files),
	), nil
}

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON")
	}

	outputDoctorText(w, report, doctorVerbose)
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.DoctorReport, showAll bool) {
	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status.IsProblem()
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %s\n", report.Summary)
}

func outputFixes(w io.Writer, fixes []doctor.FixResult) {
	for _, f := range fixes {
		if f.Fixed {
			fmt.Fprintf(w, "fixed %s: %s\n", f.Path, f.Description)
		} else {
			fmt.Fprintf(w, "could not fix %s: %s (%v)\n", f.Path, f.Description, f.Error)
		}
	}
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
