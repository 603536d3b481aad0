package doctor

import (
	"context"
	"time"

	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/logging"
)

// Check inspects one aspect of the installation. Category groups related
// checks in text output ("prefix", "sdk", "specs").
type Check interface {
	Name() string
	Category() string
	Run(ctx context.Context) *CheckResult
}

// Runner runs checks in registration order.
type Runner struct {
	checks []Check
}

// NewRunner returns a Runner holding checks.
func NewRunner(checks ...Check) *Runner {
	r := &Runner{checks: make([]Check, 0, len(checks))}
	for _, c := range checks {
		r.AddCheck(c)
	}
	return r
}

// AddCheck appends c.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run runs every check and tallies the results.
func (r *Runner) Run(ctx context.Context) *DoctorReport {
	logger := logging.FromContext(ctx)
	report := &DoctorReport{
		Timestamp: time.Now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := check.Run(ctx)
		if result.Name == "" {
			result.Name = check.Name()
		}
		if result.Category == "" {
			result.Category = check.Category()
		}
		logger.Debug("check finished", "check", result.Name, "status", result.Status.String())

		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}

	return report
}

// Fix runs Fix on every registered check that implements Fixer and has
// something to fix. Run must have been called first.
func (r *Runner) Fix(ctx context.Context) []FixResult {
	var results []FixResult
	for _, check := range r.checks {
		f, ok := check.(Fixer)
		if !ok || !f.CanFix() {
			continue
		}
		results = append(results, f.Fix(ctx)...)
	}
	return results
}

// DoctorReport is the outcome of one Runner.Run.
type DoctorReport struct {
	// Timestamp is when Run started, in UTC.
	Timestamp time.Time      `json:"timestamp"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// HasErrors reports whether any check failed.
func (r *DoctorReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any check warned.
func (r *DoctorReport) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// ExitCode maps the worst result to the CLI exit status: ExitSystem for
// errors, ExitUser for warnings, 0 otherwise.
func (r *DoctorReport) ExitCode() int {
	switch {
	case r.HasErrors():
		return errors.ExitSystem
	case r.HasWarnings():
		return errors.ExitUser
	default:
		return 0
	}
}
