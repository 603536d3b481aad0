// Package doctor provides diagnostic checks for a PalmDev installation.
package doctor

import "fmt"

// Severity ranks a check outcome. Later values are worse.
type Severity int

const (
	SeverityPass Severity = iota
	SeverityInfo
	// SeverityWarning marks something palmdev-prep works around, such as a
	// stale specs file or a missing scan directory.
	SeverityWarning
	// SeverityError marks something that stops specs files being written.
	SeverityError
)

var severityNames = [...]string{"pass", "info", "warning", "error"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsProblem reports whether s is shown without --verbose.
func (s Severity) IsProblem() bool {
	return s >= SeverityWarning
}

// CheckResult is the outcome of one check. Runner fills Name and Category
// from the check when they are left empty.
type CheckResult struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Status   Severity `json:"status"`
	Message  string   `json:"message"`

	// Details holds check-specific data for --json, e.g. the SDK keys found.
	Details map[string]any `json:"details,omitempty"`

	Fixable bool   `json:"fixable,omitempty"`
	FixHint string `json:"fix_hint,omitempty"`
}

// Summary counts results per severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

func (s *Summary) add(status Severity) {
	switch status {
	case SeverityPass:
		s.Passed++
	case SeverityInfo:
		s.Info++
	case SeverityWarning:
		s.Warnings++
	case SeverityError:
		s.Errors++
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%d passed, %d info, %d warnings, %d errors",
		s.Passed, s.Info, s.Warnings, s.Errors)
}
