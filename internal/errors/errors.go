package errors

import (
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = crdb.New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrPathTooLong indicates a composed path exceeds the host path-length ceiling.
	ErrPathTooLong = crdb.New("path too long")

	// ErrSDKNotFound indicates a requested SDK key is not in the SDK table.
	ErrSDKNotFound = crdb.New("SDK not found")

	// ErrPermissionDenied indicates a file system permission failure.
	ErrPermissionDenied = crdb.New("permission denied")

	// ErrWriteFailed indicates a specs file could not be written.
	ErrWriteFailed = crdb.New("write failed")
)

// Thin aliases over cockroachdb/errors so callers need a single import.
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	Mark        = crdb.Mark
	Is          = crdb.Is
	As          = crdb.As
	Unwrap      = crdb.Unwrap
	Join        = crdb.Join
	WithHint    = crdb.WithHint
	GetAllHints = crdb.GetAllHints
)

// ExitError carries the process exit status for an error. A nil Err means
// the problems were already reported and only the status remains.
type ExitError struct {
	Err  error
	Code int

	// Suggestion is printed on its own line after the error.
	Suggestion string
}

// NewExitError returns an ExitError without a suggestion.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError is an ExitUser error for bad flags, arguments or input.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError is an ExitSystem error for I/O failures.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError is an ExitUser error pointing at the config file.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Check the file shown by: palmdev-prep config path")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Hint returns the suggestion to print: hints attached to Err with
// WithHint, one per line, then Suggestion.
func (e *ExitError) Hint() string {
	var hints []string
	if e.Err != nil {
		hints = GetAllHints(e.Err)
	}
	if e.Suggestion != "" {
		hints = append(hints, e.Suggestion)
	}
	return strings.Join(hints, "\n")
}

// CodeOf returns the exit code carried by err, ExitSuccess for nil, and
// ExitUser for errors without an ExitError in their chain.
func CodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}
