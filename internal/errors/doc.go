// Package errors provides error handling conventions for palmdev-prep.
//
// It re-exports the wrapping helpers of github.com/cockroachdb/errors,
// defines sentinel errors for the discovery and generation failures, an
// ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrPathTooLong) {
//	    // skip this scan directory
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): run completed with a zero error count
//   - ExitUser (1): warnings or user-related errors were counted
//   - ExitSystem (2): I/O or permission failures
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. main prints the suggestion and exits with [CodeOf].
package errors
