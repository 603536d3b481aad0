package commands

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/palmdev/palmdev-prep/internal/errors"
)

// runStatus counts the problems reported during one invocation. Any
// problem makes the exit status non-zero, but the run carries on.
type runStatus struct {
	out      io.Writer
	problems int
	code     int
}

func newRunStatus(out io.Writer) *runStatus {
	return &runStatus{out: out}
}

// Warnf reports a problem that does not stop the run.
func (s *runStatus) Warnf(format string, args ...any) {
	s.count(errors.ExitUser)
	fmt.Fprintf(s.out, "%s: warning: %s\n", ProgName, fmt.Sprintf(format, args...))
}

// Errorf reports a failed action.
func (s *runStatus) Errorf(format string, args ...any) {
	s.count(errors.ExitSystem)
	fmt.Fprintf(s.out, "%s: %s\n", ProgName, fmt.Sprintf(format, args...))
}

func (s *runStatus) count(code int) {
	s.problems++
	s.code = max(s.code, code)
}

// Problems returns how many problems were reported.
func (s *runStatus) Problems() int {
	return s.problems
}

// Err returns nil when nothing was reported, else an ExitError without a
// message of its own.
func (s *runStatus) Err() error {
	if s.problems == 0 {
		return nil
	}
	return errors.NewExitError(nil, s.code)
}

// reason returns the bare cause of a file system error, e.g.
// "permission denied" rather than "open /x: permission denied".
func reason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
