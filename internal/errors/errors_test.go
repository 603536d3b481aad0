package errors

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Error(t *testing.T) {
	assert.Equal(t, "SDK not found", NewExitError(ErrSDKNotFound, ExitUser).Error())
	assert.Equal(t, "SDK '5': SDK not found",
		NewUserError(Wrapf(ErrSDKNotFound, "SDK '%s'", "5"), "").Error())
	assert.Equal(t, "exit code 2", NewExitError(nil, ExitSystem).Error())
}

func TestExitError_Chain(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/usr/lib/gcc/m68k-palmos/specs", Err: fs.ErrPermission}
	marked := Mark(Wrap(cause, "writing specs"), ErrPermissionDenied)
	wrapped := Wrap(NewSystemError(marked, ""), "prepare")

	var exitErr *ExitError
	require.True(t, As(wrapped, &exitErr))
	assert.Equal(t, ExitSystem, exitErr.Code)
	assert.True(t, Is(wrapped, ErrPermissionDenied))
	assert.True(t, Is(wrapped, fs.ErrPermission))
	assert.False(t, Is(wrapped, ErrWriteFailed))

	var pathErr *fs.PathError
	require.True(t, As(wrapped, &pathErr))
	assert.Equal(t, "/usr/lib/gcc/m68k-palmos/specs", pathErr.Path)

	assert.Nil(t, NewExitError(nil, ExitUser).Unwrap())
}

func TestExitError_Hint(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{"none", NewExitError(ErrNotFound, ExitUser), ""},
		{"nil error", NewExitError(nil, ExitUser), ""},
		{"suggestion", NewUserError(ErrNotFound, "Use --format json"), "Use --format json"},
		{
			"hint then suggestion",
			NewConfigError(WithHint(ErrNotFound, "Create one with: palmdev-prep config init")),
			"Create one with: palmdev-prep config init\nCheck the file shown by: palmdev-prep config path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Hint())
		})
	}
}

func TestConstructors(t *testing.T) {
	err := New("boom")

	user := NewUserError(err, "check flags")
	assert.Equal(t, ExitUser, user.Code)
	assert.Equal(t, "check flags", user.Suggestion)

	sys := NewSystemError(err, "")
	assert.Equal(t, ExitSystem, sys.Code)
	assert.Empty(t, sys.Suggestion)

	cfg := NewConfigError(err)
	assert.Equal(t, ExitUser, cfg.Code)
	assert.Contains(t, cfg.Suggestion, "config path")
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", New("x"), ExitUser},
		{"exit error", NewExitError(nil, ExitSystem), ExitSystem},
		{"wrapped exit error", Wrap(NewSystemError(ErrWriteFailed, ""), "writing"), ExitSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestSentinels_Distinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrInvalidConfig, ErrPathTooLong, ErrSDKNotFound, ErrPermissionDenied, ErrWriteFailed}
	for i, a := range sentinels {
		for j, b := range sentinels {
			assert.Equal(t, i == j, Is(a, b), "Is(%v, %v)", a, b)
		}
	}
}

func TestMark_KeepsSentinelThroughWrap(t *testing.T) {
	_, statErr := os.Stat("/nonexistent/palmdev.yaml")
	err := Wrap(Mark(Wrapf(statErr, "config file not found at %s", "/nonexistent/palmdev.yaml"), ErrNotFound), "loading")

	assert.True(t, Is(err, ErrNotFound))
	assert.True(t, Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "config file not found at /nonexistent/palmdev.yaml")
}

func TestJoin(t *testing.T) {
	err := Join(ErrWriteFailed, nil, ErrPermissionDenied)
	assert.True(t, Is(err, ErrWriteFailed))
	assert.True(t, Is(err, ErrPermissionDenied))
	assert.Nil(t, Join(nil, nil))
}
