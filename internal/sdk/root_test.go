package sdk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmdev/palmdev-prep/internal/errors"
	"github.com/palmdev/palmdev-prep/internal/intern"
)

func TestNewRoot_Subdirectories(t *testing.T) {
	tests := []struct {
		name          string
		dirs          []string
		wantHeaders   string
		wantLibraries string
	}{
		{"conventional", []string{"sdk/include", "sdk/lib"}, "include", "lib"},
		{"legacy", []string{"sdk/Incs", "sdk/GCC Libraries"}, "Incs", "GCC Libraries"},
		{"conventional preferred", []string{"sdk/include", "sdk/Incs", "sdk/lib", "sdk/GCC Libraries"}, "include", "lib"},
		{"headers only", []string{"sdk/Incs"}, "Incs", ""},
		{"libraries only", []string{"sdk/lib"}, "", "lib"},
		{"nothing", []string{"sdk/docs"}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := tree(t, tt.dirs...)

			root, err := NewRoot(intern.New(), base, "sdk")
			require.NoError(t, err)

			assert.Equal(t, base+"/sdk", root.Prefix)
			assert.Equal(t, tt.wantHeaders, root.Headers)
			assert.Equal(t, tt.wantLibraries, root.Libraries)
			assert.Empty(t, root.Key)
		})
	}
}

func TestNewRoot_FileIsNotSubdirectory(t *testing.T) {
	base := tree(t, "sdk")
	writeFile(t, base+"/sdk/include")

	root, err := NewRoot(intern.New(), base, "sdk")
	require.NoError(t, err)
	assert.False(t, root.HasHeaders())
}

func TestNewRoot_BaseItself(t *testing.T) {
	base := tree(t, "include")

	root, err := NewRoot(intern.New(), base, "")
	require.NoError(t, err)
	assert.Equal(t, base, root.Prefix)
	assert.True(t, root.Useful())
}

func TestNewRoot_PathTooLong(t *testing.T) {
	long := "/" + strings.Repeat("x", MaxPathLen)

	_, err := NewRoot(intern.New(), long, "sdk-5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPathTooLong))
}

func TestJoinPath(t *testing.T) {
	got, err := JoinPath("/opt/palmdev", "sdk-5")
	require.NoError(t, err)
	assert.Equal(t, "/opt/palmdev/sdk-5", got)

	got, err = JoinPath("/opt/palmdev", "")
	require.NoError(t, err)
	assert.Equal(t, "/opt/palmdev", got)

	exact := strings.Repeat("a", MaxPathLen-2)
	_, err = JoinPath(exact, "b")
	assert.NoError(t, err, "a path of exactly MaxPathLen bytes is allowed")

	_, err = JoinPath(exact, "bc")
	assert.ErrorIs(t, err, errors.ErrPathTooLong)
}

func TestRoot_Dirs(t *testing.T) {
	root := &Root{Prefix: "/opt/palmdev/sdk-5", Headers: "include", Libraries: "GCC Libraries"}

	assert.Equal(t, "/opt/palmdev/sdk-5/include", root.HeadersDir())
	assert.Equal(t, "/opt/palmdev/sdk-5/GCC Libraries/m68k-palmos-coff", root.LibrariesDir("m68k-palmos-coff"))
	assert.Equal(t, "/opt/palmdev/sdk-5/GCC Libraries", root.LibrariesDir(""))

	empty := &Root{Prefix: "/opt/palmdev"}
	assert.Empty(t, empty.HeadersDir())
	assert.Empty(t, empty.LibrariesDir("m68k-palmos-coff"))
	assert.False(t, empty.Useful())
}
