package fileutil

import (
	"bytes"
	"io"
	"io/fs"
	"os"

	"github.com/palmdev/palmdev-prep/internal/errors"
)

// MaxReadSize bounds files read back for comparison. A specs file covering
// every SDK ever shipped is a few kilobytes.
const MaxReadSize = 1 << 20

// ErrFileTooLarge indicates that a file exceeded the read limit.
var ErrFileTooLarge = errors.New("file too large")

// ReadFileWithLimit reads at most limit bytes of path, failing with
// ErrFileTooLarge when the file is longer. A limit of 0 or less means
// MaxReadSize.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = MaxReadSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s is %d bytes", path, info.Size())
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s exceeds %d bytes", path, limit)
	}

	return data, nil
}

// SameContent reports whether path holds exactly want. A missing file is
// not an error; it simply differs.
func SameContent(path string, want []byte) (bool, error) {
	// Anything longer than want differs, so read one byte past it.
	got, err := ReadFileWithLimit(path, int64(len(want))+1)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case errors.Is(err, ErrFileTooLarge):
		return false, nil
	case err != nil:
		return false, err
	}
	return bytes.Equal(got, want), nil
}
