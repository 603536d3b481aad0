// Package fileutil provides the file helpers palmdev-prep uses for specs and
// config files: atomic replacement and bounded reads.
package fileutil

import (
	"bytes"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/palmdev/palmdev-prep/internal/errors"
)

// DefaultFilePerm is used for generated files, which the compiler driver
// must be able to read whoever runs it.
const DefaultFilePerm = 0o644

// AtomicWriteFile replaces path with data. The bytes go to a hidden sibling
// ".<name>.*.tmp" first, are synced, then renamed over path, so a reader such
// as a running gcc sees either the old file or the new one.
//
// The parent directory must exist. Errors keep their *fs.PathError cause so
// callers can test for fs.ErrPermission.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			os.Remove(tmpName)
		}
	}()

	if err := writeSynced(tmp, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	renamed = true
	return nil
}

// writeSynced fills f and closes it; f is closed on every path.
func writeSynced(f *os.File, data []byte, perm os.FileMode) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := f.Chmod(perm); err != nil {
		f.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return errors.Wrap(err, "syncing temp file")
	}
	return errors.Wrap(f.Close(), "closing temp file")
}

// AtomicWriteYAML encodes v with MarshalYAML and writes it with
// AtomicWriteFile. The parent directory must exist.
func AtomicWriteYAML(path string, v any) error {
	data, err := MarshalYAML(v)
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, data, DefaultFilePerm)
}

// MarshalYAML encodes v as a YAML document with two-space indentation.
// The result always ends in a newline.
func MarshalYAML(v any) (data []byte, err error) {
	// yaml.v3 panics on unencodable values such as channels
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, errors.Newf("marshaling YAML: %v", r)
		}
	}()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "marshaling YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "marshaling YAML")
	}
	return buf.Bytes(), nil
}
