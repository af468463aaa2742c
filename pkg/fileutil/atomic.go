// Package fileutil provides file system helpers for writing and reading
// whole files safely.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/clams-bin/clams/internal/errors"
)

// ErrExists is returned by CreateFile when the target path is already taken.
var ErrExists = errors.New("file already exists")

// CreateFile writes data to a new file at path without ever exposing a
// partially written file. The content goes to a temp file in the same
// directory which is then hard-linked into place, so an existing path is
// never replaced and ErrExists is returned instead.
//
// The caller is responsible for ensuring the parent directory exists.
func CreateFile(path string, data []byte, perm os.FileMode) error {
	tmpName, err := writeTemp(filepath.Dir(path), data, perm)
	if err != nil {
		return err
	}
	defer os.Remove(tmpName)

	if err := os.Link(tmpName, path); err != nil {
		if os.IsExist(err) {
			return errors.Mark(errors.Wrapf(err, "creating %s", path), ErrExists)
		}
		return errors.Wrap(err, "linking temp file")
	}
	return nil
}

// writeTemp stores data in a fresh temp file inside dir and returns its name.
// The temp file is removed again on any failure.
func writeTemp(dir string, data []byte, perm os.FileMode) (string, error) {
	tmp, err := os.CreateTemp(dir, ".clams-atomic-*.tmp")
	if err != nil {
		return "", errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	fail := func(err error, msg string) (string, error) {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, msg)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail(err, "setting file permissions")
	}
	if err := tmp.Sync(); err != nil {
		return fail(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(err, "closing temp file")
	}
	return tmpName, nil
}
