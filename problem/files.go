// SPDX-License-Identifier: MIT
// Package: tfim/problem
//
// files.go: atomic file writes and JSON helpers.
//
// Contract:
//   • Writes go to a temp file in the target directory and are renamed in place.
//   • A failed write leaves the previous file untouched.
//   • JSON is indented with two spaces.

package problem

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const jsonIndent = "  "

// WriteFileAtomic writes data to path through a temp file in the same
// directory and a rename. Parent directories are created as needed.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create directory %s", dir)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "create temp file for %s", path)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp.Name())
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrapf(err, "chmod %s", tmp.Name())
	}

	return errors.Wrapf(os.Rename(tmp.Name(), path), "rename to %s", path)
}

// writeJSON stores v as indented JSON.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}

	return WriteFileAtomic(path, data)
}

// readJSON decodes the whole file at path into v.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	return errors.Wrapf(json.Unmarshal(data, v), "decode %s", path)
}
