package texdot

import (
	"os"
	"path/filepath"
	"strings"

	wferrors "github.com/matzehuels/workflowdot/pkg/errors"
)

// Extension is the file extension of emitted DOT files.
const Extension = ".dot"

// OutputPath derives the DOT file path from an input path by dropping the
// last '.'-delimited extension of the file name, if any, and appending
// [Extension]. Dots in directory names are left alone.
//
//	workflow.yaml   -> workflow.dot
//	workflow        -> workflow.dot
//	a.b.yaml        -> a.b.dot
func OutputPath(input string) string {
	return ReplaceExt(input, Extension)
}

// ReplaceExt replaces the last '.'-delimited extension of the file name in
// path with ext, or appends ext when the name has none.
func ReplaceExt(path, ext string) string {
	dir, base := filepath.Split(path)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return dir + base + ext
}

// ExportDOT writes dot to path, replacing any existing file.
func ExportDOT(path string, dot []byte) error {
	return WriteFileAtomic(path, dot)
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place. On failure the temporary file is removed and any existing
// file at path is left as it was.
func WriteFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return wferrors.Wrap(wferrors.ErrCodeWriteFailed, err, "create %s", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return wferrors.Wrap(wferrors.ErrCodeWriteFailed, err, "write %s", path)
	}
	if err = f.Close(); err != nil {
		return wferrors.Wrap(wferrors.ErrCodeWriteFailed, err, "close %s", path)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return wferrors.Wrap(wferrors.ErrCodeWriteFailed, err, "chmod %s", path)
	}
	if err = os.Rename(tmp, path); err != nil {
		return wferrors.Wrap(wferrors.ErrCodeWriteFailed, err, "rename into %s", path)
	}
	return nil
}
