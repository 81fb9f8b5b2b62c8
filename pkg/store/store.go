package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	relerrors "github.com/releasetools/relkit/pkg/errors"
)

// Store reads and writes the single-line VERSION file.
type Store struct {
	path string
}

// New creates a Store over the version file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the version file path.
func (s *Store) Path() string {
	return s.path
}

// Read returns the trimmed version text. It fails with NOT_FOUND when the
// file is absent and EMPTY_OR_INVALID when it is blank. Grammar validation
// happens in the caller, so the parse error can carry the offending text.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", relerrors.Wrap(relerrors.ErrCodeNotFound,
				fmt.Sprintf("version file %s not found", s.path), err)
		}
		return "", relerrors.Wrap(relerrors.ErrCodeNotFound,
			fmt.Sprintf("reading version file %s", s.path), err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", relerrors.Newf(relerrors.ErrCodeEmptyOrInvalid,
			"version file %s is empty", s.path)
	}
	return text, nil
}

// Write persists text plus a trailing newline, atomically: the new content
// is written to a temp file in the same directory and renamed over the
// target, so a failed write leaves the previous version intact.
func (s *Store) Write(text string) error {
	if err := writeFileAtomic(s.path, []byte(text+"\n"), 0o644); err != nil {
		return relerrors.Wrap(relerrors.ErrCodeWrite,
			fmt.Sprintf("writing version file %s", s.path), err)
	}
	return nil
}

// writeFileAtomic writes data to path using a temp file + rename. The temp
// file is created in the same directory as path so the rename is atomic on
// POSIX. On failure the original file, if any, is left unchanged.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".relkit-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}
