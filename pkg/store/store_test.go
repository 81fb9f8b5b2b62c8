package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relerrors "github.com/releasetools/relkit/pkg/errors"
)

func TestReadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "VERSION"))

	_, err := s.Read()
	require.Error(t, err)
	assert.Equal(t, relerrors.ErrCodeNotFound, relerrors.CodeOf(err))
}

func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "VERSION")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o644))

	_, err := New(path).Read()
	require.Error(t, err)
	assert.Equal(t, relerrors.ErrCodeEmptyOrInvalid, relerrors.CodeOf(err))
}

func TestReadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "VERSION")
	require.NoError(t, os.WriteFile(path, []byte("  1.2.3\n"), 0o644))

	text, err := New(path).Read()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", text)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "VERSION")
	s := New(path)

	require.NoError(t, s.Write("0.4.0"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.4.0\n", string(data), "version text must end with a newline")

	text, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "0.4.0", text)
}

func TestWriteOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "VERSION")
	s := New(path)
	require.NoError(t, s.Write("1.0.0"))
	require.NoError(t, s.Write("1.0.1"))

	text, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "1.0.1", text)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "VERSION"))
	require.NoError(t, s.Write("1.0.0"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the version file should remain")
}

func TestWriteToMissingDirFails(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope", "VERSION"))

	err := s.Write("1.0.0")
	require.Error(t, err)
	assert.Equal(t, relerrors.ErrCodeWrite, relerrors.CodeOf(err))
}
