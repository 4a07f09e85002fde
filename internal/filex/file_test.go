package filex

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNested(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "report.csv")

	require.NoError(t, EnsureParentDir(target))

	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveStream_WritesFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "qr", "A1.png")

	err := SaveStream(target, func(w io.Writer) error {
		_, err := io.WriteString(w, "png-bytes")
		return err
	})
	require.NoError(t, err)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(got))
}

func TestSaveStream_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "A1.pdf")
	boom := errors.New("connection reset")

	err := SaveStream(target, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file must be removed")
}
