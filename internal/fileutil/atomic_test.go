package fileutil

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "result.txt")
	err := WriteAtomic(target, 0o600, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello world")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteAtomicFailureKeepsOldFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "result.txt")
	require.NoError(t, os.WriteFile(target, []byte("original"), 0o644))

	boom := errors.New("boom")
	err := WriteAtomic(target, 0o644, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be removed")
}

func TestWriteAtomicMissingDirectory(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "missing", "result.txt")
	err := WriteAtomic(target, 0o644, func(io.Writer) error { return nil })
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "odds.json")
	require.NoError(t, WriteJSON(target, map[string]float64{"equity": 0.75}))

	data, err := os.ReadFile(target)
	require.NoError(t, err)

	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 0.75, decoded["equity"])
}

func TestWriteJSONUnsupportedValue(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "odds.json")
	err := WriteJSON(target, make(chan int))
	require.Error(t, err)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}
