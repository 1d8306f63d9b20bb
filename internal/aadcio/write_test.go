package aadcio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStreamJoinsWithoutForcingNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStream(&buf, []string{"a", "b"}, false))
	assert.Equal(t, "a\nb", buf.String())
}

func TestWriteStreamPreservesTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStream(&buf, []string{"a", "b"}, true))
	assert.Equal(t, "a\nb\n", buf.String())
}

func TestWriteInPlaceReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	require.NoError(t, WriteInPlace(path, []string{"new", "content"}, ""))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\ncontent\n", string(got))
}

func TestWriteInPlaceWithBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	require.NoError(t, WriteInPlace(path, []string{"new"}, ".bak"))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(backup))

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(current))
}
