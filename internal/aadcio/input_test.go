package aadcio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocumentSplitsLines(t *testing.T) {
	lines, trailing, err := ReadDocument("<stdin>", strings.NewReader("a\nb\nc\n"), 0)
	require.NoError(t, err)
	assert.True(t, trailing)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestReadDocumentNoTrailingNewline(t *testing.T) {
	lines, trailing, err := ReadDocument("<stdin>", strings.NewReader("a\nb"), 0)
	require.NoError(t, err)
	assert.False(t, trailing)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestReadDocumentEmpty(t *testing.T) {
	lines, trailing, err := ReadDocument("<stdin>", strings.NewReader(""), 0)
	require.NoError(t, err)
	assert.False(t, trailing)
	assert.Nil(t, lines)
}

func TestReadDocumentRejectsBinary(t *testing.T) {
	_, _, err := ReadDocument("f.txt", bytes.NewReader([]byte("abc\x00def")), 0)
	require.Error(t, err)
	var binErr *BinaryInputError
	require.ErrorAs(t, err, &binErr)
	assert.Equal(t, "f.txt", binErr.Source())
}

func TestReadDocumentRejectsInvalidUTF8(t *testing.T) {
	_, _, err := ReadDocument("f.txt", bytes.NewReader([]byte{'a', 0xff, 'b'}), 0)
	require.Error(t, err)
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, int64(1), encErr.offset)
}

func TestReadDocumentRejectsOversize(t *testing.T) {
	_, _, err := ReadDocument("f.txt", strings.NewReader("0123456789"), 5)
	require.Error(t, err)
	var tooLarge *FileTooLargeError
	require.ErrorAs(t, err, &tooLarge)
}
