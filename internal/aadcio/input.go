package aadcio

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultMaxBytes is the hard per-file ceiling (spec §5/§7): 100 MiB.
const DefaultMaxBytes int64 = 100 * 1024 * 1024

// ReadDocument reads the full stream, capped at maxBytes, and splits it
// into lines without terminators. trailingNewline reports whether the raw
// input ended with "\n", so a writer can reproduce the same convention.
func ReadDocument(source string, r io.Reader, maxBytes int64) (lines []string, trailingNewline bool, err error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	limited := io.LimitReader(r, maxBytes+1)
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(limited); err != nil {
		return nil, false, fmt.Errorf("%s: %w", source, err)
	}
	if int64(buf.Len()) > maxBytes {
		return nil, false, &FileTooLargeError{source: source, size: int64(buf.Len()), max: maxBytes}
	}

	data := buf.Bytes()
	if off := bytes.IndexByte(data, 0x00); off >= 0 {
		return nil, false, &BinaryInputError{source: source, offset: int64(off)}
	}

	if !utf8.Valid(data) {
		return nil, false, &EncodingError{source: source, offset: invalidOffset(data), b: invalidByte(data)}
	}

	content := string(data)
	trailingNewline = strings.HasSuffix(content, "\n")
	if trailingNewline {
		content = content[:len(content)-1]
	}
	if content == "" && !trailingNewline {
		return nil, false, nil
	}
	return strings.Split(content, "\n"), trailingNewline, nil
}

// invalidOffset locates the byte offset of the first invalid UTF-8
// sequence in data, which is already known to be invalid.
func invalidOffset(data []byte) int64 {
	var offset int64
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		data = data[size:]
		offset += int64(size)
	}
	return offset
}

func invalidByte(data []byte) byte {
	off := invalidOffset(data)
	if off < int64(len(data)) {
		return data[off]
	}
	return 0
}
