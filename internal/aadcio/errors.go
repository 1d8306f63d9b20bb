// Package aadcio is the input/output boundary: reading a document into
// lines, validating it is neither binary nor invalid UTF-8, enforcing a
// size ceiling, and writing results back out (atomically, in place, with
// an optional backup).
package aadcio

import "fmt"

// InputError is satisfied by every error this package raises at the
// boundary, each carrying the source label (typically a file path or
// "<stdin>") the failure occurred on.
type InputError interface {
	error
	Source() string
}

// FileTooLargeError is raised when a document exceeds the configured byte
// ceiling before it is ever decoded.
type FileTooLargeError struct {
	source    string
	size, max int64
}

func (e *FileTooLargeError) Source() string { return e.source }

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: %d bytes exceeds the %d byte limit", e.source, e.size, e.max)
}

// BinaryInputError is raised when the input contains a NUL byte.
type BinaryInputError struct {
	source string
	offset int64
}

func (e *BinaryInputError) Source() string { return e.source }

func (e *BinaryInputError) Error() string {
	return fmt.Sprintf("%s: binary content detected at byte offset %d", e.source, e.offset)
}

// EncodingError is raised when the input is not valid UTF-8.
type EncodingError struct {
	source string
	offset int64
	b      byte
}

func (e *EncodingError) Source() string { return e.source }

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: invalid UTF-8 byte 0x%02x at offset %d", e.source, e.b, e.offset)
}
