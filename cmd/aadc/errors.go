package main

import (
	"errors"

	"github.com/jcorbin/aadc/diagram"
	"github.com/jcorbin/aadc/internal/aadcio"
	"github.com/jcorbin/aadc/internal/aadcwatch"
)

// Exit codes, per spec §6/§7.
const (
	exitSuccess      = 0
	exitGeneralError = 1
	exitInvalidArgs  = 2
	exitWouldChange  = 3
	exitParseError   = 4
)

// exitCodeForError maps a returned error to its exit code precedence.
// InternalInvariantError never escapes the core, so it has no case here.
func exitCodeForError(err error) int {
	if err == nil {
		return exitSuccess
	}

	var argErr *diagram.ArgumentError
	if errors.As(err, &argErr) {
		return exitInvalidArgs
	}

	var binErr *aadcio.BinaryInputError
	if errors.As(err, &binErr) {
		return exitParseError
	}
	var encErr *aadcio.EncodingError
	if errors.As(err, &encErr) {
		return exitParseError
	}

	var tooLarge *aadcio.FileTooLargeError
	if errors.As(err, &tooLarge) {
		return exitGeneralError
	}
	var ioErr *aadcwatch.IOError
	if errors.As(err, &ioErr) {
		return exitGeneralError
	}

	return exitGeneralError
}
