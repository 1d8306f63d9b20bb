package aadcio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/renameio"
)

// WriteStream writes the corrected lines to w, joined by "\n". It never
// forces a trailing newline beyond what trailingNewline records, matching
// the non-in-place output rule (spec §6).
func WriteStream(w io.Writer, lines []string, trailingNewline bool) error {
	out := strings.Join(lines, "\n")
	if trailingNewline && len(lines) > 0 {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}

// WriteInPlace atomically replaces path's contents with lines, joined by
// "\n" and terminated by a single trailing "\n" when the document is
// non-empty (spec §6). Grounded on cmd/poc/main.go's
// renameio.TempFile(dir, path) + CloseAtomicallyReplace pattern.
func WriteInPlace(path string, lines []string, backupExt string) (rerr error) {
	if backupExt != "" {
		if err := backupFile(path, backupExt); err != nil {
			return err
		}
	}

	pf, err := renameio.TempFile("", path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer func() {
		if rerr == nil {
			rerr = pf.CloseAtomicallyReplace()
		}
		_ = pf.Cleanup()
	}()

	out := strings.Join(lines, "\n")
	if len(lines) > 0 {
		out += "\n"
	}
	_, err = io.WriteString(pf, out)
	return err
}

// backupFile copies path's current on-disk contents to path+ext before an
// in-place write replaces it. Uses io.CopyN against the file's observed
// size rather than io.Copy so a file growing concurrently under us still
// yields a backup of a consistent, bounded length.
func backupFile(path, ext string) (rerr error) {
	src, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%s: backup: %w", path, err)
	}
	defer src.Close()

	st, err := src.Stat()
	if err != nil {
		return fmt.Errorf("%s: backup: %w", path, err)
	}

	dst, err := os.OpenFile(path+ext, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%s: backup: %w", path, err)
	}
	defer func() {
		if cerr := dst.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	_, err = io.CopyN(dst, src, st.Size())
	if err == io.EOF {
		err = nil
	}
	return err
}
