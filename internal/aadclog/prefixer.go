// Package aadclog provides the small set of writer helpers cmd/aadc needs
// for diagnostic output during a recursive, multi-file run: tagging each
// line with its source file and latching the first write failure so a
// flood of files can't mask which one actually broke.
package aadclog

import (
	"bytes"
	"io"
)

// ErrWriter wraps a writer, latching its first error and refusing further
// writes afterward. cmd/aadc's recursive run shares one ErrWriter across
// every file's diagnostics so a single failing stderr write is reported
// once instead of once per remaining file.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer until an error is seen, after which it
// short-circuits and returns that error without touching Writer again.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err != nil {
		return 0, ew.Err
	}
	n, err = ew.Writer.Write(p)
	if err != nil {
		ew.Err = err
	}
	return n, err
}

// Prefixer tags every line written through it with a fixed prefix. A
// recursive aadc run gives each file its own Prefixer over a shared
// stderr so diagnostics from many files can interleave without losing
// track of which file produced which line.
type Prefixer struct {
	Prefix string
	// Skip suppresses the next prefix once; set it when the caller is
	// about to continue a line someone else already started.
	Skip bool

	to    io.Writer
	atBOL bool
}

// PrefixWriter returns a Prefixer that writes prefix-tagged lines to w.
func PrefixWriter(prefix string, w io.Writer) *Prefixer {
	return &Prefixer{Prefix: prefix, to: w, atBOL: true}
}

// Write emits b to the underlying writer, inserting Prefix at the start
// of every line.
func (p *Prefixer) Write(b []byte) (n int, err error) {
	for len(b) > 0 {
		if p.atBOL {
			if err := p.emitPrefix(); err != nil {
				return n, err
			}
		}
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			m, err := p.to.Write(b)
			n += m
			p.atBOL = false
			return n, err
		}
		m, err := p.to.Write(b[:i+1])
		n += m
		if err != nil {
			return n, err
		}
		b = b[i+1:]
		p.atBOL = true
	}
	return n, nil
}

func (p *Prefixer) emitPrefix() error {
	if p.Skip {
		p.Skip = false
		return nil
	}
	_, err := io.WriteString(p.to, p.Prefix)
	return err
}

// Close is a no-op: Prefixer holds no buffered bytes, only the
// end-of-previous-write line-start flag. It exists so callers that treat
// diagnostic sinks as io.WriteCloser don't need a special case for it.
func (p *Prefixer) Close() error { return nil }
