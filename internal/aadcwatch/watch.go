// Package aadcwatch re-runs a function on file changes, debounced so
// editors that write-then-rename in quick succession trigger one run per
// quiet period rather than one run per event.
package aadcwatch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// IOError wraps a watch-subscription failure (spec §7).
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// Watch subscribes to file, debouncing write events by debounce before
// calling run. It blocks until ctx is cancelled or the watcher fails.
func Watch(ctx context.Context, file string, debounce time.Duration, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return &IOError{Path: file, Err: err}
	}
	defer watcher.Close()

	dir := filepath.Dir(file)
	if err := watcher.Add(dir); err != nil {
		return &IOError{Path: file, Err: err}
	}

	base := filepath.Base(file)
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if err := run(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return &IOError{Path: file, Err: err}
		}
	}
}
