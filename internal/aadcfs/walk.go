// Package aadcfs discovers input files for a recursive run: walking
// directory trees, filtering by glob pattern, honoring .gitignore files
// along the way, and bounding traversal depth.
package aadcfs

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns mirrors the original tool's DEFAULT_PATTERNS, applied
// only when a walked root is a directory, never to an explicit file
// argument.
var DefaultPatterns = []string{"*.md", "*.txt"}

// WalkOptions configures Walk.
type WalkOptions struct {
	// Patterns are glob patterns (doublestar syntax) a file's base name
	// must match at least one of. Empty means DefaultPatterns.
	Patterns []string
	// MaxDepth bounds recursion below each root; 0 means unbounded.
	MaxDepth int
	// Gitignore honors .gitignore files found along the way.
	Gitignore bool
}

// Walk discovers files under roots. A root that is a regular file is
// always included, bypassing pattern filtering. A root that is a
// directory is walked recursively, filtered by Patterns and any
// applicable .gitignore rules, and bounded by MaxDepth.
func Walk(roots []string, opts WalkOptions) ([]string, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	var files []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}

		ignores := newIgnoreSet(opts.Gitignore)
		rootDepth := strings.Count(filepath.Clean(root), string(filepath.Separator))

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if opts.Gitignore {
					ignores.loadDir(path)
				}
				if opts.MaxDepth > 0 && path != root {
					depth := strings.Count(filepath.Clean(path), string(filepath.Separator)) - rootDepth
					if depth > opts.MaxDepth {
						return filepath.SkipDir
					}
				}
				return nil
			}
			if opts.Gitignore && ignores.matches(path) {
				return nil
			}
			if !matchesAny(patterns, filepath.Base(path)) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func matchesAny(patterns []string, name string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ignoreSet accumulates .gitignore patterns discovered while walking,
// applying doublestar matching against each ignored path's base name and
// its path relative to the .gitignore's directory. This is a simple
// line-based matcher, not a full gitignore implementation (no
// negation, no directory-only trailing-slash distinction); see DESIGN.md.
type ignoreSet struct {
	enabled  bool
	patterns []ignorePattern
}

type ignorePattern struct {
	dir  string
	glob string
}

func newIgnoreSet(enabled bool) *ignoreSet {
	return &ignoreSet{enabled: enabled}
}

func (s *ignoreSet) loadDir(dir string) {
	if !s.enabled {
		return
	}
	f, err := os.Open(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.patterns = append(s.patterns, ignorePattern{dir: dir, glob: line})
	}
}

func (s *ignoreSet) matches(path string) bool {
	if !s.enabled {
		return false
	}
	base := filepath.Base(path)
	for _, p := range s.patterns {
		if ok, _ := doublestar.Match(p.glob, base); ok {
			return true
		}
		if rel, err := filepath.Rel(p.dir, path); err == nil {
			if ok, _ := doublestar.Match(p.glob, rel); ok {
				return true
			}
		}
	}
	return false
}
