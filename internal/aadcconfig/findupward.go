package aadcconfig

import (
	"os"
	"path/filepath"
)

// configNames are tried, in order, at every directory visited by findUpward.
var configNames = []string{".aadcrc", ".aadcrc.toml", "aadcrc.toml"}

// findUpward looks for one of configNames starting at the directory
// containing startPath, then each parent directory, finally $HOME.
// Returns the absolute path to the first match found.
func findUpward(startPath string) (path string, found bool) {
	dir, err := filepath.Abs(filepath.Dir(startPath))
	if err != nil {
		dir = filepath.Dir(startPath)
	}

	for d := dir; ; {
		for _, name := range configNames {
			candidate := filepath.Join(d, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range configNames {
			candidate := filepath.Join(home, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
	}

	return "", false
}
