// Package aadcconfig locates, loads, and merges .aadcrc/.aadcrc.toml
// configuration with CLI flags and the pipeline's built-in defaults.
package aadcconfig

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/jcorbin/aadc/diagram"
)

// Search walks upward from the directory containing firstInputPath, then
// falls back to $HOME, looking for .aadcrc, .aadcrc.toml, or aadcrc.toml.
func Search(firstInputPath string) (path string, found bool) {
	return findUpward(firstInputPath)
}

// FileConfig is the subset of diagram.Config recognized in a TOML config
// file. Pointer fields distinguish "absent" from "explicitly zero/empty"
// so Merge can apply CLI-beats-file-beats-defaults correctly.
type FileConfig struct {
	MinScore  *float64 `toml:"min_score"`
	Preset    *string  `toml:"preset"`
	MaxIters  *int     `toml:"max_iters"`
	TabWidth  *int     `toml:"tab_width"`
	AllBlocks *bool    `toml:"all_blocks"`
}

// Load decodes a TOML config file at path.
func Load(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	var fc FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// CLIOverrides mirrors FileConfig's presence-tracking shape for flags the
// user actually set on the command line (cobra reports this via
// Flags().Changed, not via zero values).
type CLIOverrides struct {
	MinScore  *float64
	Preset    *string
	MaxIters  *int
	TabWidth  *int
	AllBlocks *bool
}

// Merge applies CLI-beats-file-beats-defaults per option (spec §6's config
// file rule). The preset/min_score conflict is resolved by letting a CLI
// preset win outright; a file-level min_score is only consulted when
// neither CLI nor file specifies a preset.
func Merge(defaults diagram.Config, file FileConfig, cli CLIOverrides) diagram.Config {
	cfg := defaults

	if file.TabWidth != nil {
		cfg.TabWidth = *file.TabWidth
	}
	if file.MaxIters != nil {
		cfg.MaxIters = *file.MaxIters
	}
	if file.AllBlocks != nil {
		cfg.AllBlocks = *file.AllBlocks
	}
	if file.Preset != nil {
		cfg.Preset = diagram.Preset(*file.Preset)
	} else if file.MinScore != nil {
		cfg.MinScore = *file.MinScore
	}

	if cli.TabWidth != nil {
		cfg.TabWidth = *cli.TabWidth
	}
	if cli.MaxIters != nil {
		cfg.MaxIters = *cli.MaxIters
	}
	if cli.AllBlocks != nil {
		cfg.AllBlocks = *cli.AllBlocks
	}
	if cli.Preset != nil {
		cfg.Preset = diagram.Preset(*cli.Preset)
		cfg.MinScore = 0
	} else if cli.MinScore != nil {
		cfg.MinScore = *cli.MinScore
		cfg.Preset = ""
	}

	return cfg
}
