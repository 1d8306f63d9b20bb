package aadcconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/aadc/diagram"
)

func TestSearchFindsConfigInParentDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".aadcrc.toml"), []byte("tab_width = 2\n"), 0o644))

	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	target := filepath.Join(sub, "doc.md")
	require.NoError(t, os.WriteFile(target, nil, 0o644))

	path, found := Search(target)
	require.True(t, found)
	assert.Equal(t, filepath.Join(root, ".aadcrc.toml"), path)
}

func TestLoadDecodesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".aadcrc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
min_score = 0.6
preset = "strict"
max_iters = 5
tab_width = 2
all_blocks = true
`), 0o644))

	fc, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, fc.MinScore)
	assert.Equal(t, 0.6, *fc.MinScore)
	require.NotNil(t, fc.Preset)
	assert.Equal(t, "strict", *fc.Preset)
	require.NotNil(t, fc.MaxIters)
	assert.Equal(t, 5, *fc.MaxIters)
	require.NotNil(t, fc.TabWidth)
	assert.Equal(t, 2, *fc.TabWidth)
	require.NotNil(t, fc.AllBlocks)
	assert.True(t, *fc.AllBlocks)
}

func TestMergePrecedence(t *testing.T) {
	defaults := diagram.DefaultConfig()

	t.Run("file overrides defaults", func(t *testing.T) {
		tw := 8
		cfg := Merge(defaults, FileConfig{TabWidth: &tw}, CLIOverrides{})
		assert.Equal(t, 8, cfg.TabWidth)
	})

	t.Run("cli overrides file", func(t *testing.T) {
		fileTW, cliTW := 8, 2
		cfg := Merge(defaults, FileConfig{TabWidth: &fileTW}, CLIOverrides{TabWidth: &cliTW})
		assert.Equal(t, 2, cfg.TabWidth)
	})

	t.Run("file preset beats file min_score", func(t *testing.T) {
		ms := 0.9
		preset := "relaxed"
		cfg := Merge(defaults, FileConfig{MinScore: &ms, Preset: &preset}, CLIOverrides{})
		assert.Equal(t, diagram.PresetRelaxed, cfg.Preset)
	})

	t.Run("cli preset wins outright over file min_score", func(t *testing.T) {
		ms := 0.9
		cliPreset := "strict"
		cfg := Merge(defaults, FileConfig{MinScore: &ms}, CLIOverrides{Preset: &cliPreset})
		assert.Equal(t, diagram.PresetStrict, cfg.Preset)
	})

	t.Run("cli min_score clears a file preset", func(t *testing.T) {
		filePreset := "strict"
		cliMS := 0.2
		cfg := Merge(defaults, FileConfig{Preset: &filePreset}, CLIOverrides{MinScore: &cliMS})
		assert.Equal(t, diagram.Preset(""), cfg.Preset)
		assert.Equal(t, 0.2, cfg.MinScore)
	})
}
