package aadchook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "hooks"), 0o755))
	return root
}

func TestInstallPreCommitCheckMode(t *testing.T) {
	root := setupRepo(t)
	require.NoError(t, InstallPreCommit(root, ModeCheck, nil))

	content, err := os.ReadFile(filepath.Join(root, ".git", "hooks", "pre-commit"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# aadc pre-commit hook (check mode)")
	assert.Contains(t, string(content), "aadc --dry-run")
	assert.NotContains(t, string(content), `aadc -i "$file"`)
}

func TestInstallPreCommitAutoFixMode(t *testing.T) {
	root := setupRepo(t)
	require.NoError(t, InstallPreCommit(root, ModeAutoFix, []string{"*.md"}))

	content, err := os.ReadFile(filepath.Join(root, ".git", "hooks", "pre-commit"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# aadc pre-commit hook (auto-fix mode)")
	assert.Contains(t, string(content), `aadc -i "$file"`)
	assert.Contains(t, string(content), "git add")
}

func TestInstallPreCommitBacksUpForeignHook(t *testing.T) {
	root := setupRepo(t)
	hookPath := filepath.Join(root, ".git", "hooks", "pre-commit")
	require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/bash\necho existing"), 0o755))

	require.NoError(t, InstallPreCommit(root, ModeCheck, nil))

	backup, err := os.ReadFile(hookPath + ".pre-aadc")
	require.NoError(t, err)
	assert.Contains(t, string(backup), "existing")

	current, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Contains(t, string(current), hookMarker)
}

func TestUninstallPreCommitRemovesAadcHook(t *testing.T) {
	root := setupRepo(t)
	require.NoError(t, InstallPreCommit(root, ModeCheck, nil))

	removed, err := UninstallPreCommit(root)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = os.Stat(filepath.Join(root, ".git", "hooks", "pre-commit"))
	assert.True(t, os.IsNotExist(err))
}

func TestUninstallPreCommitRefusesForeignHook(t *testing.T) {
	root := setupRepo(t)
	hookPath := filepath.Join(root, ".git", "hooks", "pre-commit")
	require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/bash\necho other"), 0o755))

	removed, err := UninstallPreCommit(root)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = os.Stat(hookPath)
	require.NoError(t, err)
}

func TestStatusReportsNoHook(t *testing.T) {
	root := setupRepo(t)
	installed, _, _, err := Status(root)
	require.NoError(t, err)
	assert.False(t, installed)
}

func TestStatusReportsMode(t *testing.T) {
	root := setupRepo(t)
	require.NoError(t, InstallPreCommit(root, ModeAutoFix, nil))

	installed, mode, foreign, err := Status(root)
	require.NoError(t, err)
	assert.True(t, installed)
	assert.Equal(t, ModeAutoFix, mode)
	assert.False(t, foreign)
}

func TestStatusReportsForeignHook(t *testing.T) {
	root := setupRepo(t)
	hookPath := filepath.Join(root, ".git", "hooks", "pre-commit")
	require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/bash\necho other"), 0o755))

	installed, _, foreign, err := Status(root)
	require.NoError(t, err)
	assert.True(t, installed)
	assert.True(t, foreign)
}
