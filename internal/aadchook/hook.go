// Package aadchook installs, removes, and reports on a generated git
// pre-commit hook that runs aadc over staged files.
package aadchook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// hookMarker identifies aadc-generated hooks so reinstallation is
// idempotent and uninstall refuses to touch a hand-written hook.
const hookMarker = "# aadc pre-commit hook"

// DefaultPatterns mirrors the patterns a bare `aadc hook install` protects.
var DefaultPatterns = []string{"*.md", "*.txt"}

// Mode selects which generated script InstallPreCommit writes.
type Mode int

const (
	// ModeCheck blocks the commit when a staged file would change.
	ModeCheck Mode = iota
	// ModeAutoFix rewrites staged files in place and re-stages them.
	ModeAutoFix
)

func (m Mode) label() string {
	if m == ModeAutoFix {
		return "auto-fix mode"
	}
	return "check mode"
}

// InstallPreCommit writes repoRoot/.git/hooks/pre-commit. An existing hook
// not carrying hookMarker is backed up to pre-commit.pre-aadc before being
// replaced; an existing aadc hook is simply overwritten (idempotent).
func InstallPreCommit(repoRoot string, mode Mode, patterns []string) error {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	hooksDir := filepath.Join(repoRoot, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("create hooks dir: %w", err)
	}

	hookPath := filepath.Join(hooksDir, "pre-commit")
	if existing, err := os.ReadFile(hookPath); err == nil {
		if !strings.Contains(string(existing), hookMarker) {
			backupPath := hookPath + ".pre-aadc"
			if err := os.WriteFile(backupPath, existing, 0o644); err != nil {
				return fmt.Errorf("backup existing hook: %w", err)
			}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read existing hook: %w", err)
	}

	script := generateHook(mode, patterns)
	if err := os.WriteFile(hookPath, []byte(script), 0o755); err != nil {
		return fmt.Errorf("write hook: %w", err)
	}
	return nil
}

// UninstallPreCommit removes repoRoot/.git/hooks/pre-commit if and only if
// it carries hookMarker. A non-aadc hook is left untouched.
func UninstallPreCommit(repoRoot string) (removed bool, err error) {
	hookPath := filepath.Join(repoRoot, ".git", "hooks", "pre-commit")
	content, err := os.ReadFile(hookPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read hook: %w", err)
	}
	if !strings.Contains(string(content), hookMarker) {
		return false, nil
	}
	if err := os.Remove(hookPath); err != nil {
		return false, fmt.Errorf("remove hook: %w", err)
	}
	return true, nil
}

// Status reports what, if anything, is installed at
// repoRoot/.git/hooks/pre-commit.
func Status(repoRoot string) (installed bool, mode Mode, foreign bool, err error) {
	hookPath := filepath.Join(repoRoot, ".git", "hooks", "pre-commit")
	content, err := os.ReadFile(hookPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, false, nil
		}
		return false, 0, false, fmt.Errorf("read hook: %w", err)
	}

	text := string(content)
	switch {
	case strings.Contains(text, hookMarker+" ("+ModeCheck.label()+")"):
		return true, ModeCheck, false, nil
	case strings.Contains(text, hookMarker+" ("+ModeAutoFix.label()+")"):
		return true, ModeAutoFix, false, nil
	case strings.Contains(text, hookMarker):
		return true, ModeCheck, false, nil
	default:
		return true, 0, true, nil
	}
}

func generateHook(mode Mode, patterns []string) string {
	marker := fmt.Sprintf("%s (%s)", hookMarker, mode.label())
	patternList := quotedArgs(patterns)

	var body string
	if mode == ModeAutoFix {
		body = `modified=0
for file in $files; do
    if ! aadc --dry-run "$file" > /dev/null 2>&1; then
        echo "aadc: Auto-fixing diagrams: $file"
        aadc -i "$file"
        git add "$file"
        modified=$((modified+1))
    fi
done

if [[ $modified -gt 0 ]]; then
    echo "aadc: Auto-fixed $modified file(s)"
fi
`
	} else {
		body = `failed=0
for file in $files; do
    if ! aadc --dry-run "$file" > /dev/null 2>&1; then
        echo "aadc: Diagram alignment needed: $file"
        failed=$((failed+1))
    fi
done

if [[ $failed -gt 0 ]]; then
    echo ""
    echo "Run 'aadc -i <file>' to fix, or 'git commit --no-verify' to skip"
    exit 1
fi
`
	}

	return fmt.Sprintf(`#!/usr/bin/env bash
%s
# Generated by: aadc hook install
set -e

PATTERNS="%s"

staged_files() {
    for pattern in $PATTERNS; do
        git diff --cached --name-only --diff-filter=ACM | grep -E "${pattern//\*/.*}" || true
    done | sort -u
}

files=$(staged_files)
if [[ -z "$files" ]]; then
    exit 0
fi

%s`, marker, patternList, body)
}
