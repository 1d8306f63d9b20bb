package aadcreport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedDiffEmptyWhenIdentical(t *testing.T) {
	lines := []string{"a", "b", "c"}
	assert.Equal(t, "", UnifiedDiff(lines, lines, "f.md"))
}

func TestUnifiedDiffShowsChangedLine(t *testing.T) {
	original := []string{"a", "b  ", "c"}
	revised := []string{"a", "b |", "c"}
	diff := UnifiedDiff(original, revised, "f.md")
	assert.True(t, strings.Contains(diff, "--- f.md"))
	assert.True(t, strings.Contains(diff, "-b  "))
	assert.True(t, strings.Contains(diff, "+b |"))
	assert.True(t, strings.Contains(diff, " a"))
	assert.True(t, strings.Contains(diff, " c"))
}

func TestUnifiedDiffHunkHeader(t *testing.T) {
	original := []string{"x"}
	revised := []string{"y"}
	diff := UnifiedDiff(original, revised, "f.md")
	assert.True(t, strings.Contains(diff, "@@"))
}

func TestUnifiedDiffSplitsWidelySeparatedChangesIntoMultipleHunks(t *testing.T) {
	original := make([]string, 40)
	revised := make([]string, 40)
	for i := range original {
		original[i] = "same"
		revised[i] = "same"
	}
	original[0] = "near-top"
	revised[0] = "near-top-changed"
	original[39] = "near-bottom"
	revised[39] = "near-bottom-changed"

	diff := UnifiedDiff(original, revised, "f.md")
	assert.Equal(t, 2, strings.Count(diff, "@@ -"))
}

func TestUnifiedDiffMergesNearbyChangesIntoOneHunk(t *testing.T) {
	original := []string{"a", "b", "c", "d", "e", "f", "g"}
	revised := []string{"a1", "b", "c", "d", "e", "f1", "g"}

	diff := UnifiedDiff(original, revised, "f.md")
	assert.Equal(t, 1, strings.Count(diff, "@@ -"))
}
