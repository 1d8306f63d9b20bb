package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/aadc/diagram"
)

func TestDetectBlocksSingle(t *testing.T) {
	lines := []string{
		"+------+",
		"| a    |",
		"+------+",
	}
	blocks := diagram.DetectBlocks(lines, false)
	require.Len(t, blocks, 1)
	assert.Equal(t, 0, blocks[0].Start)
	assert.Equal(t, 3, blocks[0].End)
	assert.GreaterOrEqual(t, blocks[0].Confidence, 0.3)
}

func TestDetectBlocksNoDiagram(t *testing.T) {
	lines := []string{"Just plain text.", "No diagrams here."}
	blocks := diagram.DetectBlocks(lines, false)
	assert.Empty(t, blocks)
}

func TestDetectBlocksOneBlankGapTolerated(t *testing.T) {
	lines := []string{
		"+------+",
		"| a    |",
		"",
		"| b    |",
		"+------+",
	}
	blocks := diagram.DetectBlocks(lines, false)
	require.Len(t, blocks, 1)
	assert.Equal(t, 0, blocks[0].Start)
	assert.Equal(t, 5, blocks[0].End)
}

func TestDetectBlocksTwoBlankGapSplits(t *testing.T) {
	lines := []string{
		"+--+",
		"| A|",
		"+--+",
		"",
		"",
		"+--+",
		"| B|",
		"+--+",
	}
	blocks := diagram.DetectBlocks(lines, false)
	require.Len(t, blocks, 2)
	assert.Equal(t, 0, blocks[0].Start)
	assert.Equal(t, 3, blocks[0].End)
	assert.Equal(t, 5, blocks[1].Start)
	assert.Equal(t, 8, blocks[1].End)
}

func TestDetectBlocksEmbeddedProseLabel(t *testing.T) {
	lines := []string{
		"+------+",
		"| a    |",
		"a label line with no box chars",
		"| b    |",
		"+------+",
	}
	blocks := diagram.DetectBlocks(lines, false)
	require.Len(t, blocks, 1)
	assert.Equal(t, 0, blocks[0].Start)
	assert.Equal(t, 5, blocks[0].End)
}

func TestDetectBlocksBlockEndingAtEOF(t *testing.T) {
	lines := []string{"prose", "+--+", "|a |", "+--+"}
	blocks := diagram.DetectBlocks(lines, false)
	require.Len(t, blocks, 1)
	assert.Equal(t, 1, blocks[0].Start)
	assert.Equal(t, 4, blocks[0].End)
}

func TestDetectBlocksAllBlocksBypassesThreshold(t *testing.T) {
	lines := []string{"a | b"} // single weak line, low confidence
	blocks := diagram.DetectBlocks(lines, false)
	assert.Empty(t, blocks)

	blocks = diagram.DetectBlocks(lines, true)
	require.Len(t, blocks, 1)
}

func TestDetectBlocksEmptyDocument(t *testing.T) {
	blocks := diagram.DetectBlocks(nil, false)
	assert.Empty(t, blocks)
}
