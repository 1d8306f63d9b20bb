package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeSet(t *testing.T) {
	t.Run("single number", func(t *testing.T) {
		rs, err := ParseRangeSet("5")
		require.NoError(t, err)
		assert.True(t, rs.Overlaps(5, 5))
		assert.False(t, rs.Overlaps(6, 6))
	})

	t.Run("bounded range", func(t *testing.T) {
		rs, err := ParseRangeSet("10-20")
		require.NoError(t, err)
		assert.True(t, rs.Overlaps(1, 10))
		assert.True(t, rs.Overlaps(20, 30))
		assert.False(t, rs.Overlaps(21, 30))
	})

	t.Run("open-ended range", func(t *testing.T) {
		rs, err := ParseRangeSet("10-")
		require.NoError(t, err)
		assert.True(t, rs.Overlaps(1000, 2000))
		assert.False(t, rs.Overlaps(1, 9))
	})

	t.Run("leading-dash range", func(t *testing.T) {
		rs, err := ParseRangeSet("-10")
		require.NoError(t, err)
		assert.True(t, rs.Overlaps(1, 1))
		assert.False(t, rs.Overlaps(11, 20))
	})

	t.Run("merges overlapping and adjacent", func(t *testing.T) {
		rs, err := ParseRangeSet("1-5,6-10,20-25")
		require.NoError(t, err)
		require.Len(t, rs.ranges, 2)
		assert.Equal(t, lineRange{1, 10}, rs.ranges[0])
		assert.Equal(t, lineRange{20, 25}, rs.ranges[1])
	})

	t.Run("unsorted input still merges", func(t *testing.T) {
		rs, err := ParseRangeSet("20-25,1-5")
		require.NoError(t, err)
		require.Len(t, rs.ranges, 2)
		assert.Equal(t, 1, rs.ranges[0].start)
		assert.Equal(t, 20, rs.ranges[1].start)
	})

	t.Run("rejects empty spec", func(t *testing.T) {
		_, err := ParseRangeSet("")
		assert.Error(t, err)
	})

	t.Run("rejects start greater than end", func(t *testing.T) {
		_, err := ParseRangeSet("10-5")
		assert.Error(t, err)
	})

	t.Run("rejects non-integer token", func(t *testing.T) {
		_, err := ParseRangeSet("abc")
		assert.Error(t, err)
	})

	t.Run("rejects zero", func(t *testing.T) {
		_, err := ParseRangeSet("0")
		assert.Error(t, err)
	})
}

func TestRangeSetNilOverlapsEverything(t *testing.T) {
	var rs *RangeSet
	assert.True(t, rs.Overlaps(1, 100))
}
