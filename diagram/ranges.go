package diagram

import (
	"math"
	"strconv"
	"strings"
)

// unbounded marks a range's End as extending to infinity ("A-" syntax).
const unbounded = math.MaxInt32

// lineRange is one parsed, merged, 1-indexed inclusive range.
type lineRange struct {
	start, end int
}

// RangeSet is a parsed, normalized --lines specification (spec §4.11):
// comma-separated items of the form "A-B", "A-", "-B", or "A", merged so
// overlapping or adjacent ranges collapse into one.
type RangeSet struct {
	ranges []lineRange
}

// ParseRangeSet parses a comma-separated line-range spec. Failure
// conditions (spec §4.11): an empty spec, non-positive integers, start >
// end with a finite end, or a non-integer token.
func ParseRangeSet(spec string) (*RangeSet, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, errf("empty line-range spec")
	}

	var ranges []lineRange
	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, errf("empty line-range item")
		}
		r, err := parseRangeItem(item)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}

	return &RangeSet{ranges: mergeRanges(ranges)}, nil
}

func parseRangeItem(item string) (lineRange, error) {
	if i := strings.IndexByte(item, '-'); i >= 0 {
		startStr, endStr := item[:i], item[i+1:]
		switch {
		case startStr == "" && endStr == "":
			return lineRange{}, errf("malformed line-range item %q", item)
		case startStr == "":
			end, err := parsePositiveInt(endStr)
			if err != nil {
				return lineRange{}, err
			}
			return lineRange{start: 1, end: end}, nil
		case endStr == "":
			start, err := parsePositiveInt(startStr)
			if err != nil {
				return lineRange{}, err
			}
			return lineRange{start: start, end: unbounded}, nil
		default:
			start, err := parsePositiveInt(startStr)
			if err != nil {
				return lineRange{}, err
			}
			end, err := parsePositiveInt(endStr)
			if err != nil {
				return lineRange{}, err
			}
			if start > end {
				return lineRange{}, errf("line-range item %q has start > end", item)
			}
			return lineRange{start: start, end: end}, nil
		}
	}

	n, err := parsePositiveInt(item)
	if err != nil {
		return lineRange{}, err
	}
	return lineRange{start: n, end: n}, nil
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errf("non-integer line-range token %q", s)
	}
	if n <= 0 {
		return 0, errf("non-positive line-range token %q", s)
	}
	return n, nil
}

// mergeRanges sorts by start and merges overlapping or adjacent ranges.
func mergeRanges(ranges []lineRange) []lineRange {
	if len(ranges) <= 1 {
		return ranges
	}
	sorted := make([]lineRange, len(ranges))
	copy(sorted, ranges)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].start > sorted[j].start; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	merged := sorted[:1]
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.start <= last.end+1 {
			if r.end > last.end {
				last.end = r.end
			}
		} else {
			merged = append(merged, r)
		}
	}
	return merged
}

// Overlaps reports whether the 1-indexed inclusive range [blockStart,blockEnd]
// intersects any range in the set.
func (rs *RangeSet) Overlaps(blockStart, blockEnd int) bool {
	if rs == nil {
		return true
	}
	for _, r := range rs.ranges {
		if blockStart <= r.end && blockEnd >= r.start {
			return true
		}
	}
	return false
}
