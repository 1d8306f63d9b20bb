package diagram

// wideThreshold is the coarse code point below which everything is
// considered single-width. It is not the Unicode East-Asian-Width table:
// diagrams live in terminal text where U+1100+ is overwhelmingly wide and
// narrow exceptions within that range are rare in this domain. See
// SPEC_FULL.md §9 open question 3.
const wideThreshold = 0x1100

// RuneWidth returns the visual column width of a single code point:
//  1. ASCII (< U+0080): 1
//  2. any box-drawing character: 1, regardless of code point
//  3. below U+1100 and not box-drawing: 1
//  4. at or above U+1100 and not box-drawing: 2
func RuneWidth(r rune) int {
	if r < 0x80 {
		return 1
	}
	if IsBoxChar(r) {
		return 1
	}
	if r < wideThreshold {
		return 1
	}
	return 2
}

// StringWidth returns the sum of RuneWidth over every code point in s.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
