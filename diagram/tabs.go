package diagram

import "strings"

// DefaultTabWidth is used when no explicit tab width is configured.
const DefaultTabWidth = 4

// ExpandTabs replaces every '\t' in line with spaces up to the next visual
// tab-stop, advancing column accounting by RuneWidth for every other code
// point. tabWidth must be in [1,16]; callers validate this via Config.
func ExpandTabs(line string, tabWidth int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))

	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - (col % tabWidth)
			for i := 0; i < n; i++ {
				b.WriteByte(' ')
			}
			col += n
			continue
		}
		b.WriteRune(r)
		col += RuneWidth(r)
	}
	return b.String()
}
