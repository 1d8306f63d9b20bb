package diagram

// RevisionKind tags the two monotone edit shapes the corrector can emit.
// Both only ever insert characters; see Revision's doc comment for the
// supersequence guarantee this relies on.
type RevisionKind int

const (
	// PadBeforeSuffixBorder inserts spaces immediately before an existing
	// suffix border to push it out to TargetColumn.
	PadBeforeSuffixBorder RevisionKind = iota
	// AddSuffixBorder appends spaces and a new border character to a boxy
	// line that has none, reaching TargetColumn.
	AddSuffixBorder
)

func (k RevisionKind) String() string {
	switch k {
	case PadBeforeSuffixBorder:
		return "PadBeforeSuffixBorder"
	case AddSuffixBorder:
		return "AddSuffixBorder"
	default:
		return "InvalidRevisionKind"
	}
}

// Revision is a single, monotone edit to one line: the result of applying
// it is always a supersequence of the input line. At most one Revision is
// generated per line per correction iteration.
type Revision struct {
	LineIndex    int
	Kind         RevisionKind
	SpacesToAdd  int  // PadBeforeSuffixBorder only
	BorderChar   rune // AddSuffixBorder only
	TargetColumn int
	strong       bool // line's classification, used only for scoring
}

// Score rates a revision's confidence in [0,1]. Pad revisions start from a
// higher base (0.8) than Add ones (0.5) because Add introduces a character
// the original line never had, but a Pad loses 0.1 per space added (at most
// 0.5), so a large Pad can score below an Add. Within each kind, Strong
// lines score higher.
func (r Revision) Score() float64 {
	switch r.Kind {
	case PadBeforeSuffixBorder:
		penalty := float64(r.SpacesToAdd) / 10
		if penalty > 0.5 {
			penalty = 0.5
		}
		score := 0.8 - penalty
		if r.strong {
			score += 0.2
		}
		return score
	case AddSuffixBorder:
		score := 0.5
		if r.strong {
			score += 0.2
		} else {
			score += 0.1
		}
		return score
	default:
		return 0
	}
}

// generateRevisions implements spec §4.7 for one block, given its lines'
// fresh AnalyzedLine snapshots. Returns the candidate revisions (unfiltered
// by score), the block's target column, and whether a target exists at all
// (false means the block has no suffix border anywhere and the corrector
// should stop iterating it).
func generateRevisions(lines []string, start int, analyzed []AnalyzedLine) (revisions []Revision, targetColumn int, ok bool) {
	targetColumn = -1
	for _, al := range analyzed {
		if al.Suffix != nil && al.Suffix.Column > targetColumn {
			targetColumn = al.Suffix.Column
		}
	}
	if targetColumn < 0 {
		return nil, 0, false
	}

	borderChar := chooseBorderChar(lines)

	for i, al := range analyzed {
		lineIdx := start + i
		switch {
		case al.Suffix != nil && al.Suffix.Column < targetColumn:
			revisions = append(revisions, Revision{
				LineIndex:    lineIdx,
				Kind:         PadBeforeSuffixBorder,
				SpacesToAdd:  targetColumn - al.Suffix.Column,
				TargetColumn: targetColumn,
				strong:       al.Kind == Strong,
			})
		case al.Suffix == nil && al.Kind.Boxy():
			revisions = append(revisions, Revision{
				LineIndex:    lineIdx,
				Kind:         AddSuffixBorder,
				BorderChar:   borderChar,
				TargetColumn: targetColumn,
				strong:       al.Kind == Strong,
			})
		}
	}
	return revisions, targetColumn, true
}

// chooseBorderChar picks the most frequent vertical-border code point
// across lines, tiebreaking by first occurrence so output is deterministic
// regardless of map iteration order (spec §9 open question 4). Falls back
// to '|' when the block contains no vertical border at all.
func chooseBorderChar(lines []string) rune {
	counts := make(map[rune]int)
	var order []rune
	for _, line := range lines {
		for _, r := range line {
			if IsVerticalBorder(r) {
				if counts[r] == 0 {
					order = append(order, r)
				}
				counts[r]++
			}
		}
	}

	best := rune(0)
	bestCount := 0
	for _, r := range order {
		if c := counts[r]; c > bestCount {
			best, bestCount = r, c
		}
	}
	if best == 0 {
		return '|'
	}
	return best
}
