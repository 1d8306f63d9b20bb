package diagram

import "strings"

// DefaultMaxIters bounds the fixed-point loop per block. Spec §4.9 shows
// the loop provably converges in O(block-line-count) productive
// iterations regardless of this bound; it exists only as a safety net.
const DefaultMaxIters = 10

// correctBlock runs the fixed-point loop of spec §4.9 over lines[block.Start:block.End],
// mutating lines in place and returning how many revisions were applied and
// how many were filtered out by minScore.
func correctBlock(lines []string, block DiagramBlock, minScore float64, maxIters int) (applied, skipped int) {
	for iter := 0; iter < maxIters; iter++ {
		blockLines := lines[block.Start:block.End]
		analyzed := make([]AnalyzedLine, len(blockLines))
		for i, l := range blockLines {
			analyzed[i] = AnalyzeLine(l)
		}

		candidates, _, ok := generateRevisions(blockLines, block.Start, analyzed)
		if !ok || len(candidates) == 0 {
			break
		}

		var valid []Revision
		for _, rev := range candidates {
			if rev.Score() >= minScore {
				valid = append(valid, rev)
			} else {
				skipped++
			}
		}
		if len(valid) == 0 {
			break
		}

		for _, rev := range valid {
			revised, ok := applyRevision(lines[rev.LineIndex], rev)
			if !ok {
				// InternalInvariant: defensive check failed, drop silently
				// (invariant 1 still holds because no change was made).
				continue
			}
			lines[rev.LineIndex] = revised
			applied++
		}
	}
	return applied, skipped
}

// applyRevision implements spec §4.8. It returns ok=false (dropping the
// revision) only when a defensive invariant check fails, which should be
// unreachable given a correctly generated Revision.
func applyRevision(line string, rev Revision) (string, bool) {
	switch rev.Kind {
	case PadBeforeSuffixBorder:
		trimmed := strings.TrimRight(line, " \t")
		runes := []rune(trimmed)
		if len(runes) == 0 || !IsBorderChar(runes[len(runes)-1]) {
			return line, false
		}
		prefix := string(runes[:len(runes)-1])
		last := string(runes[len(runes)-1])
		return prefix + strings.Repeat(" ", rev.SpacesToAdd) + last, true

	case AddSuffixBorder:
		trimmed := strings.TrimRight(line, " \t")
		w := StringWidth(trimmed)
		pad := rev.TargetColumn - w
		if pad < 0 {
			pad = 0
		}
		return trimmed + strings.Repeat(" ", pad) + string(rev.BorderChar), true

	default:
		return line, false
	}
}
