package aadcreport

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const contextLines = 3

// UnifiedDiff renders a -d style unified diff between original and
// revised, using diffmatchpatch's line-mode diff (DiffLinesToChars +
// DiffMain + DiffCharsToLines) so that whole lines, not characters, are
// the diff unit.
func UnifiedDiff(original, revised []string, path string) string {
	dmp := diffmatchpatch.New()

	origText := strings.Join(original, "\n")
	revText := strings.Join(revised, "\n")

	origChars, revChars, lineArray := dmp.DiffLinesToChars(origText, revText)
	diffs := dmp.DiffMain(origChars, revChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	ops := flattenLineOps(diffs)
	if !anyChange(ops) {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", path)
	fmt.Fprintf(&b, "+++ %s\n", path)

	for _, hunk := range buildHunks(ops, contextLines) {
		writeHunk(&b, hunk)
	}
	return b.String()
}

type lineOp struct {
	kind diffmatchpatch.Operation
	line string
}

func flattenLineOps(diffs []diffmatchpatch.Diff) []lineOp {
	var ops []lineOp
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			ops = append(ops, lineOp{kind: d.Type, line: line})
		}
	}
	return ops
}

func anyChange(ops []lineOp) bool {
	for _, op := range ops {
		if op.kind != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

type hunk struct {
	origStart, origCount int
	revStart, revCount   int
	ops                  []lineOp
}

// buildHunks groups changed regions with contextLines of surrounding
// unchanged lines into unified-diff hunks. Changes separated by more than
// 2*context unchanged lines get their own hunk, as a real unified diff
// does, rather than being merged into one hunk spanning the whole file.
func buildHunks(ops []lineOp, context int) []hunk {
	origLine, revLine := 1, 1

	type marker struct{ idx, origAt, revAt int }
	var changeIdx []marker
	for i, op := range ops {
		if op.kind != diffmatchpatch.DiffEqual {
			changeIdx = append(changeIdx, marker{idx: i, origAt: origLine, revAt: revLine})
		}
		switch op.kind {
		case diffmatchpatch.DiffEqual:
			origLine++
			revLine++
		case diffmatchpatch.DiffDelete:
			origLine++
		case diffmatchpatch.DiffInsert:
			revLine++
		}
	}
	if len(changeIdx) == 0 {
		return nil
	}

	var groups [][]marker
	group := []marker{changeIdx[0]}
	for _, m := range changeIdx[1:] {
		if m.idx-group[len(group)-1].idx-1 > 2*context {
			groups = append(groups, group)
			group = nil
		}
		group = append(group, m)
	}
	groups = append(groups, group)

	var hunks []hunk
	for _, g := range groups {
		start := g[0].idx - context
		if start < 0 {
			start = 0
		}
		end := g[len(g)-1].idx + context
		if end > len(ops)-1 {
			end = len(ops) - 1
		}

		origStart, revStart := 1, 1
		for i := 0; i < start; i++ {
			switch ops[i].kind {
			case diffmatchpatch.DiffEqual:
				origStart++
				revStart++
			case diffmatchpatch.DiffDelete:
				origStart++
			case diffmatchpatch.DiffInsert:
				revStart++
			}
		}

		h := hunk{origStart: origStart, revStart: revStart, ops: ops[start : end+1]}
		for _, op := range h.ops {
			switch op.kind {
			case diffmatchpatch.DiffEqual:
				h.origCount++
				h.revCount++
			case diffmatchpatch.DiffDelete:
				h.origCount++
			case diffmatchpatch.DiffInsert:
				h.revCount++
			}
		}
		hunks = append(hunks, h)
	}
	return hunks
}

func writeHunk(b *strings.Builder, h hunk) {
	fmt.Fprintf(b, "@@ -%d,%d +%d,%d @@\n", h.origStart, h.origCount, h.revStart, h.revCount)
	for _, op := range h.ops {
		switch op.kind {
		case diffmatchpatch.DiffEqual:
			fmt.Fprintf(b, " %s\n", op.line)
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(b, "-%s\n", op.line)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(b, "+%s\n", op.line)
		}
	}
}
