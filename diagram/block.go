package diagram

// DiagramBlock identifies a maximal range of lines ([Start,End)) treated
// as one diagram by the detector, together with a confidence in [0,1]
// that the range really is a diagram rather than, say, a prose table.
type DiagramBlock struct {
	Start      int
	End        int
	Confidence float64
}

// Len returns the number of lines spanned by the block.
func (b DiagramBlock) Len() int { return b.End - b.Start }

// minConfidence is the default acceptance threshold; callers requesting
// "all blocks" bypass it entirely.
const minConfidence = 0.3

// lookaheadLimit bounds how far DetectBlocks peeks past a None line
// looking for boxy content before giving up on it.
const lookaheadLimit = 3

// DetectBlocks performs a single left-to-right scan over lines,
// classifying each and grouping contiguous boxy runs into DiagramBlocks.
// Blocks are returned in ascending, non-overlapping order.
//
// The state machine, per line kind while "growing" a candidate block:
//   - Strong/Weak: always included; resets the one-blank-line tolerance.
//   - Blank: tolerated once in a row (section dividers inside a diagram);
//     a second consecutive blank ends the block without including it.
//   - None: included only if boxy content appears within the next three
//     lines and no blank has intervened yet (tolerates embedded prose
//     labels); otherwise ends the block.
//
// A block's trailing Blank lines are trimmed from its final range. It is
// emitted if allBlocks is true or its confidence is >= 0.3.
func DetectBlocks(lines []string, allBlocks bool) []DiagramBlock {
	kinds := make([]LineKind, len(lines))
	for i, line := range lines {
		kinds[i] = ClassifyLine(line)
	}

	var blocks []DiagramBlock
	n := len(lines)
	for i := 0; i < n; {
		if !kinds[i].Boxy() {
			i++
			continue
		}

		start := i
		end := i
		strongCount, weakCount, blankGap := 0, 0, 0

		j := i
	growing:
		for j < n {
			switch kinds[j] {
			case Strong:
				strongCount++
				blankGap = 0
				end = j + 1
				j++
			case Weak:
				weakCount++
				blankGap = 0
				end = j + 1
				j++
			case Blank:
				blankGap++
				if blankGap > 1 {
					break growing
				}
				end = j + 1
				j++
			case None:
				boxyAhead := false
				for k := j + 1; k < n && k <= j+lookaheadLimit; k++ {
					if kinds[k].Boxy() {
						boxyAhead = true
						break
					}
				}
				if boxyAhead && blankGap == 0 {
					end = j + 1
					j++
				} else {
					break growing
				}
			}
		}

		for end > start && kinds[end-1] == Blank {
			end--
		}

		if end > start {
			total := strongCount + weakCount
			var ratio float64
			if total > 0 {
				ratio = float64(strongCount) / float64(total)
			}
			sizeBonus := float64(end-start) / 10.0
			if sizeBonus > 0.2 {
				sizeBonus = 0.2
			}
			confidence := 0.8*ratio + sizeBonus
			if confidence > 1.0 {
				confidence = 1.0
			}
			if allBlocks || confidence >= minConfidence {
				blocks = append(blocks, DiagramBlock{Start: start, End: end, Confidence: confidence})
			}
		}

		if j <= start {
			j = start + 1
		}
		i = j
	}
	return blocks
}
