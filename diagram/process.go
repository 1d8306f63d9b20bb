package diagram

import "time"

// Stats summarizes one Process call, accumulated across every block of the
// document (spec §4.10).
type Stats struct {
	BlocksFound      int
	BlocksModified   int
	BlocksSkipped    int
	RevisionsApplied int
	RevisionsSkipped int
	LinesTotal       int
	Elapsed          time.Duration
}

const (
	quickScanLimit    = 1000
	quickScanMinRatio = 0.01
)

// hasLikelyDiagrams implements the quick-scan triage of spec §4.5: scan at
// most the first 1,000 lines, count lines with at least one box-char, and
// declare "no diagrams" if the hit ratio falls below 1%.
func hasLikelyDiagrams(lines []string) bool {
	scanned := len(lines)
	if scanned > quickScanLimit {
		scanned = quickScanLimit
	}
	if scanned == 0 {
		return false
	}

	hits := 0
	for _, line := range lines[:scanned] {
		for _, r := range line {
			if IsBoxChar(r) {
				hits++
				break
			}
		}
	}
	return float64(hits)/float64(scanned) >= quickScanMinRatio
}

// Process runs the full pipeline of spec §4.10 over a whole document: tab
// expansion, block detection, and per-block correction, gated by the
// quick-scan triage and an optional line-range filter. It does not mutate
// the input slice; the returned slice is independent.
func Process(lines []string, cfg Config) ([]string, Stats, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{LinesTotal: len(lines)}

	if !cfg.AllBlocks && !hasLikelyDiagrams(lines) {
		out := make([]string, len(lines))
		copy(out, lines)
		stats.Elapsed = time.Since(start)
		return out, stats, nil
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ExpandTabs(line, cfg.TabWidth)
	}

	blocks := DetectBlocks(out, cfg.AllBlocks)
	stats.BlocksFound = len(blocks)

	minScore := cfg.EffectiveMinScore()
	maxIters := cfg.MaxIters

	for _, block := range blocks {
		if cfg.LineRanges != nil && !cfg.LineRanges.Overlaps(block.Start+1, block.End) {
			stats.BlocksSkipped++
			continue
		}

		applied, skipped := correctBlock(out, block, minScore, maxIters)
		stats.RevisionsApplied += applied
		stats.RevisionsSkipped += skipped
		if applied > 0 {
			stats.BlocksModified++
		}
	}

	stats.Elapsed = time.Since(start)
	return out, stats, nil
}
