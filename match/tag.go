package match

import "sort"

// filterMinBlocks discards any candidate whose matched-word count (blockCount)
// is below minBlocks. This runs before overlap resolution (spec order: the
// min_blocks threshold is step 1, overlap resolution is steps 2-4) so that
// two candidates too short to ever be emitted cannot still generate a
// spurious equal-length-overlap Warning between each other.
func filterMinBlocks(candidates []candidate, minBlocks int) []candidate {
	out := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if blockCount(c) < minBlocks {
			continue
		}
		out = append(out, c)
	}
	return out
}

// emit assembles the final public []Match from the overlap-resolved
// candidates, sorted by InputStart ascending. The overlap resolver's
// accept order (length descending, then InputStart ascending) is not
// output order; this is the one place that order is fixed for callers.
func emit(accepted []candidate) []Match {
	if len(accepted) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(accepted))
	for _, c := range accepted {
		matches = append(matches, Match{
			InputStart: c.InputStart,
			InputEnd:   c.InputEnd,
			QPosStart:  c.QPosStart,
			QPosEnd:    c.QPosEnd,
			Ellipsis:   c.Gap,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].InputStart < matches[j].InputStart
	})

	return matches
}

// blockCount is the number of matched (non-gap) words in c: the span
// length minus any ellipsis gap width, since a gap's words are filler,
// not matched Qurʾānic content.
func blockCount(c candidate) int {
	n := c.length()
	if c.Gap != nil {
		n -= c.Gap.End - c.Gap.Start
	}
	return n
}
