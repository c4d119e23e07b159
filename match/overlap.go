package match

import "sort"

// resolveOverlaps selects a non-overlapping subset of candidates by
// longest-length preference. Candidates are processed longest-first; a
// candidate that overlaps an already-accepted one is dropped. When the
// overlap is between two candidates of equal length (so neither one is
// preferred on length alone), both are dropped and a Warning is recorded
// instead of arbitrarily keeping one — see the package doc comment.
func resolveOverlaps(candidates []candidate) ([]candidate, []Warning) {
	if len(candidates) == 0 {
		return nil, nil
	}

	ordered := dedupe(candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		li, lj := ordered[i].length(), ordered[j].length()
		if li != lj {
			return li > lj
		}
		return ordered[i].InputStart < ordered[j].InputStart
	})

	var accepted []candidate
	var warnings []Warning
	dropped := make(map[int]bool)

	for i := range ordered {
		if dropped[i] {
			continue
		}
		c := ordered[i]

		// c overlaps a strictly longer candidate already accepted: the
		// longer one alone settles the span, so c is dropped silently,
		// never considered below as an equal-length conflict partner.
		if overlapsAny(c, accepted) {
			continue
		}

		conflictEqualLen := false
		var equalLenPartner candidate

		for j := i + 1; j < len(ordered); j++ {
			if dropped[j] {
				continue
			}
			o := ordered[j]
			if !overlaps(c, o) {
				continue
			}
			if o.length() != c.length() {
				continue
			}
			// o is already doomed by an already-accepted longer
			// candidate; it is not a live tie and must not generate a
			// warning against c.
			if overlapsAny(o, accepted) {
				continue
			}
			conflictEqualLen = true
			equalLenPartner = o
			dropped[j] = true
		}

		if conflictEqualLen {
			warnings = append(warnings, Warning{QPosA: c.QPosStart, QPosB: equalLenPartner.QPosStart})
			continue
		}

		accepted = append(accepted, c)
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].InputStart < accepted[j].InputStart
	})

	return accepted, warnings
}

// dedupe collapses candidates that extended to an identical span: distinct
// seeds naturally converge to the same (InputStart, InputEnd, QPosStart,
// QPosEnd) whenever they lie on the same maximal run, and that convergence
// must not be mistaken for two competing equal-length matches by the
// resolver below.
func dedupe(candidates []candidate) []candidate {
	type key struct {
		is, ie int
		qs, qe int
	}
	seen := make(map[key]bool, len(candidates))
	out := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		k := key{c.InputStart, c.InputEnd, int(c.QPosStart), int(c.QPosEnd)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}

// overlaps reports whether a and b share any input-token position.
func overlaps(a, b candidate) bool {
	return a.InputStart <= b.InputEnd && b.InputStart <= a.InputEnd
}

func overlapsAny(c candidate, accepted []candidate) bool {
	for _, a := range accepted {
		if overlaps(c, a) {
			return true
		}
	}
	return false
}
