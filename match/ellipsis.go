package match

import (
	"github.com/kabikaj/quran-tagger/corpus"
	"github.com/kabikaj/quran-tagger/normalize"
)

// tryEllipsisForward looks ahead from input position i (which failed to
// match idx.At(q)) for a resumption point within window input words: the
// ellipsis tolerates filler on the input side only, so the Qurʾānic
// position q never advances during the gap. Returns the resumption input
// position, the unchanged q, and whether one was found within window.
func tryEllipsisForward(P []normalize.Form, idx *corpus.Index, i, q, window int) (int, int, bool) {
	if q >= idx.Len() {
		return 0, 0, false
	}
	target := idx.At(corpus.Pos(q))

	for k := 1; k <= window; k++ {
		gi := i + k
		if gi >= len(P) {
			break
		}
		if P[gi] != "" && P[gi] == target {
			return gi, q, true
		}
	}
	return 0, 0, false
}

// tryEllipsisBackward is the mirror of tryEllipsisForward, looking behind
// input position i for a resumption point matching idx.At(q).
func tryEllipsisBackward(P []normalize.Form, idx *corpus.Index, i, q, window int) (int, int, bool) {
	if q < 0 {
		return 0, 0, false
	}
	target := idx.At(corpus.Pos(q))

	for k := 1; k <= window; k++ {
		gi := i - k
		if gi < 0 {
			break
		}
		if P[gi] != "" && P[gi] == target {
			return gi, q, true
		}
	}
	return 0, 0, false
}
