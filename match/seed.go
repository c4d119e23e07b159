package match

import (
	"github.com/kabikaj/quran-tagger/corpus"
	"github.com/kabikaj/quran-tagger/normalize"
	"github.com/kabikaj/quran-tagger/stopword"
)

// findSeeds scans P for consecutive bigrams present in idx, emitting one
// seed per (input position, Qurʾānic position) hit. A bigram whose first
// token is a stopword member is skipped entirely — stopwords may still
// appear as the second token of a seed, or anywhere inside an extended
// match, since the filter applies only at the anchor point.
//
// A single input bigram can hit many Qurʾānic positions (high-frequency
// formulaic openings recur dozens of times across the corpus); every hit
// is returned, not just the first — pruning is the overlap resolver's job.
func findSeeds(P []normalize.Form, idx *corpus.Index, stopwords stopword.Set, cancel func(int) bool) []seed {
	var seeds []seed

	for i := 0; i+1 < len(P); i++ {
		if cancel != nil && cancel(i) {
			break
		}

		first, second := P[i], P[i+1]
		if first == "" || second == "" {
			continue
		}
		if stopwords != nil && stopwords.Contains(first) {
			continue
		}

		hits := idx.Lookup(corpus.Bigram{First: first, Second: second})
		for _, qp := range hits {
			seeds = append(seeds, seed{InputPos: i, QPos: qp})
		}
	}

	return seeds
}
