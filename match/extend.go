package match

import (
	"github.com/kabikaj/quran-tagger/corpus"
	"github.com/kabikaj/quran-tagger/normalize"
)

// extendSeed grows s in both directions as long as the input and Qurʾān
// word streams agree under normalization, optionally tolerating one
// bounded ellipsis gap per candidate (on either side, whichever stalls
// first) when opts.WithEllipsis is set. The
// seed's own bigram (InputPos, InputPos+1) is always included; extension
// starts from its edges.
func extendSeed(s seed, P []normalize.Form, idx *corpus.Index, opts Options) candidate {
	c := candidate{
		InputStart: s.InputPos,
		InputEnd:   s.InputPos + 1,
		QPosStart:  s.QPos,
		QPosEnd:    s.QPos + 1,
	}

	extendForward(&c, P, idx, opts)
	extendBackward(&c, P, idx, opts)

	return c
}

// extendForward grows c.InputEnd/c.QPosEnd past the seed's right edge.
func extendForward(c *candidate, P []normalize.Form, idx *corpus.Index, opts Options) {
	i, q := c.InputEnd+1, int(c.QPosEnd)+1

	for i < len(P) && q < idx.Len() {
		if P[i] != "" && P[i] == idx.At(corpus.Pos(q)) {
			c.InputEnd, c.QPosEnd = i, corpus.Pos(q)
			i, q = i+1, q+1
			continue
		}

		if opts.WithEllipsis && c.Gap == nil {
			if gi, gq, ok := tryEllipsisForward(P, idx, i, q, opts.EllipsisWindow); ok {
				c.Gap = &Gap{Start: c.InputEnd + 1, End: gi}
				c.InputEnd, c.QPosEnd = gi, corpus.Pos(gq)
				i, q = gi+1, gq+1
				continue
			}
		}

		break
	}
}

// extendBackward grows c.InputStart/c.QPosStart past the seed's left edge.
func extendBackward(c *candidate, P []normalize.Form, idx *corpus.Index, opts Options) {
	i, q := c.InputStart-1, int(c.QPosStart)-1

	for i >= 0 && q >= 0 {
		if P[i] != "" && P[i] == idx.At(corpus.Pos(q)) {
			c.InputStart, c.QPosStart = i, corpus.Pos(q)
			i, q = i-1, q-1
			continue
		}

		if opts.WithEllipsis && c.Gap == nil {
			if gi, gq, ok := tryEllipsisBackward(P, idx, i, q, opts.EllipsisWindow); ok {
				c.Gap = &Gap{Start: gi + 1, End: c.InputStart}
				c.InputStart, c.QPosStart = gi, corpus.Pos(gq)
				i, q = gi-1, gq-1
				continue
			}
		}

		break
	}
}
