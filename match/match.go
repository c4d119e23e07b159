// Package match implements the quotation-matching engine: given a stream
// of input tokens and a Qurʾān Index, it finds every maximal span of
// input words that reproduces a run of Qurʾānic text under archigraphemic
// normalization, resolves overlapping candidates, and emits non-overlapping
// tagged spans.
//
// Two API layers are provided:
//
//   - Structured: Tag is the single entry point; Options configures it and
//     DefaultOptions returns the shipped defaults.
//   - There is no separate convenience layer — Tag's signature is already
//     the minimal useful surface; a caller wanting a one-line call with
//     default options passes DefaultOptions() directly.
//
// Known limitations:
//
//   - Tag treats equal-length overlapping candidates as ambiguous and
//     drops both rather than guessing a tiebreak; see Warning and the
//     overlap resolver's doc comment.
//   - Ellipsis recognition (Options.WithEllipsis) measurably hurts
//     precision on the shipped evaluation data without a matching recall
//     gain; it ships off by default for that reason, not because the
//     feature is unfinished.
//   - Tag does not copy tokens; it only reads them, so a caller that
//     modifies the slice while a Tag call is running races with it. The
//     Index and Stopword set it reads are safe for concurrent read access
//     once built.
//
// All exported types are safe for concurrent use by multiple goroutines
// once constructed; Tag itself holds no shared mutable state and may be
// called concurrently from multiple goroutines against the same Index.
package match

import (
	"errors"

	"github.com/kabikaj/quran-tagger/corpus"
	"github.com/kabikaj/quran-tagger/normalize"
	"github.com/kabikaj/quran-tagger/stopword"
)

// ErrEmptyInput is returned by Tag when tokens is empty; there is nothing
// to tag, which is a caller error rather than a "no matches" result (an
// empty Match slice is the latter).
var ErrEmptyInput = errors.New("match: empty input token stream")

// Options configures a single Tag call. The zero value is not usable
// directly for Stopwords (a nil Set matches nothing, silently disabling
// the stopword filter); use DefaultOptions to get a sane baseline.
type Options struct {
	// MinBlocks is the minimum number of matched words a candidate must
	// span to be emitted. Default 2 (a single-word match carries no
	// quotation signal on its own).
	MinBlocks int

	// Stopwords rejects seeds whose first token is a member; it is not
	// reapplied during extension or to the second token of a seed.
	Stopwords stopword.Set

	// WithEllipsis enables bounded-gap extension: at most one gap of up to
	// EllipsisWindow unmatched input words per candidate, after which
	// matching resumes at the same Qurʾān position. Off by default: it
	// lowers precision on the shipped evaluation corpus without a
	// measurable recall gain.
	WithEllipsis bool

	// EllipsisWindow bounds how many input words a single gap may skip
	// when WithEllipsis is set. Ignored otherwise.
	EllipsisWindow int

	// Cancel, if non-nil, is consulted once per outer input-token
	// position during seed finding; returning true aborts Tag early with
	// whatever matches and warnings have been produced so far (no error —
	// cancellation is a caller-driven early return, not a failure).
	Cancel func(inputPos int) bool
}

// DefaultOptions returns the shipped default configuration: MinBlocks 2,
// the Leeds stopword list, ellipsis off, EllipsisWindow 2.
func DefaultOptions() Options {
	return Options{
		MinBlocks:      2,
		Stopwords:      stopword.Leeds(),
		WithEllipsis:   false,
		EllipsisWindow: 2,
	}
}

// Gap records a single ellipsis gap in input-token coordinates: the
// half-open span [Start, End) of input words skipped inside a candidate.
type Gap struct {
	Start, End int
}

// Match is a single emitted, non-overlapping tagged span.
type Match struct {
	InputStart, InputEnd int
	QPosStart, QPosEnd   corpus.Pos
	Ellipsis             *Gap
}

// Warning reports two equal-length overlapping candidates that were both
// dropped by the overlap resolver rather than arbitrarily preferred.
type Warning struct {
	QPosA, QPosB corpus.Pos
}

// seed is a single bigram hit: input position inputPos matched the
// Qurʾānic bigram starting at QPos.
type seed struct {
	InputPos int
	QPos     corpus.Pos
}

// candidate is an extended seed: the unexported intermediate the seed
// finder, extender, and overlap resolver operate on. Only the
// post-filtered, emitted form (Match) is public.
type candidate struct {
	InputStart, InputEnd int
	QPosStart, QPosEnd   corpus.Pos
	Gap                  *Gap
}

func (c candidate) length() int {
	return c.InputEnd - c.InputStart + 1
}

// Tag finds and tags Qurʾānic quotations in tokens against idx.
//
// tokens is normalized once via normalize.Phrase. Seeds are found by
// consecutive-bigram lookup against idx, rejecting any seed whose first
// token normalizes to a Stopwords member. Each seed is extended maximally
// in both directions (optionally tolerating one bounded ellipsis gap).
// The MinBlocks threshold is applied first, discarding any candidate too
// short to ever be emitted, so a pair of candidates that don't clear the
// threshold can never generate an equal-length-overlap Warning between
// them. The surviving candidates are then resolved by longest-length
// preference (equal-length overlaps are dropped on both sides and
// reported as a Warning) and assembled into the final, InputStart-
// ascending []Match.
func Tag(tokens []string, idx *corpus.Index, opts Options) ([]Match, []Warning, error) {
	if len(tokens) == 0 {
		return nil, nil, ErrEmptyInput
	}

	forms := normalize.Phrase(tokens)

	seeds := findSeeds(forms, idx, opts.Stopwords, opts.Cancel)

	candidates := make([]candidate, 0, len(seeds))
	for _, s := range seeds {
		candidates = append(candidates, extendSeed(s, forms, idx, opts))
	}

	candidates = filterMinBlocks(candidates, opts.MinBlocks)

	accepted, warnings := resolveOverlaps(candidates)

	matches := emit(accepted)

	return matches, warnings, nil
}
