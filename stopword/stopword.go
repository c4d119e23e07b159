// Package stopword provides set-membership lookup over high-frequency
// Arabic function words that are unfit to anchor a quotation match.
//
// Two API layers are provided:
//
//   - Structured: Internal and Leeds return the two shipped Set values;
//     Resolve maps a Policy to one of them.
//   - Convenience: Set.Contains is the single operation the matching engine
//     calls; a Set is a plain map under the hood, so zero-value Set{} is a
//     valid empty set rather than a nil-map panic risk for Contains (not for
//     insertion, which this package never exposes to callers).
//
// Known limitations:
//
//   - Both shipped lists are embedded at build time (data/stopwords_*.txt);
//     there is no runtime loading path for a caller-supplied list. A caller
//     wanting a custom set constructs one directly: Set is an exported map
//     type, not an opaque handle.
//   - Entries are expected to already be in archigraphemic form (the output
//     of normalize.Word). Raw, undiacritized Arabic text in a custom file
//     will simply fail to match anything; parseList does not normalize.
//
// All functions are safe for concurrent use by multiple goroutines: both
// shipped sets are built once in init and never mutated afterward.
package stopword

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/kabikaj/quran-tagger/data"
	"github.com/kabikaj/quran-tagger/normalize"
)

// Set is a stopword membership set over normalized forms.
type Set map[normalize.Form]struct{}

// Contains reports whether f is a stopword in s.
func (s Set) Contains(f normalize.Form) bool {
	_, ok := s[f]
	return ok
}

// Policy selects which shipped stopword set match.Options.Stopwords uses.
type Policy int

const (
	// PolicyLeeds selects the Leeds Arabic Corpus frequency-derived list,
	// the shipped default.
	PolicyLeeds Policy = iota
	// PolicyInternal selects the smaller, hand-curated list.
	PolicyInternal
)

// Resolve returns the shipped Set named by p.
func Resolve(p Policy) Set {
	switch p {
	case PolicyInternal:
		return Internal()
	default:
		return Leeds()
	}
}

var internalSet Set
var leedsSet Set

func init() {
	internalSet = mustParse(data.StopwordsInternal)
	leedsSet = mustParse(data.StopwordsLeeds)
}

// Internal returns the conservative, hand-curated stopword set.
func Internal() Set { return internalSet }

// Leeds returns the Leeds Corpus frequency-derived stopword set, the
// shipped default (see DESIGN.md).
func Leeds() Set { return leedsSet }

// mustParse panics on a malformed embedded list: a bad embed is a build-time
// defect, not a runtime condition callers can recover from.
func mustParse(raw []byte) Set {
	set, err := parseList(raw)
	if err != nil {
		panic(fmt.Sprintf("stopword: embedded list: %v", err))
	}
	return set
}

// parseList reads one archigraphemic form per line from raw. Blank lines
// and lines beginning with '#' are ignored; no normalization is applied.
func parseList(raw []byte) (Set, error) {
	set := make(Set)
	sc := bufio.NewScanner(strings.NewReader(string(raw)))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[normalize.Form(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("stopword: scanning list: %w", err)
	}
	return set, nil
}
