package match

import (
	"testing"

	"github.com/kabikaj/quran-tagger/corpus"
	"github.com/kabikaj/quran-tagger/stopword"
)

// buildIndex is a small test helper building a synthetic corpus.Index from
// a flat word list treated as one verse, so Pos i has Meta{1, 1, i+1}.
func buildIndex(t *testing.T, words []string) *corpus.Index {
	t.Helper()
	metas := make([]corpus.Meta, len(words))
	for i := range words {
		metas[i] = corpus.Meta{Surah: 1, Verse: 1, WordInVerse: i + 1}
	}
	idx, err := corpus.Build(words, metas)
	if err != nil {
		t.Fatalf("corpus.Build: %v", err)
	}
	return idx
}

// Scenario 1: a two-token input reproducing a Qurʾānic bigram verbatim
// must produce exactly one match covering both tokens.
func TestTagScenario1_TwoWordMatch(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"نُرِيَنَّكَ", "بَعْضَ", "الَّذِي"})
	opts := DefaultOptions()
	opts.Stopwords = stopword.Set{}

	matches, warnings, err := Tag([]string{"نُرِيَنَّكَ", "بَعْضَ"}, idx, opts)
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}
	if matches[0].InputStart != 0 || matches[0].InputEnd != 1 {
		t.Errorf("match span = [%d,%d], want [0,1]", matches[0].InputStart, matches[0].InputEnd)
	}
}

// Scenario 2: a seed whose first token is a stopword is rejected, even
// though the bigram exists in the index.
func TestTagScenario2_StopwordAnchorRejected(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"الله", "أكبر"})
	opts := DefaultOptions()
	opts.Stopwords = stopword.Set{"الله": {}}

	matches, _, err := Tag([]string{"الله", "أكبر"}, idx, opts)
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("got %d matches, want 0 (stopword-anchored seed)", len(matches))
	}
}

// Scenario 3: ten input tokens with three middle tokens copied verbatim
// from the corpus must produce exactly one match of length 3.
func TestTagScenario3_MiddleSpanMatch(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"اهدنا", "الصراط", "المستقيم"})
	opts := DefaultOptions()
	opts.Stopwords = stopword.Set{}

	tokens := []string{"قال", "زيد", "ان", "اهدنا", "الصراط", "المستقيم", "يوما", "ما", "فعل", "ذلك"}
	matches, _, err := Tag(tokens, idx, opts)
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}
	m := matches[0]
	if m.InputStart != 3 || m.InputEnd != 5 {
		t.Errorf("match span = [%d,%d], want [3,5]", m.InputStart, m.InputEnd)
	}
	if got, want := m.InputEnd-m.InputStart+1, 3; got != want {
		t.Errorf("match length = %d, want %d", got, want)
	}
}

// Scenario 4: two overlapping candidates of different lengths at the same
// offset: the longer is emitted, no warning.
func TestTagScenario4_DifferentLengthOverlap(t *testing.T) {
	t.Parallel()

	// Corpus A (long): "واحد اثنان ثلاثة اربعة" — a 4-word run.
	// Corpus B (short, embedded inside the same input span): "اثنان ثلاثة".
	idx := buildIndex(t, []string{"واحد", "اثنان", "ثلاثة", "اربعة", "اثنان", "ثلاثة"})
	opts := DefaultOptions()
	opts.Stopwords = stopword.Set{}
	opts.MinBlocks = 2

	tokens := []string{"واحد", "اثنان", "ثلاثة", "اربعة"}
	matches, warnings, err := Tag(tokens, idx, opts)
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}
	if m := matches[0]; m.InputStart != 0 || m.InputEnd != 3 {
		t.Errorf("match span = [%d,%d], want [0,3] (the longer candidate)", m.InputStart, m.InputEnd)
	}
}

// Scenario 5: two overlapping candidates of equal length at the same
// offset: no match emitted, one warning naming both QPos values.
func TestTagScenario5_EqualLengthOverlapDropsBoth(t *testing.T) {
	t.Parallel()

	// Two distinct two-word Qurʾānic runs that both equal the same input
	// bigram under normalization (homonymous across two positions).
	idx := buildIndex(t, []string{"نور", "الهدى", "نور", "الهدى"})
	opts := DefaultOptions()
	opts.Stopwords = stopword.Set{}
	opts.MinBlocks = 2

	matches, warnings, err := Tag([]string{"نور", "الهدى"}, idx, opts)
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("got %d matches, want 0 (equal-length overlap dropped both): %+v", len(matches), matches)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
}

// Scenario 6: with ellipsis enabled, a one-word gap between two adjacent
// verses merges into one match with a recorded Gap; with ellipsis off,
// the same input yields two separate matches.
func TestTagScenario6_Ellipsis(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"بسم", "الله", "الرحمن", "الحمد", "لله", "رب"})
	tokens := []string{"بسم", "الله", "الرحمن", "FILLER", "الحمد", "لله", "رب"}

	t.Run("without ellipsis: two matches", func(t *testing.T) {
		t.Parallel()
		opts := DefaultOptions()
		opts.Stopwords = stopword.Set{}
		opts.MinBlocks = 2

		matches, _, err := Tag(tokens, idx, opts)
		if err != nil {
			t.Fatalf("Tag: %v", err)
		}
		if len(matches) != 2 {
			t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
		}
	})

	t.Run("with ellipsis: one merged match", func(t *testing.T) {
		t.Parallel()
		opts := DefaultOptions()
		opts.Stopwords = stopword.Set{}
		opts.MinBlocks = 2
		opts.WithEllipsis = true
		opts.EllipsisWindow = 2

		matches, _, err := Tag(tokens, idx, opts)
		if err != nil {
			t.Fatalf("Tag: %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("got %d matches, want 1 merged match: %+v", len(matches), matches)
		}
		m := matches[0]
		if m.Ellipsis == nil {
			t.Fatal("expected a recorded ellipsis Gap")
		}
		if m.InputStart != 0 || m.InputEnd != 6 {
			t.Errorf("merged match span = [%d,%d], want [0,6]", m.InputStart, m.InputEnd)
		}
	})
}

func TestTagEmptyInput(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"بسم", "الله"})
	_, _, err := Tag(nil, idx, DefaultOptions())
	if err != ErrEmptyInput {
		t.Errorf("Tag(nil, ...) error = %v, want ErrEmptyInput", err)
	}
}

func TestTagDeterminism(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"بسم", "الله", "الرحمن", "الرحيم"})
	opts := DefaultOptions()
	opts.Stopwords = stopword.Set{}

	tokens := []string{"بسم", "الله", "الرحمن", "الرحيم"}
	m1, w1, _ := Tag(tokens, idx, opts)
	m2, w2, _ := Tag(tokens, idx, opts)

	if len(m1) != len(m2) || len(w1) != len(w2) {
		t.Fatalf("non-deterministic result lengths: (%d,%d) vs (%d,%d)", len(m1), len(w1), len(m2), len(w2))
	}
	for i := range m1 {
		if m1[i] != m2[i] {
			t.Errorf("non-deterministic match[%d]: %+v vs %+v", i, m1[i], m2[i])
		}
	}
}

func TestTagNonOverlapInvariant(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"الف", "باء", "تاء", "ثاء", "جيم", "باء", "تاء", "ثاء"})
	opts := DefaultOptions()
	opts.Stopwords = stopword.Set{}
	opts.MinBlocks = 2

	matches, _, err := Tag([]string{"الف", "باء", "تاء", "ثاء", "جيم"}, idx, opts)
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	for i := 0; i < len(matches); i++ {
		for j := i + 1; j < len(matches); j++ {
			a, b := matches[i], matches[j]
			if a.InputStart <= b.InputEnd && b.InputStart <= a.InputEnd {
				t.Errorf("matches %d and %d overlap: %+v, %+v", i, j, a, b)
			}
		}
	}
}

// Scenario 5 variant: the same two equal-length overlapping candidates as
// TestTagScenario5_EqualLengthOverlapDropsBoth, but with MinBlocks raised
// above their length. Per spec order (min_blocks discard happens before
// overlap resolution), both candidates must be discarded in step 1 and
// never reach the equal-length-conflict logic, producing zero warnings.
func TestTagMinBlocksAppliedBeforeOverlapResolution(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"نور", "الهدى", "نور", "الهدى"})
	opts := DefaultOptions()
	opts.Stopwords = stopword.Set{}
	opts.MinBlocks = 3 // both candidates have length 2, below threshold

	matches, warnings, err := Tag([]string{"نور", "الهدى"}, idx, opts)
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("got %d matches, want 0", len(matches))
	}
	if len(warnings) != 0 {
		t.Fatalf("got %d warnings, want 0 (candidates below min_blocks must never reach overlap resolution): %+v", len(warnings), warnings)
	}
}

func TestTagMinBlocksThreshold(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, []string{"واحد", "اثنان"})
	opts := DefaultOptions()
	opts.Stopwords = stopword.Set{}
	opts.MinBlocks = 3 // the only possible match has length 2

	matches, _, err := Tag([]string{"واحد", "اثنان"}, idx, opts)
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("got %d matches, want 0 (below min_blocks): %+v", len(matches), matches)
	}
}
