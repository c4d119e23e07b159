package corpus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kabikaj/quran-tagger/data"
	"github.com/kabikaj/quran-tagger/normalize"
)

func sampleIndex(t *testing.T) *Index {
	t.Helper()
	words, metas, err := LoadTSVBytes(data.QuranSample)
	if err != nil {
		t.Fatalf("LoadTSVBytes: %v", err)
	}
	idx, err := Build(words, metas)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return idx
}

func TestBuildLengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := Build([]string{"a", "b"}, []Meta{{1, 1, 1}})
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestBuildAndLookup(t *testing.T) {
	t.Parallel()

	idx := sampleIndex(t)

	if idx.Len() == 0 {
		t.Fatal("expected non-empty corpus")
	}

	// "الرحمن الرحيم" appears twice in the sample (words 3-4 of verse 1:1
	// and words 1-2 of verse 1:3).
	b := Bigram{First: normalize.Word("الرَّحْمَٰنِ"), Second: normalize.Word("الرَّحِيمِ")}
	hits := idx.Lookup(b)
	if len(hits) < 2 {
		t.Errorf("Lookup(الرحمن الرحيم) = %d hits, want >= 2", len(hits))
	}
}

func TestLookupMiss(t *testing.T) {
	t.Parallel()

	idx := sampleIndex(t)
	b := Bigram{First: normalize.Form("xyz"), Second: normalize.Form("abc")}
	if got := idx.Lookup(b); got != nil {
		t.Errorf("Lookup of absent bigram = %v, want nil", got)
	}
}

func TestAtAndMeta(t *testing.T) {
	t.Parallel()

	idx := sampleIndex(t)
	if got, want := idx.At(0), normalize.Word("بِسْمِ"); got != want {
		t.Errorf("At(0) = %q, want %q", got, want)
	}
	if m := idx.Meta(0); m.Surah != 1 || m.Verse != 1 || m.WordInVerse != 1 {
		t.Errorf("Meta(0) = %+v, want {1 1 1}", m)
	}
}

func TestReference(t *testing.T) {
	t.Parallel()

	idx := sampleIndex(t)

	// Positions 0-3 are verse 1:1's four words.
	if got, want := idx.Reference(0, 3), "1:1"; got != want {
		t.Errorf("Reference(0,3) = %q, want %q", got, want)
	}

	// Position 3 is the last word of 1:1, position 4 is the first of 1:2.
	if got, want := idx.Reference(3, 4), "1:1-2"; got != want {
		t.Errorf("Reference(3,4) = %q, want %q", got, want)
	}
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	idx := sampleIndex(t)

	var buf bytes.Buffer
	if err := idx.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Len() != idx.Len() {
		t.Fatalf("decoded Len() = %d, want %d", got.Len(), idx.Len())
	}
	for p := 0; p < idx.Len(); p++ {
		if got.At(Pos(p)) != idx.At(Pos(p)) {
			t.Errorf("decoded At(%d) = %q, want %q", p, got.At(Pos(p)), idx.At(Pos(p)))
		}
	}
}

func TestLoadTSVMalformed(t *testing.T) {
	t.Parallel()

	_, _, err := LoadTSV(strings.NewReader("1\t1\t1\n"))
	if err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestLoadTSVIgnoresCommentsAndBlankLines(t *testing.T) {
	t.Parallel()

	input := "# a comment\n\n1\t1\t1\tبِسْمِ\n"
	words, metas, err := LoadTSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadTSV: %v", err)
	}
	if len(words) != 1 || len(metas) != 1 {
		t.Fatalf("got %d words, %d metas, want 1, 1", len(words), len(metas))
	}
}
