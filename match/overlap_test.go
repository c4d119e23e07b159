package match

import (
	"testing"

	"github.com/kabikaj/quran-tagger/corpus"
)

// TestResolveOverlapsNoSpuriousWarningFromDoomedCandidate exercises a
// three-candidate case where a candidate (b) is silently dropped because
// it overlaps an already-accepted, strictly longer candidate (a). A third
// candidate (c) ties b's length and overlaps b, but not a. Since b never
// had a chance to be accepted, its tie with c must not produce a Warning,
// and c — which conflicts with nothing live — must be accepted.
func TestResolveOverlapsNoSpuriousWarningFromDoomedCandidate(t *testing.T) {
	t.Parallel()

	a := candidate{InputStart: 0, InputEnd: 3, QPosStart: 0, QPosEnd: 3}
	b := candidate{InputStart: 3, InputEnd: 4, QPosStart: 10, QPosEnd: 11}
	c := candidate{InputStart: 4, InputEnd: 5, QPosStart: 20, QPosEnd: 21}

	accepted, warnings := resolveOverlaps([]candidate{a, b, c})

	if len(warnings) != 0 {
		t.Fatalf("got %d warnings, want 0 (b is already doomed by a, not a live tie with c): %+v", len(warnings), warnings)
	}
	if len(accepted) != 2 {
		t.Fatalf("got %d accepted, want 2 (a and c): %+v", len(accepted), accepted)
	}

	var gotQPos []corpus.Pos
	for _, acc := range accepted {
		gotQPos = append(gotQPos, acc.QPosStart)
	}
	wantA, wantC := false, false
	for _, p := range gotQPos {
		if p == a.QPosStart {
			wantA = true
		}
		if p == c.QPosStart {
			wantC = true
		}
	}
	if !wantA || !wantC {
		t.Errorf("accepted = %+v, want a and c, not b", accepted)
	}
}

// TestResolveOverlapsGenuineEqualLengthTieStillWarns is a control: remove
// the longer overlapping candidate a, and the same pair (b, c) — now both
// live — must still be treated as a genuine equal-length conflict.
func TestResolveOverlapsGenuineEqualLengthTieStillWarns(t *testing.T) {
	t.Parallel()

	b := candidate{InputStart: 3, InputEnd: 4, QPosStart: 10, QPosEnd: 11}
	c := candidate{InputStart: 4, InputEnd: 5, QPosStart: 20, QPosEnd: 21}

	accepted, warnings := resolveOverlaps([]candidate{b, c})

	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1 (genuine equal-length overlap): %+v", len(warnings), warnings)
	}
	if len(accepted) != 0 {
		t.Fatalf("got %d accepted, want 0 (both dropped on a genuine tie): %+v", len(accepted), accepted)
	}
}
