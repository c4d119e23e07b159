// Package normalize reduces Arabic-script words to an archigraphemic form:
// a string over a small reduced alphabet ("letterblocks") that collapses
// diacritics, hamza placement, presentation-form variation, and tatweel so
// that orthographic variants of the same Qurʾānic word compare equal.
//
// Two API layers are provided:
//
//   - Structured: Word normalizes a single token; Phrase normalizes a slice.
//   - There is no separate convenience layer here — a normalized Form is
//     already the smallest useful unit; callers needing strings compare
//     Form values directly (Form is a defined string type).
//
// Normalization is a pure, deterministic, idempotent function of its input:
// Word(string(Word(s))) == Word(s) for all s. Two Tokens compare
// equal-under-matching if and only if their Forms are byte-equal.
//
// Known limitations:
//
//   - Tāʾ marbūṭa is never folded to hāʾ (shipped policy: kept distinct).
//     A future build could flip foldTaMarbuta, but this is not a per-call
//     option — the distinction is a corpus-wide orthographic decision, not
//     a request-time tunable.
//   - Hamza is discarded, not preserved: hamza-bearing alif, wāw and yāʾ
//     fold to their bare seat, so "سأل" and "سال" normalize identically,
//     and an isolated hamza is dropped outright. This is intentional (see the matching engine's design)
//     and is what lets input spelling variation match canonical Qurʾānic
//     orthography.
//   - Input must already be valid UTF-8; invalid byte sequences are not
//     rejected, merely classified as non-letters and dropped.
//
// All functions are safe for concurrent use by multiple goroutines.
package normalize

import "github.com/kabikaj/quran-tagger/internal/arabic"

// Form is the archigraphemic normalization of a Token: a string over the
// reduced letterblock alphabet. Form is a defined type (not a plain string)
// so call sites cannot silently pass an un-normalized string where a Form
// is expected.
type Form string

// foldTaMarbuta controls whether tāʾ marbūṭa (ة) folds onto hāʾ (ه).
// Shipped off: the two are kept distinct. See the package doc comment and
// DESIGN.md for the rationale recorded against this Open Question.
const foldTaMarbuta = false

// maxTokenRunes bounds the size of a single token passed to Word. Qurʾānic
// and quotation words are never anywhere near this long; the cap exists so
// a pathological input token cannot make normalization allocate unbounded
// memory.
const maxTokenRunes = 256

// tatweelRune is the Arabic kashīda (tatweel) character, stripped
// unconditionally regardless of position.
const tatweelRune = 'ـ'

// Word normalizes a single token to its archigraphemic Form.
//
// The algorithm runs in a fixed order: strip diacritics, strip tatweel,
// fold hamza-bearing and yāʾ/alif-maqṣūra variants, optionally fold tāʾ
// marbūṭa, strip any remaining non-letter runes, then map each residual
// letter to its letterblock.
//
// Returns Form("") for a token with no letter content after stripping
// (punctuation-only, digit-only, or empty input); such tokens never
// participate in a bigram (see the corpus and match packages).
func Word(token string) Form {
	if token == "" {
		return ""
	}
	if n := len([]rune(token)); n > maxTokenRunes {
		token = string([]rune(token)[:maxTokenRunes])
	}

	stripped := stripDiacritics(token)

	letters := make([]rune, 0, len(stripped))
	for _, r := range stripped {
		if r == tatweelRune {
			continue
		}
		lb, ok := foldRune(r)
		if !ok {
			continue // non-letter: punctuation, digit, Latin, whitespace, isolated hamza
		}
		letters = append(letters, lb.Rune())
	}

	if len(letters) == 0 {
		return ""
	}
	return Form(letters)
}

// Phrase normalizes every token in tokens, preserving order and length —
// Phrase(tokens)[i] == Word(tokens[i]) for all i. Convenience used by both
// corpus.Build and match.Tag so they never re-derive the mapping loop.
func Phrase(tokens []string) []Form {
	if len(tokens) == 0 {
		return nil
	}
	forms := make([]Form, len(tokens))
	for i, t := range tokens {
		forms[i] = Word(t)
	}
	return forms
}

// foldRune applies hamza/yāʾ/alif-maqṣūra folding and, gated by
// foldTaMarbuta, tāʾ marbūṭa folding, then classifies the result into a
// Letterblock. Stripping remaining non-letters falls out naturally: runes
// that are neither foldable nor classifiable return ok=false.
func foldRune(r rune) (arabic.Letterblock, bool) {
	switch r {
	// Hamza-bearing alif forms and alif madda fold to bare alif.
	case 'أ', 'إ', 'آ', 'ٱ':
		return arabic.Alef, true
	// Hamza-on-wāw folds to wāw.
	case 'ؤ':
		return arabic.Waw, true
	// Hamza-on-yāʾ and dotless yāʾ (alif maqṣūra) fold to yāʾ.
	case 'ئ', 'ى', 'ی':
		return arabic.Yeh, true
	// Isolated hamza carries no rasm shape of its own: discarded.
	case 'ء':
		return arabic.Invalid, false
	}

	if r == 'ة' && foldTaMarbuta {
		return arabic.Heh, true
	}

	return arabic.ClassifyLetter(r)
}
