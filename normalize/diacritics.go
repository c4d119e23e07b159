package normalize

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// harakatRanges is the set of Arabic combining diacritics stripped by
// stripDiacritics: fatha/damma/kasra and their tanwīn forms, sukūn, shadda,
// and the superscript alif (dagger alif) used in Qurʾānic orthography.
// U+064B–U+0652 covers fatḥatān through sukūn; U+0670 is the dagger alif;
// U+06D6–U+06ED are the small Qurʾānic recitation marks occasionally
// present in tashkīl-rich editions.
var harakatRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x064B, Hi: 0x0652, Stride: 1},
		{Lo: 0x0670, Hi: 0x0670, Stride: 1},
		{Lo: 0x06D6, Hi: 0x06ED, Stride: 1},
	},
}

// diacriticStripper is the canonical x/text transform chain for removing
// combining marks: decompose to NFD so base letter and diacritic are
// separate runes, drop the diacritic runes, recompose to NFC. This is the
// idiom the teacher package's own internal/azcase doc comment names
// ("preprocess with golang.org/x/text/unicode/norm") but never wires in
// itself; the matching engine's normalizer does.
var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(harakatRanges)),
	norm.NFC,
)

// stripDiacritics removes Arabic harakāt (fatha, damma, kasra, tanwīn,
// sukūn, shadda) and the Qurʾānic dagger alif / recitation marks from s:
// Unicode canonical decomposition first, then removal of the runes in
// harakatRanges, so any precomposed or decomposed input form is handled
// uniformly.
func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		// transform.String only errors on malformed UTF-8 from a
		// non-reversible transformer; ours never fails on valid input,
		// but fall back to the original rather than losing the token.
		return s
	}
	return out
}
