// Package scriptdetect estimates how much of a piece of text is
// Arabic-script, for diagnostic use: a low ratio is a signal that an input
// file is not the kind of Arabic-script prose the matching engine expects.
// The CLI and the corpus loader do not call it.
//
// Two API layers are provided:
//
//   - Structured: Detect returns a Result carrying the Arabic-letter
//     ratio and letter counts.
//   - Convenience: IsArabic reports a single bool against a fixed
//     threshold.
//
// Input longer than 1 MiB is silently truncated (rune-safe). Input with
// fewer than minLetters letter runes returns the zero Result.
//
// All functions are safe for concurrent use by multiple goroutines.
package scriptdetect

import (
	"unicode"
	"unicode/utf8"

	"github.com/kabikaj/quran-tagger/internal/arabic"
)

const (
	maxInputBytes = 1 << 20 // 1 MiB
	minLetters    = 1

	// defaultThreshold is the Arabic-letter ratio at or above which
	// IsArabic reports true.
	defaultThreshold = 0.5
)

// Result holds the outcome of a script-ratio detection.
type Result struct {
	// TotalLetters is the number of Unicode letters scanned.
	TotalLetters int
	// ArabicLetters is the number of those letters in the Arabic script
	// block ranges (see internal/arabic.IsArabicScript).
	ArabicLetters int
	// Ratio is ArabicLetters / TotalLetters, or 0 when TotalLetters is 0.
	Ratio float64
}

// Detect scans s and returns the Arabic-script letter ratio. Returns the
// zero Result for empty input or input with fewer than minLetters letters.
func Detect(s string) Result {
	if s == "" {
		return Result{}
	}

	if len(s) > maxInputBytes {
		pos := maxInputBytes
		for pos > 0 && !utf8.RuneStart(s[pos]) {
			pos--
		}
		s = s[:pos]
	}

	var total, ar int
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		if arabic.IsArabicScript(r) {
			ar++
		}
	}

	if total < minLetters {
		return Result{}
	}

	return Result{
		TotalLetters:  total,
		ArabicLetters: ar,
		Ratio:         float64(ar) / float64(total),
	}
}

// IsArabic reports whether at least half of the letters in s are
// Arabic-script (Ratio >= defaultThreshold).
func IsArabic(s string) bool {
	return Detect(s).Ratio >= defaultThreshold
}
