// Package tokenizer splits raw text into words and sentences using the
// UAX#29 text segmentation algorithm, producing the []string token stream
// the matching engine's library boundary and the corpus loader expect.
//
// The package provides two API layers:
//
//   - Structured: WordTokens and SentenceTokens return []Token with byte
//     offsets and type metadata. The invariant s[t.Start:t.End] == t.Text
//     holds for every token, and concatenating all token texts reconstructs
//     the original string.
//   - Convenience: Words and Sentences return []string for the common
//     case where offsets and types are not needed (the shape match.Tag and
//     corpus.Build actually consume).
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Word-boundary detection is the generic UAX#29 algorithm, not tuned
//     for Arabic clitic segmentation — the attached conjunction wāw or
//     definite article are not split off as separate tokens. The matching
//     engine does not require clitic-level segmentation (it operates on
//     whatever granularity the input already has), but a caller doing
//     morphological analysis would need more.
//   - TokenType classification (Word/Number/Punctuation/Space/Symbol) is
//     derived after the fact from each UAX#29 segment's rune content; it
//     is a coarse summary, not part of the segmentation algorithm itself.
//   - Words additionally requires a Word-classified segment to contain at
//     least one Arabic-script rune before including it: a Latin or digit
//     run embedded in otherwise Arabic-script prose is not a token the
//     matching engine should ever try to seed a quotation from.
package tokenizer

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"

	"github.com/kabikaj/quran-tagger/internal/arabic"
)

// TokenType classifies a token by its dominant rune content.
type TokenType int

const (
	Word        TokenType = iota // contains at least one letter
	Number                       // at least one digit, no letters
	Punctuation                  // a single punctuation rune
	Space                        // whitespace
	Symbol                       // everything else (emoji, math symbols, etc.)
	Sentence                     // used only by SentenceTokens — a full sentence
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	case Sentence:
		return "Sentence"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string
	Start int
	End   int
	Type  TokenType
}

// String returns a debug representation, e.g. Word("قال")[0:6].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// WordTokens splits s into UAX#29 word-boundary segments with byte
// offsets and a coarse TokenType classification. The byte offset
// invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs s exactly.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}

	var tokens []Token
	iter := words.FromString(s)
	for iter.Next() {
		tokens = append(tokens, Token{
			Text:  iter.Value(),
			Start: iter.Start(),
			End:   iter.End(),
			Type:  classify(iter.Value()),
		})
	}
	return tokens
}

// Words returns the Word-type, Arabic-script token texts from s,
// discarding numbers, punctuation, whitespace, symbols, and any
// Word-classified segment that contains no Arabic-script rune at all.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	iter := words.FromString(s)
	for iter.Next() {
		tok := iter.Value()
		if classify(tok) == Word && isArabicWord(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// SentenceTokens splits s into UAX#29 sentence-boundary segments with
// byte offsets. Each returned Token has Type Sentence.
func SentenceTokens(s string) []Token {
	if s == "" {
		return nil
	}

	var tokens []Token
	pos := 0
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(make([]byte, 0, 64*1024), len(s)+1)
	sc.Split(sentences.SplitFunc)
	for sc.Scan() {
		text := sc.Text()
		tokens = append(tokens, Token{Text: text, Start: pos, End: pos + len(text), Type: Sentence})
		pos += len(text)
	}
	return tokens
}

// Sentences returns sentence strings from s.
func Sentences(s string) []string {
	if s == "" {
		return nil
	}
	tokens := SentenceTokens(s)
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// segmentPredicate tests a single already-segmented UAX#29 token, the
// same one-predicate-per-condition shape as uax29's own iterators/filter
// package (its Func type, tested per segment rather than per rune of the
// source). That package lives under an internal import path in v2 and is
// not importable outside the uax29 module itself, so the shape is
// reimplemented here rather than pulled in as a dependency.
type segmentPredicate func(tok string) bool

// containsLetter reports whether tok has at least one Unicode letter.
var containsLetter segmentPredicate = func(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// containsDigit reports whether tok has at least one Unicode digit.
var containsDigit segmentPredicate = func(tok string) bool {
	for _, r := range tok {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// isAllSpace reports whether every rune of tok is Unicode whitespace.
var isAllSpace segmentPredicate = func(tok string) bool {
	for _, r := range tok {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// isArabicWord reports whether tok contains at least one Arabic-script
// rune, the predicate Words applies on top of classify to exclude
// Latin/digit runs embedded in otherwise Arabic-script prose.
var isArabicWord segmentPredicate = func(tok string) bool {
	for _, r := range tok {
		if arabic.IsArabicScript(r) {
			return true
		}
	}
	return false
}

// classify derives a coarse TokenType from a single UAX#29 segment's rune
// content: Word if it contains a letter, Space if all-whitespace, Number
// if it contains a digit (and no letter), Punctuation for a lone
// punctuation rune, Symbol otherwise.
func classify(tok string) TokenType {
	if tok == "" {
		return Symbol
	}

	switch {
	case containsLetter(tok):
		return Word
	case isAllSpace(tok):
		return Space
	case containsDigit(tok):
		return Number
	}

	if r, size := utf8.DecodeRuneInString(tok); size == len(tok) && unicode.IsPunct(r) {
		return Punctuation
	}
	return Symbol
}
