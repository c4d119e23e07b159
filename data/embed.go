// Package data embeds the stopword lists and sample Qurʾān corpus shipped
// with the module.
package data

import _ "embed"

// StopwordsInternal is the conservative, hand-curated stopword list (see
// stopword.Internal).
//
//go:embed stopwords_internal.txt
var StopwordsInternal []byte

// StopwordsLeeds is the Leeds Arabic Corpus frequency-derived stopword
// list, the shipped default (see stopword.Leeds).
//
//go:embed stopwords_leeds.txt
var StopwordsLeeds []byte

// QuranSample is a small hand-entered Qurʾān corpus (Sūrat al-Fātiḥa) in
// the tab-separated format corpus.LoadTSV expects, used by tests, the e2e
// pipeline, and as a runnable default for cmd/qurantag when no --corpus
// flag is given. It is not the full Tanzīl corpus; see scripts/buildcorpus.go.
//
//go:embed quran_sample.tsv
var QuranSample []byte

// GoldenNormalize holds the golden fixture for normalize.Word, embedded so
// it can also be read back by tooling outside the normalize package's test
// binary (e.g. a future evaluation harness).
//
//go:embed golden/normalize.json
var GoldenNormalize []byte
