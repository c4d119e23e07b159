//go:build ignore

// buildcorpus converts a Tanzīl-format plain-text Qurʾān file into the
// tab-separated corpus format corpus.LoadTSV consumes, and optionally
// writes a pre-built gob-encoded index alongside it for fast startup. Run
// from the project root:
//
//	go run scripts/buildcorpus.go -in quran-simple-clean.txt -out data/quran_full.tsv -index data/quran_full.gob
//
// Input format (Tanzīl "simple clean" export): one line per verse,
// "surah|verse|text", with '#'-prefixed header lines ignored. Text is
// split into words with tokenizer.Words — the same tokenizer the CLI input
// path uses, so the corpus word stream and a tagging run's input stream are
// segmented identically.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kabikaj/quran-tagger/corpus"
	"github.com/kabikaj/quran-tagger/tokenizer"
)

const scannerBufSize = 1 << 20 // 1 MiB — Tanzīl lines are short, this is generous

func main() {
	log.SetFlags(0)
	log.SetPrefix("[buildcorpus] ")

	inPath := flag.String("in", "", "path to a Tanzīl-format 'surah|verse|text' plain-text file (required)")
	outPath := flag.String("out", "data/quran_full.tsv", "path to write the TSV corpus")
	indexPath := flag.String("index", "", "optional path to write a gob-encoded corpus.Index")
	flag.Parse()

	if *inPath == "" {
		log.Fatal("missing -in")
	}

	words, metas, err := parseTanzil(*inPath)
	if err != nil {
		log.Fatalf("parsing %s: %v", *inPath, err)
	}
	log.Printf("parsed %d words across %d verses", len(words), lastVerseCount(metas))

	if err := writeTSV(*outPath, words, metas); err != nil {
		log.Fatalf("writing %s: %v", *outPath, err)
	}
	log.Printf("wrote %s", *outPath)

	if *indexPath == "" {
		return
	}

	ix, err := corpus.Build(words, metas)
	if err != nil {
		log.Fatalf("building index: %v", err)
	}
	f, err := os.Create(*indexPath)
	if err != nil {
		log.Fatalf("creating %s: %v", *indexPath, err)
	}
	defer f.Close()
	if err := ix.Encode(f); err != nil {
		log.Fatalf("encoding index: %v", err)
	}
	log.Printf("wrote %s (%d positions)", *indexPath, ix.Len())
}

// parseTanzil reads a "surah|verse|text" plain-text file and tokenizes each
// verse into words, returning parallel words/metas slices in file order
// (the order corpus.Build and corpus.LoadTSV expect).
func parseTanzil(path string) (words []string, metas []corpus.Meta, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, scannerBufSize), scannerBufSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.SplitN(line, "|", 3)
		if len(cols) != 3 {
			return nil, nil, fmt.Errorf("line %d: want 3 '|'-separated fields, got %d", lineNo, len(cols))
		}

		surah, err := strconv.Atoi(strings.TrimSpace(cols[0]))
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: surah: %w", lineNo, err)
		}
		verse, err := strconv.Atoi(strings.TrimSpace(cols[1]))
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: verse: %w", lineNo, err)
		}

		verseWords := tokenizer.Words(cols[2])
		for wiv, w := range verseWords {
			words = append(words, w)
			metas = append(metas, corpus.Meta{Surah: surah, Verse: verse, WordInVerse: wiv + 1})
		}
	}
	return words, metas, sc.Err()
}

// writeTSV writes words/metas in the "surah\tverse\tword_in_verse\tword"
// format corpus.LoadTSV parses.
func writeTSV(path string, words []string, metas []corpus.Meta) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, scannerBufSize)
	fmt.Fprintln(bw, "# surah\tverse\tword_in_verse\tword")
	for i, w := range words {
		m := metas[i]
		fmt.Fprintf(bw, "%d\t%d\t%d\t%s\n", m.Surah, m.Verse, m.WordInVerse, w)
	}
	return bw.Flush()
}

func lastVerseCount(metas []corpus.Meta) int {
	n := 0
	for i, m := range metas {
		if i == 0 || m.Surah != metas[i-1].Surah || m.Verse != metas[i-1].Verse {
			n++
		}
	}
	return n
}
