// Command qurantag tags Qurʾānic quotations in Arabic text read from
// stdin, emitting one JSON object per match to stdout (newline-delimited)
// and any overlap warnings to stderr.
//
//	qurantag < article.txt
//	qurantag -min 3 -ellipsis < article.txt
//	qurantag -corpus data/quran_full.tsv < article.txt
//	qurantag -gold testdata/article.gold.tsv < article.txt
//
// With no -corpus flag, qurantag tags against the small embedded sample
// corpus (data.QuranSample) — useful for trying the tool out, not for
// production tagging of arbitrary text.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/kabikaj/quran-tagger/corpus"
	"github.com/kabikaj/quran-tagger/data"
	"github.com/kabikaj/quran-tagger/match"
	"github.com/kabikaj/quran-tagger/stopword"
	"github.com/kabikaj/quran-tagger/tokenizer"
)

// matchLine is the NDJSON shape written to stdout for each emitted Match.
type matchLine struct {
	InputStart int    `json:"input_start"`
	InputEnd   int    `json:"input_end"`
	Ref        string `json:"ref"`
	Text       string `json:"text"`
	Ellipsis   bool   `json:"ellipsis,omitempty"`
}

func main() {
	os.Exit(main1())
}

// main1 is main's implementation, factored out so TestMain can drive it
// under testscript.RunMain without an os.Exit inside the test binary.
func main1() int {
	minBlocks := flag.Int("min", 2, "minimum matched words for a candidate to be emitted")
	quiet := flag.Bool("quiet", false, "suppress overlap warnings on stderr")
	ellipsis := flag.Bool("ellipsis", false, "tolerate one bounded gap inside a candidate span")
	corpusPath := flag.String("corpus", "", "path to a TSV corpus file (default: embedded sample)")
	goldPath := flag.String("gold", "", "path to a gold-standard TSV of expected matches, for evaluation instead of tagging")
	stopwordPolicy := flag.String("stopwords", "leeds", "stopword list to use for seed rejection: leeds or internal")
	flag.Parse()

	idx, err := loadCorpus(*corpusPath)
	if err != nil {
		pterm.Error.Printf("qurantag: loading corpus: %v\n", err)
		return 1
	}

	opts := match.DefaultOptions()
	opts.MinBlocks = *minBlocks
	opts.WithEllipsis = *ellipsis
	switch strings.ToLower(*stopwordPolicy) {
	case "leeds":
		opts.Stopwords = stopword.Leeds()
	case "internal":
		opts.Stopwords = stopword.Internal()
	default:
		pterm.Error.Printf("qurantag: unknown -stopwords value %q (want leeds or internal)\n", *stopwordPolicy)
		return 1
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		pterm.Error.Printf("qurantag: reading stdin: %v\n", err)
		return 1
	}

	tokens := tokenizer.Words(string(input))
	if len(tokens) == 0 {
		return 0
	}

	matches, warnings, err := match.Tag(tokens, idx, opts)
	if err != nil {
		pterm.Error.Printf("qurantag: %v\n", err)
		return 1
	}

	if !*quiet {
		for _, w := range warnings {
			pterm.Warning.Printf("ambiguous equal-length overlap: %s vs %s\n",
				idx.Reference(w.QPosA, w.QPosA), idx.Reference(w.QPosB, w.QPosB))
		}
	}

	if *goldPath != "" {
		return runEvaluation(*goldPath, matches)
	}

	return writeMatches(os.Stdout, tokens, idx, matches)
}

// loadCorpus loads the corpus at path, or the embedded sample when path is
// empty.
func loadCorpus(path string) (*corpus.Index, error) {
	if path == "" {
		words, metas, err := corpus.LoadTSVBytes(data.QuranSample)
		if err != nil {
			return nil, fmt.Errorf("embedded sample: %w", err)
		}
		return corpus.Build(words, metas)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, metas, err := corpus.LoadTSV(f)
	if err != nil {
		return nil, err
	}
	return corpus.Build(words, metas)
}

// writeMatches writes one NDJSON line per match to w.
func writeMatches(w io.Writer, tokens []string, idx *corpus.Index, matches []match.Match) int {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, m := range matches {
		line := matchLine{
			InputStart: m.InputStart,
			InputEnd:   m.InputEnd,
			Ref:        idx.Reference(m.QPosStart, m.QPosEnd),
			Text:       strings.Join(tokens[m.InputStart:m.InputEnd+1], " "),
			Ellipsis:   m.Ellipsis != nil,
		}
		if err := enc.Encode(line); err != nil {
			pterm.Error.Printf("qurantag: encoding match: %v\n", err)
			return 1
		}
	}
	if err := bw.Flush(); err != nil {
		pterm.Error.Printf("qurantag: writing output: %v\n", err)
		return 1
	}
	return 0
}

// goldSpan is one expected match parsed from a -gold file: "input_start
// input_end" per line (tab-separated), identifying spans by input token
// position rather than by reference text, so gold files stay independent
// of which corpus edition produced the reference string.
type goldSpan struct {
	start, end int
}

// runEvaluation compares matches against the gold spans read from
// goldPath and prints a precision/recall/F1 summary to stderr.
func runEvaluation(goldPath string, matches []match.Match) int {
	f, err := os.Open(goldPath)
	if err != nil {
		pterm.Error.Printf("qurantag: opening gold file: %v\n", err)
		return 1
	}
	defer f.Close()

	gold, err := parseGold(f)
	if err != nil {
		pterm.Error.Printf("qurantag: parsing gold file: %v\n", err)
		return 1
	}

	got := make(map[goldSpan]bool, len(matches))
	for _, m := range matches {
		got[goldSpan{m.InputStart, m.InputEnd}] = true
	}
	want := make(map[goldSpan]bool, len(gold))
	for _, g := range gold {
		want[g] = true
	}

	var truePos int
	for span := range got {
		if want[span] {
			truePos++
		}
	}

	precision, recall, f1 := 0.0, 0.0, 0.0
	if len(got) > 0 {
		precision = float64(truePos) / float64(len(got))
	}
	if len(want) > 0 {
		recall = float64(truePos) / float64(len(want))
	}
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	fmt.Fprintf(os.Stderr, "matches: %d, gold: %d, true positives: %d\n", len(got), len(want), truePos)
	fmt.Fprintf(os.Stderr, "precision: %.3f  recall: %.3f  f1: %.3f\n", precision, recall, f1)
	return 0
}

// parseGold reads "input_start\tinput_end" lines, skipping blanks and
// '#'-prefixed comments.
func parseGold(r io.Reader) ([]goldSpan, error) {
	sc := bufio.NewScanner(r)
	var spans []goldSpan
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 2 {
			return nil, fmt.Errorf("line %d: want 2 columns, got %d", lineNo, len(cols))
		}
		start, err := strconv.Atoi(cols[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: start: %w", lineNo, err)
		}
		end, err := strconv.Atoi(cols[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: end: %w", lineNo, err)
		}
		spans = append(spans, goldSpan{start, end})
	}
	return spans, sc.Err()
}
