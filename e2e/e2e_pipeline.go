//go:build ignore

// e2e_pipeline exercises every package in the matching engine against the
// embedded sample corpus in a single run and writes structured results to
// data/e2e_pipeline.log. Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kabikaj/quran-tagger/corpus"
	"github.com/kabikaj/quran-tagger/data"
	"github.com/kabikaj/quran-tagger/match"
	"github.com/kabikaj/quran-tagger/normalize"
	"github.com/kabikaj/quran-tagger/scriptdetect"
	"github.com/kabikaj/quran-tagger/stopword"
	"github.com/kabikaj/quran-tagger/tokenizer"
)

const (
	logPath      = "data/e2e_pipeline.log"
	moduleCount  = 6
	maxDetailLen = 200
	concWorkers  = 8
	concIter     = 100
	separator    = "=========================================================="
)

// bismillah is the full opening verse, used across suites as a known-good
// input that should match position 1:1 in the embedded sample corpus.
const bismillah = "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ"

// fatihaOpening is the first two verses concatenated, spanning the 1:1-1:2
// boundary in the sample corpus.
const fatihaOpening = "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ"

// unmatched is ordinary Arabic prose absent from the sample corpus,
// exercising the no-match path.
const unmatched = "هذا نص عربي عادي لا علاقة له بالقرآن"

const latinProse = "this is ordinary english prose with no arabic at all"

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

// ---------- shared fixtures ----------

var sampleIndex *corpus.Index

func loadSampleIndex() error {
	words, metas, err := corpus.LoadTSVBytes(data.QuranSample)
	if err != nil {
		return err
	}
	ix, err := corpus.Build(words, metas)
	if err != nil {
		return err
	}
	sampleIndex = ix
	return nil
}

// ---------- suites ----------

func testNormalize() []testResult {
	const mod = "normalize"
	var results []testResult

	results = append(results, safeRun(mod, "idempotent", func() testResult {
		start := time.Now()
		once := normalize.Word(bismillah)
		twice := normalize.Word(string(once))
		if string(once) != string(twice) {
			return fail(mod, "idempotent", "normalizing a normalized form changed it", start)
		}
		return pass(mod, "idempotent", start)
	}))

	results = append(results, safeRun(mod, "strips_diacritics", func() testResult {
		start := time.Now()
		out := string(normalize.Word("بِسْمِ"))
		if strings.ContainsAny(out, "ًٌٍَُِّْ") {
			return fail(mod, "strips_diacritics", fmt.Sprintf("harakat survived normalization: %q", out), start)
		}
		return pass(mod, "strips_diacritics", start)
	}))

	results = append(results, safeRun(mod, "phrase_matches_word", func() testResult {
		start := time.Now()
		words := strings.Fields(bismillah)
		phrase := normalize.Phrase(words)
		if len(phrase) != len(words) {
			return fail(mod, "phrase_matches_word", fmt.Sprintf("Phrase returned %d forms, want %d", len(phrase), len(words)), start)
		}
		for i, w := range words {
			if phrase[i] != normalize.Word(w) {
				return fail(mod, "phrase_matches_word", fmt.Sprintf("Phrase[%d] != Word(%q)", i, w), start)
			}
		}
		return pass(mod, "phrase_matches_word", start)
	}))

	return results
}

func testTokenizer() []testResult {
	const mod = "tokenizer"
	var results []testResult

	results = append(results, safeRun(mod, "word_tokens_reconstruction", func() testResult {
		start := time.Now()
		tokens := tokenizer.WordTokens(fatihaOpening)
		var sb strings.Builder
		for _, t := range tokens {
			sb.WriteString(t.Text)
		}
		if sb.String() != fatihaOpening {
			return fail(mod, "word_tokens_reconstruction", "concatenated tokens != original", start)
		}
		return pass(mod, "word_tokens_reconstruction", start)
	}))

	results = append(results, safeRun(mod, "offset_invariant", func() testResult {
		start := time.Now()
		for _, t := range tokenizer.WordTokens(fatihaOpening) {
			if fatihaOpening[t.Start:t.End] != t.Text {
				return fail(mod, "offset_invariant", fmt.Sprintf("text[%d:%d] != token.Text=%q", t.Start, t.End, t.Text), start)
			}
		}
		return pass(mod, "offset_invariant", start)
	}))

	results = append(results, safeRun(mod, "words_count", func() testResult {
		start := time.Now()
		words := tokenizer.Words(bismillah)
		if len(words) != 4 {
			return fail(mod, "words_count", fmt.Sprintf("Words(bismillah) = %d words, want 4", len(words)), start)
		}
		return pass(mod, "words_count", start)
	}))

	return results
}

func testStopword() []testResult {
	const mod = "stopword"
	var results []testResult

	results = append(results, safeRun(mod, "leeds_excludes_empty_form", func() testResult {
		start := time.Now()
		if stopword.Leeds().Contains(normalize.Form("")) {
			return fail(mod, "leeds_excludes_empty_form", "empty Form unexpectedly in stopword set", start)
		}
		return pass(mod, "leeds_excludes_empty_form", start)
	}))

	results = append(results, safeRun(mod, "resolve_policies", func() testResult {
		start := time.Now()
		if len(stopword.Resolve(stopword.PolicyLeeds)) == 0 {
			return fail(mod, "resolve_policies", "PolicyLeeds resolved to an empty set", start)
		}
		if len(stopword.Resolve(stopword.PolicyInternal)) == 0 {
			return fail(mod, "resolve_policies", "PolicyInternal resolved to an empty set", start)
		}
		return pass(mod, "resolve_policies", start)
	}))

	return results
}

func testScriptdetect() []testResult {
	const mod = "scriptdetect"
	var results []testResult

	results = append(results, safeRun(mod, "arabic_text", func() testResult {
		start := time.Now()
		if !scriptdetect.IsArabic(bismillah) {
			return fail(mod, "arabic_text", "IsArabic(bismillah) == false", start)
		}
		return pass(mod, "arabic_text", start)
	}))

	results = append(results, safeRun(mod, "latin_text", func() testResult {
		start := time.Now()
		if scriptdetect.IsArabic(latinProse) {
			return fail(mod, "latin_text", "IsArabic(latin prose) == true", start)
		}
		return pass(mod, "latin_text", start)
	}))

	return results
}

func testCorpus() []testResult {
	const mod = "corpus"
	var results []testResult

	results = append(results, safeRun(mod, "load_sample", func() testResult {
		start := time.Now()
		if sampleIndex.Len() == 0 {
			return fail(mod, "load_sample", "sample corpus index is empty", start)
		}
		return pass(mod, "load_sample", start)
	}))

	results = append(results, safeRun(mod, "reference_single_verse", func() testResult {
		start := time.Now()
		ref := sampleIndex.Reference(0, 3)
		if ref != "1:1" {
			return fail(mod, "reference_single_verse", fmt.Sprintf("Reference(0,3)=%q, want \"1:1\"", ref), start)
		}
		return pass(mod, "reference_single_verse", start)
	}))

	results = append(results, safeRun(mod, "encode_decode_roundtrip", func() testResult {
		start := time.Now()
		var buf strings.Builder
		if err := sampleIndex.Encode(&buf); err != nil {
			return fail(mod, "encode_decode_roundtrip", fmt.Sprintf("Encode: %v", err), start)
		}
		decoded, err := corpus.Decode(strings.NewReader(buf.String()))
		if err != nil {
			return fail(mod, "encode_decode_roundtrip", fmt.Sprintf("Decode: %v", err), start)
		}
		if decoded.Len() != sampleIndex.Len() {
			return fail(mod, "encode_decode_roundtrip", fmt.Sprintf("decoded Len()=%d, want %d", decoded.Len(), sampleIndex.Len()), start)
		}
		return pass(mod, "encode_decode_roundtrip", start)
	}))

	return results
}

func testMatch() []testResult {
	const mod = "match"
	var results []testResult

	results = append(results, safeRun(mod, "exact_verse_match", func() testResult {
		start := time.Now()
		tokens := tokenizer.Words(bismillah)
		matches, _, err := match.Tag(tokens, sampleIndex, match.DefaultOptions())
		if err != nil {
			return fail(mod, "exact_verse_match", fmt.Sprintf("Tag error: %v", err), start)
		}
		if len(matches) != 1 {
			return fail(mod, "exact_verse_match", fmt.Sprintf("got %d matches, want 1", len(matches)), start)
		}
		if ref := sampleIndex.Reference(matches[0].QPosStart, matches[0].QPosEnd); ref != "1:1" {
			return fail(mod, "exact_verse_match", fmt.Sprintf("ref=%q, want \"1:1\"", ref), start)
		}
		return pass(mod, "exact_verse_match", start)
	}))

	results = append(results, safeRun(mod, "spans_verse_boundary", func() testResult {
		start := time.Now()
		tokens := tokenizer.Words(fatihaOpening)
		matches, _, err := match.Tag(tokens, sampleIndex, match.DefaultOptions())
		if err != nil {
			return fail(mod, "spans_verse_boundary", fmt.Sprintf("Tag error: %v", err), start)
		}
		if len(matches) != 1 {
			return fail(mod, "spans_verse_boundary", fmt.Sprintf("got %d matches, want 1", len(matches)), start)
		}
		if matches[0].InputEnd-matches[0].InputStart+1 != len(tokens) {
			return fail(mod, "spans_verse_boundary", "match does not span the full input", start)
		}
		return pass(mod, "spans_verse_boundary", start)
	}))

	results = append(results, safeRun(mod, "no_match_on_unrelated_text", func() testResult {
		start := time.Now()
		tokens := tokenizer.Words(unmatched)
		matches, _, err := match.Tag(tokens, sampleIndex, match.DefaultOptions())
		if err != nil {
			return fail(mod, "no_match_on_unrelated_text", fmt.Sprintf("Tag error: %v", err), start)
		}
		if len(matches) != 0 {
			return fail(mod, "no_match_on_unrelated_text", fmt.Sprintf("got %d matches, want 0", len(matches)), start)
		}
		return pass(mod, "no_match_on_unrelated_text", start)
	}))

	results = append(results, safeRun(mod, "empty_input_error", func() testResult {
		start := time.Now()
		_, _, err := match.Tag(nil, sampleIndex, match.DefaultOptions())
		if err != match.ErrEmptyInput {
			return fail(mod, "empty_input_error", fmt.Sprintf("err=%v, want ErrEmptyInput", err), start)
		}
		return pass(mod, "empty_input_error", start)
	}))

	return results
}

func testConcurrent() []testResult {
	const mod = "concurrent"
	var results []testResult

	results = append(results, safeRun(mod, "all_packages_8_goroutines_x100", func() testResult {
		start := time.Now()
		tokens := tokenizer.Words(bismillah)
		var panics atomic.Int64
		var wg sync.WaitGroup

		for range concWorkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range concIter {
					func() {
						defer func() {
							if p := recover(); p != nil {
								panics.Add(1)
							}
						}()
						normalize.Phrase(tokens)
						tokenizer.WordTokens(fatihaOpening)
						scriptdetect.Detect(bismillah)
						_, _, _ = match.Tag(tokens, sampleIndex, match.DefaultOptions())
					}()
				}
			}()
		}
		wg.Wait()

		if n := panics.Load(); n > 0 {
			return fail(mod, "all_packages_8_goroutines_x100", fmt.Sprintf("%d panics across goroutines", n), start)
		}
		return pass(mod, "all_packages_8_goroutines_x100", start)
	}))

	return results
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testNormalize,
		testTokenizer,
		testStopword,
		testScriptdetect,
		testCorpus,
		testMatch,
		testConcurrent,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []moduleReport {
	order := make(map[string]int)
	var reports []moduleReport

	for _, r := range results {
		idx, exists := order[r.module]
		if !exists {
			idx = len(reports)
			order[r.module] = idx
			reports = append(reports, moduleReport{name: r.module})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	now := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  quran-tagger E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", now)
	fmt.Fprintf(bw, "  Go: %s  OS: %s\n", runtime.Version(), runtime.GOOS+"/"+runtime.GOARCH)
	fmt.Fprintf(bw, "  Packages: %d\n", moduleCount)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	reports := buildReports(results)
	var totalDuration time.Duration
	for _, rep := range reports {
		totalDuration += rep.duration
	}

	for _, rep := range reports {
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.module != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
		}
		fmt.Fprintln(bw)
	}

	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  [%s] %-40s %s\n", r.module, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				for _, line := range strings.Split(r.detail, "\n") {
					fmt.Fprintf(bw, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	totalTests := len(results)
	totalPassed := 0
	for _, r := range results {
		if r.passed {
			totalPassed++
		}
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		totalTests, totalPassed, totalTests-totalPassed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(results []testResult) {
	reports := buildReports(results)
	totalPassed, totalFailed := 0, 0
	var totalDuration time.Duration

	for _, rep := range reports {
		totalPassed += rep.passed
		totalFailed += rep.failed
		totalDuration += rep.duration

		status := "OK"
		if rep.failed > 0 {
			status = "FAIL"
		}
		log.Printf("  %-12s %d/%d %s", rep.name, rep.passed, rep.tests, status)
	}

	log.Printf("")
	log.Printf("  %d tests | %d passed | %d failed | %s",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))

	for _, r := range results {
		if !r.passed {
			log.Printf("  FAIL [%s] %s: %s", r.module, r.name, r.detail)
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	if err := loadSampleIndex(); err != nil {
		log.Fatalf("cannot load sample corpus: %v", err)
	}

	log.Printf("starting E2E pipeline test (%d packages)", moduleCount)
	totalStart := time.Now()

	results := runAllSuites()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}
