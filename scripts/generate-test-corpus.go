//go:build ignore

// Package main generates a synthetic plain-text corpus for benchmarking
// search throughput. Every file holds prose-like lines built from a fixed
// word pool, with a needle word injected at a known rate so expected match
// counts follow directly from the flags.
// Usage: go run scripts/generate-test-corpus.go -files 200 -lines 500 -output testdata/bench
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

var (
	numFiles  = flag.Int("files", 200, "Number of files to generate")
	numLines  = flag.Int("lines", 500, "Lines per file")
	outputDir = flag.String("output", "testdata/bench", "Output directory")
	seed      = flag.Int64("seed", 42, "Random seed for reproducibility")
	needle    = flag.String("needle", "zephyr", "Word injected at the needle rate")
	needleGap = flag.Int("needle-gap", 50, "Inject the needle once every N lines (0 disables)")
	crlfPct   = flag.Int("crlf", 10, "Percent of files written with CRLF line endings")
)

// words is the pool for prose lines. The default needle must never
// appear here or expected match counts stop being predictable.
var words = []string{
	"the", "a", "quiet", "morning", "train", "left", "early", "river",
	"mountain", "signal", "harbor", "lantern", "winter", "summer",
	"stone", "bridge", "garden", "letter", "window", "evening",
	"journey", "record", "ledger", "copper", "silver", "market",
	"village", "thread", "canvas", "compass", "anchor", "meadow",
	"orchard", "timber", "granite", "hollow", "ridge", "valley",
	"current", "tide", "beacon", "mile", "road", "crossing",
	"station", "carried", "waited", "turned", "followed", "returned",
}

// subdirs spreads the corpus over a small tree so recursive walks do
// real directory work.
var subdirs = []string{
	"logs",
	"notes",
	"data",
	filepath.Join("data", "archive"),
}

func main() {
	flag.Parse()
	rng := rand.New(rand.NewSource(*seed))

	for _, sub := range subdirs {
		if err := os.MkdirAll(filepath.Join(*outputDir, sub), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating directory %s: %v\n", sub, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Generating %d files in %s...\n", *numFiles, *outputDir)

	totalLines := 0
	needleLines := 0
	for i := 0; i < *numFiles; i++ {
		sub := subdirs[i%len(subdirs)]
		crlf := rng.Intn(100) < *crlfPct
		path := filepath.Join(*outputDir, sub, fmt.Sprintf("corpus_%04d.txt", i))

		n, err := writeCorpusFile(rng, path, crlf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		totalLines += *numLines
		needleLines += n
	}

	fmt.Printf("Generated %d files, %d lines, %d containing %q.\n",
		*numFiles, totalLines, needleLines, *needle)
}

// writeCorpusFile emits one file and reports how many of its lines
// carry the needle word.
func writeCorpusFile(rng *rand.Rand, path string, crlf bool) (int, error) {
	ending := "\n"
	if crlf {
		ending = "\r\n"
	}

	var sb strings.Builder
	needles := 0
	for line := 1; line <= *numLines; line++ {
		n := 6 + rng.Intn(7)
		parts := make([]string, n)
		for i := range parts {
			parts[i] = words[rng.Intn(len(words))]
		}
		if *needleGap > 0 && line%*needleGap == 0 {
			parts[rng.Intn(n)] = *needle
			needles++
		}
		sb.WriteString(strings.Join(parts, " "))
		sb.WriteString(ending)
	}

	return needles, os.WriteFile(path, []byte(sb.String()), 0644)
}
