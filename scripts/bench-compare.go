//go:build ignore

// Package main compares two Go benchmark output files and fails on
// performance regressions. Capture a run with
//
//	go test -bench=. -benchmem ./... > current.txt
//
// then compare it against a saved baseline:
//
//	go run scripts/bench-compare.go current.txt baseline.txt
//
// A benchmark counts as regressed when its ns/op grows by more than the
// threshold.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
)

const (
	// defaultThreshold is the allowed slowdown before a benchmark fails.
	defaultThreshold = 0.20

	// improveThreshold marks results worth calling out as faster.
	improveThreshold = 0.10
)

var (
	outputJSON = flag.Bool("json", false, "Output the report as JSON")
	threshold  = flag.Float64("threshold", defaultThreshold, "Regression threshold as a fraction (0.0-1.0)")
	verbose    = flag.Bool("verbose", false, "Show unchanged, new, and missing benchmarks too")
	failOnSlow = flag.Bool("fail", true, "Exit non-zero when a regression is found")
)

// benchLine matches standard `go test -bench` output:
// BenchmarkName-N  iterations  ns/op  [B/op]  [allocs/op]
var benchLine = regexp.MustCompile(`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`)

type measurement struct {
	Name        string  `json:"name"`
	NsPerOp     float64 `json:"ns_per_op"`
	BytesPerOp  int     `json:"bytes_per_op"`
	AllocsPerOp int     `json:"allocs_per_op"`
}

type comparison struct {
	Name     string  `json:"name"`
	Current  float64 `json:"current_ns_per_op,omitempty"`
	Baseline float64 `json:"baseline_ns_per_op,omitempty"`
	DeltaPct float64 `json:"delta_percent"`
	Status   string  `json:"status"`
}

type report struct {
	Total        int           `json:"total"`
	Regressions  int           `json:"regressions"`
	Improvements int           `json:"improvements"`
	Unchanged    int           `json:"unchanged"`
	New          int           `json:"new"`
	Missing      int           `json:"missing"`
	Results      []*comparison `json:"results"`
	Failed       bool          `json:"failed"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <current.txt> <baseline.txt>\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(2)
	}

	current, err := parseFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flag.Arg(0), err)
		os.Exit(2)
	}
	baseline, err := parseFile(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flag.Arg(1), err)
		os.Exit(2)
	}

	r := compare(current, baseline)

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			os.Exit(2)
		}
	} else {
		printReport(r)
	}

	if *failOnSlow && r.Failed {
		os.Exit(1)
	}
}

// parseFile reads one `go test -bench` output file into a map keyed by
// benchmark name. Lines that are not benchmark results are skipped.
func parseFile(path string) (map[string]*measurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string]*measurement)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		m := benchLine.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		res := &measurement{Name: m[1]}
		res.NsPerOp, _ = strconv.ParseFloat(m[3], 64)
		if m[4] != "" {
			res.BytesPerOp, _ = strconv.Atoi(m[4])
		}
		if m[5] != "" {
			res.AllocsPerOp, _ = strconv.Atoi(m[5])
		}
		out[res.Name] = res
	}
	return out, sc.Err()
}

func compare(current, baseline map[string]*measurement) *report {
	r := &report{}

	names := make([]string, 0, len(current))
	for name := range current {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		curr := current[name]
		r.Total++

		base, ok := baseline[name]
		if !ok {
			r.New++
			if *verbose {
				r.Results = append(r.Results, &comparison{
					Name: name, Current: curr.NsPerOp, Status: "new",
				})
			}
			continue
		}

		delta := 0.0
		if base.NsPerOp > 0 {
			delta = (curr.NsPerOp - base.NsPerOp) / base.NsPerOp
		}
		c := &comparison{
			Name:     name,
			Current:  curr.NsPerOp,
			Baseline: base.NsPerOp,
			DeltaPct: delta * 100,
		}

		switch {
		case delta > *threshold:
			c.Status = "regression"
			r.Regressions++
			r.Failed = true
		case delta < -improveThreshold:
			c.Status = "faster"
			r.Improvements++
		default:
			c.Status = "ok"
			r.Unchanged++
		}

		if c.Status != "ok" || *verbose {
			r.Results = append(r.Results, c)
		}
	}

	gone := make([]string, 0)
	for name := range baseline {
		if _, ok := current[name]; !ok {
			gone = append(gone, name)
		}
	}
	sort.Strings(gone)
	for _, name := range gone {
		r.Missing++
		if *verbose {
			r.Results = append(r.Results, &comparison{
				Name: name, Baseline: baseline[name].NsPerOp, Status: "missing",
			})
		}
	}

	return r
}

func printReport(r *report) {
	fmt.Printf("Benchmarks: %d  regressions: %d  faster: %d  unchanged: %d  new: %d  missing: %d\n",
		r.Total, r.Regressions, r.Improvements, r.Unchanged, r.New, r.Missing)

	if len(r.Results) > 0 {
		fmt.Println()
		fmt.Printf("%-52s %14s %14s %9s\n", "BENCHMARK", "CURRENT", "BASELINE", "DELTA")
		for _, c := range r.Results {
			name := c.Name
			if len(name) > 52 {
				name = name[:49] + "..."
			}
			switch c.Status {
			case "new":
				fmt.Printf("%-52s %11.0f ns %14s %9s %s\n", name, c.Current, "-", "-", c.Status)
			case "missing":
				fmt.Printf("%-52s %14s %11.0f ns %9s %s\n", name, "-", c.Baseline, "-", c.Status)
			default:
				fmt.Printf("%-52s %11.0f ns %11.0f ns %+8.1f%% %s\n", name, c.Current, c.Baseline, c.DeltaPct, c.Status)
			}
		}
	}

	fmt.Println()
	if r.Failed {
		fmt.Printf("FAIL: %d benchmark(s) slower than baseline by more than %.0f%%\n",
			r.Regressions, *threshold*100)
	} else {
		fmt.Println("OK: no regressions above threshold")
	}
}
