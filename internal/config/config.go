// Package config defines the per-run search configuration.
//
// A SearchConfig is constructed once by the CLI from flags and positional
// arguments, then passed by value through the session. It is never mutated
// after construction.
package config

import (
	"github.com/Aman-CERP/greplite/internal/errors"
)

// SearchConfig holds the settings for one search run.
type SearchConfig struct {
	// Pattern is the text to search for. An empty pattern is valid and
	// matches every line.
	Pattern string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool

	// UseRegex interprets Pattern as a regular expression instead of a
	// literal string.
	UseRegex bool

	// ShowLineNumbers prefixes each emitted match with its 1-based line
	// number within the source.
	ShowLineNumbers bool

	// Highlight decorates match spans in the emitted lines.
	Highlight bool

	// Recursive descends into directory targets.
	Recursive bool

	// Targets are the files or directories to search. Empty means read
	// from standard input.
	Targets []string
}

// FromArgs builds a SearchConfig from positional CLI arguments.
// The first argument is the pattern (an empty string is allowed), the
// remainder are target paths. Flag-driven fields are set by the caller.
func FromArgs(args []string) (SearchConfig, error) {
	if len(args) == 0 {
		return SearchConfig{}, errors.MissingPattern()
	}
	cfg := SearchConfig{
		Pattern: args[0],
		Targets: args[1:],
	}
	return cfg, nil
}

// ReadFromStdin reports whether the run consumes standard input
// instead of filesystem targets.
func (c SearchConfig) ReadFromStdin() bool {
	return len(c.Targets) == 0
}

// ShowSourceLabels reports whether emitted matches carry a source label.
// Labels appear when more than one target was given or when recursive
// traversal may visit multiple files; single-target non-recursive runs
// (including stdin) omit them.
func (c SearchConfig) ShowSourceLabels() bool {
	return len(c.Targets) > 1 || c.Recursive
}
