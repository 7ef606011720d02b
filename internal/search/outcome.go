package search

import (
	"github.com/Aman-CERP/greplite/internal/errors"
)

// Process exit codes, following the grep convention.
const (
	// ExitMatch means at least one line matched.
	ExitMatch = 0
	// ExitNoMatch means the search ran but nothing matched.
	ExitNoMatch = 1
	// ExitError means a fatal error, or that every source failed.
	ExitError = 2
)

// Outcome summarizes a finished session.
type Outcome struct {
	// TotalMatches counts matching lines across all sources.
	TotalMatches int

	// SourcesScanned counts sources that were opened and scanned,
	// including sources later abandoned by a read or decode error.
	SourcesScanned int

	// Errors holds the per-source errors recorded and skipped
	// during the run.
	Errors []*errors.GrepError

	// Fatal is the error that aborted the session before scanning,
	// if any (pattern compile failure).
	Fatal error

	// Interrupted reports that the run was cancelled and the counts
	// above cover only part of the input.
	Interrupted bool
}

// ExitCode maps the outcome onto the process exit code. Matches win
// over per-source errors; source errors force an error exit only when
// nothing could be scanned at all.
func (o *Outcome) ExitCode() int {
	switch {
	case o.Fatal != nil:
		return ExitError
	case len(o.Errors) > 0 && o.SourcesScanned == 0:
		return ExitError
	case o.TotalMatches > 0:
		return ExitMatch
	default:
		return ExitNoMatch
	}
}
