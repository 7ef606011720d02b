// Package scanner enumerates search sources: files named on the command
// line, directory trees in recursive mode, or standard input.
package scanner

import (
	"github.com/Aman-CERP/greplite/internal/errors"
)

// StdinLabel is the display label for the standard-input source.
const StdinLabel = "(standard input)"

// Source is one unit of searchable input.
type Source struct {
	// Path is the filesystem path to open; empty for stdin.
	Path string

	// Label is the display name used in output and diagnostics. For
	// files found under a symlinked target this stays in terms of the
	// name the user gave, not the resolved path.
	Label string

	// Stdin marks the standard-input source.
	Stdin bool
}

// Result is one enumeration step: either a source ready to scan or the
// error that disqualified a target. Exactly one field is set.
type Result struct {
	Source *Source
	Err    *errors.GrepError
}
