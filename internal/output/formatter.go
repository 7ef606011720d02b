// Package output renders matched lines and run diagnostics for the CLI.
// Match lines and diagnostics go to separate streams; nothing in this
// package ever mixes the two.
package output

import (
	"strconv"
	"strings"

	"github.com/Aman-CERP/greplite/internal/matcher"
)

// MatchRecord carries everything needed to render one matched line.
type MatchRecord struct {
	// SourceLabel names the source the line came from.
	SourceLabel string

	// LineNumber is 1-based within the source.
	LineNumber int

	// LineText is the matched line without its terminator.
	LineText string

	// Spans are the match positions within LineText, ascending and
	// non-overlapping. Populated only when highlighting is on.
	Spans []matcher.Span
}

// Formatter renders match records into output lines. The zero value
// emits the line text verbatim.
type Formatter struct {
	// ShowLineNumbers prefixes the 1-based line number.
	ShowLineNumbers bool

	// ShowSourceLabel prefixes the source label ahead of the number.
	ShowSourceLabel bool

	// Decorate wraps one match span for display, e.g. with ANSI
	// styling. Nil leaves spans undecorated.
	Decorate func(string) string
}

// Format renders one record without a trailing terminator.
// Shape: "{label}: {n}: {text}", each prefix present only when enabled.
func (f Formatter) Format(rec MatchRecord) string {
	line := rec.LineText
	if f.Decorate != nil && len(rec.Spans) > 0 {
		line = decorateSpans(line, rec.Spans, f.Decorate)
	}

	if !f.ShowSourceLabel && !f.ShowLineNumbers {
		return line
	}

	var sb strings.Builder
	if f.ShowSourceLabel {
		sb.WriteString(rec.SourceLabel)
		sb.WriteString(": ")
	}
	if f.ShowLineNumbers {
		sb.WriteString(strconv.Itoa(rec.LineNumber))
		sb.WriteString(": ")
	}
	sb.WriteString(line)
	return sb.String()
}

// decorateSpans wraps each span right to left, so offsets of the spans
// still to process stay valid while the line grows.
func decorateSpans(line string, spans []matcher.Span, wrap func(string) string) string {
	out := line
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		if s.Start < 0 || s.End > len(line) || s.Start > s.End {
			continue
		}
		out = out[:s.Start] + wrap(out[s.Start:s.End]) + out[s.End:]
	}
	return out
}
