// Package matcher compiles search patterns and locates match spans in
// lines of text.
//
// A Pattern is compiled once per search run and is safe for repeated
// use. Two modes exist: literal substring matching (the default) and
// regular expressions. Case-insensitive literal matching folds both the
// pattern and each line with simple Unicode case folding and maps folded
// byte offsets back to the original line, so reported spans always index
// the caller's text and never split a multi-byte character.
package matcher

import (
	"regexp"
	"strings"

	"github.com/Aman-CERP/greplite/internal/errors"
)

// Span marks one match as half-open byte offsets [Start, End) into the
// original line. Spans returned by FindAll are ordered by Start, never
// overlap, and always fall on rune boundaries.
type Span struct {
	Start int
	End   int
}

type patternKind int

const (
	kindLiteral patternKind = iota
	kindRegex
)

// Pattern is a compiled search pattern.
type Pattern struct {
	kind       patternKind
	ignoreCase bool

	// literal arm; folded when ignoreCase is set
	needle string

	// regex arm
	re *regexp.Regexp
}

// Compile builds a Pattern. Literal compilation cannot fail. Regex
// patterns are compiled once, with case-insensitivity requested through
// the (?i) flag; a malformed expression fails here, before any input is
// read.
func Compile(pattern string, ignoreCase, useRegex bool) (*Pattern, error) {
	if !useRegex {
		needle := pattern
		if ignoreCase {
			needle = foldString(pattern)
		}
		return &Pattern{kind: kindLiteral, ignoreCase: ignoreCase, needle: needle}, nil
	}

	expr := pattern
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.InvalidRegex(pattern, err)
	}
	return &Pattern{kind: kindRegex, re: re}, nil
}

// Match reports whether the line contains at least one occurrence.
// Cheaper than FindAll; used when span positions are not needed.
func (p *Pattern) Match(line string) bool {
	if p.kind == kindRegex {
		return p.re.MatchString(line)
	}
	if p.needle == "" {
		return true
	}
	if p.ignoreCase {
		return strings.Contains(foldString(line), p.needle)
	}
	return strings.Contains(line, p.needle)
}

// FindAll returns every non-overlapping occurrence in the line, ordered
// left to right. Spans index the original line's bytes even under case
// folding. An empty literal pattern yields a single empty span at offset
// zero; an empty regex follows the engine's own empty-match semantics.
func (p *Pattern) FindAll(line string) []Span {
	if p.kind == kindRegex {
		idx := p.re.FindAllStringIndex(line, -1)
		if len(idx) == 0 {
			return nil
		}
		spans := make([]Span, len(idx))
		for i, m := range idx {
			spans[i] = Span{Start: m[0], End: m[1]}
		}
		return spans
	}

	if p.needle == "" {
		return []Span{{Start: 0, End: 0}}
	}

	if !p.ignoreCase {
		return scanLiteral(line, p.needle, nil)
	}

	folded, offs := foldLine(line)
	return scanLiteral(folded, p.needle, offs)
}

// scanLiteral collects non-overlapping occurrences of needle in
// haystack, advancing past each match. A non-nil offs table translates
// haystack offsets back to original-line offsets.
func scanLiteral(haystack, needle string, offs []int) []Span {
	var spans []Span
	base := 0
	for {
		i := strings.Index(haystack[base:], needle)
		if i < 0 {
			return spans
		}
		start := base + i
		end := start + len(needle)
		if offs != nil {
			spans = append(spans, Span{Start: offs[start], End: offs[end]})
		} else {
			spans = append(spans, Span{Start: start, End: end})
		}
		base = end
	}
}
