package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// foldRune maps a rune to its canonical simple case-folding
// representative: the smallest rune in its SimpleFold orbit. Runes that
// fold to the same representative compare equal under case-insensitive
// matching. This is the same folding family Go's regexp applies for (?i).
func foldRune(r rune) rune {
	min := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < min {
			min = f
		}
	}
	return min
}

// foldString folds every rune of s. Used for patterns, where no offset
// mapping back to the original bytes is needed.
func foldString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		sb.WriteRune(foldRune(r))
	}
	return sb.String()
}

// foldLine folds every rune of line and builds an offset table mapping
// byte positions in the folded text back to byte positions in the
// original. offs has len(folded)+1 entries; offs[i] is the original
// offset of the rune that starts at folded offset i, and offs[len(folded)]
// is len(line). Folding can change a rune's encoded width, so the table
// is required to translate folded match spans into original spans.
//
// Positions inside a folded rune's encoding never start a match: UTF-8 is
// self-synchronizing, so any occurrence of a folded needle in the folded
// line begins on a rune boundary. Entries for interior bytes carry the
// same original offset as their rune start, which keeps the table dense
// and lookup trivial.
func foldLine(line string) (string, []int) {
	var sb strings.Builder
	sb.Grow(len(line))

	offs := make([]int, 0, len(line)+1)
	for i, r := range line {
		f := foldRune(r)
		w := utf8.RuneLen(f)
		for j := 0; j < w; j++ {
			offs = append(offs, i)
		}
		sb.WriteRune(f)
	}
	offs = append(offs, len(line))

	return sb.String(), offs
}
