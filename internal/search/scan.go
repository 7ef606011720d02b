package search

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Aman-CERP/greplite/internal/errors"
	"github.com/Aman-CERP/greplite/internal/output"
	"github.com/Aman-CERP/greplite/internal/scanner"
)

const (
	// maxLineBytes caps how long a single line may grow. Longer
	// lines abandon the source with a read error.
	maxLineBytes = 1 << 20

	// initialBufBytes is the line scanner's starting buffer size.
	initialBufBytes = 64 * 1024
)

// sourceResult reports what scanning a single source produced.
type sourceResult struct {
	// scanned is true once the source was opened and line scanning
	// began, even if a later error abandoned it.
	scanned bool
	matches int
	err     *errors.GrepError
}

// scanSource opens one source and scans it. The file handle is closed
// on every return path.
func (s *Session) scanSource(ctx context.Context, src *scanner.Source) sourceResult {
	if src.Stdin {
		return s.scanLines(ctx, src.Label, s.stdin)
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return sourceResult{err: errors.Unreadable(src.Path, err)}
	}
	defer func() { _ = f.Close() }()

	return s.scanLines(ctx, src.Label, f)
}

// scanLines reads r line by line and emits a formatted record for each
// matching line. The final line is delivered even without a trailing
// terminator, and a trailing \r is stripped so CRLF input matches like
// LF input. A line that is not valid UTF-8 stops the source with a
// decode error; read failures, including lines over maxLineBytes, stop
// it with a read error. Matches already emitted from the source are
// kept either way.
func (s *Session) scanLines(ctx context.Context, label string, r io.Reader) sourceResult {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialBufBytes), maxLineBytes)

	res := sourceResult{scanned: true}
	lineNo := 0
	for sc.Scan() {
		if ctx.Err() != nil {
			return res
		}
		lineNo++

		line := strings.TrimSuffix(sc.Text(), "\r")
		if !utf8.ValidString(line) {
			res.err = errors.DecodeFailed(label, lineNo)
			return res
		}

		if s.emitIfMatch(label, lineNo, line) {
			res.matches++
		}
	}
	if err := sc.Err(); err != nil {
		res.err = errors.ReadFailed(label, err)
	}
	return res
}

// emitIfMatch writes the formatted record when the line matches. Spans
// are computed only when highlighting is on; otherwise the matcher's
// boolean fast path decides.
func (s *Session) emitIfMatch(label string, lineNo int, line string) bool {
	rec := output.MatchRecord{
		SourceLabel: label,
		LineNumber:  lineNo,
		LineText:    line,
	}

	if s.cfg.Highlight {
		spans := s.pattern.FindAll(line)
		if len(spans) == 0 {
			return false
		}
		rec.Spans = spans
	} else if !s.pattern.Match(line) {
		return false
	}

	_, _ = fmt.Fprintln(s.out, s.formatter.Format(rec))
	return true
}
