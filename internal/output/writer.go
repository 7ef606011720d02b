package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/Aman-CERP/greplite/internal/errors"
	"github.com/Aman-CERP/greplite/internal/ui"
)

// Writer emits run diagnostics. The CLI points it at stderr so the
// match stream on stdout stays clean.
// Write errors are intentionally ignored for console output.
type Writer struct {
	out    io.Writer
	styles ui.Styles
}

// NewWriter creates a diagnostic Writer rendering with the given styles.
func NewWriter(out io.Writer, styles ui.Styles) *Writer {
	return &Writer{out: out, styles: styles}
}

// Fatal reports an error that ended the run before or during the
// search, in the standard CLI error block.
func (w *Writer) Fatal(err error) {
	if err == nil {
		return
	}
	block := strings.TrimRight(errors.FormatForCLI(err), "\n")
	_, _ = fmt.Fprintln(w.out, w.styles.Error.Render(block))
}

// SkipSummary reports the sources that could not be searched, one
// reason per line, after all matches have been emitted.
func (w *Writer) SkipSummary(errs []*errors.GrepError) {
	if len(errs) == 0 {
		return
	}

	noun := "source"
	if len(errs) > 1 {
		noun = "sources"
	}
	header := fmt.Sprintf("greplite: %d %s skipped:", len(errs), noun)
	_, _ = fmt.Fprintln(w.out, w.styles.Warning.Render(header))

	for _, e := range errs {
		_, _ = fmt.Fprintf(w.out, "  %s\n", w.styles.Dim.Render(e.Message))
	}
}
