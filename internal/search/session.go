package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/Aman-CERP/greplite/internal/config"
	"github.com/Aman-CERP/greplite/internal/errors"
	"github.com/Aman-CERP/greplite/internal/matcher"
	"github.com/Aman-CERP/greplite/internal/output"
	"github.com/Aman-CERP/greplite/internal/scanner"
)

// Session executes a single search run over the configured sources.
// Create one with New, run it once with Run, then read the outcome.
type Session struct {
	cfg       config.SearchConfig
	formatter output.Formatter
	pattern   *matcher.Pattern
	out       io.Writer
	stdin     io.Reader
	decorate  func(string) string

	runID   string
	state   State
	outcome Outcome
}

// Option configures a Session.
type Option func(*Session)

// WithOutput directs formatted matches to w. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		s.out = w
	}
}

// WithStdin sets the reader behind the stdin pseudo-source. Defaults
// to os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(s *Session) {
		s.stdin = r
	}
}

// WithDecorator sets the decorator wrapped around each matched span.
// It only takes effect when the config requests highlighting.
func WithDecorator(fn func(string) string) Option {
	return func(s *Session) {
		s.decorate = fn
	}
}

// New creates a session for one run of cfg.
func New(cfg config.SearchConfig, opts ...Option) *Session {
	s := &Session{
		cfg:   cfg,
		out:   os.Stdout,
		stdin: os.Stdin,
		runID: uuid.New().String(),
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.formatter = output.Formatter{
		ShowLineNumbers: cfg.ShowLineNumbers,
		ShowSourceLabel: cfg.ShowSourceLabels(),
	}
	if cfg.Highlight {
		s.formatter.Decorate = s.decorate
	}
	return s
}

// RunID returns the identifier tagging this session's log records.
func (s *Session) RunID() string {
	return s.runID
}

// State returns the session's current phase.
func (s *Session) State() State {
	return s.state
}

// Run executes the session: compile, enumerate, scan, finalize. It is
// single-shot; a second call returns an internal error. The returned
// error is the fatal pattern error, ctx.Err() on cancellation, or nil.
// Per-source errors never abort the run; they are recorded in the
// outcome for the caller to summarize.
func (s *Session) Run(ctx context.Context) (*Outcome, error) {
	if s.state != StateIdle {
		return nil, errors.InternalError(
			fmt.Sprintf("session already %s", s.state), nil)
	}

	slog.Debug("session_started",
		slog.String("run_id", s.runID),
		slog.String("pattern", s.cfg.Pattern),
		slog.Bool("ignore_case", s.cfg.IgnoreCase),
		slog.Bool("use_regex", s.cfg.UseRegex),
		slog.Bool("recursive", s.cfg.Recursive),
		slog.Bool("highlight", s.cfg.Highlight),
		slog.Int("targets", len(s.cfg.Targets)))

	s.state = StateCompiling
	pattern, err := matcher.Compile(s.cfg.Pattern, s.cfg.IgnoreCase, s.cfg.UseRegex)
	if err != nil {
		s.outcome.Fatal = err
		s.finalize()
		return &s.outcome, err
	}
	s.pattern = pattern

	s.state = StateEnumerating
	results := scanner.Enumerate(ctx, s.cfg.Targets, s.cfg.Recursive)

	s.state = StateScanning
	for res := range results {
		if res.Err != nil {
			s.recordError(res.Err)
			continue
		}

		sr := s.scanSource(ctx, res.Source)
		if sr.scanned {
			s.outcome.SourcesScanned++
		}
		s.outcome.TotalMatches += sr.matches
		if sr.err != nil {
			s.recordError(sr.err)
		}

		if ctx.Err() != nil {
			break
		}
	}

	if err := ctx.Err(); err != nil {
		s.outcome.Interrupted = true
		s.finalize()
		return &s.outcome, err
	}

	s.finalize()
	return &s.outcome, nil
}

// recordError appends a per-source error to the outcome.
func (s *Session) recordError(ge *errors.GrepError) {
	s.outcome.Errors = append(s.outcome.Errors, ge)
	slog.Warn("source_skipped",
		slog.String("run_id", s.runID),
		slog.String("error_code", ge.Code),
		slog.String("message", ge.Message))
}

// finalize freezes the outcome and logs the terminal record.
func (s *Session) finalize() {
	s.state = StateFinalized
	slog.Debug("session_finalized",
		slog.String("run_id", s.runID),
		slog.Int("matches", s.outcome.TotalMatches),
		slog.Int("sources_scanned", s.outcome.SourcesScanned),
		slog.Int("sources_skipped", len(s.outcome.Errors)),
		slog.Bool("interrupted", s.outcome.Interrupted),
		slog.Bool("fatal", s.outcome.Fatal != nil))
}
