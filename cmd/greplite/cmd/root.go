// Package cmd provides the CLI commands for greplite.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/greplite/internal/config"
	greperrors "github.com/Aman-CERP/greplite/internal/errors"
	"github.com/Aman-CERP/greplite/internal/logging"
	"github.com/Aman-CERP/greplite/internal/output"
	"github.com/Aman-CERP/greplite/internal/profiling"
	"github.com/Aman-CERP/greplite/internal/search"
	"github.com/Aman-CERP/greplite/internal/ui"
	"github.com/Aman-CERP/greplite/pkg/version"
)

// Profiling flags
var (
	profileCPU   string
	profileMem   string
	profileTrace string
	profiler     = profiling.NewProfiler()
	cpuCleanup   func()
	traceCleanup func()
)

// rootOptions holds the CLI flags for the search command.
type rootOptions struct {
	ignoreCase  bool
	lineNumbers bool
	useRegex    bool
	recursive   bool
	highlight   bool

	noColor bool
	debug   bool
	logFile string
}

// exitError carries a process exit code through cobra's error plumbing
// for runs whose diagnostics were already written.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewRootCmd creates the root command for the greplite CLI.
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "greplite [flags] PATTERN [PATH ...]",
		Short: "Search for lines matching a pattern",
		Long: `greplite searches for PATTERN in each PATH or standard input and
prints every matching line.

PATHs may be files, or directories when -R is given. With no PATH,
greplite reads from standard input.

Exit status is 0 when a line matched, 1 when nothing matched, and 2
on a fatal error or when every path failed.`,
		Example: `  greplite -i "rust" poem.txt          # case-insensitive search
  greplite -n "error" app.log          # show line numbers
  greplite -r "R\w+" notes.txt         # treat the pattern as a regex
  greplite -R -c "todo" src/           # search a tree, highlight matches
  cat poem.txt | greplite "frog"       # search standard input`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return greperrors.MissingPattern()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}

	cmd.SetVersionTemplate("greplite version {{.Version}}\n")

	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Perform case-insensitive matching")
	cmd.Flags().BoolVarP(&opts.lineNumbers, "line-numbers", "n", false, "Show line numbers with output lines")
	cmd.Flags().BoolVarP(&opts.useRegex, "use-regex", "r", false, "Treat PATTERN as a regular expression")
	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "R", false, "Search directories recursively")
	cmd.Flags().BoolVarP(&opts.highlight, "color", "c", false, "Highlight matching text in output")

	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable all styling (NO_COLOR is also honored)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging to ~/.greplite/logs/")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Debug log file path (used with --debug)")

	// Profiling flags
	cmd.PersistentFlags().StringVar(&profileCPU, "profile-cpu", "", "Write CPU profile to file")
	cmd.PersistentFlags().StringVar(&profileMem, "profile-mem", "", "Write memory profile to file")
	cmd.PersistentFlags().StringVar(&profileTrace, "profile-trace", "", "Write execution trace to file")

	cmd.PersistentPreRunE = startProfiling
	cmd.PersistentPostRunE = stopProfiling

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startProfiling starts CPU and trace profiling if the flags are set.
func startProfiling(_ *cobra.Command, _ []string) error {
	var err error

	if profileCPU != "" {
		cpuCleanup, err = profiler.StartCPU(profileCPU)
		if err != nil {
			return fmt.Errorf("failed to start CPU profile: %w", err)
		}
	}

	if profileTrace != "" {
		traceCleanup, err = profiler.StartTrace(profileTrace)
		if err != nil {
			if cpuCleanup != nil {
				cpuCleanup()
				cpuCleanup = nil
			}
			return fmt.Errorf("failed to start trace: %w", err)
		}
	}

	return nil
}

// stopProfiling stops profiling and writes the memory profile if
// requested. It is idempotent: cobra skips the PostRun hooks on
// non-zero exits, so Execute calls it again unconditionally.
func stopProfiling(_ *cobra.Command, _ []string) error {
	if cpuCleanup != nil {
		cpuCleanup()
		cpuCleanup = nil
	}

	if traceCleanup != nil {
		traceCleanup()
		traceCleanup = nil
	}

	if profileMem != "" {
		path := profileMem
		profileMem = ""
		if err := profiler.WriteHeap(path); err != nil {
			return fmt.Errorf("failed to write memory profile: %w", err)
		}
	}

	return nil
}

// runSearch builds the session from flags and args, runs it, and
// reports diagnostics on stderr. Matches stream to stdout as found.
func runSearch(cmd *cobra.Command, args []string, opts rootOptions) error {
	// Logs go to a file or nowhere. Stdout carries only matches and
	// stderr only diagnostics.
	if opts.debug {
		logCfg := logging.DebugConfig()
		if opts.logFile != "" {
			logCfg.FilePath = opts.logFile
		}
		logger, cleanup, err := logging.Setup(logCfg)
		if err != nil {
			return greperrors.InternalError("failed to set up debug logging", err)
		}
		defer cleanup()
		slog.SetDefault(logger)
	} else {
		slog.SetDefault(logging.Discard())
	}

	cfg, err := config.FromArgs(args)
	if err != nil {
		return err
	}
	cfg.IgnoreCase = opts.ignoreCase
	cfg.ShowLineNumbers = opts.lineNumbers
	cfg.UseRegex = opts.useRegex
	cfg.Recursive = opts.recursive
	cfg.Highlight = opts.highlight

	noColor := opts.noColor || ui.DetectNoColor()

	sessionOpts := []search.Option{
		search.WithOutput(cmd.OutOrStdout()),
		search.WithStdin(cmd.InOrStdin()),
	}
	if cfg.Highlight {
		match := ui.GetStyles(noColor).Match
		sessionOpts = append(sessionOpts, search.WithDecorator(func(s string) string {
			return match.Render(s)
		}))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := search.New(cfg, sessionOpts...)
	outcome, err := sess.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	stderrStyles := ui.GetStyles(noColor || !ui.IsTTY(cmd.ErrOrStderr()))
	w := output.NewWriter(cmd.ErrOrStderr(), stderrStyles)
	if len(outcome.Errors) > 0 {
		w.SkipSummary(outcome.Errors)
	}

	if code := outcome.ExitCode(); code != search.ExitMatch {
		return &exitError{code: code}
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	_ = stopProfiling(nil, nil)
	if err == nil {
		return search.ExitMatch
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	// Anything without a structured code came from flag parsing.
	if greperrors.GetCode(err) == "" {
		err = greperrors.New(greperrors.ErrCodeInvalidFlag, err.Error(), err).
			WithSuggestion("Run 'greplite --help' for usage")
	}

	styles := ui.GetStyles(ui.DetectNoColor() || !ui.IsTTY(os.Stderr))
	w := output.NewWriter(os.Stderr, styles)
	w.Fatal(err)
	return search.ExitError
}
