package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	greperrors "github.com/Aman-CERP/greplite/internal/errors"
)

// runRoot executes the root command with captured streams.
func runRoot(t *testing.T, args []string, stdin io.Reader) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCmd()
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)
	err = root.Execute()
	_ = stopProfiling(nil, nil)
	return outBuf.String(), errBuf.String(), err
}

// writeFile creates a file under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCmd_MatchesWithFlags(t *testing.T) {
	// Given: a file with mixed-case content
	file := writeFile(t, t.TempDir(), "poem.txt", "Rust\nrust\nDust\n")

	// When: searching case-insensitively with line numbers
	stdout, stderr, err := runRoot(t, []string{"-i", "-n", "rust", file}, nil)

	// Then: both variants print, numbered, with clean stderr
	require.NoError(t, err)
	assert.Equal(t, "1: Rust\n2: rust\n", stdout)
	assert.Empty(t, stderr)
}

func TestRootCmd_NoMatchesExitsOne(t *testing.T) {
	// Given: a file without the pattern
	file := writeFile(t, t.TempDir(), "poem.txt", "nothing here\n")

	// When: the search finds nothing
	stdout, stderr, err := runRoot(t, []string{"absent", file}, nil)

	// Then: the run reports the not-found exit code silently
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 1, ee.code)
}

func TestRootCmd_MissingPattern(t *testing.T) {
	// When: invoked with no arguments
	_, _, err := runRoot(t, []string{}, strings.NewReader(""))

	// Then: the usage error surfaces with its code
	require.Error(t, err)
	assert.Equal(t, greperrors.ErrCodeMissingPattern, greperrors.GetCode(err))
	assert.True(t, greperrors.IsFatal(err))
}

func TestRootCmd_UnknownFlag(t *testing.T) {
	// When: invoked with a flag that does not exist
	_, _, err := runRoot(t, []string{"--bogus", "pattern"}, nil)

	// Then: cobra rejects it before the search starts
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestRootCmd_InvalidRegex(t *testing.T) {
	// Given: a pattern that does not compile
	file := writeFile(t, t.TempDir(), "poem.txt", "content\n")

	// When: running with --use-regex
	_, _, err := runRoot(t, []string{"-r", "[unclosed", file}, nil)

	// Then: the fatal pattern error surfaces
	require.Error(t, err)
	assert.Equal(t, greperrors.ErrCodeInvalidRegex, greperrors.GetCode(err))
	assert.True(t, greperrors.IsFatal(err))
}

func TestRootCmd_DirectoryWithoutRecursive(t *testing.T) {
	// Given: a directory as the only target
	dir := t.TempDir()
	writeFile(t, dir, "inside.txt", "needle\n")

	// When: searching it without -R
	stdout, stderr, err := runRoot(t, []string{"needle", dir}, nil)

	// Then: the skip is summarized on stderr and the run fails
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "skipped")
	assert.Contains(t, stderr, "is a directory")
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 2, ee.code)
}

func TestRootCmd_RecursiveSearch(t *testing.T) {
	// Given: a directory tree
	dir := t.TempDir()
	writeFile(t, dir, "a/one.txt", "needle a\n")
	writeFile(t, dir, "b.txt", "needle b\n")

	// When: searching recursively
	stdout, _, err := runRoot(t, []string{"-R", "needle", dir}, nil)

	// Then: matches are labeled with their paths, in walk order
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, filepath.Join(dir, "a", "one.txt")+": needle a", lines[0])
	assert.Equal(t, filepath.Join(dir, "b.txt")+": needle b", lines[1])
}

func TestRootCmd_StdinSearch(t *testing.T) {
	// Given: no path arguments and piped input
	stdin := strings.NewReader("alpha\nbeta\ngamma\n")

	// When: searching stdin
	stdout, _, err := runRoot(t, []string{"beta"}, stdin)

	// Then: the matching line prints without a label
	require.NoError(t, err)
	assert.Equal(t, "beta\n", stdout)
}

func TestRootCmd_HighlightSuppressedByNoColor(t *testing.T) {
	// Given: highlighting requested together with --no-color
	file := writeFile(t, t.TempDir(), "poem.txt", "a rust line\n")

	// When: the search runs
	stdout, _, err := runRoot(t, []string{"-c", "--no-color", "rust", file}, nil)

	// Then: the match prints without escape sequences
	require.NoError(t, err)
	assert.Equal(t, "a rust line\n", stdout)
}

func TestRootCmd_MixedTargetsKeepSearching(t *testing.T) {
	// Given: a missing path followed by a matching file
	dir := t.TempDir()
	file := writeFile(t, dir, "real.txt", "needle\n")
	missing := filepath.Join(dir, "gone.txt")

	// When: the search runs
	stdout, stderr, err := runRoot(t, []string{"needle", missing, file}, nil)

	// Then: the good target matches and the bad one is summarized
	require.NoError(t, err)
	assert.Contains(t, stdout, "needle")
	assert.Contains(t, stderr, "skipped")
	assert.Contains(t, stderr, "cannot read")
}

func TestRootCmd_VersionFlag(t *testing.T) {
	// When: invoked with --version
	stdout, _, err := runRoot(t, []string{"--version"}, nil)

	// Then: the version template prints
	require.NoError(t, err)
	assert.Contains(t, stdout, "greplite version")
}

func TestRootCmd_DebugWritesLogFile(t *testing.T) {
	// Given: a debug run with a custom log path
	dir := t.TempDir()
	file := writeFile(t, dir, "poem.txt", "rust\n")
	logFile := filepath.Join(dir, "logs", "run.log")

	// When: the search runs with --debug --log-file
	_, _, err := runRoot(t, []string{"--debug", "--log-file", logFile, "rust", file}, nil)

	// Then: structured session records land in the file
	require.NoError(t, err)
	data, readErr := os.ReadFile(logFile)
	require.NoError(t, readErr)
	content := string(data)
	assert.Contains(t, content, "session_started")
	assert.Contains(t, content, "session_finalized")
	assert.Contains(t, content, "run_id")
}

func TestRootCmd_ProfileFlushedOnNoMatch(t *testing.T) {
	// Given: CPU profiling requested for a search that finds nothing
	dir := t.TempDir()
	file := writeFile(t, dir, "poem.txt", "nothing here\n")
	cpuProf := filepath.Join(dir, "cpu.prof")

	// When: the run exits with the not-found code
	_, _, err := runRoot(t, []string{"--profile-cpu", cpuProf, "absent", file}, nil)
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 1, ee.code)

	// Then: the profile was still stopped and written
	info, statErr := os.Stat(cpuProf)
	require.NoError(t, statErr)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExitError_Message(t *testing.T) {
	assert.Equal(t, "exit code 2", (&exitError{code: 2}).Error())
}
