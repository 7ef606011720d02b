package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aman-CERP/greplite/internal/errors"
)

func TestOutcomeExitCode(t *testing.T) {
	dirErr := errors.IsADirectory("some/dir")

	tests := []struct {
		name    string
		outcome Outcome
		want    int
	}{
		{
			name:    "matches found",
			outcome: Outcome{TotalMatches: 3, SourcesScanned: 1},
			want:    ExitMatch,
		},
		{
			name:    "no matches",
			outcome: Outcome{SourcesScanned: 1},
			want:    ExitNoMatch,
		},
		{
			name:    "zero value outcome",
			outcome: Outcome{},
			want:    ExitNoMatch,
		},
		{
			name:    "fatal error",
			outcome: Outcome{Fatal: errors.InvalidRegex("[", nil)},
			want:    ExitError,
		},
		{
			name: "fatal wins over matches",
			outcome: Outcome{
				Fatal:        errors.InvalidRegex("[", nil),
				TotalMatches: 5,
			},
			want: ExitError,
		},
		{
			name: "every source errored",
			outcome: Outcome{
				Errors:         []*errors.GrepError{dirErr},
				SourcesScanned: 0,
			},
			want: ExitError,
		},
		{
			name: "matches win over partial errors",
			outcome: Outcome{
				TotalMatches:   2,
				SourcesScanned: 1,
				Errors:         []*errors.GrepError{dirErr},
			},
			want: ExitMatch,
		},
		{
			name: "partial errors without matches",
			outcome: Outcome{
				SourcesScanned: 2,
				Errors:         []*errors.GrepError{dirErr},
			},
			want: ExitNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.ExitCode())
		})
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateCompiling, "compiling"},
		{StateEnumerating, "enumerating"},
		{StateScanning, "scanning"},
		{StateFinalized, "finalized"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}
