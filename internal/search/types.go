// Package search drives a greplite run. A Session compiles the
// pattern, enumerates sources, scans them line by line, and streams
// formatted matches to its output sink while collecting the outcome
// that decides the process exit code.
package search

// State represents the phase of a search session. A session only moves
// forward: Idle -> Compiling -> Enumerating -> Scanning -> Finalized.
type State int

const (
	// StateIdle is a constructed session that has not run yet.
	StateIdle State = iota
	// StateCompiling is pattern compilation, before any I/O.
	StateCompiling
	// StateEnumerating is source discovery.
	StateEnumerating
	// StateScanning is line scanning and matching.
	StateScanning
	// StateFinalized is a finished session; its outcome is frozen.
	StateFinalized
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCompiling:
		return "compiling"
	case StateEnumerating:
		return "enumerating"
	case StateScanning:
		return "scanning"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}
