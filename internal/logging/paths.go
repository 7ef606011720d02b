package logging

import (
	"os"
	"path/filepath"
)

// DefaultLogDir returns the default log directory (~/.greplite/logs).
// It falls back to the system temp directory when the home directory
// cannot be determined.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".greplite", "logs")
	}
	return filepath.Join(home, ".greplite", "logs")
}

// DefaultLogPath returns the default debug log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultLogDir(), "greplite.log")
}
