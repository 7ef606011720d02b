package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Level, "info")
	}
	if cfg.FilePath == "" {
		t.Error("FilePath should not be empty")
	}
	if cfg.MaxSizeMB <= 0 {
		t.Errorf("MaxSizeMB = %d, want > 0", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups <= 0 {
		t.Errorf("MaxBackups = %d, want > 0", cfg.MaxBackups)
	}
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()

	if cfg.Level != "debug" {
		t.Errorf("Level = %q, want %q", cfg.Level, "debug")
	}
	if cfg.FilePath != DefaultConfig().FilePath {
		t.Error("DebugConfig should only change the level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSetupWritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "greplite.log")

	logger, cleanup, err := Setup(Config{
		Level:      "debug",
		FilePath:   logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.Info("session_started", "run_id", "test-run")
	cleanup()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "session_started") {
		t.Errorf("log file missing message, got: %s", content)
	}
	if !strings.Contains(content, `"run_id":"test-run"`) {
		t.Errorf("log file missing attribute, got: %s", content)
	}
}

func TestSetupCreatesLogDirectory(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "logs", "greplite.log")

	logger, cleanup, err := Setup(Config{
		Level:     "info",
		FilePath:  logFile,
		MaxSizeMB: 1,
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer cleanup()

	logger.Info("hello")
	if _, err := os.Stat(filepath.Dir(logFile)); err != nil {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestSetupRespectsLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "greplite.log")

	logger, cleanup, err := Setup(Config{
		Level:     "error",
		FilePath:  logFile,
		MaxSizeMB: 1,
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.Debug("too_quiet")
	logger.Error("loud_enough")
	cleanup()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "too_quiet") {
		t.Error("debug record should have been filtered out")
	}
	if !strings.Contains(content, "loud_enough") {
		t.Error("error record should have been written")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger == nil {
		t.Fatal("Discard returned nil")
	}

	// Must not panic or write anywhere.
	logger.Info("dropped", "key", "value")
	logger.Error("also dropped")
}

func TestDefaultLogDir(t *testing.T) {
	dir := DefaultLogDir()

	if dir == "" {
		t.Fatal("DefaultLogDir returned empty string")
	}
	if !strings.Contains(dir, ".greplite") {
		t.Errorf("DefaultLogDir = %q, want it under .greplite", dir)
	}
	if filepath.Base(dir) != "logs" {
		t.Errorf("DefaultLogDir = %q, want a logs directory", dir)
	}
}

func TestDefaultLogPath(t *testing.T) {
	path := DefaultLogPath()

	if filepath.Base(path) != "greplite.log" {
		t.Errorf("DefaultLogPath = %q, want greplite.log file", path)
	}
	if filepath.Dir(path) != DefaultLogDir() {
		t.Errorf("DefaultLogPath should live in DefaultLogDir, got %q", path)
	}
}
