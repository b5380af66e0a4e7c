package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	if err := Init(Config{LogDir: logDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("hidden below info")
	Info("plan generated", "weeks", 14)
	Warn("check-in skipped", "week", "2026-10-13")

	data, err := os.ReadFile(LogPath())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "plan generated") || !strings.Contains(out, "weeks=14") {
		t.Errorf("log file missing info entry:\n%s", out)
	}
	if strings.Contains(out, "hidden below info") {
		t.Errorf("debug entry written outside debug mode:\n%s", out)
	}
}

func TestInitDebugMode(t *testing.T) {
	var stderr bytes.Buffer

	err := Init(Config{Debug: true, LogDir: t.TempDir(), Stderr: &stderr})
	if err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	Debug("loading state", "events", 3)

	if !strings.Contains(stderr.String(), "loading state") {
		t.Errorf("debug entry not teed to stderr: %q", stderr.String())
	}
}

func TestInitRequiresDir(t *testing.T) {
	if err := Init(Config{}); err == nil {
		t.Error("expected error for empty log directory")
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	_ = Close()

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")

	if LogPath() != "" {
		t.Errorf("LogPath() = %q before Init", LogPath())
	}
}
