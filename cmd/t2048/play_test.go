package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlayLoggerQuietByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, closeLog, err := playLogger(false, path)
	if err != nil {
		t.Fatalf("playLogger() failed: %v", err)
	}
	logger.Info("game over", "score", 0)
	logger.Error("move rejected")
	closeLog()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("log file should not be created without --verbose: %v", err)
	}
}

func TestPlayLoggerVerboseWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, closeLog, err := playLogger(true, path)
	if err != nil {
		t.Fatalf("playLogger() failed: %v", err)
	}
	logger.Debug("game over", "score", 12)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "game over") || !strings.Contains(string(data), "score=12") {
		t.Errorf("debug line missing from log:\n%s", data)
	}
}
