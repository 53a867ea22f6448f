package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestConfigureLoggingToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junction.log")
	closeLog, err := ConfigureLogging(LoggingConfig{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("ConfigureLogging: %v", err)
	}
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})

	log.Debug("hello from the test", "answer", 42)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Fatalf("log file = %q", data)
	}
}

func TestConfigureLoggingBadLevel(t *testing.T) {
	if _, err := ConfigureLogging(LoggingConfig{Level: "chatty"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
