package game

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// ConfigureLogging applies the level and output of the default logger. The
// returned func closes the log file, if one was opened.
func ConfigureLogging(cfg LoggingConfig) (func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level %q: %w", cfg.Level, err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	if cfg.File == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
