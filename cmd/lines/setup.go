package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/simplelines/internal/config"
)

// newLogger builds the process logger from the global flags. When fallback
// is nil and no log file is set, logs are discarded. The returned closer
// releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// loadGameConfig loads the engine configuration and applies a difficulty
// preset when one is named.
func loadGameConfig(path, difficulty string) (config.LinesConfig, error) {
	cfg, err := config.LoadLines(path)
	if err != nil {
		return cfg, err
	}
	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyLinesPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}
