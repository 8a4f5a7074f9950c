package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/npratt/calc/internal/config"
)

// TUILoggerResult holds the pieces of a file-backed logger set up for TUI
// mode, where stderr is the dashboard's canvas and can't also carry logs.
type TUILoggerResult struct {
	Logger  *slog.Logger
	Rotator *lumberjack.Logger
}

// Close flushes and closes the underlying rotated log file.
func (r *TUILoggerResult) Close() error {
	if r.Rotator != nil {
		return r.Rotator.Close()
	}
	return nil
}

// SetupTUILogger redirects logging to a lumberjack-rotated file instead of
// stderr, so the TUI's own rendering isn't interleaved with log lines.
func SetupTUILogger(logPath string, level slog.Leveler, rot config.LogRotationConfig) (*TUILoggerResult, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    rot.MaxSizeMB,
		MaxBackups: rot.MaxBackups,
		MaxAge:     rot.MaxAgeDays,
		Compress:   rot.Compress,
	}

	logger := slog.New(slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: level}))
	return &TUILoggerResult{Logger: logger, Rotator: rotator}, nil
}

// SetupTUILoggerWithWriter is the test seam for SetupTUILogger.
func SetupTUILoggerWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
