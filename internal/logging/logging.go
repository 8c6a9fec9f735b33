// Package logging builds the structured logger for the ledger.
// The terminal is owned by the menu, so log lines go to a rotating file.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileWriter returns a writer that appends to path and rotates it once it
// grows past maxSizeMB. Close it on shutdown.
func NewFileWriter(path string, maxSizeMB int) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}

// New returns a JSON slog.Logger writing to w.
// level is parsed as a slog level name (debug, info, warn, error); anything
// unrecognised falls back to info.
func New(w io.Writer, level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
