// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// File rotation policy for file-backed logs.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 7
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs a JSON slog handler as the default logger.
// Logs go to stdout when path is empty, otherwise to a rotating file.
// The returned closer releases the file and is always non-nil.
func Setup(path string, debug bool) (io.Closer, error) {
	var (
		w      io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		w, closer = lj, lj
	}

	slog.SetDefault(New(w, debug))
	return closer, nil
}

// New builds a JSON logger writing to w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
