package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Options controls where and how much is logged.
type Options struct {
	Level      string
	File       string // optional rotating log file, written in addition to stdout
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	FileOnly   bool // keep stdout clean, for terminal UIs
}

// Init replaces Log. The returned closer flushes the rotating file, if any.
func Init(opts Options) io.Closer {
	var w io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}
	if opts.FileOnly {
		w = io.Discard
	}

	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		w = io.MultiWriter(os.Stdout, rotator)
		if opts.FileOnly {
			w = rotator
		}
		closer = rotator
	}

	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	})
	Log = slog.New(handler)
	return closer
}

// Nop silences logging, for tests.
func Nop() {
	Log = slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// ParseLevel maps a config string to a slog level; unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
