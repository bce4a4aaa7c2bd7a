package main

import (
	"io"
	"log/slog"
	"os"
)

// theLog is replaced by livedocMain once flags are parsed.
var theLog = newLog(os.Stderr, false)

// newLog returns a text logger for terminal use: no timestamps, and no
// level on info records.
func newLog(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose || os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch {
			case a.Key == slog.TimeKey:
				return slog.Attr{}
			case a.Key == slog.LevelKey && a.Value.String() == slog.LevelInfo.String():
				return slog.Attr{}
			}
			return a
		},
	}))
}
