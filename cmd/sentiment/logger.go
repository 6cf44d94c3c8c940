package main

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// newLogger builds the CLI logger. Unknown levels fall back to info.
func newLogger(w io.Writer, level string, json bool) *charmlog.Logger {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           parseLevel(level),
		Prefix:          "sentiment",
	})
	if json {
		logger.SetFormatter(charmlog.JSONFormatter)
	}
	return logger
}

func parseLevel(level string) charmlog.Level {
	switch level {
	case "debug":
		return charmlog.DebugLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}
