package utils

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func parseLogLevel(name string) (slog.Level, error) {
	level, ok := logLevels[name]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidConfig, "log_level must be 'debug', 'info', 'warn', or 'error', got %q", name)
	}
	return level, nil
}

func checkLogFormat(format string) error {
	if format != "text" && format != "json" {
		return errors.Wrapf(ErrInvalidConfig, "log_format must be 'text' or 'json', got %q", format)
	}
	return nil
}

// NewLogger builds a slog.Logger writing to w. The global logger is left alone.
func NewLogger(levelName, format string, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(levelName)
	if err != nil {
		return nil, errors.Wrap(err, "[NewLogger]")
	}
	if err = checkLogFormat(format); err != nil {
		return nil, errors.Wrap(err, "[NewLogger]")
	}

	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
