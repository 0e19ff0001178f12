package logger

import (
	"log/slog"
	"os"

	"social-login/internal/shared/config"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Init installs the process-wide slog default. JSON output is tied to
// the production environment; everything else logs human-readable text.
func Init() {
	if config.GlobalConfig == nil {
		panic("config must be initialized before logger")
	}

	logConfig := config.GlobalConfig.Logging

	level, ok := levels[logConfig.Level]
	if !ok {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if logConfig.JSONFormat {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))

	slog.Debug("Logger initialized",
		"component", "logger",
		"level", logConfig.Level,
		"json_format", logConfig.JSONFormat,
	)
}
