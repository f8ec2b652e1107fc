package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger defaults to the process logger so packages can log before
// InitLogger runs, which also keeps tests free of setup calls.
var Logger = slog.Default()

// InitLogger configures the process-wide slog logger. Level and format come
// from LOG_LEVEL / LOG_FORMAT so deployments can switch to JSON output
// without a rebuild.
func InitLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized")

	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
