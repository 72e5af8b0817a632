package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New creates the application slog.Logger: JSON output on stdout, info level
// unless LOG_LEVEL=debug, tagged with the service name.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelFromEnv()})
	return slog.New(handler).With(slog.String("service", "freshdairy"))
}

func levelFromEnv() slog.Level {
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
