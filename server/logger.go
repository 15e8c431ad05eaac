package server

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger создает структурированный логгер в формате JSON
// Неизвестный уровень трактуется как INFO
func NewLogger(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLogLevel(level),
		AddSource: true, // Добавляем информацию об источнике (файл, строка)
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLogLevel переводит строковый уровень из конфигурации в slog.Level
func ParseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
