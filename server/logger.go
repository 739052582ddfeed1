package server

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"agrodashboard/server/middleware"
)

var (
	// Logger глобальный структурированный логгер
	Logger = newJSONLogger(slog.LevelInfo)
)

func newJSONLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: true, // файл и строка источника
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// ParseLogLevel переводит DEBUG/INFO/WARN/ERROR в slog.Level; неизвестное значение дает INFO
func ParseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger настраивает JSON логгер с уровнем и делает его логгером по умолчанию
func InitLogger(level string) *slog.Logger {
	Logger = newJSONLogger(ParseLogLevel(level))
	slog.SetDefault(Logger)
	return Logger
}

// LogError логирует ошибку с контекстом из запроса
func LogError(ctx context.Context, err error, msg string, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "error", err, "request_id", reqID)
	Logger.Error(msg, attrs...)
}

// LogWarn логирует предупреждение
func LogWarn(ctx context.Context, msg string, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "request_id", reqID)
	Logger.Warn(msg, attrs...)
}

// LogInfo логирует информационное сообщение
func LogInfo(ctx context.Context, msg string, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "request_id", reqID)
	Logger.Info(msg, attrs...)
}

// LogDuration логирует продолжительность выполнения операции
func LogDuration(ctx context.Context, operation string, duration time.Duration, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "request_id", reqID, "duration_ms", duration.Milliseconds())
	Logger.Info(operation+" completed", attrs...)
}
