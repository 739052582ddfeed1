package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "agrodashboard/server/errors"
)

var (
	errorMetricsOnce   sync.Once
	globalErrorMetrics *apperrors.ErrorMetricsCollector
)

// GetErrorMetrics возвращает глобальный сборщик метрик ошибок
func GetErrorMetrics() *apperrors.ErrorMetricsCollector {
	errorMetricsOnce.Do(func() {
		globalErrorMetrics = apperrors.NewErrorMetricsCollector()
	})
	return globalErrorMetrics
}

// ErrorResponse структура ответа об ошибке
type ErrorResponse struct {
	Error     bool   `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleGinError обрабатывает ошибку и возвращает JSON ответ
// AppError определяет статус и сообщение, остальные ошибки становятся 500
func HandleGinError(c *gin.Context, err error) {
	reqID := GetRequestIDFromGin(c)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternalError("unexpected error", err)
	}

	GetErrorMetrics().RecordError(appErr, c.FullPath(), reqID)

	attrs := []any{
		"error", appErr.Unwrap(),
		"user_message", appErr.UserMessage(),
		"context", appErr.GetContext(),
		"status_code", appErr.StatusCode(),
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}
	if appErr.StatusCode() >= http.StatusInternalServerError {
		slog.Error("HTTP error", attrs...)
	} else {
		slog.Warn("HTTP error", attrs...)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.StatusCode(), ErrorResponse{
		Error:     true,
		Message:   appErr.UserMessage(),
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: reqID,
	})
}
