package errors

import (
	"sync"
	"time"
)

// ErrorMetricsCollector собирает метрики ошибок для мониторинга
type ErrorMetricsCollector struct {
	mu sync.RWMutex

	totalErrors      int64
	errorsByCode     map[int]int64
	errorsByEndpoint map[string]int64

	// Последние N ошибок
	lastErrors    []ErrorRecord
	maxLastErrors int

	startTime time.Time
}

// ErrorRecord запись об ошибке
type ErrorRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	Code        int       `json:"code"`
	Message     string    `json:"message"`
	Endpoint    string    `json:"endpoint"`
	RequestID   string    `json:"request_id,omitempty"`
	UserMessage string    `json:"user_message"`
}

// ErrorMetricsSnapshot снимок метрик для отдачи в API
type ErrorMetricsSnapshot struct {
	TotalErrors      int64            `json:"total_errors"`
	ErrorsByCode     map[int]int64    `json:"errors_by_code"`
	ErrorsByEndpoint map[string]int64 `json:"errors_by_endpoint"`
	LastErrors       []ErrorRecord    `json:"last_errors"`
	UptimeSeconds    float64          `json:"uptime_seconds"`
}

// NewErrorMetricsCollector создает новый сборщик метрик ошибок
func NewErrorMetricsCollector() *ErrorMetricsCollector {
	return &ErrorMetricsCollector{
		errorsByCode:     make(map[int]int64),
		errorsByEndpoint: make(map[string]int64),
		lastErrors:       make([]ErrorRecord, 0),
		maxLastErrors:    50,
		startTime:        time.Now(),
	}
}

// RecordError записывает ошибку в метрики
func (emc *ErrorMetricsCollector) RecordError(err *AppError, endpoint, requestID string) {
	if err == nil {
		return
	}

	emc.mu.Lock()
	defer emc.mu.Unlock()

	emc.totalErrors++
	emc.errorsByCode[err.Code]++
	if endpoint != "" {
		emc.errorsByEndpoint[endpoint]++
	}

	emc.lastErrors = append(emc.lastErrors, ErrorRecord{
		Timestamp:   time.Now(),
		Code:        err.Code,
		Message:     err.Error(),
		Endpoint:    endpoint,
		RequestID:   requestID,
		UserMessage: err.Message,
	})
	if len(emc.lastErrors) > emc.maxLastErrors {
		emc.lastErrors = emc.lastErrors[len(emc.lastErrors)-emc.maxLastErrors:]
	}
}

// Snapshot возвращает копию текущих метрик
func (emc *ErrorMetricsCollector) Snapshot() ErrorMetricsSnapshot {
	emc.mu.RLock()
	defer emc.mu.RUnlock()

	byCode := make(map[int]int64, len(emc.errorsByCode))
	for k, v := range emc.errorsByCode {
		byCode[k] = v
	}
	byEndpoint := make(map[string]int64, len(emc.errorsByEndpoint))
	for k, v := range emc.errorsByEndpoint {
		byEndpoint[k] = v
	}
	last := make([]ErrorRecord, len(emc.lastErrors))
	copy(last, emc.lastErrors)

	return ErrorMetricsSnapshot{
		TotalErrors:      emc.totalErrors,
		ErrorsByCode:     byCode,
		ErrorsByEndpoint: byEndpoint,
		LastErrors:       last,
		UptimeSeconds:    time.Since(emc.startTime).Seconds(),
	}
}

// Reset сбрасывает все метрики
func (emc *ErrorMetricsCollector) Reset() {
	emc.mu.Lock()
	defer emc.mu.Unlock()

	emc.totalErrors = 0
	emc.errorsByCode = make(map[int]int64)
	emc.errorsByEndpoint = make(map[string]int64)
	emc.lastErrors = make([]ErrorRecord, 0)
	emc.startTime = time.Now()
}
