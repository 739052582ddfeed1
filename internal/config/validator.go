package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	// Валидация источника таблиц
	switch c.TableSource {
	case TableSourceFiles:
		if c.CustomersPath == "" || c.HistoryPath == "" || c.RecommendationsPath == "" || c.ProductsPath == "" {
			errors = append(errors, "customers, history, recommendations and products paths are required")
		}
	case TableSourceSQLite:
		if c.StagingDatabasePath == "" {
			errors = append(errors, "staging database path is required for sqlite table source")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid table source: %s (valid: %s, %s)",
			c.TableSource, TableSourceFiles, TableSourceSQLite))
	}

	validEncodings := []string{"utf-8", "utf8", "latin1", "iso-8859-1", "windows-1252", "cp1252"}
	if !containsFold(validEncodings, c.SourceEncoding) {
		errors = append(errors, fmt.Sprintf("invalid source encoding: %s (valid: %s)",
			c.SourceEncoding, strings.Join(validEncodings, ", ")))
	}

	// Валидация connection pooling
	if c.MaxOpenConns < 1 {
		errors = append(errors, "max open connections must be at least 1")
	}
	if c.MaxIdleConns < 1 {
		errors = append(errors, "max idle connections must be at least 1")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errors = append(errors, "max idle connections cannot be greater than max open connections")
	}
	if c.ConnMaxLifetime < time.Second {
		errors = append(errors, "connection max lifetime must be at least 1 second")
	}

	// Валидация уровня логирования
	validLogLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if c.LogLevel != "" && !containsFold(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
			c.LogLevel, strings.Join(validLogLevels, ", ")))
	}

	// Валидация параметров дашборда
	if c.HistoryMonths < 1 || c.HistoryMonths > 60 {
		errors = append(errors, fmt.Sprintf("history months must be between 1 and 60, got %d", c.HistoryMonths))
	}
	if c.TopN < 1 || c.TopN > 50 {
		errors = append(errors, fmt.Sprintf("top N must be between 1 and 50, got %d", c.TopN))
	}

	if c.RateLimitPerSec <= 0 {
		errors = append(errors, "rate limit per second must be positive")
	}
	if c.RateLimitBurst < 1 {
		errors = append(errors, "rate limit burst must be at least 1")
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

func containsFold(values []string, value string) bool {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
