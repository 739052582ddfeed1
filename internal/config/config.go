package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Источники таблиц
const (
	TableSourceFiles  = "files"
	TableSourceSQLite = "sqlite"
)

// Config конфигурация сервера дашборда
type Config struct {
	// Сервер
	Port string `json:"port"`

	// Источники данных
	DataDir             string `json:"data_dir"`
	CustomersPath       string `json:"customers_path"`
	HistoryPath         string `json:"history_path"`
	RecommendationsPath string `json:"recommendations_path"`
	ProductsPath        string `json:"products_path"`
	RulesPath           string `json:"rules_path"`
	SourceEncoding      string `json:"source_encoding"`
	TableSource         string `json:"table_source"`

	// Staging база SQLite
	StagingDatabasePath string        `json:"staging_database_path"`
	MaxOpenConns        int           `json:"max_open_conns"`
	MaxIdleConns        int           `json:"max_idle_conns"`
	ConnMaxLifetime     time.Duration `json:"conn_max_lifetime"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Дашборд
	HistoryMonths int   `json:"history_months"`
	TopN          int   `json:"top_n"`
	RandomSeed    int64 `json:"random_seed"`

	// Ограничение частоты запросов
	RateLimitPerSec float64 `json:"rate_limit_per_sec"`
	RateLimitBurst  int     `json:"rate_limit_burst"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	dataDir := getEnv("DATA_DIR", ".")

	config := &Config{
		Port: getEnv("SERVER_PORT", "9999"),

		DataDir:             dataDir,
		CustomersPath:       getEnv("CUSTOMERS_PATH", filepath.Join(dataDir, "clientes_df.csv")),
		HistoryPath:         getEnv("HISTORY_PATH", filepath.Join(dataDir, "bases", "cestas.csv")),
		RecommendationsPath: getEnv("RECOMMENDATIONS_PATH", filepath.Join(dataDir, "recomendacoes.csv")),
		ProductsPath:        getEnv("PRODUCTS_PATH", filepath.Join(dataDir, "bases", "produtos.csv")),
		RulesPath:           getEnv("RULES_PATH", filepath.Join(dataDir, "regras_apriori.csv")),
		SourceEncoding:      getEnv("SOURCE_ENCODING", "utf-8"),
		TableSource:         getEnv("TABLE_SOURCE", TableSourceFiles),

		StagingDatabasePath: getEnv("STAGING_DATABASE_PATH", filepath.Join(dataDir, "staging.db")),
		MaxOpenConns:        getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:        getEnvInt("DB_MAX_IDLE_CONNS", 3),
		ConnMaxLifetime:     getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		HistoryMonths: getEnvInt("HISTORY_MONTHS", 6),
		TopN:          getEnvInt("TOP_N", 3),
		RandomSeed:    int64(getEnvInt("RANDOM_SEED", 0)),

		RateLimitPerSec: getEnvFloat("RATE_LIMIT_PER_SEC", 50),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 100),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// SourcePaths возвращает пути к файлам исходных таблиц по их именам
func (c *Config) SourcePaths() map[string]string {
	return map[string]string{
		"clientes":      c.CustomersPath,
		"historico":     c.HistoryPath,
		"recomendacoes": c.RecommendationsPath,
		"produtos":      c.ProductsPath,
		"regras":        c.RulesPath,
	}
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как Duration или возвращает значение по умолчанию
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
