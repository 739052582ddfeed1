package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:                "9999",
		DataDir:             ".",
		CustomersPath:       "clientes_df.csv",
		HistoryPath:         "bases/cestas.csv",
		RecommendationsPath: "recomendacoes.csv",
		ProductsPath:        "bases/produtos.csv",
		RulesPath:           "regras_apriori.csv",
		SourceEncoding:      "utf-8",
		TableSource:         TableSourceFiles,
		StagingDatabasePath: "staging.db",
		MaxOpenConns:        10,
		MaxIdleConns:        3,
		ConnMaxLifetime:     5 * time.Minute,
		LogLevel:            "INFO",
		HistoryMonths:       6,
		TopN:                3,
		RateLimitPerSec:     50,
		RateLimitBurst:      100,
	}
}

func TestConfigLogLevelValidation(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantError bool
	}{
		{"Valid DEBUG", "DEBUG", false},
		{"Valid INFO", "INFO", false},
		{"Valid WARN", "WARN", false},
		{"Valid ERROR", "ERROR", false},
		{"Valid lowercase debug", "debug", false},
		{"Invalid value", "INVALID", true},
		{"Empty string", "", false}, // Пустая строка допустима
		{"Mixed case", "DeBuG", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.logLevel

			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestConfigDashboardBounds(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError string
	}{
		{"zero months", func(c *Config) { c.HistoryMonths = 0 }, "history months"},
		{"too many months", func(c *Config) { c.HistoryMonths = 61 }, "history months"},
		{"zero top N", func(c *Config) { c.TopN = 0 }, "top N"},
		{"bad source", func(c *Config) { c.TableSource = "s3" }, "invalid table source"},
		{"bad encoding", func(c *Config) { c.SourceEncoding = "koi8-r" }, "invalid source encoding"},
		{"idle above open", func(c *Config) { c.MaxIdleConns = 20 }, "max idle connections"},
		{"bad port", func(c *Config) { c.Port = "http" }, "invalid port"},
		{"sqlite without path", func(c *Config) {
			c.TableSource = TableSourceSQLite
			c.StagingDatabasePath = ""
		}, "staging database path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantError)
			}
			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("Validate() error = %v, want substring %q", err, tt.wantError)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/agro")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.HistoryMonths != 6 {
		t.Errorf("HistoryMonths = %d, want 6", cfg.HistoryMonths)
	}
	if cfg.TopN != 3 {
		t.Errorf("TopN = %d, want 3", cfg.TopN)
	}
	if cfg.RulesPath != filepath.Join("/srv/agro", "regras_apriori.csv") {
		t.Errorf("RulesPath = %s", cfg.RulesPath)
	}
	if cfg.HistoryPath != filepath.Join("/srv/agro", "bases", "cestas.csv") {
		t.Errorf("HistoryPath = %s", cfg.HistoryPath)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TOP_N", "5")
	t.Setenv("HISTORY_MONTHS", "12")
	t.Setenv("TABLE_SOURCE", TableSourceSQLite)
	t.Setenv("DB_CONN_MAX_LIFETIME", "1m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.TopN != 5 || cfg.HistoryMonths != 12 {
		t.Errorf("overrides not applied: top_n=%d months=%d", cfg.TopN, cfg.HistoryMonths)
	}
	if cfg.TableSource != TableSourceSQLite {
		t.Errorf("TableSource = %s", cfg.TableSource)
	}
	if cfg.ConnMaxLifetime != time.Minute {
		t.Errorf("ConnMaxLifetime = %v", cfg.ConnMaxLifetime)
	}
}

func TestLoadConfigRejectsInvalidEnv(t *testing.T) {
	t.Setenv("TOP_N", "500")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() expected error for TOP_N=500")
	}
}
