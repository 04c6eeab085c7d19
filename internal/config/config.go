package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/emmy649/budget/internal/kv"
)

type Config struct {
	// Storage backend
	Backend    string
	DBPath     string
	QuotaBytes int64

	// Export
	ExportDir string
}

func Load() *Config {
	return &Config{
		Backend:    getEnv("BUDGET_BACKEND", "sqlite"),
		DBPath:     getEnv("BUDGET_DB_PATH", "./data/budget.db"),
		QuotaBytes: getEnvInt64("BUDGET_QUOTA_BYTES", kv.DefaultQuotaBytes),
		ExportDir:  getEnv("BUDGET_EXPORT_DIR", "."),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !kv.BackendType(c.Backend).IsValid() {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of [%s %s]",
			c.Backend, kv.MemoryBackend, kv.SQLiteBackend))
	}

	if kv.BackendType(c.Backend) == kv.SQLiteBackend {
		if c.DBPath == "" {
			errors = append(errors, "database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.DBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.QuotaBytes <= 0 {
		errors = append(errors, fmt.Sprintf("invalid quota %d: must be positive", c.QuotaBytes))
	}

	if c.ExportDir == "" {
		errors = append(errors, "export directory cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}
