package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CacheMode selects where analysis results are cached.
type CacheMode string

const (
	CacheMemory CacheMode = "memory"
	CacheSQLite CacheMode = "sqlite"
)

// Config holds process-level settings. LLM settings live in llm.Config.
type Config struct {
	DBPath      string
	CacheMode   CacheMode
	LogLevel    string
	LogFormat   string
	MetricsFile string
}

// DefaultConfig returns a Config using ~/.dayplan/dayplan.db. home may be
// empty, in which case the database is placed in the working directory.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:    filepath.Join(home, ".dayplan", "dayplan.db"),
		CacheMode: CacheMemory,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// LoadConfig reads process configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil && os.Getenv("DAYPLAN_DB") == "" {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	if v := os.Getenv("DAYPLAN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("DAYPLAN_CACHE"); v != "" {
		switch m := CacheMode(strings.ToLower(v)); m {
		case CacheMemory, CacheSQLite:
			cfg.CacheMode = m
		default:
			return Config{}, fmt.Errorf("invalid DAYPLAN_CACHE %q: want memory or sqlite", v)
		}
	}
	if v := os.Getenv("DAYPLAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("DAYPLAN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	cfg.MetricsFile = os.Getenv("DAYPLAN_METRICS_FILE")

	return cfg, nil
}
