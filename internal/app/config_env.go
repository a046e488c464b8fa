package app

import (
	"os"
	"strconv"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Listen == "" {
		cfg.Listen = os.Getenv("LISTEN_ADDR")
	}
	if cfg.SearchURL == "" {
		cfg.SearchURL = os.Getenv("SEARCH_URL")
	}
	if cfg.CourseURL == "" {
		cfg.CourseURL = os.Getenv("COURSE_URL")
	}
	if cfg.Source == "" {
		cfg.Source = os.Getenv("SOURCE_LABEL")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("USER_AGENT")
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv("CACHE_DIR")
	}

	if cfg.MaxRecords == 0 {
		if n, err := strconv.Atoi(os.Getenv("MAX_RECORDS")); err == nil && n > 0 {
			cfg.MaxRecords = n
		}
	}
	if cfg.FetchTimeout == 0 {
		if d, err := time.ParseDuration(os.Getenv("FETCH_TIMEOUT")); err == nil && d > 0 {
			cfg.FetchTimeout = d
		}
	}
	if cfg.Seed == 0 {
		if n, err := strconv.ParseInt(os.Getenv("SEED"), 10, 64); err == nil {
			cfg.Seed = n
		}
	}
}
