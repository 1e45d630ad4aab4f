package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by ApplyEnvToConfig.
const (
	EnvModel       = "GOSUMMARIZE_MODEL"
	EnvFormat      = "GOSUMMARIZE_FORMAT"
	EnvCacheDir    = "GOSUMMARIZE_CACHE_DIR"
	EnvCacheMaxAge = "GOSUMMARIZE_CACHE_MAX_AGE"
	EnvConcurrency = "GOSUMMARIZE_CONCURRENCY"
	EnvShortfall   = "GOSUMMARIZE_SHORTFALL"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if (cfg.Model == "" || cfg.Model == DefaultModel) && os.Getenv(EnvModel) != "" {
		cfg.Model = strings.TrimSpace(os.Getenv(EnvModel))
	}
	if (cfg.Format == "" || cfg.Format == DefaultFormat) && os.Getenv(EnvFormat) != "" {
		cfg.Format = strings.ToLower(strings.TrimSpace(os.Getenv(EnvFormat)))
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv(EnvCacheDir)
	}
	if cfg.Shortfall == "" {
		cfg.Shortfall = os.Getenv(EnvShortfall)
	}
	if cfg.Concurrency == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(EnvConcurrency))); err == nil && n > 0 {
			cfg.Concurrency = n
		}
	}
	if cfg.CacheMaxAge == 0 {
		if s := os.Getenv(EnvCacheMaxAge); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.CacheMaxAge = d
			}
		}
	}
}
