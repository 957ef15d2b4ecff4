package config

import (
	"os"
	"strconv"
)

// FromEnv overlays HOG_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("HOG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HOG_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("HOG_BUF_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CopyBufferSize = n
		}
	}
	if v := os.Getenv("HOG_OVERWRITE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Overwrite = b
		}
	}
}
