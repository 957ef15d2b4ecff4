package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	LogLevel       string `json:"logLevel" yaml:"logLevel"`
	LogFormat      string `json:"logFormat" yaml:"logFormat"`
	CopyBufferSize int    `json:"copyBufferSize" yaml:"copyBufferSize"`
	Overwrite      bool   `json:"overwrite" yaml:"overwrite"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		LogLevel:       "info",
		LogFormat:      "text",
		CopyBufferSize: 32 << 10,
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If
// path is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}
