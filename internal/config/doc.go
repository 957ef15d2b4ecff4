// Package config loads hogdump configuration from an optional JSON or
// YAML file with an HOG_* environment variable overlay on top.
package config
