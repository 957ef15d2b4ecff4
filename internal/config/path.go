package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns the path of the user's hog config file if one
// exists, preferring XDG locations and falling back to a dotdir in the
// user's home directory. It returns "" when no config file is found.
func DefaultPath() string {
	var candidates []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates,
			filepath.Join(xdg, "hog", "config.yaml"),
			filepath.Join(xdg, "hog", "config.json"),
		)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		candidates = append(candidates,
			filepath.Join(home, ".config", "hog", "config.yaml"),
			filepath.Join(home, ".config", "hog", "config.json"),
			filepath.Join(home, ".hog.yaml"),
		)
	}

	for _, p := range candidates {
		if isFile(p) {
			return p
		}
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
