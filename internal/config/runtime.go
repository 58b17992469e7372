package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	path := os.Getenv("BODAI_RUNTIME_PATH")
	if path == "" {
		path = ".bodai"
	}
	return resolvePath(path)
}

// resolvePath anchors relative paths at the user's home directory.
func resolvePath(path string) string {
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
