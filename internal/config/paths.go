package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the path to the Nano Gallery data directory.
// - Windows: %APPDATA%\nanogallery
// - Other OS: ~/.nanogallery
func DataDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "nanogallery")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".nanogallery"
	}
	return filepath.Join(home, ".nanogallery")
}

// DBPath returns the path to the SQLite database file.
func DBPath() string {
	return filepath.Join(DataDir(), "nanogallery.db")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0700)
}
