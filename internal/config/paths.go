package config

import (
	"os"
	"path/filepath"
)

// Dir returns the configuration directory path (~/.config/jotfind).
// It can be overridden with the JOTFIND_CONFIG_DIR environment variable.
func Dir() string {
	if d := os.Getenv("JOTFIND_CONFIG_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "jotfind")
	}
	return filepath.Join(home, ".config", "jotfind")
}

// ConfigFile returns the path to the config.yaml file.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LogFile returns the path to the debug log.
func LogFile() string {
	return filepath.Join(Dir(), "debug.log")
}
