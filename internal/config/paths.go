// Package config handles settings loading and data directory layout.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the directory under ~/.config holding all app data.
	AppDirName = "entrainde"

	// DataDirEnv overrides the data directory.
	DataDirEnv = "ENTRAINDE_DATA_DIR"

	// DSNEnv overrides store.dsn.
	DSNEnv = "ENTRAINDE_DSN"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	TasksFileName    = "tasks.json"
	LogFileName      = "entrainde.log"
)

// DefaultDataDir returns ~/.config/entrainde, or the current directory when
// the home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", AppDirName)
}

// ResolveDataDir picks the data directory: flag value, then env, then default.
func ResolveDataDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(DataDirEnv); env != "" {
		return env
	}
	return DefaultDataDir()
}
