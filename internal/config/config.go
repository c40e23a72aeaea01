package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// DefaultDirName is the name of the configuration directory under the home directory
	DefaultDirName = ".flashcli"
)

var (
	// ConfigDir is the global configuration directory (~/.flashcli)
	ConfigDir string

	// StoreDir holds one JSON file per key for the file backend
	StoreDir string

	// DatabasePath is the SQLite database file for the sqlite backend
	DatabasePath string

	// SettingsFile is the YAML settings file
	SettingsFile string

	// KeybindsFile holds user keybinding overrides
	KeybindsFile string

	// LogFile receives the TUI session log
	LogFile string
)

// Initialize sets up the configuration directories and files.
// It creates the config directory (default ~/.flashcli) if it doesn't exist.
// An empty home uses the user's home directory.
func Initialize(home string) error {
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		home = filepath.Join(homeDir, DefaultDirName)
	} else {
		expanded, err := expandHome(home)
		if err != nil {
			return err
		}
		home = expanded
	}

	// Set global paths
	ConfigDir = home
	StoreDir = filepath.Join(ConfigDir, "store")
	DatabasePath = filepath.Join(ConfigDir, "flashcli.db")
	SettingsFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "flashcli.log")

	// Create directories if they don't exist
	dirs := []string{ConfigDir, StoreDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Create default settings file if it doesn't exist
	if _, err := os.Stat(SettingsFile); os.IsNotExist(err) {
		if err := SaveSettings(SettingsFile, DefaultSettings()); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	return nil
}

// expandHome expands a leading ~/ to the user's home directory
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return filepath.Abs(path)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[2:]), nil
}
