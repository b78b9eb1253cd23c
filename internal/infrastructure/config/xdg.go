package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "uxtheme"
	configFileName = "uxtheme"
	configFileType = "toml"
)

// GetConfigDir returns $XDG_CONFIG_HOME/uxtheme (default: ~/.config/uxtheme).
// With ENV=dev it returns .dev/uxtheme under the working directory.
func GetConfigDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetManDir returns $XDG_DATA_HOME/man/man1 (default: ~/.local/share/man/man1).
func GetManDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "man", "man1"), nil
}
