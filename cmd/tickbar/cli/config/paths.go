// Package config provides configuration management for the tickbar CLI.
package config

import (
	"os"
	"path/filepath"
)

// Dir returns the tickbar config directory.
// Uses XDG_CONFIG_HOME/tickbar, defaulting to ~/.config/tickbar.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tickbar"), nil
}
