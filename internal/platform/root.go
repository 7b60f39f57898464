package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "scribe"

// DataDir returns where notes live by default:
// $XDG_DATA_HOME/scribe, falling back to ~/.local/share/scribe.
func DataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// ConfigPath returns the default config file:
// $XDG_CONFIG_HOME/scribe/config.yaml, falling back to ~/.config/scribe/config.yaml.
func ConfigPath() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func xdgDir(env string, fallback ...string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, appDir)...), nil
}
