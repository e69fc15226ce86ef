package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hypr-grid/pkg/core"
)

// DefaultPath returns the configuration file looked up when no path is given.
func DefaultPath() (string, error) {
	homeConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(homeConfigDir, "hypr", "hypr-grid.toml"), nil
}

// FindConfig locates and loads the configuration. A provided path must
// exist; a missing default file yields Default().
func FindConfig(providedPath string, log core.Logger) (*Config, error) {
	log.Info("Looking for configuration", "provided_path", providedPath)

	if providedPath != "" {
		config, err := loadConfigFromPath(providedPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from provided path: %w", err)
		}
		return config, nil
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		log.Error("Failed to resolve default config path", err)
		return nil, err
	}

	if _, err := os.Stat(defaultPath); errors.Is(err, fs.ErrNotExist) {
		log.Info("No config file found, using defaults", "path", defaultPath)
		return Default(), nil
	}

	config, err := loadConfigFromPath(defaultPath, log)
	if err != nil {
		return nil, err
	}
	log.Info("Configuration loaded", "path", defaultPath)
	return config, nil
}
