// Package project persists configurations, presets, and application
// settings as JSON files under the user's home directory.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmaessen/furnish/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.furnish/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".furnish")
}

// SaveConfiguration persists a configuration to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveConfiguration(path string, cfg model.Configuration) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadConfiguration reads a configuration from the given path.
func LoadConfiguration(path string) (model.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Configuration{}, err
	}
	var cfg model.Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.Configuration{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.ProductType == "" {
		return model.Configuration{}, fmt.Errorf("invalid configuration file: missing product type")
	}
	return cfg, nil
}
