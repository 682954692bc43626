package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jmaessen/furnish/internal/model"
)

// maxRecentConfigs caps the recent-file list length.
const maxRecentConfigs = 10

// AppConfig holds user-level application settings.
type AppConfig struct {
	DefaultMaterial model.Material `json:"default_material"`
	DefaultColor    model.Color    `json:"default_color"`
	ExportDir       string         `json:"export_dir"`
	Theme           string         `json:"theme"`
	RecentConfigs   []string       `json:"recent_configs"`
}

// DefaultAppConfig returns the settings used before the user saves any.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultMaterial: model.MaterialWood,
		DefaultColor:    model.ColorOak,
		ExportDir:       DefaultConfigDir(),
		Theme:           "light",
		RecentConfigs:   []string{},
	}
}

// AddRecent records a configuration path at the front of the recent list,
// removing any earlier occurrence.
func (c *AppConfig) AddRecent(path string) {
	recent := []string{path}
	for _, p := range c.RecentConfigs {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentConfigs {
		recent = recent[:maxRecentConfigs]
	}
	c.RecentConfigs = recent
}

// DefaultAppConfigPath returns the default path for the application config
// file.
func DefaultAppConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path. If the file does
// not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	// Ensure RecentConfigs is never nil
	if config.RecentConfigs == nil {
		config.RecentConfigs = []string{}
	}
	return config, nil
}
