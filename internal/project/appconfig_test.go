package project

import (
	"path/filepath"
	"testing"

	"github.com/jmaessen/furnish/internal/model"
)

func TestSaveLoadAppConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config := DefaultAppConfig()
	config.DefaultMaterial = model.MaterialMDF
	config.DefaultColor = model.ColorWhite
	config.Theme = "dark"
	config.AddRecent("/tmp/a.json")

	if err := SaveAppConfig(path, config); err != nil {
		t.Fatalf("SaveAppConfig returned error: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig returned error: %v", err)
	}
	if loaded.DefaultMaterial != model.MaterialMDF || loaded.Theme != "dark" {
		t.Errorf("unexpected config: %+v", loaded)
	}
	if len(loaded.RecentConfigs) != 1 || loaded.RecentConfigs[0] != "/tmp/a.json" {
		t.Errorf("unexpected recent list: %v", loaded.RecentConfigs)
	}
}

func TestLoadAppConfig_MissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadAppConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadAppConfig returned error: %v", err)
	}
	if config.DefaultMaterial != model.MaterialWood {
		t.Errorf("expected default material, got %q", config.DefaultMaterial)
	}
	if config.RecentConfigs == nil {
		t.Error("RecentConfigs should never be nil")
	}
}

func TestAddRecent_DedupesAndCaps(t *testing.T) {
	config := DefaultAppConfig()

	config.AddRecent("/tmp/a.json")
	config.AddRecent("/tmp/b.json")
	config.AddRecent("/tmp/a.json")

	if len(config.RecentConfigs) != 2 {
		t.Fatalf("expected 2 entries, got %v", config.RecentConfigs)
	}
	if config.RecentConfigs[0] != "/tmp/a.json" {
		t.Errorf("most recent entry should be first: %v", config.RecentConfigs)
	}

	for i := 0; i < maxRecentConfigs+5; i++ {
		config.AddRecent(filepath.Join("/tmp", string(rune('a'+i))+".json"))
	}
	if len(config.RecentConfigs) != maxRecentConfigs {
		t.Errorf("recent list not capped: %d entries", len(config.RecentConfigs))
	}
}
