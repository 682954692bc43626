package project

import (
	"path/filepath"
	"testing"

	"github.com/jmaessen/furnish/internal/layout"
	"github.com/jmaessen/furnish/internal/model"
)

func TestBuiltinPresets_AllDeriveCleanly(t *testing.T) {
	engine := layout.Default()

	for _, preset := range BuiltinPresets() {
		t.Run(preset.Name, func(t *testing.T) {
			res, err := engine.Validate(preset.Config)
			if err != nil {
				t.Fatalf("Validate returned error: %v", err)
			}
			if !res.OK() {
				t.Fatalf("builtin preset is invalid: %v", res.Violations)
			}

			result, err := engine.Compute(preset.Config)
			if err != nil {
				t.Fatalf("Compute returned error: %v", err)
			}
			if len(result.Violations) > 0 {
				t.Fatalf("builtin preset has violations: %v", result.Violations)
			}
			if len(result.Components) == 0 {
				t.Fatal("builtin preset produced no components")
			}
		})
	}
}

func TestBuiltinPresets_FreshIDs(t *testing.T) {
	a := BuiltinPresets()
	b := BuiltinPresets()
	if a[0].Config.ID == b[0].Config.ID {
		t.Error("expected fresh configuration ids on each call")
	}
}

func TestSaveLoadPresets_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")

	store := NewPresetStore()
	store.Presets = append(store.Presets, Preset{
		Name:        "workshop-cabinet",
		Description: "Deep garage cabinet",
		Config:      model.DefaultConfiguration(model.KindCabinet),
	})

	if err := SavePresets(path, store); err != nil {
		t.Fatalf("SavePresets returned error: %v", err)
	}

	loaded, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets returned error: %v", err)
	}
	if len(loaded.Presets) != 1 || loaded.Presets[0].Name != "workshop-cabinet" {
		t.Errorf("unexpected store contents: %+v", loaded.Presets)
	}
}

func TestLoadPresets_MissingFileReturnsEmptyStore(t *testing.T) {
	store, err := LoadPresets(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadPresets returned error: %v", err)
	}
	if store.Presets == nil || len(store.Presets) != 0 {
		t.Errorf("expected empty store, got %+v", store)
	}
}

func TestFindPreset(t *testing.T) {
	store := NewPresetStore()
	custom := Preset{Name: "bookcase", Description: "overrides the builtin"}
	store.Presets = append(store.Presets, custom)

	got, ok := FindPreset(store, "bookcase")
	if !ok {
		t.Fatal("preset not found")
	}
	if got.Description != custom.Description {
		t.Error("custom preset should shadow the builtin of the same name")
	}

	if _, ok := FindPreset(NewPresetStore(), "dining-table"); !ok {
		t.Error("builtin preset not found through empty store")
	}
	if _, ok := FindPreset(NewPresetStore(), "no-such"); ok {
		t.Error("unexpected match for unknown preset name")
	}
}
