package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jmaessen/furnish/internal/model"
)

// Preset is a named starter configuration.
type Preset struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Config      model.Configuration `json:"config"`
}

// PresetStore holds the user's custom presets.
type PresetStore struct {
	Presets []Preset `json:"presets"`
}

// NewPresetStore returns an empty store.
func NewPresetStore() PresetStore {
	return PresetStore{Presets: []Preset{}}
}

// BuiltinPresets returns the presets shipped with the application. Ids are
// fresh on every call so a preset can be instantiated more than once.
func BuiltinPresets() []Preset {
	tall := model.DefaultConfiguration(model.KindCabinet)
	tall.Style = "asymmetric"

	low := model.NewConfiguration("cabinet", model.Dimensions{Width: 240, Height: 80, Depth: 40}, "staggered", model.DensityLow)
	low.RowHeights = model.RowsForHeight(80, model.RowLarge)
	low.BackPanel = true
	low.Compartments.Set(0, 0, model.CompartmentDoor)
	low.Compartments.Set(0, 1, model.CompartmentDrawer)

	dining := model.DefaultConfiguration(model.KindTable)
	dining.Dimensions = model.Dimensions{Width: 200, Height: 75, Depth: 100}

	bistro := model.NewConfiguration("table", model.Dimensions{Width: 80, Height: 75, Depth: 80}, "grid", model.DensityMedium)
	bistro.TopShape = model.ShapeRound
	bistro.LegStyle = model.LegPedestal
	bistro.AccentMaterial = model.MaterialMetal
	bistro.AccentColor = model.ColorBlack

	hall := model.DefaultConfiguration(model.KindConsole)

	return []Preset{
		{Name: "bookcase", Description: "Tall open bookcase with uneven bays", Config: tall},
		{Name: "sideboard", Description: "Low wide sideboard with door and drawer", Config: low},
		{Name: "dining-table", Description: "Six-seat rectangular dining table", Config: dining},
		{Name: "bistro-table", Description: "Round pedestal table for two", Config: bistro},
		{Name: "hall-console", Description: "Narrow entry console", Config: hall},
	}
}

// DefaultPresetPath returns the default file path for the preset store,
// located at ~/.furnish/presets.json.
func DefaultPresetPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SavePresets writes the preset store to a JSON file.
func SavePresets(path string, store PresetStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets reads a preset store from a JSON file. If the file does not
// exist, returns an empty store.
func LoadPresets(path string) (PresetStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewPresetStore(), nil
		}
		return PresetStore{}, err
	}
	var store PresetStore
	if err := json.Unmarshal(data, &store); err != nil {
		return PresetStore{}, err
	}
	if store.Presets == nil {
		store.Presets = []Preset{}
	}
	return store, nil
}

// FindPreset looks a preset up by name, searching the custom store first
// and the builtins second.
func FindPreset(store PresetStore, name string) (Preset, bool) {
	for _, p := range store.Presets {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range BuiltinPresets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
