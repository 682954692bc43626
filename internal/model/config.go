package model

import (
	"math"

	"github.com/google/uuid"
)

// Density controls divider/shelf spacing: low density means wider gaps and
// fewer dividers, high density narrower gaps and more dividers.
type Density int

const (
	DensityLow Density = iota
	DensityMedium
	DensityHigh
)

func (d Density) String() string {
	switch d {
	case DensityLow:
		return "Low"
	case DensityHigh:
		return "High"
	default:
		return "Medium"
	}
}

// RowPreset is one of the discrete row-height choices.
type RowPreset int

const (
	RowSmall  RowPreset = iota // 25 cm
	RowMedium                  // 35 cm
	RowLarge                   // 45 cm
	RowCustom                  // continuous override, value in RowHeight.Custom
)

func (p RowPreset) String() string {
	switch p {
	case RowSmall:
		return "Small"
	case RowMedium:
		return "Medium"
	case RowLarge:
		return "Large"
	default:
		return "Custom"
	}
}

// rowPresetValues is the single source of truth for the preset-to-cm
// mapping. Both the row resolver and the validator's height check read
// from it through RowHeight.Value.
var rowPresetValues = map[RowPreset]float64{
	RowSmall:  25,
	RowMedium: 35,
	RowLarge:  45,
}

// RowHeight is the vertical extent of one structural row: a preset from
// the discrete set, or a continuous override when Preset is RowCustom.
type RowHeight struct {
	Preset RowPreset `json:"preset"`
	Custom float64   `json:"custom,omitempty"`
}

// Convenience values for building row sequences.
var (
	RowHeightSmall  = RowHeight{Preset: RowSmall}
	RowHeightMedium = RowHeight{Preset: RowMedium}
	RowHeightLarge  = RowHeight{Preset: RowLarge}
)

// CustomRowHeight returns a continuous row-height override in cm.
func CustomRowHeight(cm float64) RowHeight {
	return RowHeight{Preset: RowCustom, Custom: cm}
}

// Value returns the row height in cm.
func (r RowHeight) Value() float64 {
	if r.Preset == RowCustom {
		return r.Custom
	}
	return rowPresetValues[r.Preset]
}

// RowsForHeight derives a row-height sequence from an overall height: as
// many rows of the given preset as fit, with the final row adjusted to a
// custom height so the sequence sums exactly to the target. Row heights are
// the source of truth for total height; overall-height edits pass through
// here so the two never diverge.
func RowsForHeight(height float64, preset RowPreset) []RowHeight {
	unit := rowPresetValues[preset]
	if unit <= 0 || height <= 0 {
		return nil
	}
	n := int(math.Floor(height / unit))
	if n < 1 {
		return []RowHeight{CustomRowHeight(height)}
	}
	rows := make([]RowHeight, 0, n+1)
	for i := 0; i < n; i++ {
		rows = append(rows, RowHeight{Preset: preset})
	}
	if rest := height - float64(n)*unit; rest > 1e-9 {
		rows = append(rows, CustomRowHeight(rest))
	}
	return rows
}

// LegStyle selects the leg construction for tables and consoles.
type LegStyle int

const (
	LegStandard LegStyle = iota
	LegPedestal          // single center pedestal, round tops only
	LegAngled
)

func (s LegStyle) String() string {
	switch s {
	case LegPedestal:
		return "Pedestal"
	case LegAngled:
		return "Angled"
	default:
		return "Standard"
	}
}

// LegPosition controls how far corner legs are inset from the edge.
type LegPosition int

const (
	LegPosStandard LegPosition = iota
	LegPosInset
	LegPosOutset
)

func (p LegPosition) String() string {
	switch p {
	case LegPosInset:
		return "Inset"
	case LegPosOutset:
		return "Outset"
	default:
		return "Standard"
	}
}

// Inset returns the distance in cm from the top edge to the leg center.
func (p LegPosition) Inset() float64 {
	switch p {
	case LegPosInset:
		return 8
	case LegPosOutset:
		return 2
	default:
		return 5
	}
}

// TopShape is the tabletop outline for tables.
type TopShape int

const (
	ShapeRectangular TopShape = iota
	ShapeRound
	ShapeOval
)

func (s TopShape) String() string {
	switch s {
	case ShapeRound:
		return "Round"
	case ShapeOval:
		return "Oval"
	default:
		return "Rectangular"
	}
}

// CompartmentType is the requested fill for one storage cell.
type CompartmentType int

const (
	CompartmentOpen CompartmentType = iota
	CompartmentDoor
	CompartmentDrawer
)

func (t CompartmentType) String() string {
	switch t {
	case CompartmentDoor:
		return "Door"
	case CompartmentDrawer:
		return "Drawer"
	default:
		return "Open"
	}
}

// TypeGrid holds the requested compartment type per (row, column) cell.
// Rows may have differing lengths; cells beyond a row's length are Open.
type TypeGrid [][]CompartmentType

// At returns the requested type for a cell, defaulting to Open.
func (g TypeGrid) At(row, col int) CompartmentType {
	if row < 0 || row >= len(g) {
		return CompartmentOpen
	}
	if col < 0 || col >= len(g[row]) {
		return CompartmentOpen
	}
	return g[row][col]
}

// Set grows the grid as needed and records a cell's requested type.
func (g *TypeGrid) Set(row, col int, t CompartmentType) {
	for len(*g) <= row {
		*g = append(*g, nil)
	}
	for len((*g)[row]) <= col {
		(*g)[row] = append((*g)[row], CompartmentOpen)
	}
	(*g)[row][col] = t
}

// Configuration is the aggregate the engine derives a layout from. The
// engine never holds one: it is owned by the caller, and every edit reruns
// the full derivation pipeline over its current values.
type Configuration struct {
	ID          string      `json:"id"`
	ProductType string      `json:"product_type"`
	Dimensions  Dimensions  `json:"dimensions"`
	RowHeights  []RowHeight `json:"row_heights,omitempty"`
	Style       string      `json:"style"`
	Density     Density     `json:"density"`
	LegStyle    LegStyle    `json:"leg_style"`
	LegPosition LegPosition `json:"leg_position"`
	TopShape    TopShape    `json:"top_shape"`
	BackPanel   bool        `json:"back_panel"`

	Compartments TypeGrid `json:"compartments,omitempty"`

	// Body material/color cover panels, shelves and dividers; the accent
	// pair covers legs, doors and drawer fronts.
	Material       Material `json:"material"`
	Color          Color    `json:"color"`
	AccentMaterial Material `json:"accent_material"`
	AccentColor    Color    `json:"accent_color"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewConfiguration creates a configuration with a fresh id. All parameters
// are explicit; there are no partial-merge defaults.
func NewConfiguration(productType string, dims Dimensions, style string, density Density) Configuration {
	return Configuration{
		ID:             uuid.New().String()[:8],
		ProductType:    productType,
		Dimensions:     dims,
		Style:          style,
		Density:        density,
		Material:       MaterialWood,
		Color:          ColorOak,
		AccentMaterial: MaterialWood,
		AccentColor:    ColorOak,
	}
}

// DefaultConfiguration returns a sensible starter configuration for a
// product kind, with row heights derived from the default height.
func DefaultConfiguration(kind ProductKind) Configuration {
	switch kind {
	case KindTable:
		cfg := NewConfiguration("table", Dimensions{Width: 160, Height: 75, Depth: 90}, "grid", DensityMedium)
		cfg.TopShape = ShapeRectangular
		cfg.AccentMaterial = MaterialMetal
		cfg.AccentColor = ColorBlack
		return cfg
	case KindConsole:
		cfg := NewConfiguration("console", Dimensions{Width: 120, Height: 80, Depth: 35}, "grid", DensityMedium)
		cfg.AccentMaterial = MaterialMetal
		cfg.AccentColor = ColorBlack
		return cfg
	default:
		cfg := NewConfiguration("cabinet", Dimensions{Width: 180, Height: 210, Depth: 35}, "grid", DensityMedium)
		cfg.RowHeights = RowsForHeight(210, RowMedium)
		cfg.BackPanel = true
		return cfg
	}
}
