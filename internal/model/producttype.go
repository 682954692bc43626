package model

import "math"

// ProductKind discriminates the supported product families.
type ProductKind int

const (
	KindCabinet ProductKind = iota
	KindTable
	KindConsole
)

func (k ProductKind) String() string {
	switch k {
	case KindTable:
		return "Table"
	case KindConsole:
		return "Console"
	default:
		return "Cabinet"
	}
}

// Range is an inclusive [Min, Max] interval with an increment step, in cm.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

const stepEpsilon = 1e-6

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// OnStep reports whether v sits on the declared increment grid, measured
// from Min.
func (r Range) OnStep(v float64) bool {
	if r.Step <= 0 {
		return true
	}
	steps := (v - r.Min) / r.Step
	return math.Abs(steps-math.Round(steps)) < stepEpsilon
}

// Snap rounds v to the nearest valid value: onto the increment grid and
// clamped into [Min, Max]. The validator itself rejects off-grid values;
// Snap is for callers that prefer round-to-nearest before validating.
func (r Range) Snap(v float64) float64 {
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	}
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}
	return v
}

// ProductType carries the manufacturing constraint table and assembly
// parameters for one product family. Instances are immutable once built;
// the engine receives them from a registry and never mutates them.
type ProductType struct {
	Name string      `json:"name"`
	Kind ProductKind `json:"kind"`

	Width  Range `json:"width"`
	Height Range `json:"height"`
	Depth  Range `json:"depth"`

	MaxRows    int `json:"max_rows"`
	MaxColumns int `json:"max_columns"`

	// MinSpan is the narrowest allowed divider gap; SupportSpan is the
	// widest span allowed before an extra support component (foot or
	// brace) is required.
	MinSpan     float64 `json:"min_span"`
	SupportSpan float64 `json:"support_span"`

	DrawerMinDepth float64 `json:"drawer_min_depth"`
	PanelThickness float64 `json:"panel_thickness"`
	LegThickness   float64 `json:"leg_thickness"`

	LegStyles []LegStyle `json:"leg_styles,omitempty"`
}

// AllowsLegStyle reports whether a leg style is in the type's allowed set.
// Types with an empty set accept any style.
func (pt ProductType) AllowsLegStyle(s LegStyle) bool {
	if len(pt.LegStyles) == 0 {
		return true
	}
	for _, allowed := range pt.LegStyles {
		if allowed == s {
			return true
		}
	}
	return false
}

// DefaultTypes returns the built-in product type registry, keyed by name.
// The map is built fresh on each call so callers can extend their copy
// without affecting others.
func DefaultTypes() map[string]ProductType {
	types := map[string]ProductType{
		"cabinet": {
			Name:           "cabinet",
			Kind:           KindCabinet,
			Width:          Range{Min: 40, Max: 420, Step: 1},
			Height:         Range{Min: 25, Max: 250, Step: 5},
			Depth:          Range{Min: 20, Max: 60, Step: 1},
			MaxRows:        8,
			MaxColumns:     12,
			MinSpan:        15,
			SupportSpan:    80,
			DrawerMinDepth: 20,
			PanelThickness: 2,
			LegThickness:   4,
			LegStyles:      []LegStyle{LegStandard},
		},
		"table": {
			Name:           "table",
			Kind:           KindTable,
			Width:          Range{Min: 50, Max: 300, Step: 1},
			Height:         Range{Min: 60, Max: 110, Step: 1},
			Depth:          Range{Min: 50, Max: 400, Step: 1},
			MinSpan:        30,
			SupportSpan:    180,
			PanelThickness: 4,
			LegThickness:   6,
			LegStyles:      []LegStyle{LegStandard, LegPedestal, LegAngled},
		},
		"console": {
			Name:           "console",
			Kind:           KindConsole,
			Width:          Range{Min: 60, Max: 250, Step: 1},
			Height:         Range{Min: 60, Max: 100, Step: 1},
			Depth:          Range{Min: 20, Max: 50, Step: 1},
			MinSpan:        20,
			SupportSpan:    120,
			PanelThickness: 3,
			LegThickness:   4,
			LegStyles:      []LegStyle{LegStandard, LegAngled},
		},
	}
	return types
}
