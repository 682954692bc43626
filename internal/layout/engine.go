package layout

import (
	"fmt"

	"github.com/jmaessen/furnish/internal/model"
)

// doorClearance is the gap left around door and drawer fronts, cm.
const doorClearance = 0.4

// Engine runs the full derivation pipeline: validate, compute style
// layout and row positions, assemble components, build compartments,
// group by material. It holds only the two immutable registries, so one
// Engine may serve any number of goroutines concurrently.
type Engine struct {
	types  map[string]model.ProductType
	styles *StyleSet
}

// NewEngine builds an engine over the given registries.
func NewEngine(types map[string]model.ProductType, styles *StyleSet) *Engine {
	return &Engine{types: types, styles: styles}
}

// Default returns an engine over the built-in product types and styles.
func Default() *Engine {
	return NewEngine(model.DefaultTypes(), DefaultStyles())
}

// ProductType looks up a registered product type by name.
func (e *Engine) ProductType(name string) (model.ProductType, bool) {
	pt, ok := e.types[name]
	return pt, ok
}

// Styles exposes the style registry.
func (e *Engine) Styles() *StyleSet {
	return e.styles
}

// LayoutResult is the derived output for one configuration. When
// Violations is non-empty the requested compartment grid was rejected and
// the other fields are zero — derivation is all-or-nothing.
type LayoutResult struct {
	Components   []model.Component     `json:"components"`
	Compartments []Compartment         `json:"compartments,omitempty"`
	Groups       []model.MaterialGroup `json:"groups"`
	Violations   []Violation           `json:"violations,omitempty"`
}

// Validate checks a configuration against its product type's rules.
func (e *Engine) Validate(cfg model.Configuration) (Result, error) {
	pt, ok := e.types[cfg.ProductType]
	if !ok {
		return Result{}, domainErrorf("validate", "unknown product type %q", cfg.ProductType)
	}
	return Validate(pt, e.styles, cfg), nil
}

// Compute derives the full layout for a validated configuration. It fails
// fast with a DomainError when the configuration references an unknown
// product type or style, or is internally inconsistent — validation is
// the caller's responsibility. Pure and deterministic apart from fresh
// component ids.
func (e *Engine) Compute(cfg model.Configuration) (LayoutResult, error) {
	pt, ok := e.types[cfg.ProductType]
	if !ok {
		return LayoutResult{}, domainErrorf("compute", "unknown product type %q", cfg.ProductType)
	}
	style, ok := e.styles.Get(cfg.Style)
	if !ok {
		return LayoutResult{}, domainErrorf("compute", "unknown style %q", cfg.Style)
	}

	var divs DividerLayout
	var rowPos []float64
	if pt.Kind == model.KindCabinet {
		divs = style.Layout(innerWidth(pt, cfg.Dimensions.Width), len(cfg.RowHeights), cfg.Density)
		rowPos = ResolvePositions(cfg.RowHeights)
	}

	components, err := Assemble(pt, cfg, divs, rowPos)
	if err != nil {
		return LayoutResult{}, err
	}

	if pt.Kind != model.KindCabinet {
		return LayoutResult{
			Components: components,
			Groups:     GroupByMaterial(components),
		}, nil
	}

	compartments, violations, err := BuildCompartments(pt, cfg.Dimensions, divs, rowPos, cfg.Compartments)
	if err != nil {
		return LayoutResult{}, err
	}
	if len(violations) > 0 {
		return LayoutResult{Violations: violations}, nil
	}

	components, compartments = attachFronts(pt, cfg, components, compartments)
	linkEnclosures(components, compartments)

	return LayoutResult{
		Components:   components,
		Compartments: compartments,
		Groups:       GroupByMaterial(components),
	}, nil
}

// attachFronts creates a door or drawer-front component for every cell
// that requests one, flush with the carcass front face, and records its
// id on the compartment.
func attachFronts(pt model.ProductType, cfg model.Configuration, components []model.Component, cells []Compartment) ([]model.Component, []Compartment) {
	for i := range cells {
		cell := &cells[i]
		var t model.ComponentType
		switch cell.Type {
		case model.CompartmentDoor:
			t = model.ComponentDoor
		case model.CompartmentDrawer:
			t = model.ComponentDrawer
		default:
			continue
		}

		center := cell.Bounds.Center()
		size := cell.Bounds.Size()
		front := model.NewComponent(t,
			fmt.Sprintf("%s %d.%d", t, cell.Row, cell.Col+1),
			model.Position3D{X: center.X, Y: center.Y, Z: cfg.Dimensions.Depth - pt.PanelThickness/2},
			model.Size3D{
				Width:  size.Width - doorClearance,
				Height: size.Height - doorClearance,
				Depth:  pt.PanelThickness,
			},
			cfg.AccentMaterial, cfg.AccentColor)
		components = append(components, front)
		cell.ComponentIDs = append(cell.ComponentIDs, front.ID)
	}
	return components, cells
}

// linkEnclosures records, on each compartment, the ids of the structural
// components bounding it: the dividers and panels at its sides and the
// shelves or panels above and below.
func linkEnclosures(components []model.Component, cells []Compartment) {
	for i := range cells {
		cell := &cells[i]
		for _, c := range components {
			switch c.Type {
			case model.ComponentDivider, model.ComponentShelf, model.ComponentPanel:
				if touches(c, cell.Bounds) {
					cell.ComponentIDs = append(cell.ComponentIDs, c.ID)
				}
			}
		}
	}
}

// touches reports whether a component's box overlaps or abuts the cell
// bounds.
func touches(c model.Component, b Bounds) bool {
	const eps = 1e-6
	min, max := c.Bounds()
	return min.X <= b.Max.X+eps && max.X >= b.Min.X-eps &&
		min.Y <= b.Max.Y+eps && max.Y >= b.Min.Y-eps &&
		min.Z <= b.Max.Z+eps && max.Z >= b.Min.Z-eps
}
