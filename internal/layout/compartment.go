package layout

import (
	"fmt"

	"github.com/jmaessen/furnish/internal/model"
)

// Bounds is an axis-aligned box in product space.
type Bounds struct {
	Min model.Position3D `json:"min"`
	Max model.Position3D `json:"max"`
}

// Center returns the box center.
func (b Bounds) Center() model.Position3D {
	return model.Position3D{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Size returns the box extent.
func (b Bounds) Size() model.Size3D {
	return model.Size3D{
		Width:  b.Max.X - b.Min.X,
		Height: b.Max.Y - b.Min.Y,
		Depth:  b.Max.Z - b.Min.Z,
	}
}

// Compartment is one storage cell implied by the divider/shelf grid. Its
// bounds are always derived from the enclosing divider and shelf
// positions, never specified independently. Compartments are destroyed
// and rebuilt whenever those positions change.
type Compartment struct {
	Row  int                   `json:"row"`
	Col  int                   `json:"col"`
	Type model.CompartmentType `json:"type"`

	Bounds Bounds `json:"bounds"`

	// ComponentIDs references the structural components enclosing the
	// cell plus any front (door or drawer) the pipeline attaches to it.
	ComponentIDs []string `json:"component_ids,omitempty"`
}

// BuildCompartments derives one compartment per (row, column) cell of the
// divider/shelf grid. Column counts may differ between rows when the
// style defines non-uniform columns (mosaic, pattern). A cell requested
// as a drawer whose resolved depth is below the product's minimum drawer
// depth yields a violation naming that cell — it is never silently
// downgraded to an open compartment. Pure.
func BuildCompartments(pt model.ProductType, dims model.Dimensions, divs DividerLayout, rowPos []float64, grid model.TypeGrid) ([]Compartment, []Violation, error) {
	if len(rowPos) != len(divs.Rows)+1 {
		return nil, nil, domainErrorf("compartments", "row position count %d does not match %d layout rows",
			len(rowPos), len(divs.Rows))
	}

	th := pt.PanelThickness
	left, right := th, dims.Width-th

	var cells []Compartment
	var violations []Violation

	for r, row := range divs.Rows {
		// Cell X edges: inner left face, each divider, inner right face.
		edges := make([]float64, 0, len(row)+2)
		edges = append(edges, left)
		for _, x := range row {
			edges = append(edges, th+x)
		}
		edges = append(edges, right)

		for c := 0; c < len(edges)-1; c++ {
			cellType := grid.At(r, c)
			depth := dims.Depth - th // usable depth behind the front face
			if cellType == model.CompartmentDrawer && depth < pt.DrawerMinDepth {
				violations = append(violations, violationf(
					fmt.Sprintf("compartments[%d][%d]", r, c),
					"drawer requires more depth",
					fmt.Sprintf(">= %g cm", pt.DrawerMinDepth),
					fmt.Sprintf("%g cm", depth)))
				continue
			}
			cells = append(cells, Compartment{
				Row:  r,
				Col:  c,
				Type: cellType,
				Bounds: Bounds{
					Min: model.Position3D{X: edges[c], Y: rowPos[r], Z: 0},
					Max: model.Position3D{X: edges[c+1], Y: rowPos[r+1], Z: dims.Depth},
				},
			})
		}
	}

	return cells, violations, nil
}
