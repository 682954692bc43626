package layout

import (
	"fmt"
	"math"

	"github.com/jmaessen/furnish/internal/model"
)

// Assemble builds the full structural component list for a validated
// configuration. It is a pure function of its inputs: positions and sizes
// are bit-for-bit reproducible across calls (only component ids are
// freshly generated), and every component lies inside the bounding box
// implied by the overall dimensions — [0,W]x[0,H]x[0,D] for cabinets,
// [-W/2,W/2]x[-H,0]x[-D/2,D/2] for tables and consoles.
//
// Validation is the caller's responsibility: an out-of-range or
// internally inconsistent configuration fails fast with a DomainError
// rather than being silently clamped.
func Assemble(pt model.ProductType, cfg model.Configuration, divs DividerLayout, rowPos []float64) ([]model.Component, error) {
	if err := checkPreconditions(pt, cfg, divs, rowPos); err != nil {
		return nil, err
	}

	switch pt.Kind {
	case model.KindCabinet:
		return assembleCabinet(pt, cfg, divs, rowPos), nil
	case model.KindTable:
		return assembleTable(pt, cfg), nil
	case model.KindConsole:
		return assembleConsole(pt, cfg), nil
	default:
		return nil, domainErrorf("assemble", "unsupported product kind %v", pt.Kind)
	}
}

func checkPreconditions(pt model.ProductType, cfg model.Configuration, divs DividerLayout, rowPos []float64) error {
	dims := cfg.Dimensions
	if !pt.Width.Contains(dims.Width) || !pt.Height.Contains(dims.Height) || !pt.Depth.Contains(dims.Depth) {
		return domainErrorf("assemble", "dimensions %gx%gx%g outside %s constraints; configuration was not validated",
			dims.Width, dims.Height, dims.Depth, pt.Name)
	}
	if pt.Kind != model.KindCabinet {
		return nil
	}
	if len(rowPos) != len(cfg.RowHeights)+1 {
		return domainErrorf("assemble", "row position count %d does not match %d rows",
			len(rowPos), len(cfg.RowHeights))
	}
	for i := 1; i < len(rowPos); i++ {
		if rowPos[i] <= rowPos[i-1] {
			return domainErrorf("assemble", "row positions are not strictly increasing at index %d", i)
		}
	}
	if len(divs.Rows) != len(cfg.RowHeights) {
		return domainErrorf("assemble", "divider layout has %d rows, configuration has %d",
			len(divs.Rows), len(cfg.RowHeights))
	}
	return nil
}

func assembleCabinet(pt model.ProductType, cfg model.Configuration, divs DividerLayout, rowPos []float64) []model.Component {
	w, h, d := cfg.Dimensions.Width, cfg.Dimensions.Height, cfg.Dimensions.Depth
	th := pt.PanelThickness
	inner := innerWidth(pt, w)
	mat, col := cfg.Material, cfg.Color

	var out []model.Component
	add := func(t model.ComponentType, label string, pos model.Position3D, size model.Size3D, m model.Material, c model.Color) {
		out = append(out, model.NewComponent(t, label, pos, size, m, c))
	}

	// Carcass frame.
	add(model.ComponentPanel, "Left Side",
		model.Position3D{X: th / 2, Y: h / 2, Z: d / 2}, model.Size3D{Width: th, Height: h, Depth: d}, mat, col)
	add(model.ComponentPanel, "Right Side",
		model.Position3D{X: w - th/2, Y: h / 2, Z: d / 2}, model.Size3D{Width: th, Height: h, Depth: d}, mat, col)
	add(model.ComponentPanel, "Bottom",
		model.Position3D{X: w / 2, Y: th / 2, Z: d / 2}, model.Size3D{Width: inner, Height: th, Depth: d}, mat, col)
	add(model.ComponentPanel, "Top",
		model.Position3D{X: w / 2, Y: h - th/2, Z: d / 2}, model.Size3D{Width: inner, Height: th, Depth: d}, mat, col)
	if cfg.BackPanel {
		add(model.ComponentPanel, "Back",
			model.Position3D{X: w / 2, Y: h / 2, Z: th / 2},
			model.Size3D{Width: inner, Height: h - 2*th, Depth: th}, mat, col)
	}

	// One shelf per interior row boundary. With a staggered style the
	// shelves of alternate boundaries shift up by a fraction of the row
	// height above them.
	for i := 1; i < len(rowPos)-1; i++ {
		y := rowPos[i]
		if divs.StaggerFraction > 0 && i%2 == 1 {
			y += divs.StaggerFraction * (rowPos[i+1] - rowPos[i])
		}
		add(model.ComponentShelf, fmt.Sprintf("Shelf %d", i),
			model.Position3D{X: w / 2, Y: y, Z: d / 2},
			model.Size3D{Width: inner, Height: th, Depth: d}, mat, col)
	}

	// Dividers, per row. Layout positions are measured from the inner
	// left face, so they shift right by one panel thickness.
	for r := range divs.Rows {
		rowBottom, rowTop := rowPos[r], rowPos[r+1]
		for c, x := range divs.Rows[r] {
			add(model.ComponentDivider, fmt.Sprintf("Divider %d.%d", r, c+1),
				model.Position3D{X: th + x, Y: (rowBottom + rowTop) / 2, Z: d / 2},
				model.Size3D{Width: th, Height: rowTop - rowBottom, Depth: d}, mat, col)
		}
	}

	// Support feet: corners plus under every bottom-row divider, required
	// once any open span exceeds the support limit.
	if divs.WidestGap(inner) > pt.SupportSpan {
		ft := pt.LegThickness
		footSize := model.Size3D{Width: ft, Height: ft, Depth: d}
		add(model.ComponentLeg, "Foot L",
			model.Position3D{X: th + ft/2, Y: ft / 2, Z: d / 2}, footSize, cfg.AccentMaterial, cfg.AccentColor)
		add(model.ComponentLeg, "Foot R",
			model.Position3D{X: w - th - ft/2, Y: ft / 2, Z: d / 2}, footSize, cfg.AccentMaterial, cfg.AccentColor)
		for c, x := range divs.Row(0) {
			add(model.ComponentLeg, fmt.Sprintf("Foot %d", c+1),
				model.Position3D{X: th + x, Y: ft / 2, Z: d / 2}, footSize, cfg.AccentMaterial, cfg.AccentColor)
		}
	}

	return out
}

func assembleTable(pt model.ProductType, cfg model.Configuration) []model.Component {
	w, h, d := cfg.Dimensions.Width, cfg.Dimensions.Height, cfg.Dimensions.Depth
	tth := pt.PanelThickness

	if cfg.TopShape == model.ShapeRound {
		d = w // a round top is sized by its diameter
	}

	var out []model.Component
	out = append(out, model.NewComponent(model.ComponentTabletop, "Top",
		model.Position3D{X: 0, Y: -tth / 2, Z: 0},
		model.Size3D{Width: w, Height: tth, Depth: d}, cfg.Material, cfg.Color))

	out = append(out, tableLegs(pt, cfg, w, h, d)...)
	out = append(out, tableBraces(pt, cfg, w, h, d)...)
	return out
}

// tableLegs positions legs by a shape-dependent rule: four corner legs for
// rectangular and oval tops (inset per the leg-position setting), a single
// center pedestal for round tops with pedestal style, and four legs spaced
// at 45-degree diagonals around the radius for other round tops.
func tableLegs(pt model.ProductType, cfg model.Configuration, w, h, d float64) []model.Component {
	lt := pt.LegThickness
	inset := cfg.LegPosition.Inset()
	legSize := model.Size3D{Width: lt, Height: h - pt.PanelThickness, Depth: lt}
	mat, col := cfg.AccentMaterial, cfg.AccentColor

	if cfg.TopShape == model.ShapeRound {
		if cfg.LegStyle == model.LegPedestal {
			return []model.Component{model.NewComponent(model.ComponentLeg, "Pedestal",
				model.Position3D{X: 0, Y: -h / 2, Z: 0},
				model.Size3D{Width: 2 * lt, Height: h - pt.PanelThickness, Depth: 2 * lt}, mat, col)}
		}
		radius := w/2 - inset
		legs := make([]model.Component, 0, 4)
		for i, deg := range []float64{45, 135, 225, 315} {
			rad := deg * math.Pi / 180
			legs = append(legs, model.NewComponent(model.ComponentLeg, fmt.Sprintf("Leg %d", i+1),
				model.Position3D{X: radius * math.Cos(rad), Y: -h / 2, Z: radius * math.Sin(rad)},
				legSize, mat, col))
		}
		return legs
	}

	x := w/2 - inset
	z := d/2 - inset
	corners := []struct {
		label string
		x, z  float64
	}{
		{"Leg FL", -x, z},
		{"Leg FR", x, z},
		{"Leg BL", -x, -z},
		{"Leg BR", x, -z},
	}
	legs := make([]model.Component, 0, 4)
	for _, c := range corners {
		legs = append(legs, model.NewComponent(model.ComponentLeg, c.label,
			model.Position3D{X: c.x, Y: -h / 2, Z: c.z}, legSize, mat, col))
	}
	return legs
}

// tableBraces adds stretchers when a span exceeds the product's support
// limit.
func tableBraces(pt model.ProductType, cfg model.Configuration, w, h, d float64) []model.Component {
	if cfg.TopShape == model.ShapeRound && cfg.LegStyle == model.LegPedestal {
		return nil
	}
	lt := pt.LegThickness
	inset := cfg.LegPosition.Inset()
	braceY := -(h - 10) // 10 cm above the floor
	mat, col := cfg.AccentMaterial, cfg.AccentColor

	var braces []model.Component
	if w > pt.SupportSpan {
		braces = append(braces, model.NewComponent(model.ComponentBrace, "Stretcher X",
			model.Position3D{X: 0, Y: braceY, Z: 0},
			model.Size3D{Width: w - 2*inset - lt, Height: lt, Depth: lt}, mat, col))
	}
	if d > pt.SupportSpan {
		braces = append(braces, model.NewComponent(model.ComponentBrace, "Stretcher Z",
			model.Position3D{X: 0, Y: braceY, Z: 0},
			model.Size3D{Width: lt, Height: lt, Depth: d - 2*inset - lt}, mat, col))
	}
	return braces
}

// assembleConsole emits a top, table-style corner legs, and shelves
// evenly distributed over the height. The shelf count follows the
// density selection: one at low, two at medium, three at high.
func assembleConsole(pt model.ProductType, cfg model.Configuration) []model.Component {
	w, h, d := cfg.Dimensions.Width, cfg.Dimensions.Height, cfg.Dimensions.Depth
	th := pt.PanelThickness
	inset := cfg.LegPosition.Inset()

	var out []model.Component
	out = append(out, model.NewComponent(model.ComponentTabletop, "Top",
		model.Position3D{X: 0, Y: -th / 2, Z: 0},
		model.Size3D{Width: w, Height: th, Depth: d}, cfg.Material, cfg.Color))
	out = append(out, tableLegs(pt, cfg, w, h, d)...)

	shelves := 1 + int(cfg.Density)
	for i := 1; i <= shelves; i++ {
		y := -h * float64(i) / float64(shelves+1)
		out = append(out, model.NewComponent(model.ComponentShelf, fmt.Sprintf("Shelf %d", i),
			model.Position3D{X: 0, Y: y, Z: 0},
			model.Size3D{Width: w - 2*inset - pt.LegThickness, Height: th, Depth: d}, cfg.Material, cfg.Color))
	}
	out = append(out, tableBraces(pt, cfg, w, h, d)...)
	return out
}
