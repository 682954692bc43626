package export

import (
	"fmt"

	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"

	"github.com/jmaessen/furnish/internal/model"
)

// layerColors maps each component type to its DXF layer color.
var layerColors = map[model.ComponentType]dxfcolor.ColorNumber{
	model.ComponentPanel:    dxfcolor.White,
	model.ComponentShelf:    dxfcolor.Cyan,
	model.ComponentDivider:  dxfcolor.Green,
	model.ComponentDoor:     dxfcolor.Magenta,
	model.ComponentDrawer:   dxfcolor.Yellow,
	model.ComponentLeg:      dxfcolor.Red,
	model.ComponentTabletop: dxfcolor.White,
	model.ComponentBrace:    dxfcolor.Blue,
}

// ExportDXF writes the front elevation of an assembled product as a DXF
// drawing: one closed rectangle per visible component, on a layer named
// after the component type. Units are centimeters, matching the model.
func ExportDXF(path string, components []model.Component) error {
	if len(components) == 0 {
		return fmt.Errorf("no components to export")
	}

	d := dxf.NewDrawing()

	added := make(map[string]bool)
	for _, c := range components {
		if !c.Visible {
			continue
		}

		layer := c.Type.String()
		if !added[layer] {
			col, ok := layerColors[c.Type]
			if !ok {
				col = dxfcolor.White
			}
			if _, err := d.AddLayer(layer, col, dxf.DefaultLineType, true); err != nil {
				return fmt.Errorf("failed to add layer %q: %w", layer, err)
			}
			added[layer] = true
		}
		if err := d.ChangeLayer(layer); err != nil {
			return fmt.Errorf("failed to select layer %q: %w", layer, err)
		}

		lo, hi := c.Bounds()
		if _, err := d.LwPolyline(true,
			[]float64{lo.X, lo.Y, 0},
			[]float64{hi.X, lo.Y, 0},
			[]float64{hi.X, hi.Y, 0},
			[]float64{lo.X, hi.Y, 0},
		); err != nil {
			return fmt.Errorf("failed to draw %q: %w", c.Label, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}
