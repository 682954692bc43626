// Package ui holds the Fyne widgets for the preview window.
package ui

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/jmaessen/furnish/internal/layout"
	"github.com/jmaessen/furnish/internal/model"
	"github.com/jmaessen/furnish/internal/pricing"
)

// Component colors by type, front elevation fills.
var typeColors = map[model.ComponentType]color.NRGBA{
	model.ComponentPanel:    {R: 210, G: 180, B: 140, A: 255}, // wood tan
	model.ComponentShelf:    {R: 222, G: 196, B: 161, A: 255},
	model.ComponentDivider:  {R: 189, G: 154, B: 122, A: 255},
	model.ComponentDoor:     {R: 121, G: 85, B: 72, A: 230},
	model.ComponentDrawer:   {R: 141, G: 110, B: 99, A: 230},
	model.ComponentLeg:      {R: 66, G: 66, B: 66, A: 255},
	model.ComponentTabletop: {R: 210, G: 180, B: 140, A: 255},
	model.ComponentBrace:    {R: 97, G: 97, B: 97, A: 255},
}

// ElevationCanvas renders the front elevation of an assembled product.
type ElevationCanvas struct {
	widget.BaseWidget
	components []model.Component
	maxWidth   float32
	maxHeight  float32
}

func NewElevationCanvas(components []model.Component, maxW, maxH float32) *ElevationCanvas {
	ec := &ElevationCanvas{
		components: components,
		maxWidth:   maxW,
		maxHeight:  maxH,
	}
	ec.ExtendBaseWidget(ec)
	return ec
}

// SetComponents swaps the rendered component list and refreshes.
func (ec *ElevationCanvas) SetComponents(components []model.Component) {
	ec.components = components
	ec.Refresh()
}

func (ec *ElevationCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newElevationRenderer(ec)
}

type elevationRenderer struct {
	ec      *ElevationCanvas
	objects []fyne.CanvasObject
}

func newElevationRenderer(ec *ElevationCanvas) *elevationRenderer {
	r := &elevationRenderer{ec: ec}
	r.rebuild()
	return r
}

// extent returns the XY bounding box of the component list as seen from
// the front.
func extent(components []model.Component) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range components {
		lo, hi := c.Bounds()
		minX = math.Min(minX, lo.X)
		minY = math.Min(minY, lo.Y)
		maxX = math.Max(maxX, hi.X)
		maxY = math.Max(maxY, hi.Y)
	}
	return minX, minY, maxX, maxY
}

func (r *elevationRenderer) scale() (s float32, minX, maxY float64) {
	minX, minY, maxX, maxY := extent(r.ec.components)
	w := float32(maxX - minX)
	h := float32(maxY - minY)
	if w <= 0 || h <= 0 {
		return 1, minX, maxY
	}
	s = r.ec.maxWidth / w
	if sy := r.ec.maxHeight / h; sy < s {
		s = sy
	}
	return s, minX, maxY
}

func (r *elevationRenderer) rebuild() {
	r.objects = nil
	if len(r.ec.components) == 0 {
		return
	}

	s, minX, maxY := r.scale()

	// Back-to-front so doors and drawer fronts paint over the carcass.
	ordered := make([]model.Component, len(r.ec.components))
	copy(ordered, r.ec.components)
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if ordered[j].Position.Z < ordered[i].Position.Z {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
	}

	for _, c := range ordered {
		if !c.Visible {
			continue
		}
		lo, hi := c.Bounds()
		rw := float32(hi.X-lo.X) * s
		rh := float32(hi.Y-lo.Y) * s
		rx := float32(lo.X-minX) * s
		// Screen Y grows downward; component Y grows upward.
		ry := float32(maxY-hi.Y) * s

		fill, ok := typeColors[c.Type]
		if !ok {
			fill = color.NRGBA{R: 158, G: 158, B: 158, A: 255}
		}

		rect := canvas.NewRectangle(fill)
		rect.Resize(fyne.NewSize(rw, rh))
		rect.Move(fyne.NewPos(rx, ry))
		r.objects = append(r.objects, rect)

		border := canvas.NewRectangle(color.Transparent)
		border.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		border.StrokeWidth = 1
		border.Resize(fyne.NewSize(rw, rh))
		border.Move(fyne.NewPos(rx, ry))
		r.objects = append(r.objects, border)

		if rw > 40 && rh > 16 {
			label := canvas.NewText(c.Label, color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(rx+3, ry+2))
			r.objects = append(r.objects, label)
		}
	}
}

func (r *elevationRenderer) Layout(size fyne.Size)        {}
func (r *elevationRenderer) Refresh()                     { r.rebuild() }
func (r *elevationRenderer) Destroy()                     {}
func (r *elevationRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *elevationRenderer) MinSize() fyne.Size {
	if len(r.ec.components) == 0 {
		return fyne.NewSize(r.ec.maxWidth, r.ec.maxHeight)
	}
	s, _, _ := r.scale()
	minX, minY, maxX, maxY := extent(r.ec.components)
	return fyne.NewSize(float32(maxX-minX)*s, float32(maxY-minY)*s)
}

// RenderLayout creates a scrollable view of a derived layout: elevation
// canvas, material groups, violations, and the price estimate.
func RenderLayout(cfg model.Configuration, result layout.LayoutResult, est pricing.Estimate) fyne.CanvasObject {
	if len(result.Violations) > 0 {
		var items []fyne.CanvasObject
		header := widget.NewLabel("Configuration rejected:")
		header.Importance = widget.DangerImportance
		items = append(items, header)
		for _, v := range result.Violations {
			items = append(items, widget.NewLabel("  "+v.Error()))
		}
		return container.NewVScroll(container.NewVBox(items...))
	}
	if len(result.Components) == 0 {
		return widget.NewLabel("No layout yet. Pick a product and dimensions.")
	}

	header := widget.NewLabel(fmt.Sprintf(
		"%s %.0f × %.0f × %.0f cm — %d components, %d compartments",
		cfg.ProductType, cfg.Dimensions.Width, cfg.Dimensions.Height, cfg.Dimensions.Depth,
		len(result.Components), len(result.Compartments),
	))
	header.TextStyle = fyne.TextStyle{Bold: true}

	elevation := NewElevationCanvas(result.Components, 600, 500)

	items := []fyne.CanvasObject{header, elevation, widget.NewSeparator()}

	for _, g := range result.Groups {
		items = append(items, widget.NewLabel(fmt.Sprintf(
			"  %s / %s: %d components", g.Material, g.Color, len(g.ComponentIDs),
		)))
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Estimated cost: %.2f (material %.2f + surcharges %.2f)",
		est.Total, est.MaterialCost, est.Surcharges,
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, widget.NewSeparator(), summary)

	return container.NewVScroll(container.NewVBox(items...))
}
