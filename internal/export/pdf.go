// Package export renders an assembled product to shop-ready files: a
// spec-sheet PDF, an XLSX cut list, a DXF front elevation, and a sheet of
// QR part labels.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/jmaessen/furnish/internal/layout"
	"github.com/jmaessen/furnish/internal/model"
	"github.com/jmaessen/furnish/internal/pricing"
)

// typeColor represents an RGB fill for one component type.
type typeColor struct {
	R, G, B int
}

// typeColors mirrors the scheme used in the UI elevation canvas.
var typeColors = map[model.ComponentType]typeColor{
	model.ComponentPanel:    {R: 210, G: 180, B: 140}, // tan
	model.ComponentShelf:    {R: 222, G: 196, B: 161},
	model.ComponentDivider:  {R: 189, G: 154, B: 122},
	model.ComponentDoor:     {R: 121, G: 85, B: 72}, // brown
	model.ComponentDrawer:   {R: 141, G: 110, B: 99},
	model.ComponentLeg:      {R: 66, G: 66, B: 66},
	model.ComponentTabletop: {R: 210, G: 180, B: 140},
	model.ComponentBrace:    {R: 97, G: 97, B: 97},
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF writes a spec-sheet PDF for an assembled product: a front
// elevation page followed by a component table with the price estimate.
func ExportPDF(path string, cfg model.Configuration, result layout.LayoutResult, est pricing.Estimate) error {
	if len(result.Components) == 0 {
		return fmt.Errorf("no components to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderElevationPage(pdf, cfg, result.Components)

	pdf.AddPage()
	renderTablePage(pdf, cfg, result, est)

	return pdf.OutputFileAndClose(path)
}

// elevationBounds returns the XY extent of the component list as seen from
// the front.
func elevationBounds(components []model.Component) (minX, minY, maxX, maxY float64) {
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

// renderElevationPage draws the front elevation scaled to fit the page.
func renderElevationPage(pdf *fpdf.Fpdf, cfg model.Configuration, components []model.Component) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s — %.0f x %.0f x %.0f cm (%s / %s)",
		cfg.ProductType, cfg.Dimensions.Width, cfg.Dimensions.Height, cfg.Dimensions.Depth,
		cfg.Material, cfg.Color)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	sub := fmt.Sprintf("Style: %s | Density: %s | Components: %d", cfg.Style, cfg.Density, len(components))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, sub, "", 0, "L", false, 0, "")

	minX, minY, maxX, maxY := elevationBounds(components)
	extW := maxX - minX
	extH := maxY - minY
	if extW <= 0 || extH <= 0 {
		return
	}

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 10

	scale := math.Min(drawWidth/extW, drawHeight/extH)
	canvasW := extW * scale
	canvasH := extH * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Back-to-front so nearer components paint over farther ones.
	ordered := make([]model.Component, len(components))
	copy(ordered, components)
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
		rw := (hi.X - lo.X) * scale
		rh := (hi.Y - lo.Y) * scale
		rx := offsetX + (lo.X-minX)*scale
		// Page Y grows downward; component Y grows upward.
		ry := offsetY + (maxY-hi.Y)*scale

		col, ok := typeColors[c.Type]
		if !ok {
			col = typeColor{R: 158, G: 158, B: 158}
		}
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(rx, ry, rw, rh, "FD")

		if rw > 15 && rh > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(rw, rh))
			pdf.SetTextColor(0, 0, 0)
			labelW := pdf.GetStringWidth(c.Label)
			if labelW < rw-2 {
				pdf.SetXY(rx+(rw-labelW)/2, ry+rh/2-2)
				pdf.CellFormat(labelW, 4, c.Label, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, extW, extH, offsetX, offsetY, canvasW, canvasH)
}

// drawDimensionAnnotations adds the overall width and height labels outside
// the elevation rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, width, height, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f cm", width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f cm", height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderTablePage draws the component table with the price summary.
func renderTablePage(pdf *fpdf.Fpdf, cfg model.Configuration, result layout.LayoutResult, est pricing.Estimate) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Component List", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	colWidths := []float64{22, 55, 28, 60, 30, 30}
	headers := []string{"ID", "Label", "Type", "Size (W x H x D cm)", "Material", "Color"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 8)
	for i, c := range result.Components {
		if y > pageHeight-marginBottom-40 {
			pdf.AddPage()
			y = marginTop
		}
		xPos = marginLeft
		rowData := []string{
			c.ID,
			c.Label,
			c.Type.String(),
			fmt.Sprintf("%.1f x %.1f x %.1f", c.Size.Width, c.Size.Height, c.Size.Depth),
			string(c.Material),
			string(c.Color),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 5, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 5
	}

	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Price Estimate", "", 0, "L", false, 0, "")
	y += 9

	pdf.SetFont("Helvetica", "", 9)
	for _, g := range est.Groups {
		pdf.SetXY(marginLeft+5, y)
		line := fmt.Sprintf("%s / %s: %.2f m²", g.Material, g.Color, g.AreaSqm)
		pdf.CellFormat(70, 5, line, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, fmt.Sprintf("%.2f", g.Cost), "", 0, "R", false, 0, "")
		y += 5
	}

	summary := []struct {
		label string
		value float64
	}{
		{"Material cost", est.MaterialCost},
		{"Surcharges", est.Surcharges},
		{"Total", est.Total},
	}
	for _, item := range summary {
		pdf.SetXY(marginLeft+5, y)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(70, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, fmt.Sprintf("%.2f", item.value), "", 0, "R", false, 0, "")
		y += 5
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by Furnish", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle
// dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
