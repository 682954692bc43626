package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/jmaessen/furnish/internal/model"
)

// LabelInfo holds the data encoded into each part label's QR code.
type LabelInfo struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Type     string         `json:"type"`
	Width    float64        `json:"width_cm"`
	Height   float64        `json:"height_cm"`
	Depth    float64        `json:"depth_cm"`
	Material model.Material `json:"material"`
	Color    model.Color    `json:"color"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each label cell is approximately 66.7mm x 25.4mm on US
// Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per structural
// component. Each label carries the component name, cut dimensions, and a
// QR code encoding the component metadata as JSON. Labels are laid out on
// a standard label sheet format (Avery 5160 / 3 columns x 10 rows on US
// Letter).
func ExportLabels(path string, components []model.Component) error {
	labels := CollectLabelInfos(components)
	if len(labels) == 0 {
		return fmt.Errorf("no components to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Label, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide.
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", info.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	partLabel := info.Label
	if pdf.GetStringWidth(partLabel) > textW {
		for len(partLabel) > 0 && pdf.GetStringWidth(partLabel+"...") > textW {
			partLabel = partLabel[:len(partLabel)-1]
		}
		partLabel += "..."
	}
	pdf.CellFormat(textW, 4.5, partLabel, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.1f x %.1f x %.1f cm", info.Width, info.Height, info.Depth)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	detail := fmt.Sprintf("%s | %s / %s", info.Type, info.Material, info.Color)
	pdf.CellFormat(textW, 3, detail, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.CellFormat(textW, 3, info.ID, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label data from a component list for use in
// testing or alternative export formats. Accessories are skipped; every
// structural component gets a label.
func CollectLabelInfos(components []model.Component) []LabelInfo {
	var labels []LabelInfo
	for _, c := range components {
		if c.Type == model.ComponentAccessory {
			continue
		}
		labels = append(labels, LabelInfo{
			ID:       c.ID,
			Label:    c.Label,
			Type:     c.Type.String(),
			Width:    c.Size.Width,
			Height:   c.Size.Height,
			Depth:    c.Size.Depth,
			Material: c.Material,
			Color:    c.Color,
		})
	}
	return labels
}
