package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jmaessen/furnish/internal/layout"
	"github.com/jmaessen/furnish/internal/model"
	"github.com/jmaessen/furnish/internal/pricing"
)

// cutListSheet and summarySheet name the two worksheets in the workbook.
const (
	cutListSheet = "Cut List"
	summarySheet = "Summary"
)

// isCutPart reports whether a component type is cut from sheet material and
// so belongs on the cut list. Legs and braces come from dimensional stock
// and are listed on the summary sheet instead.
func isCutPart(t model.ComponentType) bool {
	switch t {
	case model.ComponentPanel, model.ComponentShelf, model.ComponentDivider,
		model.ComponentDoor, model.ComponentDrawer, model.ComponentTabletop:
		return true
	}
	return false
}

// ExportCutList writes an XLSX workbook: one row per cut panel on the first
// sheet, material totals and the price estimate on the second.
func ExportCutList(path string, cfg model.Configuration, result layout.LayoutResult, est pricing.Estimate) error {
	if len(result.Components) == 0 {
		return fmt.Errorf("no components to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", cutListSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := writeCutRows(f, result.Components); err != nil {
		return err
	}
	if err := writeSummarySheet(f, cfg, result, est); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeCutRows(f *excelize.File, components []model.Component) error {
	headers := []interface{}{"ID", "Label", "Type", "Width (cm)", "Height (cm)", "Thickness (cm)", "Material", "Color"}
	if err := setRow(f, cutListSheet, 1, headers); err != nil {
		return err
	}

	row := 2
	for _, c := range components {
		if !isCutPart(c.Type) {
			continue
		}
		// Cut dimensions are the two largest extents; the smallest is the
		// board thickness.
		w, h, th := cutDimensions(c.Size)
		values := []interface{}{
			c.ID, c.Label, c.Type.String(), w, h, th,
			string(c.Material), string(c.Color),
		}
		if err := setRow(f, cutListSheet, row, values); err != nil {
			return err
		}
		row++
	}

	widths := []float64{12, 22, 12, 12, 12, 14, 12, 12}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(cutListSheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, cfg model.Configuration, result layout.LayoutResult, est pricing.Estimate) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Product", cfg.ProductType},
		{"Dimensions (W x H x D cm)", fmt.Sprintf("%.0f x %.0f x %.0f",
			cfg.Dimensions.Width, cfg.Dimensions.Height, cfg.Dimensions.Depth)},
		{"Style", cfg.Style},
		{"Density", cfg.Density.String()},
		{"Components", len(result.Components)},
		{"Compartments", len(result.Compartments)},
		{},
		{"Material", "Color", "Area (m²)", "Cost"},
	}
	for i, r := range rows {
		if err := setRow(f, summarySheet, i+1, r); err != nil {
			return err
		}
	}

	row := len(rows) + 1
	for _, g := range est.Groups {
		values := []interface{}{string(g.Material), string(g.Color), g.AreaSqm, g.Cost}
		if err := setRow(f, summarySheet, row, values); err != nil {
			return err
		}
		row++
	}

	totals := [][]interface{}{
		{"Material cost", "", "", est.MaterialCost},
		{"Surcharges", "", "", est.Surcharges},
		{"Total", "", "", est.Total},
	}
	for _, r := range totals {
		if err := setRow(f, summarySheet, row, r); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 26); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "D", 14)
}

// setRow writes one row of cells starting at column A.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// cutDimensions returns the two largest extents of a box as the cut width
// and height, and the smallest as the board thickness.
func cutDimensions(s model.Size3D) (w, h, th float64) {
	dims := []float64{s.Width, s.Height, s.Depth}
	for i := 0; i < len(dims); i++ {
		for j := i + 1; j < len(dims); j++ {
			if dims[j] > dims[i] {
				dims[i], dims[j] = dims[j], dims[i]
			}
		}
	}
	return dims[0], dims[1], dims[2]
}
