package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmaessen/furnish/internal/layout"
	"github.com/jmaessen/furnish/internal/model"
	"github.com/jmaessen/furnish/internal/pricing"
)

// buildTestLayout derives a realistic cabinet layout for export testing.
func buildTestLayout(t *testing.T) (model.Configuration, layout.LayoutResult, pricing.Estimate) {
	t.Helper()

	engine := layout.Default()
	cfg := model.DefaultConfiguration(model.KindCabinet)
	cfg.Compartments.Set(0, 0, model.CompartmentDoor)
	cfg.Compartments.Set(1, 1, model.CompartmentDrawer)

	result, err := engine.Compute(cfg)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if len(result.Violations) > 0 {
		t.Fatalf("unexpected violations: %v", result.Violations)
	}

	est := pricing.Calculate(result.Components, result.Groups, pricing.DefaultPrices())
	return cfg, result, est
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec_sheet.pdf")

	cfg, result, est := buildTestLayout(t)

	if err := ExportPDF(path, cfg, result, est); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with 2 pages (elevation + table) should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportPDF(path, model.Configuration{}, layout.LayoutResult{}, pricing.Estimate{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportPDF_Table(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.pdf")

	engine := layout.Default()
	cfg := model.DefaultConfiguration(model.KindTable)
	result, err := engine.Compute(cfg)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	est := pricing.Calculate(result.Components, result.Groups, pricing.DefaultPrices())

	if err := ExportPDF(path, cfg, result, est); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("PDF file missing or empty: %v", err)
	}
}

func TestElevationBounds(t *testing.T) {
	_, result, _ := buildTestLayout(t)

	minX, minY, maxX, maxY := elevationBounds(result.Components)
	if minX > 0 || minY > 0 {
		t.Errorf("cabinet elevation should start at origin, got min (%.2f, %.2f)", minX, minY)
	}
	if maxX <= minX || maxY <= minY {
		t.Errorf("degenerate elevation bounds: (%.2f, %.2f) - (%.2f, %.2f)", minX, minY, maxX, maxY)
	}
}
