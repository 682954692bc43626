package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmaessen/furnish/internal/model"
)

func TestExportDXF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "elevation.dxf")

	_, result, _ := buildTestLayout(t)

	if err := ExportDXF(path, result.Components); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "LWPOLYLINE") {
		t.Error("DXF output contains no LWPOLYLINE entities")
	}
	for _, layer := range []string{"Panel", "Shelf", "Divider"} {
		if !strings.Contains(content, layer) {
			t.Errorf("DXF output missing layer %q", layer)
		}
	}
}

func TestExportDXF_NoComponents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dxf")

	if err := ExportDXF(path, nil); err == nil {
		t.Fatal("expected error for empty component list, got nil")
	}
}

func TestExportDXF_SkipsInvisible(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hidden.dxf")

	visible := model.NewComponent(model.ComponentShelf, "Shelf 1",
		model.Position3D{X: 50, Y: 40, Z: 17}, model.Size3D{Width: 96, Height: 2, Depth: 34},
		model.MaterialWood, model.ColorOak)
	hidden := model.NewComponent(model.ComponentLeg, "Hidden Leg",
		model.Position3D{}, model.Size3D{Width: 4, Height: 10, Depth: 4},
		model.MaterialMetal, model.ColorBlack)
	hidden.Visible = false

	if err := ExportDXF(path, []model.Component{visible, hidden}); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	if strings.Contains(string(data), "Leg") {
		t.Error("invisible component produced a layer")
	}
}
