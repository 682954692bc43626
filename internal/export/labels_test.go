package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmaessen/furnish/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	_, result, _ := buildTestLayout(t)

	if err := ExportLabels(path, result.Components); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("label PDF was not created: %v", err)
	}
	if info.Size() < 1000 {
		t.Errorf("label PDF seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_NoComponents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	if err := ExportLabels(path, nil); err == nil {
		t.Fatal("expected error for empty component list, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	_, result, _ := buildTestLayout(t)

	labels := CollectLabelInfos(result.Components)
	if len(labels) != len(result.Components) {
		t.Fatalf("expected %d labels, got %d", len(result.Components), len(labels))
	}

	seen := make(map[string]bool)
	for _, l := range labels {
		if l.ID == "" || l.Label == "" || l.Type == "" {
			t.Errorf("incomplete label: %+v", l)
		}
		if seen[l.ID] {
			t.Errorf("duplicate label id %q", l.ID)
		}
		seen[l.ID] = true
	}
}

func TestCollectLabelInfos_SkipsAccessories(t *testing.T) {
	acc := model.NewComponent(model.ComponentAccessory, "Hook",
		model.Position3D{}, model.Size3D{Width: 2, Height: 5, Depth: 2},
		model.MaterialMetal, model.ColorBlack)
	shelf := model.NewComponent(model.ComponentShelf, "Shelf 1",
		model.Position3D{}, model.Size3D{Width: 80, Height: 2, Depth: 30},
		model.MaterialWood, model.ColorOak)

	labels := CollectLabelInfos([]model.Component{acc, shelf})
	if len(labels) != 1 {
		t.Fatalf("expected 1 label, got %d", len(labels))
	}
	if labels[0].Label != "Shelf 1" {
		t.Errorf("wrong component labeled: %q", labels[0].Label)
	}
}

func TestExportLabels_ManyPages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many.pdf")

	// More than one page worth of labels.
	var components []model.Component
	for i := 0; i < labelsPerPage+5; i++ {
		components = append(components, model.NewComponent(model.ComponentShelf, "Shelf",
			model.Position3D{}, model.Size3D{Width: 80, Height: 2, Depth: 30},
			model.MaterialWood, model.ColorOak))
	}

	if err := ExportLabels(path, components); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("label PDF missing or empty: %v", err)
	}
}
