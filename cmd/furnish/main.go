// Furnish — furniture layout engine CLI
//
// Validates a configuration, derives its component layout, and exports
// shop-ready files.
//
// Usage:
//
//	furnish -config sideboard.json -export-pdf sideboard.pdf
//	furnish -preset bookcase -export-xlsx cutlist.xlsx -export-dxf front.dxf
//	furnish -config sideboard.json -validate-only
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jmaessen/furnish/internal/export"
	"github.com/jmaessen/furnish/internal/layout"
	"github.com/jmaessen/furnish/internal/model"
	"github.com/jmaessen/furnish/internal/pricing"
	"github.com/jmaessen/furnish/internal/project"
)

func main() {
	var (
		configPath   = flag.String("config", "", "configuration JSON file to load")
		presetName   = flag.String("preset", "", "named preset to instantiate")
		validateOnly = flag.Bool("validate-only", false, "validate and exit without deriving a layout")
		pdfPath      = flag.String("export-pdf", "", "write a spec-sheet PDF to this path")
		dxfPath      = flag.String("export-dxf", "", "write a DXF front elevation to this path")
		xlsxPath     = flag.String("export-xlsx", "", "write an XLSX cut list to this path")
		labelsPath   = flag.String("export-labels", "", "write a QR part-label PDF to this path")
	)
	flag.Parse()

	cfg, err := resolveConfiguration(*configPath, *presetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	engine := layout.Default()

	res, err := engine.Validate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if !res.OK() {
		fmt.Fprintln(os.Stderr, "configuration rejected:")
		for _, v := range res.Violations {
			fmt.Fprintf(os.Stderr, "  %s\n", v.Error())
		}
		os.Exit(1)
	}
	if *validateOnly {
		fmt.Println("configuration is valid")
		return
	}

	result, err := engine.Compute(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(result.Violations) > 0 {
		fmt.Fprintln(os.Stderr, "configuration rejected:")
		for _, v := range result.Violations {
			fmt.Fprintf(os.Stderr, "  %s\n", v.Error())
		}
		os.Exit(1)
	}

	est := pricing.Calculate(result.Components, result.Groups, pricing.DefaultPrices())
	printSummary(cfg, result, est)

	exports := []struct {
		path string
		run  func(string) error
	}{
		{*pdfPath, func(p string) error { return export.ExportPDF(p, cfg, result, est) }},
		{*dxfPath, func(p string) error { return export.ExportDXF(p, result.Components) }},
		{*xlsxPath, func(p string) error { return export.ExportCutList(p, cfg, result, est) }},
		{*labelsPath, func(p string) error { return export.ExportLabels(p, result.Components) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.run(e.path); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", e.path)
	}
}

// resolveConfiguration loads the configuration from a file, a preset, or
// falls back to the default cabinet.
func resolveConfiguration(configPath, presetName string) (model.Configuration, error) {
	if configPath != "" && presetName != "" {
		return model.Configuration{}, fmt.Errorf("use either -config or -preset, not both")
	}

	if configPath != "" {
		return project.LoadConfiguration(configPath)
	}

	if presetName != "" {
		store, err := project.LoadPresets(project.DefaultPresetPath())
		if err != nil {
			return model.Configuration{}, fmt.Errorf("failed to load presets: %w", err)
		}
		preset, ok := project.FindPreset(store, presetName)
		if !ok {
			return model.Configuration{}, fmt.Errorf("unknown preset %q", presetName)
		}
		return preset.Config, nil
	}

	return model.DefaultConfiguration(model.KindCabinet), nil
}

func printSummary(cfg model.Configuration, result layout.LayoutResult, est pricing.Estimate) {
	fmt.Printf("%s %.0f x %.0f x %.0f cm, style %s, density %s\n",
		cfg.ProductType, cfg.Dimensions.Width, cfg.Dimensions.Height, cfg.Dimensions.Depth,
		cfg.Style, cfg.Density)

	counts := make(map[model.ComponentType]int)
	for _, c := range result.Components {
		counts[c.Type]++
	}
	fmt.Printf("components: %d total\n", len(result.Components))
	for t := model.ComponentDivider; t <= model.ComponentAccessory; t++ {
		if counts[t] > 0 {
			fmt.Printf("  %-10s %d\n", t.String(), counts[t])
		}
	}

	if len(result.Compartments) > 0 {
		fmt.Printf("compartments: %d\n", len(result.Compartments))
	}

	for _, g := range result.Groups {
		fmt.Printf("group %s/%s: %d components\n", g.Material, g.Color, len(g.ComponentIDs))
	}

	fmt.Printf("estimate: %.2f (material %.2f + surcharges %.2f, %.0f%% waste)\n",
		est.Total, est.MaterialCost, est.Surcharges, est.WastePercent)
}
