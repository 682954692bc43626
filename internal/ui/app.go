package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/jmaessen/furnish/internal/layout"
	"github.com/jmaessen/furnish/internal/model"
	"github.com/jmaessen/furnish/internal/pricing"
	"github.com/jmaessen/furnish/internal/project"
)

// App holds the preview window state and UI references.
type App struct {
	window    fyne.Window
	engine    *layout.Engine
	cfg       model.Configuration
	appConfig project.AppConfig

	productSelect *widget.Select
	styleSelect   *widget.Select
	densitySelect *widget.Select
	widthEntry    *widget.Entry
	heightEntry   *widget.Entry
	depthEntry    *widget.Entry

	resultContainer *fyne.Container
}

func NewApp(window fyne.Window) *App {
	appConfig, err := project.LoadAppConfig(project.DefaultAppConfigPath())
	if err != nil {
		appConfig = project.DefaultAppConfig()
	}

	a := &App{
		window:    window,
		engine:    layout.Default(),
		appConfig: appConfig,
	}
	a.cfg = a.newConfiguration(model.KindCabinet)
	return a
}

// newConfiguration starts a configuration for kind with the user's saved
// default material and colour applied.
func (a *App) newConfiguration(kind model.ProductKind) model.Configuration {
	cfg := model.DefaultConfiguration(kind)
	cfg.Material = a.appConfig.DefaultMaterial
	cfg.Color = a.appConfig.DefaultColor
	return cfg
}

// rememberRecent records path in the recent-file list and persists the
// application config.
func (a *App) rememberRecent(path string) {
	a.appConfig.AddRecent(path)
	if err := project.SaveAppConfig(project.DefaultAppConfigPath(), a.appConfig); err != nil {
		dialog.ShowError(err, a.window)
	}
}

// Build assembles the window content: a configuration form on the left and
// the derived layout on the right.
func (a *App) Build() fyne.CanvasObject {
	a.productSelect = widget.NewSelect([]string{"cabinet", "table", "console"}, func(name string) {
		switch name {
		case "table":
			a.cfg = a.newConfiguration(model.KindTable)
		case "console":
			a.cfg = a.newConfiguration(model.KindConsole)
		default:
			a.cfg = a.newConfiguration(model.KindCabinet)
		}
		a.syncForm()
		a.recompute()
	})

	a.styleSelect = widget.NewSelect(a.engine.Styles().Names(), func(name string) {
		a.cfg.Style = name
		a.recompute()
	})

	a.densitySelect = widget.NewSelect([]string{"Low", "Medium", "High"}, func(name string) {
		switch name {
		case "Low":
			a.cfg.Density = model.DensityLow
		case "High":
			a.cfg.Density = model.DensityHigh
		default:
			a.cfg.Density = model.DensityMedium
		}
		a.recompute()
	})

	a.widthEntry = widget.NewEntry()
	a.heightEntry = widget.NewEntry()
	a.depthEntry = widget.NewEntry()

	apply := widget.NewButton("Apply", func() {
		if err := a.applyDimensions(); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.recompute()
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle("Product", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.productSelect,
		widget.NewLabel("Width (cm)"), a.widthEntry,
		widget.NewLabel("Height (cm)"), a.heightEntry,
		widget.NewLabel("Depth (cm)"), a.depthEntry,
		widget.NewLabel("Style"), a.styleSelect,
		widget.NewLabel("Density"), a.densitySelect,
		apply,
	)

	a.resultContainer = container.NewStack()

	a.productSelect.SetSelected("cabinet")

	return container.NewBorder(nil, nil, form, nil, a.resultContainer)
}

// syncForm pushes the current configuration into the form widgets.
func (a *App) syncForm() {
	a.widthEntry.SetText(fmt.Sprintf("%.0f", a.cfg.Dimensions.Width))
	a.heightEntry.SetText(fmt.Sprintf("%.0f", a.cfg.Dimensions.Height))
	a.depthEntry.SetText(fmt.Sprintf("%.0f", a.cfg.Dimensions.Depth))
	a.styleSelect.SetSelected(a.cfg.Style)
	a.densitySelect.SetSelected(a.cfg.Density.String())
}

// applyDimensions parses the dimension entries into the configuration and
// rebuilds the cabinet rows to match the new height.
func (a *App) applyDimensions() error {
	parse := func(e *widget.Entry, name string) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(e.Text), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %q", name, e.Text)
		}
		return v, nil
	}

	w, err := parse(a.widthEntry, "width")
	if err != nil {
		return err
	}
	h, err := parse(a.heightEntry, "height")
	if err != nil {
		return err
	}
	d, err := parse(a.depthEntry, "depth")
	if err != nil {
		return err
	}

	a.cfg.Dimensions = model.Dimensions{Width: w, Height: h, Depth: d}
	if a.cfg.ProductType == "cabinet" {
		a.cfg.RowHeights = model.RowsForHeight(h, model.RowMedium)
	}
	return nil
}

// recompute reruns the derivation pipeline and swaps the result view.
func (a *App) recompute() {
	if a.resultContainer == nil {
		return
	}

	res, err := a.engine.Validate(a.cfg)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if !res.OK() {
		a.showViolations(res.Violations)
		return
	}

	result, err := a.engine.Compute(a.cfg)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if len(result.Violations) > 0 {
		a.showViolations(result.Violations)
		return
	}

	est := pricing.Calculate(result.Components, result.Groups, pricing.DefaultPrices())

	a.resultContainer.Objects = []fyne.CanvasObject{RenderLayout(a.cfg, result, est)}
	a.resultContainer.Refresh()
}

func (a *App) showViolations(violations []layout.Violation) {
	var items []fyne.CanvasObject
	header := widget.NewLabel("Configuration rejected:")
	header.Importance = widget.DangerImportance
	items = append(items, header)
	for _, v := range violations {
		items = append(items, widget.NewLabel("  "+v.Error()))
	}
	a.resultContainer.Objects = []fyne.CanvasObject{container.NewVScroll(container.NewVBox(items...))}
	a.resultContainer.Refresh()
}

// SetupMenus installs the native menu bar: open and save configuration.
func (a *App) SetupMenus() {
	openItem := fyne.NewMenuItem("Open Configuration...", func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			path := reader.URI().Path()
			_ = reader.Close()
			cfg, err := project.LoadConfiguration(path)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.cfg = cfg
			a.rememberRecent(path)
			a.syncForm()
			a.recompute()
		}, a.window)
	})

	saveItem := fyne.NewMenuItem("Save Configuration...", func() {
		dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			_ = writer.Close()
			if err := project.SaveConfiguration(path, a.cfg); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.rememberRecent(path)
		}, a.window)
	})

	exportItem := fyne.NewMenuItem("Export All Data...", func() {
		dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			_ = writer.Close()
			presets, err := project.LoadPresets(project.DefaultPresetPath())
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			if err := project.ExportAllData(path, a.appConfig, presets); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			dialog.ShowInformation("Export Complete", "Settings and presets exported to "+path, a.window)
		}, a.window)
	})

	importItem := fyne.NewMenuItem("Import All Data...", func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			path := reader.URI().Path()
			_ = reader.Close()
			backup, err := project.ImportAllData(path)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.appConfig = backup.Config
			if err := project.SaveAppConfig(project.DefaultAppConfigPath(), a.appConfig); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			if err := project.SavePresets(project.DefaultPresetPath(), backup.Presets); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			dialog.ShowInformation("Import Complete", "Settings and presets restored from "+path, a.window)
		}, a.window)
	})

	fileMenu := fyne.NewMenu("File",
		openItem, saveItem,
		fyne.NewMenuItemSeparator(),
		exportItem, importItem,
	)
	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}
