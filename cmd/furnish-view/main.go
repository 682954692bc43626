// Furnish Viewer — interactive furniture layout preview
//
// A cross-platform desktop application for configuring a furniture piece
// and previewing its derived front elevation.
//
// Build:
//
//	go build -o furnish-view ./cmd/furnish-view
//
// Cross-compile:
//
//	GOOS=windows GOARCH=amd64 go build -o furnish-view.exe ./cmd/furnish-view
//	GOOS=darwin  GOARCH=amd64 go build -o furnish-view-darwin ./cmd/furnish-view
package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/jmaessen/furnish/internal/ui"
)

func main() {
	application := app.NewWithID("com.jmaessen.furnish")
	window := application.NewWindow("Furnish — Furniture Layout Preview")

	appUI := ui.NewApp(window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1100, 700))
	window.CenterOnScreen()
	window.Show()

	application.Run()
}
