// BoothPlan — Exhibition Floor Plan Editor
//
// A cross-platform desktop application for laying out exhibition booths
// on a hall floor plan, tracking sellable area, and exporting
// print-ready plans.
//
// Build:
//   go build -o boothplan ./cmd/boothplan
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o boothplan.exe ./cmd/boothplan
//   GOOS=darwin  GOARCH=amd64 go build -o boothplan-darwin ./cmd/boothplan
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"github.com/expofloor/boothplan/internal/model"
	"github.com/expofloor/boothplan/internal/project"
	"github.com/expofloor/boothplan/internal/ui"
)

func main() {
	application := app.NewWithID("com.expofloor.boothplan")

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Printf("Could not load config, using defaults: %v\n", err)
		config = model.DefaultAppConfig()
	}

	switch config.Theme {
	case "light":
		application.Settings().SetTheme(ui.NewBoothPlanThemeWithVariant(theme.VariantLight))
	case "dark":
		application.Settings().SetTheme(ui.NewBoothPlanThemeWithVariant(theme.VariantDark))
	default:
		application.Settings().SetTheme(ui.NewBoothPlanTheme())
	}

	window := application.NewWindow("BoothPlan — Exhibition Floor Plan Editor")

	appUI := ui.NewApp(window, config)
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1400, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
