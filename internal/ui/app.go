// Package ui provides the BoothPlan application UI components.
package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/expofloor/boothplan/internal/analysis"
	"github.com/expofloor/boothplan/internal/editor"
	"github.com/expofloor/boothplan/internal/export"
	"github.com/expofloor/boothplan/internal/geometry"
	boothimporter "github.com/expofloor/boothplan/internal/importer"
	"github.com/expofloor/boothplan/internal/model"
	"github.com/expofloor/boothplan/internal/project"
	"github.com/expofloor/boothplan/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window fyne.Window
	config model.AppConfig

	canvas   *widgets.PlanCanvas
	planPath string

	// UI references for dynamic updates
	statsLabel     *widget.Label
	propertiesView *fyne.Container
}

func NewApp(window fyne.Window, config model.AppConfig) *App {
	a := &App{
		window: window,
		config: config,
		canvas: widgets.NewPlanCanvas(editor.NewState()),
	}
	a.canvas.ShowGrid = config.ShowGrid
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Plan", func() {
			a.canvas.SetState(editor.NewState())
			a.planPath = ""
			a.stateChanged(a.canvas.State)
		}),
		fyne.NewMenuItem("Open Plan...", func() {
			a.openPlan()
		}),
		fyne.NewMenuItem("Save Plan", func() {
			a.savePlan(false)
		}),
		fyne.NewMenuItem("Save Plan As...", func() {
			a.savePlan(true)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Booths from CSV...", func() {
			a.importBooths("csv")
		}),
		fyne.NewMenuItem("Import Booths from Excel...", func() {
			a.importBooths("xlsx")
		}),
		fyne.NewMenuItem("Import Obstructions from DXF...", func() {
			a.importDXF()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF...", func() {
			a.exportPlan("pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Booth Labels...", func() {
			a.exportPlan("pdf", export.ExportLabels)
		}),
		fyne.NewMenuItem("Export SVG...", func() {
			a.exportPlan("svg", export.ExportSVG)
		}),
		fyne.NewMenuItem("Export HTML...", func() {
			a.exportPlan("html", export.ExportHTML)
		}),
		fyne.NewMenuItem("Export DXF...", func() {
			a.exportPlan("dxf", export.ExportDXF)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Add Booth", func() {
			a.addZone(editor.AddBooth)
		}),
		fyne.NewMenuItem("Add Pillar", func() {
			a.addZone(editor.AddPillar)
		}),
		fyne.NewMenuItem("Draw Polygon Booth", func() {
			a.canvas.Dispatch(editor.Event{Type: editor.EnterDrawMode})
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Duplicate Selection", func() {
			a.canvas.Dispatch(editor.Event{Type: editor.DuplicateSelection})
		}),
		fyne.NewMenuItem("Split Selection...", func() {
			a.showSplitDialog()
		}),
		fyne.NewMenuItem("Lock / Unlock Selection", func() {
			a.canvas.Dispatch(editor.Event{Type: editor.ToggleLock})
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Set Background Image...", func() {
			a.setBackgroundImage()
		}),
		fyne.NewMenuItem("Move Background", func() {
			a.canvas.Dispatch(editor.Event{Type: editor.ToggleBackgroundMove})
		}),
	)

	// View Menu
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Grid", func() {
			a.canvas.ShowGrid = !a.canvas.ShowGrid
			a.canvas.Refresh()
		}),
		fyne.NewMenuItem("Reset View", func() {
			st := a.canvas.State
			st.Viewport = model.DefaultViewport()
			a.canvas.SetState(st)
			a.stateChanged(st)
		}),
	)

	// Tools Menu
	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Analyze Plan", func() {
			a.runAnalysis()
		}),
		fyne.NewMenuItem("Plan Statistics", func() {
			a.showStatsDialog()
		}),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	mainMenu := fyne.NewMainMenu(
		fileMenu,
		editMenu,
		viewMenu,
		toolsMenu,
		helpMenu,
	)
	a.window.SetMainMenu(mainMenu)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About BoothPlan",
		"BoothPlan — Exhibition Floor Plan Editor\n\n"+
			"A cross-platform desktop application for laying out\n"+
			"exhibition booths, tracking sellable area, and exporting\n"+
			"print-ready plans.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.statsLabel = widget.NewLabel("")
	a.propertiesView = container.NewVBox()

	a.canvas.OnChange = a.stateChanged
	a.refreshStats(a.canvas.State)
	a.refreshProperties(a.canvas.State)

	toolbar := container.NewHBox(
		newIconButtonWithTooltip(theme.ContentAddIcon(), "Add booth", func() {
			a.addZone(editor.AddBooth)
		}),
		newIconButtonWithTooltip(theme.RadioButtonIcon(), "Add pillar", func() {
			a.addZone(editor.AddPillar)
		}),
		newIconButtonWithTooltip(theme.ColorPaletteIcon(), "Draw polygon booth", func() {
			a.canvas.Dispatch(editor.Event{Type: editor.EnterDrawMode})
		}),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.ContentCopyIcon(), "Duplicate selection", func() {
			a.canvas.Dispatch(editor.Event{Type: editor.DuplicateSelection})
		}),
		newIconButtonWithTooltip(theme.GridIcon(), "Split selection", func() {
			a.showSplitDialog()
		}),
		newIconButtonWithTooltip(theme.MediaPauseIcon(), "Lock or unlock selection", func() {
			a.canvas.Dispatch(editor.Event{Type: editor.ToggleLock})
		}),
	)

	properties := container.NewVScroll(a.propertiesView)
	properties.SetMinSize(fyne.NewSize(260, 0))

	return container.NewBorder(
		toolbar,
		a.statsLabel,
		nil,
		properties,
		a.canvas,
	)
}

// stateChanged runs after every dispatched editor event.
func (a *App) stateChanged(st editor.State) {
	a.refreshStats(st)
	a.refreshProperties(st)
}

func (a *App) refreshStats(st editor.State) {
	summary := geometry.Summarize(st.Plan)
	a.statsLabel.SetText(fmt.Sprintf(
		"Booths: %d | Pillars: %d | Gross: %.0f | Net: %.0f | Sellable: %.1f%% | Zoom: %.0f%%",
		summary.BoothCount, summary.PillarCount,
		summary.GrossTotal, summary.NetTotal, summary.SellableRatio(),
		st.Viewport.Scale*100,
	))
}

// addZone places a new zone at the center of the visible canvas.
func (a *App) addZone(kind editor.EventType) {
	size := a.canvas.Size()
	w, h := a.config.DefaultBoothWidth, a.config.DefaultBoothHeight
	if kind == editor.AddPillar {
		w, h = 8*model.GridUnit, 8*model.GridUnit
	}
	a.canvas.Dispatch(editor.Event{
		Type: kind,
		X:    float64(size.Width / 2),
		Y:    float64(size.Height / 2),
		W:    w,
		H:    h,
	})
}

func (a *App) showSplitDialog() {
	if len(a.canvas.State.Selection) != 1 {
		dialog.ShowInformation("Split", "Select exactly one rectangular booth to split.", a.window)
		return
	}

	partsEntry := widget.NewEntry()
	partsEntry.SetText("2")

	directionSelect := widget.NewSelect([]string{"Horizontal (side by side)", "Vertical (stacked)"}, nil)
	directionSelect.SetSelected("Horizontal (side by side)")

	form := dialog.NewForm("Split Booth", "Split", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Parts", partsEntry),
			widget.NewFormItem("Direction", directionSelect),
		},
		func(ok bool) {
			if !ok {
				return
			}
			parts, _ := strconv.Atoi(partsEntry.Text)
			if parts < 2 {
				dialog.ShowError(fmt.Errorf("parts must be at least 2"), a.window)
				return
			}
			dir := geometry.SplitHorizontal
			if directionSelect.Selected == "Vertical (stacked)" {
				dir = geometry.SplitVertical
			}
			a.canvas.Dispatch(editor.Event{
				Type:      editor.SplitSelection,
				Parts:     parts,
				Direction: dir,
			})
		},
		a.window,
	)
	form.Resize(fyne.NewSize(350, 200))
	form.Show()
}

func (a *App) showStatsDialog() {
	st := a.canvas.State
	summary := geometry.Summarize(st.Plan)

	var b strings.Builder
	fmt.Fprintf(&b, "Booths: %d\nPillars: %d\n\n", summary.BoothCount, summary.PillarCount)
	fmt.Fprintf(&b, "Gross booth area: %.0f\nNet usable area: %.0f\nSellable ratio: %.1f%%\n\n",
		summary.GrossTotal, summary.NetTotal, summary.SellableRatio())
	for _, z := range st.Plan.Booths() {
		fmt.Fprintf(&b, "%s: %.0f net\n", z.Label, geometry.DisplayArea(z, st.Plan.Items))
	}
	dialog.ShowInformation("Plan Statistics", b.String(), a.window)
}

// ─── Persistence ───────────────────────────────────────────

func (a *App) savePlan(saveAs bool) {
	if a.planPath != "" && !saveAs {
		if err := project.SavePlan(a.planPath, a.canvas.State.Plan); err != nil {
			dialog.ShowError(err, a.window)
		}
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SavePlan(path, a.canvas.State.Plan); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.planPath = path
		a.rememberRecent(path)
	}, a.window)
	name := a.canvas.State.Plan.Name
	if name == "" {
		name = "floorplan"
	}
	d.SetFileName(name + ".json")
	d.Show()
}

func (a *App) openPlan() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()
		plan, err := project.LoadPlan(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		st := editor.NewState()
		st.Plan = plan
		a.canvas.SetState(st)
		a.planPath = path
		a.rememberRecent(path)
		a.stateChanged(st)
	}, a.window)
	d.Show()
}

func (a *App) rememberRecent(path string) {
	a.config.AddRecentPlan(path)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
		fmt.Printf("Could not save config: %v\n", err)
	}
}

func (a *App) setBackgroundImage() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		st := a.canvas.State
		st.Plan.Background = &model.Background{
			Path: reader.URI().Path(),
			X:    0,
			Y:    0,
			W:    2000,
			H:    1500,
		}
		a.canvas.SetState(st)
	}, a.window)
	d.Show()
}

// ─── Import / Export ───────────────────────────────────────

func (a *App) importBooths(kind string) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		var result boothimporter.ImportResult
		if kind == "xlsx" {
			result = boothimporter.ImportExcel(reader.URI().Path())
		} else {
			result = boothimporter.ImportCSV(reader.URI().Path())
		}
		a.handleImportResult(result, true)
	}, a.window)
}

func (a *App) importDXF() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := boothimporter.ImportDXF(reader.URI().Path())
		a.handleImportResult(result, false)
	}, a.window)
}

// handleImportResult reports errors and appends imported zones to the
// plan. Staged zones land in rows below the existing layout.
func (a *App) handleImportResult(result boothimporter.ImportResult, stage bool) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}
	if len(result.Booths) == 0 {
		return
	}

	st := a.canvas.State
	zones := result.Booths
	if stage {
		// Place imported booths in rows beneath the current plan.
		startY := 0.0
		for _, z := range st.Plan.Items {
			b := geometry.AxisAlignedBounds(z)
			if b.Bottom() > startY {
				startY = b.Bottom()
			}
		}
		zones = boothimporter.LayoutStaging(zones, 0, startY+2*model.GridUnit, 1000)
	}
	st.Plan.Items = append(st.Plan.Items, zones...)
	a.canvas.SetState(st)
	a.stateChanged(st)

	msg := fmt.Sprintf("Successfully imported %d zones.", len(result.Booths))
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

func (a *App) exportPlan(ext string, exportFn func(string, model.Plan) error) {
	if len(a.canvas.State.Plan.Items) == 0 {
		dialog.ShowInformation("Nothing to export", "The plan is empty.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := exportFn(path, a.canvas.State.Plan); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Plan exported to %s", path), a.window)
		}
	}, a.window)
	name := a.canvas.State.Plan.Name
	if name == "" {
		name = "floorplan"
	}
	d.SetFileName(name + "." + ext)
	d.Show()
}

// ─── Analysis ──────────────────────────────────────────────

func (a *App) runAnalysis() {
	timeout := time.Duration(a.config.AnalysisTimeout) * time.Second
	client := analysis.NewClient(a.config.AnalysisEndpoint, timeout)

	ctx, cancel := context.WithTimeout(context.Background(), analysis.DefaultTimeout)
	defer cancel()

	report, err := client.Analyze(ctx, a.canvas.State.Plan)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	var b strings.Builder
	if report.Local {
		b.WriteString("Analysis service unavailable; local summary:\n\n")
	}
	fmt.Fprintf(&b, "Score: %.1f\n\n", report.Score)
	if len(report.Suggestions) > 0 {
		b.WriteString("Suggestions:\n")
		for _, s := range report.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	} else {
		b.WriteString("No suggestions.")
	}
	dialog.ShowInformation("Plan Analysis", b.String(), a.window)
}
