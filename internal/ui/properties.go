package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/expofloor/boothplan/internal/editor"
	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"
)

// openingNames maps the opening presets to their UI labels.
var openingNames = []struct {
	opening model.BoothOpening
	label   string
}{
	{model.OpeningClosed, "Closed (4 walls)"},
	{model.OpeningRow, "Row (front open)"},
	{model.OpeningCorner, "Corner (front + side open)"},
	{model.OpeningPeninsula, "Peninsula (3 sides open)"},
	{model.OpeningIsland, "Island (no walls)"},
}

// refreshProperties rebuilds the right-hand property panel for the
// current selection.
func (a *App) refreshProperties(st editor.State) {
	a.propertiesView.RemoveAll()

	selected := st.SelectedZones()
	switch len(selected) {
	case 0:
		a.propertiesView.Add(widget.NewLabel("No selection.\n\nClick a booth to select it;\nshift-click adds to the selection."))
	case 1:
		a.buildZoneProperties(selected[0])
	default:
		a.propertiesView.Add(widget.NewLabel(fmt.Sprintf("%d zones selected.", len(selected))))
		total := 0.0
		for _, z := range selected {
			total += geometry.DisplayArea(z, st.Plan.Items)
		}
		a.propertiesView.Add(widget.NewLabel(fmt.Sprintf("Combined net area: %.0f", total)))
	}
	a.propertiesView.Refresh()
}

// buildZoneProperties fills the panel with editable fields for one zone.
func (a *App) buildZoneProperties(z model.Zone) {
	title := "Booth"
	if z.Kind == model.KindPillar {
		title = "Pillar"
	}
	header := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.propertiesView.Add(header)

	labelEntry := widget.NewEntry()
	labelEntry.SetText(z.Label)

	exhibitorEntry := widget.NewEntry()
	exhibitorEntry.SetText(z.Exhibitor)

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%.0f", z.W))

	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%.0f", z.H))

	rotationEntry := widget.NewEntry()
	rotationEntry.SetText(fmt.Sprintf("%.0f", z.Rotation))

	openingLabels := make([]string, len(openingNames))
	current := ""
	for i, o := range openingNames {
		openingLabels[i] = o.label
		if o.opening == z.Opening || (z.Opening == "" && o.opening == model.OpeningClosed) {
			current = o.label
		}
	}
	openingSelect := widget.NewSelect(openingLabels, nil)
	openingSelect.SetSelected(current)

	manualAreaCheck := widget.NewCheck("Manual area override", nil)
	manualAreaCheck.Checked = z.UseManualArea
	manualAreaEntry := widget.NewEntry()
	manualAreaEntry.SetText(fmt.Sprintf("%.0f", z.ManualArea))

	notesEntry := widget.NewMultiLineEntry()
	notesEntry.SetText(z.Notes)

	netArea := geometry.DisplayArea(z, a.canvas.State.Plan.Items)
	areaLabel := widget.NewLabel(fmt.Sprintf("Net area: %.0f", netArea))

	applyBtn := widget.NewButton("Apply", func() {
		a.applyZoneEdits(z.ID, zoneEdits{
			label:         labelEntry.Text,
			exhibitor:     exhibitorEntry.Text,
			width:         widthEntry.Text,
			height:        heightEntry.Text,
			rotation:      rotationEntry.Text,
			opening:       openingSelect.Selected,
			useManualArea: manualAreaCheck.Checked,
			manualArea:    manualAreaEntry.Text,
			notes:         notesEntry.Text,
		})
	})

	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Exhibitor", exhibitorEntry),
			widget.NewFormItem("Width", widthEntry),
			widget.NewFormItem("Height", heightEntry),
			widget.NewFormItem("Rotation", rotationEntry),
		),
	)
	if z.Kind == model.KindBooth && !z.IsPolygon() {
		form.Add(widget.NewForm(widget.NewFormItem("Opening", openingSelect)))
	}
	form.Add(manualAreaCheck)
	form.Add(manualAreaEntry)
	form.Add(widget.NewForm(widget.NewFormItem("Notes", notesEntry)))
	form.Add(areaLabel)
	form.Add(applyBtn)

	if z.Locked {
		form.Add(widget.NewLabelWithStyle("Locked", fyne.TextAlignLeading, fyne.TextStyle{Italic: true}))
	}

	a.propertiesView.Add(form)
}

type zoneEdits struct {
	label         string
	exhibitor     string
	width         string
	height        string
	rotation      string
	opening       string
	useManualArea bool
	manualArea    string
	notes         string
}

// applyZoneEdits writes panel edits back into the plan. Geometry fields
// are validated and snapped; locked zones only accept cosmetic changes.
func (a *App) applyZoneEdits(id string, edits zoneEdits) {
	st := a.canvas.State
	items := make([]model.Zone, len(st.Plan.Items))
	copy(items, st.Plan.Items)

	for i := range items {
		if items[i].ID != id {
			continue
		}
		z := &items[i]
		z.Label = edits.label
		z.Exhibitor = edits.exhibitor
		z.Notes = edits.notes

		if !z.Locked {
			if w, err := strconv.ParseFloat(edits.width, 64); err == nil && w > 0 {
				z.W = w
			}
			if h, err := strconv.ParseFloat(edits.height, 64); err == nil && h > 0 {
				z.H = h
			}
			z.W = model.SnapSize(z.W)
			z.H = model.SnapSize(z.H)
			if r, err := strconv.ParseFloat(edits.rotation, 64); err == nil {
				z.Rotation = r
			}
			for _, o := range openingNames {
				if o.label == edits.opening {
					z.Opening = o.opening
				}
			}
		}

		z.UseManualArea = edits.useManualArea
		if area, err := strconv.ParseFloat(edits.manualArea, 64); err == nil && area >= 0 {
			z.ManualArea = area
		} else if edits.useManualArea {
			dialog.ShowError(fmt.Errorf("manual area must be a non-negative number"), a.window)
			return
		}
		break
	}

	st.Plan.Items = items
	a.canvas.SetState(st)
	a.stateChanged(st)
}
