// Package export renders floor plans to static formats: PDF plan
// sheets, QR-coded booth labels, SVG, standalone HTML, and DXF.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"
)

// zoneColor represents an RGB fill for a rendered zone.
type zoneColor struct {
	R, G, B int
}

// boothColors cycle through rendered booths for visual distinction.
var boothColors = []zoneColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// pillarColor is the fixed fill for structural pillars.
var pillarColor = zoneColor{R: 120, G: 120, B: 120}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document of the floor plan: one page with
// the scaled plan drawing followed by a booth listing with net areas.
func ExportPDF(path string, plan model.Plan) error {
	if len(plan.Items) == 0 {
		return fmt.Errorf("no zones to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, plan)

	pdf.AddPage()
	renderBoothListing(pdf, plan)

	return pdf.OutputFileAndClose(path)
}

// planExtent returns the world bounding box covering every zone.
func planExtent(plan model.Plan) geometry.Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for _, z := range plan.Items {
		b := geometry.AxisAlignedBounds(z)
		if first {
			minX, minY, maxX, maxY = b.X, b.Y, b.Right(), b.Bottom()
			first = false
			continue
		}
		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.Right())
		maxY = math.Max(maxY, b.Bottom())
	}
	return geometry.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// renderPlanPage draws the whole plan scaled to fit the page.
func renderPlanPage(pdf *fpdf.Fpdf, plan model.Plan) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight,
		fmt.Sprintf("Floor Plan: %s", plan.Name), "", 0, "L", false, 0, "")

	summary := geometry.Summarize(plan)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Booths: %d | Pillars: %d | Gross: %.0f | Net: %.0f | Sellable: %.1f%%",
		summary.BoothCount, summary.PillarCount, summary.GrossTotal, summary.NetTotal, summary.SellableRatio())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	extent := planExtent(plan)
	if extent.W <= 0 || extent.H <= 0 {
		return
	}

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight
	scale := math.Min(drawWidth/extent.W, drawHeight/extent.H)
	offsetX := marginLeft + (drawWidth-extent.W*scale)/2
	offsetY := drawAreaTop

	toPage := func(wx, wy float64) (float64, float64) {
		return offsetX + (wx-extent.X)*scale, offsetY + (wy-extent.Y)*scale
	}

	// Pillars under booths so intrusions stay visible.
	for _, z := range plan.Items {
		if z.Kind == model.KindPillar {
			drawZone(pdf, z, pillarColor, scale, toPage)
		}
	}
	boothIdx := 0
	for _, z := range plan.Items {
		if z.Kind != model.KindBooth {
			continue
		}
		drawZone(pdf, z, boothColors[boothIdx%len(boothColors)], scale, toPage)
		boothIdx++
	}
}

// drawZone renders one zone on the current page, honoring rotation and
// polygon outlines.
func drawZone(pdf *fpdf.Fpdf, z model.Zone, col zoneColor, scale float64, toPage func(float64, float64) (float64, float64)) {
	pdf.SetFillColor(col.R, col.G, col.B)
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.3)

	if z.IsPolygon() {
		var pts []fpdf.PointType
		for _, p := range z.WorldPoints() {
			px, py := toPage(p.X, p.Y)
			pts = append(pts, fpdf.PointType{X: px, Y: py})
		}
		pdf.Polygon(pts, "FD")
	} else {
		px, py := toPage(z.X, z.Y)
		pw := z.W * scale
		ph := z.H * scale
		if math.Mod(z.Rotation, 360) != 0 {
			cx, cy := toPage(z.Center().X, z.Center().Y)
			pdf.TransformBegin()
			// fpdf rotates counter-clockwise; world rotation is clockwise.
			pdf.TransformRotate(-z.Rotation, cx, cy)
			pdf.Rect(px, py, pw, ph, "FD")
			pdf.TransformEnd()
		} else {
			pdf.Rect(px, py, pw, ph, "FD")
		}

		// Label centered in the unrotated box (kept horizontal for legibility).
		if z.Label != "" && pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)
			labelW := pdf.GetStringWidth(z.Label)
			if labelW < pw-2 {
				cx, cy := toPage(z.Center().X, z.Center().Y)
				pdf.SetXY(cx-labelW/2, cy-2)
				pdf.CellFormat(labelW, 4, z.Label, "", 0, "C", false, 0, "")
			}
		}
	}
}

// labelFontSize picks a readable font size for a rendered box.
func labelFontSize(w, h float64) float64 {
	size := math.Min(w/8, h/3)
	if size > 9 {
		return 9
	}
	if size < 4 {
		return 4
	}
	return size
}

// renderBoothListing prints a table of booths with computed areas.
func renderBoothListing(pdf *fpdf.Fpdf, plan model.Plan) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Booth Listing", "", 1, "L", false, 0, "")

	colWidths := []float64{50, 60, 25, 25, 30, 30}
	headers := []string{"Booth", "Exhibitor", "W", "H", "Net Area", "Area (m2)"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, drawAreaTop)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	y := drawAreaTop + 6
	for _, z := range plan.Booths() {
		if y > pageHeight-marginBottom-6 {
			pdf.AddPage()
			y = marginTop
		}
		net := geometry.DisplayArea(z, plan.Items)
		sqm := net * plan.ScaleRatio * plan.ScaleRatio / 10000 // cm^2 per world-unit^2 to m^2
		pdf.SetXY(marginLeft, y)
		cells := []string{
			z.Label,
			z.Exhibitor,
			fmt.Sprintf("%.0f", z.W),
			fmt.Sprintf("%.0f", z.H),
			fmt.Sprintf("%.0f", net),
			fmt.Sprintf("%.2f", sqm),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		y += 6
	}
}
