package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"
)

// LabelInfo holds the data encoded into each booth label's QR code.
type LabelInfo struct {
	BoothLabel string  `json:"label"`
	Exhibitor  string  `json:"exhibitor,omitempty"`
	PlanName   string  `json:"plan"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Rotation   float64 `json:"rotation,omitempty"`
	NetArea    float64 `json:"net_area"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels for all booths on the
// plan. Each label contains the booth name, exhibitor, dimensions, and
// a QR code encoding booth metadata as JSON. Labels are laid out on a
// standard label sheet format (Avery 5160 / 3 columns x 10 rows on US
// Letter).
func ExportLabels(path string, plan model.Plan) error {
	labels := CollectLabelInfos(plan)
	if len(labels) == 0 {
		return fmt.Errorf("no booths to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.BoothLabel, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%s_%d", info.BoothLabel, int(info.X*1000+info.Y))
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Booth label (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate label if too long
	boothLabel := info.BoothLabel
	if pdf.GetStringWidth(boothLabel) > textW {
		for len(boothLabel) > 0 && pdf.GetStringWidth(boothLabel+"...") > textW {
			boothLabel = boothLabel[:len(boothLabel)-1]
		}
		boothLabel += "..."
	}
	pdf.CellFormat(textW, 4.5, boothLabel, "", 1, "L", false, 0, "")

	// Exhibitor line
	if info.Exhibitor != "" {
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetXY(textX, y+labelPadding+5)
		pdf.CellFormat(textW, 3.5, info.Exhibitor, "", 1, "L", false, 0, "")
	}

	// Dimensions and net area
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+9)
	dims := fmt.Sprintf("%.0f x %.0f  (net %.0f)", info.Width, info.Height, info.NetArea)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Plan and position info
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+13)
	planInfo := fmt.Sprintf("%s @ (%.0f, %.0f)", info.PlanName, info.X, info.Y)
	pdf.CellFormat(textW, 3, planInfo, "", 1, "L", false, 0, "")

	// Rotation indicator
	if info.Rotation != 0 {
		pdf.SetXY(textX, y+labelPadding+16.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, fmt.Sprintf("Rotated %.0f\xb0", info.Rotation), "", 0, "L", false, 0, "")
	}

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from a plan's booths
// for use in testing or alternative export formats.
func CollectLabelInfos(plan model.Plan) []LabelInfo {
	var labels []LabelInfo
	for _, z := range plan.Booths() {
		labels = append(labels, LabelInfo{
			BoothLabel: z.Label,
			Exhibitor:  z.Exhibitor,
			PlanName:   plan.Name,
			Width:      z.W,
			Height:     z.H,
			Rotation:   z.NormalizedRotation(),
			NetArea:    geometry.DisplayArea(z, plan.Items),
			X:          z.X,
			Y:          z.Y,
		})
	}
	return labels
}
