// Package importer provides CSV and Excel import of booth schedules.
// It supports automatic delimiter detection, flexible column mapping,
// and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/expofloor/boothplan/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Booths   []model.Zone
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label     int
	Width     int
	Height    int
	Quantity  int
	Exhibitor int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":     {"label", "name", "booth", "booth name", "stand", "description", "desc"},
	"width":     {"width", "w", "x"},
	"height":    {"height", "h", "depth", "d", "y"},
	"quantity":  {"quantity", "qty", "count", "num", "amount"},
	"exhibitor": {"exhibitor", "company", "vendor", "client", "tenant"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}
	return bestDelimiter
}

// DetectColumns inspects a row for recognizable header names.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Label:     -1,
		Width:     -1,
		Height:    -1,
		Quantity:  -1,
		Exhibitor: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "label":
						if mapping.Label == -1 {
							mapping.Label = i
						}
					case "width":
						if mapping.Width == -1 {
							mapping.Width = i
						}
					case "height":
						if mapping.Height == -1 {
							mapping.Height = i
						}
					case "quantity":
						if mapping.Quantity == -1 {
							mapping.Quantity = i
						}
					case "exhibitor":
						if mapping.Exhibitor == -1 {
							mapping.Exhibitor = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Label, Width, Height, Quantity, Exhibitor
		return ColumnMapping{
			Label:     0,
			Width:     1,
			Height:    2,
			Quantity:  3,
			Exhibitor: 4,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts booth parameters from a row using the given column mapping.
// Returns the booth template, a count, any error message, and any warning.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, boothCount int) (model.Zone, int, string, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Booth %d", boothCount+1)
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.Zone{}, 0, fmt.Sprintf("%s: Missing width value", rowLabel), ""
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return model.Zone{}, 0, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), ""
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return model.Zone{}, 0, fmt.Sprintf("%s: Missing height value", rowLabel), ""
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil {
		return model.Zone{}, 0, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), ""
	}

	qty := 1
	var warning string
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		qty, err = strconv.Atoi(qtyStr)
		if err != nil {
			return model.Zone{}, 0, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), ""
		}
	}

	if width <= 0 || height <= 0 || qty <= 0 {
		return model.Zone{}, 0, fmt.Sprintf("%s: Width, height, and quantity must be positive", rowLabel), ""
	}

	// Booth sizes snap to the grid like every other zone.
	snappedW := model.SnapSize(width)
	snappedH := model.SnapSize(height)
	if snappedW != width || snappedH != height {
		warning = fmt.Sprintf("%s: Size %.1fx%.1f snapped to %.0fx%.0f", rowLabel, width, height, snappedW, snappedH)
	}

	booth := model.NewBooth(label, 0, 0, snappedW, snappedH)
	booth.Exhibitor = getCell(row, mapping.Exhibitor)
	return booth, qty, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// importFromRows converts tabular data into booths. The first row may be
// a recognizable header; otherwise columns are read positionally.
func importFromRows(rows [][]string, rowLabel string, warnings []string) ImportResult {
	result := ImportResult{Warnings: warnings}

	mapping, hasHeader := DetectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	} else {
		result.Warnings = append(result.Warnings,
			"No header row detected, assuming columns: Label, Width, Height, Quantity, Exhibitor")
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		label := fmt.Sprintf("%s %d", rowLabel, i+1)
		booth, qty, errMsg, warnMsg := parseRow(row, mapping, label, len(result.Booths))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warnMsg != "" {
			result.Warnings = append(result.Warnings, warnMsg)
		}
		result.Booths = append(result.Booths, booth)
		for n := 1; n < qty; n++ {
			copyBooth := model.NewBooth(fmt.Sprintf("%s (%d)", booth.Label, n+1), 0, 0, booth.W, booth.H)
			copyBooth.Exhibitor = booth.Exhibitor
			result.Booths = append(result.Booths, copyBooth)
		}
	}

	if len(result.Booths) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No booths found in file")
	}
	return result
}

// ImportCSV imports booths from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports booths from a CSV reader with a specific delimiter.
// This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports booths from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// LayoutStaging places imported booths in rows starting at the given
// world origin, so they arrive on the canvas without stacking on top of
// each other. Rows wrap at the given width; spacing is one grid unit.
func LayoutStaging(booths []model.Zone, originX, originY, rowWidth float64) []model.Zone {
	out := make([]model.Zone, len(booths))
	x := originX
	y := originY
	var rowH float64
	for i, b := range booths {
		if x > originX && x+b.W > originX+rowWidth {
			x = originX
			y += rowH + model.GridUnit
			rowH = 0
		}
		b.X = model.SnapToGrid(x)
		b.Y = model.SnapToGrid(y)
		out[i] = b
		x += b.W + model.GridUnit
		if b.H > rowH {
			rowH = b.H
		}
	}
	return out
}
