package importer

import (
	"strings"
	"testing"

	"github.com/expofloor/boothplan/internal/model"
)

func TestImportCSVWithHeader(t *testing.T) {
	csv := "Label,Width,Height,Qty,Exhibitor\n" +
		"Stand A,60,40,1,Acme\n" +
		"Stand B,80,40,2,Globex\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Booths) != 3 {
		t.Fatalf("expected 3 booths (quantity expansion), got %d", len(result.Booths))
	}
	if result.Booths[0].Label != "Stand A" || result.Booths[0].Exhibitor != "Acme" {
		t.Errorf("unexpected first booth: %+v", result.Booths[0])
	}
	if result.Booths[2].Label != "Stand B (2)" {
		t.Errorf("expected numbered copy, got %q", result.Booths[2].Label)
	}
	for _, b := range result.Booths {
		if b.Kind != model.KindBooth {
			t.Errorf("expected booth kind, got %q", b.Kind)
		}
	}
}

func TestImportCSVPositionalFallback(t *testing.T) {
	csv := "North Stand,100,50,1\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Booths) != 1 {
		t.Fatalf("expected 1 booth, got %d: %v", len(result.Booths), result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a no-header warning")
	}
	if result.Booths[0].W != 100 || result.Booths[0].H != 50 {
		t.Errorf("unexpected size: %.0fx%.0f", result.Booths[0].W, result.Booths[0].H)
	}
}

func TestImportSnapsSizesToGrid(t *testing.T) {
	csv := "Label,Width,Height\nOdd,63,41\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Booths) != 1 {
		t.Fatalf("expected 1 booth, got %d", len(result.Booths))
	}
	b := result.Booths[0]
	if b.W != 65 || b.H != 40 {
		t.Errorf("expected 65x40 after snapping, got %.0fx%.0f", b.W, b.H)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a snapping warning")
	}
}

func TestImportRejectsBadRows(t *testing.T) {
	csv := "Label,Width,Height\n" +
		"Good,60,40\n" +
		"NoWidth,,40\n" +
		"BadHeight,60,xyz\n" +
		"Negative,-5,40\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Booths) != 1 {
		t.Errorf("expected only the good row, got %d booths", len(result.Booths))
	}
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 row errors, got %d: %v", len(result.Errors), result.Errors)
	}
}

func TestImportEmptyInput(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')
	if len(result.Errors) == 0 {
		t.Error("expected an error for empty input")
	}
}

func TestDetectCSVDelimiter(t *testing.T) {
	cases := map[string]rune{
		"a,b,c\nd,e,f\n":   ',',
		"a;b;c\nd;e;f\n":   ';',
		"a\tb\tc\nd\te\tf": '\t',
		"a|b|c\nd|e|f\n":   '|',
	}
	for data, want := range cases {
		if got := DetectCSVDelimiter([]byte(data)); got != want {
			t.Errorf("data %q: expected %q, got %q", data, want, got)
		}
	}
}

func TestDetectColumnsAliases(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Booth Name", "W", "Depth", "Count", "Company"})
	if !isHeader {
		t.Fatal("expected header detection")
	}
	if mapping.Label != 0 || mapping.Width != 1 || mapping.Height != 2 ||
		mapping.Quantity != 3 || mapping.Exhibitor != 4 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestLayoutStagingWrapsRows(t *testing.T) {
	booths := []model.Zone{
		model.NewBooth("A", 0, 0, 100, 50),
		model.NewBooth("B", 0, 0, 100, 50),
		model.NewBooth("C", 0, 0, 100, 50),
	}
	placed := LayoutStaging(booths, 0, 0, 250)

	if placed[0].X != 0 || placed[0].Y != 0 {
		t.Errorf("first booth misplaced: (%.0f,%.0f)", placed[0].X, placed[0].Y)
	}
	if placed[1].X != 105 {
		t.Errorf("second booth should sit one grid unit right, got %.0f", placed[1].X)
	}
	// Third booth does not fit in the 250-wide row and wraps.
	if placed[2].X != 0 || placed[2].Y != 55 {
		t.Errorf("third booth should wrap to next row, got (%.0f,%.0f)", placed[2].X, placed[2].Y)
	}
}
