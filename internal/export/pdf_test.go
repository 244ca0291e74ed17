package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/expofloor/boothplan/internal/model"
)

// buildTestPlan creates a realistic floor plan for export testing.
func buildTestPlan() model.Plan {
	plan := model.NewPlan()
	plan.Name = "Spring Expo Hall A"
	plan.ScaleRatio = 10 // 1 world unit = 10 cm

	a := model.NewBooth("Booth A1", 0, 0, 120, 80)
	a.Exhibitor = "Acme Corp"

	b := model.NewBooth("Booth A2", 140, 0, 120, 80)
	b.Rotation = 45
	b.Exhibitor = "Globex"

	poly := model.NewBooth("Lounge", 0, 120, 200, 100)
	poly.Points = []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0.6}, {X: 0, Y: 1}}

	pillar := model.NewPillar(100, 60, 30, 30)

	plan.Items = []model.Zone{a, b, poly, pillar}
	return plan
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")

	if err := ExportPDF(path, buildTestPlan()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with 2 pages (plan + listing) should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	if err := ExportPDF(path, model.NewPlan()); err == nil {
		t.Fatal("expected error for empty plan, got nil")
	}
}

func TestExportPDF_ManyBooths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.pdf")

	// Generate more booths than colors to test color cycling, and enough
	// rows to trigger a listing page break.
	plan := model.NewPlan()
	plan.Name = "Big Hall"
	for i := 0; i < 40; i++ {
		b := model.NewBooth(fmt.Sprintf("Booth %d", i+1),
			float64((i%8)*110), float64((i/8)*90), 100, 80)
		plan.Items = append(plan.Items, b)
	}

	if err := ExportPDF(path, plan); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestPlanExtent(t *testing.T) {
	plan := buildTestPlan()
	extent := planExtent(plan)

	if extent.X > 0 || extent.Y > 0 {
		t.Errorf("extent origin should cover booth at (0,0), got (%.1f,%.1f)", extent.X, extent.Y)
	}
	// The rotated booth at (140,0) pushes the right edge past 260.
	if extent.Right() < 260 {
		t.Errorf("extent too narrow: right edge %.1f", extent.Right())
	}
	if extent.Bottom() < 220 {
		t.Errorf("extent too short: bottom edge %.1f", extent.Bottom())
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{100, 100, 9},
		{40, 15, 5},
		{10, 6, 4},
	}
	for _, tt := range tests {
		got := labelFontSize(tt.w, tt.h)
		if got != tt.want {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
