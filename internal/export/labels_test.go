package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/expofloor/boothplan/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestPlan()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_NoBooths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	plan := model.NewPlan()
	plan.Items = []model.Zone{model.NewPillar(0, 0, 40, 40)}

	if err := ExportLabels(path, plan); err == nil {
		t.Fatal("expected error for plan with no booths, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	plan := buildTestPlan()
	labels := CollectLabelInfos(plan)

	// Pillars get no labels; the three booths do.
	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}

	if labels[0].BoothLabel != "Booth A1" {
		t.Errorf("expected first label to be 'Booth A1', got %q", labels[0].BoothLabel)
	}
	if labels[0].Exhibitor != "Acme Corp" {
		t.Errorf("wrong exhibitor: %q", labels[0].Exhibitor)
	}
	if labels[0].Width != 120 || labels[0].Height != 80 {
		t.Errorf("wrong dimensions: got %.0fx%.0f, want 120x80", labels[0].Width, labels[0].Height)
	}
	if labels[0].PlanName != "Spring Expo Hall A" {
		t.Errorf("wrong plan name: %q", labels[0].PlanName)
	}
	if labels[0].NetArea <= 0 {
		t.Errorf("expected positive net area, got %.1f", labels[0].NetArea)
	}

	// The second booth carries its rotation.
	if labels[1].Rotation != 45 {
		t.Errorf("expected rotation 45, got %.0f", labels[1].Rotation)
	}
}

func TestLabelInfo_JSONRoundTrip(t *testing.T) {
	info := LabelInfo{
		BoothLabel: "Booth B7",
		Exhibitor:  "Initech",
		PlanName:   "Hall B",
		Width:      300,
		Height:     200,
		Rotation:   90,
		NetArea:    58000,
		X:          50,
		Y:          100,
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.BoothLabel != info.BoothLabel {
		t.Errorf("label mismatch: got %q, want %q", decoded.BoothLabel, info.BoothLabel)
	}
	if decoded.Width != info.Width || decoded.Height != info.Height {
		t.Errorf("dimensions mismatch: got %.0fx%.0f, want %.0fx%.0f",
			decoded.Width, decoded.Height, info.Width, info.Height)
	}
	if decoded.NetArea != info.NetArea {
		t.Error("net area mismatch")
	}
}

func TestExportLabels_MultiPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many_labels.pdf")

	// 35 booths spill onto a second label page (30 per page).
	plan := model.NewPlan()
	plan.Name = "Overflow Hall"
	for i := 0; i < 35; i++ {
		b := model.NewBooth("Booth "+string(rune('A'+i%26)),
			float64(i*110), 10, 100, 80)
		plan.Items = append(plan.Items, b)
	}

	if err := ExportLabels(path, plan); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}
