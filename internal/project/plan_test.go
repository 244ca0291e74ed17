package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/expofloor/boothplan/internal/model"
)

func samplePlan() model.Plan {
	plan := model.NewPlan()
	plan.Name = "Hall 3"
	plan.ScaleRatio = 2.5
	plan.Background = &model.Background{Path: "hall3.png", X: -20, Y: -10, W: 2000, H: 1500}

	booth := model.NewBooth("Acme Corp", 100, 100, 120, 80)
	booth.Rotation = 30
	booth.Opening = model.OpeningCorner
	booth.Exhibitor = "Acme"
	booth.FillColor = "#ffcc00"
	booth.TextColor = "#222222"
	booth.FontSize = 14
	booth.Notes = "power drop needed"
	booth.UseManualArea = true
	booth.ManualArea = 9000

	poly := model.NewBooth("Lounge", 400, 200, 150, 150)
	poly.Points = []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0.7}, {X: 0, Y: 1}}
	poly.OpenEdges = []int{0, 3}
	poly.Locked = true

	pillar := model.NewPillar(250, 250, 40, 40)

	plan.Items = []model.Zone{booth, poly, pillar}
	return plan
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans", "hall3.json")
	want := samplePlan()

	if err := SavePlan(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !reflect.DeepEqual(want, got) {
		t.Errorf("plan did not round-trip:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestLoadPlanAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	// A minimal legacy file: no kind, no sizes, no scale ratio.
	content := `{"name":"Legacy","items":[{"id":"abc","x":10,"y":10,"label":"A"}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if plan.ScaleRatio != 1.0 {
		t.Errorf("expected scale ratio default 1.0, got %.2f", plan.ScaleRatio)
	}
	z := plan.Items[0]
	if z.Kind != model.KindBooth {
		t.Errorf("expected kind default booth, got %q", z.Kind)
	}
	if z.W != model.MinZoneSize || z.H != model.MinZoneSize {
		t.Errorf("expected minimum size defaults, got %.1fx%.1f", z.W, z.H)
	}
	if z.Rotation != 0 {
		t.Errorf("expected rotation default 0, got %.1f", z.Rotation)
	}
}

func TestLoadPlanMissingFile(t *testing.T) {
	if _, err := LoadPlan(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveCreatesBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.json")
	plan := samplePlan()

	if err := SavePlan(path, plan); err != nil {
		t.Fatal(err)
	}
	// First save: nothing to back up yet.
	backups, err := ListBackups(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups after first save, got %d", len(backups))
	}

	plan.Name = "Hall 3 rev 2"
	if err := SavePlan(path, plan); err != nil {
		t.Fatal(err)
	}
	backups, err = ListBackups(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup after second save, got %d", len(backups))
	}

	// The backup holds the pre-overwrite version.
	old, err := LoadPlan(backups[0])
	if err != nil {
		t.Fatal(err)
	}
	if old.Name != "Hall 3" {
		t.Errorf("backup holds wrong revision: %q", old.Name)
	}
}

func TestAppConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := model.DefaultAppConfig()
	cfg.AnalysisEndpoint = "http://localhost:9090/analyze"
	cfg.AddRecentPlan("/plans/a.json")
	cfg.AddRecentPlan("/plans/b.json")
	cfg.AddRecentPlan("/plans/a.json") // dedup, moves to front

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := LoadAppConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.AnalysisEndpoint != cfg.AnalysisEndpoint {
		t.Errorf("endpoint mismatch: %q", got.AnalysisEndpoint)
	}
	if len(got.RecentPlans) != 2 || got.RecentPlans[0] != "/plans/a.json" {
		t.Errorf("unexpected recent plans: %v", got.RecentPlans)
	}
}

func TestLoadAppConfigMissingReturnsDefaults(t *testing.T) {
	got, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatal(err)
	}
	want := model.DefaultAppConfig()
	if got.DefaultBoothWidth != want.DefaultBoothWidth || got.Theme != want.Theme {
		t.Errorf("expected defaults, got %+v", got)
	}
}
