package geometry

import (
	"math"
	"testing"

	"github.com/expofloor/boothplan/internal/model"
)

func TestSplitRejectsBadInput(t *testing.T) {
	z := model.NewBooth("A", 0, 0, 100, 100)
	if _, err := Split(z, 1, SplitHorizontal); err == nil {
		t.Error("expected error for parts < 2")
	}

	poly := model.NewBooth("P", 0, 0, 100, 100)
	poly.Points = []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	if _, err := Split(poly, 2, SplitHorizontal); err == nil {
		t.Error("expected error for polygon zone")
	}
}

func TestSplitTwoHorizontal(t *testing.T) {
	z := model.NewBooth("A", 0, 0, 200, 200)
	children, err := Split(z, 2, SplitHorizontal)
	if err != nil {
		t.Fatal(err)
	}
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	want := []Rect{{X: 0, Y: 0, W: 100, H: 200}, {X: 100, Y: 0, W: 100, H: 200}}
	for i, c := range children {
		if math.Abs(c.X-want[i].X) > 1e-9 || math.Abs(c.Y-want[i].Y) > 1e-9 ||
			math.Abs(c.W-want[i].W) > 1e-9 || math.Abs(c.H-want[i].H) > 1e-9 {
			t.Errorf("child %d: expected %+v, got (%.1f,%.1f,%.1f,%.1f)", i, want[i], c.X, c.Y, c.W, c.H)
		}
	}
}

func TestSplitAreaConservation(t *testing.T) {
	for _, rot := range []float64{0, 45, 90, 180, 270} {
		for _, parts := range []int{2, 4, 6, 8} {
			for _, dir := range []SplitDirection{SplitHorizontal, SplitVertical} {
				z := model.NewBooth("A", 30, 40, 240, 120)
				z.Rotation = rot
				children, err := Split(z, parts, dir)
				if err != nil {
					t.Fatalf("rot %.0f parts %d %s: %v", rot, parts, dir, err)
				}
				if len(children) != parts {
					t.Fatalf("rot %.0f parts %d %s: got %d children", rot, parts, dir, len(children))
				}
				var sum float64
				for _, c := range children {
					sum += c.W * c.H
					if c.Rotation != rot {
						t.Errorf("child rotation changed: %.1f != %.1f", c.Rotation, rot)
					}
					if c.Locked {
						t.Error("children must not inherit the lock flag")
					}
					if c.ID == z.ID {
						t.Error("child must receive a fresh id")
					}
				}
				if math.Abs(sum-z.W*z.H) > 1e-6 {
					t.Errorf("rot %.0f parts %d %s: area sum %.4f != %.4f", rot, parts, dir, sum, z.W*z.H)
				}
			}
		}
	}
}

func TestSplitQuarterTurnSwapsAxis(t *testing.T) {
	// At 90 degrees the local width runs visually vertical, so a
	// vertical split must divide the local width.
	z := model.NewBooth("A", 0, 0, 200, 100)
	z.Rotation = 90
	children, err := Split(z, 2, SplitVertical)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(children[0].W-100) > 1e-9 || math.Abs(children[0].H-100) > 1e-9 {
		t.Errorf("expected local 100x100 children, got %.1fx%.1f", children[0].W, children[0].H)
	}

	// And a horizontal split at 90 degrees divides the local height.
	children, err = Split(z, 2, SplitHorizontal)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(children[0].W-200) > 1e-9 || math.Abs(children[0].H-50) > 1e-9 {
		t.Errorf("expected local 200x50 children, got %.1fx%.1f", children[0].W, children[0].H)
	}
}

func TestSplitChildrenTileTheParent(t *testing.T) {
	// Children's rotated corners must stay inside the parent's bounds
	// and adjacent children must share edges (no gaps along the axis).
	z := model.NewBooth("A", 0, 0, 300, 90)
	z.Rotation = 45
	children, err := Split(z, 3, SplitHorizontal)
	if err != nil {
		t.Fatal(err)
	}
	pb := AxisAlignedBounds(z)
	for i, c := range children {
		cb := AxisAlignedBounds(c)
		if cb.X < pb.X-1e-6 || cb.Y < pb.Y-1e-6 ||
			cb.Right() > pb.Right()+1e-6 || cb.Bottom() > pb.Bottom()+1e-6 {
			t.Errorf("child %d bounds %+v escape parent %+v", i, cb, pb)
		}
	}
	// Adjacent child centers are exactly one child-width apart along the
	// rotated axis.
	for i := 1; i < len(children); i++ {
		a, b := children[i-1].Center(), children[i].Center()
		dist := math.Hypot(b.X-a.X, b.Y-a.Y)
		if math.Abs(dist-100) > 1e-6 {
			t.Errorf("children %d-%d spacing %.4f, expected 100", i-1, i, dist)
		}
	}
}

func TestSplitDividesManualArea(t *testing.T) {
	z := model.NewBooth("A", 0, 0, 200, 100)
	z.UseManualArea = true
	z.ManualArea = 1000
	children, err := Split(z, 4, SplitHorizontal)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range children {
		if !c.UseManualArea || math.Abs(c.ManualArea-250) > 1e-9 {
			t.Errorf("expected manual area 250, got %.2f", c.ManualArea)
		}
	}
}
