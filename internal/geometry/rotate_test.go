package geometry

import (
	"math"
	"testing"

	"github.com/expofloor/boothplan/internal/model"
)

func TestAxisAlignedBoundsUnrotated(t *testing.T) {
	z := model.NewBooth("A", 10, 20, 100, 50)
	b := AxisAlignedBounds(z)
	if b.X != 10 || b.Y != 20 || b.W != 100 || b.H != 50 {
		t.Errorf("unrotated bounds should match zone rect, got %+v", b)
	}
}

func TestAxisAlignedBoundsQuarterTurn(t *testing.T) {
	z := model.NewBooth("A", 0, 0, 100, 50)
	z.Rotation = 90
	b := AxisAlignedBounds(z)

	// Width and height swap; center stays put.
	if math.Abs(b.W-50) > 1e-9 || math.Abs(b.H-100) > 1e-9 {
		t.Errorf("expected 50x100 bounds, got %.2fx%.2f", b.W, b.H)
	}
	if math.Abs(b.X+b.W/2-50) > 1e-9 || math.Abs(b.Y+b.H/2-25) > 1e-9 {
		t.Errorf("center moved: %+v", b)
	}
}

func TestAxisAlignedBoundsAreaNeverShrinks(t *testing.T) {
	z := model.NewBooth("A", 0, 0, 120, 80)
	original := z.W * z.H

	for _, rot := range []float64{0, 15, 30, 45, 90, 137, 180, 270, 300, 359} {
		z.Rotation = rot
		b := AxisAlignedBounds(z)
		area := b.W * b.H
		if area < original-1e-9 {
			t.Errorf("rotation %.0f: bounds area %.2f smaller than original %.2f", rot, area, original)
		}
		exact := math.Mod(rot, 90) == 0
		if exact && math.Abs(area-original) > 1e-6 {
			t.Errorf("rotation %.0f: expected exact area %.2f, got %.2f", rot, original, area)
		}
		if !exact && area <= original {
			t.Errorf("rotation %.0f: expected strictly larger bounds, got %.2f", rot, area)
		}
	}
}

func TestRotateVectorQuarterTurn(t *testing.T) {
	x, y := RotateVector(1, 0, math.Pi/2)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("expected (0,1), got (%.4f,%.4f)", x, y)
	}
}

func TestCornerPositionsUnrotated(t *testing.T) {
	z := model.NewBooth("A", 0, 0, 100, 60)
	c := CornerPositions(z)
	want := [4]model.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 60}, {X: 0, Y: 60}}
	for i := range c {
		if math.Abs(c[i].X-want[i].X) > 1e-9 || math.Abs(c[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("corner %d: expected %+v, got %+v", i, want[i], c[i])
		}
	}
}

func TestCornerPositionsRotationPreservesDiagonal(t *testing.T) {
	z := model.NewBooth("A", 10, 10, 80, 40)
	diag := math.Hypot(80, 40)
	for _, rot := range []float64{0, 30, 45, 90, 137, 215} {
		z.Rotation = rot
		c := CornerPositions(z)
		got := math.Hypot(c[2].X-c[0].X, c[2].Y-c[0].Y)
		if math.Abs(got-diag) > 1e-9 {
			t.Errorf("rotation %.0f: diagonal %.4f != %.4f", rot, got, diag)
		}
	}
}
