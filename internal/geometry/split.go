package geometry

import (
	"fmt"
	"math"

	"github.com/expofloor/boothplan/internal/model"

	"github.com/google/uuid"
)

// SplitDirection selects the visual axis a split runs along.
type SplitDirection int

const (
	SplitHorizontal SplitDirection = iota // children side by side
	SplitVertical                         // children stacked
)

func (d SplitDirection) String() string {
	if d == SplitVertical {
		return "vertical"
	}
	return "horizontal"
}

// quarterTurned reports whether the rotation is an odd multiple of 90
// degrees, which swaps the visual meaning of the local width and height.
func quarterTurned(rotation float64) bool {
	r := math.Mod(rotation, 180)
	if r < 0 {
		r += 180
	}
	return math.Abs(r-90) < 1e-9
}

// Split partitions a rectangular zone into parts equal children along a
// rotation-aware axis. Children keep the parent's rotation and cosmetic
// fields, receive fresh ids, and are never locked. The children's
// combined local area equals the parent's exactly; no grid snapping is
// applied here.
func Split(z model.Zone, parts int, dir SplitDirection) ([]model.Zone, error) {
	if parts < 2 {
		return nil, fmt.Errorf("split requires at least 2 parts, got %d", parts)
	}
	if z.IsPolygon() {
		return nil, fmt.Errorf("cannot split polygon zone %s", z.ID)
	}

	// When the zone is quarter-turned its local width runs visually
	// vertical, so the requested direction maps to the other local axis.
	alongWidth := dir == SplitHorizontal
	if quarterTurned(z.NormalizedRotation()) {
		alongWidth = dir == SplitVertical
	}

	childW, childH := z.W, z.H
	if alongWidth {
		childW = z.W / float64(parts)
	} else {
		childH = z.H / float64(parts)
	}

	rad := z.Rotation * math.Pi / 180
	parent := z.Center()

	children := make([]model.Zone, 0, parts)
	for i := 0; i < parts; i++ {
		// Local-space offset of this child's center from the parent's.
		var lx, ly float64
		if alongWidth {
			lx = float64(i)*childW + childW/2 - z.W/2
		} else {
			ly = float64(i)*childH + childH/2 - z.H/2
		}
		dx, dy := RotateVector(lx, ly, rad)

		c := z.Clone()
		c.ID = uuid.New().String()[:8]
		c.W = childW
		c.H = childH
		c.X = parent.X + dx - childW/2
		c.Y = parent.Y + dy - childH/2
		c.Locked = false
		if z.UseManualArea {
			c.ManualArea = z.ManualArea / float64(parts)
		}
		children = append(children, c)
	}
	return children, nil
}
