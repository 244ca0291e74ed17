// Package geometry implements the pure 2D math for the floor-plan editor:
// rotated bounding boxes, overlap areas, polygon normalization, zone
// splitting, corner-anchored resize, and viewport mapping. All functions
// are side-effect free; zones are passed by value and new values returned.
package geometry

import (
	"math"

	"github.com/expofloor/boothplan/internal/model"
)

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether the world point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x <= r.Right() && y <= r.Bottom()
}

// RotateVector applies the standard 2D rotation matrix to (x, y).
func RotateVector(x, y, radians float64) (float64, float64) {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return x*cos - y*sin, x*sin + y*cos
}

// AxisAlignedBounds returns the axis-aligned bounding box of the zone's
// rotated rectangle. For unrotated zones this is the zone rect itself;
// otherwise the box is widened to w*|cos|+h*|sin| by w*|sin|+h*|cos|
// around the unchanged center. The result over-approximates the rotated
// hull, which is acceptable for the overlap heuristics it feeds.
func AxisAlignedBounds(z model.Zone) Rect {
	if math.Mod(z.Rotation, 360) == 0 {
		return Rect{X: z.X, Y: z.Y, W: z.W, H: z.H}
	}
	rad := z.Rotation * math.Pi / 180
	cos := math.Abs(math.Cos(rad))
	sin := math.Abs(math.Sin(rad))
	w := z.W*cos + z.H*sin
	h := z.W*sin + z.H*cos
	c := z.Center()
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// CornerPositions returns the world positions of the zone's four rotated
// corners in the order top-left, top-right, bottom-right, bottom-left.
func CornerPositions(z model.Zone) [4]model.Point {
	rad := z.Rotation * math.Pi / 180
	c := z.Center()
	local := [4][2]float64{
		{-z.W / 2, -z.H / 2},
		{+z.W / 2, -z.H / 2},
		{+z.W / 2, +z.H / 2},
		{-z.W / 2, +z.H / 2},
	}
	var out [4]model.Point
	for i, l := range local {
		x, y := RotateVector(l[0], l[1], rad)
		out[i] = model.Point{X: c.X + x, Y: c.Y + y}
	}
	return out
}
