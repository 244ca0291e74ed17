package geometry

import (
	"math"

	"github.com/expofloor/boothplan/internal/model"
)

// NormalizedPolygon is the canonical representation of a free-drawn
// outline: a bounding box plus points expressed as fractions of it.
type NormalizedPolygon struct {
	X, Y, W, H float64
	Points     []model.Point
}

// Normalize converts a freehand sequence of world points into a
// unit-square-relative polygon plus its bounding box. Returns nil for
// empty input. Width and height are floored at 1 so collinear input
// cannot produce a degenerate zero-size zone; within that floor,
// Denormalize reconstructs the input exactly.
func Normalize(points []model.Point) *NormalizedPolygon {
	if len(points) == 0 {
		return nil
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	w := math.Max(1, maxX-minX)
	h := math.Max(1, maxY-minY)
	out := make([]model.Point, len(points))
	for i, p := range points {
		out[i] = model.Point{X: (p.X - minX) / w, Y: (p.Y - minY) / h}
	}
	return &NormalizedPolygon{X: minX, Y: minY, W: w, H: h, Points: out}
}

// Denormalize maps the relative points back into world coordinates.
func (n *NormalizedPolygon) Denormalize() []model.Point {
	out := make([]model.Point, len(n.Points))
	for i, p := range n.Points {
		out[i] = model.Point{X: p.X*n.W + n.X, Y: p.Y*n.H + n.Y}
	}
	return out
}

// PointInPolygon reports whether (x, y) lies inside the closed polygon
// using the even-odd ray-crossing rule.
func PointInPolygon(x, y float64, pts []model.Point) bool {
	if len(pts) < 3 {
		return false
	}
	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// ZoneContains reports whether the world point lies inside the zone,
// respecting rotation and polygon outlines. The point is transformed
// into the zone's local frame before testing.
func ZoneContains(z model.Zone, x, y float64) bool {
	c := z.Center()
	lx, ly := RotateVector(x-c.X, y-c.Y, -z.Rotation*math.Pi/180)
	lx += z.W / 2
	ly += z.H / 2
	if lx < 0 || ly < 0 || lx > z.W || ly > z.H {
		return false
	}
	if !z.IsPolygon() {
		return true
	}
	local := make([]model.Point, len(z.Points))
	for i, p := range z.Points {
		local[i] = model.Point{X: p.X * z.W, Y: p.Y * z.H}
	}
	return PointInPolygon(lx, ly, local)
}
