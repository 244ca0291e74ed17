package geometry

import (
	"math"

	"github.com/expofloor/boothplan/internal/model"
)

// Corner identifies a rectangle corner in local (unrotated) orientation.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// Opposite returns the diagonally opposed corner, which stays fixed in
// world space during a resize.
func (c Corner) Opposite() Corner {
	return (c + 2) % 4
}

// localOffset is the corner's position relative to the rectangle center
// before rotation.
func (c Corner) localOffset(w, h float64) (float64, float64) {
	switch c {
	case CornerTopLeft:
		return -w / 2, -h / 2
	case CornerTopRight:
		return w / 2, -h / 2
	case CornerBottomRight:
		return w / 2, h / 2
	default:
		return -w / 2, h / 2
	}
}

// DragCorner picks the resize handle for a zone: the corner whose world
// position lies closest to the screen's bottom-right, so the rendered
// handle matches the corner the user intuitively grabs. Chosen once at
// drag start and held for the whole session.
func DragCorner(z model.Zone) Corner {
	corners := CornerPositions(z)
	best := CornerBottomRight
	bestVal := math.Inf(-1)
	for i, p := range corners {
		if v := p.X + p.Y; v > bestVal {
			bestVal = v
			best = Corner(i)
		}
	}
	return best
}

// Resize recomputes a zone's geometry from its pointer-down snapshot and
// an accumulated world-space drag delta, holding the corner opposite the
// dragged one fixed in world space. The dragged corner follows the
// pointer under the zone's rotation; width and height snap to the grid
// with a one-grid-unit floor. Rotation is never altered.
func Resize(start model.Zone, dragged Corner, dx, dy float64) model.Zone {
	rad := start.Rotation * math.Pi / 180
	corners := CornerPositions(start)
	fixed := corners[dragged.Opposite()]
	live := model.Point{
		X: corners[dragged].X + dx,
		Y: corners[dragged].Y + dy,
	}

	// Express the fixed-to-live diagonal in the rectangle's own frame.
	vx := live.X - fixed.X
	vy := live.Y - fixed.Y
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	localW := vx*cos + vy*sin
	localH := -vx*sin + vy*cos

	// Sign convention: growth is positive away from the fixed corner.
	if dragged == CornerTopLeft || dragged == CornerBottomLeft {
		localW = -localW
	}
	if dragged == CornerTopLeft || dragged == CornerTopRight {
		localH = -localH
	}

	newW := model.SnapSize(localW)
	newH := model.SnapSize(localH)

	// Rebuild the center from the fixed corner, which must not move.
	ox, oy := dragged.Opposite().localOffset(newW, newH)
	rx, ry := RotateVector(ox, oy, rad)
	cx := fixed.X - rx
	cy := fixed.Y - ry

	out := start.Clone()
	out.W = newW
	out.H = newH
	out.X = cx - newW/2
	out.Y = cy - newH/2
	return out
}
