package model

import (
	"math"

	"github.com/google/uuid"
)

// World-space defaults. All implicit fallbacks for optional fields live
// here rather than inside the geometry code.
const (
	// GridUnit is the snapping increment for zone position and size.
	GridUnit = 5.0

	// MinZoneSize is the smallest width or height a zone may have.
	MinZoneSize = GridUnit

	// NudgeStep is the arrow-key movement distance in world units.
	NudgeStep = 1.0

	// NudgeStepFast is the arrow-key movement distance with a modifier held.
	NudgeStepFast = 10.0

	// DefaultRotation is applied when a stored zone omits its rotation.
	DefaultRotation = 0.0
)

// ZoneKind distinguishes sellable booths from structural pillars.
type ZoneKind string

const (
	KindBooth  ZoneKind = "booth"
	KindPillar ZoneKind = "pillar"
)

// BoothOpening enumerates the wall configurations of a rectangular booth.
// The open sides carry no wall when rendered or exported.
type BoothOpening string

const (
	OpeningClosed    BoothOpening = "closed"    // walls on all four sides
	OpeningRow       BoothOpening = "row"       // front open (standard aisle booth)
	OpeningCorner    BoothOpening = "corner"    // front and one side open
	OpeningPeninsula BoothOpening = "peninsula" // open on three sides
	OpeningIsland    BoothOpening = "island"    // free-standing, no walls
)

// OpenWalls reports which rectangle walls are omitted for the opening,
// in local (unrotated) orientation.
func (o BoothOpening) OpenWalls() (top, bottom, left, right bool) {
	switch o {
	case OpeningRow:
		return false, true, false, false
	case OpeningCorner:
		return false, true, false, true
	case OpeningPeninsula:
		return false, true, true, true
	case OpeningIsland:
		return true, true, true, true
	default:
		return false, false, false, false
	}
}

// Point is a 2D coordinate. Depending on context the values are either
// world units or polygon-normalized fractions in [0,1].
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zone is a placed element of the floor plan: a booth or a pillar.
//
// X, Y locate the top-left corner of the unrotated local bounding box;
// W and H are the local width and height and are always positive.
// Rotation is stored in degrees and may be any real value.
//
// When Points is non-nil the zone is a polygon: each point is expressed
// relative to the bounding box, with both coordinates in [0,1]. A nil
// Points means an axis-aligned rectangle.
type Zone struct {
	ID       string   `json:"id"`
	Kind     ZoneKind `json:"kind"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	W        float64  `json:"w"`
	H        float64  `json:"h"`
	Rotation float64  `json:"rotation"`

	Points    []Point `json:"points,omitempty"`
	OpenEdges []int   `json:"open_edges,omitempty"` // polygon edge indices with no wall

	Opening BoothOpening `json:"opening,omitempty"`
	Locked  bool         `json:"locked"`

	UseManualArea bool    `json:"use_manual_area"`
	ManualArea    float64 `json:"manual_area"`

	// Cosmetic passthrough fields; the geometry core never reads these.
	Label     string  `json:"label"`
	Exhibitor string  `json:"exhibitor,omitempty"`
	FillColor string  `json:"fill_color,omitempty"`
	TextColor string  `json:"text_color,omitempty"`
	FontSize  float64 `json:"font_size,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// NewBooth creates a rectangular booth zone at the given position.
func NewBooth(label string, x, y, w, h float64) Zone {
	return Zone{
		ID:       uuid.New().String()[:8],
		Kind:     KindBooth,
		X:        x,
		Y:        y,
		W:        w,
		H:        h,
		Rotation: DefaultRotation,
		Opening:  OpeningRow,
		Label:    label,
	}
}

// NewPillar creates a rectangular pillar zone at the given position.
func NewPillar(x, y, w, h float64) Zone {
	return Zone{
		ID:       uuid.New().String()[:8],
		Kind:     KindPillar,
		X:        x,
		Y:        y,
		W:        w,
		H:        h,
		Rotation: DefaultRotation,
		Label:    "Pillar",
	}
}

// IsPolygon reports whether the zone uses a free-drawn outline.
func (z Zone) IsPolygon() bool {
	return len(z.Points) >= 3
}

// Center returns the world-space center of the local bounding box. The
// center is invariant under rotation.
func (z Zone) Center() Point {
	return Point{X: z.X + z.W/2, Y: z.Y + z.H/2}
}

// NormalizedRotation maps the stored rotation into [0, 360) for display
// and orientation decisions. Trigonometry uses the raw value.
func (z Zone) NormalizedRotation() float64 {
	r := math.Mod(z.Rotation, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// WorldPoints denormalizes the polygon outline into world coordinates.
// Returns nil for rectangle-mode zones.
func (z Zone) WorldPoints() []Point {
	if !z.IsPolygon() {
		return nil
	}
	pts := make([]Point, len(z.Points))
	for i, p := range z.Points {
		pts[i] = Point{X: z.X + p.X*z.W, Y: z.Y + p.Y*z.H}
	}
	return pts
}

// EdgeOpen reports whether polygon edge i (from point i to point i+1,
// wrapping) is marked open.
func (z Zone) EdgeOpen(i int) bool {
	for _, e := range z.OpenEdges {
		if e == i {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the zone with its own point and edge slices.
func (z Zone) Clone() Zone {
	c := z
	if z.Points != nil {
		c.Points = append([]Point(nil), z.Points...)
	}
	if z.OpenEdges != nil {
		c.OpenEdges = append([]int(nil), z.OpenEdges...)
	}
	return c
}

// SnapToGrid rounds a world value to the nearest grid unit.
func SnapToGrid(v float64) float64 {
	return math.Round(v/GridUnit) * GridUnit
}

// SnapSize rounds a size to the grid while enforcing the minimum zone size.
func SnapSize(v float64) float64 {
	s := SnapToGrid(v)
	if s < MinZoneSize {
		return MinZoneSize
	}
	return s
}
