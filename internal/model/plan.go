package model

// Viewport maps world coordinates to screen coordinates:
// screen = world*Scale + Pan.
type Viewport struct {
	PanX  float64 `json:"pan_x"`
	PanY  float64 `json:"pan_y"`
	Scale float64 `json:"scale"`
}

// Viewport scale limits. Zooming clamps into this range to avoid
// degenerate transforms.
const (
	MinScale = 0.1
	MaxScale = 5.0
)

// DefaultViewport returns the identity view: no pan, 1:1 scale.
func DefaultViewport() Viewport {
	return Viewport{Scale: 1.0}
}

// Background references an optional floor-plan image drawn under the zones.
type Background struct {
	Path   string  `json:"path"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Locked bool    `json:"locked"`
}

// Plan is the persistence record for a floor plan: the zone collection,
// an optional background image, and the world-unit-to-centimeter scale.
type Plan struct {
	Name       string      `json:"name"`
	Items      []Zone      `json:"items"`
	Background *Background `json:"background,omitempty"`
	ScaleRatio float64     `json:"scale_ratio"` // centimeters per world unit
}

// NewPlan returns an empty plan with a 1:1 scale ratio.
func NewPlan() Plan {
	return Plan{
		Name:       "Untitled",
		Items:      []Zone{},
		ScaleRatio: 1.0,
	}
}

// FindZone returns a pointer to the zone with the given id, or nil.
func (p *Plan) FindZone(id string) *Zone {
	for i := range p.Items {
		if p.Items[i].ID == id {
			return &p.Items[i]
		}
	}
	return nil
}

// Booths returns the booth zones in plan order.
func (p Plan) Booths() []Zone {
	var out []Zone
	for _, z := range p.Items {
		if z.Kind == KindBooth {
			out = append(out, z)
		}
	}
	return out
}

// Pillars returns the pillar zones in plan order.
func (p Plan) Pillars() []Zone {
	var out []Zone
	for _, z := range p.Items {
		if z.Kind == KindPillar {
			out = append(out, z)
		}
	}
	return out
}
