package editor

import (
	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"
)

// Mode is the current interaction state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDraggingMove
	ModeDraggingResize
	ModePanning
	ModeDraggingBackground
	ModeDrawingPolygon
)

// DragOp identifies what an active drag session manipulates.
type DragOp int

const (
	OpMove DragOp = iota
	OpResize
	OpPan
	OpBackgroundMove
)

// DragSession is the ephemeral record of an in-progress drag. It exists
// only between pointer-down and pointer-up and is never persisted.
// Snapshots hold the pointer-down geometry of every affected zone so
// each pointer-move recomputes from the start state; coalesced or
// out-of-order move events therefore cannot accumulate drift.
type DragSession struct {
	Op     DragOp
	StartX float64 // pointer-down screen position
	StartY float64

	Anchor    geometry.Corner       // resize handle corner, fixed for the session
	Snapshots map[string]model.Zone // zone id -> pointer-down geometry

	ViewportStart   model.Viewport
	BackgroundStart *model.Background
}

// State is the complete editor state. It is a plain value: Dispatch
// never mutates its input, so states can be kept for undo or replayed
// in tests.
type State struct {
	Plan      model.Plan
	Viewport  model.Viewport
	Selection []string
	Mode      Mode
	Drag      *DragSession

	// In-progress polygon vertices in world coordinates.
	DrawPoints []model.Point

	// When set, the next empty-canvas drag moves the background image
	// instead of panning.
	BackgroundMove bool
}

// NewState returns an idle editor over an empty plan.
func NewState() State {
	return State{
		Plan:     model.NewPlan(),
		Viewport: model.DefaultViewport(),
	}
}

// Selected reports whether the zone id is in the selection set.
func (s State) Selected(id string) bool {
	for _, sel := range s.Selection {
		if sel == id {
			return true
		}
	}
	return false
}

// SelectedZones resolves the selection against the plan, skipping stale ids.
func (s State) SelectedZones() []model.Zone {
	var out []model.Zone
	for _, z := range s.Plan.Items {
		if s.Selected(z.ID) {
			out = append(out, z)
		}
	}
	return out
}

// withItems returns a copy of the state with a fresh Items slice, so
// reducer branches can mutate zones without aliasing the input state.
func (s State) withItems() State {
	items := make([]model.Zone, len(s.Plan.Items))
	copy(items, s.Plan.Items)
	s.Plan.Items = items
	return s
}
