package editor

import (
	"fmt"
	"math"

	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"

	"github.com/google/uuid"
)

// Pointer tolerances in screen pixels; converted to world units at the
// current scale before hit tests.
const (
	handleRadiusPx    = 12.0
	closePolygonPx    = 10.0
	duplicateOffsetWU = model.GridUnit
)

// Dispatch advances the editor state by one input event. The input
// state is never mutated; the returned state shares unchanged slices
// with it.
func Dispatch(s State, e Event) State {
	switch e.Type {
	case PointerDown:
		return pointerDown(s, e)
	case PointerMove:
		return pointerMove(s, e)
	case PointerUp:
		return pointerUp(s)
	case DoubleTap:
		if s.Mode == ModeDrawingPolygon {
			return finalizePolygon(s)
		}
		return s
	case Scroll:
		if e.ZoomFactor == 0 {
			return s
		}
		s.Viewport = geometry.ZoomAt(s.Viewport, e.X, e.Y, s.Viewport.Scale*e.ZoomFactor)
		return s
	case KeyDown:
		return keyDown(s, e)
	case EnterDrawMode:
		s.Mode = ModeDrawingPolygon
		s.Drag = nil
		s.DrawPoints = nil
		return s
	case AddBooth, AddPillar:
		return addZone(s, e)
	case SplitSelection:
		return splitSelection(s, e)
	case DuplicateSelection:
		return duplicateSelection(s)
	case ToggleLock:
		return toggleLock(s)
	case ToggleBackgroundMove:
		s.BackgroundMove = !s.BackgroundMove
		return s
	default:
		return s
	}
}

// hitZone returns the topmost zone containing the world point, or nil.
func hitZone(s State, wx, wy float64) *model.Zone {
	for i := len(s.Plan.Items) - 1; i >= 0; i-- {
		if geometry.ZoneContains(s.Plan.Items[i], wx, wy) {
			return &s.Plan.Items[i]
		}
	}
	return nil
}

// nearHandle reports whether the world point is within handle tolerance
// of the zone's resize corner.
func nearHandle(s State, z model.Zone, wx, wy float64) bool {
	corner := geometry.CornerPositions(z)[geometry.DragCorner(z)]
	tol := handleRadiusPx / s.Viewport.Scale
	return math.Hypot(corner.X-wx, corner.Y-wy) <= tol
}

func pointerDown(s State, e Event) State {
	wx, wy := geometry.ToWorld(s.Viewport, e.X, e.Y)

	if s.Mode == ModeDrawingPolygon {
		return drawPoint(s, wx, wy)
	}

	// Any ambient session ends implicitly before a new one starts.
	s.Drag = nil

	if z := hitZone(s, wx, wy); z != nil {
		if !s.Selected(z.ID) {
			if e.Fast {
				s.Selection = append(append([]string(nil), s.Selection...), z.ID)
			} else {
				s.Selection = []string{z.ID}
			}
		}
		if z.Locked {
			// Locked zones can be selected but never dragged.
			return s
		}

		session := &DragSession{
			StartX:    e.X,
			StartY:    e.Y,
			Snapshots: map[string]model.Zone{},
		}
		if nearHandle(s, *z, wx, wy) {
			session.Op = OpResize
			session.Anchor = geometry.DragCorner(*z)
			session.Snapshots[z.ID] = z.Clone()
			s.Mode = ModeDraggingResize
		} else {
			session.Op = OpMove
			for _, sel := range s.SelectedZones() {
				if !sel.Locked {
					session.Snapshots[sel.ID] = sel.Clone()
				}
			}
			s.Mode = ModeDraggingMove
		}
		s.Drag = session
		return s
	}

	// Empty canvas: move the background when armed, otherwise pan.
	if !e.Fast {
		s.Selection = nil
	}
	if s.BackgroundMove && s.Plan.Background != nil && !s.Plan.Background.Locked {
		bg := *s.Plan.Background
		s.Drag = &DragSession{
			Op:              OpBackgroundMove,
			StartX:          e.X,
			StartY:          e.Y,
			BackgroundStart: &bg,
		}
		s.Mode = ModeDraggingBackground
		return s
	}
	s.Drag = &DragSession{
		Op:            OpPan,
		StartX:        e.X,
		StartY:        e.Y,
		ViewportStart: s.Viewport,
	}
	s.Mode = ModePanning
	return s
}

func pointerMove(s State, e Event) State {
	d := s.Drag
	if d == nil {
		return s
	}

	// Deltas always reference the pointer-down position.
	sdx := e.X - d.StartX
	sdy := e.Y - d.StartY
	wdx := sdx / s.Viewport.Scale
	wdy := sdy / s.Viewport.Scale

	switch d.Op {
	case OpPan:
		s.Viewport.PanX = d.ViewportStart.PanX + sdx
		s.Viewport.PanY = d.ViewportStart.PanY + sdy
		return s

	case OpBackgroundMove:
		bg := *d.BackgroundStart
		bg.X += wdx
		bg.Y += wdy
		s.Plan.Background = &bg
		return s

	case OpMove:
		s = s.withItems()
		for i := range s.Plan.Items {
			snap, ok := d.Snapshots[s.Plan.Items[i].ID]
			if !ok {
				continue
			}
			s.Plan.Items[i].X = model.SnapToGrid(snap.X + wdx)
			s.Plan.Items[i].Y = model.SnapToGrid(snap.Y + wdy)
		}
		return s

	case OpResize:
		s = s.withItems()
		for i := range s.Plan.Items {
			snap, ok := d.Snapshots[s.Plan.Items[i].ID]
			if !ok {
				continue
			}
			s.Plan.Items[i] = geometry.Resize(snap, d.Anchor, wdx, wdy)
		}
		return s
	}
	return s
}

func pointerUp(s State) State {
	s.Drag = nil
	if s.Mode != ModeDrawingPolygon {
		s.Mode = ModeIdle
	}
	return s
}

// cancelDrag restores every zone, the viewport, and the background to
// their pointer-down snapshots and drops the session.
func cancelDrag(s State) State {
	d := s.Drag
	if d == nil {
		return s
	}
	switch d.Op {
	case OpPan:
		s.Viewport = d.ViewportStart
	case OpBackgroundMove:
		bg := *d.BackgroundStart
		s.Plan.Background = &bg
	default:
		s = s.withItems()
		for i := range s.Plan.Items {
			if snap, ok := d.Snapshots[s.Plan.Items[i].ID]; ok {
				s.Plan.Items[i] = snap
			}
		}
	}
	s.Drag = nil
	s.Mode = ModeIdle
	return s
}

func keyDown(s State, e Event) State {
	switch e.Key {
	case KeyEscape:
		if s.Mode == ModeDrawingPolygon {
			// Drop the last point; exit draw mode when none remain.
			if len(s.DrawPoints) > 0 {
				s.DrawPoints = s.DrawPoints[:len(s.DrawPoints)-1]
				if len(s.DrawPoints) == 0 {
					s.Mode = ModeIdle
					s.DrawPoints = nil
				}
				return s
			}
			s.Mode = ModeIdle
			return s
		}
		return cancelDrag(s)

	case KeyReturn, KeyEnter:
		if s.Mode == ModeDrawingPolygon {
			return finalizePolygon(s)
		}
		return s

	case KeyDelete, KeyBackspace:
		return deleteSelection(s)

	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		return nudgeSelection(s, e)
	}
	return s
}

func nudgeSelection(s State, e Event) State {
	if len(s.Selection) == 0 {
		return s
	}
	step := model.NudgeStep
	if e.Fast {
		step = model.NudgeStepFast
	}
	var dx, dy float64
	switch e.Key {
	case KeyArrowUp:
		dy = -step
	case KeyArrowDown:
		dy = step
	case KeyArrowLeft:
		dx = -step
	case KeyArrowRight:
		dx = step
	}
	s = s.withItems()
	for i := range s.Plan.Items {
		z := &s.Plan.Items[i]
		if s.Selected(z.ID) && !z.Locked {
			z.X += dx
			z.Y += dy
		}
	}
	return s
}

func deleteSelection(s State) State {
	if len(s.Selection) == 0 {
		return s
	}
	var kept []model.Zone
	var sel []string
	for _, z := range s.Plan.Items {
		if s.Selected(z.ID) {
			if !z.Locked {
				continue
			}
			// Locked zones survive the delete and stay selected.
			sel = append(sel, z.ID)
		}
		kept = append(kept, z)
	}
	s.Plan.Items = kept
	s.Selection = sel
	return s
}

func drawPoint(s State, wx, wy float64) State {
	// Clicking near the first vertex closes the loop.
	if len(s.DrawPoints) >= 3 {
		first := s.DrawPoints[0]
		tol := closePolygonPx / s.Viewport.Scale
		if math.Hypot(first.X-wx, first.Y-wy) <= tol {
			return finalizePolygon(s)
		}
	}
	pts := append(append([]model.Point(nil), s.DrawPoints...), model.Point{X: wx, Y: wy})
	s.DrawPoints = pts
	return s
}

func finalizePolygon(s State) State {
	pts := s.DrawPoints
	s.DrawPoints = nil
	s.Mode = ModeIdle

	if len(pts) < 3 {
		return s
	}
	n := geometry.Normalize(pts)
	if n == nil {
		return s
	}

	z := model.Zone{
		ID:       uuid.New().String()[:8],
		Kind:     model.KindBooth,
		X:        n.X,
		Y:        n.Y,
		W:        n.W,
		H:        n.H,
		Rotation: model.DefaultRotation,
		Points:   n.Points,
		Label:    fmt.Sprintf("Booth %d", len(s.Plan.Booths())+1),
	}
	s = s.withItems()
	s.Plan.Items = append(s.Plan.Items, z)
	s.Selection = []string{z.ID}
	return s
}

func addZone(s State, e Event) State {
	wx, wy := geometry.ToWorld(s.Viewport, e.X, e.Y)
	w, h := e.W, e.H
	if w <= 0 {
		w = 12 * model.GridUnit
	}
	if h <= 0 {
		h = 8 * model.GridUnit
	}
	x := model.SnapToGrid(wx - w/2)
	y := model.SnapToGrid(wy - h/2)

	var z model.Zone
	if e.Type == AddPillar {
		z = model.NewPillar(x, y, w, h)
	} else {
		z = model.NewBooth(fmt.Sprintf("Booth %d", len(s.Plan.Booths())+1), x, y, w, h)
	}
	s = s.withItems()
	s.Plan.Items = append(s.Plan.Items, z)
	s.Selection = []string{z.ID}
	return s
}

func splitSelection(s State, e Event) State {
	if len(s.Selection) != 1 {
		return s
	}
	target := s.Plan.FindZone(s.Selection[0])
	if target == nil || target.Locked || target.IsPolygon() {
		return s
	}
	children, err := geometry.Split(*target, e.Parts, e.Direction)
	if err != nil {
		return s
	}

	s = s.withItems()
	var items []model.Zone
	var sel []string
	for _, z := range s.Plan.Items {
		if z.ID == target.ID {
			// Children take the parent's place in z-order.
			items = append(items, children...)
			for _, c := range children {
				sel = append(sel, c.ID)
			}
			continue
		}
		items = append(items, z)
	}
	s.Plan.Items = items
	s.Selection = sel
	return s
}

func duplicateSelection(s State) State {
	if len(s.Selection) == 0 {
		return s
	}
	s = s.withItems()
	var sel []string
	for _, z := range s.SelectedZones() {
		c := z.Clone()
		c.ID = uuid.New().String()[:8]
		c.X += duplicateOffsetWU
		c.Y += duplicateOffsetWU
		c.Locked = false
		s.Plan.Items = append(s.Plan.Items, c)
		sel = append(sel, c.ID)
	}
	s.Selection = sel
	return s
}

func toggleLock(s State) State {
	if len(s.Selection) == 0 {
		return s
	}
	s = s.withItems()
	for i := range s.Plan.Items {
		if s.Selected(s.Plan.Items[i].ID) {
			s.Plan.Items[i].Locked = !s.Plan.Items[i].Locked
		}
	}
	return s
}
