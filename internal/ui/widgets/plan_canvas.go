// Package widgets contains the custom Fyne canvas widgets of the plan
// editor.
package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/expofloor/boothplan/internal/editor"
	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"
)

// Zone colors — booths cycle through these for visual distinction.
var zoneColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

var (
	pillarFill    = color.NRGBA{R: 120, G: 120, B: 120, A: 220}
	wallColor     = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	selectColor   = color.NRGBA{R: 255, G: 87, B: 34, A: 255}
	lockedOutline = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	gridColor     = color.NRGBA{R: 0, G: 0, B: 0, A: 18}
	drawColor     = color.NRGBA{R: 3, G: 169, B: 244, A: 255}
)

const (
	handleSizePx = 8
	zoomStep     = 1.1
)

// PlanCanvas is the interactive floor-plan surface. It owns an editor
// state and forwards every pointer, scroll, and key input to the
// reducer, then redraws from the resulting state.
type PlanCanvas struct {
	widget.BaseWidget

	State    editor.State
	ShowGrid bool

	// OnChange fires after every dispatched event with the new state.
	OnChange func(editor.State)

	lastX, lastY float64
	shiftHeld    bool
	size         fyne.Size
}

// Compile-time checks for the interaction interfaces Fyne dispatches on.
var (
	_ desktop.Mouseable   = (*PlanCanvas)(nil)
	_ desktop.Keyable     = (*PlanCanvas)(nil)
	_ fyne.Draggable      = (*PlanCanvas)(nil)
	_ fyne.DoubleTappable = (*PlanCanvas)(nil)
	_ fyne.Scrollable     = (*PlanCanvas)(nil)
)

func NewPlanCanvas(state editor.State) *PlanCanvas {
	pc := &PlanCanvas{State: state, ShowGrid: true}
	pc.ExtendBaseWidget(pc)
	return pc
}

// SetState replaces the editor state wholesale (load, undo) and redraws.
func (pc *PlanCanvas) SetState(state editor.State) {
	pc.State = state
	pc.Refresh()
}

// Dispatch runs one event through the reducer and redraws.
func (pc *PlanCanvas) Dispatch(ev editor.Event) {
	pc.State = editor.Dispatch(pc.State, ev)
	pc.Refresh()
	if pc.OnChange != nil {
		pc.OnChange(pc.State)
	}
}

func (pc *PlanCanvas) MouseDown(e *desktop.MouseEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(pc); c != nil {
		c.Focus(pc)
	}
	pc.lastX, pc.lastY = float64(e.Position.X), float64(e.Position.Y)
	pc.Dispatch(editor.Event{
		Type: editor.PointerDown,
		X:    pc.lastX,
		Y:    pc.lastY,
		Fast: e.Modifier&fyne.KeyModifierShift != 0,
	})
}

func (pc *PlanCanvas) MouseUp(e *desktop.MouseEvent) {
	pc.Dispatch(editor.Event{
		Type: editor.PointerUp,
		X:    float64(e.Position.X),
		Y:    float64(e.Position.Y),
	})
}

func (pc *PlanCanvas) Dragged(e *fyne.DragEvent) {
	pc.lastX, pc.lastY = float64(e.Position.X), float64(e.Position.Y)
	pc.Dispatch(editor.Event{Type: editor.PointerMove, X: pc.lastX, Y: pc.lastY})
}

func (pc *PlanCanvas) DragEnd() {
	pc.Dispatch(editor.Event{Type: editor.PointerUp, X: pc.lastX, Y: pc.lastY})
}

func (pc *PlanCanvas) DoubleTapped(e *fyne.PointEvent) {
	pc.Dispatch(editor.Event{
		Type: editor.DoubleTap,
		X:    float64(e.Position.X),
		Y:    float64(e.Position.Y),
	})
}

func (pc *PlanCanvas) Scrolled(e *fyne.ScrollEvent) {
	factor := zoomStep
	if e.Scrolled.DY < 0 {
		factor = 1 / zoomStep
	}
	pc.Dispatch(editor.Event{
		Type:       editor.Scroll,
		X:          float64(e.Position.X),
		Y:          float64(e.Position.Y),
		ZoomFactor: factor,
	})
}

func (pc *PlanCanvas) FocusGained() {}
func (pc *PlanCanvas) FocusLost()   { pc.shiftHeld = false }

func (pc *PlanCanvas) TypedRune(r rune) {}

func (pc *PlanCanvas) TypedKey(e *fyne.KeyEvent) {
	key := mapKeyName(e.Name)
	if key == "" {
		return
	}
	pc.Dispatch(editor.Event{Type: editor.KeyDown, Key: key, Fast: pc.shiftHeld})
}

func (pc *PlanCanvas) KeyDown(e *fyne.KeyEvent) {
	if e.Name == desktop.KeyShiftLeft || e.Name == desktop.KeyShiftRight {
		pc.shiftHeld = true
	}
}

func (pc *PlanCanvas) KeyUp(e *fyne.KeyEvent) {
	if e.Name == desktop.KeyShiftLeft || e.Name == desktop.KeyShiftRight {
		pc.shiftHeld = false
	}
}

// mapKeyName translates Fyne key names to the reducer's key strings.
func mapKeyName(name fyne.KeyName) string {
	switch name {
	case fyne.KeyEscape:
		return editor.KeyEscape
	case fyne.KeyReturn:
		return editor.KeyReturn
	case fyne.KeyEnter:
		return editor.KeyEnter
	case fyne.KeyDelete:
		return editor.KeyDelete
	case fyne.KeyBackspace:
		return editor.KeyBackspace
	case fyne.KeyUp:
		return editor.KeyArrowUp
	case fyne.KeyDown:
		return editor.KeyArrowDown
	case fyne.KeyLeft:
		return editor.KeyArrowLeft
	case fyne.KeyRight:
		return editor.KeyArrowRight
	}
	return ""
}

func (pc *PlanCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newPlanCanvasRenderer(pc)
}

type planCanvasRenderer struct {
	pc      *PlanCanvas
	objects []fyne.CanvasObject
}

func newPlanCanvasRenderer(pc *PlanCanvas) *planCanvasRenderer {
	r := &planCanvasRenderer{pc: pc}
	r.rebuild()
	return r
}

func (r *planCanvasRenderer) rebuild() {
	r.objects = nil
	st := r.pc.State
	vp := st.Viewport

	bg := canvas.NewRectangle(color.NRGBA{R: 250, G: 250, B: 250, A: 255})
	bg.Resize(r.pc.size)
	r.objects = append(r.objects, bg)

	if img := st.Plan.Background; img != nil && img.Path != "" {
		r.drawBackground(img, vp)
	}
	if r.pc.ShowGrid {
		r.drawGrid(vp)
	}

	// Pillars under booths so intrusions stay visible.
	for _, z := range st.Plan.Items {
		if z.Kind == model.KindPillar {
			r.drawZone(z, pillarFill, st)
		}
	}
	boothIdx := 0
	for _, z := range st.Plan.Items {
		if z.Kind != model.KindBooth {
			continue
		}
		r.drawZone(z, zoneColors[boothIdx%len(zoneColors)], st)
		boothIdx++
	}

	if st.Mode == editor.ModeDrawingPolygon {
		r.drawPolygonDraft(st.DrawPoints, vp)
	}
}

func (r *planCanvasRenderer) drawBackground(img *model.Background, vp model.Viewport) {
	x, y := geometry.ToScreen(vp, img.X, img.Y)
	image := canvas.NewImageFromFile(img.Path)
	image.FillMode = canvas.ImageFillStretch
	image.Translucency = 0.3
	image.Move(fyne.NewPos(float32(x), float32(y)))
	image.Resize(fyne.NewSize(float32(img.W*vp.Scale), float32(img.H*vp.Scale)))
	r.objects = append(r.objects, image)
}

func (r *planCanvasRenderer) drawGrid(vp model.Viewport) {
	step := float32(model.GridUnit * vp.Scale)
	if step < 8 {
		return // too dense to be useful
	}
	w, h := r.pc.size.Width, r.pc.size.Height
	startX, startY := geometry.ToScreen(vp, 0, 0)
	for x := float32(mod(startX, float64(step))); x < w; x += step {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(x, 0)
		line.Position2 = fyne.NewPos(x, h)
		r.objects = append(r.objects, line)
	}
	for y := float32(mod(startY, float64(step))); y < h; y += step {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(w, y)
		r.objects = append(r.objects, line)
	}
}

// mod wraps v into [0, step).
func mod(v, step float64) float64 {
	for v < 0 {
		v += step
	}
	for v >= step {
		v -= step
	}
	return v
}

// drawZone renders one zone: translucent fill for axis-aligned rects,
// wall lines on closed edges, selection outline and resize handles.
func (r *planCanvasRenderer) drawZone(z model.Zone, fill color.NRGBA, st editor.State) {
	vp := st.Viewport
	selected := st.Selected(z.ID)

	var outline []fyne.Position
	var openEdge []bool

	if z.IsPolygon() {
		world := z.WorldPoints()
		for i, p := range world {
			sx, sy := geometry.ToScreen(vp, p.X, p.Y)
			outline = append(outline, fyne.NewPos(float32(sx), float32(sy)))
			openEdge = append(openEdge, z.EdgeOpen(i))
		}
	} else {
		corners := geometry.CornerPositions(z)
		for _, p := range corners {
			sx, sy := geometry.ToScreen(vp, p.X, p.Y)
			outline = append(outline, fyne.NewPos(float32(sx), float32(sy)))
		}
		// Corner order is TL,TR,BR,BL, so edges run top,right,bottom,left.
		top, bottom, left, right := z.Opening.OpenWalls()
		openEdge = []bool{top, right, bottom, left}

		// Fyne has no filled-polygon primitive, so only unrotated
		// rectangles get a fill; rotated ones render as outlines.
		if z.NormalizedRotation() == 0 {
			sx, sy := geometry.ToScreen(vp, z.X, z.Y)
			rect := canvas.NewRectangle(fill)
			rect.Move(fyne.NewPos(float32(sx), float32(sy)))
			rect.Resize(fyne.NewSize(float32(z.W*vp.Scale), float32(z.H*vp.Scale)))
			r.objects = append(r.objects, rect)
		}
	}

	for i := range outline {
		j := (i + 1) % len(outline)
		var col color.NRGBA
		var width float32
		switch {
		case selected:
			col, width = selectColor, 2.5
		case z.Locked:
			col, width = lockedOutline, 1.5
		case openEdge[i]:
			continue // open wall: no line
		default:
			col, width = wallColor, 1.5
		}
		line := canvas.NewLine(col)
		line.StrokeWidth = width
		line.Position1 = outline[i]
		line.Position2 = outline[j]
		r.objects = append(r.objects, line)
	}

	if z.Label != "" {
		sx, sy := geometry.ToScreen(vp, z.Center().X, z.Center().Y)
		label := canvas.NewText(z.Label, wallColor)
		label.TextSize = 11
		label.Alignment = fyne.TextAlignCenter
		label.Move(fyne.NewPos(float32(sx)-40, float32(sy)-8))
		label.Resize(fyne.NewSize(80, 16))
		r.objects = append(r.objects, label)
	}

	// Only the drag corner is hit-tested for resize, so only that
	// corner gets a handle.
	if selected && !z.Locked && !z.IsPolygon() {
		p := outline[geometry.DragCorner(z)]
		handle := canvas.NewRectangle(selectColor)
		handle.Move(fyne.NewPos(p.X-handleSizePx/2, p.Y-handleSizePx/2))
		handle.Resize(fyne.NewSize(handleSizePx, handleSizePx))
		r.objects = append(r.objects, handle)
	}
}

// drawPolygonDraft shows the in-progress polygon while drawing.
func (r *planCanvasRenderer) drawPolygonDraft(points []model.Point, vp model.Viewport) {
	var screen []fyne.Position
	for _, p := range points {
		sx, sy := geometry.ToScreen(vp, p.X, p.Y)
		screen = append(screen, fyne.NewPos(float32(sx), float32(sy)))
	}
	for i := 0; i+1 < len(screen); i++ {
		line := canvas.NewLine(drawColor)
		line.StrokeWidth = 2
		line.Position1 = screen[i]
		line.Position2 = screen[i+1]
		r.objects = append(r.objects, line)
	}
	for _, p := range screen {
		dot := canvas.NewCircle(drawColor)
		dot.Move(fyne.NewPos(p.X-3, p.Y-3))
		dot.Resize(fyne.NewSize(6, 6))
		r.objects = append(r.objects, dot)
	}
}

func (r *planCanvasRenderer) Layout(size fyne.Size) {
	r.pc.size = size
	r.rebuild()
}

func (r *planCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *planCanvasRenderer) Destroy()                     {}
func (r *planCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *planCanvasRenderer) MinSize() fyne.Size           { return fyne.NewSize(600, 400) }
