package widgets

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"github.com/expofloor/boothplan/internal/editor"
	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"
)

func selectedBoothState(z model.Zone) editor.State {
	s := editor.NewState()
	s.Plan.Items = []model.Zone{z}
	s.Selection = []string{z.ID}
	return s
}

// handleRects returns the 8x8 handle rectangles in the renderer output.
func handleRects(r fyne.WidgetRenderer) []*canvas.Rectangle {
	var handles []*canvas.Rectangle
	for _, o := range r.Objects() {
		rect, ok := o.(*canvas.Rectangle)
		if !ok {
			continue
		}
		if rect.Size().Width == handleSizePx && rect.Size().Height == handleSizePx {
			handles = append(handles, rect)
		}
	}
	return handles
}

func TestSelectionDrawsSingleResizeHandle(t *testing.T) {
	test.NewApp()

	z := model.NewBooth("A", 100, 100, 100, 50)
	pc := NewPlanCanvas(selectedBoothState(z))
	r := test.WidgetRenderer(pc)
	pc.Resize(fyne.NewSize(800, 600))

	handles := handleRects(r)
	if len(handles) != 1 {
		t.Fatalf("expected exactly one resize handle, got %d", len(handles))
	}

	// The handle sits on the corner the reducer hit-tests for resize.
	corner := geometry.CornerPositions(z)[geometry.DragCorner(z)]
	pos := handles[0].Position()
	wantX := float32(corner.X) - handleSizePx/2
	wantY := float32(corner.Y) - handleSizePx/2
	if pos.X != wantX || pos.Y != wantY {
		t.Errorf("handle at (%.1f,%.1f), want (%.1f,%.1f)", pos.X, pos.Y, wantX, wantY)
	}
}

func TestLockedSelectionDrawsNoHandle(t *testing.T) {
	test.NewApp()

	z := model.NewBooth("A", 100, 100, 100, 50)
	z.Locked = true
	pc := NewPlanCanvas(selectedBoothState(z))
	r := test.WidgetRenderer(pc)
	pc.Resize(fyne.NewSize(800, 600))

	if handles := handleRects(r); len(handles) != 0 {
		t.Errorf("locked zones must not show resize handles, got %d", len(handles))
	}
}
