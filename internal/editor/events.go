// Package editor implements the interaction state machine of the plan
// editor as a pure reducer: Dispatch consumes one input event and the
// current state and returns the next state. All geometry work is
// delegated to the geometry package; the reducer owns policy only
// (selection, locking, drag sessions, mode transitions).
package editor

import "github.com/expofloor/boothplan/internal/geometry"

// EventType enumerates the discrete inputs the reducer understands.
type EventType int

const (
	// Pointer events carry screen coordinates.
	PointerDown EventType = iota
	PointerMove
	PointerUp
	DoubleTap

	// Scroll carries a multiplicative zoom factor and the screen anchor.
	Scroll

	// KeyDown carries a key name (fyne key naming).
	KeyDown

	// Editing commands issued by menus and toolbars.
	EnterDrawMode
	AddBooth
	AddPillar
	SplitSelection
	DuplicateSelection
	ToggleLock
	ToggleBackgroundMove
)

// Key names handled by the reducer.
const (
	KeyEscape     = "Escape"
	KeyReturn     = "Return"
	KeyEnter      = "Enter"
	KeyDelete     = "Delete"
	KeyBackspace  = "BackSpace"
	KeyArrowUp    = "Up"
	KeyArrowDown  = "Down"
	KeyArrowLeft  = "Left"
	KeyArrowRight = "Right"
)

// Event is one discrete input to Dispatch.
type Event struct {
	Type EventType

	// Pointer / scroll position in screen coordinates.
	X, Y float64

	// Key is set for KeyDown events.
	Key string

	// Fast marks a held modifier: additive selection on pointer-down,
	// ten-unit nudges on arrow keys.
	Fast bool

	// ZoomFactor multiplies the current scale for Scroll events.
	ZoomFactor float64

	// Split parameters for SplitSelection.
	Parts     int
	Direction geometry.SplitDirection

	// New zone size for AddBooth / AddPillar.
	W, H float64
}
