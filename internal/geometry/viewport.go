package geometry

import "github.com/expofloor/boothplan/internal/model"

// ToWorld converts screen-space pointer coordinates into world space
// under the viewport's pan and zoom.
func ToWorld(v model.Viewport, sx, sy float64) (float64, float64) {
	return (sx - v.PanX) / v.Scale, (sy - v.PanY) / v.Scale
}

// ToScreen converts world coordinates into screen space.
func ToScreen(v model.Viewport, wx, wy float64) (float64, float64) {
	return wx*v.Scale + v.PanX, wy*v.Scale + v.PanY
}

// ClampScale restricts a zoom factor to the supported range.
func ClampScale(s float64) float64 {
	if s < model.MinScale {
		return model.MinScale
	}
	if s > model.MaxScale {
		return model.MaxScale
	}
	return s
}

// ZoomAt rescales the viewport so the world point under the screen
// anchor stays under it after the zoom. The new scale is clamped.
func ZoomAt(v model.Viewport, anchorX, anchorY, newScale float64) model.Viewport {
	newScale = ClampScale(newScale)
	wx, wy := ToWorld(v, anchorX, anchorY)
	return model.Viewport{
		PanX:  anchorX - wx*newScale,
		PanY:  anchorY - wy*newScale,
		Scale: newScale,
	}
}
