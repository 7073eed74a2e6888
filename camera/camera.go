// Package camera maps playfield coordinates onto a screen.
package camera

import (
	"math"

	"github.com/pthm-cable/pong/components"
)

// FitMode selects how the playfield is scaled into the viewport.
type FitMode uint8

const (
	// Letterbox scales both axes uniformly and centers the playfield,
	// leaving bars on the longer axis.
	Letterbox FitMode = iota
	// Stretch scales each axis independently to fill the viewport.
	Stretch
)

// Camera converts playfield coordinates to screen coordinates.
type Camera struct {
	// World dimensions (the playfield)
	WorldW, WorldH float64

	// Viewport dimensions (screen size, in pixels or terminal cells)
	ViewportW, ViewportH float64

	Mode FitMode

	// Derived on Resize
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

// New creates a camera and computes its initial transform.
func New(viewportW, viewportH, worldW, worldH float64, mode FitMode) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH, Mode: mode}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize updates the viewport and recomputes scale and offset.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	if c.WorldW <= 0 || c.WorldH <= 0 {
		c.ScaleX, c.ScaleY = 1, 1
		c.OffsetX, c.OffsetY = 0, 0
		return
	}

	sx := viewportW / c.WorldW
	sy := viewportH / c.WorldH
	if c.Mode == Stretch {
		c.ScaleX, c.ScaleY = sx, sy
		c.OffsetX, c.OffsetY = 0, 0
		return
	}

	s := math.Min(sx, sy)
	c.ScaleX, c.ScaleY = s, s
	c.OffsetX = (viewportW - c.WorldW*s) / 2
	c.OffsetY = (viewportH - c.WorldH*s) / 2
}

// WorldToScreen converts a playfield point to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return c.OffsetX + wx*c.ScaleX, c.OffsetY + wy*c.ScaleY
}

// ScreenToWorld converts a screen point to playfield coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return (sx - c.OffsetX) / c.ScaleX, (sy - c.OffsetY) / c.ScaleY
}

// RectToScreen converts a playfield rectangle to screen coordinates.
func (c *Camera) RectToScreen(r components.Rect) components.Rect {
	x, y := c.WorldToScreen(r.X, r.Y)
	return components.Rect{X: x, Y: y, W: r.W * c.ScaleX, H: r.H * c.ScaleY}
}

// Bounds returns the screen rectangle covered by the playfield.
func (c *Camera) Bounds() components.Rect {
	return c.RectToScreen(components.Rect{W: c.WorldW, H: c.WorldH})
}
