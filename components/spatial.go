// Package components defines the entity model shared by the simulation,
// presentation and telemetry layers.
package components

// Vec2 is a point or direction in playfield coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in playfield coordinates.
// X and Y are the top-left corner; Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Intersects reports whether r and o overlap on both axes.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// RectanglesIntersect is the free-function form of Rect.Intersects.
func RectanglesIntersect(a, b Rect) bool {
	return a.Intersects(b)
}
