package components

import "math"

// Side identifies one half of the court.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Paddle is one player's bat.
// Velocity is vertical, in units per millisecond; positive moves up.
type Paddle struct {
	Side     Side
	Rect     Rect
	Velocity float64
	Score    int
	AI       bool
}

// Ball is the square ball. Rect is its bounding square.
// VelY is positive when moving up, matching the paddle convention.
type Ball struct {
	Rect   Rect
	Radius float64
	VelX   float64
	VelY   float64
}

// Diameter returns the side length of the bounding square.
func (b *Ball) Diameter() float64 {
	return b.Radius * 2
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VelX, b.VelY)
}

// Stopped reports whether the ball has zero velocity.
func (b *Ball) Stopped() bool {
	return b.VelX == 0 && b.VelY == 0
}
