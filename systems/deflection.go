package systems

import (
	"math"

	"github.com/pthm-cable/pong/components"
)

// DeflectionFor maps where the ball met the paddle to an outgoing angle and
// speed multiplier. normalized is +1 at the paddle's top edge, 0 at its
// center and -1 at its bottom edge; values outside that range are clamped.
//
// Center hits leave flat and slow (multiplier 0.7 with the default shape),
// edge hits leave at the maximum angle and fastest (about 1.7).
func DeflectionFor(normalized float64, params Params) (angle, multiplier float64) {
	n := clampFloat(normalized, -1, 1)
	angle = n * params.MaxDeflectRad
	multiplier = params.DeflectAmplitude*math.Sin(params.DeflectFrequency*n-math.Pi/2) + params.DeflectOffset
	return angle, multiplier
}

// ContactOffset returns the normalized vertical offset of the ball's center
// from the paddle's center, positive when the ball is above it.
func ContactOffset(b *components.Ball, p *components.Paddle) float64 {
	half := p.Rect.H / 2
	if half == 0 {
		return 0
	}
	return (p.Rect.CenterY() - b.Rect.CenterY()) / half
}

// Deflect sets the ball's velocity after it touched p.
// A left paddle sends the ball right, a right paddle sends it left.
func Deflect(b *components.Ball, p *components.Paddle, params Params) {
	angle, mult := DeflectionFor(ContactOffset(b, p), params)
	speed := mult * params.BallSpeed
	b.VelX = speed * math.Cos(angle) * sign(p.Side == components.SideLeft)
	b.VelY = speed * math.Sin(angle)
}
