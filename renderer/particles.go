package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ParticleRenderer renders contact sparks.
type ParticleRenderer struct {
	Color   rl.Color
	MaxSize float32 // Radius of a fresh spark, in playfield units
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{
		Color:   rl.Color{R: 255, G: 220, B: 150, A: 255},
		MaxSize: 2.5,
	}
}

// Draw renders one spark at screen position (x, y). life runs from 1 when
// emitted down to 0 and drives both fade and size.
func (r *ParticleRenderer) Draw(x, y, scale float32, life float64) {
	lifeRatio := float32(life)
	if lifeRatio <= 0 {
		return
	}

	size := r.MaxSize * scale * lifeRatio
	if size < 0.5 {
		size = 0.5
	}
	rl.DrawCircleV(rl.NewVector2(x, y), size, rl.Fade(r.Color, lifeRatio))
}
