package systems

import "github.com/pthm-cable/pong/components"

// AdvancePaddle moves p by its velocity over dt milliseconds and clamps it
// into the playfield. Positive velocity moves up.
func AdvancePaddle(p *components.Paddle, dt float64, params Params) {
	p.Rect.Y -= p.Velocity * dt
	ClampPaddle(p, params.Height)
}

// ClampPaddle keeps the paddle's top edge in [0, height - paddle height].
func ClampPaddle(p *components.Paddle, height float64) {
	p.Rect.Y = clampFloat(p.Rect.Y, 0, height-p.Rect.H)
}

// AdvanceBall moves the ball by one explicit Euler step.
// Positive VelY moves up, so it is subtracted from the downward-growing Y.
func AdvanceBall(b *components.Ball, dt float64) {
	b.Rect.X += b.VelX * dt
	b.Rect.Y -= b.VelY * dt
}

// Integrator turns measured frame times into simulation steps.
//
// With a zero step it passes the frame's dt straight through (variable
// timestep). With a positive step it accumulates frame time and runs as
// many fixed steps as fit, carrying the remainder into the next frame.
// Either way a single frame never contributes more than maxFrameMS.
type Integrator struct {
	stepMS     float64
	maxFrameMS float64
	acc        float64
}

// NewIntegrator creates an integrator. stepMS <= 0 selects variable timestep.
func NewIntegrator(stepMS, maxFrameMS float64) *Integrator {
	return &Integrator{stepMS: stepMS, maxFrameMS: maxFrameMS}
}

// Fixed reports whether the integrator uses a fixed step.
func (in *Integrator) Fixed() bool {
	return in.stepMS > 0
}

// Step feeds one frame's dt and calls fn once per simulation step.
// Returns the number of steps run.
func (in *Integrator) Step(dt float64, fn func(step float64)) int {
	if dt < 0 {
		dt = 0
	}
	if in.maxFrameMS > 0 && dt > in.maxFrameMS {
		dt = in.maxFrameMS
	}

	if in.stepMS <= 0 {
		fn(dt)
		return 1
	}

	in.acc += dt
	n := 0
	for in.acc >= in.stepMS {
		fn(in.stepMS)
		in.acc -= in.stepMS
		n++
	}
	return n
}

// Reset drops any accumulated remainder.
func (in *Integrator) Reset() {
	in.acc = 0
}
