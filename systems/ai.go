package systems

import (
	"math"

	"github.com/pthm-cable/pong/components"
)

// DriveAI steers an AI-controlled paddle toward the ball.
//
// The controller is purely reactive: outside the deadband it moves at a
// fixed fraction of paddle speed toward the ball's current height, inside
// it stops. A ball above the top edge (hidden for respawn) counts as
// aligned so the paddle rests while waiting for the serve.
func DriveAI(p *components.Paddle, b *components.Ball, params Params) {
	if !p.AI {
		return
	}

	dist := p.Rect.CenterY() - b.Rect.CenterY()
	if b.Rect.Y < 0 {
		dist = 0
	}

	if math.Abs(dist) > params.AIDeadband {
		// Paddle center below the ball means moving up, which is positive velocity
		p.Velocity = params.AIGain * params.PaddleSpeed * sign(dist > 0)
		return
	}
	p.Velocity = 0
}
