package systems

import (
	"math"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/components"
)

// Contact is what the ball touched during a collision pass.
type Contact uint8

const (
	ContactNone Contact = iota
	ContactLeftPaddle
	ContactRightPaddle
	ContactWall      // Top or bottom edge
	ContactLeftGoal  // Ball left the court on the left; right side scores
	ContactRightGoal // Ball left the court on the right; left side scores
	ContactSideWall  // Left or right edge in demo mode
)

func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactLeftPaddle:
		return "left_paddle"
	case ContactRightPaddle:
		return "right_paddle"
	case ContactWall:
		return "wall"
	case ContactLeftGoal:
		return "left_goal"
	case ContactRightGoal:
		return "right_goal"
	case ContactSideWall:
		return "side_wall"
	default:
		return "unknown"
	}
}

// Scorer returns the side that won the point, if c is a goal.
func (c Contact) Scorer() (components.Side, bool) {
	switch c {
	case ContactLeftGoal:
		return components.SideRight, true
	case ContactRightGoal:
		return components.SideLeft, true
	default:
		return 0, false
	}
}

// PaddleHit reports whether c is a paddle contact.
func (c Contact) PaddleHit() bool {
	return c == ContactLeftPaddle || c == ContactRightPaddle
}

// Collide resolves at most one contact for the current step, checked in
// priority order: left paddle, right paddle, top/bottom wall, left edge,
// right edge.
//
// When live is false (the post-game demo) paddles are ignored, no sounds
// play and the left/right edges reflect the ball instead of scoring.
//
// Paddle contact is intersection plus direction: a paddle only counts when
// the ball is travelling toward it (VelX <= 0 for the left paddle, >= 0 for
// the right). A plain overlap test would deflect a ball that is still
// inside the paddle it just left on every step, flipping it back and forth.
func Collide(m *components.Match, params Params, live bool, sfx audio.Player) Contact {
	b := &m.Ball
	r := b.Rect

	if live && b.VelX <= 0 && r.Intersects(m.Left.Rect) {
		sfx.Play(audio.EffectPaddleHit)
		Deflect(b, &m.Left, params)
		m.RallyHits++
		return ContactLeftPaddle
	}
	if live && b.VelX >= 0 && r.Intersects(m.Right.Rect) {
		sfx.Play(audio.EffectPaddleHit)
		Deflect(b, &m.Right, params)
		m.RallyHits++
		return ContactRightPaddle
	}

	if r.Bottom() > params.Height || r.Y < 0 {
		if live {
			sfx.Play(audio.EffectWallHit)
		}
		reflectVertical(b, r.Y < 0, params.WallNudge)
		return ContactWall
	}

	if r.X < 0 {
		if !live {
			reflectHorizontal(b, true, params.WallNudge)
			return ContactSideWall
		}
		scorePoint(m, components.SideRight, params, sfx)
		return ContactLeftGoal
	}
	if r.Right() > params.Width {
		if !live {
			reflectHorizontal(b, false, params.WallNudge)
			return ContactSideWall
		}
		scorePoint(m, components.SideLeft, params, sfx)
		return ContactRightGoal
	}

	return ContactNone
}

// reflectVertical sends the ball back into the court off the top or bottom
// wall and nudges it inward so the same wall does not trigger again on the
// next step.
func reflectVertical(b *components.Ball, hitTop bool, nudge float64) {
	speed := math.Abs(b.VelY)
	if hitTop {
		b.VelY = -speed
		b.Rect.Y += nudge
		return
	}
	b.VelY = speed
	b.Rect.Y -= nudge
}

// reflectHorizontal is the demo-mode bounce off the left or right edge.
func reflectHorizontal(b *components.Ball, hitLeft bool, nudge float64) {
	speed := math.Abs(b.VelX)
	if hitLeft {
		b.VelX = speed
		b.Rect.X += nudge
		return
	}
	b.VelX = -speed
	b.Rect.X -= nudge
}

// scorePoint credits scorer, hands the serve to the side that conceded and
// hides the ball for the respawn delay.
func scorePoint(m *components.Match, scorer components.Side, params Params, sfx audio.Player) {
	m.Paddle(scorer).Score++
	sfx.Play(audio.EffectScore)
	m.LeftServes = scorer == components.SideRight
	HideBall(m, params)
}
