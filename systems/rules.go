package systems

import (
	"math/rand"

	"github.com/pthm-cable/pong/components"
)

// NewMatch builds a match at 0-0 with centered paddles, a random server
// and the ball hidden for the opening serve delay.
func NewMatch(params Params, rng *rand.Rand) *components.Match {
	d := params.BallRadius * 2
	m := &components.Match{
		Left:  components.Paddle{Side: components.SideLeft},
		Right: components.Paddle{Side: components.SideRight, AI: params.RightAI},
		Ball: components.Ball{
			Radius: params.BallRadius,
			Rect: components.Rect{
				X: params.Width/2 - params.BallRadius,
				Y: params.Height/2 - params.BallRadius,
				W: d,
				H: d,
			},
		},
		Mode:  components.ModePlaying,
		Serve: components.ServeLive,
	}
	SpawnPaddles(m, params)
	m.LeftServes = rng.Intn(2) == 0
	HideBall(m, params)
	return m
}

// SpawnPaddles puts both paddles at their vertically centered spawn
// position and stops them.
func SpawnPaddles(m *components.Match, params Params) {
	m.Left.Rect = components.Rect{X: params.LeftPaddleX, Y: params.PaddleSpawnY, W: params.PaddleWidth, H: params.PaddleHeight}
	m.Right.Rect = components.Rect{X: params.RightPaddleX, Y: params.PaddleSpawnY, W: params.PaddleWidth, H: params.PaddleHeight}
	m.Left.Velocity = 0
	m.Right.Velocity = 0
}

// Winner returns the side that has reached the winning score, if any.
// First to the winning score wins; there is no two-point margin.
func Winner(m *components.Match, params Params) (components.Side, bool) {
	switch {
	case m.Left.Score >= params.WinningScore:
		return components.SideLeft, true
	case m.Right.Score >= params.WinningScore:
		return components.SideRight, true
	default:
		return 0, false
	}
}

// CheckGameOver moves a playing match to game over once a side has won.
// The ball is served immediately so it can bounce in demo mode behind the
// final score. Reports whether the transition happened on this call.
func CheckGameOver(m *components.Match, params Params, rng *rand.Rand) bool {
	if m.Mode != components.ModePlaying {
		return false
	}
	winner, ok := Winner(m, params)
	if !ok {
		return false
	}

	m.Mode = components.ModeGameOver
	m.Winner = winner
	m.Left.Velocity = 0
	m.Right.Velocity = 0
	PlaceBall(m, params, rng)
	return true
}

// Restart resets the match to 0-0 from any state: paddles recentered,
// right-paddle AI back to its configured default, a random server and the
// ball hidden for the serve delay.
func Restart(m *components.Match, params Params, rng *rand.Rand) {
	m.Left.Score = 0
	m.Right.Score = 0
	SpawnPaddles(m, params)
	m.Right.AI = params.RightAI
	m.LeftServes = rng.Intn(2) == 0
	m.Mode = components.ModePlaying
	HideBall(m, params)
}
