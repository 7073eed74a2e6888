package systems

import (
	"testing"

	"github.com/pthm-cable/pong/components"
)

func TestDriveAI(t *testing.T) {
	params := testParams(t)
	chase := params.AIGain * params.PaddleSpeed

	tests := []struct {
		name     string
		ai       bool
		ballY    float64 // top of ball
		start    float64
		wantVelo float64
	}{
		{"human paddle untouched", false, 100, 0.3, 0.3},
		{"ball above moves up", true, 100, 0, chase},
		{"ball below moves down", true, 700, 0, -chase},
		{"inside deadband stops", true, 400 - 8 + 2, 0.5, 0},
		{"hidden ball rests", true, params.HiddenY, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := components.Paddle{
				Rect:     components.Rect{X: params.RightPaddleX, Y: 372, W: params.PaddleWidth, H: 56}, // center 400
				Velocity: tt.start,
				AI:       tt.ai,
			}
			b := components.Ball{Rect: components.Rect{X: 400, Y: tt.ballY, W: 16, H: 16}}
			DriveAI(&p, &b, params)
			if !approxEqual(p.Velocity, tt.wantVelo, 1e-9) {
				t.Errorf("Velocity = %v, want %v", p.Velocity, tt.wantVelo)
			}
		})
	}
}
