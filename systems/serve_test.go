package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/pong/components"
)

func TestNewMatchWaitsForServe(t *testing.T) {
	params := testParams(t)
	m := NewMatch(params, rand.New(rand.NewSource(7)))

	if m.Left.Score != 0 || m.Right.Score != 0 {
		t.Errorf("score = %d-%d, want 0-0", m.Left.Score, m.Right.Score)
	}
	if m.Serve != components.ServeRespawnPending {
		t.Errorf("serve = %v, want respawn_pending", m.Serve)
	}
	if m.RespawnRemaining != params.RespawnDelayMS {
		t.Errorf("RespawnRemaining = %v, want %v", m.RespawnRemaining, params.RespawnDelayMS)
	}
	if m.Ball.Rect.X != params.HiddenX || m.Ball.Rect.Y != params.HiddenY {
		t.Errorf("ball at (%v, %v), want hidden", m.Ball.Rect.X, m.Ball.Rect.Y)
	}
	if m.Left.Rect.Y != params.PaddleSpawnY || m.Right.Rect.Y != params.PaddleSpawnY {
		t.Error("paddles not centered")
	}
	if m.Right.AI != params.RightAI {
		t.Errorf("Right.AI = %v, want %v", m.Right.AI, params.RightAI)
	}
}

func TestTickServe(t *testing.T) {
	params := testParams(t)
	rng := rand.New(rand.NewSource(3))
	m := NewMatch(params, rng)

	if TickServe(m, params.RespawnDelayMS-1, params, rng) {
		t.Fatal("ball placed before the delay elapsed")
	}
	if m.Live() {
		t.Fatal("ball live before the delay elapsed")
	}
	if !TickServe(m, 1, params, rng) {
		t.Fatal("ball not placed once the delay elapsed")
	}
	if !m.Live() {
		t.Fatal("ball should be live")
	}
	if TickServe(m, 16, params, rng) {
		t.Error("TickServe should do nothing while live")
	}
}

func TestPlaceBall(t *testing.T) {
	params := testParams(t)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		m := NewMatch(params, rng)
		m.RallyHits = 5
		m.RallyMS = 1234
		PlaceBall(m, params, rng)
		b := &m.Ball

		if !approxEqual(b.Rect.CenterX(), params.Width/2, 1e-9) {
			t.Fatalf("center x = %v, want %v", b.Rect.CenterX(), params.Width/2)
		}
		if b.Rect.Y < 0 || b.Rect.Bottom() > params.Height {
			t.Fatalf("ball y %v outside playfield", b.Rect.Y)
		}
		if !approxEqual(b.Speed(), params.BallSpeed, 1e-9) {
			t.Fatalf("speed = %v, want %v", b.Speed(), params.BallSpeed)
		}
		if angle := math.Atan2(math.Abs(b.VelY), math.Abs(b.VelX)); angle > params.MaxServeAngleRad+1e-9 {
			t.Fatalf("serve angle %v exceeds limit", angle)
		}
		if (b.VelX > 0) != m.LeftServes {
			t.Fatalf("VelX = %v with LeftServes = %v", b.VelX, m.LeftServes)
		}
		if m.RallyHits != 0 || m.RallyMS != 0 {
			t.Fatal("rally counters not reset")
		}
	}
}

func TestRespawnAlternatesPhases(t *testing.T) {
	params := testParams(t)
	rng := rand.New(rand.NewSource(5))
	m := liveMatch(t, params)

	Respawn(m, params, rng)
	if m.Serve != components.ServeRespawnPending || !m.Ball.Stopped() {
		t.Fatal("first Respawn should hide the ball")
	}
	Respawn(m, params, rng)
	if !m.Live() || m.Ball.Stopped() {
		t.Fatal("second Respawn should place the ball")
	}
}
