package systems

import (
	"testing"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/components"
)

func TestCollide(t *testing.T) {
	params := testParams(t)

	tests := []struct {
		name  string
		setup func(m *components.Match)
		live  bool
		want  Contact
		check func(t *testing.T, m *components.Match, sfx *audio.Counter)
	}{
		{
			name: "left paddle hit",
			setup: func(m *components.Match) {
				m.Ball.Rect.X = m.Left.Rect.Right() - 4
				m.Ball.Rect.Y = m.Left.Rect.CenterY() - 8
				m.Ball.VelX = -0.5
			},
			live: true,
			want: ContactLeftPaddle,
			check: func(t *testing.T, m *components.Match, sfx *audio.Counter) {
				if m.Ball.VelX <= 0 {
					t.Errorf("VelX = %v, want positive", m.Ball.VelX)
				}
				if m.RallyHits != 1 {
					t.Errorf("RallyHits = %d, want 1", m.RallyHits)
				}
				if sfx.Count(audio.EffectPaddleHit) != 1 {
					t.Error("expected paddle sound")
				}
			},
		},
		{
			name: "ball leaving left paddle is not hit again",
			setup: func(m *components.Match) {
				m.Ball.Rect.X = m.Left.Rect.Right() - 4
				m.Ball.Rect.Y = m.Left.Rect.CenterY() - 8
				m.Ball.VelX = 0.5
			},
			live: true,
			want: ContactNone,
		},
		{
			name: "ball leaving right paddle is not hit again",
			setup: func(m *components.Match) {
				m.Ball.Rect.X = m.Right.Rect.X - 12
				m.Ball.Rect.Y = m.Right.Rect.CenterY() - 8
				m.Ball.VelX = -0.5
			},
			live: true,
			want: ContactNone,
			check: func(t *testing.T, m *components.Match, sfx *audio.Counter) {
				if m.Ball.VelX != -0.5 || m.RallyHits != 0 || sfx.Total() != 0 {
					t.Errorf("ball deflected again: vel %v hits %d", m.Ball.VelX, m.RallyHits)
				}
			},
		},
		{
			name: "touching edges do not intersect",
			setup: func(m *components.Match) {
				m.Ball.Rect.X = m.Left.Rect.Right()
				m.Ball.Rect.Y = m.Left.Rect.CenterY() - 8
				m.Ball.VelX = -0.5
			},
			live: true,
			want: ContactNone,
		},
		{
			name: "right paddle hit",
			setup: func(m *components.Match) {
				m.Ball.Rect.X = m.Right.Rect.X - 12
				m.Ball.Rect.Y = m.Right.Rect.CenterY() - 8
				m.Ball.VelX = 0.5
			},
			live: true,
			want: ContactRightPaddle,
			check: func(t *testing.T, m *components.Match, sfx *audio.Counter) {
				if m.Ball.VelX >= 0 {
					t.Errorf("VelX = %v, want negative", m.Ball.VelX)
				}
			},
		},
		{
			name: "top wall",
			setup: func(m *components.Match) {
				m.Ball.Rect.Y = -1
				m.Ball.VelY = 0.5
			},
			live: true,
			want: ContactWall,
			check: func(t *testing.T, m *components.Match, sfx *audio.Counter) {
				if m.Ball.VelY != -0.5 {
					t.Errorf("VelY = %v, want -0.5", m.Ball.VelY)
				}
				if m.Ball.Rect.Y != 0 {
					t.Errorf("Y = %v, want 0 after nudge", m.Ball.Rect.Y)
				}
				if sfx.Count(audio.EffectWallHit) != 1 {
					t.Error("expected wall sound")
				}
			},
		},
		{
			name: "bottom wall",
			setup: func(m *components.Match) {
				m.Ball.Rect.Y = params.Height - 15
				m.Ball.VelY = -0.5
			},
			live: true,
			want: ContactWall,
			check: func(t *testing.T, m *components.Match, sfx *audio.Counter) {
				if m.Ball.VelY != 0.5 {
					t.Errorf("VelY = %v, want 0.5", m.Ball.VelY)
				}
			},
		},
		{
			name: "left goal at x=-1",
			setup: func(m *components.Match) {
				m.Ball.Rect.X = -1
				m.Ball.VelX = -0.5
				m.LeftServes = false
			},
			live: true,
			want: ContactLeftGoal,
			check: func(t *testing.T, m *components.Match, sfx *audio.Counter) {
				if m.Right.Score != 1 || m.Left.Score != 0 {
					t.Errorf("score = %d-%d, want 0-1", m.Left.Score, m.Right.Score)
				}
				if !m.LeftServes {
					t.Error("conceding side should serve next")
				}
				if m.Serve != components.ServeRespawnPending {
					t.Errorf("serve = %v, want respawn_pending", m.Serve)
				}
				if m.Ball.Rect.X != params.HiddenX || !m.Ball.Stopped() {
					t.Errorf("ball not hidden: %+v", m.Ball)
				}
				if sfx.Count(audio.EffectScore) != 1 {
					t.Error("expected score sound")
				}
			},
		},
		{
			name: "right goal",
			setup: func(m *components.Match) {
				m.Ball.Rect.X = params.Width - 15
				m.Ball.VelX = 0.5
			},
			live: true,
			want: ContactRightGoal,
			check: func(t *testing.T, m *components.Match, sfx *audio.Counter) {
				if m.Left.Score != 1 {
					t.Errorf("left score = %d, want 1", m.Left.Score)
				}
				if m.LeftServes {
					t.Error("right conceded, right should serve")
				}
			},
		},
		{
			name: "demo mode ignores paddles",
			setup: func(m *components.Match) {
				m.Ball.Rect.X = m.Left.Rect.Right() - 4
				m.Ball.Rect.Y = m.Left.Rect.CenterY() - 8
				m.Ball.VelX = -0.5
			},
			live: false,
			want: ContactNone,
		},
		{
			name: "demo mode reflects off left edge",
			setup: func(m *components.Match) {
				m.Ball.Rect.X = -1
				m.Ball.VelX = -0.5
			},
			live: false,
			want: ContactSideWall,
			check: func(t *testing.T, m *components.Match, sfx *audio.Counter) {
				if m.Ball.VelX != 0.5 {
					t.Errorf("VelX = %v, want 0.5", m.Ball.VelX)
				}
				if m.Left.Score+m.Right.Score != 0 {
					t.Error("demo mode must not score")
				}
				if sfx.Total() != 0 {
					t.Error("demo mode must be silent")
				}
			},
		},
		{
			name: "demo mode wall is silent",
			setup: func(m *components.Match) {
				m.Ball.Rect.Y = -1
				m.Ball.VelY = 0.5
			},
			live: false,
			want: ContactWall,
			check: func(t *testing.T, m *components.Match, sfx *audio.Counter) {
				if sfx.Total() != 0 {
					t.Error("demo mode must be silent")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := liveMatch(t, params)
			tt.setup(m)
			sfx := &audio.Counter{}

			got := Collide(m, params, tt.live, sfx)
			if got != tt.want {
				t.Fatalf("Collide = %v, want %v", got, tt.want)
			}
			if tt.check != nil {
				tt.check(t, m, sfx)
			}
		})
	}
}

func TestContactScorer(t *testing.T) {
	tests := []struct {
		c      Contact
		want   components.Side
		wantOK bool
	}{
		{ContactLeftGoal, components.SideRight, true},
		{ContactRightGoal, components.SideLeft, true},
		{ContactWall, 0, false},
		{ContactLeftPaddle, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.c.Scorer()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%v.Scorer() = %v, %v, want %v, %v", tt.c, got, ok, tt.want, tt.wantOK)
		}
	}
}
