package game

import (
	"log/slog"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/input"
)

// HandleEvents applies one frame's input to the match.
// Returns false once a quit has been requested.
//
// Movement keys set the paddle's velocity while held and zero it on
// release. The right paddle ignores movement keys while AI-controlled.
// During game over only restart and quit are honored.
func (g *Game) HandleEvents(events []input.Event) bool {
	m := g.match
	speed := g.params.PaddleSpeed

	for _, ev := range events {
		if ev.Kind == input.EventQuit || ev.Key == input.KeyQuit {
			g.quit = true
			continue
		}

		if ev.Key == input.KeyRestart {
			if ev.Kind == input.EventKeyDown {
				g.restart()
			}
			continue
		}

		if m.Mode == components.ModeGameOver {
			continue
		}

		switch ev.Kind {
		case input.EventKeyDown:
			switch ev.Key {
			case input.KeyLeftUp:
				if !m.Left.AI {
					m.Left.Velocity = speed
				}
			case input.KeyLeftDown:
				if !m.Left.AI {
					m.Left.Velocity = -speed
				}
			case input.KeyRightUp:
				if !m.Right.AI {
					m.Right.Velocity = speed
				}
			case input.KeyRightDown:
				if !m.Right.AI {
					m.Right.Velocity = -speed
				}
			}

		case input.EventKeyUp:
			switch ev.Key {
			case input.KeyLeftUp, input.KeyLeftDown:
				if !m.Left.AI {
					m.Left.Velocity = 0
				}
			case input.KeyRightUp, input.KeyRightDown:
				if !m.Right.AI {
					m.Right.Velocity = 0
				}
			case input.KeyToggleAI:
				m.Right.AI = !m.Right.AI
				m.Right.Velocity = 0
				slog.Info("ai_toggled", "right_ai", m.Right.AI)
			}
		}
	}

	return !g.quit
}
