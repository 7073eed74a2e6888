package game

import (
	"time"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/input"
	"github.com/pthm-cable/pong/systems"
)

// Renderer draws a frame. All coordinates are in playfield units; the
// front end maps them onto its own surface.
type Renderer interface {
	Clear()
	FillRect(r components.Rect)
	// DrawText draws text with its top-left corner at pos. size is the
	// glyph height in playfield units.
	DrawText(text string, pos components.Vec2, size float64)
	Present()
}

// SparkDrawer is implemented by renderers that can show contact sparks.
type SparkDrawer interface {
	DrawSpark(s systems.Spark)
}

// GameOverDrawer is implemented by renderers that draw their own game-over
// panel instead of the plain caption.
type GameOverDrawer interface {
	DrawGameOver(winner components.Side, rightAI bool)
}

// Clock supplies wall-clock time to the frame loop.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// NullRenderer draws nothing. Used in headless runs and tests.
type NullRenderer struct{}

func (NullRenderer) Clear()                                    {}
func (NullRenderer) FillRect(components.Rect)                  {}
func (NullRenderer) DrawText(string, components.Vec2, float64) {}
func (NullRenderer) Present()                                  {}

// noInput is the Source used when none is configured.
type noInput struct{}

func (noInput) Poll() []input.Event { return nil }

// Status is the per-frame summary handed to a StatusDrawer.
type Status struct {
	RightAI  bool
	Autoplay bool
	FPS      float64
	Phases   map[string]time.Duration // Average duration per phase ID
	Total    time.Duration
	Registry *systems.SystemRegistry
}

// StatusDrawer is implemented by renderers that show a status line or
// debug overlay.
type StatusDrawer interface {
	DrawStatus(s Status)
}
