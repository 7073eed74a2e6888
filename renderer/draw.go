package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/game"
	"github.com/pthm-cable/pong/input"
	"github.com/pthm-cable/pong/systems"
	"github.com/pthm-cable/pong/ui"
)

// Clear implements game.Renderer. It begins the frame.
func (w *Window) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

// FillRect implements game.Renderer.
func (w *Window) FillRect(r components.Rect) {
	rl.DrawRectangleRec(toRectangle(w.cam.RectToScreen(r)), rl.White)
}

// DrawText implements game.Renderer.
func (w *Window) DrawText(text string, pos components.Vec2, size float64) {
	x, y := w.cam.WorldToScreen(pos.X, pos.Y)
	fontSize := float32(size * w.cam.ScaleY)
	rl.DrawTextEx(w.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, fontSize/10, rl.White)
}

// Present implements game.Renderer. It ends the frame and waits for vsync.
func (w *Window) Present() {
	rl.EndDrawing()
}

// DrawSpark implements game.SparkDrawer.
func (w *Window) DrawSpark(s systems.Spark) {
	x, y := w.cam.WorldToScreen(s.X, s.Y)
	w.particles.Draw(float32(x), float32(y), float32(w.cam.ScaleX), s.Life)
}

// DrawGameOver implements game.GameOverDrawer. Clicks are queued as the
// equivalent key events for the next Poll.
func (w *Window) DrawGameOver(winner components.Side, rightAI bool) {
	area := toRectangle(w.cam.Bounds())
	switch w.gameOver.Draw(area, winner.String(), rightAI) {
	case ui.ActionRestart:
		w.actions.Push(input.Down(input.KeyRestart))
	case ui.ActionToggleAI:
		// Rematch with the right paddle flipped from its current mode.
		// Restart restores the configured default, so only toggle when
		// that default is not already what was asked for.
		w.actions.Push(input.Down(input.KeyRestart))
		if !rightAI != w.cfg.AI.RightEnabled {
			w.actions.Push(input.Up(input.KeyToggleAI))
		}
	}
}

// DrawStatus implements game.StatusDrawer.
func (w *Window) DrawStatus(s game.Status) {
	w.hud.Draw(ui.HUDData{
		RightAI:      s.RightAI,
		Autoplay:     s.Autoplay,
		FPS:          s.FPS,
		ScreenHeight: int32(rl.GetScreenHeight()),
	})
	if w.debug {
		w.perfPanel.Draw(ui.PerfPanelData{
			SystemTimes: s.Phases,
			Total:       s.Total,
			Registry:    s.Registry,
		})
	}
}

func toRectangle(r components.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.W), Height: float32(r.H)}
}
