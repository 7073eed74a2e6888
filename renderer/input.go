package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/input"
)

// keyMap maps raylib keys onto game keys.
var keyMap = []struct {
	key  int32
	game input.Key
}{
	{rl.KeyW, input.KeyLeftUp},
	{rl.KeyS, input.KeyLeftDown},
	{rl.KeyUp, input.KeyRightUp},
	{rl.KeyDown, input.KeyRightDown},
	{rl.KeyR, input.KeyRestart},
	{rl.KeyA, input.KeyToggleAI},
	{rl.KeyEscape, input.KeyQuit},
}

// Poll implements input.Source. It returns UI clicks from the previous
// frame, then window close and key transitions, and tracks window resizes.
func (w *Window) Poll() []input.Event {
	events := w.actions.Poll()

	if rl.WindowShouldClose() {
		events = append(events, input.Quit())
	}
	for _, m := range keyMap {
		if rl.IsKeyPressed(m.key) {
			events = append(events, input.Down(m.game))
		}
		if rl.IsKeyReleased(m.key) {
			events = append(events, input.Up(m.game))
		}
	}

	if rl.IsWindowResized() {
		w.cam.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}
	return events
}
