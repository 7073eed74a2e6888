package ui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// GameOverPanel is the modal shown once a side has won.
type GameOverPanel struct {
	renderer *Renderer
	width    float32
	height   float32
}

// NewGameOverPanel creates a game-over panel.
func NewGameOverPanel() *GameOverPanel {
	return &GameOverPanel{
		renderer: NewRenderer(),
		width:    260,
		height:   150,
	}
}

// Bounds returns the panel rectangle centered inside area.
func (p *GameOverPanel) Bounds(area rl.Rectangle) rl.Rectangle {
	return rl.Rectangle{
		X:      area.X + (area.Width-p.width)/2,
		Y:      area.Y + (area.Height-p.height)/2,
		Width:  p.width,
		Height: p.height,
	}
}

// Draw renders the panel centered in area and returns the clicked action.
// winner is the winning side's name; rightAI labels the AI toggle.
func (p *GameOverPanel) Draw(area rl.Rectangle, winner string, rightAI bool) Action {
	r := p.renderer
	t := r.Theme
	b := p.Bounds(area)

	r.DrawPanel(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height))
	y := r.DrawHeader(int32(b.X), int32(b.Y)+t.Padding, int32(b.Width), strings.ToUpper(winner)+" WINS")
	y = r.DrawLabelValue(int32(b.X)+t.Padding, y, "Right", aiLabel(rightAI))

	pad := float32(t.Padding)
	bw := (b.Width - 3*pad) / 2
	by := b.Y + b.Height - pad - t.ButtonHeight

	action := ActionNone
	if gui.Button(rl.Rectangle{X: b.X + pad, Y: by, Width: bw, Height: t.ButtonHeight}, "Restart [R]") {
		action = ActionRestart
	}
	if gui.Button(rl.Rectangle{X: b.X + 2*pad + bw, Y: by, Width: bw, Height: t.ButtonHeight}, toggleText(rightAI, "Human [A]", "AI [A]")) {
		action = ActionToggleAI
	}
	return action
}

func aiLabel(on bool) string {
	return toggleText(on, "AI", "human")
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
