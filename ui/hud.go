package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/systems"
)

// HUDData holds the data for the status line.
type HUDData struct {
	RightAI      bool
	Autoplay     bool
	FPS          float64
	ScreenHeight int32
}

// HUD renders the status line along the bottom edge.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	t := h.renderer.Theme
	text := fmt.Sprintf("Right: %s [A]  |  R restart  |  Esc quit  |  %.0f fps", aiLabel(data.RightAI), data.FPS)
	if data.Autoplay {
		text = "AUTOPLAY  |  " + text
	}
	rl.DrawText(text, t.Padding, data.ScreenHeight-t.FontSize-t.Padding, t.FontSize, rl.Gray)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	SystemTimes map[string]time.Duration
	Total       time.Duration
	Registry    *systems.SystemRegistry
}

// PerfPanel renders the frame phase performance panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel. Phases are listed in registry order.
func (p *PerfPanel) Draw(data PerfPanelData) {
	t := p.renderer.Theme
	x := p.x
	y := p.y

	rl.DrawText("Frame Phases", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Total: %s", data.Total.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	if data.Registry == nil {
		return
	}
	for _, info := range data.Registry.All() {
		avg := data.SystemTimes[info.ID]
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		color := t.LabelColor
		if pct > 50 {
			color = t.HotColor
		} else if pct > 25 {
			color = t.WarnColor
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", info.Name, avg.Round(time.Microsecond), pct),
			x, y, t.FontSize, color,
		)
		y += 14
	}
}
