// Package ui draws the raylib overlays on top of the court: the status
// line, the perf panel and the game-over panel.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Action is a request made by clicking a UI control.
type Action int

const (
	ActionNone Action = iota
	ActionRestart
	ActionToggleAI
)

func (a Action) String() string {
	switch a {
	case ActionRestart:
		return "restart"
	case ActionToggleAI:
		return "toggle_ai"
	default:
		return "none"
	}
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	WarnColor      rl.Color
	HotColor       rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FontSize       int32
	HeaderFontSize int32
	ButtonHeight   float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 10, G: 10, B: 10, A: 230},
		PanelBorder:    rl.Color{R: 200, G: 200, B: 200, A: 255},
		SectionHeader:  rl.White,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.White,
		WarnColor:      rl.Orange,
		HotColor:       rl.Red,
		Padding:        12,
		LineHeight:     16,
		LabelWidth:     70,
		FontSize:       12,
		HeaderFontSize: 20,
		ButtonHeight:   30,
	}
}
