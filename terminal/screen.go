// Package terminal is the tcell front end: it draws the court in character
// cells, turns key presses into game input and plays tones through beep.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/pong/camera"
	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/systems"
)

const (
	blockRune = '█'
	sparkRune = '·'
)

// Screen draws playfield rectangles and text into a tcell screen.
type Screen struct {
	screen tcell.Screen
	cam    *camera.Camera
	w, h   int

	style      tcell.Style
	sparkStyle tcell.Style
	fadedStyle tcell.Style
}

// NewScreen wraps an initialized tcell screen. The playfield is stretched
// over the whole terminal since cells are not square.
func NewScreen(screen tcell.Screen, playfieldW, playfieldH float64) *Screen {
	w, h := screen.Size()
	screen.HideCursor()
	return &Screen{
		screen:     screen,
		cam:        camera.New(float64(w), float64(h), playfieldW, playfieldH, camera.Stretch),
		w:          w,
		h:          h,
		style:      tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		sparkStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
		fadedStyle: tcell.StyleDefault.Foreground(tcell.ColorOlive).Background(tcell.ColorBlack),
	}
}

// Clear implements game.Renderer. It also picks up terminal resizes.
func (s *Screen) Clear() {
	if w, h := s.screen.Size(); w != s.w || h != s.h {
		s.w, s.h = w, h
		s.cam.Resize(float64(w), float64(h))
		s.screen.Sync()
	}
	s.screen.SetStyle(s.style)
	s.screen.Clear()
}

// FillRect implements game.Renderer. Every cell the rectangle touches is
// filled, so thin paddles and the net stay visible.
func (s *Screen) FillRect(r components.Rect) {
	x0, y0, x1, y1 := s.cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, blockRune, nil, s.style)
		}
	}
}

// DrawText implements game.Renderer. Cells cannot scale glyphs, so size
// is ignored and the text is written at its anchor cell.
func (s *Screen) DrawText(text string, pos components.Vec2, _ float64) {
	fx, fy := s.cam.WorldToScreen(pos.X, pos.Y)
	x, y := int(fx), int(fy)
	for _, r := range text {
		if x >= s.w {
			break
		}
		if x >= 0 && y >= 0 && y < s.h {
			s.screen.SetContent(x, y, r, nil, s.style)
		}
		x++
	}
}

// Present implements game.Renderer.
func (s *Screen) Present() {
	s.screen.Show()
}

// DrawSpark implements game.SparkDrawer.
func (s *Screen) DrawSpark(sp systems.Spark) {
	fx, fy := s.cam.WorldToScreen(sp.X, sp.Y)
	x, y := int(fx), int(fy)
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	style := s.sparkStyle
	if sp.Life < 0.5 {
		style = s.fadedStyle
	}
	s.screen.SetContent(x, y, sparkRune, nil, style)
}

// cells returns the half-open cell range covered by r, clipped to the
// screen and at least one cell wide and tall when visible.
func (s *Screen) cells(r components.Rect) (x0, y0, x1, y1 int) {
	sr := s.cam.RectToScreen(r)
	x0 = int(math.Floor(sr.X))
	y0 = int(math.Floor(sr.Y))
	x1 = max(int(math.Ceil(sr.Right())), x0+1)
	y1 = max(int(math.Ceil(sr.Bottom())), y0+1)

	x0, x1 = max(x0, 0), min(x1, s.w)
	y0, y1 = max(y0, 0), min(y1, s.h)
	return x0, y0, x1, y1
}
