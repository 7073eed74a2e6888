package game

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pthm-cable/pong/components"
)

// Court layout, as fractions of the playfield.
const (
	netDashes     = 30
	netDashW      = 3.0 / 904
	netDashH      = 12.0 / 800
	scoreLeftX    = 273.0 / 904 // Left score anchor (single digit)
	scoreRightX   = 811.0 / 904 // Right score anchor (single digit)
	scoreTop      = 32.0 / 800
	scoreDigitW   = 73.0 / 904 // Two-digit scores shift left by one digit
	scoreHeight   = 100.0 / 800
	captionHeight = 40.0 / 800
)

// Draw renders the current match: net, paddles, ball, scores, sparks and
// the game-over caption.
func (g *Game) Draw() {
	r := g.renderer
	m := g.match

	r.Clear()
	g.drawNet()

	if m.Mode == components.ModePlaying {
		r.FillRect(m.Left.Rect)
		r.FillRect(m.Right.Rect)
	}
	if m.Live() {
		r.FillRect(m.Ball.Rect)
	}

	g.drawScores()

	if sd, ok := r.(SparkDrawer); ok {
		g.sparks.Each(sd.DrawSpark)
	}

	if m.Mode == components.ModeGameOver {
		if god, ok := r.(GameOverDrawer); ok {
			god.DrawGameOver(m.Winner, m.Right.AI)
		} else {
			g.drawGameOverCaption()
		}
	}

	if sd, ok := r.(StatusDrawer); ok {
		sd.DrawStatus(g.status())
	}

	r.Present()
}

// status snapshots the values a StatusDrawer shows.
func (g *Game) status() Status {
	phases := make(map[string]time.Duration, len(g.registry.IDs()))
	for _, id := range g.registry.IDs() {
		phases[id] = g.perf.Avg(id)
	}
	return Status{
		RightAI:  g.match.Right.AI,
		Autoplay: g.autoplay,
		FPS:      g.frameStats.Summary().FPS,
		Phases:   phases,
		Total:    g.perf.Total(),
		Registry: g.registry,
	}
}

// drawNet draws the dashed center line.
func (g *Game) drawNet() {
	w, h := g.params.Width, g.params.Height
	// At least one unit, so short playfields still terminate
	spacing := math.Max(1, math.Floor(h/netDashes))
	dash := components.Rect{X: w / 2, W: netDashW * w, H: netDashH * h}
	for y := 0.0; y < h; y += spacing {
		dash.Y = y
		g.renderer.FillRect(dash)
	}
}

// drawScores draws both scores at their fixed anchors.
func (g *Game) drawScores() {
	w, h := g.params.Width, g.params.Height
	size := scoreHeight * h
	top := scoreTop * h

	g.renderer.DrawText(strconv.Itoa(g.match.Left.Score), components.Vec2{X: scoreX(scoreLeftX*w, g.match.Left.Score, w), Y: top}, size)
	g.renderer.DrawText(strconv.Itoa(g.match.Right.Score), components.Vec2{X: scoreX(scoreRightX*w, g.match.Right.Score, w), Y: top}, size)
}

// scoreX shifts a score's anchor left by one digit width once it has two digits.
func scoreX(anchor float64, score int, width float64) float64 {
	if score < 10 {
		return anchor
	}
	return anchor - scoreDigitW*width
}

// drawGameOverCaption is the plain-text fallback for renderers without a
// game-over panel.
func (g *Game) drawGameOverCaption() {
	w, h := g.params.Width, g.params.Height
	size := captionHeight * h

	caption := strings.ToUpper(g.match.Winner.String()) + " WINS"
	g.renderer.DrawText(caption, components.Vec2{X: w * 0.1, Y: h * 0.45}, size)
	g.renderer.DrawText("R restart  Esc quit", components.Vec2{X: w * 0.1, Y: h*0.45 + size*1.5}, size*0.6)
}
