// Package game drives the frame loop: it drains input, runs the simulation
// systems in a fixed order, draws the frame and records telemetry.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/input"
	"github.com/pthm-cable/pong/systems"
	"github.com/pthm-cable/pong/telemetry"
)

// Options configures a Game.
type Options struct {
	Config    *config.Config // nil = config.Cfg()
	Seed      int64          // 0 = time-based
	Renderer  Renderer       // nil = NullRenderer
	Sound     audio.Player   // nil = audio.Nop
	Input     input.Source   // nil = no input
	Clock     Clock          // nil = SystemClock
	OutputDir string         // CSV and config snapshot directory (empty = disabled)

	// Autoplay puts the left paddle under AI control as well and restarts
	// finished matches, so the game runs without any input.
	Autoplay bool

	MaxFrames  int // Stop after N frames (0 = unlimited)
	MaxMatches int // Stop after N finished matches (0 = unlimited)
}

// Game holds the complete game state.
type Game struct {
	cfg    *config.Config
	params systems.Params
	rng    *rand.Rand
	seed   int64

	match  *components.Match
	integ  *systems.Integrator
	sparks *systems.SparkSystem

	// Collaborators
	renderer Renderer
	sound    audio.Player
	input    input.Source
	clock    Clock

	// Telemetry
	collector  *telemetry.Collector
	bookmarks  *telemetry.BookmarkDetector
	output     *telemetry.OutputManager
	frameStats *telemetry.FrameStats
	perf       *PerfStats
	registry   *systems.SystemRegistry
	elapsedMS  float64 // Frame time fed to Update since start
	lastPerfAt float64 // elapsedMS at the last perf log

	autoplay   bool
	maxFrames  int
	maxMatches int

	frames  int
	matches int
	quit    bool
}

// New creates a game with a fresh match at 0-0 waiting on the opening serve.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	params := systems.ParamsFromConfig(cfg)
	g := &Game{
		cfg:        cfg,
		params:     params,
		rng:        rng,
		seed:       seed,
		match:      systems.NewMatch(params, rng),
		integ:      systems.NewIntegrator(params.FixedStepMS, params.MaxFrameMS),
		sparks:     systems.NewSparkSystem(cfg.FX, rng),
		renderer:   opts.Renderer,
		sound:      opts.Sound,
		input:      opts.Input,
		clock:      opts.Clock,
		collector:  telemetry.NewCollector(),
		bookmarks:  telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistory, params.WinningScore),
		output:     output,
		frameStats: telemetry.NewFrameStats(cfg.Telemetry.FrameWindow),
		perf:       NewPerfStats(),
		registry:   systems.NewSystemRegistry(),
		autoplay:   opts.Autoplay,
		maxFrames:  opts.MaxFrames,
		maxMatches: opts.MaxMatches,
	}
	if g.renderer == nil {
		g.renderer = NullRenderer{}
	}
	if g.sound == nil {
		g.sound = audio.Nop{}
	}
	if g.input == nil {
		g.input = noInput{}
	}
	if g.clock == nil {
		g.clock = SystemClock{}
	}
	g.match.Left.AI = g.autoplay

	slog.Info("match_started",
		"match_id", g.collector.MatchID(),
		"seed", seed,
		"server", g.match.Server().String(),
		"right_ai", g.match.Right.AI,
		"autoplay", g.autoplay,
	)
	return g, nil
}

// Match returns the live match state.
func (g *Game) Match() *components.Match {
	return g.match
}

// Params returns the simulation parameters in use.
func (g *Game) Params() systems.Params {
	return g.params
}

// Sparks returns the contact spark system.
func (g *Game) Sparks() *systems.SparkSystem {
	return g.sparks
}

// Frames returns the number of completed frames.
func (g *Game) Frames() int {
	return g.frames
}

// Matches returns the number of finished matches.
func (g *Game) Matches() int {
	return g.matches
}

// Seed returns the RNG seed.
func (g *Game) Seed() int64 {
	return g.seed
}

// Quit reports whether a quit was requested.
func (g *Game) Quit() bool {
	return g.quit
}

// Close flushes telemetry output. Front-end resources are owned and
// released by whoever created them.
func (g *Game) Close() error {
	var errs []error
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing output: %w", err))
		}
	}
	slog.Info("game_closed", "frames", g.frames, "matches", g.matches)
	return errors.Join(errs...)
}
