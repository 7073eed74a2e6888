package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/game"
	"github.com/pthm-cable/pong/logging"
	"github.com/pthm-cable/pong/renderer"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// CLI flags
	configPath := flag.String("config", config.Getenv(config.EnvConfig, ""), "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics (implies -autoplay)")
	autoplay := flag.Bool("autoplay", false, "Put the left paddle under AI control too")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	matches := flag.Int("matches", 0, "Stop after N finished matches (0 = unlimited)")
	frameMS := flag.Float64("frame-ms", 16, "Fixed frame time for headless runs, in milliseconds")
	outputDir := flag.String("output-dir", config.Getenv(config.EnvOutputDir, ""), "Output directory for CSV logs and config snapshot")
	logFile := flag.String("log-file", config.Getenv(config.EnvLogFile, ""), "Write logs to a rotating file instead of stdout")
	debug := flag.Bool("debug", false, "Enable debug logs and the perf overlay")

	flag.Parse()

	if err := run(runOptions{
		configPath: *configPath,
		headless:   *headless,
		autoplay:   *autoplay || *headless,
		seed:       *seed,
		maxFrames:  *maxFrames,
		matches:    *matches,
		frameMS:    *frameMS,
		outputDir:  *outputDir,
		logFile:    *logFile,
		debug:      *debug,
	}); err != nil {
		slog.Error("pong failed", "error", err)
		os.Exit(1)
	}
}

type runOptions struct {
	configPath string
	headless   bool
	autoplay   bool
	seed       int64
	maxFrames  int
	matches    int
	frameMS    float64
	outputDir  string
	logFile    string
	debug      bool
}

func run(o runOptions) error {
	closer, err := logging.Setup(o.logFile, o.debug)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closer.Close()

	// Initialize config before anything else
	if err := config.Init(o.configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := game.Options{
		Config:     cfg,
		Seed:       o.seed,
		OutputDir:  o.outputDir,
		Autoplay:   o.autoplay,
		MaxFrames:  o.maxFrames,
		MaxMatches: o.matches,
	}

	frameMS := 0.0 // measured
	if o.headless {
		// Headless mode - pure CPU simulation, no raylib needed
		frameMS = o.frameMS
		slog.Info("starting headless simulation",
			"seed", o.seed,
			"frame_ms", frameMS,
			"max_frames", o.maxFrames,
			"matches", o.matches,
		)
	} else {
		w, err := renderer.Open(cfg, o.debug)
		if err != nil {
			return fmt.Errorf("opening window: %w", err)
		}
		defer w.Close()
		opts.Renderer = w
		opts.Sound = w
		opts.Input = w
	}

	g, err := game.New(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	if err := g.Run(ctx, frameMS); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
