// Terminal Pong - plays in any terminal with tcell, sound through beep.
//
// Usage: go run ./cmd/pong-tui
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/game"
	"github.com/pthm-cable/pong/logging"
	"github.com/pthm-cable/pong/terminal"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	configPath := flag.String("config", config.Getenv(config.EnvConfig, ""), "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	mute := flag.Bool("mute", false, "Disable sound")
	// Stdout belongs to the terminal UI, so logs default to a file
	logFile := flag.String("log-file", config.Getenv(config.EnvLogFile, "pong-tui.log"), "Rotating log file")
	flag.Parse()

	if err := run(*configPath, *seed, *mute, *logFile); err != nil {
		slog.Error("pong-tui failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, mute bool, logFile string) error {
	closer, err := logging.Setup(logFile, false)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closer.Close()

	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	var sound audio.Player = audio.Nop{}
	if !mute {
		spk, err := terminal.NewSpeaker(cfg.Audio)
		if err != nil {
			// Terminals without an audio device can still play silently
			slog.Warn("sound disabled", "error", err)
		} else {
			defer spk.Close()
			sound = spk
		}
	}

	releaseTimeout := time.Duration(cfg.Terminal.ReleaseTimeoutMS * float64(time.Millisecond))
	keys := terminal.NewInput(screen, releaseTimeout)
	defer keys.Close()

	g, err := game.New(game.Options{
		Config:   cfg,
		Seed:     seed,
		Renderer: terminal.NewScreen(screen, cfg.Playfield.Width, cfg.Playfield.Height),
		Sound:    sound,
		Input:    keys,
		Clock:    game.SystemClock{},
	})
	if err != nil {
		return err
	}
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return runPaced(ctx, g, cfg.Terminal.FrameMS)
}

// runPaced drives the game at a steady frame rate. Terminals have no vsync
// to wait on, so each frame sleeps off whatever time it did not use.
func runPaced(ctx context.Context, g *game.Game, frameMS float64) error {
	period := time.Duration(frameMS * float64(time.Millisecond))
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case now := <-ticker.C:
			dt := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			if !g.Frame(dt) {
				return nil
			}
		}
	}
}
