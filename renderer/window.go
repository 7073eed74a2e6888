// Package renderer is the raylib front end: it owns the window, the audio
// device, the font and the sound effects, and implements the game's
// Renderer, sound Player and input Source on top of them.
package renderer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/camera"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/input"
	"github.com/pthm-cable/pong/ui"
)

// Window is an open raylib window with its audio device.
type Window struct {
	cfg *config.Config
	cam *camera.Camera

	font       rl.Font
	customFont bool
	sounds     [audio.NumEffects]rl.Sound

	// Clicks on UI controls, returned by the next Poll
	actions input.Queue

	gameOver  *ui.GameOverPanel
	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	particles *ParticleRenderer
	debug     bool
}

// Open creates the window, audio device, font and sounds.
// Any failure is returned after releasing what was already acquired.
func Open(cfg *config.Config, debug bool) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)

	var flags uint32 = rl.FlagVsyncHint
	if cfg.Screen.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("creating window")
	}
	// Esc is handled as a game key, not raylib's exit key
	rl.SetExitKey(0)
	if cfg.Screen.TargetFPS > 0 {
		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	}

	w := &Window{
		cfg: cfg,
		cam: camera.New(
			float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()),
			cfg.Playfield.Width, cfg.Playfield.Height,
			camera.Letterbox,
		),
		gameOver:  ui.NewGameOverPanel(),
		hud:       ui.NewHUD(),
		perfPanel: ui.NewPerfPanel(10, 10),
		particles: NewParticleRenderer(),
		debug:     debug,
	}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		rl.CloseWindow()
		return nil, errors.New("opening audio device")
	}

	if err := w.loadFont(cfg.Assets.Font); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.loadSounds(cfg); err != nil {
		w.Close()
		return nil, err
	}

	slog.Info("window_opened",
		"width", rl.GetScreenWidth(),
		"height", rl.GetScreenHeight(),
		"custom_font", w.customFont,
	)
	return w, nil
}

// loadFont loads the score font, or selects raylib's default when path is empty.
func (w *Window) loadFont(path string) error {
	if path == "" {
		w.font = rl.GetFontDefault()
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	font := rl.LoadFont(path)
	if !rl.IsFontValid(font) {
		return fmt.Errorf("loading font %q: unsupported or corrupt file", path)
	}
	w.font = font
	w.customFont = true
	return nil
}

// Close releases sounds, font, audio device and window, in that order.
func (w *Window) Close() error {
	for i := range w.sounds {
		if rl.IsSoundValid(w.sounds[i]) {
			rl.UnloadSound(w.sounds[i])
		}
	}
	if w.customFont {
		rl.UnloadFont(w.font)
		w.customFont = false
	}
	if rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
	}
	if rl.IsWindowReady() {
		rl.CloseWindow()
	}
	return nil
}
