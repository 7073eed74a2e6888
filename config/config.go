// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Rules      RulesConfig      `yaml:"rules"`
	Deflection DeflectionConfig `yaml:"deflection"`
	Serve      ServeConfig      `yaml:"serve"`
	AI         AIConfig         `yaml:"ai"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Assets     AssetsConfig     `yaml:"assets"`
	Audio      AudioConfig      `yaml:"audio"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	FX         FXConfig         `yaml:"fx"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// PlayfieldConfig holds the simulation's coordinate space.
// All positions and velocities are expressed in playfield units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig holds paddle geometry and speed.
type PaddleConfig struct {
	EdgeSpacing    float64 `yaml:"edge_spacing"`    // Gap between the playfield edge and the paddle
	HeightFraction float64 `yaml:"height_fraction"` // Paddle height as a fraction of playfield height
	WidthFraction  float64 `yaml:"width_fraction"`  // Paddle width as a fraction of playfield width
	Speed          float64 `yaml:"speed"`           // Units per millisecond
}

// BallConfig holds ball geometry and base speed.
type BallConfig struct {
	RadiusFraction float64 `yaml:"radius_fraction"` // Radius as a fraction of playfield height
	Speed          float64 `yaml:"speed"`           // Base speed, units per millisecond
}

// RulesConfig holds scoring and respawn rules.
type RulesConfig struct {
	WinningScore   int     `yaml:"winning_score"`
	RespawnDelayMS float64 `yaml:"respawn_delay_ms"`
	HiddenX        float64 `yaml:"hidden_x"`
	HiddenY        float64 `yaml:"hidden_y"`
	WallNudge      float64 `yaml:"wall_nudge"` // Distance the ball is pushed back after a wall bounce
}

// DeflectionConfig shapes the paddle bounce.
// multiplier = amplitude*sin(frequency*n - pi/2) + offset
type DeflectionConfig struct {
	MaxAngleDeg float64 `yaml:"max_angle_deg"`
	Amplitude   float64 `yaml:"amplitude"`
	Frequency   float64 `yaml:"frequency"`
	Offset      float64 `yaml:"offset"`
}

// ServeConfig holds serve direction limits.
type ServeConfig struct {
	MaxAngleDeg float64 `yaml:"max_angle_deg"`
}

// AIConfig holds the reactive paddle controller settings.
type AIConfig struct {
	RightEnabled bool    `yaml:"right_enabled"`
	Deadband     float64 `yaml:"deadband"`
	Gain         float64 `yaml:"gain"`
}

// PhysicsConfig selects the integration policy.
type PhysicsConfig struct {
	FixedStepMS float64 `yaml:"fixed_step_ms"` // 0 = one Euler step per frame
	MaxFrameMS  float64 `yaml:"max_frame_ms"`
}

// AssetsConfig holds optional asset paths. Empty paths select built-ins.
type AssetsConfig struct {
	Font      string `yaml:"font"`
	SFXPaddle string `yaml:"sfx_paddle"`
	SFXWall   string `yaml:"sfx_wall"`
	SFXScore  string `yaml:"sfx_score"`
}

// ToneConfig describes a synthesized square-ish beep.
type ToneConfig struct {
	Freq       float64 `yaml:"freq"`
	DurationMS float64 `yaml:"duration_ms"`
}

// AudioConfig holds synthesized sound parameters.
type AudioConfig struct {
	SampleRate int        `yaml:"sample_rate"`
	Volume     float64    `yaml:"volume"`
	Paddle     ToneConfig `yaml:"paddle"`
	Wall       ToneConfig `yaml:"wall"`
	Score      ToneConfig `yaml:"score"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfLogIntervalS float64 `yaml:"perf_log_interval_s"`
	FrameWindow      int     `yaml:"frame_window"`
	BookmarkHistory  int     `yaml:"bookmark_history"` // Rallies averaged for long-rally detection
}

// TerminalConfig holds settings for the terminal front end.
type TerminalConfig struct {
	ReleaseTimeoutMS float64 `yaml:"release_timeout_ms"` // Synthesized key-up after this long without repeat
	FrameMS          float64 `yaml:"frame_ms"`
}

// FXConfig holds cosmetic contact spark settings.
type FXConfig struct {
	SparksPerHit int     `yaml:"sparks_per_hit"`
	SparkLifeMS  float64 `yaml:"spark_life_ms"`
	SparkSpeed   float64 `yaml:"spark_speed"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	PaddleWidth      float64
	PaddleHeight     float64
	PaddleSpawnY     float64 // Top edge of a vertically centered paddle
	LeftPaddleX      float64
	RightPaddleX     float64
	BallRadius       float64
	MaxDeflectRad    float64
	MaxServeAngleRad float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %gx%g", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Paddle.HeightFraction <= 0 || c.Paddle.HeightFraction >= 1 {
		errs = append(errs, fmt.Errorf("paddle.height_fraction must be in (0, 1), got %g", c.Paddle.HeightFraction))
	}
	if c.Paddle.WidthFraction <= 0 {
		errs = append(errs, fmt.Errorf("paddle.width_fraction must be positive, got %g", c.Paddle.WidthFraction))
	}
	if c.Paddle.Speed <= 0 {
		errs = append(errs, fmt.Errorf("paddle.speed must be positive, got %g", c.Paddle.Speed))
	}
	if c.Ball.RadiusFraction <= 0 {
		errs = append(errs, fmt.Errorf("ball.radius_fraction must be positive, got %g", c.Ball.RadiusFraction))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball.speed must be positive, got %g", c.Ball.Speed))
	}
	if c.Rules.WinningScore < 1 {
		errs = append(errs, fmt.Errorf("rules.winning_score must be at least 1, got %d", c.Rules.WinningScore))
	}
	if c.Rules.RespawnDelayMS < 0 {
		errs = append(errs, fmt.Errorf("rules.respawn_delay_ms must not be negative, got %g", c.Rules.RespawnDelayMS))
	}
	if c.Terminal.FrameMS <= 0 {
		errs = append(errs, fmt.Errorf("terminal.frame_ms must be positive, got %g", c.Terminal.FrameMS))
	}
	if c.Terminal.ReleaseTimeoutMS < 0 {
		errs = append(errs, fmt.Errorf("terminal.release_timeout_ms must not be negative, got %g", c.Terminal.ReleaseTimeoutMS))
	}
	if c.Physics.FixedStepMS < 0 {
		errs = append(errs, fmt.Errorf("physics.fixed_step_ms must not be negative, got %g", c.Physics.FixedStepMS))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	w, h := c.Playfield.Width, c.Playfield.Height

	c.Derived.PaddleHeight = h * c.Paddle.HeightFraction
	c.Derived.PaddleWidth = w * c.Paddle.WidthFraction
	c.Derived.PaddleSpawnY = h/2 - c.Derived.PaddleHeight/2
	c.Derived.LeftPaddleX = c.Paddle.EdgeSpacing
	c.Derived.RightPaddleX = w - c.Paddle.EdgeSpacing - c.Derived.PaddleWidth
	c.Derived.BallRadius = h * c.Ball.RadiusFraction
	c.Derived.MaxDeflectRad = c.Deflection.MaxAngleDeg * math.Pi / 180
	c.Derived.MaxServeAngleRad = c.Serve.MaxAngleDeg * math.Pi / 180
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
