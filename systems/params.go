// Package systems contains the simulation systems that advance a Match.
package systems

import "github.com/pthm-cable/pong/config"

// Params holds every tunable the systems read, flattened from the config
// so the hot path does not chase nested structs.
type Params struct {
	Width, Height float64 // Playfield extent

	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64
	PaddleSpawnY float64
	LeftPaddleX  float64
	RightPaddleX float64

	BallRadius float64
	BallSpeed  float64

	WinningScore   int
	RespawnDelayMS float64
	HiddenX        float64
	HiddenY        float64
	WallNudge      float64

	MaxDeflectRad    float64
	DeflectAmplitude float64
	DeflectFrequency float64
	DeflectOffset    float64
	MaxServeAngleRad float64

	RightAI    bool
	AIDeadband float64
	AIGain     float64

	FixedStepMS float64
	MaxFrameMS  float64
}

// ParamsFromConfig flattens a loaded config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Width:  cfg.Playfield.Width,
		Height: cfg.Playfield.Height,

		PaddleWidth:  cfg.Derived.PaddleWidth,
		PaddleHeight: cfg.Derived.PaddleHeight,
		PaddleSpeed:  cfg.Paddle.Speed,
		PaddleSpawnY: cfg.Derived.PaddleSpawnY,
		LeftPaddleX:  cfg.Derived.LeftPaddleX,
		RightPaddleX: cfg.Derived.RightPaddleX,

		BallRadius: cfg.Derived.BallRadius,
		BallSpeed:  cfg.Ball.Speed,

		WinningScore:   cfg.Rules.WinningScore,
		RespawnDelayMS: cfg.Rules.RespawnDelayMS,
		HiddenX:        cfg.Rules.HiddenX,
		HiddenY:        cfg.Rules.HiddenY,
		WallNudge:      cfg.Rules.WallNudge,

		MaxDeflectRad:    cfg.Derived.MaxDeflectRad,
		DeflectAmplitude: cfg.Deflection.Amplitude,
		DeflectFrequency: cfg.Deflection.Frequency,
		DeflectOffset:    cfg.Deflection.Offset,
		MaxServeAngleRad: cfg.Derived.MaxServeAngleRad,

		RightAI:    cfg.AI.RightEnabled,
		AIDeadband: cfg.AI.Deadband,
		AIGain:     cfg.AI.Gain,

		FixedStepMS: cfg.Physics.FixedStepMS,
		MaxFrameMS:  cfg.Physics.MaxFrameMS,
	}
}
