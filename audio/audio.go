// Package audio defines the sound effects the simulation triggers and the
// player capability front ends implement.
package audio

import (
	"math"
	"time"

	"github.com/pthm-cable/pong/config"
)

// Effect identifies a sound effect.
type Effect uint8

const (
	EffectPaddleHit Effect = iota
	EffectWallHit
	EffectScore

	NumEffects = 3
)

func (e Effect) String() string {
	switch e {
	case EffectPaddleHit:
		return "paddle_hit"
	case EffectWallHit:
		return "wall_hit"
	case EffectScore:
		return "score"
	default:
		return "unknown"
	}
}

// Player plays effects. Play is fire-and-forget.
type Player interface {
	Play(e Effect)
}

// Nop discards every effect.
type Nop struct{}

// Play implements Player.
func (Nop) Play(Effect) {}

// Counter records how often each effect was played.
type Counter struct {
	counts [NumEffects]int
}

// Play implements Player.
func (c *Counter) Play(e Effect) {
	if int(e) < NumEffects {
		c.counts[e]++
	}
}

// Count returns the number of plays of e.
func (c *Counter) Count(e Effect) int {
	if int(e) >= NumEffects {
		return 0
	}
	return c.counts[e]
}

// Total returns the number of plays of all effects.
func (c *Counter) Total() int {
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

// Reset clears all counts.
func (c *Counter) Reset() {
	c.counts = [NumEffects]int{}
}

// Multi plays every effect on each of its players.
type Multi []Player

// Play implements Player.
func (m Multi) Play(e Effect) {
	for _, p := range m {
		p.Play(e)
	}
}

// Tone is a synthesized beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Tones returns the configured tone for each effect, indexed by Effect.
func Tones(cfg config.AudioConfig) [NumEffects]Tone {
	mk := func(t config.ToneConfig) Tone {
		return Tone{Freq: t.Freq, Duration: time.Duration(t.DurationMS * float64(time.Millisecond))}
	}
	var tones [NumEffects]Tone
	tones[EffectPaddleHit] = mk(cfg.Paddle)
	tones[EffectWallHit] = mk(cfg.Wall)
	tones[EffectScore] = mk(cfg.Score)
	return tones
}

// SynthesizePCM renders a mono 16-bit square wave for t.
// The last few milliseconds fade out linearly to avoid a click.
func SynthesizePCM(t Tone, sampleRate int, volume float64) []int16 {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	if n <= 0 || t.Freq <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))
	fade := sampleRate / 200 // 5ms
	if fade > n {
		fade = n
	}

	samples := make([]int16, n)
	period := float64(sampleRate) / t.Freq
	for i := range samples {
		phase := math.Mod(float64(i), period) / period
		v := volume
		if phase >= 0.5 {
			v = -volume
		}
		if rem := n - i; rem < fade {
			v *= float64(rem) / float64(fade)
		}
		samples[i] = int16(v * math.MaxInt16)
	}
	return samples
}
