package audio

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/pong/config"
)

func TestCounterAndMulti(t *testing.T) {
	a, b := &Counter{}, &Counter{}
	var p Player = Multi{a, b, Nop{}}

	p.Play(EffectPaddleHit)
	p.Play(EffectPaddleHit)
	p.Play(EffectScore)

	for _, c := range []*Counter{a, b} {
		if c.Count(EffectPaddleHit) != 2 || c.Count(EffectScore) != 1 || c.Count(EffectWallHit) != 0 {
			t.Errorf("counts = %d/%d/%d", c.Count(EffectPaddleHit), c.Count(EffectWallHit), c.Count(EffectScore))
		}
		if c.Total() != 3 {
			t.Errorf("Total = %d, want 3", c.Total())
		}
	}
	a.Reset()
	if a.Total() != 0 {
		t.Error("Reset did not clear counts")
	}
}

func TestTones(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	tones := Tones(cfg.Audio)

	if tones[EffectPaddleHit].Freq != 459 || tones[EffectPaddleHit].Duration != 32*time.Millisecond {
		t.Errorf("paddle tone = %+v", tones[EffectPaddleHit])
	}
	if tones[EffectScore].Duration != 257*time.Millisecond {
		t.Errorf("score duration = %v", tones[EffectScore].Duration)
	}
}

func TestSynthesizePCM(t *testing.T) {
	tone := Tone{Freq: 459, Duration: 32 * time.Millisecond}
	samples := SynthesizePCM(tone, 44100, 0.5)

	if want := int(0.032 * 44100); len(samples) != want {
		t.Fatalf("len = %d, want %d", len(samples), want)
	}
	limit := int16(0.5*math.MaxInt16) + 1
	for i, s := range samples {
		if s > limit || s < -limit {
			t.Fatalf("sample %d = %d exceeds volume", i, s)
		}
	}
	if samples[0] <= 0 {
		t.Errorf("square wave should start high, got %d", samples[0])
	}
	if last := samples[len(samples)-1]; last > 500 || last < -500 {
		t.Errorf("last sample %d not faded out", last)
	}

	if SynthesizePCM(Tone{Freq: 0, Duration: time.Second}, 44100, 1) != nil {
		t.Error("zero frequency should produce no samples")
	}
	if SynthesizePCM(Tone{Freq: 440}, 44100, 1) != nil {
		t.Error("zero duration should produce no samples")
	}
}
