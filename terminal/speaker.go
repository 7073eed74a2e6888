package terminal

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/config"
)

// Speaker plays effects as short sine tones on the default audio device.
type Speaker struct {
	rate   beep.SampleRate
	tones  [audio.NumEffects]audio.Tone
	volume float64
}

// NewSpeaker opens the audio device.
func NewSpeaker(cfg config.AudioConfig) (*Speaker, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	return &Speaker{
		rate:   rate,
		tones:  audio.Tones(cfg),
		volume: cfg.Volume,
	}, nil
}

// Play implements audio.Player. It returns immediately; the tone plays
// on the speaker's own goroutine.
func (s *Speaker) Play(e audio.Effect) {
	if int(e) >= len(s.tones) {
		return
	}
	t := s.tones[e]
	sine, err := generators.SineTone(s.rate, t.Freq)
	if err != nil {
		return
	}
	tone := beep.Take(s.rate.N(t.Duration), sine)
	speaker.Play(&effects.Gain{Streamer: tone, Gain: s.volume - 1})
}

// Close releases the audio device.
func (s *Speaker) Close() error {
	speaker.Close()
	return nil
}
