package renderer

import (
	"encoding/binary"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/config"
)

// loadSounds loads each effect from its configured WAV file, or
// synthesizes a tone when no file is configured.
func (w *Window) loadSounds(cfg *config.Config) error {
	paths := [audio.NumEffects]string{
		audio.EffectPaddleHit: cfg.Assets.SFXPaddle,
		audio.EffectWallHit:   cfg.Assets.SFXWall,
		audio.EffectScore:     cfg.Assets.SFXScore,
	}
	tones := audio.Tones(cfg.Audio)

	for i, path := range paths {
		e := audio.Effect(i)
		if path != "" {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("loading %s sound: %w", e, err)
			}
			w.sounds[i] = rl.LoadSound(path)
		} else {
			pcm := audio.SynthesizePCM(tones[i], cfg.Audio.SampleRate, cfg.Audio.Volume)
			if len(pcm) == 0 {
				continue
			}
			wave := rl.NewWave(uint32(len(pcm)), uint32(cfg.Audio.SampleRate), 16, 1, pcmBytes(pcm))
			w.sounds[i] = rl.LoadSoundFromWave(wave)
		}
		if !rl.IsSoundValid(w.sounds[i]) {
			return fmt.Errorf("loading %s sound: unsupported or corrupt data", e)
		}
	}
	return nil
}

// pcmBytes encodes 16-bit samples as little-endian bytes.
func pcmBytes(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// Play implements audio.Player.
func (w *Window) Play(e audio.Effect) {
	if int(e) >= len(w.sounds) {
		return
	}
	if s := w.sounds[e]; rl.IsSoundValid(s) {
		rl.PlaySound(s)
	}
}
