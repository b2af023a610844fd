package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/plus3/carshooter/shooter"
)

const (
	impactDuration = 150 * time.Millisecond
	impactAttack   = 2 * time.Millisecond
	impactRelease  = 120 * time.Millisecond

	chimeNote1   = 90 * time.Millisecond
	chimeNote2   = 160 * time.Millisecond
	chimeAttack  = 5 * time.Millisecond
	chimeRelease = 60 * time.Millisecond
)

// Impact2 is a short thud: a falling sine under a burst of noise.
func Impact2(rate beep.SampleRate) beep.Streamer {
	thump := NewEnvelope(NewSweep(180, 60, impactDuration, WaveSine, rate), impactDuration, impactAttack, impactRelease, rate)
	noise := NewEnvelope(NewOscillator(0, impactDuration, WaveNoise, rate), impactDuration, impactAttack, impactRelease, rate)
	return beep.Mix(newVolume(thump, 0.65), newVolume(noise, 0.3))
}

// Confirmation1 is a rising two-note chime (E5 then B5).
func Confirmation1(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(659.25, chimeNote1, WaveSquare, rate), chimeNote1, chimeAttack, chimeRelease, rate)
	n2 := NewEnvelope(NewOscillator(987.77, chimeNote2, WaveSquare, rate), chimeNote2, chimeAttack, chimeRelease, rate)
	return newVolume(beep.Seq(n1, n2), 0.4)
}

// Effect returns a fresh streamer for sfx, or nil for an unknown effect.
func Effect(sfx shooter.SoundEffect, rate beep.SampleRate) beep.Streamer {
	switch sfx {
	case shooter.SfxImpact2:
		return Impact2(rate)
	case shooter.SfxConfirmation1:
		return Confirmation1(rate)
	default:
		return nil
	}
}

// EffectDuration is how long Effect(sfx) plays.
func EffectDuration(sfx shooter.SoundEffect) time.Duration {
	switch sfx {
	case shooter.SfxImpact2:
		return impactDuration
	case shooter.SfxConfirmation1:
		return chimeNote1 + chimeNote2
	default:
		return 0
	}
}
