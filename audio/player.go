package audio

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/carshooter/config"
	"github.com/plus3/carshooter/shooter"
)

// Player mixes sound effects and music into a single stream. Until Start
// attaches it to the speaker the mix can be pulled through Stream, which is
// what tests do.
type Player struct {
	mu       sync.Mutex
	cfg      config.Audio
	rate     beep.SampleRate
	mixer    *beep.Mixer
	music    *beep.Ctrl
	attached bool
}

func NewPlayer(cfg config.Audio) *Player {
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Start opens the speaker and begins playback of the mix. A disabled player
// never touches the speaker. When the speaker cannot be opened the player
// disables itself and stays silent.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || p.attached {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		p.cfg.Enabled = false
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.attached = true
	return nil
}

// Close stops everything that is playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.withMixer(func() {
		p.mixer.Clear()
	})
	if p.attached {
		speaker.Clear()
		p.attached = false
	}
	p.music = nil
}

// Play starts a one-shot effect at volume, further scaled by the configured
// effect and master volumes.
func (p *Player) Play(sfx shooter.SoundEffect, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled {
		return
	}
	s := Effect(sfx, p.rate)
	if s == nil {
		return
	}
	vol := volume * p.cfg.EffectVolume(strings.ToLower(sfx.String())) * p.cfg.MasterVolume
	p.withMixer(func() {
		p.mixer.Add(newVolume(s, vol))
	})
}

// StartMusic loops the background track. Calling it while music plays does nothing.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || !p.cfg.Music {
		return
	}
	if p.music != nil {
		p.withMixer(func() { p.music.Paused = false })
		return
	}

	vol := MusicVolume * p.cfg.EffectVolume("music") * p.cfg.MasterVolume
	p.music = &beep.Ctrl{Streamer: newVolume(MysteriousMagic(p.rate), vol)}
	p.withMixer(func() {
		p.mixer.Add(p.music)
	})
}

func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music != nil {
		p.withMixer(func() { p.music.Paused = true })
	}
}

// MusicPlaying reports whether the background track is audible.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil && !p.music.Paused
}

// Active returns the number of streamers in the mix.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	p.withMixer(func() { n = p.mixer.Len() })
	return n
}

// Stream pulls samples from the mix directly. It must not be used once the
// player is attached to the speaker.
func (p *Player) Stream(samples [][2]float64) (int, bool) {
	return p.mixer.Stream(samples)
}

func (p *Player) Err() error { return nil }

// withMixer runs fn while the speaker is not reading the mixer.
func (p *Player) withMixer(fn func()) {
	if p.attached {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
