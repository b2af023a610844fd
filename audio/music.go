package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// MusicVolume is the level the background track plays at.
const MusicVolume = 0.1

// A minor arpeggio with a falling turn, one note per step.
var mysteriousMagicNotes = []float64{
	220.00, 261.63, 329.63, 440.00, 392.00, 329.63, 261.63, 246.94,
	196.00, 246.94, 293.66, 392.00, 349.23, 293.66, 246.94, 207.65,
}

const musicStep = 320 * time.Millisecond

// musicGenerator plays the arpeggio forever. Each note decays and is doubled
// an octave below.
type musicGenerator struct {
	rate     beep.SampleRate
	notes    []float64
	stepLen  int
	position int
	phase    float64
	subPhase float64
}

// MysteriousMagic returns an endless streamer of the background music.
func MysteriousMagic(rate beep.SampleRate) beep.Streamer {
	return &musicGenerator{
		rate:    rate,
		notes:   mysteriousMagicNotes,
		stepLen: rate.N(musicStep),
	}
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := g.position / g.stepLen
		freq := g.notes[step%len(g.notes)]
		t := float64(g.position%g.stepLen) / float64(g.stepLen)
		decay := math.Exp(-3 * t)

		v := decay * (0.7*math.Sin(2*math.Pi*g.phase) + 0.3*math.Sin(2*math.Pi*g.subPhase))
		// slight stereo spread
		samples[i][0] = v
		samples[i][1] = v * (0.85 + 0.15*math.Sin(float64(step)))

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.subPhase += freq / 2 / float64(g.rate)
		g.subPhase -= math.Floor(g.subPhase)
		g.position++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
