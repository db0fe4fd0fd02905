package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpGenerator is a sine sweep with a linear frequency ramp and a short fade-out.
// It ends after its duration.
type ChirpGenerator struct {
	sr        beep.SampleRate
	startHz   float64
	endHz     float64
	amplitude float64
	samples   int
	pos       int
	phase     float64
}

// NewChirpGenerator creates a chirp from startHz to endHz over d
func NewChirpGenerator(sr beep.SampleRate, startHz, endHz float64, d time.Duration, amplitude float64) *ChirpGenerator {
	return &ChirpGenerator{
		sr:        sr,
		startHz:   startHz,
		endHz:     endHz,
		amplitude: amplitude,
		samples:   sr.N(d),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}

		progress := float64(g.pos) / float64(g.samples)
		freq := g.startHz + (g.endHz-g.startHz)*progress

		// Fade the last quarter to avoid a click
		envelope := 1.0
		if progress > 0.75 {
			envelope = (1 - progress) / 0.25
		}

		sample := g.amplitude * envelope * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// Len returns the total sample count
func (g *ChirpGenerator) Len() int {
	return g.samples
}
