package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// MelodySampleRate is the rate used when no music file is configured.
const MelodySampleRate = beep.SampleRate(44100)

type note struct {
	freq  float64 // 0 is a rest
	beats float64
}

// A short waltz in C major, 3/4 at 90 BPM.
var waltz = []note{
	{523.25, 1}, {659.25, 1}, {783.99, 1},
	{880.00, 2}, {783.99, 1},
	{698.46, 1}, {659.25, 1}, {587.33, 1},
	{659.25, 3},
	{587.33, 1}, {698.46, 1}, {880.00, 1},
	{783.99, 2}, {659.25, 1},
	{587.33, 1}, {523.25, 1}, {493.88, 1},
	{523.25, 2}, {0, 1},
}

const melodyBeat = time.Minute / 90

// MelodyGenerator plays the built-in waltz forever with a soft bell envelope.
type MelodyGenerator struct {
	sr    beep.SampleRate
	notes []note
	idx   int
	pos   int
	span  int
}

// NewMelodyGenerator creates the fallback background tune.
func NewMelodyGenerator(sr beep.SampleRate) *MelodyGenerator {
	g := &MelodyGenerator{sr: sr, notes: waltz}
	g.span = g.noteLen(0)
	return g
}

func (g *MelodyGenerator) noteLen(i int) int {
	return g.sr.N(time.Duration(g.notes[i].beats * float64(melodyBeat)))
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.span {
			g.idx = (g.idx + 1) % len(g.notes)
			g.pos = 0
			g.span = g.noteLen(g.idx)
		}

		nt := g.notes[g.idx]
		sample := 0.0
		if nt.freq > 0 {
			t := float64(g.pos) / float64(g.sr)
			// Quick attack, exponential release
			attack := math.Min(t/0.01, 1.0)
			envelope := attack * math.Exp(-t*3)
			sample = 0.2 * envelope * (math.Sin(2*math.Pi*nt.freq*t) + 0.3*math.Sin(4*math.Pi*nt.freq*t))
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error {
	return nil
}
