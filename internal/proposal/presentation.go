package proposal

import (
	"math"

	"github.com/iburimskiy/valentine/internal/geom"
)

const (
	affirmativeGrowth = 0.3
	negativeShrink    = 0.15
	// dodgingOpacity is applied to a visible negative button once it has moved.
	dodgingOpacity = 0.95
)

// Presentation is what a frontend needs to draw one frame.
type Presentation struct {
	View View
	Mood Mood

	AffirmativeScale float64
	NegativeScale    float64
	NegativeOpacity  float64
	// NegativeInteractive is false once the negative button has shrunk to nothing; it is
	// still laid out but lets activations pass through.
	NegativeInteractive bool

	Phrase string
	Dodge  *geom.Offset
}

// AffirmativeScale grows linearly and without bound.
func AffirmativeScale(rejections int) float64 {
	return 1 + affirmativeGrowth*float64(rejections)
}

// NegativeScale shrinks linearly and clamps at zero, which it reaches at seven rejections.
func NegativeScale(rejections int) float64 {
	return max(1-negativeShrink*float64(rejections), 0)
}

// PhraseIndex returns the deck index shown for a rejection count; the last phrase repeats.
func PhraseIndex(rejections, deckLen int) int {
	if deckLen <= 0 {
		return 0
	}
	return min(rejections, deckLen-1)
}

// Derive computes the presentation of s. It has no side effects.
func Derive(s InteractionState, deck Deck) Presentation {
	n := s.RejectionCount

	p := Presentation{
		View:             ViewAsking,
		Mood:             MoodInitial,
		AffirmativeScale: AffirmativeScale(n),
		NegativeScale:    NegativeScale(n),
		Phrase:           deck.At(n),
	}
	p.NegativeInteractive = p.NegativeScale > 0
	p.NegativeOpacity = p.NegativeScale

	if s.Dodge != nil {
		d := *s.Dodge
		p.Dodge = &d
		if p.NegativeScale > 0 {
			p.NegativeOpacity = dodgingOpacity
		}
	}

	if n > 0 {
		p.Mood = MoodSad
	}
	if s.Accepted {
		p.View = ViewCelebrating
		p.Mood = MoodSuccess
	}

	return p
}

// roundScale trims floating point noise for log output.
func roundScale(v float64) float64 {
	return math.Round(v*1000) / 1000
}
