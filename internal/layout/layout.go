// Package layout places the question buttons inside their container for a given
// presentation. It is shared by the frontends and has no drawing dependencies.
package layout

import (
	"github.com/iburimskiy/valentine/internal/geom"
	"github.com/iburimskiy/valentine/internal/proposal"
)

// AffirmativeLabel is the text of the affirmative button.
const AffirmativeLabel = "Yes"

// Measure returns the drawn width of a label.
type Measure func(label string) float64

// Metrics are the unscaled button dimensions.
type Metrics struct {
	ButtonHeight float64
	Padding      float64
	Gap          float64
}

// QuestionLift is how far the question moves up after the given number of rejections. It
// grows by step per rejection and stops at limit.
func QuestionLift(rejections int, step, limit float64) float64 {
	return max(min(float64(rejections)*step, limit), 0)
}

// Frame holds the on-screen boxes of one presentation.
type Frame struct {
	Container geom.Box
	// Slots are the unscaled layout positions.
	AffirmativeSlot geom.Box
	NegativeSlot    geom.Box
	// Affirmative and Negative are the visible, scaled boxes.
	Affirmative geom.Box
	Negative    geom.Box
}

// Compute lays out both buttons. Without a dodge offset the buttons sit side by side,
// centered in the container. Once the negative button dodges it leaves the row, the
// affirmative button centers alone, and the offset is the top-left of the negative
// button's visible box.
func Compute(p proposal.Presentation, container geom.Box, m Metrics, measure Measure) Frame {
	yesW := measure(AffirmativeLabel) + 2*m.Padding
	noW := measure(p.Phrase) + 2*m.Padding
	y := container.Y + (container.H-m.ButtonHeight)/2

	f := Frame{Container: container}

	if p.Dodge == nil {
		total := yesW + m.Gap + noW
		x := container.X + (container.W-total)/2
		f.AffirmativeSlot = geom.Box{X: x, Y: y, W: yesW, H: m.ButtonHeight}
		f.NegativeSlot = geom.Box{X: x + yesW + m.Gap, Y: y, W: noW, H: m.ButtonHeight}
		f.Negative = f.NegativeSlot.Scale(p.NegativeScale)
	} else {
		f.AffirmativeSlot = geom.Box{X: container.X + (container.W-yesW)/2, Y: y, W: yesW, H: m.ButtonHeight}
		f.NegativeSlot = geom.Box{W: noW, H: m.ButtonHeight}.At(container, *p.Dodge)
		f.Negative = geom.Box{
			X: f.NegativeSlot.X,
			Y: f.NegativeSlot.Y,
			W: noW * p.NegativeScale,
			H: m.ButtonHeight * p.NegativeScale,
		}
	}

	f.Affirmative = f.AffirmativeSlot.Scale(p.AffirmativeScale)
	return f
}

// Geometry converts the frame into the placer's input.
func (f Frame) Geometry() geom.Geometry {
	return geom.Geometry{
		Container:   f.Container,
		Affirmative: f.Affirmative,
		Negative:    f.Negative,
	}
}

// Target identifies what an activation landed on.
type Target int

const (
	TargetNone Target = iota
	TargetAffirmative
	TargetNegative
)

// HitTest resolves a pointer position. The negative button is drawn on top, but an inert
// negative button lets the activation through.
func (f Frame) HitTest(p proposal.Presentation, x, y float64) Target {
	if p.View != proposal.ViewAsking {
		return TargetNone
	}
	if p.NegativeInteractive && f.Negative.Contains(x, y) {
		return TargetNegative
	}
	if f.Affirmative.Contains(x, y) {
		return TargetAffirmative
	}
	return TargetNone
}
