package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/valentine/internal/geom"
	"github.com/iburimskiy/valentine/internal/proposal"
)

var (
	testContainer = geom.Box{X: 100, Y: 330, W: 600, H: 240}
	testMetrics   = Metrics{ButtonHeight: 44, Padding: 24, Gap: 16}
)

func fixedWidth(label string) float64 { return float64(7 * len(label)) }

func TestComputeSideBySide(t *testing.T) {
	p := proposal.Derive(proposal.InteractionState{}, proposal.DefaultDeck())
	f := Compute(p, testContainer, testMetrics, fixedWidth)

	// "Yes" 21+48, "No" 14+48, gap 16: total 147
	assert.InDelta(t, 69, f.AffirmativeSlot.W, 1e-9)
	assert.InDelta(t, 62, f.NegativeSlot.W, 1e-9)
	assert.InDelta(t, 100+(600-147)/2.0, f.AffirmativeSlot.X, 1e-9)
	assert.InDelta(t, f.AffirmativeSlot.Right()+16, f.NegativeSlot.X, 1e-9)
	assert.InDelta(t, 330+(240-44)/2.0, f.AffirmativeSlot.Y, 1e-9)

	assert.Equal(t, f.AffirmativeSlot, f.Affirmative)
	assert.Equal(t, f.NegativeSlot, f.Negative)
	assert.False(t, f.Affirmative.Overlaps(f.Negative))
}

func TestComputeDodging(t *testing.T) {
	s := proposal.InteractionState{RejectionCount: 2, Dodge: &geom.Offset{Top: 10, Left: 20}}
	p := proposal.Derive(s, proposal.DefaultDeck())
	f := Compute(p, testContainer, testMetrics, fixedWidth)

	yesCenterX, _ := f.Affirmative.Center()
	containerCenterX, _ := testContainer.Center()
	assert.InDelta(t, containerCenterX, yesCenterX, 1e-9, "affirmative centers alone")
	assert.InDelta(t, 69*1.6, f.Affirmative.W, 1e-9)

	assert.InDelta(t, 120, f.Negative.X, 1e-9)
	assert.InDelta(t, 340, f.Negative.Y, 1e-9)
	assert.InDelta(t, f.NegativeSlot.W*0.7, f.Negative.W, 1e-9)
	assert.InDelta(t, 44*0.7, f.Negative.H, 1e-9)
}

func TestGeometryMatchesFrame(t *testing.T) {
	p := proposal.Derive(proposal.InteractionState{RejectionCount: 1, Dodge: &geom.Offset{}}, proposal.DefaultDeck())
	f := Compute(p, testContainer, testMetrics, fixedWidth)
	g := f.Geometry()

	assert.Equal(t, f.Container, g.Container)
	assert.Equal(t, f.Affirmative, g.Affirmative)
	assert.Equal(t, f.Negative, g.Negative)
}

func TestHitTest(t *testing.T) {
	deck := proposal.DefaultDeck()
	p := proposal.Derive(proposal.InteractionState{}, deck)
	f := Compute(p, testContainer, testMetrics, fixedWidth)

	yx, yy := f.Affirmative.Center()
	nx, ny := f.Negative.Center()
	assert.Equal(t, TargetAffirmative, f.HitTest(p, yx, yy))
	assert.Equal(t, TargetNegative, f.HitTest(p, nx, ny))
	assert.Equal(t, TargetNone, f.HitTest(p, 0, 0))

	accepted := proposal.Derive(proposal.InteractionState{Accepted: true}, deck)
	assert.Equal(t, TargetNone, f.HitTest(accepted, yx, yy))
}

func TestHitTestInertNegativePassesThrough(t *testing.T) {
	// Park the inert negative button right on top of the affirmative one
	deck := proposal.DefaultDeck()
	p := proposal.Derive(proposal.InteractionState{RejectionCount: 7, Dodge: &geom.Offset{}}, deck)
	f := Compute(p, testContainer, testMetrics, fixedWidth)
	f.Negative = f.Affirmative

	x, y := f.Affirmative.Center()
	assert.Equal(t, TargetAffirmative, f.HitTest(p, x, y))

	live := proposal.Derive(proposal.InteractionState{RejectionCount: 3, Dodge: &geom.Offset{}}, deck)
	assert.Equal(t, TargetNegative, f.HitTest(live, x, y))
}

func TestQuestionLift(t *testing.T) {
	assert.Zero(t, QuestionLift(0, 8, 24))
	assert.InDelta(t, 8, QuestionLift(1, 8, 24), 1e-9)
	assert.InDelta(t, 16, QuestionLift(2, 8, 24), 1e-9)
	assert.InDelta(t, 24, QuestionLift(3, 8, 24), 1e-9)
	assert.InDelta(t, 24, QuestionLift(40, 8, 24), 1e-9)
}
