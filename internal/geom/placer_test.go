package geom

import (
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed sequence of samples and then repeats the last one.
type scriptedRand struct {
	values []float64
	pos    int
}

func (r *scriptedRand) Float64() float64 {
	if r.pos >= len(r.values) {
		return r.values[len(r.values)-1]
	}
	v := r.values[r.pos]
	r.pos++
	return v
}

func roomyGeometry() Geometry {
	return Geometry{
		Container:   Box{X: 100, Y: 380, W: 600, H: 180},
		Affirmative: Box{X: 270, Y: 446, W: 120, H: 48},
		Negative:    Box{X: 406, Y: 446, W: 120, H: 48},
	}
}

func TestBoxOverlaps(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Overlaps(Box{X: 5, Y: 5, W: 10, H: 10}))
	assert.True(t, a.Overlaps(Box{X: 2, Y: 2, W: 2, H: 2}), "contained box overlaps")
	assert.False(t, a.Overlaps(Box{X: 10, Y: 0, W: 5, H: 5}), "touching edges do not overlap")
	assert.False(t, a.Overlaps(Box{X: 0, Y: 11, W: 5, H: 5}))
	assert.False(t, a.Overlaps(Box{X: 20, Y: 20, W: 5, H: 5}))
}

func TestBoxScaleKeepsCenter(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 100, H: 40}
	s := b.Scale(1.5)

	cx, cy := b.Center()
	sx, sy := s.Center()
	assert.InDelta(t, cx, sx, 1e-9)
	assert.InDelta(t, cy, sy, 1e-9)
	assert.InDelta(t, 150, s.W, 1e-9)
	assert.InDelta(t, 60, s.H, 1e-9)

	zero := b.Scale(0)
	assert.Zero(t, zero.W)
	assert.Zero(t, zero.H)
}

func TestBoxRelativeUsesContainerOrigin(t *testing.T) {
	parent := Box{X: 100, Y: 300, W: 500, H: 200}
	child := Box{X: 150, Y: 320, W: 10, H: 10}

	rel := child.Relative(parent)
	assert.Equal(t, Box{X: 50, Y: 20, W: 10, H: 10}, rel)
	assert.Equal(t, child, rel.At(parent, Offset{Top: rel.Y, Left: rel.X}))
}

func TestPlaceFirstFreeCandidate(t *testing.T) {
	g := roomyGeometry()
	// top, left pairs: the first lands on the affirmative button, the second is free
	rng := &scriptedRand{values: []float64{
		(446 - 380) / 132.0, (270 - 100) / 480.0,
		0, 0,
	}}

	p := NewPlacer(rng).Place(g)
	require.False(t, p.Fallback)
	assert.Equal(t, 2, p.Attempts)
	assert.Equal(t, Offset{Top: 0, Left: 0}, p.Offset)
}

func TestPlaceSamplesWithinContainer(t *testing.T) {
	g := roomyGeometry()
	rng := &scriptedRand{values: []float64{0.999, 0.999}}

	p := NewPlacer(rng).Place(g)
	require.False(t, p.Fallback)
	assert.Less(t, p.Offset.Left+g.Negative.W, g.Container.W)
	assert.Less(t, p.Offset.Top+g.Negative.H, g.Container.H)
}

func TestPlaceFallsBackWhenAlwaysColliding(t *testing.T) {
	g := Geometry{
		Container:   Box{X: 0, Y: 0, W: 300, H: 100},
		Affirmative: Box{X: 0, Y: 0, W: 300, H: 100},
		Negative:    Box{X: 10, Y: 10, W: 50, H: 20},
	}

	for seed := uint64(0); seed < 20; seed++ {
		p := NewPlacer(rand.New(rand.NewPCG(seed, seed))).Place(g)
		assert.True(t, p.Fallback)
		assert.Equal(t, MaxPlacementAttempts, p.Attempts)
		assert.Equal(t, Offset{}, p.Offset)
	}
}

func TestPlaceNegativeLargerThanContainer(t *testing.T) {
	g := Geometry{
		Container:   Box{X: 0, Y: 0, W: 50, H: 20},
		Affirmative: Box{X: 200, Y: 200, W: 10, H: 10},
		Negative:    Box{X: 0, Y: 0, W: 80, H: 40},
	}

	p := NewPlacer(rand.New(rand.NewPCG(1, 2))).Place(g)
	assert.False(t, p.Fallback)
	assert.Equal(t, Offset{}, p.Offset)
}

func TestPlaceStatisticallyAvoidsAffirmative(t *testing.T) {
	g := roomyGeometry()
	exclusion := g.Affirmative.Relative(g.Container)

	fallbacks := 0
	for seed := uint64(0); seed < 2000; seed++ {
		p := NewPlacer(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))).Place(g)
		if p.Fallback {
			fallbacks++
			continue
		}
		placed := Box{X: p.Offset.Left, Y: p.Offset.Top, W: g.Negative.W, H: g.Negative.H}
		require.False(t, placed.Overlaps(exclusion), "seed %d", seed)
	}
	assert.Zero(t, fallbacks)
}

func TestPlaceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("result is in bounds and clear of the affirmative box, or the origin fallback", prop.ForAll(
		func(cw, ch, ax, ay, aw, ah, nw, nh float64, seed uint64) bool {
			g := Geometry{
				Container:   Box{X: 40, Y: 60, W: cw, H: ch},
				Affirmative: Box{X: 40 + ax*cw, Y: 60 + ay*ch, W: aw, H: ah},
				Negative:    Box{W: nw, H: nh},
			}
			p := NewPlacer(rand.New(rand.NewPCG(seed, seed+1))).Place(g)

			if p.Attempts < 1 || p.Attempts > MaxPlacementAttempts {
				return false
			}
			if p.Fallback {
				return p.Offset == Offset{} && p.Attempts == MaxPlacementAttempts
			}

			placed := Box{X: p.Offset.Left, Y: p.Offset.Top, W: nw, H: nh}
			inBounds := placed.X >= 0 && placed.Y >= 0 &&
				placed.Right() <= cw+1e-9 && placed.Bottom() <= ch+1e-9
			return inBounds && !placed.Overlaps(g.Affirmative.Relative(g.Container))
		},
		gen.Float64Range(200, 1200),
		gen.Float64Range(60, 400),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(10, 300),
		gen.Float64Range(10, 200),
		gen.Float64Range(10, 180),
		gen.Float64Range(10, 50),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
