package geom

// MaxPlacementAttempts bounds the random search before falling back to the origin.
const MaxPlacementAttempts = 50

// Rand is the random source the placer samples from. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Geometry is a snapshot of the three boxes involved in a placement, all in the same
// coordinate space.
type Geometry struct {
	Container   Box
	Affirmative Box
	Negative    Box
}

// Placement is the result of one placer run.
type Placement struct {
	Offset   Offset
	Attempts int
	// Fallback is set when every attempt collided and Offset is the container origin.
	// The fallback may overlap the affirmative button.
	Fallback bool
}

// Placer moves the negative button somewhere inside its container that does not cover the
// affirmative button, using bounded random retry.
type Placer struct {
	rng Rand
}

// NewPlacer creates a placer drawing candidates from rng.
func NewPlacer(rng Rand) *Placer {
	return &Placer{rng: rng}
}

// Place returns a container-relative offset for the negative button.
func (p *Placer) Place(g Geometry) Placement {
	exclusion := g.Affirmative.Relative(g.Container)

	spanX := nonNegative(g.Container.W - g.Negative.W)
	spanY := nonNegative(g.Container.H - g.Negative.H)

	for attempt := 1; attempt <= MaxPlacementAttempts; attempt++ {
		top := p.rng.Float64() * spanY
		left := p.rng.Float64() * spanX

		candidate := Box{X: left, Y: top, W: g.Negative.W, H: g.Negative.H}
		if !candidate.Overlaps(exclusion) {
			return Placement{
				Offset:   Offset{Top: top, Left: left},
				Attempts: attempt,
			}
		}
	}

	return Placement{
		Offset:   Offset{},
		Attempts: MaxPlacementAttempts,
		Fallback: true,
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
