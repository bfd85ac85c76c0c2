package proposal

import (
	"math"
	"time"
)

// HeartCount is how many hearts fall in the celebration view.
const HeartCount = 30

const (
	heartMinFall  = 2 * time.Second
	heartFallSpan = 3 * time.Second
	heartMaxDelay = 3 * time.Second
	// HeartVariants is the number of distinct heart glyphs/colours.
	HeartVariants = 4
)

// Heart is one falling decoration. Left is a fraction of the view width.
type Heart struct {
	Left    float64
	Fall    time.Duration
	Delay   time.Duration
	Variant int
}

// NewHearts lays out n hearts at random.
func NewHearts(rng interface{ Float64() float64 }, n int) []Heart {
	hearts := make([]Heart, n)
	for i := range hearts {
		hearts[i] = Heart{
			Left:    rng.Float64(),
			Fall:    heartMinFall + time.Duration(rng.Float64()*float64(heartFallSpan)),
			Delay:   time.Duration(rng.Float64() * float64(heartMaxDelay)),
			Variant: min(int(rng.Float64()*HeartVariants), HeartVariants-1),
		}
	}
	return hearts
}

// At returns how far down the view the heart is, in [0,1), after elapsed time in the
// celebration view. ok is false until the heart's delay has passed. The fall repeats.
func (h Heart) At(elapsed time.Duration) (progress float64, ok bool) {
	if elapsed < h.Delay || h.Fall <= 0 {
		return 0, false
	}
	t := elapsed - h.Delay
	return math.Mod(float64(t), float64(h.Fall)) / float64(h.Fall), true
}
