package color

import (
	"math/rand/v2"
)

// MaxRandomChannel is the upper bound (inclusive) of a randomized channel.
const MaxRandomChannel = 128

// Randomizer draws randomized channel values.
type Randomizer struct {
	rng *rand.Rand
}

// NewRandomizer returns a Randomizer with a fixed seed.
func NewRandomizer(seed uint64) *Randomizer {
	return &Randomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// DefaultRandomizer returns a Randomizer seeded from the runtime source.
func DefaultRandomizer() *Randomizer {
	return &Randomizer{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Channel returns 0 with probability 1/3, otherwise a uniform value
// in [0, MaxRandomChannel].
func (r *Randomizer) Channel() int {
	// weights 1:2 for 0:1
	coin := 0
	if r.rng.IntN(3) > 0 {
		coin = 1
	}
	return coin * r.rng.IntN(MaxRandomChannel+1)
}

// RGB draws each channel independently.
func (r *Randomizer) RGB() RGB {
	return RGB{R: r.Channel(), G: r.Channel(), B: r.Channel()}
}
