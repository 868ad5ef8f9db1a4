// Package generator produces random but legal MemoryTask and ProcessesTask
// values; for a fixed seed the same request sequence is reproduced across
// runs.
package generator

import (
	"math/rand/v2"
	"time"
)

// Source wraps a seedable ChaCha8 generator so callers (tests, the CLI) can
// pin a seed instead of relying on process-global state.
type Source struct {
	rng *rand.Rand
}

// NewSource builds a Source from an explicit 32-byte seed.
func NewSource(seed [32]byte) *Source {
	return &Source{rng: rand.New(rand.NewChaCha8(seed))}
}

// NewSourceFromTime builds a Source seeded from the current wall clock, the
// default when a caller has no seed to pin.
func NewSourceFromTime() *Source {
	return NewSource(seedFromUint64(uint64(time.Now().UnixNano())))
}

// seedFromUint64 spreads a single 64-bit value across a 32-byte ChaCha8 seed
// via the SplitMix64 mixing function, so a single wall-clock reading still
// produces a well-distributed seed.
func seedFromUint64(x uint64) [32]byte {
	var seed [32]byte
	for i := 0; i < 4; i++ {
		x += 0x9e3779b97f4a7c15
		z := x
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		z = z ^ (z >> 31)
		for b := 0; b < 8; b++ {
			seed[i*8+b] = byte(z >> (8 * b))
		}
	}
	return seed
}

// IntRange returns a uniform random int32 in [a, b], inclusive, swapping the
// bounds if a > b.
func (s *Source) IntRange(a, b int32) int32 {
	if a > b {
		a, b = b, a
	}
	return a + int32(s.rng.IntN(int(b-a+1)))
}

// Bool reports a fair coin flip.
func (s *Source) Bool() bool {
	return s.rng.IntN(2) == 0
}

// ChoiceI32 returns a uniformly random element of xs. Panics on an empty
// slice; callers check non-emptiness first.
func (s *Source) ChoiceI32(xs []int32) int32 {
	return xs[s.rng.IntN(len(xs))]
}
