// Package randutil centralises deterministic RNG construction and die rolls.
package randutil

import (
	rand "math/rand/v2"

	"github.com/maxkht/liarsdice/internal/dice"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG wants two 64-bit seeds; deriving both here keeps every call
// site reproducible from a single seed value.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Roll returns a single uniform die face in [1, faceCount].
func Roll(rng *rand.Rand, faceCount int) int {
	return rng.IntN(faceCount) + 1
}

// RollHand rolls n dice under the given configuration.
func RollHand(rng *rand.Rand, cfg dice.GameConfig, n int) dice.Hand {
	hand := make(dice.Hand, n)
	for i := range hand {
		hand[i] = Roll(rng, cfg.FaceCount)
	}
	return hand
}
