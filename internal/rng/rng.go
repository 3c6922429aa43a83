// Package rng centralizes deterministic random generation for the MWU
// driver's candidate-root sampling: one small function wrapping
// math/rand.New(math/rand.NewSource(seed)) rather than a package-global
// generator, so every Fit run gets its own independent, reproducible
// stream.
package rng

import "math/rand"

// FromSeed returns a deterministic *rand.Rand seeded directly from seed.
// math/rand.Rand is not goroutine-safe; callers must confine all draws
// from the returned generator to a single goroutine (mwu.Fit draws every
// candidate root sequentially, before any parallel candidate evaluation
// begins, for exactly this reason).
func FromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
