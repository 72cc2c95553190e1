// SPDX-License-Identifier: MIT

package packer

import "math/rand"

// defaultSeed is used when the caller passes seed==0 or no RNG at all.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
