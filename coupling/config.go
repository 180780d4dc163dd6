// SPDX-License-Identifier: MIT

package coupling

import "math/rand"

// Deterministic defaults.
const (
	// DefaultStrength is the in-plane coupling used when no WithStrength is given.
	DefaultStrength = 1.0
	// DefaultMaxStrength bounds random draws to [0, 100).
	DefaultMaxStrength = 100.0
	// defaultRNGSeed replaces a zero seed.
	defaultRNGSeed int64 = 1
)

type assignConfig struct {
	strength      float64
	layerStrength float64
	maxStrength   float64
	random        bool
	rng           *rand.Rand
}

func newAssignConfig(opts ...Option) assignConfig {
	cfg := assignConfig{
		strength:    DefaultStrength,
		maxStrength: DefaultMaxStrength,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 uses defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
