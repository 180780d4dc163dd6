// SPDX-License-Identifier: MIT
// Package: tfim/coupling
//
// options.go: functional options for Assign.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Assign never panics; it reports errors.
//   • Seeding is explicit via WithSeed or WithRand.

package coupling

import (
	"math"
	"math/rand"
)

// Option customizes one Assign call.
type Option func(*assignConfig)

// WithStrength sets the uniform in-plane coupling J. Panics on NaN/Inf.
func WithStrength(j float64) Option {
	mustFinite("WithStrength", j)
	return func(c *assignConfig) {
		c.strength = j
	}
}

// WithLayerStrength sets the uniform inter-layer coupling J_L. Panics on NaN/Inf.
func WithLayerStrength(jl float64) Option {
	mustFinite("WithLayerStrength", jl)
	return func(c *assignConfig) {
		c.layerStrength = jl
	}
}

// WithRandom switches Assign to random mode. An RNG must be supplied as well.
func WithRandom() Option {
	return func(c *assignConfig) {
		c.random = true
	}
}

// WithMaxStrength sets the exclusive upper bound of random draws.
// Panics unless max is finite and > 0.
func WithMaxStrength(max float64) Option {
	mustFinite("WithMaxStrength", max)
	if max <= 0 {
		panic("coupling: WithMaxStrength(<=0)")
	}
	return func(c *assignConfig) {
		c.maxStrength = max
	}
}

// WithRand provides the RNG used by random mode. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("coupling: WithRand(nil)")
	}
	return func(c *assignConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG for random mode; seed 0 maps to a
// fixed non-zero default.
func WithSeed(seed int64) Option {
	return func(c *assignConfig) {
		c.rng = rngFromSeed(seed)
	}
}

func mustFinite(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("coupling: " + name + "(non-finite)")
	}
}
