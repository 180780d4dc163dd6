// SPDX-License-Identifier: MIT

package qubo

// Option customizes Build and IsingEnergy.
type Option func(*buildConfig)

type buildConfig struct {
	withoutCycle bool
	workers      int
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithoutCycle removes periodic-boundary bonds, turning the torus into an
// open lattice and each layer ring into a chain.
func WithoutCycle() Option {
	return func(c *buildConfig) {
		c.withoutCycle = true
	}
}

// WithWorkers sets how many goroutines generate monomials in Build.
// Output does not depend on n. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("qubo: WithWorkers(<1)")
	}
	return func(c *buildConfig) {
		c.workers = n
	}
}
