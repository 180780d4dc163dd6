// SPDX-License-Identifier: MIT

package order

import "math"

// Option customizes Analyze.
type Option func(*analyzeConfig)

type analyzeConfig struct {
	zeroTol float64
}

// WithZeroTolerance treats |ψ⁶| <= eps as zero. The default 0 only skips an
// exact zero. Panics on a negative or NaN eps.
func WithZeroTolerance(eps float64) Option {
	if math.IsNaN(eps) || eps < 0 {
		panic("order: WithZeroTolerance(<0)")
	}
	return func(c *analyzeConfig) {
		c.zeroTol = eps
	}
}
