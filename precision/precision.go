// SPDX-License-Identifier: MIT
// Package precision centralizes the decimal rounding applied to physical
// quantities before they are stored on a lattice or written to a file.
//
// Policy (pinned):
//   - Round half away from zero, i.e. math.Round semantics applied to
//     x·10^places. 0.125 → 0.13 and -0.125 → -0.13 at two places.
//   - NaN and ±Inf pass through unchanged.
//   - A value whose scaled form overflows float64 is returned unchanged; it
//     already carries fewer significant decimals than requested.
//
// Output files are compared byte-for-byte across runs, so every call site
// that rounds MUST go through Round with one of the named place counts below.
package precision

import "math"

const (
	// CouplingPlaces is the number of decimals kept for randomly drawn
	// in-plane coupling strengths.
	CouplingPlaces = 2

	// LayerCouplingPlaces is the number of decimals kept for the inter-layer
	// coupling derived from the transverse field.
	LayerCouplingPlaces = 10
)

// Round rounds x to the given number of decimal places, half away from zero.
// Negative places are treated as 0.
// Complexity: O(1).
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if places < 0 {
		places = 0
	}
	scale := math.Pow10(places)
	scaled := x * scale
	if math.IsInf(scaled, 0) {
		return x
	}

	return math.Round(scaled) / scale
}
