// SPDX-License-Identifier: MIT

package order

import "fmt"

// DefaultBins is the bin count used for c6 and order_p distributions.
const DefaultBins = 50

// Histogram is a density histogram over equal-width bins spanning
// [min, max]; the last bin is closed on the right.
type Histogram struct {
	Edges   []float64 // len(Counts)+1
	Centers []float64
	Counts  []int
	Density []float64 // integrates to 1 over the range
}

// NewHistogram bins values. When every value is equal the range is widened
// to [v−0.5, v+0.5].
//
// Errors: ErrEmptyInput, ErrBadBins.
// Complexity: O(n + bins).
func NewHistogram(values []float64, bins int) (Histogram, error) {
	if bins < 1 {
		return Histogram{}, fmt.Errorf("NewHistogram: bins=%d: %w", bins, ErrBadBins)
	}
	if len(values) == 0 {
		return Histogram{}, fmt.Errorf("NewHistogram: %w", ErrEmptyInput)
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	h := Histogram{
		Edges:   make([]float64, bins+1),
		Centers: make([]float64, bins),
		Counts:  make([]int, bins),
		Density: make([]float64, bins),
	}
	width := (hi - lo) / float64(bins)
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi
	for i := range h.Centers {
		h.Centers[i] = 0.5 * (h.Edges[i] + h.Edges[i+1])
	}

	for _, v := range values {
		b := int((v - lo) / width)
		if b >= bins {
			b = bins - 1
		}
		h.Counts[b]++
	}
	for i, c := range h.Counts {
		h.Density[i] = float64(c) / (float64(len(values)) * width)
	}

	return h, nil
}
