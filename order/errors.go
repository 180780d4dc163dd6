// SPDX-License-Identifier: MIT

package order

import "errors"

var (
	// ErrLayerOutOfRange indicates a site whose layer index is >= H.
	ErrLayerOutOfRange = errors.New("order: site layer exceeds configured height")
	// ErrAccounting indicates emitted and skipped records do not add up to
	// solutions × layers.
	ErrAccounting = errors.New("order: record accounting mismatch")
	// ErrBadGeometry indicates a non-positive side length or height.
	ErrBadGeometry = errors.New("order: side length and height must be positive")
	// ErrEmptyInput indicates a histogram over no values.
	ErrEmptyInput = errors.New("order: no values")
	// ErrBadBins indicates a histogram with fewer than one bin.
	ErrBadBins = errors.New("order: bins must be >= 1")
)
