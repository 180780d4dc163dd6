// SPDX-License-Identifier: MIT

package guidance

import "errors"

var (
	// ErrMetadataMismatch indicates the batch was produced for another lattice.
	ErrMetadataMismatch = errors.New("guidance: batch metadata does not match current run")
	// ErrEmptyBatch indicates a solution file without solutions.
	ErrEmptyBatch = errors.New("guidance: batch has no solutions")
	// ErrNeedRandSource indicates a nil RNG.
	ErrNeedRandSource = errors.New("guidance: rng is required")
)
