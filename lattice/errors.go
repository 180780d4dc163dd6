// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSide indicates a side length that is not a positive multiple of 3.
	ErrInvalidSide = errors.New("lattice: side length must be a positive multiple of 3")
	// ErrInvalidHeight indicates a non-positive number of replica layers.
	ErrInvalidHeight = errors.New("lattice: height must be positive")
	// ErrOutOfRange indicates a site index outside [0, L²·H).
	ErrOutOfRange = errors.New("lattice: site index out of range")
	// ErrUnknownDirection indicates a Direction value outside the four bond kinds.
	ErrUnknownDirection = errors.New("lattice: unknown direction")
	// ErrCorrupt indicates a stored neighbor index or sublattice tag that
	// contradicts the lattice geometry. It is a programming error upstream and
	// callers must not try to recover from it.
	ErrCorrupt = errors.New("lattice: corrupt node state")
)

// latticeErrorf prefixes err with the method name, keeping errors.Is intact.
func latticeErrorf(method string, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
