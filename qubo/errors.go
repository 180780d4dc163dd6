// SPDX-License-Identifier: MIT

package qubo

import (
	"errors"
	"fmt"
)

var (
	// ErrNilLattice indicates a nil *lattice.Lattice argument.
	ErrNilLattice = errors.New("qubo: lattice is nil")
	// ErrBadVariable indicates a negative variable index other than the
	// constant sentinel used alone.
	ErrBadVariable = errors.New("qubo: invalid variable index")
	// ErrAssignmentSize indicates an assignment shorter than the largest
	// variable index referenced.
	ErrAssignmentSize = errors.New("qubo: assignment too short")
)

func quboErrorf(method string, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
