// SPDX-License-Identifier: MIT

package problem

import "errors"

var (
	// ErrBadSiteIndex indicates a configuration key that is not a site index
	// of the lattice it is read against.
	ErrBadSiteIndex = errors.New("problem: invalid site index in configuration")
	// ErrBadRunName indicates a path that does not follow the run naming scheme.
	ErrBadRunName = errors.New("problem: path does not follow Gamma{g}/Strength{j}_Lattice{l}_{l}_{h} naming")
	// ErrBadTerm indicates a term object without a coefficient or with a
	// negative variable.
	ErrBadTerm = errors.New("problem: malformed term")
)
