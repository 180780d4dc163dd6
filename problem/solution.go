// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"strconv"
)

// Solution is one accepted assignment returned by the annealer.
type Solution struct {
	Configuration map[string]bool `json:"configuration"`
	Energy        float64         `json:"energy"`
	Frequency     int             `json:"frequency"`
}

// Progress is one point of the annealer's energy trace.
type Progress struct {
	Energy float64 `json:"energy"`
	Time   float64 `json:"time"`
}

// Timing is reported by the annealer as decimal strings of milliseconds.
type Timing struct {
	SolveTime        string `json:"solve_time"`
	TotalElapsedTime string `json:"total_elapsed_time"`
}

// QUBOSolution is the "qubo_solution" object of a solution file.
type QUBOSolution struct {
	Solutions    []Solution `json:"solutions"`
	Progress     []Progress `json:"progress,omitempty"`
	ResultStatus bool       `json:"result_status"`
	Timing       Timing     `json:"timing"`
}

// SolutionFile is a complete annealer response.
type SolutionFile struct {
	QUBOSolution QUBOSolution `json:"qubo_solution"`
	Status       string       `json:"status,omitempty"`
}

// ReadSolutions loads a solution file.
func ReadSolutions(path string) (SolutionFile, error) {
	var f SolutionFile
	if err := readJSON(path, &f); err != nil {
		return SolutionFile{}, err
	}

	return f, nil
}

// WriteSolutions stores f as indented JSON.
func WriteSolutions(path string, f SolutionFile) error {
	return writeJSON(path, f)
}

// Bits converts the configuration into a dense assignment over n sites.
// Sites absent from the configuration are false.
//
// Errors: ErrBadSiteIndex for a key that is not a decimal in [0,n).
func (s Solution) Bits(n int) ([]bool, error) {
	bits := make([]bool, n)
	for key, up := range s.Configuration {
		idx, err := ParseSiteIndex(key)
		if err != nil {
			return nil, err
		}
		if idx >= n {
			return nil, fmt.Errorf("site %d of %d: %w", idx, n, ErrBadSiteIndex)
		}
		bits[idx] = up
	}

	return bits, nil
}

// ParseSiteIndex parses a configuration key.
// Errors: ErrBadSiteIndex.
func ParseSiteIndex(key string) (int, error) {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("key %q: %w", key, ErrBadSiteIndex)
	}

	return idx, nil
}

// Configuration builds the annealer's map form of a dense assignment.
func Configuration(bits []bool) map[string]bool {
	cfg := make(map[string]bool, len(bits))
	for i, b := range bits {
		cfg[strconv.Itoa(i)] = b
	}

	return cfg
}
