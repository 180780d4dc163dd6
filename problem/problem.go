// SPDX-License-Identifier: MIT

package problem

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tfim/qubo"
)

// Fixed tuning constants of the solver request.
const (
	DefaultTimeLimitSec      = 10
	MinTimeLimitSec          = 1
	MaxTimeLimitSec          = 1800
	DefaultGSLevel           = 5
	DefaultGSCutoff          = 8000
	DefaultNumRun            = 16
	DefaultNumGroup          = 1
	DefaultNumOutputSolution = 5
)

// SolverOptions is the "fujitsuDA3" object of a problem file.
type SolverOptions struct {
	TimeLimitSec      int             `json:"time_limit_sec"`
	GSLevel           int             `json:"gs_level"`
	GSCutoff          int             `json:"gs_cutoff"`
	NumRun            int             `json:"num_run"`
	NumGroup          int             `json:"num_group"`
	NumOutputSolution int             `json:"num_output_solution"`
	GuidanceConfig    map[string]bool `json:"guidance_config,omitempty"`
}

// DefaultSolverOptions returns the fixed tuning with the given time limit.
func DefaultSolverOptions(timeLimitSec int) SolverOptions {
	return SolverOptions{
		TimeLimitSec:      timeLimitSec,
		GSLevel:           DefaultGSLevel,
		GSCutoff:          DefaultGSCutoff,
		NumRun:            DefaultNumRun,
		NumGroup:          DefaultNumGroup,
		NumOutputSolution: DefaultNumOutputSolution,
	}
}

// EncodedTerm is one term object of "binary_polynomial".
type EncodedTerm struct {
	Coefficient float64 `json:"coefficient"`
	Polynomial  []int   `json:"polynomial,omitempty"`
}

// UnmarshalJSON accepts both {"coefficient","polynomial"} and {"c","p"}.
// A constant may be spelled without a list, with [] or with [-1].
func (t *EncodedTerm) UnmarshalJSON(data []byte) error {
	var raw struct {
		Coefficient *float64 `json:"coefficient"`
		Polynomial  []int    `json:"polynomial"`
		C           *float64 `json:"c"`
		P           []int    `json:"p"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Coefficient != nil:
		t.Coefficient = *raw.Coefficient
	case raw.C != nil:
		t.Coefficient = *raw.C
	default:
		return fmt.Errorf("term %s: %w", data, ErrBadTerm)
	}
	vars := raw.Polynomial
	if vars == nil {
		vars = raw.P
	}
	if len(vars) == 1 && vars[0] == qubo.ConstantVar {
		vars = nil
	}
	for _, v := range vars {
		if v < 0 {
			return fmt.Errorf("term %s: %w", data, ErrBadTerm)
		}
	}
	t.Polynomial = vars

	return nil
}

// BinaryPolynomial is the "binary_polynomial" object of a problem file.
type BinaryPolynomial struct {
	Terms []EncodedTerm `json:"terms"`
}

// Problem is a complete annealer request.
type Problem struct {
	Solver           SolverOptions    `json:"fujitsuDA3"`
	BinaryPolynomial BinaryPolynomial `json:"binary_polynomial"`
}

// NewProblem encodes poly in term order with the constant last.
func NewProblem(poly *qubo.Polynomial, solver SolverOptions) Problem {
	terms := poly.Terms()
	enc := make([]EncodedTerm, len(terms))
	for i, t := range terms {
		enc[i] = EncodedTerm{Coefficient: t.Coefficient, Polynomial: t.Vars}
	}

	return Problem{Solver: solver, BinaryPolynomial: BinaryPolynomial{Terms: enc}}
}

// Polynomial decodes the terms back into a consolidated polynomial.
func (p Problem) Polynomial() (*qubo.Polynomial, error) {
	poly := qubo.NewPolynomial()
	for i, t := range p.BinaryPolynomial.Terms {
		if err := poly.Add(t.Coefficient, t.Polynomial...); err != nil {
			return nil, errors.Wrapf(err, "term %d", i)
		}
	}

	return poly, nil
}

// ReadProblem loads a problem file.
func ReadProblem(path string) (Problem, error) {
	var p Problem
	if err := readJSON(path, &p); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// WriteProblem stores p as indented JSON.
func WriteProblem(path string, p Problem) error {
	return writeJSON(path, p)
}
