// SPDX-License-Identifier: MIT

package qubo

import (
	"slices"

	"github.com/emirpasic/gods/maps/treemap"
)

// ConstantVar is the sentinel variable list [-1] some encodings use for the
// constant term.
const ConstantVar = -1

// Term is one monomial. Vars is sorted and empty for the constant term.
type Term struct {
	Coefficient float64
	Vars        []int
}

// IsConstant reports whether t has no variables.
func (t Term) IsConstant() bool { return len(t.Vars) == 0 }

// Polynomial is a consolidated pseudo-Boolean polynomial.
// The zero value is not usable; call NewPolynomial.
type Polynomial struct {
	terms    *treemap.Map // sorted []int → float64
	constant float64
}

// NewPolynomial returns an empty polynomial.
func NewPolynomial() *Polynomial {
	return &Polynomial{terms: treemap.NewWith(compareVars)}
}

// compareVars orders variable lists lexicographically, shorter first on a
// common prefix.
func compareVars(a, b interface{}) int {
	return slices.Compare(a.([]int), b.([]int))
}

// Add accumulates coef·Π x_v. An empty vars or the single ConstantVar adds
// to the constant. vars is copied and sorted; the caller keeps ownership.
//
// Errors: ErrBadVariable for any other negative index.
// Complexity: O(k log k + log T).
func (p *Polynomial) Add(coef float64, vars ...int) error {
	if len(vars) == 0 || (len(vars) == 1 && vars[0] == ConstantVar) {
		p.constant += coef
		return nil
	}
	key := slices.Clone(vars)
	slices.Sort(key)
	if key[0] < 0 {
		return quboErrorf("Add", "variables %v: %w", vars, ErrBadVariable)
	}
	p.accumulate(coef, key)

	return nil
}

// accumulate adds coef under an already sorted, validated key.
func (p *Polynomial) accumulate(coef float64, key []int) {
	if prev, ok := p.terms.Get(key); ok {
		p.terms.Put(key, prev.(float64)+coef)
		return
	}
	p.terms.Put(key, coef)
}

// Constant returns the accumulated constant.
func (p *Polynomial) Constant() float64 { return p.constant }

// Coefficient returns the stored coefficient of the monomial over vars.
func (p *Polynomial) Coefficient(vars ...int) (float64, bool) {
	if len(vars) == 0 || (len(vars) == 1 && vars[0] == ConstantVar) {
		return p.constant, p.constant != 0
	}
	key := slices.Clone(vars)
	slices.Sort(key)
	v, ok := p.terms.Get(key)
	if !ok {
		return 0, false
	}

	return v.(float64), true
}

// Len returns the number of terms Terms would return.
func (p *Polynomial) Len() int {
	n := p.terms.Size()
	if p.constant != 0 {
		n++
	}

	return n
}

// Terms returns every monomial in key order followed by the constant when
// it is non-zero. Monomials whose coefficients cancelled to zero are kept:
// they still name a variable the annealer must allocate.
func (p *Polynomial) Terms() []Term {
	out := make([]Term, 0, p.Len())
	it := p.terms.Iterator()
	for it.Next() {
		out = append(out, Term{
			Coefficient: it.Value().(float64),
			Vars:        slices.Clone(it.Key().([]int)),
		})
	}
	if p.constant != 0 {
		out = append(out, Term{Coefficient: p.constant})
	}

	return out
}

// MaxVar returns the largest variable index referenced, or -1 if none.
func (p *Polynomial) MaxVar() int {
	maxVar := -1
	it := p.terms.Iterator()
	for it.Next() {
		key := it.Key().([]int)
		maxVar = max(maxVar, key[len(key)-1])
	}

	return maxVar
}

// Evaluate returns the value of p at the 0/1 assignment bits.
//
// Errors: ErrAssignmentSize when bits does not cover MaxVar.
// Complexity: O(T·k).
func (p *Polynomial) Evaluate(bits []bool) (float64, error) {
	if need := p.MaxVar() + 1; len(bits) < need {
		return 0, quboErrorf("Evaluate", "%d values for %d variables: %w", len(bits), need, ErrAssignmentSize)
	}
	total := p.constant
	it := p.terms.Iterator()
	for it.Next() {
		on := true
		for _, v := range it.Key().([]int) {
			if !bits[v] {
				on = false
				break
			}
		}
		if on {
			total += it.Value().(float64)
		}
	}

	return total, nil
}
