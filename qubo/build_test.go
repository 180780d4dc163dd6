package qubo_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tfim/coupling"
	"github.com/katalvlaran/tfim/lattice"
	"github.com/katalvlaran/tfim/qubo"
)

func uniformLattice(t testing.TB, side, height int, j, jl float64) *lattice.Lattice {
	t.Helper()
	lat, err := lattice.New(side, height)
	require.NoError(t, err)
	_, err = coupling.Assign(lat, coupling.WithStrength(j), coupling.WithLayerStrength(jl))
	require.NoError(t, err)

	return lat
}

//----------------------------------------------------------------------------//
// Golden polynomials
//----------------------------------------------------------------------------//

// On a periodic 3×3 layer every pair of sites shares exactly one bond, so
// each pair gets 4J and each site -2J·6 bonds.
func TestBuild_L3H1Uniform(t *testing.T) {
	lat := uniformLattice(t, 3, 1, 1.0, 0)

	poly, stats, err := qubo.Build(lat)
	require.NoError(t, err)
	assert.Equal(t, qubo.Stats{FrontEmitted: 27, Monomials: 108}, stats)

	terms := poly.Terms()
	require.Len(t, terms, 37)
	assert.Equal(t, qubo.Term{Coefficient: 27}, terms[len(terms)-1])

	pairs, singles := 0, 0
	for _, term := range terms[:len(terms)-1] {
		switch len(term.Vars) {
		case 1:
			singles++
			assert.Equal(t, -12.0, term.Coefficient, "site %v", term.Vars)
		case 2:
			pairs++
			assert.Equal(t, 4.0, term.Coefficient, "pair %v", term.Vars)
		default:
			t.Fatalf("unexpected monomial %v", term)
		}
	}
	assert.Equal(t, 9, singles)
	assert.Equal(t, 27, pairs)
	assert.Equal(t, []int{0}, terms[0].Vars)
	assert.Equal(t, []int{0, 1}, terms[1].Vars)
}

func TestBuild_L3H1Repeatable(t *testing.T) {
	a, _, err := qubo.Build(uniformLattice(t, 3, 1, 1.0, 0))
	require.NoError(t, err)
	b, _, err := qubo.Build(uniformLattice(t, 3, 1, 1.0, 0))
	require.NoError(t, err)
	assert.Equal(t, a.Terms(), b.Terms())
}

func TestBuild_L3H1WithoutCycle(t *testing.T) {
	lat := uniformLattice(t, 3, 1, 1.0, 0)

	poly, stats, err := qubo.Build(lat, qubo.WithoutCycle())
	require.NoError(t, err)
	assert.Equal(t, 16, stats.FrontEmitted)
	assert.Equal(t, 11, stats.FrontSuppressed)
	assert.Equal(t, 16.0, poly.Constant())
	assert.Equal(t, 26, poly.Len())

	want := map[int]float64{0: -6, 1: -8, 2: -4, 3: -8, 4: -12, 5: -8, 6: -4, 7: -8, 8: -6}
	for v, c := range want {
		got, ok := poly.Coefficient(v)
		require.True(t, ok, "site %d", v)
		assert.Equal(t, c, got, "site %d", v)
	}
	// Wrapping bonds are gone.
	for _, pair := range [][2]int{{0, 2}, {0, 6}, {0, 8}, {2, 3}, {6, 8}} {
		_, ok := poly.Coefficient(pair[0], pair[1])
		assert.False(t, ok, "pair %v", pair)
	}
}

func TestBuild_SuppressedFrontCountPerLayer(t *testing.T) {
	for _, dims := range [][2]int{{3, 1}, {6, 1}, {6, 3}, {9, 2}} {
		L, H := dims[0], dims[1]
		lat := uniformLattice(t, L, H, 1, 0.3)
		_, stats, err := qubo.Build(lat, qubo.WithoutCycle())
		require.NoError(t, err)
		// right: L, bottom: L, bottom-right: 2L-1.
		assert.Equal(t, H*(4*L-1), stats.FrontSuppressed, "L=%d H=%d", L, H)
		assert.Equal(t, H*3*L*L, stats.FrontSuppressed+stats.FrontEmitted)
	}
}

func TestBuild_NoWrappingMonomialWithoutCycle(t *testing.T) {
	const L = 6
	lat := uniformLattice(t, L, 1, 1, 0)
	poly, _, err := qubo.Build(lat, qubo.WithoutCycle())
	require.NoError(t, err)
	for _, term := range poly.Terms() {
		if len(term.Vars) != 2 {
			continue
		}
		a, b := term.Vars[0], term.Vars[1]
		_, ia, ja := lat.Coordinate(a)
		_, ib, jb := lat.Coordinate(b)
		assert.LessOrEqual(t, ib-ia, 1, "pair %v", term.Vars)
		assert.GreaterOrEqual(t, ib-ia, 0, "pair %v", term.Vars)
		assert.LessOrEqual(t, jb-ja, 1, "pair %v", term.Vars)
		assert.GreaterOrEqual(t, jb-ja, 0, "pair %v", term.Vars)
	}
}

//----------------------------------------------------------------------------//
// Back terms
//----------------------------------------------------------------------------//

func TestBuild_BackTerms(t *testing.T) {
	lat := uniformLattice(t, 3, 3, 1, 0.5)

	poly, stats, err := qubo.Build(lat)
	require.NoError(t, err)
	assert.Equal(t, 81, stats.FrontEmitted)
	assert.Equal(t, 27, stats.BackEmitted)
	assert.Zero(t, stats.BackSuppressed)
	assert.Equal(t, 67.5, poly.Constant())
	assert.Equal(t, 136, poly.Len())

	// Each site sits on two layer bonds: -12 (front) + 2·(2·0.5) (back).
	c, ok := poly.Coefficient(0)
	require.True(t, ok)
	assert.Equal(t, -10.0, c)
	c, ok = poly.Coefficient(0, 9)
	require.True(t, ok)
	assert.Equal(t, -2.0, c)
	c, ok = poly.Coefficient(0, 18)
	require.True(t, ok)
	assert.Equal(t, -2.0, c, "closing bond of the ring")
}

func TestBuild_BackTermsWithoutCycle(t *testing.T) {
	lat := uniformLattice(t, 3, 3, 1, 0.5)

	poly, stats, err := qubo.Build(lat, qubo.WithoutCycle())
	require.NoError(t, err)
	assert.Equal(t, 18, stats.BackEmitted)
	assert.Equal(t, 9, stats.BackSuppressed)
	assert.Equal(t, 39.0, poly.Constant())
	assert.Equal(t, 94, poly.Len())

	_, ok := poly.Coefficient(0, 18)
	assert.False(t, ok, "ring closing bond must be dropped")
	_, ok = poly.Coefficient(9, 18)
	assert.True(t, ok)
}

func TestBuild_TwoLayersDoubleBond(t *testing.T) {
	lat := uniformLattice(t, 3, 2, 1, 0.5)
	poly, stats, err := qubo.Build(lat)
	require.NoError(t, err)
	assert.Equal(t, 18, stats.BackEmitted)
	c, ok := poly.Coefficient(0, 9)
	require.True(t, ok)
	assert.Equal(t, -4.0, c)
	assert.Equal(t, 45.0, poly.Constant())
}

func TestBuild_SingleLayerIgnoresLayerStrength(t *testing.T) {
	a, sa, err := qubo.Build(uniformLattice(t, 3, 1, 1, 0))
	require.NoError(t, err)
	b, sb, err := qubo.Build(uniformLattice(t, 3, 1, 1, 7))
	require.NoError(t, err)
	assert.Equal(t, a.Terms(), b.Terms())
	assert.Zero(t, sb.BackEmitted)
	assert.Equal(t, sa, sb)
}

//----------------------------------------------------------------------------//
// Determinism and the Ising identity
//----------------------------------------------------------------------------//

func TestBuild_WorkerCountInvariant(t *testing.T) {
	lat, err := lattice.New(9, 4)
	require.NoError(t, err)
	_, err = coupling.Assign(lat, coupling.WithRandom(), coupling.WithSeed(11))
	require.NoError(t, err)

	for _, withoutCycle := range []bool{false, true} {
		var opts []qubo.Option
		if withoutCycle {
			opts = append(opts, qubo.WithoutCycle())
		}
		ref, refStats, err := qubo.Build(lat, opts...)
		require.NoError(t, err)
		for _, w := range []int{2, 3, 8, 1000} {
			got, stats, err := qubo.Build(lat, append(opts, qubo.WithWorkers(w))...)
			require.NoError(t, err)
			assert.Equal(t, ref.Terms(), got.Terms(), "workers=%d", w)
			assert.Equal(t, refStats, stats, "workers=%d", w)
		}
	}
}

func TestBuild_MatchesIsingEnergy(t *testing.T) {
	lat, err := lattice.New(6, 3)
	require.NoError(t, err)
	_, err = coupling.Assign(lat, coupling.WithRandom(), coupling.WithSeed(5))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(99))
	for _, opts := range [][]qubo.Option{nil, {qubo.WithoutCycle()}} {
		poly, _, err := qubo.Build(lat, opts...)
		require.NoError(t, err)
		for trial := 0; trial < 20; trial++ {
			bits := make([]bool, lat.Len())
			for i := range bits {
				bits[i] = rng.Intn(2) == 1
			}
			q, err := poly.Evaluate(bits)
			require.NoError(t, err)
			e, err := qubo.IsingEnergy(lat, bits, opts...)
			require.NoError(t, err)
			assert.InDelta(t, e, q, 1e-6)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	_, _, err := qubo.Build(nil)
	assert.ErrorIs(t, err, qubo.ErrNilLattice)

	_, err = qubo.IsingEnergy(nil, nil)
	assert.ErrorIs(t, err, qubo.ErrNilLattice)

	lat := uniformLattice(t, 3, 1, 1, 0)
	_, err = qubo.IsingEnergy(lat, make([]bool, 4))
	assert.ErrorIs(t, err, qubo.ErrAssignmentSize)

	assert.Panics(t, func() { qubo.WithWorkers(0) })
}
