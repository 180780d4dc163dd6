package coupling_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tfim/coupling"
	"github.com/katalvlaran/tfim/lattice"
	"github.com/katalvlaran/tfim/precision"
)

//----------------------------------------------------------------------------//
// LayerStrength / Normalize
//----------------------------------------------------------------------------//

func TestLayerStrength(t *testing.T) {
	assert.Zero(t, coupling.LayerStrength(0))
	assert.InDelta(t, 0.1361707345, coupling.LayerStrength(1), 1e-12)

	// Ten-decimal rounding is part of the value.
	jl := coupling.LayerStrength(0.3)
	assert.Equal(t, precision.Round(jl, precision.LayerCouplingPlaces), jl)
	assert.Greater(t, jl, 0.0)
}

func TestNormalize_ClassicalCollapse(t *testing.T) {
	cases := []struct {
		name string
		in   coupling.Params
		want coupling.Params
	}{
		{
			"GammaZeroForcesSingleLayer",
			coupling.Params{Strength: 1, Gamma: 0, LayerStrength: 3, Side: 6, Height: 8},
			coupling.Params{Strength: 1, Gamma: 0, LayerStrength: 0, Side: 6, Height: 1},
		},
		{
			"SingleLayerForcesGammaZero",
			coupling.Params{Strength: 2, Gamma: 0.7, LayerStrength: 0.2, Side: 3, Height: 1},
			coupling.Params{Strength: 2, Gamma: 0, LayerStrength: 0, Side: 3, Height: 1},
		},
		{
			"QuantumKeepsLayers",
			coupling.Params{Strength: 1, Gamma: 1, Side: 3, Height: 4},
			coupling.Params{Strength: 1, Gamma: 1, LayerStrength: coupling.LayerStrength(1), Side: 3, Height: 4},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := coupling.Normalize(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, coupling.Normalize(got), "Normalize must be idempotent")
		})
	}
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, coupling.Params{Gamma: 0}.Validate())
	require.NoError(t, coupling.Params{Gamma: 2.5}.Validate())
	assert.ErrorIs(t, coupling.Params{Gamma: -0.1}.Validate(), coupling.ErrInvalidGamma)
	assert.ErrorIs(t, coupling.Params{Gamma: math.NaN()}.Validate(), coupling.ErrInvalidGamma)
	assert.ErrorIs(t, coupling.Params{Gamma: math.Inf(1)}.Validate(), coupling.ErrInvalidGamma)
}

//----------------------------------------------------------------------------//
// Assign
//----------------------------------------------------------------------------//

func TestAssign_Uniform(t *testing.T) {
	lat, err := lattice.New(3, 3)
	require.NoError(t, err)

	sum, err := coupling.Assign(lat, coupling.WithStrength(1.5), coupling.WithLayerStrength(0.25))
	require.NoError(t, err)
	assert.False(t, sum.Random)
	assert.Equal(t, 0.25, sum.LayerStrength)
	assert.Equal(t, 1.5, sum.MeanInPlane)

	for idx := 0; idx < lat.Len(); idx++ {
		n, _ := lat.Node(idx)
		assert.Equal(t, 1.5, n.JRight)
		assert.Equal(t, 1.5, n.JBottom)
		assert.Equal(t, 1.5, n.JBottomRight)
		assert.Equal(t, 0.25, n.JLayerUp)
	}
}

func TestAssign_DefaultStrength(t *testing.T) {
	lat, err := lattice.New(3, 1)
	require.NoError(t, err)
	_, err = coupling.Assign(lat)
	require.NoError(t, err)
	n, _ := lat.Node(0)
	assert.Equal(t, coupling.DefaultStrength, n.JRight)
	assert.Zero(t, n.JLayerUp)
}

func TestAssign_RandomReplicatedAcrossLayers(t *testing.T) {
	lat, err := lattice.New(6, 4)
	require.NoError(t, err)

	sum, err := coupling.Assign(lat, coupling.WithRandom(), coupling.WithSeed(42))
	require.NoError(t, err)
	assert.True(t, sum.Random)

	plane := lat.Plane()
	for base := 0; base < plane; base++ {
		ref, _ := lat.Node(base)
		for _, d := range lattice.InPlane {
			k := ref.Coupling(d)
			assert.GreaterOrEqual(t, k, 0.0)
			assert.LessOrEqual(t, k, coupling.DefaultMaxStrength)
			assert.Equal(t, precision.Round(k, precision.CouplingPlaces), k)
		}
		for h := 1; h < lat.Height(); h++ {
			n, _ := lat.Node(h*plane + base)
			assert.Equal(t, ref.JRight, n.JRight)
			assert.Equal(t, ref.JBottom, n.JBottom)
			assert.Equal(t, ref.JBottomRight, n.JBottomRight)
		}
	}
	for idx := 0; idx < lat.Len(); idx++ {
		n, _ := lat.Node(idx)
		assert.Equal(t, sum.LayerStrength, n.JLayerUp)
	}
}

func TestAssign_RandomDrawOrder(t *testing.T) {
	lat, err := lattice.New(3, 2)
	require.NoError(t, err)
	_, err = coupling.Assign(lat, coupling.WithRandom(), coupling.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	ref := rand.New(rand.NewSource(7))
	draw := func() float64 { return precision.Round(ref.Float64()*100, 2) }
	for base := 0; base < lat.Plane(); base++ {
		n, _ := lat.Node(base)
		assert.Equal(t, draw(), n.JRight)
		assert.Equal(t, draw(), n.JBottom)
		assert.Equal(t, draw(), n.JBottomRight)
	}
	n, _ := lat.Node(0)
	assert.Equal(t, draw(), n.JLayerUp, "layer strength is the last draw")
}

func TestAssign_RandomSingleLayerKeepsZeroLayerStrength(t *testing.T) {
	lat, err := lattice.New(3, 1)
	require.NoError(t, err)
	sum, err := coupling.Assign(lat, coupling.WithRandom(), coupling.WithSeed(3))
	require.NoError(t, err)
	assert.Zero(t, sum.LayerStrength)
}

func TestAssign_SeedReproducible(t *testing.T) {
	a, _ := lattice.New(6, 2)
	b, _ := lattice.New(6, 2)
	_, err := coupling.Assign(a, coupling.WithRandom(), coupling.WithSeed(0))
	require.NoError(t, err)
	_, err = coupling.Assign(b, coupling.WithRandom(), coupling.WithSeed(0))
	require.NoError(t, err)
	for idx := 0; idx < a.Len(); idx++ {
		na, _ := a.Node(idx)
		nb, _ := b.Node(idx)
		require.Equal(t, na, nb)
	}
}

func TestAssign_Errors(t *testing.T) {
	_, err := coupling.Assign(nil)
	assert.ErrorIs(t, err, coupling.ErrNilLattice)

	lat, _ := lattice.New(3, 1)
	_, err = coupling.Assign(lat, coupling.WithRandom())
	assert.ErrorIs(t, err, coupling.ErrNeedRandSource)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { coupling.WithRand(nil) })
	assert.Panics(t, func() { coupling.WithMaxStrength(0) })
	assert.Panics(t, func() { coupling.WithStrength(math.NaN()) })
	assert.Panics(t, func() { coupling.WithLayerStrength(math.Inf(-1)) })
}
