package order_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tfim/order"
	"github.com/katalvlaran/tfim/problem"
)

const eps = 1e-12

func TestPsi_MatchesExponentialForm(t *testing.T) {
	w := cmplx.Exp(complex(0, 4*math.Pi/3))
	for _, m := range []order.Magnetization{
		{1, -1, 0}, {0.2, 0.7, -0.4}, {-1, -1, 1}, {1, 0, 0},
	} {
		want := (complex(m[0], 0) + complex(m[1], 0)*w + complex(m[2], 0)*cmplx.Conj(w)) / complex(math.Sqrt(3), 0)
		got := order.Psi(m)
		assert.InDelta(t, real(want), real(got), eps, "m=%v", m)
		assert.InDelta(t, imag(want), imag(got), eps, "m=%v", m)
	}
}

func TestOrderParameter_KnownValues(t *testing.T) {
	cases := []struct {
		name   string
		m      order.Magnetization
		orderP float64
		c6     float64
	}{
		{"TwoOpposedSublattices", order.Magnetization{1, -1, 0}, 1, -1},
		{"SingleSublattice", order.Magnetization{1, 0, 0}, 1.0 / 3, 1},
		{"SingleSublatticeDown", order.Magnetization{-1, 0, 0}, 1.0 / 3, 1},
		{"TwoUpOneDown", order.Magnetization{1, 1, -1}, 4.0 / 3, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			psi := order.Psi(tc.m)
			assert.InDelta(t, tc.orderP, order.OrderP(psi), eps)
			c6, ok := order.C6(psi, 0)
			require.True(t, ok)
			assert.InDelta(t, tc.c6, c6, eps)
		})
	}
}

func TestC6_SymmetricConfigurationsCancel(t *testing.T) {
	for _, m := range []order.Magnetization{{0, 0, 0}, {1, 1, 1}, {-1, -1, -1}, {1.0 / 3, 1.0 / 3, 1.0 / 3}} {
		psi := order.Psi(m)
		assert.Zero(t, order.OrderP(psi), "m=%v", m)
		_, ok := order.C6(psi, 0)
		assert.False(t, ok, "m=%v", m)
	}
}

func TestC6_Tolerance(t *testing.T) {
	psi := complex(1e-4, 0)
	_, ok := order.C6(psi, 0)
	assert.True(t, ok)
	_, ok = order.C6(psi, 1e-20)
	assert.False(t, ok)
}

func TestMagnetizations(t *testing.T) {
	// L=3: sublattices of sites 0..8 are 0,1,2 / 1,2,0 / 2,0,1.
	cfg := map[string]bool{
		"0": true, "1": true, "2": false,
		"3": false, "4": true, "5": true,
		"6": false, "7": false, "8": true,
		// layer 1: everything down
		"9": false, "10": false, "11": false, "12": false, "13": false,
		"14": false, "15": false, "16": false, "17": false,
	}
	ms, err := order.Magnetizations(cfg, 3, 2)
	require.NoError(t, err)
	require.Len(t, ms, 2)
	// A = {0,5,7}: +1 +1 -1; B = {1,3,8}: +1 -1 +1; C = {2,4,6}: -1 +1 -1.
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, -1.0 / 3}, ms[0][:], eps)
	assert.Equal(t, order.Magnetization{-1, -1, -1}, ms[1])
}

func TestMagnetizations_MissingSublatticeIsZero(t *testing.T) {
	ms, err := order.Magnetizations(map[string]bool{"0": true}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, order.Magnetization{1, 0, 0}, ms[0])
}

func TestMagnetizations_Errors(t *testing.T) {
	_, err := order.Magnetizations(map[string]bool{"9": true}, 3, 1)
	assert.ErrorIs(t, err, order.ErrLayerOutOfRange)

	_, err = order.Magnetizations(map[string]bool{"x": true}, 3, 1)
	assert.ErrorIs(t, err, problem.ErrBadSiteIndex)

	_, err = order.Magnetizations(nil, 0, 1)
	assert.ErrorIs(t, err, order.ErrBadGeometry)
}
