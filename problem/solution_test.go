package problem_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tfim/problem"
)

const solutionDoc = `{
  "qubo_solution": {
    "progress": [{"energy": -1.44, "time": 0.252}],
    "result_status": true,
    "solutions": [
      {"configuration": {"0": true, "1": false, "2": true}, "energy": -144, "frequency": 1},
      {"configuration": {"0": false, "1": false, "2": false}, "energy": -12.5, "frequency": 3}
    ],
    "timing": {"solve_time": "10840", "total_elapsed_time": "11024"}
  },
  "status": "Done"
}`

func TestReadSolutions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sol.json")
	require.NoError(t, problem.WriteFileAtomic(path, []byte(solutionDoc)))

	f, err := problem.ReadSolutions(path)
	require.NoError(t, err)
	assert.Equal(t, "Done", f.Status)
	assert.True(t, f.QUBOSolution.ResultStatus)
	assert.Equal(t, "10840", f.QUBOSolution.Timing.SolveTime)
	require.Len(t, f.QUBOSolution.Solutions, 2)
	assert.Equal(t, -144.0, f.QUBOSolution.Solutions[0].Energy)
	assert.Equal(t, 3, f.QUBOSolution.Solutions[1].Frequency)
	assert.Equal(t, map[string]bool{"0": true, "1": false, "2": true}, f.QUBOSolution.Solutions[0].Configuration)
}

func TestSolution_Bits(t *testing.T) {
	s := problem.Solution{Configuration: map[string]bool{"0": true, "3": true, "2": false}}
	bits, err := s.Bits(5)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, true, false}, bits)

	_, err = s.Bits(3)
	assert.ErrorIs(t, err, problem.ErrBadSiteIndex)

	s.Configuration["x"] = true
	_, err = s.Bits(5)
	assert.ErrorIs(t, err, problem.ErrBadSiteIndex)
}

func TestConfiguration(t *testing.T) {
	cfg := problem.Configuration([]bool{true, false, true})
	assert.Equal(t, map[string]bool{"0": true, "1": false, "2": true}, cfg)

	bits, err := problem.Solution{Configuration: cfg}.Bits(3)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, bits)
}

func TestParseSiteIndex(t *testing.T) {
	idx, err := problem.ParseSiteIndex("42")
	require.NoError(t, err)
	assert.Equal(t, 42, idx)
	for _, key := range []string{"", "-1", "1.5", "a"} {
		_, err := problem.ParseSiteIndex(key)
		assert.ErrorIs(t, err, problem.ErrBadSiteIndex, key)
	}
}
