package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/manybody/grid"
	"github.com/stretchr/testify/require"
)

func TestSpec_Validate(t *testing.T) {
	valid := grid.Spec{Min: 0, Max: 1, Sigma: 0.1, N: 10}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Min, bad.Max = 1, 1
	require.ErrorIs(t, bad.Validate(), grid.ErrRange)

	bad = valid
	bad.Sigma = 0
	require.ErrorIs(t, bad.Validate(), grid.ErrSigma)

	bad = valid
	bad.Sigma = math.NaN()
	require.ErrorIs(t, bad.Validate(), grid.ErrSigma)

	bad = valid
	bad.N = 1
	require.ErrorIs(t, bad.Validate(), grid.ErrPoints)
}

func TestSpec_Axis(t *testing.T) {
	s := grid.Spec{Min: -1, Max: 1, Sigma: 0.1, N: 5}
	axis := s.Axis()
	require.Len(t, axis, 5)
	require.Equal(t, -1.0, axis[0])
	require.Equal(t, 1.0, axis[4])
	require.InDelta(t, 0.5, s.Step(), 1e-12)
	for i := 1; i < len(axis); i++ {
		require.InDelta(t, s.Step(), axis[i]-axis[i-1], 1e-12)
	}
}

// The default grids must reproduce the reference formulas exactly:
// margin = √2·3·σ around the nominal domain, n = ceil((max−min)/σ/4)+1.
func TestDefaultK1_ReferenceFormula(t *testing.T) {
	s := grid.DefaultK1(1, 8)
	sigma := 1e-1
	margin := math.Sqrt2 * 3 * sigma
	require.Equal(t, sigma, s.Sigma)
	require.InDelta(t, 1-margin, s.Min, 1e-12)
	require.InDelta(t, 8+margin, s.Max, 1e-12)
	require.Equal(t, int(math.Ceil((s.Max-s.Min)/sigma/4))+1, s.N)
	require.NoError(t, s.Validate())
}

func TestDefaultK2_ReferenceFormula(t *testing.T) {
	s := grid.DefaultK2()
	sigma := math.Exp2(-7)
	margin := math.Sqrt2 * 3 * sigma
	require.Equal(t, sigma, s.Sigma)
	require.InDelta(t, 0-margin, s.Min, 1e-12)
	require.InDelta(t, 1/0.7+margin, s.Max, 1e-12)
	require.Equal(t, int(math.Ceil((s.Max-s.Min)/sigma/4))+1, s.N)
	require.NoError(t, s.Validate())
}

func TestDefaultK3_ReferenceFormula(t *testing.T) {
	s := grid.DefaultK3()
	sigma := math.Exp2(-3.5)
	margin := math.Sqrt2 * 3 * sigma
	require.Equal(t, sigma, s.Sigma)
	require.InDelta(t, -1-margin, s.Min, 1e-12)
	require.InDelta(t, 1+margin, s.Max, 1e-12)
	require.Equal(t, int(math.Ceil((s.Max-s.Min)/sigma/4))+1, s.N)
	require.NoError(t, s.Validate())
}
