package mbtr_test

import (
	"testing"

	"github.com/katalvlaran/manybody/atoms"
	"github.com/katalvlaran/manybody/grid"
	"github.com/katalvlaran/manybody/mbtr"
	"github.com/katalvlaran/manybody/weight"
	"github.com/stretchr/testify/require"
)

func cubic(a float64) atoms.Cell {
	return atoms.Cell{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

func TestNew_Validation(t *testing.T) {
	_, err := mbtr.New(mbtr.DefaultOptions(nil, 1))
	require.ErrorIs(t, err, mbtr.ErrNoElements)

	_, err = mbtr.New(mbtr.DefaultOptions([]int{1}))
	require.ErrorIs(t, err, mbtr.ErrOrder)

	_, err = mbtr.New(mbtr.DefaultOptions([]int{1}, 0))
	require.ErrorIs(t, err, mbtr.ErrOrder)

	_, err = mbtr.New(mbtr.DefaultOptions([]int{1}, 4))
	require.ErrorIs(t, err, mbtr.ErrOrder)
}

// Periodic configurations must carry a decaying weighting for every k > 1,
// and the failure must happen at construction, before any system is seen.
func TestNew_PeriodicRequiresDecayingWeighting(t *testing.T) {
	opts := mbtr.DefaultOptions([]int{11, 17}, 2)
	opts.Periodic = true
	_, err := mbtr.New(opts)
	require.ErrorIs(t, err, mbtr.ErrPeriodicWeighting)

	// Explicit unity is just as invalid as a missing spec.
	opts.Weighting = map[int]weight.Spec{2: weight.Unity()}
	_, err = mbtr.New(opts)
	require.ErrorIs(t, err, mbtr.ErrPeriodicWeighting)

	// A decaying weighting fixes it.
	opts.Weighting = map[int]weight.Spec{2: weight.Exponential(0.5, 1e-3)}
	_, err = mbtr.New(opts)
	require.NoError(t, err)
}

func TestNew_WrapsGridAndWeightingErrors(t *testing.T) {
	opts := mbtr.DefaultOptions([]int{1}, 2)
	opts.Grid = map[int]grid.Spec{2: {Min: 1, Max: 0, Sigma: 0.1, N: 10}}
	_, err := mbtr.New(opts)
	require.ErrorIs(t, err, grid.ErrRange)

	opts = mbtr.DefaultOptions([]int{1}, 2)
	opts.Weighting = map[int]weight.Spec{2: weight.Exponential(-1, 1e-3)}
	_, err = mbtr.New(opts)
	require.ErrorIs(t, err, weight.ErrScale)
}

func TestNew_DeduplicatesAndSortsElements(t *testing.T) {
	d, err := mbtr.New(mbtr.DefaultOptions([]int{8, 1, 8, 1, 6}, 1))
	require.NoError(t, err)
	require.Equal(t, []int{1, 6, 8}, d.Elements())
	require.Equal(t, 3, d.NumElements())
	require.Equal(t, []int{1}, d.Orders())
}

func TestNumFeatures_Formulas(t *testing.T) {
	d, err := mbtr.New(mbtr.DefaultOptions([]int{1, 6, 8}, 1, 2, 3))
	require.NoError(t, err)

	g1, ok := d.Grid(1)
	require.True(t, ok)
	g2, _ := d.Grid(2)
	g3, _ := d.Grid(3)

	n := 3
	want := n*g1.N + n*(n+1)/2*g2.N + n*n*(n+1)/2*g3.N
	require.Equal(t, want, d.NumFeatures())
}

func TestCombinationRanks_Lexicographic(t *testing.T) {
	nElem := 4

	// k2: enumerate (i<=j) in ascending lexicographic order.
	rank := 0
	for i := 0; i < nElem; i++ {
		for j := i; j < nElem; j++ {
			require.Equal(t, rank, mbtr.K2RankForTest(nElem, i, j))
			rank++
		}
	}
	require.Equal(t, mbtr.CombinationCountForTest(2, nElem), rank)

	// k3: (a, b, c) with a <= c and free middle b.
	rank = 0
	for a := 0; a < nElem; a++ {
		for b := 0; b < nElem; b++ {
			for c := a; c < nElem; c++ {
				require.Equal(t, rank, mbtr.K3RankForTest(nElem, a, b, c))
				rank++
			}
		}
	}
	require.Equal(t, mbtr.CombinationCountForTest(3, nElem), rank)
}

func TestTensor_At(t *testing.T) {
	tensor := &mbtr.Tensor{K: 1, Shape: []int{2, 3}, Data: []float32{0, 1, 2, 3, 4, 5}}

	v, err := tensor.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float32(5), v)

	_, err = tensor.At(1)
	require.ErrorIs(t, err, mbtr.ErrTensorIndex)
	_, err = tensor.At(2, 0)
	require.ErrorIs(t, err, mbtr.ErrTensorIndex)
	_, err = tensor.At(0, -1)
	require.ErrorIs(t, err, mbtr.ErrTensorIndex)
}
