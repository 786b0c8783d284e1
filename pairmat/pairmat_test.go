package pairmat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/manybody/atoms"
	"github.com/katalvlaran/manybody/pairmat"
	"github.com/stretchr/testify/require"
)

func cubic(a float64) atoms.Cell {
	return atoms.Cell{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

func hcl(t *testing.T) *atoms.System {
	t.Helper()
	sys, err := atoms.NewSystem(
		[]atoms.Vec3{{0, 0, 0}, {1.27, 0, 0}},
		[]int{17, 1},
		cubic(10),
		false,
	)
	require.NoError(t, err)
	return sys
}

func TestNewCoulomb_Validation(t *testing.T) {
	_, err := pairmat.NewCoulomb(0)
	require.ErrorIs(t, err, pairmat.ErrMaxAtoms)
	_, err = pairmat.NewSine(-1)
	require.ErrorIs(t, err, pairmat.ErrMaxAtoms)
}

func TestCoulomb_TooManyAtoms(t *testing.T) {
	c, err := pairmat.NewCoulomb(1)
	require.NoError(t, err)
	_, err = c.Matrix(hcl(t))
	require.ErrorIs(t, err, pairmat.ErrTooManyAtoms)
}

func TestCoulomb_ValuesSortAndPad(t *testing.T) {
	c, err := pairmat.NewCoulomb(3)
	require.NoError(t, err)

	m, err := c.Matrix(hcl(t))
	require.NoError(t, err)
	require.Len(t, m, 3)

	// Cl row has the larger norm, so it sorts first.
	offDiag := 17.0 * 1.0 / 1.27
	require.InDelta(t, 0.5*math.Pow(17, 2.4), m[0][0], 1e-9)
	require.InDelta(t, offDiag, m[0][1], 1e-12)
	require.InDelta(t, offDiag, m[1][0], 1e-12)
	require.InDelta(t, 0.5*math.Pow(1, 2.4), m[1][1], 1e-12)

	// Padding row and column stay zero.
	for k := 0; k < 3; k++ {
		require.Zero(t, m[2][k])
		require.Zero(t, m[k][2])
	}
}

// The joint row/column sort makes the descriptor invariant under input
// particle permutation.
func TestCoulomb_PermutationInvariant(t *testing.T) {
	c, err := pairmat.NewCoulomb(4)
	require.NoError(t, err)

	a, err := atoms.NewSystem(
		[]atoms.Vec3{{0, 0, 0}, {1.27, 0, 0}},
		[]int{17, 1},
		cubic(10),
		false,
	)
	require.NoError(t, err)
	b, err := atoms.NewSystem(
		[]atoms.Vec3{{1.27, 0, 0}, {0, 0, 0}},
		[]int{1, 17},
		cubic(10),
		false,
	)
	require.NoError(t, err)

	va, err := c.Describe(a)
	require.NoError(t, err)
	vb, err := c.Describe(b)
	require.NoError(t, err)
	require.Equal(t, va, vb)
}

func TestCoulomb_DescribeWidth(t *testing.T) {
	c, err := pairmat.NewCoulomb(5)
	require.NoError(t, err)
	require.Equal(t, 25, c.NumFeatures())

	v, err := c.Describe(hcl(t))
	require.NoError(t, err)
	require.Len(t, v, c.NumFeatures())
}

func TestSine_SingularCell(t *testing.T) {
	s, err := pairmat.NewSine(2)
	require.NoError(t, err)

	sys, err := atoms.NewSystem(
		[]atoms.Vec3{{0, 0, 0}, {1, 0, 0}},
		[]int{1, 1},
		atoms.Cell{},
		true,
	)
	require.NoError(t, err)
	_, err = s.Matrix(sys)
	require.ErrorIs(t, err, atoms.ErrSingularCell)
}

// For a half-cell displacement along one axis of a cubic cell, the sine
// measure is exactly the cell edge: sin²(π/2)·a.
func TestSine_HalfCellDisplacement(t *testing.T) {
	a := 4.0
	s, err := pairmat.NewSine(2)
	require.NoError(t, err)

	sys, err := atoms.NewSystem(
		[]atoms.Vec3{{0, 0, 0}, {a / 2, 0, 0}},
		[]int{11, 17},
		cubic(a),
		true,
	)
	require.NoError(t, err)

	m, err := s.Matrix(sys)
	require.NoError(t, err)

	want := 11.0 * 17.0 / a
	// Cl row sorts first; the cross term is symmetric either way.
	require.InDelta(t, want, m[0][1], 1e-9)
	require.InDelta(t, want, m[1][0], 1e-9)
}

// The sine measure is lattice-periodic: displacing a particle by a full cell
// vector must not change the descriptor.
func TestSine_LatticePeriodicity(t *testing.T) {
	a := 3.0
	s, err := pairmat.NewSine(2)
	require.NoError(t, err)

	base, err := atoms.NewSystem(
		[]atoms.Vec3{{0, 0, 0}, {0.8, 0.3, 0.1}},
		[]int{11, 17},
		cubic(a),
		true,
	)
	require.NoError(t, err)
	shifted, err := atoms.NewSystem(
		[]atoms.Vec3{{0, 0, 0}, {0.8 + a, 0.3, 0.1}},
		[]int{11, 17},
		cubic(a),
		true,
	)
	require.NoError(t, err)

	va, err := s.Describe(base)
	require.NoError(t, err)
	vb, err := s.Describe(shifted)
	require.NoError(t, err)
	require.Len(t, va, s.NumFeatures())
	for i := range va {
		require.InDelta(t, va[i], vb[i], 1e-9)
	}
}
