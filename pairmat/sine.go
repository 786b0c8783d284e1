package pairmat

import (
	"math"

	"github.com/katalvlaran/manybody/atoms"
)

// Sine is the sorted, zero-padded sine-matrix descriptor: the periodic
// analogue of the Coulomb matrix, replacing 1/|r_i − r_j| with the inverse of
// a lattice-periodic distance measure. Construct via NewSine; safe for
// concurrent use.
type Sine struct {
	maxAtoms int
}

// NewSine returns a Sine descriptor padding its output to maxAtoms×maxAtoms.
// Returns ErrMaxAtoms for a non-positive count.
func NewSine(maxAtoms int) (*Sine, error) {
	if maxAtoms < 1 {
		return nil, ErrMaxAtoms
	}
	return &Sine{maxAtoms: maxAtoms}, nil
}

// NumFeatures returns the flattened output width MaxAtoms².
func (s *Sine) NumFeatures() int {
	return s.maxAtoms * s.maxAtoms
}

// Matrix returns the sorted, zero-padded sine matrix of sys: off the
// diagonal Z_i·Z_j/φ(r_i, r_j) with
//
//	φ(r_i, r_j) = |Σ_k sin²(π·f_k)·B_k|,  f = (r_j − r_i)·B⁻¹,
//
// where B is the cell matrix and f the fractional displacement; the diagonal
// is 0.5·Z_i^2.4. Rows and columns are jointly ordered by descending row
// norm. Requires an invertible cell (atoms.ErrSingularCell otherwise).
func (s *Sine) Matrix(sys *atoms.System) ([][]float64, error) {
	if sys == nil {
		return nil, atoms.ErrNoAtoms
	}
	n := sys.Len()
	if n > s.maxAtoms {
		return nil, ErrTooManyAtoms
	}

	cell := sys.Cell()
	inv, err := cell.Inverse()
	if err != nil {
		return nil, err
	}
	disp := sys.DisplacementTensor()

	m := make([][]float64, n)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
		zi := float64(sys.Number(i))
		for j := 0; j < n; j++ {
			if i == j {
				m[i][j] = selfTerm(zi)
				continue
			}
			f := inv.MulVec(disp[i][j])
			var v atoms.Vec3
			for k := 0; k < 3; k++ {
				sk := math.Sin(math.Pi * f[k])
				v = v.Add(cell[k].Scale(sk * sk))
			}
			// Lattice-coincident pair: phi = 0 yields +Inf, like 1/d would.
			m[i][j] = zi * float64(sys.Number(j)) / v.Norm()
		}
	}
	return sortAndPad(m, s.maxAtoms), nil
}

// Describe returns the sine matrix flattened row-major into one feature
// vector of width NumFeatures().
func (s *Sine) Describe(sys *atoms.System) ([]float64, error) {
	m, err := s.Matrix(sys)
	if err != nil {
		return nil, err
	}
	return flatten(m), nil
}
