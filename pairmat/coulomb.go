package pairmat

import (
	"github.com/katalvlaran/manybody/atoms"
)

// Coulomb is the sorted, zero-padded Coulomb-matrix descriptor for finite
// systems. Construct via NewCoulomb; safe for concurrent use.
type Coulomb struct {
	maxAtoms int
}

// NewCoulomb returns a Coulomb descriptor padding its output to
// maxAtoms×maxAtoms. Returns ErrMaxAtoms for a non-positive count.
func NewCoulomb(maxAtoms int) (*Coulomb, error) {
	if maxAtoms < 1 {
		return nil, ErrMaxAtoms
	}
	return &Coulomb{maxAtoms: maxAtoms}, nil
}

// NumFeatures returns the flattened output width MaxAtoms².
func (c *Coulomb) NumFeatures() int {
	return c.maxAtoms * c.maxAtoms
}

// Matrix returns the sorted, zero-padded Coulomb matrix of sys:
// Z_i·Z_j/|r_i − r_j| off the diagonal, 0.5·Z_i^2.4 on it, rows and columns
// jointly ordered by descending row norm.
func (c *Coulomb) Matrix(sys *atoms.System) ([][]float64, error) {
	if sys == nil {
		return nil, atoms.ErrNoAtoms
	}
	n := sys.Len()
	if n > c.maxAtoms {
		return nil, ErrTooManyAtoms
	}

	inv := sys.InverseDistanceMatrix()
	m := make([][]float64, n)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
		zi := float64(sys.Number(i))
		for j := 0; j < n; j++ {
			if i == j {
				m[i][j] = selfTerm(zi)
				continue
			}
			m[i][j] = zi * float64(sys.Number(j)) * inv[i][j]
		}
	}
	return sortAndPad(m, c.maxAtoms), nil
}

// Describe returns the Coulomb matrix flattened row-major into one feature
// vector of width NumFeatures().
func (c *Coulomb) Describe(sys *atoms.System) ([]float64, error) {
	m, err := c.Matrix(sys)
	if err != nil {
		return nil, err
	}
	return flatten(m), nil
}
