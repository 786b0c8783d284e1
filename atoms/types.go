// Package atoms defines the value types and sentinel errors for the
// structure container of github.com/katalvlaran/manybody.
package atoms

import (
	"errors"
	"math"
)

// Sentinel errors for system construction and cell queries.
var (
	// ErrNoAtoms indicates a system with zero particles.
	ErrNoAtoms = errors.New("atoms: system must contain at least one particle")
	// ErrShapeMismatch indicates positions and atomic numbers of differing lengths.
	ErrShapeMismatch = errors.New("atoms: positions and atomic numbers must have the same length")
	// ErrSingularCell indicates a cell matrix with zero determinant where an
	// inverse (scaled positions, sine-matrix geometry) is required.
	ErrSingularCell = errors.New("atoms: cell matrix is singular")
)

// Vec3 is a Cartesian 3-vector.
type Vec3 [3]float64

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

// Dot returns the scalar product v·o.
func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Norm returns the Euclidean length |v|.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Cell is a 3×3 cell-vector matrix; row i is the i-th cell vector.
type Cell [3]Vec3

// Det returns the determinant of the cell matrix.
func (c Cell) Det() float64 {
	return c[0][0]*(c[1][1]*c[2][2]-c[1][2]*c[2][1]) -
		c[0][1]*(c[1][0]*c[2][2]-c[1][2]*c[2][0]) +
		c[0][2]*(c[1][0]*c[2][1]-c[1][1]*c[2][0])
}

// Volume returns the cell volume |det(c)|. Zero for a degenerate cell.
func (c Cell) Volume() float64 {
	return math.Abs(c.Det())
}

// Inverse returns the matrix inverse of the cell via the closed-form
// adjugate. Returns ErrSingularCell when det(c) == 0.
func (c Cell) Inverse() (Cell, error) {
	d := c.Det()
	if d == 0 {
		return Cell{}, ErrSingularCell
	}
	inv := 1.0 / d
	var m Cell
	m[0][0] = (c[1][1]*c[2][2] - c[1][2]*c[2][1]) * inv
	m[0][1] = (c[0][2]*c[2][1] - c[0][1]*c[2][2]) * inv
	m[0][2] = (c[0][1]*c[1][2] - c[0][2]*c[1][1]) * inv
	m[1][0] = (c[1][2]*c[2][0] - c[1][0]*c[2][2]) * inv
	m[1][1] = (c[0][0]*c[2][2] - c[0][2]*c[2][0]) * inv
	m[1][2] = (c[0][2]*c[1][0] - c[0][0]*c[1][2]) * inv
	m[2][0] = (c[1][0]*c[2][1] - c[1][1]*c[2][0]) * inv
	m[2][1] = (c[0][1]*c[2][0] - c[0][0]*c[2][1]) * inv
	m[2][2] = (c[0][0]*c[1][1] - c[0][1]*c[1][0]) * inv
	return m, nil
}

// VectorLengths returns the Euclidean length of each cell vector.
func (c Cell) VectorLengths() [3]float64 {
	return [3]float64{c[0].Norm(), c[1].Norm(), c[2].Norm()}
}

// MulVec maps a row vector through the cell matrix: out_j = Σ_i v_i · c_ij.
// With fractional coordinates f this yields the Cartesian position f·C.
func (c Cell) MulVec(v Vec3) Vec3 {
	var out Vec3
	for j := 0; j < 3; j++ {
		out[j] = v[0]*c[0][j] + v[1]*c[1][j] + v[2]*c[2][j]
	}
	return out
}
