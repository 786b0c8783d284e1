// Package pairmat defines shared constants, sorting helpers and sentinel
// errors for the padded-matrix descriptors of github.com/katalvlaran/manybody.
package pairmat

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors for padded-matrix descriptors.
var (
	// ErrMaxAtoms indicates a non-positive maximum particle count.
	ErrMaxAtoms = errors.New("pairmat: maximum particle count must be positive")
	// ErrTooManyAtoms indicates a system larger than the configured maximum.
	ErrTooManyAtoms = errors.New("pairmat: system exceeds the configured maximum particle count")
)

// Self-interaction diagonal term 0.5·Z^2.4, shared by both descriptors.
const (
	selfTermFactor   = 0.5
	selfTermExponent = 2.4
)

func selfTerm(z float64) float64 {
	return selfTermFactor * math.Pow(z, selfTermExponent)
}

// sortAndPad jointly permutes rows and columns of m by descending row
// Euclidean norm and zero-pads the result to maxAtoms×maxAtoms.
func sortAndPad(m [][]float64, maxAtoms int) [][]float64 {
	n := len(m)

	norms := make([]float64, n)
	for i, row := range m {
		var s float64
		for _, v := range row {
			s += v * v
		}
		norms[i] = math.Sqrt(s)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return norms[perm[a]] > norms[perm[b]]
	})

	out := make([][]float64, maxAtoms)
	for i := range out {
		out[i] = make([]float64, maxAtoms)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = m[perm[i]][perm[j]]
		}
	}
	return out
}

// flatten serializes the padded matrix row-major.
func flatten(m [][]float64) []float64 {
	out := make([]float64, 0, len(m)*len(m))
	for _, row := range m {
		out = append(out, row...)
	}
	return out
}
