// Package aggregate defines the combination-map types and sentinel errors
// for the geometry-aggregation stage of github.com/katalvlaran/manybody.
package aggregate

import (
	"errors"
	"fmt"
)

// Sentinel errors for aggregation.
var (
	// ErrUnmappedNumber indicates an atomic number absent from the index map.
	ErrUnmappedNumber = errors.New("aggregate: atomic number not present in element index map")
	// ErrCellBound indicates an original-cell count larger than the system.
	ErrCellBound = errors.New("aggregate: original-cell particle count exceeds system size")
)

// Single keys a 1-body combination: one element index.
type Single [1]int

// Pair keys a 2-body combination: element indices with P[0] <= P[1].
type Pair [2]int

// Triple keys a 3-body combination: the angle-vertex element in the middle
// and the outer elements ordered T[0] <= T[2].
type Triple [3]int

// Samples holds the parallel raw geometry values and weights collected for
// one combination, one entry per concrete particle tuple.
type Samples struct {
	Values  []float64
	Weights []float64
}

// add appends one (value, weight) observation.
func (s *Samples) add(v, w float64) {
	s.Values = append(s.Values, v)
	s.Weights = append(s.Weights, w)
}

// unmapped wraps ErrUnmappedNumber with the offending atomic number.
func unmapped(z int) error {
	return fmt.Errorf("%w: %d", ErrUnmappedNumber, z)
}
