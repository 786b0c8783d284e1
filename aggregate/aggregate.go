package aggregate

import (
	"github.com/katalvlaran/manybody/atoms"
	"github.com/katalvlaran/manybody/weight"
)

// K1 collects the 1-body samples of sys: for every particle, geometry is its
// atomic number and the weight is 1. index maps declared atomic numbers to
// dense element indices.
func K1(sys *atoms.System, index map[int]int) (map[Single]*Samples, error) {
	out := make(map[Single]*Samples, len(index))
	for i := 0; i < sys.Len(); i++ {
		z := sys.Number(i)
		e, ok := index[z]
		if !ok {
			return nil, unmapped(z)
		}
		key := Single{e}
		s := out[key]
		if s == nil {
			s = &Samples{}
			out[key] = s
		}
		s.add(float64(z), 1)
	}
	return out, nil
}

// K2 collects the 2-body samples of sys: every unordered particle pair with
// at least one endpoint among the first nInCell particles (the original
// cell). Geometry is the inverse distance, the weight is w evaluated at the
// distance; exponentially weighted samples below the cutoff are dropped.
func K2(sys *atoms.System, index map[int]int, nInCell int, w weight.Spec) (map[Pair]*Samples, error) {
	n := sys.Len()
	if nInCell > n {
		return nil, ErrCellBound
	}
	elems, err := elementIndices(sys, index)
	if err != nil {
		return nil, err
	}

	out := make(map[Pair]*Samples)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if i >= nInCell && j >= nInCell {
				continue // image-image pair, already counted from the cell
			}
			d := sys.Distance(i, j)
			if d == 0 {
				continue // coincident particles carry no pair geometry
			}
			wt := w.Eval(d)
			if w.Below(wt) {
				continue
			}
			key := Pair{elems[i], elems[j]}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			s := out[key]
			if s == nil {
				s = &Samples{}
				out[key] = s
			}
			s.add(1/d, wt)
		}
	}
	return out, nil
}

// K3 collects the 3-body samples of sys: every triple of distinct particles
// with the angle vertex in the middle, the outer particles deduplicated by
// index order, and at least one member among the first nInCell particles.
// Geometry is the cosine of the angle at the vertex; the weight is w
// evaluated at the round-trip length d_ab + d_bc + d_ca, with exponential
// samples below the cutoff dropped.
func K3(sys *atoms.System, index map[int]int, nInCell int, w weight.Spec) (map[Triple]*Samples, error) {
	n := sys.Len()
	if nInCell > n {
		return nil, ErrCellBound
	}
	elems, err := elementIndices(sys, index)
	if err != nil {
		return nil, err
	}

	out := make(map[Triple]*Samples)
	for j := 0; j < n; j++ { // angle vertex
		for i := 0; i < n; i++ {
			if i == j {
				continue
			}
			for k := i + 1; k < n; k++ { // i < k kills the mirrored triple
				if k == j {
					continue
				}
				if i >= nInCell && j >= nInCell && k >= nInCell {
					continue
				}
				a := sys.Position(i).Sub(sys.Position(j))
				b := sys.Position(k).Sub(sys.Position(j))
				da, db := a.Norm(), b.Norm()
				if da == 0 || db == 0 {
					continue // degenerate arm, no angle defined
				}
				dik := sys.Distance(i, k)
				wt := w.Eval(da + db + dik)
				if w.Below(wt) {
					continue
				}
				cos := clampCosine(a.Dot(b) / (da * db))

				key := Triple{elems[i], elems[j], elems[k]}
				if key[0] > key[2] {
					key[0], key[2] = key[2], key[0]
				}
				s := out[key]
				if s == nil {
					s = &Samples{}
					out[key] = s
				}
				s.add(cos, wt)
			}
		}
	}
	return out, nil
}

// elementIndices resolves each particle's dense element index once.
func elementIndices(sys *atoms.System, index map[int]int) ([]int, error) {
	out := make([]int, sys.Len())
	for i := range out {
		z := sys.Number(i)
		e, ok := index[z]
		if !ok {
			return nil, unmapped(z)
		}
		out[i] = e
	}
	return out, nil
}

// clampCosine guards against |cos| drifting past 1 through rounding.
func clampCosine(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}
