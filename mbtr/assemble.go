package mbtr

import (
	"github.com/katalvlaran/manybody/aggregate"
	"github.com/katalvlaran/manybody/broaden"
)

// Combination ranking. Ranks are the position of a canonical tuple in the
// ascending lexicographic enumeration over ALL canonical tuples of the
// order — absolute, so absent combinations leave zero blocks instead of
// shifting their neighbors.

// k2Rank ranks the pair (i, j), i <= j, among all such pairs.
func k2Rank(nElem, i, j int) int {
	// Pairs with a smaller first index: Σ_{t<i} (nElem − t).
	return i*nElem - i*(i-1)/2 + (j - i)
}

// k3Rank ranks the triple (a, b, c), a <= c with free middle b, among all
// such triples ordered lexicographically.
func k3Rank(nElem, a, b, c int) int {
	before := nElem * (a*nElem - a*(a-1)/2) // triples with a smaller first index
	return before + b*(nElem-a) + (c - a)
}

// assembleK1 broadens every 1-body combination and lays the blocks out as a
// dense (nElem, n) tensor or one flat row, per the flatten flag.
func (d *Descriptor) assembleK1(geoms map[aggregate.Single]*aggregate.Samples) (*Tensor, []float32, error) {
	nElem := len(d.elements)
	g := d.grids[1]

	var tensor *Tensor
	var flat []float32
	if d.flatten {
		flat = make([]float32, nElem*g.N)
	} else {
		tensor = &Tensor{K: 1, Shape: []int{nElem, g.N}, Data: make([]float32, nElem*g.N)}
	}

	for key, s := range geoms {
		density, err := broaden.Sum(s.Values, s.Weights, g, d.normalizeGaussians)
		if err != nil {
			return nil, nil, err
		}
		writeBlock(tensor, flat, key[0], g.N, density)
	}
	return tensor, flat, nil
}

// assembleK2 lays out the 2-body combinations: dense (nElem, nElem, n) with
// only i <= j slots populated, or flat blocks at the pair rank.
func (d *Descriptor) assembleK2(geoms map[aggregate.Pair]*aggregate.Samples) (*Tensor, []float32, error) {
	nElem := len(d.elements)
	g := d.grids[2]

	var tensor *Tensor
	var flat []float32
	if d.flatten {
		flat = make([]float32, combinationCount(2, nElem)*g.N)
	} else {
		tensor = &Tensor{K: 2, Shape: []int{nElem, nElem, g.N}, Data: make([]float32, nElem*nElem*g.N)}
	}

	for key, s := range geoms {
		density, err := broaden.Sum(s.Values, s.Weights, g, d.normalizeGaussians)
		if err != nil {
			return nil, nil, err
		}
		if d.flatten {
			writeBlock(nil, flat, k2Rank(nElem, key[0], key[1]), g.N, density)
		} else {
			writeBlock(tensor, nil, key[0]*nElem+key[1], g.N, density)
		}
	}
	return tensor, flat, nil
}

// assembleK3 lays out the 3-body combinations: dense (nElem, nElem, nElem, n)
// with only outer-ordered slots populated, or flat blocks at the triple rank.
func (d *Descriptor) assembleK3(geoms map[aggregate.Triple]*aggregate.Samples) (*Tensor, []float32, error) {
	nElem := len(d.elements)
	g := d.grids[3]

	var tensor *Tensor
	var flat []float32
	if d.flatten {
		flat = make([]float32, combinationCount(3, nElem)*g.N)
	} else {
		tensor = &Tensor{
			K:     3,
			Shape: []int{nElem, nElem, nElem, g.N},
			Data:  make([]float32, nElem*nElem*nElem*g.N),
		}
	}

	for key, s := range geoms {
		density, err := broaden.Sum(s.Values, s.Weights, g, d.normalizeGaussians)
		if err != nil {
			return nil, nil, err
		}
		if d.flatten {
			writeBlock(nil, flat, k3Rank(nElem, key[0], key[1], key[2]), g.N, density)
		} else {
			writeBlock(tensor, nil, (key[0]*nElem+key[1])*nElem+key[2], g.N, density)
		}
	}
	return tensor, flat, nil
}

// writeBlock copies one broadened density into block `rank` of either the
// tensor buffer or the flat row (whichever is non-nil).
func writeBlock(tensor *Tensor, flat []float32, rank, n int, density []float64) {
	dst := flat
	if tensor != nil {
		dst = tensor.Data
	}
	off := rank * n
	for i, v := range density {
		dst[off+i] = float32(v)
	}
}
