package mbtr

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/manybody/grid"
	"github.com/katalvlaran/manybody/weight"
)

// Descriptor is a validated, immutable MBTR configuration. Construct via New;
// a Descriptor carries no per-call state and is safe for concurrent Describe
// calls.
type Descriptor struct {
	elements []int       // declared atomic numbers, sorted ascending
	index    map[int]int // atomic number → dense element index
	orders   []int       // requested orders, sorted ascending

	grids   map[int]grid.Spec
	weights map[int]weight.Spec

	periodic           bool
	normalizeByVolume  bool
	normalizeGaussians bool
	flatten            bool
}

// New validates opts and resolves it into a Descriptor: the element index
// map, per-order grids (explicit or default) and per-order weightings. All
// configuration errors surface here, before any system is processed.
func New(opts Options) (*Descriptor, error) {
	elements := dedupSorted(opts.AtomicNumbers)
	if len(elements) == 0 {
		return nil, ErrNoElements
	}
	index := make(map[int]int, len(elements))
	for i, z := range elements {
		index[z] = i
	}

	orders, err := resolveOrders(opts.K)
	if err != nil {
		return nil, err
	}

	weights := make(map[int]weight.Spec, len(orders))
	for _, k := range orders {
		if k == 1 {
			continue // the 1-body term is never weighted
		}
		w, explicit := opts.Weighting[k]
		if !explicit {
			w = weight.Unity()
		}
		if err = w.Validate(); err != nil {
			return nil, fmt.Errorf("mbtr: weighting for k=%d: %w", k, err)
		}
		if opts.Periodic && !w.Decaying() {
			return nil, fmt.Errorf("%w: k=%d", ErrPeriodicWeighting, k)
		}
		weights[k] = w
	}

	grids := make(map[int]grid.Spec, len(orders))
	for _, k := range orders {
		g, explicit := opts.Grid[k]
		if explicit {
			if err = g.Validate(); err != nil {
				return nil, fmt.Errorf("mbtr: grid for k=%d: %w", k, err)
			}
		} else {
			switch k {
			case 1:
				g = grid.DefaultK1(elements[0], elements[len(elements)-1])
			case 2:
				g = grid.DefaultK2()
			case 3:
				g = grid.DefaultK3()
			}
		}
		grids[k] = g
	}

	return &Descriptor{
		elements:           elements,
		index:              index,
		orders:             orders,
		grids:              grids,
		weights:            weights,
		periodic:           opts.Periodic,
		normalizeByVolume:  opts.NormalizeByVolume,
		normalizeGaussians: opts.NormalizeGaussians,
		flatten:            opts.Flatten,
	}, nil
}

// Elements returns the declared atomic numbers, sorted ascending.
func (d *Descriptor) Elements() []int {
	out := make([]int, len(d.elements))
	copy(out, d.elements)
	return out
}

// NumElements returns the size of the declared element set.
func (d *Descriptor) NumElements() int { return len(d.elements) }

// Orders returns the requested interaction orders, sorted ascending.
func (d *Descriptor) Orders() []int {
	out := make([]int, len(d.orders))
	copy(out, d.orders)
	return out
}

// Grid returns the resolved grid for order k.
func (d *Descriptor) Grid(k int) (grid.Spec, bool) {
	g, ok := d.grids[k]
	return g, ok
}

// NumFeatures returns the length of the flattened feature vector (equally,
// the total dense tensor size) for this configuration.
func (d *Descriptor) NumFeatures() int {
	nElem := len(d.elements)
	total := 0
	for _, k := range d.orders {
		total += combinationCount(k, nElem) * d.grids[k].N
	}
	return total
}

// combinationCount returns the number of canonical element-index tuples for
// order k over nElem elements.
func combinationCount(k, nElem int) int {
	switch k {
	case 1:
		return nElem
	case 2:
		return nElem * (nElem + 1) / 2
	default:
		return nElem * nElem * (nElem + 1) / 2
	}
}

// dedupSorted returns the distinct values of zs in ascending order.
func dedupSorted(zs []int) []int {
	seen := make(map[int]struct{}, len(zs))
	out := make([]int, 0, len(zs))
	for _, z := range zs {
		if _, ok := seen[z]; ok {
			continue
		}
		seen[z] = struct{}{}
		out = append(out, z)
	}
	sort.Ints(out)
	return out
}

// resolveOrders validates and sorts the requested order set.
func resolveOrders(ks []int) ([]int, error) {
	if len(ks) == 0 {
		return nil, ErrOrder
	}
	seen := make(map[int]struct{}, 3)
	out := make([]int, 0, 3)
	for _, k := range ks {
		if k < 1 || k > 3 {
			return nil, fmt.Errorf("%w: got %d", ErrOrder, k)
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Ints(out)
	return out, nil
}
