// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/yangmills/group"
	"github.com/katalvlaran/yangmills/internal/rng"
)

// Lattice is a periodic 4D gauge field with links in the group T.
// Dimensions and neighbor tables are immutable after New; only links change.
type Lattice[T group.Element[T]] struct {
	dims  Dims
	vol   int
	links [][Directions]T   // links[site][μ] = U_μ(site)
	fwd   [][Directions]int // fwd[site][μ] = site + μ̂
	bwd   [][Directions]int // bwd[site][μ] = site − μ̂
}

// New builds a lattice of extents d with links in T.
// Implementation:
//   - Stage 1 (Validate): every extent > 0, volume fits in int.
//   - Stage 2 (Topology): forward and backward neighbor tables, built once.
//   - Stage 3 (Links): all links set to T's identity (cold start).
//   - Stage 4 (Hot start): unless cold, every link is replaced by an
//     independent Haar-random draw; see WithSeed, WithRand and WithWorkers.
//
// Returns ErrInvalidDimension (wrapped) on bad extents.
// Complexity: O(V) time and memory.
func New[T group.Element[T]](d Dims, cold bool, opts ...Option) (*Lattice[T], error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	vol := d.Volume()
	l := &Lattice[T]{
		dims:  d,
		vol:   vol,
		links: make([][Directions]T, vol),
		fwd:   buildNeighbors(d, true),
		bwd:   buildNeighbors(d, false),
	}

	var z T
	id := z.Identity()
	for site := range l.links {
		for mu := 0; mu < Directions; mu++ {
			l.links[site][mu] = id
		}
	}

	if !cold {
		if err := l.hotStart(o.baseSeed(), o.workers); err != nil {
			return nil, latticeErrorf("New", err)
		}
	}

	return l, nil
}

// hotStart fills every link with a Haar-random element. Block b covers sites
// [b·hotBlockSites, (b+1)·hotBlockSites) and draws from substream b of seed,
// so blocks never share a generator or a slot.
func (l *Lattice[T]) hotStart(seed int64, workers int) error {
	blocks := (l.vol + hotBlockSites - 1) / hotBlockSites

	var eg errgroup.Group
	eg.SetLimit(workers)
	for b := 0; b < blocks; b++ {
		b := b // per-iteration copy; go 1.21 loop variables are shared
		eg.Go(func() error {
			var (
				z    T
				r    = rng.Derive(seed, uint64(b))
				lo   = b * hotBlockSites
				hi   = min(lo+hotBlockSites, l.vol)
				site int
				mu   int
			)
			for site = lo; site < hi; site++ {
				for mu = 0; mu < Directions; mu++ {
					l.links[site][mu] = z.Random(r)
				}
			}

			return nil
		})
	}

	return eg.Wait()
}

// Dims returns the lattice extents.
func (l *Lattice[T]) Dims() Dims { return l.dims }

// Volume returns the number of sites.
func (l *Lattice[T]) Volume() int { return l.vol }

// Variant reports the gauge group of the links.
func (l *Lattice[T]) Variant() group.Variant { return group.VariantOf[T]() }

// Index maps a coordinate to its flat site index.
// Returns ErrOutOfRange if any coordinate lies outside the lattice.
func (l *Lattice[T]) Index(c Coord) (int, error) {
	if !l.dims.contains(c) {
		return 0, latticeErrorf("Index", fmt.Errorf("%v: %w", c, ErrOutOfRange))
	}

	return l.dims.index(c), nil
}

// Coordinate maps a flat site index back to (x, y, z, t).
// Returns ErrOutOfRange if site ∉ [0, V).
func (l *Lattice[T]) Coordinate(site int) (Coord, error) {
	if site < 0 || site >= l.vol {
		return Coord{}, latticeErrorf("Coordinate", fmt.Errorf("site %d: %w", site, ErrOutOfRange))
	}

	return l.dims.coordinate(site), nil
}

// Forward returns site + μ̂ with periodic wraparound.
func (l *Lattice[T]) Forward(site, mu int) (int, error) {
	if err := l.checkLink("Forward", site, mu); err != nil {
		return 0, err
	}

	return l.fwd[site][mu], nil
}

// Backward returns site − μ̂ with periodic wraparound.
func (l *Lattice[T]) Backward(site, mu int) (int, error) {
	if err := l.checkLink("Backward", site, mu); err != nil {
		return 0, err
	}

	return l.bwd[site][mu], nil
}

// Link returns U_μ(site).
func (l *Lattice[T]) Link(site, mu int) (T, error) {
	if err := l.checkLink("Link", site, mu); err != nil {
		var z T
		return z, err
	}

	return l.links[site][mu], nil
}

// SetLink replaces U_μ(site) with u. It is the only mutation point of a
// lattice. u is stored as given; callers that did not obtain u from Identity,
// Random or a product of group elements should check it with CheckGroup first.
func (l *Lattice[T]) SetLink(site, mu int, u T) error {
	if err := l.checkLink("SetLink", site, mu); err != nil {
		return err
	}
	l.links[site][mu] = u

	return nil
}

// Validate checks every link with CheckGroup(tol) and reports the first
// failure as a *LinkError wrapping ErrNotInGroup.
// Complexity: O(V·4).
func (l *Lattice[T]) Validate(tol float64) error {
	for site := range l.links {
		for mu := 0; mu < Directions; mu++ {
			if !l.links[site][mu].CheckGroup(tol) {
				return latticeErrorf("Validate", &LinkError{Site: site, Dir: mu, Err: ErrNotInGroup})
			}
		}
	}

	return nil
}

// Reunitarize projects every link back onto the group, removing rounding
// drift accumulated by long chains of updates.
func (l *Lattice[T]) Reunitarize() {
	for site := range l.links {
		for mu := 0; mu < Directions; mu++ {
			l.links[site][mu] = l.links[site][mu].Reunitarize()
		}
	}
}

// checkLink validates a (site, μ) pair for public accessors.
func (l *Lattice[T]) checkLink(op string, site, mu int) error {
	if site < 0 || site >= l.vol {
		return latticeErrorf(op, fmt.Errorf("site %d: %w", site, ErrOutOfRange))
	}
	if mu < 0 || mu >= Directions {
		return latticeErrorf(op, fmt.Errorf("mu %d: %w", mu, ErrDirection))
	}

	return nil
}

// mustBeConsistent panics when the storage invariants established by New no
// longer hold. Evaluators call it once per evaluation.
func (l *Lattice[T]) mustBeConsistent() int {
	if len(l.links) != l.vol || len(l.fwd) != l.vol || len(l.bwd) != l.vol {
		panic(panicStorageCorrupt)
	}
	var z T
	n := z.Size()
	if n != 2 && n != 3 {
		panic(panicGroupSize)
	}

	return n
}
