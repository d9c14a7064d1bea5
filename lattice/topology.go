// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
)

// Directions is the number of spacetime directions (x, y, z, t).
const Directions = 4

// Planes is the number of unordered direction pairs μ<ν per site.
const Planes = Directions * (Directions - 1) / 2

// StaplesPerLink is the number of plaquettes sharing one link.
const StaplesPerLink = 2 * (Directions - 1)

// Dims are the lattice extents along x, y, z and t.
type Dims struct {
	NX, NY, NZ, NT int
}

// Coord is a site position (x, y, z, t); Coord[μ] is the coordinate along μ.
type Coord [Directions]int

// Extents returns the extents indexed by direction.
func (d Dims) Extents() [Directions]int {
	return [Directions]int{d.NX, d.NY, d.NZ, d.NT}
}

// Volume returns NX·NY·NZ·NT. It is meaningful only for validated Dims.
func (d Dims) Volume() int {
	return d.NX * d.NY * d.NZ * d.NT
}

// String renders the extents as "NXxNYxNZxNT".
func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%dx%d", d.NX, d.NY, d.NZ, d.NT)
}

// validate rejects non-positive extents and volumes that overflow int.
func (d Dims) validate() error {
	vol := 1
	for mu, n := range d.Extents() {
		if n <= 0 {
			return latticeErrorf("New", fmt.Errorf("extent[%d]=%d in %v: %w", mu, n, d, ErrInvalidDimension))
		}
		if vol > math.MaxInt/n/Directions {
			return latticeErrorf("New", fmt.Errorf("volume of %v overflows: %w", d, ErrInvalidDimension))
		}
		vol *= n
	}

	return nil
}

// contains reports whether every coordinate lies in [0, extent).
func (d Dims) contains(c Coord) bool {
	ext := d.Extents()
	for mu := 0; mu < Directions; mu++ {
		if c[mu] < 0 || c[mu] >= ext[mu] {
			return false
		}
	}

	return true
}

// index maps c to ((t·NZ + z)·NY + y)·NX + x. No bounds checks.
// Complexity: O(1).
func (d Dims) index(c Coord) int {
	return ((c[3]*d.NZ+c[2])*d.NY+c[1])*d.NX + c[0]
}

// coordinate is the inverse of index. No bounds checks.
// Complexity: O(1).
func (d Dims) coordinate(site int) Coord {
	var c Coord
	c[0] = site % d.NX
	site /= d.NX
	c[1] = site % d.NY
	site /= d.NY
	c[2] = site % d.NZ
	c[3] = site / d.NZ

	return c
}

// buildNeighbors tabulates, for every site and direction, the flat index one
// step forward (or backward) with periodic wraparound.
// Implementation:
//   - Stage 1: decode each site to its coordinate.
//   - Stage 2: shift exactly coordinate μ by ±1 modulo its extent.
//   - Stage 3: re-encode with index, the single source of the stride.
//
// Complexity: O(V·4) time and memory.
func buildNeighbors(d Dims, forward bool) [][Directions]int {
	var (
		ext  = d.Extents()
		vol  = d.Volume()
		tab  = make([][Directions]int, vol)
		c    Coord
		nc   Coord
		site int
		mu   int
	)
	for site = 0; site < vol; site++ {
		c = d.coordinate(site)
		for mu = 0; mu < Directions; mu++ {
			nc = c
			if forward {
				nc[mu] = (c[mu] + 1) % ext[mu]
			} else {
				nc[mu] = (c[mu] + ext[mu] - 1) % ext[mu]
			}
			tab[site][mu] = d.index(nc)
		}
	}

	return tab
}
