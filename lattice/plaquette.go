// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/yangmills/group"
)

// plaquette returns U_μ(x)·U_ν(x+μ̂)·U_μ(x+ν̂)†·U_ν(x)†. No bounds checks.
func (l *Lattice[T]) plaquette(x, mu, nu int) T {
	xmu := l.fwd[x][mu]
	xnu := l.fwd[x][nu]

	return l.links[x][mu].
		Mul(l.links[xmu][nu]).
		Mul(l.links[xnu][mu].Dagger()).
		Mul(l.links[x][nu].Dagger())
}

// Plaquette returns the ordered product around the (μ,ν) plaquette at site x:
//
//	P_μν(x) = U_μ(x) · U_ν(x+μ̂) · U_μ(x+ν̂)† · U_ν(x)†
//
// Swapping μ and ν yields the dagger of the same plaquette.
// Returns ErrOutOfRange for a bad site and ErrDirection for μ or ν outside
// [0,4) or μ == ν.
func (l *Lattice[T]) Plaquette(x, mu, nu int) (T, error) {
	var z T
	if err := l.checkLink("Plaquette", x, mu); err != nil {
		return z, err
	}
	if nu < 0 || nu >= Directions || nu == mu {
		return z, latticeErrorf("Plaquette", fmt.Errorf("plane (%d,%d): %w", mu, nu, ErrDirection))
	}

	return l.plaquette(x, mu, nu), nil
}

// WilsonAction returns S = β·Σ_x Σ_{μ<ν} (1 − Re Tr P_μν(x) / N).
// Each of the 6·V plaquettes is counted exactly once; N is 2 or 3 by the
// lattice's group. A cold lattice has S == 0 for every β.
//
// Complexity: O(6·V) products of four links; no allocations.
func (l *Lattice[T]) WilsonAction(beta float64) float64 {
	n := float64(l.mustBeConsistent())

	var (
		s         float64
		x, mu, nu int
	)
	for x = 0; x < l.vol; x++ {
		for mu = 0; mu < Directions; mu++ {
			for nu = mu + 1; nu < Directions; nu++ {
				s += 1 - real(l.plaquette(x, mu, nu).Trace())/n
			}
		}
	}

	return beta * s
}

// AveragePlaquette returns Σ Re Tr P / (6·V·N), the mean normalized
// plaquette trace. It is exactly 1 on a cold lattice and close to 0 on a
// large hot one.
//
// Complexity: O(6·V).
func (l *Lattice[T]) AveragePlaquette() float64 {
	n := l.mustBeConsistent()

	var (
		sum       float64
		x, mu, nu int
	)
	for x = 0; x < l.vol; x++ {
		for mu = 0; mu < Directions; mu++ {
			for nu = mu + 1; nu < Directions; nu++ {
				sum += real(l.plaquette(x, mu, nu).Trace())
			}
		}
	}

	return sum / float64(l.vol*Planes*n)
}

// Staples returns, for the link U_μ(x), the six staples S with
// Re Tr(U_μ(x)·S) equal to Re Tr of the plaquettes containing that link.
// For each ν ≠ μ in increasing order the forward staple comes first:
//
//	forward:  U_ν(x+μ̂) · U_μ(x+ν̂)† · U_ν(x)†
//	backward: U_ν(x+μ̂−ν̂)† · U_μ(x−ν̂)† · U_ν(x−ν̂)
func (l *Lattice[T]) Staples(x, mu int) ([StaplesPerLink]T, error) {
	var st [StaplesPerLink]T
	if err := l.checkLink("Staples", x, mu); err != nil {
		return st, err
	}
	l.staples(x, mu, &st)

	return st, nil
}

// staples fills st without bounds checks.
func (l *Lattice[T]) staples(x, mu int, st *[StaplesPerLink]T) {
	var (
		xmu = l.fwd[x][mu]
		k   int
	)
	for nu := 0; nu < Directions; nu++ {
		if nu == mu {
			continue
		}
		xnu := l.fwd[x][nu]
		xmuBnu := l.bwd[xmu][nu]
		xBnu := l.bwd[x][nu]

		st[k] = l.links[xmu][nu].
			Mul(l.links[xnu][mu].Dagger()).
			Mul(l.links[x][nu].Dagger())
		st[k+1] = l.links[xmuBnu][nu].Dagger().
			Mul(l.links[xBnu][mu].Dagger()).
			Mul(l.links[xBnu][nu])
		k += 2
	}
}

// LocalAction returns β·Σ_i (1 − Re Tr(u·S_i) / N) over the six staples of
// link (x, μ): the part of WilsonAction that would change if U_μ(x) were u.
// The difference of LocalAction between two candidate links equals the
// difference of WilsonAction after SetLink.
func (l *Lattice[T]) LocalAction(x, mu int, u T, beta float64) (float64, error) {
	st, err := l.Staples(x, mu)
	if err != nil {
		return 0, err
	}

	return beta * (StaplesPerLink - StapleTrace(u, &st)/float64(u.Size())), nil
}

// StapleTrace returns Σ_i Re Tr(u·S_i).
func StapleTrace[T group.Element[T]](u T, st *[StaplesPerLink]T) float64 {
	var s float64
	for i := range st {
		s += real(u.Mul(st[i]).Trace())
	}

	return s
}
