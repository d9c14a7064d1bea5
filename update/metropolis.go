// SPDX-License-Identifier: MIT

package update

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/yangmills/group"
	"github.com/katalvlaran/yangmills/lattice"
)

// Stats summarizes one sweep.
type Stats struct {
	Sweep        int           // 1-based sweep number
	Proposed     int           // proposals made (links · hits)
	Accepted     int           // proposals accepted
	Reunitarized bool          // links were projected back onto the group after this sweep
	Elapsed      time.Duration // wall time of the sweep
}

// Acceptance returns Accepted/Proposed, or 0 before any proposal.
func (s Stats) Acceptance() float64 {
	if s.Proposed == 0 {
		return 0
	}

	return float64(s.Accepted) / float64(s.Proposed)
}

// Metropolis is a single-link Metropolis updater bound to one lattice.
type Metropolis[T group.Element[T]] struct {
	lat         *lattice.Lattice[T]
	beta        float64
	n           float64 // N of SU(N)
	rng         *rand.Rand
	hits        int
	eps         float64
	reunitEvery int
	log         *zap.Logger
	sweeps      int
}

// NewMetropolis binds an updater to l at inverse coupling beta.
// Returns ErrNilLattice for a nil l and ErrInvalidBeta for β < 0 or non-finite β.
func NewMetropolis[T group.Element[T]](l *lattice.Lattice[T], beta float64, opts ...Option) (*Metropolis[T], error) {
	if l == nil {
		return nil, updateErrorf("NewMetropolis", ErrNilLattice)
	}
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta < 0 {
		return nil, updateErrorf("NewMetropolis", fmt.Errorf("beta=%v: %w", beta, ErrInvalidBeta))
	}
	o := gatherOptions(opts...)

	var z T
	return &Metropolis[T]{
		lat:         l,
		beta:        beta,
		n:           float64(z.Size()),
		rng:         o.generator(),
		hits:        o.hits,
		eps:         o.eps,
		reunitEvery: o.reunitEvery,
		log:         o.log.With(zap.Stringer("group", l.Variant()), zap.Float64("beta", beta)),
	}, nil
}

// Beta returns the inverse coupling.
func (m *Metropolis[T]) Beta() float64 { return m.beta }

// Sweeps returns the number of completed sweeps.
func (m *Metropolis[T]) Sweeps() int { return m.sweeps }

// Lattice returns the lattice being updated.
func (m *Metropolis[T]) Lattice() *lattice.Lattice[T] { return m.lat }

// Sweep updates every link once.
// Implementation:
//   - Stage 1: for each (site, μ) in index order, fetch the link and its six
//     staples; the staples do not change while this link is being updated.
//   - Stage 2: make hits proposals U' = X·U. ΔS uses the staple traces only.
//   - Stage 3: store the final link with SetLink. An accepted proposal that
//     fails CheckGroup aborts the sweep with a *SweepError.
//   - Stage 4: every reunitarize-every sweeps, project all links onto the group.
//
// A failed sweep is not counted in Sweeps and leaves the lattice partly
// updated: links visited before the failing one keep their new values, and
// the failing link keeps the value it had when the sweep started.
//
// Complexity: O(4·V·hits) group products of 3×3 or 2×2 matrices.
func (m *Metropolis[T]) Sweep() (Stats, error) {
	var (
		z        T
		start    = time.Now()
		stats    = Stats{Sweep: m.sweeps + 1}
		vol      = m.lat.Volume()
		coupling = m.beta / m.n
	)
	for site := 0; site < vol; site++ {
		for mu := 0; mu < lattice.Directions; mu++ {
			u, err := m.lat.Link(site, mu)
			if err != nil {
				return stats, m.sweepError(stats.Sweep, site, mu, err)
			}
			st, err := m.lat.Staples(site, mu)
			if err != nil {
				return stats, m.sweepError(stats.Sweep, site, mu, err)
			}
			cur := lattice.StapleTrace(u, &st)

			for h := 0; h < m.hits; h++ {
				next := z.Near(m.rng, m.eps).Mul(u)
				tr := lattice.StapleTrace(next, &st)
				dS := -coupling * (tr - cur)
				stats.Proposed++
				if dS > 0 && m.rng.Float64() >= math.Exp(-dS) {
					continue
				}
				if !next.CheckGroup(group.DefaultTolerance) {
					return stats, m.sweepError(stats.Sweep, site, mu, ErrProposalRejected)
				}
				u, cur = next, tr
				stats.Accepted++
			}

			if err = m.lat.SetLink(site, mu, u); err != nil {
				return stats, m.sweepError(stats.Sweep, site, mu, err)
			}
		}
	}

	m.sweeps = stats.Sweep
	if m.reunitEvery > 0 && m.sweeps%m.reunitEvery == 0 {
		m.lat.Reunitarize()
		stats.Reunitarized = true
	}
	stats.Elapsed = time.Since(start)

	m.log.Debug("sweep done",
		zap.Int("sweep", stats.Sweep),
		zap.Float64("acceptance", stats.Acceptance()),
		zap.Bool("reunitarized", stats.Reunitarized),
		zap.Duration("elapsed", stats.Elapsed),
	)

	return stats, nil
}

// Run performs up to sweeps sweeps, calling fn after each one when fn is not
// nil. It stops early when ctx is done (returning ctx.Err()), when a sweep
// fails, or when fn returns an error, which is returned unchanged.
func (m *Metropolis[T]) Run(ctx context.Context, sweeps int, fn func(Stats) error) error {
	if sweeps < 0 {
		return updateErrorf("Run", fmt.Errorf("sweeps=%d: %w", sweeps, ErrInvalidSweeps))
	}
	for i := 0; i < sweeps; i++ {
		if err := ctx.Err(); err != nil {
			m.log.Info("run cancelled", zap.Int("done", i), zap.Int("requested", sweeps))
			return err
		}
		st, err := m.Sweep()
		if err != nil {
			m.log.Error("sweep failed", zap.Error(err))
			return err
		}
		if fn != nil {
			if err = fn(st); err != nil {
				return err
			}
		}
	}

	return nil
}

func (m *Metropolis[T]) sweepError(sweep, site, mu int, err error) error {
	return &SweepError{Sweep: sweep, Site: site, Dir: mu, Err: err}
}
