// SPDX-License-Identifier: MIT

// Package update evolves a lattice gauge field with the single-link
// Metropolis algorithm at fixed inverse coupling β.
//
// What:
//
//   - Metropolis[T] visits every link U_μ(x) in site-index order. For each link
//     it makes a fixed number of hits, proposing U' = X·U with X drawn near the
//     identity by T.Near.
//   - The change of the Wilson action is computed from the six staples of the
//     link only: ΔS = −(β/N)·Σ_i [Re Tr(U'·S_i) − Re Tr(U·S_i)].
//   - A proposal is accepted when ΔS ≤ 0 or r < exp(−ΔS), r uniform in [0,1).
//   - Accepted links are written back with Lattice.SetLink, after CheckGroup.
//   - Every ReunitarizeEvery sweeps all links are projected back onto the group.
//
// Determinism:
//
//   - One generator per updater, seeded by WithSeed or WithRand. A sweep is
//     strictly sequential, so equal seeds and equal starting lattices give
//     identical chains.
//
// Concurrency:
//
//   - A Metropolis owns its lattice while sweeping. Do not evaluate or mutate
//     the lattice from another goroutine during Sweep or Run.
//
// Errors:
//
//   - ErrNilLattice: NewMetropolis got a nil lattice.
//   - ErrInvalidBeta: β is negative, NaN or infinite.
//   - ErrInvalidSweeps: Run got a negative sweep count.
//   - ErrProposalRejected: an accepted proposal failed CheckGroup; reported as
//     *SweepError with the sweep and link it happened at. Links updated
//     earlier in that sweep stay updated; the sweep is not counted.
package update
