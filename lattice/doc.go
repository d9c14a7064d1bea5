// SPDX-License-Identifier: MIT

// Package lattice stores an SU(N) gauge field on a periodic 4D grid and
// evaluates the Wilson plaquette action and the average plaquette.
//
// What:
//
//   - Lattice[T] holds one link T per site and forward direction μ ∈ {0,1,2,3}
//     together with precomputed forward/backward neighbor tables.
//   - Sites are flattened as idx = ((t·NZ + z)·NY + y)·NX + x; Index and
//     Coordinate are mutual inverses and are the only place that stride lives.
//   - Plaquette, WilsonAction and AveragePlaquette are read-only evaluators.
//   - Staples and LocalAction expose the six plaquettes that contain one link,
//     which is what single-link Monte Carlo updates need.
//
// Why:
//
//   - Neighbor lookups happen in the innermost loop of every evaluator; they are
//     built once at construction and never recomputed.
//   - The gauge group is a type parameter, so a lattice can never mix SU(2)
//     and SU(3) links. NewGauge selects the group at runtime and returns the
//     type-erased Gauge view.
//
// Initialization:
//
//   - Cold start: every link is the identity; AveragePlaquette() == 1 exactly.
//   - Hot start: every link is an independent Haar-random element. Sites are
//     split into fixed blocks, each with its own seeded substream, and blocks
//     are filled concurrently. The result depends on the seed only.
//
// Concurrency:
//
//   - A Lattice is single-writer. Evaluators must not run while SetLink is
//     being called on the same instance; callers coordinate this.
//
// Complexity:
//
//   - New: O(V) time and memory, V = NX·NY·NZ·NT.
//   - WilsonAction, AveragePlaquette: O(6·V) group products of 4 links.
//   - Link, SetLink, Staples, LocalAction: O(1).
//
// Errors:
//
//   - ErrInvalidDimension: a lattice extent is ≤ 0 or the volume overflows int.
//   - ErrOutOfRange: a site index or coordinate lies outside the lattice.
//   - ErrDirection: a direction is outside [0,4) or a plane has μ == ν.
//   - ErrNotInGroup: Validate found a link failing CheckGroup (as *LinkError).
package lattice
