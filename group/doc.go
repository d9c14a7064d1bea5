// SPDX-License-Identifier: MIT

// Package group implements the gauge groups SU(2) and SU(3) as small,
// fixed-size complex matrices for lattice gauge theory.
//
// What:
//
//   - Element[T] is the capability contract every gauge group satisfies:
//     identity, Haar-random sampling, conjugate transpose (dagger),
//     multiplication, trace, determinant and the validity predicates
//     HasDetOne, IsUnitary and CheckGroup.
//   - SU2 is a 2×2 complex matrix, always representable as a unit quaternion.
//   - SU3 is a 3×3 complex matrix sampled by Gram–Schmidt orthogonalization
//     of a random complex matrix followed by a determinant phase correction.
//
// Why:
//
//   - Links of a lattice gauge field are group elements; the Wilson action and
//     every Wilson-loop observable are traces of ordered link products.
//   - Elements are value types (arrays), so products never alias their operands.
//
// Randomness:
//
//   - Sampling never touches a global source. Callers pass an explicit
//     *rand.Rand, which makes hot starts and Monte Carlo runs reproducible.
//     A *rand.Rand is not safe for concurrent use; give each goroutine its own.
//
// Complexity:
//
//   - Mul, Dagger, Trace, Det: O(N²)–O(N³) with N ∈ {2,3}, no allocations.
//   - Random: O(1) expected; degenerate draws are re-drawn, never normalized by zero.
//
// Errors:
//
//   - ErrUnknownVariant: a textual group name is neither SU(2) nor SU(3).
package group
