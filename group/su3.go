// SPDX-License-Identifier: MIT

package group

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// SU3 is a 3×3 special unitary matrix stored row-major.
type SU3 [3][3]complex128

var _ Element[SU3] = SU3{}

// Size returns 3.
func (SU3) Size() int { return 3 }

// Identity returns the 3×3 identity.
func (SU3) Identity() SU3 {
	return SU3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Random draws a Haar-distributed element.
// Implementation:
//   - Stage 1: fill Z with independent uniform [-1,1) real and imaginary parts.
//   - Stage 2: Z = Q·R by modified Gram–Schmidt; R has a positive real
//     diagonal, which makes Q Haar-distributed on U(3). Rank-deficient draws
//     are discarded.
//   - Stage 3: multiply the last column of Q by conj(det Q/|det Q|). The
//     determinant picks up exactly that factor, so det = |det Q| = 1, and the
//     map U(3)→SU(3) commutes with left multiplication by SU(3).
//
// rng must not be nil. Complexity: O(1) expected.
func (SU3) Random(rng *rand.Rand) SU3 {
	var (
		z    SU3
		q    SU3
		ok   bool
		i, j int
	)
	for {
		for i = 0; i < 3; i++ {
			for j = 0; j < 3; j++ {
				z[i][j] = complex(uniform(rng), uniform(rng))
			}
		}
		if q, ok = orthonormalize(z); ok {
			return fixPhase(q)
		}
	}
}

// Near returns the product of three near-identity SU(2) elements embedded in
// the (0,1), (0,2) and (1,2) planes, daggered with probability 1/2 to keep the
// proposal symmetric.
func (SU3) Near(rng *rand.Rand, eps float64) SU3 {
	var s SU2
	x := embedSU2(s.Near(rng, eps), 0, 1).
		Mul(embedSU2(s.Near(rng, eps), 0, 2)).
		Mul(embedSU2(s.Near(rng, eps), 1, 2))
	if rng.Float64() < 0.5 {
		return x.Dagger()
	}

	return x
}

// embedSU2 places s in rows/columns p<q of the 3×3 identity.
func embedSU2(s SU2, p, q int) SU3 {
	m := SU3{}.Identity()
	m[p][p], m[p][q] = s[0][0], s[0][1]
	m[q][p], m[q][q] = s[1][0], s[1][1]

	return m
}

// Dagger returns the conjugate transpose.
func (u SU3) Dagger() SU3 {
	var (
		w    SU3
		i, j int
	)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			w[i][j] = cmplx.Conj(u[j][i])
		}
	}

	return w
}

// Mul returns u·v.
func (u SU3) Mul(v SU3) SU3 {
	var (
		w    SU3
		i, j int
	)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			w[i][j] = u[i][0]*v[0][j] + u[i][1]*v[1][j] + u[i][2]*v[2][j]
		}
	}

	return w
}

// Trace returns u₀₀ + u₁₁ + u₂₂.
func (u SU3) Trace() complex128 {
	return u[0][0] + u[1][1] + u[2][2]
}

// Det expands along the first row.
func (u SU3) Det() complex128 {
	return u[0][0]*(u[1][1]*u[2][2]-u[1][2]*u[2][1]) -
		u[0][1]*(u[1][0]*u[2][2]-u[1][2]*u[2][0]) +
		u[0][2]*(u[1][0]*u[2][1]-u[1][1]*u[2][0])
}

// Distance returns max |u_ij − v_ij|.
func (u SU3) Distance(v SU3) float64 {
	var d float64
	for i := range u {
		for j := range u[i] {
			d = math.Max(d, cmplx.Abs(u[i][j]-v[i][j]))
		}
	}

	return d
}

// HasDetOne reports whether |det(u) − 1| < tol.
func (u SU3) HasDetOne(tol float64) bool {
	return cmplx.Abs(u.Det()-1) < tol
}

// IsUnitary reports whether u†u is the identity within tol entrywise.
func (u SU3) IsUnitary(tol float64) bool {
	return u.Dagger().Mul(u).Distance(SU3{}.Identity()) < tol
}

// CheckGroup reports whether u is unitary with determinant one within tol.
func (u SU3) CheckGroup(tol float64) bool {
	return u.IsUnitary(tol) && u.HasDetOne(tol)
}

// Reunitarize re-orthonormalizes the columns and removes the determinant
// phase. A rank-deficient matrix maps to the identity.
func (u SU3) Reunitarize() SU3 {
	q, ok := orthonormalize(u)
	if !ok {
		return SU3{}.Identity()
	}

	return fixPhase(q)
}

// String formats u one row per line.
func (u SU3) String() string {
	return formatRows([][]complex128{u[0][:], u[1][:], u[2][:]})
}
