// SPDX-License-Identifier: MIT

package group

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// SU2 is a 2×2 special unitary matrix. Every element can be written as a unit
// quaternion (a0, a1, a2, a3):
//
//	[ a0+i·a3   a2+i·a1 ]
//	[ -a2+i·a1  a0−i·a3 ]
//
// whose determinant is a0²+a1²+a2²+a3² = 1.
type SU2 [2][2]complex128

var _ Element[SU2] = SU2{}

// SU2FromQuaternion builds the matrix form of (a0, a1, a2, a3). The caller is
// responsible for unit length; otherwise the result is not in SU(2).
func SU2FromQuaternion(a0, a1, a2, a3 float64) SU2 {
	return SU2{
		{complex(a0, a3), complex(a2, a1)},
		{complex(-a2, a1), complex(a0, -a3)},
	}
}

// Quaternion returns (a0, a1, a2, a3) read off the first row.
func (u SU2) Quaternion() [4]float64 {
	return [4]float64{real(u[0][0]), imag(u[0][1]), real(u[0][1]), imag(u[0][0])}
}

// Size returns 2.
func (SU2) Size() int { return 2 }

// Identity returns the 2×2 identity.
func (SU2) Identity() SU2 {
	return SU2{{1, 0}, {0, 1}}
}

// Random draws a Haar-distributed element.
// Implementation:
//   - Stage 1: draw a ∈ [-1,1)^4 until degenerateNorm < |a| ≤ 1. Rejecting the
//     cube corners makes the direction of a uniform on the 3-sphere. This
//     departs from normalizing a raw cube draw, whose directions cluster
//     toward the corners and are not Haar-distributed.
//   - Stage 2: normalize a and map it to its matrix form.
//
// rng must not be nil. Complexity: O(1) expected (acceptance ≈ π²/32).
func (SU2) Random(rng *rand.Rand) SU2 {
	var (
		a    [4]float64
		norm float64
		i    int
	)
	for {
		norm = 0
		for i = range a {
			a[i] = uniform(rng)
			norm += a[i] * a[i]
		}
		if norm > degenerateNorm && norm <= 1 {
			break
		}
	}
	norm = math.Sqrt(norm)

	return SU2FromQuaternion(a[0]/norm, a[1]/norm, a[2]/norm, a[3]/norm)
}

// Near draws (a0, eps·r) with r uniform in [-1,1)^3 and a0 ≥ 0, normalized to
// unit length. Negating r gives the dagger, so the distribution is symmetric.
func (SU2) Near(rng *rand.Rand, eps float64) SU2 {
	r1, r2, r3 := eps*uniform(rng), eps*uniform(rng), eps*uniform(rng)
	s := r1*r1 + r2*r2 + r3*r3
	a0 := math.Sqrt(math.Max(0, 1-s))
	norm := math.Sqrt(a0*a0 + s)
	if norm < degenerateNorm {
		return SU2{}.Identity()
	}

	return SU2FromQuaternion(a0/norm, r1/norm, r2/norm, r3/norm)
}

// Dagger returns the conjugate transpose.
func (u SU2) Dagger() SU2 {
	return SU2{
		{cmplx.Conj(u[0][0]), cmplx.Conj(u[1][0])},
		{cmplx.Conj(u[0][1]), cmplx.Conj(u[1][1])},
	}
}

// Mul returns u·v.
func (u SU2) Mul(v SU2) SU2 {
	var (
		w    SU2
		i, j int
	)
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			w[i][j] = u[i][0]*v[0][j] + u[i][1]*v[1][j]
		}
	}

	return w
}

// Trace returns u₀₀ + u₁₁.
func (u SU2) Trace() complex128 {
	return u[0][0] + u[1][1]
}

// Det returns u₀₀u₁₁ − u₀₁u₁₀.
func (u SU2) Det() complex128 {
	return u[0][0]*u[1][1] - u[0][1]*u[1][0]
}

// Distance returns max |u_ij − v_ij|.
func (u SU2) Distance(v SU2) float64 {
	var d float64
	for i := range u {
		for j := range u[i] {
			d = math.Max(d, cmplx.Abs(u[i][j]-v[i][j]))
		}
	}

	return d
}

// HasDetOne reports whether |det(u) − 1| < tol.
func (u SU2) HasDetOne(tol float64) bool {
	return cmplx.Abs(u.Det()-1) < tol
}

// IsUnitary reports whether u†u is the identity within tol entrywise.
func (u SU2) IsUnitary(tol float64) bool {
	return u.Dagger().Mul(u).Distance(SU2{}.Identity()) < tol
}

// CheckGroup reports whether u is unitary with determinant one within tol.
func (u SU2) CheckGroup(tol float64) bool {
	return u.IsUnitary(tol) && u.HasDetOne(tol)
}

// Reunitarize returns the unit quaternion closest to the quaternion part of u.
// A matrix with vanishing quaternion part maps to the identity.
func (u SU2) Reunitarize() SU2 {
	a0 := (real(u[0][0]) + real(u[1][1])) / 2
	a3 := (imag(u[0][0]) - imag(u[1][1])) / 2
	a2 := (real(u[0][1]) - real(u[1][0])) / 2
	a1 := (imag(u[0][1]) + imag(u[1][0])) / 2
	norm := math.Sqrt(a0*a0 + a1*a1 + a2*a2 + a3*a3)
	if norm < degenerateNorm {
		return SU2{}.Identity()
	}

	return SU2FromQuaternion(a0/norm, a1/norm, a2/norm, a3/norm)
}

// String formats u one row per line.
func (u SU2) String() string {
	return formatRows([][]complex128{u[0][:], u[1][:]})
}
