// SPDX-License-Identifier: MIT

package group

import (
	"fmt"
	"math/rand"
	"strings"
)

// DefaultTolerance is the entrywise tolerance used by CheckGroup callers that
// have no better estimate of accumulated rounding error.
const DefaultTolerance = 1e-10

// degenerateNorm bounds pre-normalization norms from below. Draws whose norm
// falls under it are discarded and re-drawn instead of being divided by ~0.
const degenerateNorm = 1e-12

// Element is the capability contract of a gauge group realized as N×N complex
// matrices. T is the concrete value type (SU2 or SU3); methods never mutate
// the receiver.
//
// Size, Identity, Random and Near do not depend on the receiver's value, so
// the zero value of T acts as the group's factory:
//
//	var z group.SU3
//	u := z.Random(rng)
type Element[T any] interface {
	// Size returns N, the matrix dimension of the group.
	Size() int

	// Identity returns the N×N identity element.
	Identity() T

	// Random draws an element from the group's Haar measure using rng.
	Random(rng *rand.Rand) T

	// Near draws an element within roughly eps of the identity. The
	// distribution is symmetric under Dagger, as Metropolis proposals require.
	Near(rng *rand.Rand, eps float64) T

	// Dagger returns the conjugate transpose.
	Dagger() T

	// Mul returns the ordinary matrix product receiver·other.
	Mul(other T) T

	// Trace returns the sum of diagonal entries.
	Trace() complex128

	// Det returns the determinant.
	Det() complex128

	// Distance returns the largest entrywise modulus of receiver−other.
	Distance(other T) float64

	// HasDetOne reports whether |det − 1| < tol.
	HasDetOne(tol float64) bool

	// IsUnitary reports whether every entry of U†U − I has modulus below tol.
	IsUnitary(tol float64) bool

	// CheckGroup is the conjunction of IsUnitary and HasDetOne.
	CheckGroup(tol float64) bool

	// Reunitarize projects a matrix that drifted through rounding back onto
	// the group.
	Reunitarize() T

	fmt.Stringer
}

// Variant names a concrete gauge group at runtime.
type Variant int

const (
	// VariantUnknown is the zero Variant; it is never a valid group.
	VariantUnknown Variant = iota
	// VariantSU2 selects SU(2).
	VariantSU2
	// VariantSU3 selects SU(3).
	VariantSU3
)

// String returns "su2", "su3" or "unknown".
func (v Variant) String() string {
	switch v {
	case VariantSU2:
		return "su2"
	case VariantSU3:
		return "su3"
	default:
		return "unknown"
	}
}

// Size returns N for the variant, or 0 for VariantUnknown.
func (v Variant) Size() int {
	switch v {
	case VariantSU2:
		return 2
	case VariantSU3:
		return 3
	default:
		return 0
	}
}

// ParseVariant accepts "su2", "SU(2)", "su3", "SU(3)" in any letter case.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("(", "", ")", "", "-", "", "_", "").Replace(name)
	switch name {
	case "su2":
		return VariantSU2, nil
	case "su3":
		return VariantSU3, nil
	default:
		return VariantUnknown, fmt.Errorf("ParseVariant %q: %w", s, ErrUnknownVariant)
	}
}

// VariantOf reports the Variant realized by the element type T.
func VariantOf[T Element[T]]() Variant {
	var z T
	switch z.Size() {
	case 2:
		return VariantSU2
	case 3:
		return VariantSU3
	default:
		return VariantUnknown
	}
}

// uniform returns a float64 in [-1, 1).
func uniform(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}
