package group_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/yangmills/group"
	"github.com/stretchr/testify/require"
)

// TestSU3_DetPhaseRemoved checks det(U) = 1 to rounding, not merely |det| = 1.
func TestSU3_DetPhaseRemoved(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for i := 0; i < samples; i++ {
		d := group.SU3{}.Random(rng).Det()
		require.InDelta(t, 1.0, real(d), 1e-12)
		require.InDelta(t, 0.0, imag(d), 1e-12)
	}
}

// TestSU3_DetOfKnownMatrix pins the cofactor expansion on a permutation with
// a compensating phase.
func TestSU3_DetOfKnownMatrix(t *testing.T) {
	// Cyclic permutation (det +1) and a transposition times -1 (det +1).
	cyc := group.SU3{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}}
	require.Equal(t, complex(1, 0), cyc.Det())
	require.True(t, cyc.CheckGroup(tol))

	swp := group.SU3{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}}
	require.Equal(t, complex(1, 0), swp.Det())
	require.True(t, swp.CheckGroup(tol))

	ph := group.SU3{{1i, 0, 0}, {0, 1i, 0}, {0, 0, -1}}
	require.Equal(t, complex(1, 0), ph.Det())
	require.Equal(t, complex(-1, 2), ph.Trace())
}

func TestSU3_MulMatchesDefinition(t *testing.T) {
	a := group.SU3{{1, 2, 0}, {0, 1i, 0}, {0, 0, 1}}
	b := group.SU3{{1, 0, 0}, {3, 1, 0}, {0, 0, -1i}}
	want := group.SU3{{7, 2, 0}, {3i, 1i, 0}, {0, 0, -1i}}
	require.Equal(t, want, a.Mul(b))
	require.Equal(t, group.SU3{{1, 0, 0}, {2, -1i, 0}, {0, 0, 1}}, a.Dagger())
}

func TestSU3_ReunitarizeDegenerate(t *testing.T) {
	require.Equal(t, group.SU3{}.Identity(), group.SU3{}.Reunitarize())
}

// TestSU3_ReunitarizeKeepsElement checks the projection is the identity map on SU(3).
func TestSU3_ReunitarizeKeepsElement(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for i := 0; i < samples; i++ {
		u := group.SU3{}.Random(rng)
		require.Less(t, u.Reunitarize().Distance(u), 1e-12)
	}
}

func TestSU3_NearIsSymmetricInDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	const n = 20000
	var sum complex128
	for i := 0; i < n; i++ {
		x := group.SU3{}.Near(rng, 0.3)
		// Off-diagonal entries average to zero for a dagger-symmetric proposal.
		sum += x[0][1] + x[1][2] + x[0][2]
	}
	require.Less(t, cmplx.Abs(sum/n), 0.02)
}

func TestSU3_ReunitarizeRepairsDrift(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	u := group.SU3{}.Random(rng)
	drifted := u
	drifted[0][0] += 1e-7
	drifted[2][1] -= 1e-7i
	require.False(t, drifted.CheckGroup(tol))

	fixed := drifted.Reunitarize()
	require.True(t, fixed.CheckGroup(tol))
	require.Less(t, fixed.Distance(u), 1e-6)
}
