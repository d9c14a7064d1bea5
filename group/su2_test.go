package group_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/yangmills/group"
	"github.com/stretchr/testify/require"
)

// TestSU2_QuaternionRoundTrip verifies that the matrix layout and Quaternion agree.
func TestSU2_QuaternionRoundTrip(t *testing.T) {
	q := [4]float64{0.5, -0.5, 0.5, 0.5}
	u := group.SU2FromQuaternion(q[0], q[1], q[2], q[3])
	require.Equal(t, q, u.Quaternion())
	require.True(t, u.CheckGroup(tol))
	require.Equal(t, complex(1, 0), u.Det())
}

// TestSU2_RandomIsUnitQuaternion checks normalization of sampled quaternions.
func TestSU2_RandomIsUnitQuaternion(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for i := 0; i < samples; i++ {
		q := group.SU2{}.Random(rng).Quaternion()
		n := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
		require.InDelta(t, 1.0, n, tol)
	}
}

// TestSU2_TraceIsReal holds for SU(2) only: Tr U = 2·a0.
func TestSU2_TraceIsReal(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for i := 0; i < samples; i++ {
		u := group.SU2{}.Random(rng)
		require.Zero(t, imag(u.Trace()))
		require.InDelta(t, 2*u.Quaternion()[0], real(u.Trace()), tol)
	}
}

func TestSU2_SameSeedSameDraws(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 10; i++ {
		require.Equal(t, group.SU2{}.Random(a), group.SU2{}.Random(b))
	}
}

func TestSU2_ReunitarizeDegenerate(t *testing.T) {
	require.Equal(t, group.SU2{}.Identity(), group.SU2{}.Reunitarize())
}

func TestSU2_NearAngle(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for i := 0; i < samples; i++ {
		q := group.SU2{}.Near(rng, 0.2).Quaternion()
		require.GreaterOrEqual(t, q[0], 0.0)
		// |r| ≤ sqrt(3)·eps bounds the rotation angle.
		require.GreaterOrEqual(t, q[0], math.Sqrt(1-3*0.04)-tol)
	}
}

func TestSU2_String(t *testing.T) {
	require.Equal(t, "[(1+0i), (0+0i)]\n[(0+0i), (1+0i)]\n", group.SU2{}.Identity().String())
}

func TestSU2_ReunitarizeRepairsDrift(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	u := group.SU2{}.Random(rng)
	drifted := u
	drifted[0][0] *= 1 + 1e-7
	drifted[1][0] += 1e-7
	require.False(t, drifted.CheckGroup(tol))

	fixed := drifted.Reunitarize()
	require.True(t, fixed.CheckGroup(tol))
	require.Less(t, fixed.Distance(u), 1e-6)
}
