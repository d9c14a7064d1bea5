// SPDX-License-Identifier: MIT

package group

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// orthonormalize computes the unitary factor Q of m = Q·R by modified
// Gram–Schmidt on the columns of m. R is upper triangular with a positive
// real diagonal. ok is false when a column is (numerically) dependent on the
// previous ones.
//
// Implementation:
//   - Stage 1: for column j, copy m[:,j] into v.
//   - Stage 2: for each k<j, subtract ⟨q_k, v⟩·q_k from v (updated v each time).
//   - Stage 3: normalize v into q_j, failing on a norm below degenerateNorm.
//
// Complexity: O(n³) with n = 3.
func orthonormalize(m SU3) (q SU3, ok bool) {
	var (
		v       [3]complex128
		c       complex128
		norm    float64
		i, j, k int
	)
	for j = 0; j < 3; j++ {
		for i = 0; i < 3; i++ {
			v[i] = m[i][j]
		}
		for k = 0; k < j; k++ {
			c = 0
			for i = 0; i < 3; i++ {
				c += cmplx.Conj(q[i][k]) * v[i]
			}
			for i = 0; i < 3; i++ {
				v[i] -= c * q[i][k]
			}
		}
		norm = 0
		for i = 0; i < 3; i++ {
			norm += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		}
		norm = math.Sqrt(norm)
		if norm < degenerateNorm {
			return q, false
		}
		for i = 0; i < 3; i++ {
			q[i][j] = v[i] / complex(norm, 0)
		}
	}

	return q, true
}

// fixPhase turns a unitary q into an SU(3) element by multiplying its last
// column with the conjugate determinant phase.
func fixPhase(q SU3) SU3 {
	det := q.Det()
	phase := det / complex(cmplx.Abs(det), 0)
	c := cmplx.Conj(phase)
	for i := 0; i < 3; i++ {
		q[i][2] *= c
	}

	return q
}

// formatRows renders rows as "[a, b, ...]\n" lines with %g entries.
func formatRows(rows [][]complex128) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
