// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/yangmills/group"
)

// Gauge is the group-agnostic view of a Lattice, for callers that choose the
// gauge group at runtime.
type Gauge interface {
	Dims() Dims
	Volume() int
	Variant() group.Variant
	WilsonAction(beta float64) float64
	AveragePlaquette() float64
	Validate(tol float64) error
	Reunitarize()
}

var (
	_ Gauge = (*Lattice[group.SU2])(nil)
	_ Gauge = (*Lattice[group.SU3])(nil)
)

// NewGauge builds a lattice whose group is selected by v.
// Returns group.ErrUnknownVariant for any v other than SU2 or SU3, and the
// errors of New otherwise.
func NewGauge(d Dims, cold bool, v group.Variant, opts ...Option) (Gauge, error) {
	switch v {
	case group.VariantSU2:
		return erase[group.SU2](New[group.SU2](d, cold, opts...))
	case group.VariantSU3:
		return erase[group.SU3](New[group.SU3](d, cold, opts...))
	default:
		return nil, latticeErrorf("NewGauge", fmt.Errorf("variant %d: %w", v, group.ErrUnknownVariant))
	}
}

// erase converts a typed result into a Gauge without leaking a typed nil.
func erase[T group.Element[T]](l *Lattice[T], err error) (Gauge, error) {
	if err != nil {
		return nil, err
	}

	return l, nil
}
