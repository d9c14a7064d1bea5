// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice operations. Match them with errors.Is.
var (
	// ErrInvalidDimension indicates a non-positive extent or an overflowing volume.
	ErrInvalidDimension = errors.New("lattice: dimensions must be > 0")

	// ErrOutOfRange indicates a site index or coordinate outside the lattice.
	ErrOutOfRange = errors.New("lattice: site out of range")

	// ErrDirection indicates a direction outside [0,4) or a degenerate plane μ == ν.
	ErrDirection = errors.New("lattice: invalid direction")

	// ErrNotInGroup indicates a stored link that fails the group check.
	ErrNotInGroup = errors.New("lattice: link is not a group element")
)

// Panic messages for programmer errors (no magic strings).
const (
	panicWorkersInvalid = "lattice: WithWorkers: n must be >= 1"
	panicRandNil        = "lattice: WithRand: rng must not be nil"
	panicStorageCorrupt = "lattice: link storage does not match lattice volume"
	panicGroupSize      = "lattice: element type is neither SU(2) nor SU(3)"
)

// LinkError reports which link an operation failed on.
type LinkError struct {
	Site int   // flat site index
	Dir  int   // direction μ
	Err  error // underlying sentinel
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link (site=%d, mu=%d): %v", e.Site, e.Dir, e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }

// latticeErrorf wraps err with an operation tag, preserving it for errors.Is.
func latticeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
