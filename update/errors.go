// SPDX-License-Identifier: MIT

package update

import (
	"errors"
	"fmt"
)

// Sentinel errors for the updater. Match them with errors.Is.
var (
	// ErrNilLattice indicates a nil lattice passed to NewMetropolis.
	ErrNilLattice = errors.New("update: lattice is nil")

	// ErrInvalidBeta indicates β < 0, NaN or ±Inf.
	ErrInvalidBeta = errors.New("update: beta must be finite and >= 0")

	// ErrInvalidSweeps indicates a negative sweep count.
	ErrInvalidSweeps = errors.New("update: sweeps must be >= 0")

	// ErrProposalRejected indicates an accepted link that is not a group element.
	ErrProposalRejected = errors.New("update: proposal left the gauge group")
)

// Panic messages for programmer errors.
const (
	panicRandNil       = "update: WithRand: rng must not be nil"
	panicHitsInvalid   = "update: WithHits: n must be >= 1"
	panicEpsInvalid    = "update: WithEpsilon: eps must be finite and > 0"
	panicReunitInvalid = "update: WithReunitarizeEvery: n must be >= 0"
	panicLoggerNil     = "update: WithLogger: logger must not be nil"
)

// SweepError locates a failure inside a sweep.
type SweepError struct {
	Sweep int   // 1-based sweep number
	Site  int   // flat site index
	Dir   int   // direction μ
	Err   error // underlying cause
}

func (e *SweepError) Error() string {
	return fmt.Sprintf("update: sweep %d, link (site=%d, mu=%d): %v", e.Sweep, e.Site, e.Dir, e.Err)
}

func (e *SweepError) Unwrap() error { return e.Err }

// updateErrorf wraps err with an operation tag.
func updateErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
