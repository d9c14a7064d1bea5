// SPDX-License-Identifier: MIT

package measure

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is.
var (
	// ErrEmptySeries indicates too few samples for the requested statistic.
	ErrEmptySeries = errors.New("measure: not enough samples")

	// ErrLagTooLarge indicates a lag outside [0, n).
	ErrLagTooLarge = errors.New("measure: lag out of range")

	// ErrZeroVariance indicates a constant series.
	ErrZeroVariance = errors.New("measure: series has zero variance")

	// ErrNoDecay indicates fewer than two positive autocorrelations or a
	// non-negative fitted slope.
	ErrNoDecay = errors.New("measure: autocorrelation does not decay")

	// ErrUnknownObservable indicates a name that was never tracked.
	ErrUnknownObservable = errors.New("measure: unknown observable")

	// ErrDuplicateObservable indicates a name tracked twice.
	ErrDuplicateObservable = errors.New("measure: observable already tracked")
)

// Panic messages for programmer errors.
const (
	panicStartInvalid = "measure: WithStart: n must be >= 0"
	panicRateInvalid  = "measure: WithSampleRate: n must be >= 1"
	panicFuncNil      = "measure: Track: observable func must not be nil"
)

func measureErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
