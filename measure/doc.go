// SPDX-License-Identifier: MIT

// Package measure records observables along a Markov chain and estimates
// their statistics.
//
// What:
//
//   - Series is an ordered sample of one observable with mean, unbiased
//     standard deviation, standard error and normalized autocorrelation
//     ρ(k) = Γ(k)/Γ(0), Γ(k) = 1/(n−k)·Σ_i (x_i − x̄)(x_{i+k} − x̄).
//   - IntegratedTime estimates τ_int = 1/2 + Σ_{k=1..W} ρ(k) for a window W.
//   - ExponentialTime fits log ρ(k) = a − k/τ over the positive ρ(k).
//   - Recorder[S] evaluates named observables on a state S every sample-rate
//     iterations once the start iteration has passed.
//
// Lags are counted in recorded samples, not in chain iterations. With sample
// rate r, a lag of k samples is k·r iterations.
//
// Concurrency:
//
//   - Series and Recorder are not safe for concurrent mutation.
//
// Errors:
//
//   - ErrEmptySeries: a statistic needs more samples than recorded.
//   - ErrLagTooLarge: a lag is negative or not smaller than the series length.
//   - ErrZeroVariance: the autocorrelation is undefined for a constant series.
//   - ErrNoDecay: the exponential fit found no decaying autocorrelation.
//   - ErrUnknownObservable, ErrDuplicateObservable: Recorder name lookups.
package measure
