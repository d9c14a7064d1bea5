// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"slices"
)

// RecorderOption configures a Recorder.
type RecorderOption func(*recorderOptions)

type recorderOptions struct {
	start int
	rate  int
}

// WithStart skips the first n iterations (thermalization).
func WithStart(n int) RecorderOption {
	if n < 0 {
		panic(panicStartInvalid)
	}

	return func(o *recorderOptions) { o.start = n }
}

// WithSampleRate records every n-th iteration.
func WithSampleRate(n int) RecorderOption {
	if n < 1 {
		panic(panicRateInvalid)
	}

	return func(o *recorderOptions) { o.rate = n }
}

// Recorder evaluates tracked observables on states of type S.
type Recorder[S any] struct {
	start     int
	rate      int
	iteration int
	samples   int
	names     []string
	calls     map[string]func(S) float64
	series    map[string]*Series
}

// NewRecorder returns an empty recorder. Defaults: start 0, sample rate 1.
func NewRecorder[S any](opts ...RecorderOption) *Recorder[S] {
	o := recorderOptions{rate: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Recorder[S]{
		start:  o.start,
		rate:   o.rate,
		calls:  make(map[string]func(S) float64),
		series: make(map[string]*Series),
	}
}

// Track registers an observable. Observables tracked after sampling began
// start with a shorter series. Panics on a nil fn.
func (r *Recorder[S]) Track(name string, fn func(S) float64) error {
	if fn == nil {
		panic(panicFuncNil)
	}
	if _, ok := r.calls[name]; ok {
		return measureErrorf("Track", fmt.Errorf("%q: %w", name, ErrDuplicateObservable))
	}
	r.names = append(r.names, name)
	r.calls[name] = fn
	r.series[name] = NewSeries(name)

	return nil
}

// Observe counts one iteration and, when the iteration is past start and a
// multiple of the sample rate, appends every observable evaluated on s.
// It reports whether a sample was taken.
func (r *Recorder[S]) Observe(s S) bool {
	r.iteration++
	if r.iteration <= r.start || r.iteration%r.rate != 0 {
		return false
	}
	for _, name := range r.names {
		r.series[name].Append(r.calls[name](s))
	}
	r.samples++

	return true
}

// Iterations returns the number of Observe calls.
func (r *Recorder[S]) Iterations() int { return r.iteration }

// Samples returns the number of recorded samples.
func (r *Recorder[S]) Samples() int { return r.samples }

// Names returns the tracked observables in registration order.
func (r *Recorder[S]) Names() []string { return slices.Clone(r.names) }

// Series returns a copy of the recorded series of name.
func (r *Recorder[S]) Series(name string) (*Series, error) {
	s, ok := r.series[name]
	if !ok {
		return nil, measureErrorf("Series", fmt.Errorf("%q: %w", name, ErrUnknownObservable))
	}

	return NewSeries(s.name, s.values...), nil
}

// Summary summarizes the series of name.
func (r *Recorder[S]) Summary(name string) (Summary, error) {
	s, ok := r.series[name]
	if !ok {
		return Summary{}, measureErrorf("Summary", fmt.Errorf("%q: %w", name, ErrUnknownObservable))
	}

	return s.Summarize()
}
