// SPDX-License-Identifier: MIT

package update

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/yangmills/internal/rng"
)

// Defaults for a Metropolis updater.
const (
	DefaultHits             = 10
	DefaultEpsilon          = 0.25
	DefaultReunitarizeEvery = 10
)

// Option mutates updater options. Setters panic on nonsensical values.
type Option func(*Options)

// Options holds the effective updater configuration.
type Options struct {
	seed        int64
	rand        *rand.Rand
	hits        int
	eps         float64
	reunitEvery int // 0 disables periodic reunitarization
	log         *zap.Logger
}

// WithSeed seeds the proposal and acceptance generator. 0 selects rng.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.rand = nil
	}
}

// WithRand uses r directly. The updater becomes its only user: r must not be
// shared with another goroutine.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rand = r }
}

// WithHits sets the number of proposals per link per sweep.
func WithHits(n int) Option {
	if n < 1 {
		panic(panicHitsInvalid)
	}

	return func(o *Options) { o.hits = n }
}

// WithEpsilon sets the proposal spread around the identity.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 1) {
		panic(panicEpsInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithReunitarizeEvery projects all links back onto the group after every n-th
// sweep. n == 0 disables it.
func WithReunitarizeEvery(n int) Option {
	if n < 0 {
		panic(panicReunitInvalid)
	}

	return func(o *Options) { o.reunitEvery = n }
}

// WithLogger routes per-sweep debug records to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.log = l }
}

func defaultOptions() Options {
	return Options{
		seed:        rng.DefaultSeed,
		hits:        DefaultHits,
		eps:         DefaultEpsilon,
		reunitEvery: DefaultReunitarizeEvery,
		log:         zap.NewNop(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// generator resolves the random source.
func (o Options) generator() *rand.Rand {
	if o.rand != nil {
		return o.rand
	}

	return rng.FromSeed(o.seed)
}
