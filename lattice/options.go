// SPDX-License-Identifier: MIT

package lattice

import (
	"math/rand"
	"runtime"

	"github.com/katalvlaran/yangmills/internal/rng"
)

// hotBlockSites is the number of consecutive sites drawn from one substream
// during a hot start. It is part of the reproducibility contract: changing it
// changes every hot configuration for a given seed.
const hotBlockSites = 256

// Option mutates construction options. Constructors panic on nonsensical
// values (programmer error).
type Option func(*Options)

// Options holds the effective construction configuration.
type Options struct {
	seed    int64      // 0 ⇒ rng.DefaultSeed
	rand    *rand.Rand // when set, the seed is drawn from it
	workers int        // hot-start parallelism, ≥ 1
}

// WithSeed fixes the hot-start seed. Seed 0 selects rng.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.rand = nil
	}
}

// WithRand derives the hot-start seed from an explicit generator handle. One
// value is consumed from r during New; r is not retained.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rand = r }
}

// WithWorkers bounds the number of goroutines filling hot-start blocks.
// The configuration does not depend on n.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		seed:    rng.DefaultSeed,
		workers: runtime.GOMAXPROCS(0),
	}
}

// gatherOptions applies setters on top of defaults (last writer wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// baseSeed resolves the parent seed for hot-start substreams.
func (o Options) baseSeed() int64 {
	if o.rand != nil {
		return rng.SeedFrom(o.rand)
	}

	return rng.Resolve(o.seed)
}
