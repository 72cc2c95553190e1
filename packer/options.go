// SPDX-License-Identifier: MIT

package packer

import (
	"math/rand"

	"github.com/katalvlaran/affinity/ranking"
)

// Option customizes Pack.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	onCommit func(ranking.ScoredGroup)
	onReject func(ranking.ScoredGroup)
}

func newConfig(opts ...Option) config {
	cfg := config{
		onCommit: func(ranking.ScoredGroup) {},
		onReject: func(ranking.ScoredGroup) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithRand sets the random source for tie-breaking. Panics on nil.
// The source is consumed sequentially and must not be shared with
// concurrently running code.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("packer: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a fresh source; seed==0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithOnCommit installs fn, called for every committed group in commit order.
func WithOnCommit(fn func(ranking.ScoredGroup)) Option {
	if fn == nil {
		panic("packer: WithOnCommit(nil)")
	}
	return func(c *config) {
		c.onCommit = fn
	}
}

// WithOnReject installs fn, called for every group left uncommitted after
// its tier's sweep.
func WithOnReject(fn func(ranking.ScoredGroup)) Option {
	if fn == nil {
		panic("packer: WithOnReject(nil)")
	}
	return func(c *config) {
		c.onReject = fn
	}
}
