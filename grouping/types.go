// SPDX-License-Identifier: MIT

package grouping

import (
	"context"
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/affinity/score"
)

var (
	// ErrNilStore is returned by Solve for a nil store.
	ErrNilStore = errors.New("grouping: store is nil")

	// ErrNegativeGroupSize is returned by Solve for groupSize < 0.
	ErrNegativeGroupSize = errors.New("grouping: negative group size")
)

// defaultBatch is how many combinations one worker scores per hand-off.
const defaultBatch = 512

// Group is one committed group of the partition.
type Group struct {
	Members []int
	Names   []string
	Score   int
}

// Stats summarizes one Solve run.
type Stats struct {
	Combinations int
	Tiers        int
	Committed    int
	Rejected     int
	Probed       int
	Swept        int
}

// Partition is the outcome of Solve.
type Partition struct {
	Groups       []Group
	Outliers     []int
	OutlierNames []string
	Stats        Stats
}

// Option configures Solve.
type Option func(*Options)

// Options holds Solve's knobs. Use DefaultOptions and the WithX helpers.
type Options struct {
	// Ctx aborts enumeration when cancelled; defaults to context.Background().
	Ctx context.Context

	// Logger receives debug tracing; defaults to a logger writing to io.Discard.
	Logger *log.Logger

	// Rand drives the packer's tie-breaking; when nil the packer seeds its
	// own source from Seed.
	Rand *rand.Rand

	// Seed seeds the packer when Rand is nil; 0 selects the packer's default.
	Seed int64

	// Weights are the per-pair reciprocity points.
	Weights score.Weights

	// Workers is the number of scoring goroutines; 1 scores inline.
	Workers int

	// Batch is the number of combinations per worker hand-off.
	Batch int
}

// DefaultOptions returns background context, a discarding logger, default
// weights and a single inline worker.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Logger:  log.New(io.Discard),
		Weights: score.DefaultWeights(),
		Workers: 1,
		Batch:   defaultBatch,
	}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the debug logger; nil is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRand sets the packer's random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("grouping: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed seeds a fresh random source for the packer, replacing any
// WithRand source; seed==0 selects the packer's default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = nil
		o.Seed = seed
	}
}

// WithWeights overrides the pair weights; validated by Solve.
func WithWeights(w score.Weights) Option {
	return func(o *Options) {
		o.Weights = w
	}
}

// WithWorkers sets the number of scoring goroutines; values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithBatch sets the per-hand-off batch size; values below 1 are ignored.
func WithBatch(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Batch = n
		}
	}
}
