// SPDX-License-Identifier: MIT
// Package: affinity/grouping
//
// solve.go — enumerate, score, rank, pack.
//
// Contract:
//   • Every k-subset of the store's participants is scored exactly once.
//   • The table is sealed before packing; Workers never changes the result.
//   • groupSize==0 or groupSize>N is a valid empty run: no groups, everyone
//     is an outlier.
//   • Cancelling Ctx aborts enumeration with ctx.Err(); packing itself is
//     never interrupted.
//
// Complexity: O(C(N,k)·k²·c) scoring, where c is the store's choice count,
// plus O(C(N,k)·k) packing.

package grouping

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/affinity/combo"
	"github.com/katalvlaran/affinity/packer"
	"github.com/katalvlaran/affinity/prefs"
	"github.com/katalvlaran/affinity/ranking"
	"github.com/katalvlaran/affinity/score"
)

const methodSolve = "Solve"

// Solve partitions the store's participants into groups of groupSize.
//
// Errors: ErrNilStore, ErrNegativeGroupSize, score.ErrNegativeWeight, the
// context's error when cancelled, and any packer error.
func Solve(store *prefs.Store, groupSize int, opts ...Option) (*Partition, error) {
	if store == nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, ErrNilStore)
	}
	if groupSize < 0 {
		return nil, fmt.Errorf("%s: k=%d: %w", methodSolve, groupSize, ErrNegativeGroupSize)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	scorer, err := score.NewScorer(o.Weights)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}

	n := store.Len()
	roster := store.Roster()
	logger := o.Logger.With("k", groupSize)
	logger.Debug("preferences loaded", "participants", n, "choices", store.ChoiceCount())
	if logger.GetLevel() <= log.DebugLevel {
		for i := 0; i < n; i++ {
			name, _ := roster.Name(i)
			logger.Debug("preference list", "participant", i, "name", name, "chose", store.List(i).Indices())
		}
	}

	table := ranking.New()
	var count int
	if o.Workers > 1 {
		count, err = scoreParallel(o, scorer, store, groupSize, table)
	} else {
		count, err = scoreInline(o.Ctx, scorer, store, groupSize, table)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}
	table.Seal()

	if logger.GetLevel() <= log.DebugLevel {
		for _, s := range table.Scores() {
			logger.Debug("tier ranked", "score", s, "candidates", table.TierLen(s))
		}
	}

	packOpts := []packer.Option{
		packer.WithOnCommit(func(sg ranking.ScoredGroup) {
			logger.Debug("group committed", "members", namesOf(roster, sg.Members), "score", sg.Score)
		}),
	}
	if o.Rand != nil {
		packOpts = append(packOpts, packer.WithRand(o.Rand))
	} else {
		packOpts = append(packOpts, packer.WithSeed(o.Seed))
	}
	res, err := packer.Pack(table, n, packOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}

	outliers := res.Outliers()
	p := &Partition{
		Groups: lo.Map(res.Groups, func(sg ranking.ScoredGroup, _ int) Group {
			return Group{
				Members: []int(sg.Members),
				Names:   namesOf(roster, sg.Members),
				Score:   sg.Score,
			}
		}),
		Outliers:     outliers,
		OutlierNames: namesOf(roster, outliers),
		Stats: Stats{
			Combinations: count,
			Tiers:        table.TierCount(),
			Committed:    len(res.Groups),
			Rejected:     lo.SumBy(lo.Values(res.Remaining), func(t []ranking.Group) int { return len(t) }),
			Probed:       res.RandomCommits,
			Swept:        res.SweepCommits,
		},
	}
	logger.Info("partition complete",
		"combinations", p.Stats.Combinations,
		"tiers", p.Stats.Tiers,
		"groups", len(p.Groups),
		"outliers", len(p.Outliers))

	return p, nil
}

// scoreInline enumerates and scores on the calling goroutine.
func scoreInline(ctx context.Context, sc score.Scorer, store *prefs.Store, k int, table *ranking.Table) (int, error) {
	var count int
	err := combo.Each(store.Len(), k, func(c []int) error {
		if count%defaultBatch == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		count++

		return table.Insert(sc.Score(k, store, c), c)
	})

	return count, err
}

// scoreParallel drives the enumerator from one producer goroutine and
// scores batches on o.Workers consumers.
func scoreParallel(o Options, sc score.Scorer, store *prefs.Store, k int, table *ranking.Table) (int, error) {
	g, ctx := errgroup.WithContext(o.Ctx)
	batches := make(chan [][]int, o.Workers)

	g.Go(func() error {
		defer close(batches)
		send := func(b [][]int) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case batches <- b:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		batch := make([][]int, 0, o.Batch)
		err := combo.Each(store.Len(), k, func(c []int) error {
			batch = append(batch, slices.Clone(c))
			if len(batch) < o.Batch {
				return nil
			}
			if err := send(batch); err != nil {
				return err
			}
			batch = make([][]int, 0, o.Batch)

			return nil
		})
		if err != nil {
			return err
		}
		if len(batch) > 0 {
			return send(batch)
		}

		return nil
	})

	var count atomic.Int64
	for w := 0; w < o.Workers; w++ {
		g.Go(func() error {
			for batch := range batches {
				for _, c := range batch {
					if err := table.Insert(sc.Score(k, store, c), c); err != nil {
						return err
					}
				}
				count.Add(int64(len(batch)))
			}

			return nil
		})
	}

	err := g.Wait()

	return int(count.Load()), err
}

// namesOf resolves participant indices through the roster.
func namesOf(r *prefs.Roster, members []int) []string {
	return lo.Map(members, func(m int, _ int) string {
		name, _ := r.Name(m)

		return name
	})
}
