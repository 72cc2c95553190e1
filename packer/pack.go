// SPDX-License-Identifier: MIT
// Package: affinity/packer
//
// pack.go — tie-aware greedy packing.
//
// Contract:
//   • Tiers are resolved strictly from the highest score to the lowest.
//   • Random phase: pick uniformly among the tier's remaining groups; commit
//     and remove a conflict-free pick; stop at the first conflicting pick.
//   • Sweep: one linear pass over everything still in the tier, in table
//     order, committing each group that is conflict-free at that moment.
//   • Every participant lands in at most one committed group.
//
// Complexity: O(C·k) for C candidates of size k.

package packer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/prysmaticlabs/go-bitfield"

	"github.com/katalvlaran/affinity/ranking"
)

const methodPack = "Pack"

var (
	// ErrNilTable is returned by Pack for a nil table.
	ErrNilTable = errors.New("packer: table is nil")

	// ErrNegativeSize is returned by Pack for a negative participant count.
	ErrNegativeSize = errors.New("packer: negative participant count")

	// ErrMemberOutOfRange is returned when a group names a participant
	// outside [0,n).
	ErrMemberOutOfRange = errors.New("packer: group member out of range")
)

// Result is the outcome of Pack.
type Result struct {
	// Groups are the committed groups in commit order; scores never increase.
	Groups []ranking.ScoredGroup

	// Placed has bit i set iff participant i is in one of Groups.
	Placed bitfield.Bitlist

	// Remaining maps each score to the groups of its tier that were never
	// committed. Scores whose tier was fully committed are absent.
	Remaining map[int][]ranking.Group

	// RandomCommits and SweepCommits split len(Groups) by phase.
	RandomCommits int
	SweepCommits  int
}

// IsPlaced reports whether participant i was placed.
func (r Result) IsPlaced(i int) bool {
	if i < 0 || r.Placed == nil || uint64(i) >= r.Placed.Len() {
		return false
	}

	return r.Placed.BitAt(uint64(i))
}

// Outliers returns the participants no committed group contains.
func (r Result) Outliers() []int {
	if r.Placed == nil {
		return nil
	}

	return Residual(int(r.Placed.Len()), r.Placed)
}

// Pack consumes t from the highest score down and returns a partition of
// participants 0..n-1 into disjoint committed groups.
//
// Errors: ErrNilTable, ErrNegativeSize, ErrMemberOutOfRange.
func Pack(t *ranking.Table, n int, opts ...Option) (Result, error) {
	if t == nil {
		return Result{}, fmt.Errorf("%s: %w", methodPack, ErrNilTable)
	}
	if n < 0 {
		return Result{}, fmt.Errorf("%s: n=%d: %w", methodPack, n, ErrNegativeSize)
	}
	cfg := newConfig(opts...)

	res := Result{
		Placed:    bitfield.NewBitlist(uint64(n)),
		Remaining: make(map[int][]ranking.Group),
	}
	commit := func(score int, g ranking.Group) {
		for _, m := range g {
			res.Placed.SetBitAt(uint64(m), true)
		}
		sg := ranking.ScoredGroup{Members: g, Score: score}
		res.Groups = append(res.Groups, sg)
		cfg.onCommit(sg)
	}

	for _, score := range t.Scores() {
		tier := t.Tier(score)
		for _, g := range tier {
			if err := checkMembers(g, n); err != nil {
				return Result{}, fmt.Errorf("%s: score=%d: %w", methodPack, score, err)
			}
		}

		for len(tier) > 0 {
			r := cfg.rng.Intn(len(tier))
			if conflicts(res.Placed, tier[r]) {
				break
			}
			commit(score, tier[r])
			res.RandomCommits++
			tier = slices.Delete(tier, r, r+1)
		}

		kept := tier[:0]
		for _, g := range tier {
			if conflicts(res.Placed, g) {
				kept = append(kept, g)

				continue
			}
			commit(score, g)
			res.SweepCommits++
		}

		if len(kept) > 0 {
			res.Remaining[score] = slices.Clip(kept)
			for _, g := range kept {
				cfg.onReject(ranking.ScoredGroup{Members: g, Score: score})
			}
		}
	}

	return res, nil
}

// conflicts reports whether any member of g is already placed.
func conflicts(placed bitfield.Bitlist, g ranking.Group) bool {
	for _, m := range g {
		if placed.BitAt(uint64(m)) {
			return true
		}
	}

	return false
}

func checkMembers(g ranking.Group, n int) error {
	for _, m := range g {
		if m < 0 || m >= n {
			return fmt.Errorf("member %d outside [0,%d): %w", m, n, ErrMemberOutOfRange)
		}
	}

	return nil
}
