// SPDX-License-Identifier: MIT

package ranking

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Table maps scores to tiers of candidate groups.
type Table struct {
	mu     sync.RWMutex
	tiers  map[int][]Group
	total  int
	sealed bool
}

// New returns an empty Table.
func New() *Table {
	return &Table{tiers: make(map[int][]Group)}
}

// Insert adds g to the tier of score. The table keeps a copy of g.
// Inserts are serialized; no deduplication is performed.
//
// Errors: ErrEmptyGroup, ErrSealed.
//
// Complexity: O(len(g)) amortized.
func (t *Table) Insert(score int, g Group) error {
	if len(g) == 0 {
		return fmt.Errorf("Insert: score=%d: %w", score, ErrEmptyGroup)
	}
	c := g.Clone()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sealed {
		return fmt.Errorf("Insert: score=%d: %w", score, ErrSealed)
	}
	t.tiers[score] = append(t.tiers[score], c)
	t.total++

	return nil
}

// Seal sorts each tier lexicographically and rejects further inserts.
// Sealing twice is a no-op.
//
// Complexity: O(T·log T·k) for the largest tier of size T.
func (t *Table) Seal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sealed {
		return
	}
	for _, tier := range t.tiers {
		slices.SortFunc(tier, Group.Compare)
	}
	t.sealed = true
}

// Sealed reports whether Seal was called.
func (t *Table) Sealed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.sealed
}

// Scores returns the distinct scores, highest first.
func (t *Table) Scores() []int {
	t.mu.RLock()
	keys := lo.Keys(t.tiers)
	t.mu.RUnlock()
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	return keys
}

// Tier returns a copy of the groups that reached score, in table order.
// Groups themselves are deep-copied.
func (t *Table) Tier(score int) []Group {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return lo.Map(t.tiers[score], func(g Group, _ int) Group { return g.Clone() })
}

// TierLen returns the number of groups that reached score without copying
// the tier.
func (t *Table) TierLen(score int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.tiers[score])
}

// Len returns the number of inserted groups across all tiers.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.total
}

// TierCount returns the number of distinct scores.
func (t *Table) TierCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.tiers)
}
