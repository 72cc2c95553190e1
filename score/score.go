// SPDX-License-Identifier: MIT

package score

import (
	"errors"
	"fmt"
)

// ErrNegativeWeight is returned by NewScorer when a weight is below zero.
var ErrNegativeWeight = errors.New("score: negative weight")

// Chooser answers whether participant p listed candidate c.
// *prefs.Store satisfies it.
type Chooser interface {
	Chosen(p, c int) bool
}

// Weights are the points awarded per pair.
type Weights struct {
	Mutual int `toml:"mutual"`
	OneWay int `toml:"one_way"`
}

// DefaultWeights returns the 3/1 reciprocity weights.
func DefaultWeights() Weights {
	return Weights{Mutual: 3, OneWay: 1}
}

// Scorer scores groups with a fixed set of weights.
type Scorer struct {
	w Weights
}

// NewScorer validates w and returns a Scorer.
func NewScorer(w Weights) (Scorer, error) {
	if w.Mutual < 0 || w.OneWay < 0 {
		return Scorer{}, fmt.Errorf("NewScorer: mutual=%d one_way=%d: %w", w.Mutual, w.OneWay, ErrNegativeWeight)
	}

	return Scorer{w: w}, nil
}

// Weights returns the scorer's weights.
func (s Scorer) Weights() Weights { return s.w }

// Score rates the first groupSize members of comb. Each pair is oriented
// by identity: only the lower index choosing the higher one counts, either
// as mutual or as one-way; the higher index alone choosing scores nothing.
//
// Complexity: O(groupSize²·c) where c is the cost of one Chosen call.
func (s Scorer) Score(groupSize int, ch Chooser, comb []int) int {
	if groupSize > len(comb) {
		groupSize = len(comb)
	}

	var total int
	for i := 0; i < groupSize; i++ {
		for j := i + 1; j < groupSize; j++ {
			lo, hi := min(comb[i], comb[j]), max(comb[i], comb[j])
			if !ch.Chosen(lo, hi) {
				continue
			}
			if ch.Chosen(hi, lo) {
				total += s.w.Mutual
			} else {
				total += s.w.OneWay
			}
		}
	}

	return total
}

// Score rates comb with DefaultWeights.
func Score(groupSize int, ch Chooser, comb []int) int {
	return Scorer{w: DefaultWeights()}.Score(groupSize, ch, comb)
}

// Max returns the highest score a group of groupSize can reach under w.
func Max(groupSize int, w Weights) int {
	if groupSize < 2 {
		return 0
	}
	best := w.Mutual
	if w.OneWay > best {
		best = w.OneWay
	}

	return best * groupSize * (groupSize - 1) / 2
}
