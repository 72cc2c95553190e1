// SPDX-License-Identifier: MIT

package ranking

import (
	"errors"
	"slices"
)

var (
	// ErrSealed is returned by Insert after Seal.
	ErrSealed = errors.New("ranking: table is sealed")

	// ErrEmptyGroup is returned by Insert for a group with no members.
	ErrEmptyGroup = errors.New("ranking: empty group")
)

// Group is a candidate group: strictly increasing participant indices.
type Group []int

// Clone returns an independent copy of g.
func (g Group) Clone() Group { return slices.Clone(g) }

// Compare orders groups lexicographically.
func (g Group) Compare(o Group) int { return slices.Compare(g, o) }

// ScoredGroup is a Group together with its reciprocity score.
type ScoredGroup struct {
	Members Group
	Score   int
}
