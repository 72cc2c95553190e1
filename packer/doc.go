// SPDX-License-Identifier: MIT

// Package packer assembles a conflict-free partition from a ranking.Table.
//
// Tiers are consumed from the highest score down. Within a tier the packer
// first probes uniformly at random: a conflict-free pick is committed and
// removed, and the first conflicting pick ends the probing. A single
// deterministic left-to-right sweep then commits every remaining
// conflict-free group of the tier. Groups still conflicting afterwards are
// reported in Result.Remaining.
//
// A group conflicts iff one of its members was placed by an earlier commit.
// The placed set is the only mutable state and Pack is strictly sequential.
//
// Randomness comes from an explicit *rand.Rand (WithRand / WithSeed). Without
// either option a fixed default seed is used, so Pack is deterministic for a
// given table unless the caller injects a different source.
//
// Complexity: O(C·k) over all C candidates of size k, plus the random probes
// (at most one more than the commits of each tier).
package packer
