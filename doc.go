// SPDX-License-Identifier: MIT

// Package affinity partitions people into fixed-size groups from their
// ranked partner choices, favouring reciprocated choices.
//
// 🚀 What is affinity?
//
//	Each participant names the people they would like to be grouped with.
//	affinity scores every possible group of the requested size by how many of
//	those choices are mutual, then packs the best-scoring groups greedily
//	into a partition where nobody appears twice.
//
// ✨ Pipeline:
//
//	combo/    — O(k)-state lexicographic k-combination enumerator (resumable)
//	prefs/    — name↔index roster and fixed-length preference lists
//	score/    — reciprocity scoring: 3 per mutual pair, 1 per one-way pair
//	ranking/  — score tiers of candidate groups, safe for concurrent inserts
//	packer/   — seeded, tie-aware greedy packing and the leftover set
//	grouping/ — the end-to-end Solve over a prefs.Store
//	parser/   — the indented text input format
//	render/   — plain-text and .xlsx output
//
// Quick example:
//
//	store, _ := prefs.Build(entries, 0)
//	store.SuppressDuplicates()
//	p, _ := grouping.Solve(store, 3, grouping.WithSeed(42))
//	_ = render.WriteText(os.Stdout, p)
//
// The search is exhaustive over candidates but the packing is heuristic:
// affinity does not promise a globally optimal partition. It suits
// classrooms, workshops and teams, i.e. tens of participants.
//
//	go install github.com/katalvlaran/affinity/cmd/affinity@latest
package affinity
