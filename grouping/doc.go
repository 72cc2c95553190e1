// SPDX-License-Identifier: MIT

// Package grouping runs the full partitioning pipeline over a prefs.Store:
//
//	combo.Enumerator ─▶ score.Scorer ─▶ ranking.Table ─▶ packer.Pack ─▶ Partition
//
// Solve enumerates every k-subset of participants, scores it, packs the
// ranked candidates greedily and reports both the chosen groups and the
// leftover participants, resolved to names.
//
// Scoring can be fanned out over several goroutines with WithWorkers; the
// ranking table is sealed before packing, so the result depends only on the
// store, the group size and the random source, never on the worker count.
package grouping
