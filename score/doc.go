// SPDX-License-Identifier: MIT

// Package score rates a candidate group by how reciprocal its members'
// choices are.
//
// Every unordered pair {a,b} of the group, with a < b by participant
// index, contributes once:
//
//	a chose b and b chose a   → Weights.Mutual (3 by default)
//	a chose b, b did not      → Weights.OneWay (1 by default)
//	otherwise                 → 0
//
// The score is additive over all C(k,2) pairs, symmetric under member
// permutation, and bounded by Max(k, w). Scoring is pure: it reads the
// preference data only and may run concurrently on a shared Chooser.
package score
