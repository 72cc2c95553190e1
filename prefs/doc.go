// SPDX-License-Identifier: MIT

// Package prefs holds who chose whom.
//
// A Roster maps participant names to dense indices in [0,N) and back; the
// first-encountered order of choosers defines the indices. A Store keeps,
// per participant, a fixed-length PreferenceList of optional partner
// indices. Slots are absent when a participant listed fewer choices than the
// configured count, or when SuppressDuplicates nullified a repeated choice.
//
// Both types are built once and are read-only afterwards, except for the
// single SuppressDuplicates pass, which is idempotent.
package prefs
