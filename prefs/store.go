// SPDX-License-Identifier: MIT
// Package: affinity/prefs
//
// store.go — preference lists keyed by participant index.
//
// Contract:
//   • Build resolves every choice name through a Roster built from the
//     choosers in entry order; a name that is not a chooser is fatal.
//   • Every list has exactly ChoiceCount slots; unused slots are Absent.
//   • SuppressDuplicates keeps the first occurrence of a repeated partner
//     and nullifies the rest, so one pairing is never counted twice.
//
// Complexity:
//   • Build:              O(N·c) time, O(N·c) space.
//   • Chosen:             O(c).
//   • SuppressDuplicates: O(N·c²).

package prefs

import "fmt"

const methodBuild = "Build"

// Store holds every participant's PreferenceList.
type Store struct {
	roster      *Roster
	lists       []PreferenceList
	choiceCount int
}

// Build constructs a Store from parsed entries.
//
// choiceCount fixes the length of every PreferenceList. A value ≤ 0 means
// "the longest list in entries".
//
// Errors: ErrEmptyName, ErrDuplicateParticipant (from the roster),
// ErrUnknownParticipant, ErrTooManyChoices. No partial Store is returned.
func Build(entries []Entry, choiceCount int) (*Store, error) {
	names := make([]string, len(entries))
	longest := 0
	for i, e := range entries {
		names[i] = e.Chooser
		if len(e.Choices) > longest {
			longest = len(e.Choices)
		}
	}
	roster, err := NewRoster(names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	if choiceCount <= 0 {
		choiceCount = longest
	}

	lists := make([]PreferenceList, len(entries))
	for i, e := range entries {
		if len(e.Choices) > choiceCount {
			return nil, fmt.Errorf("%s: %q lists %d choices, limit %d: %w",
				methodBuild, e.Chooser, len(e.Choices), choiceCount, ErrTooManyChoices)
		}
		list := make(PreferenceList, choiceCount)
		for slot, name := range e.Choices {
			idx, ok := roster.Index(name)
			if !ok {
				return nil, fmt.Errorf("%s: %q chose %q: %w", methodBuild, e.Chooser, name, ErrUnknownParticipant)
			}
			list[slot] = Some(idx)
		}
		lists[i] = list
	}

	return &Store{roster: roster, lists: lists, choiceCount: choiceCount}, nil
}

// SuppressDuplicates nullifies every repeated partner in each list but the
// first occurrence, and returns how many slots it nullified. Running it again
// returns 0 and changes nothing.
func (s *Store) SuppressDuplicates() int {
	var nullified int
	for _, list := range s.lists {
		for i := 0; i < len(list); i++ {
			if !list[i].Valid {
				continue
			}
			for j := i + 1; j < len(list); j++ {
				if list[j].Valid && list[j].Index == list[i].Index {
					list[j] = Absent
					nullified++
				}
			}
		}
	}

	return nullified
}

// Chosen reports whether participant p listed candidate c.
// Out-of-range participants never choose anyone.
func (s *Store) Chosen(p, c int) bool {
	if p < 0 || p >= len(s.lists) {
		return false
	}

	return s.lists[p].Contains(c)
}

// List returns a copy of participant p's preference list, or nil for an
// out-of-range p.
func (s *Store) List(p int) PreferenceList {
	if p < 0 || p >= len(s.lists) {
		return nil
	}
	out := make(PreferenceList, len(s.lists[p]))
	copy(out, s.lists[p])

	return out
}

// Len returns the number of participants.
func (s *Store) Len() int { return len(s.lists) }

// ChoiceCount returns the fixed length of every PreferenceList.
func (s *Store) ChoiceCount() int { return s.choiceCount }

// Roster returns the name↔index mapping the store was built with.
func (s *Store) Roster() *Roster { return s.roster }
