// SPDX-License-Identifier: MIT

package prefs

import "fmt"

// Roster is a read-only bijection between participant names and indices.
type Roster struct {
	byName map[string]int
	names  []string
}

// NewRoster assigns indices 0..len(names)-1 in the given order.
//
// Errors: ErrEmptyName, ErrDuplicateParticipant.
//
// Complexity: O(N) time and space.
func NewRoster(names []string) (*Roster, error) {
	r := &Roster{
		byName: make(map[string]int, len(names)),
		names:  make([]string, 0, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("NewRoster: position %d: %w", i, ErrEmptyName)
		}
		if prev, ok := r.byName[name]; ok {
			return nil, fmt.Errorf("NewRoster: %q at %d and %d: %w", name, prev, i, ErrDuplicateParticipant)
		}
		r.byName[name] = len(r.names)
		r.names = append(r.names, name)
	}

	return r, nil
}

// Index returns the index of name.
func (r *Roster) Index(name string) (int, bool) {
	i, ok := r.byName[name]

	return i, ok
}

// Name returns the name at index i.
func (r *Roster) Name(i int) (string, bool) {
	if i < 0 || i >= len(r.names) {
		return "", false
	}

	return r.names[i], true
}

// Names returns all names in index order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Len returns the number of participants.
func (r *Roster) Len() int { return len(r.names) }
