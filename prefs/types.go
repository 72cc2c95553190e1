// SPDX-License-Identifier: MIT

package prefs

import "errors"

var (
	// ErrDuplicateParticipant indicates the same chooser name appeared twice.
	ErrDuplicateParticipant = errors.New("prefs: duplicate participant")

	// ErrUnknownParticipant indicates a listed partner name that is not a chooser.
	ErrUnknownParticipant = errors.New("prefs: unknown participant")

	// ErrTooManyChoices indicates a list longer than the configured choice count.
	ErrTooManyChoices = errors.New("prefs: too many choices")

	// ErrEmptyName indicates an empty chooser name.
	ErrEmptyName = errors.New("prefs: empty participant name")
)

// Entry is one parsed record: a chooser and the partner names they ranked,
// most preferred first.
type Entry struct {
	Chooser string
	Choices []string
}

// Choice is one preference slot. Index is meaningful only when Valid is true.
type Choice struct {
	Index int
	Valid bool
}

// Absent is the empty preference slot.
var Absent = Choice{}

// Some returns a valid slot holding idx.
func Some(idx int) Choice { return Choice{Index: idx, Valid: true} }

// PreferenceList is a participant's ordered, fixed-length list of slots.
type PreferenceList []Choice

// Contains reports whether idx occupies any valid slot.
func (l PreferenceList) Contains(idx int) bool {
	for _, c := range l {
		if c.Valid && c.Index == idx {
			return true
		}
	}

	return false
}

// Indices returns the valid slots' indices in rank order.
func (l PreferenceList) Indices() []int {
	out := make([]int, 0, len(l))
	for _, c := range l {
		if c.Valid {
			out = append(out, c.Index)
		}
	}

	return out
}
