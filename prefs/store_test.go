package prefs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affinity/prefs"
)

// fourPeople is the A↔B, C→D fixture shared across tests.
func fourPeople() []prefs.Entry {
	return []prefs.Entry{
		{Chooser: "A", Choices: []string{"B"}},
		{Chooser: "B", Choices: []string{"A"}},
		{Chooser: "C", Choices: []string{"D"}},
		{Chooser: "D"},
	}
}

func TestRoster_Bijection(t *testing.T) {
	r, err := prefs.NewRoster([]string{"ann", "bob", "cy"})
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())
	for i, name := range r.Names() {
		idx, ok := r.Index(name)
		require.True(t, ok)
		assert.Equal(t, i, idx)
		back, ok := r.Name(idx)
		require.True(t, ok)
		assert.Equal(t, name, back)
	}
	_, ok := r.Index("dee")
	assert.False(t, ok)
	_, ok = r.Name(3)
	assert.False(t, ok)
	_, ok = r.Name(-1)
	assert.False(t, ok)
}

func TestRoster_Errors(t *testing.T) {
	_, err := prefs.NewRoster([]string{"a", "b", "a"})
	assert.ErrorIs(t, err, prefs.ErrDuplicateParticipant)

	_, err = prefs.NewRoster([]string{"a", ""})
	assert.ErrorIs(t, err, prefs.ErrEmptyName)
}

func TestBuild_ResolvesAndPads(t *testing.T) {
	s, err := prefs.Build(fourPeople(), 2)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 2, s.ChoiceCount())

	assert.Equal(t, prefs.PreferenceList{prefs.Some(1), prefs.Absent}, s.List(0))
	assert.Equal(t, prefs.PreferenceList{prefs.Absent, prefs.Absent}, s.List(3))

	assert.True(t, s.Chosen(0, 1))
	assert.True(t, s.Chosen(1, 0))
	assert.True(t, s.Chosen(2, 3))
	assert.False(t, s.Chosen(3, 2))
	assert.False(t, s.Chosen(0, 2))
	assert.False(t, s.Chosen(9, 0), "out-of-range chooser")
	assert.Nil(t, s.List(9))
}

func TestBuild_AutoChoiceCount(t *testing.T) {
	entries := []prefs.Entry{
		{Chooser: "A", Choices: []string{"B", "C", "D"}},
		{Chooser: "B", Choices: []string{"A"}},
		{Chooser: "C"},
		{Chooser: "D"},
	}
	s, err := prefs.Build(entries, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, s.ChoiceCount())
	assert.Len(t, s.List(2), 3)
}

func TestBuild_Errors(t *testing.T) {
	_, err := prefs.Build([]prefs.Entry{
		{Chooser: "A", Choices: []string{"Z"}},
		{Chooser: "B"},
	}, 1)
	assert.ErrorIs(t, err, prefs.ErrUnknownParticipant)

	_, err = prefs.Build([]prefs.Entry{
		{Chooser: "A", Choices: []string{"B", "C"}},
		{Chooser: "B"},
		{Chooser: "C"},
	}, 1)
	assert.ErrorIs(t, err, prefs.ErrTooManyChoices)

	_, err = prefs.Build([]prefs.Entry{{Chooser: "A"}, {Chooser: "A"}}, 1)
	assert.ErrorIs(t, err, prefs.ErrDuplicateParticipant)
}

func TestBuild_ListIsACopy(t *testing.T) {
	s, err := prefs.Build(fourPeople(), 1)
	require.NoError(t, err)
	l := s.List(0)
	l[0] = prefs.Absent
	assert.True(t, s.Chosen(0, 1))
}

func TestSuppressDuplicates(t *testing.T) {
	entries := []prefs.Entry{
		{Chooser: "A", Choices: []string{"B", "C", "B", "B"}},
		{Chooser: "B", Choices: []string{"C", "C"}},
		{Chooser: "C", Choices: []string{"A", "B"}},
	}
	s, err := prefs.Build(entries, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, s.SuppressDuplicates())
	assert.Equal(t, prefs.PreferenceList{prefs.Some(1), prefs.Some(2), prefs.Absent, prefs.Absent}, s.List(0))
	assert.Equal(t, prefs.PreferenceList{prefs.Some(2), prefs.Absent, prefs.Absent, prefs.Absent}, s.List(1))
	assert.Equal(t, []int{0, 1}, s.List(2).Indices())

	assert.True(t, s.Chosen(0, 1), "first occurrence survives")
}

func TestSuppressDuplicates_Idempotent(t *testing.T) {
	entries := []prefs.Entry{
		{Chooser: "A", Choices: []string{"B", "B", "C"}},
		{Chooser: "B", Choices: []string{"A", "C", "A"}},
		{Chooser: "C", Choices: []string{"C", "C", "C"}},
	}
	s, err := prefs.Build(entries, 3)
	require.NoError(t, err)

	s.SuppressDuplicates()
	once := make([]prefs.PreferenceList, s.Len())
	for i := range once {
		once[i] = s.List(i)
	}

	assert.Zero(t, s.SuppressDuplicates(), "second pass must be a no-op")
	for i := range once {
		assert.Equal(t, once[i], s.List(i), "participant %d", i)
	}
}

func TestPreferenceList_AbsentNeverMatches(t *testing.T) {
	l := prefs.PreferenceList{prefs.Absent, prefs.Some(0)}
	assert.True(t, l.Contains(0))
	assert.False(t, prefs.PreferenceList{prefs.Absent}.Contains(0), "Absent has Index 0 but must not match")
}
