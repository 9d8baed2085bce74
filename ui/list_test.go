package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classkit/rollcall/roster"
)

func listPeople(names ...string) []roster.Person {
	people := make([]roster.Person, 0, len(names))
	for _, n := range names {
		p := roster.NewPerson(n, "Tester", roster.RoleStudent)
		people = append(people, p)
	}
	return people
}

func TestList_SetPeopleAnchorsSelection(t *testing.T) {
	l := NewList()
	l.SetSize(60, 30)
	people := listPeople("Ana", "Ben", "Cam")
	l.SetPeople(people, people[1].ID)

	assert.Equal(t, 1, l.SelectedIndex())
	require.NotNil(t, l.Selected())
	assert.Equal(t, people[1].ID, l.Selected().ID)
}

func TestList_SetPeopleUnknownIDSelectsFirst(t *testing.T) {
	l := NewList()
	l.SetSize(60, 30)
	people := listPeople("Ana", "Ben")
	l.SetPeople(people, "nope")

	assert.Equal(t, 0, l.SelectedIndex())
}

func TestList_EmptySelection(t *testing.T) {
	l := NewList()
	l.SetSize(60, 30)
	l.SetPeople(nil, "")

	assert.Nil(t, l.Selected())
	assert.Equal(t, "", l.SelectedID())
}

func TestList_UpDownClamp(t *testing.T) {
	l := NewList()
	l.SetSize(60, 30)
	l.SetPeople(listPeople("Ana", "Ben", "Cam"), "")

	l.Up()
	assert.Equal(t, 0, l.SelectedIndex())

	l.Down()
	l.Down()
	l.Down()
	assert.Equal(t, 2, l.SelectedIndex())
}

func TestList_CycleWraps(t *testing.T) {
	l := NewList()
	l.SetSize(60, 30)
	l.SetPeople(listPeople("Ana", "Ben", "Cam"), "")

	l.CyclePrev()
	assert.Equal(t, 2, l.SelectedIndex())

	l.CycleNext()
	assert.Equal(t, 0, l.SelectedIndex())
}

func TestList_TabClick(t *testing.T) {
	l := NewList()
	l.SetSize(60, 30)

	filter, ok := l.HandleTabClick(2, 1)
	require.True(t, ok)
	assert.Equal(t, roster.FilterAll, filter)

	filter, ok = l.HandleTabClick(len(allTabText)+3, 1)
	require.True(t, ok)
	assert.Equal(t, roster.FilterMissingPhoto, filter)

	_, ok = l.HandleTabClick(2, 10)
	assert.False(t, ok)
}

func TestList_RenderShowsTabsAndRows(t *testing.T) {
	l := NewList()
	l.SetSize(60, 30)
	l.SetFilterContext(roster.FilterAll, roster.SortByName, "")
	l.SetPeople(listPeople("Ana", "Ben"), "")

	out := l.String()
	assert.Contains(t, out, "1 All")
	assert.Contains(t, out, "2 Missing")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Ben")
	assert.Contains(t, out, "Name")
}

func TestList_SearchBadge(t *testing.T) {
	l := NewList()
	l.SetSize(60, 30)
	l.SetFilterContext(roster.FilterAll, roster.SortByName, "ana")
	l.SetPeople(listPeople("Ana"), "")

	assert.Contains(t, l.String(), "/ana")
}

func TestList_GetItemAtRow(t *testing.T) {
	l := NewList()
	l.SetSize(60, 30)
	l.SetPeople(listPeople("Ana", "Ben", "Cam"), "")

	assert.Equal(t, 0, l.GetItemAtRow(0))
	assert.Equal(t, 1, l.GetItemAtRow(l.itemHeight()))
	assert.Equal(t, -1, l.GetItemAtRow(l.itemHeight()*3))
	assert.Equal(t, -1, l.GetItemAtRow(-1))
}

func TestList_ScrollFollowsSelection(t *testing.T) {
	l := NewList()
	l.SetSize(60, 12) // small viewport
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	l.SetPeople(listPeople(names...), "")

	for range names {
		l.Down()
	}
	assert.Greater(t, l.scrollOffset, 0)

	for range names {
		l.Up()
	}
	assert.Equal(t, 0, l.scrollOffset)
}
