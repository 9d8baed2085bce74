package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPersonRejectsEmptyName(t *testing.T) {
	r := New()
	err := r.AddPerson(Person{})
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Empty(t, r.People)
}

func TestUpdatePersonBumpsUpdatedAt(t *testing.T) {
	r := New()
	p := NewPerson("Ana", "Moreira", RoleStudent)
	require.NoError(t, r.AddPerson(p))

	before := p.UpdatedAt
	time.Sleep(time.Millisecond)
	p.Email = "ana@example.edu"
	require.NoError(t, r.UpdatePerson(p))

	got, err := r.FindPerson(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.edu", got.Email)
	assert.True(t, got.UpdatedAt.After(before))
}

func TestCloneIsIndependent(t *testing.T) {
	r := New()
	ana := NewPerson("Ana", "Moreira", RoleStudent)
	ben := NewPerson("Ben", "Costa", RoleStudent)
	require.NoError(t, r.AddPerson(ana))
	require.NoError(t, r.AddPerson(ben))
	g := NewGroup("Class A", "")
	require.NoError(t, r.AddGroup(g))
	require.NoError(t, r.SetMembership(ana.ID, g.ID, true))

	c := r.Clone()

	// Removing from the clone shifts its backing only.
	require.NoError(t, c.RemovePerson(ana.ID))
	require.Len(t, r.People, 2)
	assert.Equal(t, ana.ID, r.People[0].ID)

	// Membership edits on the clone leave the original's GroupIDs alone.
	c2 := r.Clone()
	require.NoError(t, c2.SetMembership(ana.ID, g.ID, false))
	got, err := r.FindPerson(ana.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{g.ID}, got.GroupIDs)

	require.NoError(t, c2.RemoveGroup(g.ID))
	require.Len(t, r.Groups, 1)
}

func TestUpdateUnknownPersonFails(t *testing.T) {
	r := New()
	err := r.UpdatePerson(NewPerson("Ghost", "Entry", RoleStudent))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemovePerson(t *testing.T) {
	r := New()
	p := NewPerson("Rui", "Costa", RoleStaff)
	require.NoError(t, r.AddPerson(p))
	require.NoError(t, r.RemovePerson(p.ID))
	assert.Empty(t, r.People)
	assert.ErrorIs(t, r.RemovePerson(p.ID), ErrNotFound)
}

func TestAddGroupDuplicateNameCaseInsensitive(t *testing.T) {
	r := New()
	require.NoError(t, r.AddGroup(NewGroup("7B", "")))
	err := r.AddGroup(NewGroup("7b", ""))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRenameGroupKeepsUniqueness(t *testing.T) {
	r := New()
	a := NewGroup("7A", "")
	b := NewGroup("7B", "")
	require.NoError(t, r.AddGroup(a))
	require.NoError(t, r.AddGroup(b))

	assert.ErrorIs(t, r.RenameGroup(b.ID, "7a"), ErrDuplicate)
	require.NoError(t, r.RenameGroup(b.ID, "8B"))

	got, err := r.FindGroup(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "8B", got.Name)
}

func TestRemoveGroupStripsMemberships(t *testing.T) {
	r := New()
	g := NewGroup("Choir", "")
	require.NoError(t, r.AddGroup(g))
	p := NewPerson("Ana", "Moreira", RoleStudent)
	require.NoError(t, r.AddPerson(p))
	require.NoError(t, r.SetMembership(p.ID, g.ID, true))
	require.Equal(t, 1, r.GroupSize(g.ID))

	require.NoError(t, r.RemoveGroup(g.ID))
	got, err := r.FindPerson(p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.GroupIDs)
}

func TestSetMembershipIsIdempotent(t *testing.T) {
	r := New()
	g := NewGroup("Chess", "")
	require.NoError(t, r.AddGroup(g))
	p := NewPerson("Rui", "Costa", RoleStudent)
	require.NoError(t, r.AddPerson(p))

	require.NoError(t, r.SetMembership(p.ID, g.ID, true))
	require.NoError(t, r.SetMembership(p.ID, g.ID, true))
	assert.Equal(t, 1, r.GroupSize(g.ID))

	require.NoError(t, r.SetMembership(p.ID, g.ID, false))
	assert.Zero(t, r.GroupSize(g.ID))
}

func TestPhotoCoverage(t *testing.T) {
	r := New()
	with := NewPerson("A", "B", RoleStudent)
	with.Photo = &PhotoRef{Path: "a.jpg", Source: SourceFile, AssignedAt: time.Now()}
	without := NewPerson("C", "D", RoleStudent)
	require.NoError(t, r.AddPerson(with))
	require.NoError(t, r.AddPerson(without))

	c := r.PhotoCoverage()
	assert.Equal(t, 2, c.Total)
	assert.Equal(t, 1, c.WithPhoto)
	assert.Equal(t, 50, c.Percent())
}

func TestCoveragePercentEmptyRosterIsFull(t *testing.T) {
	assert.Equal(t, 100, Coverage{}.Percent())
}

func TestFilterPeople(t *testing.T) {
	g := NewGroup("7B", "")
	inGroup := NewPerson("Ana", "Moreira", RoleStudent)
	inGroup.GroupIDs = []string{g.ID}
	inGroup.Photo = &PhotoRef{Path: "ana.jpg"}
	outGroup := NewPerson("Rui", "Costa", RoleStudent)
	people := []Person{inGroup, outGroup}

	assert.Len(t, FilterPeople(people, "", FilterAll, ""), 2)
	assert.Len(t, FilterPeople(people, g.ID, FilterAll, ""), 1)
	assert.Len(t, FilterPeople(people, "", FilterMissingPhoto, ""), 1)
	assert.Len(t, FilterPeople(people, "", FilterAll, "rui"), 1)
	assert.Empty(t, FilterPeople(people, g.ID, FilterMissingPhoto, ""))
}

func TestSortPeopleByName(t *testing.T) {
	people := []Person{
		NewPerson("Ana", "Zarco", RoleStudent),
		NewPerson("Rui", "Almeida", RoleStudent),
	}
	SortPeople(people, SortByName)
	assert.Equal(t, "Almeida", people[0].LastName)
}

func TestSortPeopleByRolePutsStaffFirst(t *testing.T) {
	people := []Person{
		NewPerson("Ana", "Aluno", RoleStudent),
		NewPerson("Rui", "Prof", RoleStaff),
	}
	SortPeople(people, SortByRole)
	assert.Equal(t, RoleStaff, people[0].Role)
}

func TestPersonMatches(t *testing.T) {
	p := NewPerson("Ana", "Moreira", RoleStudent)
	p.Email = "ana.moreira@example.edu"
	assert.True(t, p.Matches(""))
	assert.True(t, p.Matches("moreira"))
	assert.True(t, p.Matches("ANA.M"))
	assert.False(t, p.Matches("zebra"))
}

func TestSortName(t *testing.T) {
	assert.Equal(t, "Moreira, Ana", NewPerson("Ana", "Moreira", RoleStudent).SortName())
	assert.Equal(t, "Ana", NewPerson("Ana", "", RoleStudent).SortName())
	assert.Equal(t, "Moreira", NewPerson("", "Moreira", RoleStudent).SortName())
}
