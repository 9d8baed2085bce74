package store

import (
	"testing"

	"github.com/classkit/rollcall/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyResolvesToItsSlice(t *testing.T) {
	s := DefaultState()
	for _, k := range Keys {
		slice, ok := s.slice(k)
		require.True(t, ok, "key %q", k)
		assert.Equal(t, k, slice.StoreKey())
	}
}

func TestDefaultStateHasUsableCollections(t *testing.T) {
	s := DefaultState()
	assert.NotNil(t, s.Images.ByPerson)
	assert.NotNil(t, s.Users.All)
	assert.NotNil(t, s.Groups.All)
}

func TestUsersSliceSelectedReturnsCopy(t *testing.T) {
	p := roster.NewPerson("Rui", "Costa", roster.RoleStaff)
	u := UsersSlice{All: []roster.Person{p}, SelectedID: p.ID}

	sel := u.Selected()
	require.NotNil(t, sel)
	sel.FirstName = "changed"
	assert.Equal(t, "Rui", u.All[0].FirstName, "Selected must hand out a copy")
}

func TestUsersSliceSelectedNilWhenUnset(t *testing.T) {
	u := UsersSlice{All: []roster.Person{roster.NewPerson("A", "B", roster.RoleStudent)}}
	assert.Nil(t, u.Selected())
}

func TestRepositorySliceFraction(t *testing.T) {
	assert.Zero(t, RepositorySlice{}.Fraction())
	assert.InDelta(t, 0.5, RepositorySlice{Queued: 4, Done: 2}.Fraction(), 1e-9)
}
