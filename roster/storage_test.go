package roster

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memState is an in-memory config.RosterStorage for tests.
type memState struct {
	data json.RawMessage
}

func (m *memState) SaveRoster(data json.RawMessage) error { m.data = data; return nil }
func (m *memState) GetRoster() json.RawMessage            { return m.data }
func (m *memState) DeleteAllData() error                  { m.data = json.RawMessage("{}"); return nil }

func TestStorageRoundTrip(t *testing.T) {
	storage, err := NewStorage(&memState{})
	require.NoError(t, err)

	r := New()
	g := NewGroup("7B", "homeroom")
	require.NoError(t, r.AddGroup(g))
	p := NewPerson("Ana", "Moreira", RoleStudent)
	p.GroupIDs = []string{g.ID}
	require.NoError(t, r.AddPerson(p))

	require.NoError(t, storage.Save(r))

	loaded, err := storage.Load()
	require.NoError(t, err)
	require.Len(t, loaded.People, 1)
	require.Len(t, loaded.Groups, 1)
	assert.Equal(t, p.ID, loaded.People[0].ID)
	assert.True(t, loaded.People[0].InGroup(g.ID))
}

func TestStorageLoadEmptyStateYieldsEmptyRoster(t *testing.T) {
	storage, err := NewStorage(&memState{})
	require.NoError(t, err)

	r, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, r.People)
	assert.Empty(t, r.Groups)
}

func TestStorageLoadCorruptDataFails(t *testing.T) {
	storage, err := NewStorage(&memState{data: json.RawMessage("{not json")})
	require.NoError(t, err)

	_, err = storage.Load()
	assert.Error(t, err)
}

func TestStorageDeleteAll(t *testing.T) {
	state := &memState{}
	storage, err := NewStorage(state)
	require.NoError(t, err)

	r := New()
	require.NoError(t, r.AddPerson(NewPerson("A", "B", RoleStudent)))
	require.NoError(t, storage.Save(r))
	require.NoError(t, storage.DeleteAll())

	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.People)
}

func TestNewStorageRequiresState(t *testing.T) {
	_, err := NewStorage(nil)
	assert.Error(t, err)
}
