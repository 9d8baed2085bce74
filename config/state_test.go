package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	withTempHome(t)

	state := DefaultState()
	state.AddRecentProject("homeroom-2026")
	require.NoError(t, state.SaveRoster(json.RawMessage(`{"people":[]}`)))
	require.NoError(t, state.SetHelpScreensSeen(0b101))

	loaded := LoadState()
	assert.Equal(t, []string{"homeroom-2026"}, loaded.GetRecentProjects())
	assert.Equal(t, uint32(0b101), loaded.GetHelpScreensSeen())
	assert.JSONEq(t, `{"people":[]}`, string(loaded.GetRoster()))
}

func TestLoadStateMissingFileReturnsDefaults(t *testing.T) {
	withTempHome(t)

	state := LoadState()
	assert.Zero(t, state.GetHelpScreensSeen())
	assert.Empty(t, state.GetRecentProjects())
}

func TestAddRecentProjectDedupesAndCaps(t *testing.T) {
	state := DefaultState()
	state.AddRecentProject("a")
	state.AddRecentProject("b")
	state.AddRecentProject("a")
	assert.Equal(t, []string{"a", "b"}, state.GetRecentProjects())

	for i := 0; i < 15; i++ {
		state.AddRecentProject(string(rune('c' + i)))
	}
	assert.Len(t, state.GetRecentProjects(), 10)
}

func TestDeleteAllDataClearsRoster(t *testing.T) {
	withTempHome(t)

	state := DefaultState()
	require.NoError(t, state.SaveRoster(json.RawMessage(`{"people":[{"id":"x"}]}`)))
	require.NoError(t, state.DeleteAllData())

	loaded := LoadState()
	assert.JSONEq(t, "{}", string(loaded.GetRoster()))
}
