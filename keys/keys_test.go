package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryMappedStringHasABinding(t *testing.T) {
	for s, name := range GlobalKeyStringsMap {
		_, ok := GlobalKeyBindings[name]
		assert.True(t, ok, "key %q maps to %v which has no binding", s, name)
	}
}

func TestVimStyleNavigationAliases(t *testing.T) {
	assert.Equal(t, KeyUp, GlobalKeyStringsMap["k"])
	assert.Equal(t, KeyDown, GlobalKeyStringsMap["j"])
}

func TestFilterKeysAreNumberRow(t *testing.T) {
	assert.Equal(t, KeyFilterAll, GlobalKeyStringsMap["1"])
	assert.Equal(t, KeyFilterMissing, GlobalKeyStringsMap["2"])
	assert.Equal(t, KeyCycleSort, GlobalKeyStringsMap["3"])
}

func TestDestructiveKeysRequireShift(t *testing.T) {
	// Remove/delete actions sit on shifted keys so a stray press can't
	// trigger them.
	assert.Equal(t, KeyRemovePerson, GlobalKeyStringsMap["D"])
	assert.Equal(t, KeyDeleteGroup, GlobalKeyStringsMap["X"])
}
