package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceOverlay_TopLeft(t *testing.T) {
	bg := "aaaa\nbbbb\ncccc"
	out := PlaceOverlay(0, 0, "XX", bg, false)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "XXaa", lines[0])
	assert.Equal(t, "bbbb", lines[1])
}

func TestPlaceOverlay_Offset(t *testing.T) {
	bg := "aaaa\nbbbb\ncccc"
	out := PlaceOverlay(1, 1, "XX", bg, false)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "aaaa", lines[0])
	assert.Equal(t, "bXXb", lines[1])
	assert.Equal(t, "cccc", lines[2])
}

func TestPlaceOverlay_Centered(t *testing.T) {
	bg := strings.Repeat(strings.Repeat("a", 10)+"\n", 4) + strings.Repeat("a", 10)
	out := PlaceOverlay(0, 0, "XX", bg, true)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "aaaaXXaaaa", lines[2])
}

func TestPlaceOverlay_TallerThanBackground(t *testing.T) {
	bg := "aa\nbb"
	out := PlaceOverlay(0, 0, "X\nY\nZ", bg, false)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "Xa", lines[0])
	assert.Equal(t, "Yb", lines[1])
}

func TestPlaceOverlay_WiderThanBackground(t *testing.T) {
	bg := "aa\nbb"
	out := PlaceOverlay(0, 0, "XXXX", bg, false)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "XXXX", lines[0])
}
