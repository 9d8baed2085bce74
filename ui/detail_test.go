package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailPane_NoSelection(t *testing.T) {
	p := NewDetailPane()
	p.SetSize(60, 20)
	assert.Equal(t, "no person selected", p.String())
}

func TestDetailPane_NoSelectionWidePaneShowsBanner(t *testing.T) {
	p := NewDetailPane()
	p.SetSize(BannerWidth+4, 20)
	out := p.String()
	assert.Contains(t, out, "no person selected")
	// JoinVertical pads lines, so match on the banner's first line only.
	assert.Contains(t, out, strings.Split(Banner(), "\n")[0])
}

func TestDetailPane_PersonFields(t *testing.T) {
	p := NewDetailPane()
	p.SetSize(60, 20)
	p.SetData(DetailData{
		HasPerson: true,
		Name:      "Ivanova, Ana",
		Email:     "ana@example.edu",
		Role:      "student",
		Groups:    []string{"Section A", "Lab 2"},
	})

	out := p.String()
	assert.Contains(t, out, "Ivanova, Ana")
	assert.Contains(t, out, "ana@example.edu")
	assert.Contains(t, out, "Section A, Lab 2")
	assert.Contains(t, out, "missing")
}

func TestDetailPane_PhotoMetadata(t *testing.T) {
	p := NewDetailPane()
	p.SetSize(60, 20)
	p.SetData(DetailData{
		HasPerson:     true,
		Name:          "Ivanova, Ana",
		PhotoPath:     "abc123.jpg",
		PhotoSource:   "repository",
		PhotoAssigned: "2026-08-20",
		ThumbnailPx:   96,
	})

	out := p.String()
	assert.Contains(t, out, "abc123.jpg")
	assert.Contains(t, out, "repository")
	assert.Contains(t, out, "96px")
	assert.NotContains(t, out, "missing")
}

func TestDetailPane_NotesFallbackWraps(t *testing.T) {
	p := NewDetailPane()
	p.SetSize(40, 25)
	p.SetData(DetailData{
		HasPerson: true,
		Name:      "Ivanova, Ana",
		RawNotes:  "prefers front row seating and responds well to written instructions",
	})

	out := p.String()
	assert.Contains(t, out, "notes")
	assert.Contains(t, out, "front row")
}

func TestDetailPane_RenderedNotesWin(t *testing.T) {
	p := NewDetailPane()
	p.SetSize(60, 20)
	p.SetData(DetailData{
		HasPerson:     true,
		Name:          "Ivanova, Ana",
		RawNotes:      "raw text",
		RenderedNotes: "rendered text",
	})

	out := p.String()
	assert.Contains(t, out, "rendered text")
	assert.NotContains(t, out, "raw text")
}
