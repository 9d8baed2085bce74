package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/classkit/rollcall/roster"
)

func TestPersonRenderer_PhotoIcons(t *testing.T) {
	r := &PersonRenderer{}
	r.setWidth(60)

	p := roster.NewPerson("Ana", "Ivanova", roster.RoleStudent)
	out := r.Render(p, false, true, 0)
	assert.Contains(t, out, "○")

	p.Photo = &roster.PhotoRef{Path: "x.jpg", Source: roster.SourceRepository, AssignedAt: time.Now()}
	out = r.Render(p, false, true, 0)
	assert.Contains(t, out, "●")
}

func TestPersonRenderer_SortNameAndEmail(t *testing.T) {
	r := &PersonRenderer{}
	r.setWidth(60)

	p := roster.NewPerson("Ana", "Ivanova", roster.RoleStudent)
	p.Email = "ana@example.edu"
	out := r.Render(p, false, true, 0)
	assert.Contains(t, out, "Ivanova, Ana")
	assert.Contains(t, out, "ana@example.edu")
}

func TestPersonRenderer_NoEmailPlaceholder(t *testing.T) {
	r := &PersonRenderer{}
	r.setWidth(60)

	p := roster.NewPerson("Ana", "Ivanova", roster.RoleStudent)
	out := r.Render(p, false, true, 0)
	assert.Contains(t, out, "no email")
}

func TestPersonRenderer_GroupCount(t *testing.T) {
	r := &PersonRenderer{}
	r.setWidth(60)

	p := roster.NewPerson("Ana", "Ivanova", roster.RoleStudent)
	p.GroupIDs = []string{"g1"}
	assert.Contains(t, r.Render(p, false, true, 0), "1 group")

	p.GroupIDs = []string{"g1", "g2"}
	assert.Contains(t, r.Render(p, false, true, 0), "2 groups")
}

func TestPersonRenderer_TwoLines(t *testing.T) {
	r := &PersonRenderer{}
	r.setWidth(60)

	p := roster.NewPerson("Ana", "Ivanova", roster.RoleStudent)
	out := r.Render(p, true, true, 0)
	// title padding (1 top) + title + desc + desc padding (1 bottom) = 4 rows
	assert.Equal(t, 4, len(strings.Split(out, "\n")))
}
