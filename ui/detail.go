package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	detailSectionStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	detailDividerStyle = lipgloss.NewStyle().Foreground(ColorOverlay)
	detailLabelStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Width(14)
	detailValueStyle   = lipgloss.NewStyle().Foreground(ColorText)
)

// DetailData holds the data to render in the detail pane.
// Built by the app layer from the selected person and the images slice.
type DetailData struct {
	Name    string
	Email   string
	Role    string
	Created string
	Updated string

	Groups []string

	// Photo fields (empty when no photo is assigned).
	PhotoPath     string
	PhotoSource   string
	PhotoAssigned string
	// ThumbnailPx is the configured thumbnail edge, shown as photo metadata.
	ThumbnailPx int

	// RenderedNotes is the markdown-rendered notes body. The app layer owns
	// the render so it can run off the update loop.
	RenderedNotes string
	// RawNotes is the fallback shown while a render is pending.
	RawNotes string

	HasPerson bool
}

// DetailPane renders the selected person's details in the right-hand pane.
type DetailPane struct {
	width, height int
	data          DetailData
	viewport      viewport.Model
}

// NewDetailPane creates a new DetailPane.
func NewDetailPane() *DetailPane {
	vp := viewport.New(0, 0)
	return &DetailPane{viewport: vp}
}

// SetSize updates the pane dimensions.
func (p *DetailPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = width
	p.viewport.Height = height
	p.viewport.SetContent(p.render())
}

// GetSize returns the pane dimensions.
func (p *DetailPane) GetSize() (width, height int) {
	return p.width, p.height
}

// SetData updates the data to render.
func (p *DetailPane) SetData(data DetailData) {
	p.data = data
	p.viewport.SetContent(p.render())
	p.viewport.GotoTop()
}

// ScrollUp scrolls the viewport up.
func (p *DetailPane) ScrollUp() {
	p.viewport.LineUp(1)
}

// ScrollDown scrolls the viewport down.
func (p *DetailPane) ScrollDown() {
	p.viewport.LineDown(1)
}

// String renders the detail pane content. With no selection the pane shows
// the application banner when it fits, like an idle splash.
func (p *DetailPane) String() string {
	if !p.data.HasPerson {
		if p.width >= BannerWidth {
			return lipgloss.JoinVertical(lipgloss.Left, Banner(), "", "no person selected")
		}
		return "no person selected"
	}
	return p.viewport.View()
}

func (p *DetailPane) renderRow(label, value string) string {
	valueWidth := p.width - lipgloss.Width(detailLabelStyle.Render(label))
	if valueWidth < 10 {
		valueWidth = 10
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		detailLabelStyle.Render(label),
		detailValueStyle.Width(valueWidth).Render(value),
	)
}

func (p *DetailPane) renderDivider() string {
	w := p.width - 4
	if w < 10 {
		w = 10
	}
	return detailDividerStyle.Render(strings.Repeat("-", w))
}

func (p *DetailPane) renderPersonSection() string {
	lines := []string{
		detailSectionStyle.Render("person"),
		p.renderDivider(),
		p.renderRow("name", p.data.Name),
	}
	if p.data.Email != "" {
		lines = append(lines, p.renderRow("email", p.data.Email))
	}
	if p.data.Role != "" {
		lines = append(lines, p.renderRow("role", p.data.Role))
	}
	if len(p.data.Groups) > 0 {
		lines = append(lines, p.renderRow("groups", strings.Join(p.data.Groups, ", ")))
	}
	if p.data.Created != "" {
		lines = append(lines, p.renderRow("created", p.data.Created))
	}
	if p.data.Updated != "" {
		lines = append(lines, p.renderRow("updated", p.data.Updated))
	}
	return strings.Join(lines, "\n")
}

func (p *DetailPane) renderPhotoSection() string {
	lines := []string{
		detailSectionStyle.Render("photo"),
		p.renderDivider(),
	}
	if p.data.PhotoPath == "" {
		lines = append(lines, detailLabelStyle.Render("status")+
			lipgloss.NewStyle().Foreground(ColorYellow).Render("missing"))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, p.renderRow("file", p.data.PhotoPath))
	if p.data.PhotoSource != "" {
		lines = append(lines, p.renderRow("source", p.data.PhotoSource))
	}
	if p.data.PhotoAssigned != "" {
		lines = append(lines, p.renderRow("assigned", p.data.PhotoAssigned))
	}
	if p.data.ThumbnailPx > 0 {
		lines = append(lines, p.renderRow("thumbnail", fmt.Sprintf("%dpx", p.data.ThumbnailPx)))
	}
	return strings.Join(lines, "\n")
}

func (p *DetailPane) renderNotesSection() string {
	lines := []string{
		detailSectionStyle.Render("notes"),
		p.renderDivider(),
	}
	if p.data.RenderedNotes != "" {
		lines = append(lines, strings.TrimRight(p.data.RenderedNotes, "\n"))
	} else {
		wrap := p.width - 2
		if wrap < 20 {
			wrap = 20
		}
		lines = append(lines, wordwrap.String(p.data.RawNotes, wrap))
	}
	return strings.Join(lines, "\n")
}

// render builds the content string. Called internally when data changes.
func (p *DetailPane) render() string {
	if !p.data.HasPerson {
		return "no person selected"
	}

	sections := []string{
		p.renderPersonSection(),
		p.renderPhotoSection(),
	}
	if p.data.RawNotes != "" || p.data.RenderedNotes != "" {
		sections = append(sections, p.renderNotesSection())
	}

	return strings.Join(sections, "\n\n")
}
