package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/classkit/rollcall/roster"
)

// sidebarBorderStyle wraps the entire sidebar content in a subtle rounded border
var sidebarBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorOverlay).
	Padding(0, 1)

var groupItemStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Foreground(ColorText)

// selectedGroupStyle is the focused selection: blue bg on dark base
var selectedGroupStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Background(ColorBlue).
	Foreground(ColorBase)

// activeGroupStyle is the unfocused selection: muted overlay bg
var activeGroupStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Background(ColorOverlay).
	Foreground(ColorText)

var sectionHeaderStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Padding(0, 1)

var searchBarStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorOverlay).
	Padding(0, 1)

var searchActiveBarStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorCyan).
	Padding(0, 1)

var sidebarPhotoStyle = lipgloss.NewStyle().
	Foreground(ColorGreen)

// Legend styles for the status indicator key at the bottom of the sidebar.
var legendLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
var legendSepStyle = lipgloss.NewStyle().Foreground(ColorOverlay)
var legendMissingStyle = lipgloss.NewStyle().Foreground(ColorMuted)

// SidebarAll is the item ID for the "All people" row.
const SidebarAll = "__all__"

// SidebarItem represents a selectable item in the sidebar.
type SidebarItem struct {
	Name       string
	ID         string // group ID, or SidebarAll
	IsSection  bool
	Count      int
	MatchCount int // search match count (-1 = not searching)
}

// Sidebar is the left-most panel showing groups and search.
type Sidebar struct {
	items         []SidebarItem
	selectedIdx   int
	height, width int
	focused       bool

	searchActive bool
	searchQuery  string

	coverage roster.Coverage // shown at the bottom
}

func NewSidebar() *Sidebar {
	return &Sidebar{
		items: []SidebarItem{
			{Name: "All people", ID: SidebarAll},
		},
		selectedIdx: 0,
	}
}

func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetCoverage updates the photo coverage summary shown at the bottom.
func (s *Sidebar) SetCoverage(c roster.Coverage) {
	s.coverage = c
}

// SetGroups rebuilds the sidebar items from the current groups. The selection
// is restored by item ID so reordering doesn't move the cursor.
func (s *Sidebar) SetGroups(groups []roster.Group, memberCount map[string]int, totalPeople int) {
	items := []SidebarItem{
		{Name: "All people", ID: SidebarAll, Count: totalPeople, MatchCount: -1},
	}

	if len(groups) > 0 {
		items = append(items, SidebarItem{Name: "Groups", IsSection: true})
		for _, g := range groups {
			items = append(items, SidebarItem{
				Name:       g.Name,
				ID:         g.ID,
				Count:      memberCount[g.ID],
				MatchCount: -1,
			})
		}
	}

	prevID := ""
	if s.selectedIdx >= 0 && s.selectedIdx < len(s.items) {
		prevID = s.items[s.selectedIdx].ID
	}

	s.items = items

	if prevID != "" {
		for i, item := range items {
			if item.ID == prevID {
				s.selectedIdx = i
				return
			}
		}
	}

	if s.selectedIdx >= len(items) {
		s.selectedIdx = len(items) - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// UpdateMatchCounts sets per-group search match counts shown during search.
func (s *Sidebar) UpdateMatchCounts(matchesByGroup map[string]int, totalMatches int) {
	for i := range s.items {
		if s.items[i].IsSection {
			continue
		}
		if s.items[i].ID == SidebarAll {
			s.items[i].MatchCount = totalMatches
			continue
		}
		s.items[i].MatchCount = matchesByGroup[s.items[i].ID]
	}
}

// GetSelectedID returns the selected group ID, or SidebarAll.
func (s *Sidebar) GetSelectedID() string {
	if len(s.items) == 0 {
		return SidebarAll
	}
	return s.items[s.selectedIdx].ID
}

// GetSelectedGroupID returns the selected group ID, or "" when "All people"
// is selected.
func (s *Sidebar) GetSelectedGroupID() string {
	id := s.GetSelectedID()
	if id == SidebarAll {
		return ""
	}
	return id
}

// GetSelectedIdx returns the index of the currently selected item.
func (s *Sidebar) GetSelectedIdx() int {
	return s.selectedIdx
}

func (s *Sidebar) Up() {
	for i := s.selectedIdx - 1; i >= 0; i-- {
		if !s.items[i].IsSection {
			s.selectedIdx = i
			return
		}
	}
}

func (s *Sidebar) Down() {
	for i := s.selectedIdx + 1; i < len(s.items); i++ {
		if !s.items[i].IsSection {
			s.selectedIdx = i
			return
		}
	}
}

// SelectFirst moves the selection back to "All people".
func (s *Sidebar) SelectFirst() {
	s.selectedIdx = 0
}

// SelectByID selects the item with the given ID. Returns true if found.
func (s *Sidebar) SelectByID(id string) bool {
	for i, item := range s.items {
		if !item.IsSection && item.ID == id {
			s.selectedIdx = i
			return true
		}
	}
	return false
}

// ClickItem maps a row offset (relative to the first item, after the search
// bar) to an item and selects it. Section headers are not selectable.
func (s *Sidebar) ClickItem(row int) {
	if row < 0 || row >= len(s.items) {
		return
	}
	if s.items[row].IsSection {
		return
	}
	s.selectedIdx = row
}

func (s *Sidebar) ActivateSearch()         { s.searchActive = true; s.searchQuery = "" }
func (s *Sidebar) DeactivateSearch()       { s.searchActive = false; s.searchQuery = "" }
func (s *Sidebar) IsSearchActive() bool    { return s.searchActive }
func (s *Sidebar) GetSearchQuery() string  { return s.searchQuery }
func (s *Sidebar) SetSearchQuery(q string) { s.searchQuery = q }

func (s *Sidebar) String() string {
	borderStyle := sidebarBorderStyle
	if s.focused {
		borderStyle = borderStyle.Border(lipgloss.DoubleBorder()).BorderForeground(ColorBlue)
	} else {
		borderStyle = borderStyle.BorderForeground(ColorOverlay)
	}

	// Inner width accounts for border (2) + border padding (2) = 4
	innerWidth := s.width - 4
	if innerWidth < 8 {
		innerWidth = 8
	}

	var b strings.Builder

	// Search bar
	searchWidth := innerWidth - 4 // search bar has its own border+padding
	if searchWidth < 4 {
		searchWidth = 4
	}
	if s.searchActive {
		searchText := s.searchQuery
		if searchText == "" {
			searchText = " "
		}
		b.WriteString(searchActiveBarStyle.Width(searchWidth).Render(searchText))
	} else {
		b.WriteString(searchBarStyle.Width(searchWidth).Render(" search"))
	}
	b.WriteString("\n\n")

	// Items
	itemWidth := innerWidth - 2 // item padding
	if itemWidth < 4 {
		itemWidth = 4
	}
	for i, item := range s.items {
		// During search, hide section headers and groups with 0 matches
		if s.searchActive && s.searchQuery != "" {
			if item.IsSection {
				continue
			}
			if item.ID != SidebarAll && item.MatchCount == 0 {
				continue
			}
		}

		if item.IsSection {
			b.WriteString(sectionHeaderStyle.Render("── " + item.Name + " ──"))
			b.WriteString("\n")
			continue
		}

		// Content area = itemWidth - 2 (Padding(0,1) in item styles)
		contentWidth := itemWidth - 2

		displayCount := item.Count
		if s.searchActive && item.MatchCount >= 0 {
			displayCount = item.MatchCount
		}
		countSuffix := ""
		if displayCount > 0 {
			countSuffix = fmt.Sprintf(" (%d)", displayCount)
		}

		nameText := item.Name
		maxName := contentWidth - 1 - runewidth.StringWidth(countSuffix)
		if maxName < 3 {
			maxName = 3
		}
		if runewidth.StringWidth(nameText) > maxName {
			nameText = runewidth.Truncate(nameText, maxName-1, "…")
		}

		cursor := " "
		if i == s.selectedIdx {
			cursor = "▸"
		}

		line := cursor + nameText + countSuffix

		if i == s.selectedIdx && s.focused {
			b.WriteString(selectedGroupStyle.Width(itemWidth).Render(line))
		} else if i == s.selectedIdx && !s.focused {
			b.WriteString(activeGroupStyle.Width(itemWidth).Render(line))
		} else {
			b.WriteString(groupItemStyle.Width(itemWidth).Render(line))
		}
		b.WriteString("\n")
	}

	topContent := b.String()

	// Photo legend pinned at the bottom.
	legend := sidebarPhotoStyle.Render("●") + legendLabelStyle.Render(" photo") +
		legendSepStyle.Render("  ") +
		legendMissingStyle.Render("○") + legendLabelStyle.Render(" missing")

	coverageLine := legendLabelStyle.Render(
		fmt.Sprintf("%d/%d photos (%d%%)", s.coverage.WithPhoto, s.coverage.Total, s.coverage.Percent()))

	bottomSection := legend + "\n" + coverageLine

	// Wrap content in the subtle rounded border; use full available height
	borderHeight := s.height - 2
	if borderHeight < 4 {
		borderHeight = 4
	}

	topLines := strings.Count(topContent, "\n") + 1
	bottomLines := strings.Count(bottomSection, "\n") + 1
	gap := borderHeight - topLines - bottomLines + 1
	if gap < 1 {
		gap = 1
	}
	innerContent := topContent + strings.Repeat("\n", gap) + bottomSection

	bordered := borderStyle.Width(innerWidth).Height(borderHeight).Render(innerContent)
	placed := lipgloss.Place(s.width, s.height, lipgloss.Left, lipgloss.Top, bordered)

	// Hard-clip to s.height lines.
	placedLines := strings.Split(placed, "\n")
	if len(placedLines) > s.height {
		placedLines = placedLines[:s.height]
	}
	return strings.Join(placedLines, "\n")
}
