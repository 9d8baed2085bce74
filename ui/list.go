package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/classkit/rollcall/roster"
)

// List is the people panel. It renders the display list pushed into it by the
// application; filtering and sorting happen upstream so the list never holds
// more state than what it draws.
type List struct {
	people        []roster.Person
	selectedIdx   int
	height, width int
	renderer      *PersonRenderer
	focused       bool

	filter roster.StatusFilter
	sort   roster.SortMode
	query  string

	scrollOffset int // line offset from top of rendered item content
}

func NewList() *List {
	return &List{
		people:   []roster.Person{},
		renderer: &PersonRenderer{},
		focused:  true,
	}
}

func (l *List) SetFocused(focused bool) {
	l.focused = focused
}

// SetPeople replaces the display list and re-anchors the selection on the
// person with selectedID. An unknown or empty ID selects the first row.
func (l *List) SetPeople(people []roster.Person, selectedID string) {
	l.people = people
	l.selectedIdx = 0
	for i, p := range people {
		if p.ID == selectedID {
			l.selectedIdx = i
			break
		}
	}
	l.ensureSelectedVisible()
}

// SetFilterContext updates the header row (tabs, sort label, search badge).
func (l *List) SetFilterContext(filter roster.StatusFilter, sort roster.SortMode, query string) {
	l.filter = filter
	l.sort = sort
	l.query = query
}

// Selected returns a copy of the selected person, or nil when the list is empty.
func (l *List) Selected() *roster.Person {
	if len(l.people) == 0 || l.selectedIdx >= len(l.people) {
		return nil
	}
	p := l.people[l.selectedIdx]
	return &p
}

// SelectedID returns the selected person's ID, or "" when the list is empty.
func (l *List) SelectedID() string {
	if p := l.Selected(); p != nil {
		return p.ID
	}
	return ""
}

// SelectedIndex returns the current selection index.
func (l *List) SelectedIndex() int {
	return l.selectedIdx
}

func (l *List) NumPeople() int {
	return len(l.people)
}

// Down selects the next row in the list.
func (l *List) Down() {
	if len(l.people) == 0 {
		return
	}
	if l.selectedIdx < len(l.people)-1 {
		l.selectedIdx++
	}
	l.ensureSelectedVisible()
}

// Up selects the previous row in the list.
func (l *List) Up() {
	if len(l.people) == 0 {
		return
	}
	if l.selectedIdx > 0 {
		l.selectedIdx--
	}
	l.ensureSelectedVisible()
}

// CycleNext selects the next row, wrapping to the beginning at the end.
func (l *List) CycleNext() {
	if len(l.people) == 0 {
		return
	}
	l.selectedIdx = (l.selectedIdx + 1) % len(l.people)
	l.ensureSelectedVisible()
}

// CyclePrev selects the previous row, wrapping to the end at the beginning.
func (l *List) CyclePrev() {
	if len(l.people) == 0 {
		return
	}
	l.selectedIdx = (l.selectedIdx - 1 + len(l.people)) % len(l.people)
	l.ensureSelectedVisible()
}

// Select sets the selection index. Noop if the index is out of bounds.
func (l *List) Select(idx int) {
	if idx < 0 || idx >= len(l.people) {
		return
	}
	l.selectedIdx = idx
	l.ensureSelectedVisible()
}

// allTabText and missingTabText are the rendered tab labels with hotkey indicators.
const allTabText = "1 All"
const missingTabText = "2 Missing"

// HandleTabClick checks if a click at the given local coordinates (relative to
// the list's top-left corner) hits a filter tab. Returns the filter and true if
// a tab was clicked, or false if the click was outside the tab area.
func (l *List) HandleTabClick(localX, localY int) (roster.StatusFilter, bool) {
	// The tab row is rendered near the top, inside the bordered panel. Accept
	// clicks on rows 1-3 to cover the tab area generously, since the exact row
	// depends on how lipgloss.Place renders the output.
	if localY < 1 || localY > 3 {
		return 0, false
	}

	// Tab widths include Padding(0,1) so 1 char padding on each side.
	allWidth := len(allTabText) + 2
	missingWidth := len(missingTabText) + 2

	if localX >= 0 && localX < allWidth {
		return roster.FilterAll, true
	} else if localX >= allWidth && localX < allWidth+missingWidth {
		return roster.FilterMissingPhoto, true
	}
	return 0, false
}

// SetSize sets the height and width of the list.
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	// Renderer content width must fit inside the border (borderH=6 removes
	// border+padding+gap) AND inside the item styles' 2 chars of horizontal
	// padding, so pass width - 6 and let AdjustPaneWidth take the rest.
	l.renderer.setWidth(width - 6)
	l.ensureSelectedVisible()
}

func (l *List) String() string {
	// Border frame: 2 border + 2 padding = 4 chars horizontal, 2 chars vertical.
	const borderH = 4
	const borderV = 2

	innerWidth := l.width - borderH
	if innerWidth < 8 {
		innerWidth = 8
	}

	// Header: tabs + sort label row, then a blank line.
	var header strings.Builder

	titleWidth := AdjustPaneWidth(innerWidth) + 2

	allTab := inactiveFilterTab
	missingTab := inactiveFilterTab
	if l.filter == roster.FilterMissingPhoto {
		missingTab = activeFilterTab
	} else {
		allTab = activeFilterTab
	}

	tabs := lipgloss.JoinHorizontal(lipgloss.Bottom,
		allTab.Render(allTabText),
		missingTab.Render(missingTabText),
	)

	sortLabel := sortDropdownStyle.Render("3  " + sortModeLabels[l.sort])

	if l.query == "" {
		left := tabs
		right := sortLabel
		gap := titleWidth - runewidth.StringWidth(left) - runewidth.StringWidth(right)
		if gap < 1 {
			gap = 1
		}
		header.WriteString(left + strings.Repeat(" ", gap) + right)
	} else {
		left := tabs + " " + sortLabel
		search := searchBadgeStyle.Render("/" + l.query)
		gap := titleWidth - runewidth.StringWidth(left) - runewidth.StringWidth(search)
		if gap < 1 {
			gap = 1
		}
		header.WriteString(left + strings.Repeat(" ", gap) + search)
	}

	header.WriteString("\n")
	header.WriteString("\n")

	var content strings.Builder
	for i, p := range l.people {
		content.WriteString(l.renderer.Render(p, i == l.selectedIdx, l.focused, i))
		if i != len(l.people)-1 {
			content.WriteString("\n")
		}
	}

	// Slice content to the visible window.
	allLines := strings.Split(content.String(), "\n")
	avail := l.availContentLines()
	start := l.scrollOffset
	if start > len(allLines) {
		start = len(allLines)
	}
	end := start + avail
	if end > len(allLines) {
		end = len(allLines)
	}
	visible := strings.Join(allLines[start:end], "\n")

	borderStyle := listBorderStyle
	if l.focused {
		borderStyle = borderStyle.Border(lipgloss.DoubleBorder()).BorderForeground(ColorBlue)
	}
	innerHeight := l.height - borderV
	if innerHeight < 4 {
		innerHeight = 4
	}
	bordered := borderStyle.Width(innerWidth).Height(innerHeight).Render(header.String() + visible)
	placed := lipgloss.Place(l.width, l.height, lipgloss.Left, lipgloss.Top, bordered)

	// Hard-clip to l.height lines to prevent overflow from header wrapping.
	placedLines := strings.Split(placed, "\n")
	if len(placedLines) > l.height {
		placedLines = placedLines[:l.height]
	}
	return strings.Join(placedLines, "\n")
}

// itemStartLine returns the line offset (0-based) where item idx begins in the
// rendered content buffer (items only, excluding the 2-line header).
func (l *List) itemStartLine(idx int) int {
	return idx * l.itemHeight()
}

// availContentLines returns the number of lines available for item content
// inside the border, excluding the 2-line header (tabs + blank line).
func (l *List) availContentLines() int {
	const borderV = 2
	const headerLines = 2
	avail := l.height - borderV - headerLines
	if avail < 1 {
		avail = 1
	}
	return avail
}

// ensureSelectedVisible adjusts scrollOffset so the selected row is fully
// visible. When a row is taller than the viewport, its top edge wins.
func (l *List) ensureSelectedVisible() {
	if len(l.people) == 0 {
		l.scrollOffset = 0
		return
	}
	avail := l.availContentLines()
	start := l.itemStartLine(l.selectedIdx)
	end := start + l.itemHeight() - 1

	if start < l.scrollOffset {
		l.scrollOffset = start
	}
	if end >= l.scrollOffset+avail {
		l.scrollOffset = end - avail + 1
		if l.scrollOffset > start {
			l.scrollOffset = start
		}
	}
	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}
}

// itemHeight returns the rendered row count for a person entry.
// Title style has Padding(1,0,0,1) top, desc style has Padding(0,1,1,1) bottom,
// so a 2-line entry renders as 4 rows.
func (l *List) itemHeight() int {
	return 4
}

// GetItemAtRow maps a row offset (relative to the first item) to an item index.
// Returns -1 if the row doesn't correspond to any row.
func (l *List) GetItemAtRow(row int) int {
	if row < 0 {
		return -1
	}
	idx := row / l.itemHeight()
	if idx >= len(l.people) {
		return -1
	}
	return idx
}
