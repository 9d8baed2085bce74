package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/classkit/rollcall/roster"
)

// PersonRenderer renders roster.Person rows for the list.
type PersonRenderer struct {
	width int
}

func (r *PersonRenderer) setWidth(width int) {
	r.width = AdjustPaneWidth(width)
}

func (r *PersonRenderer) Render(p roster.Person, selected bool, focused bool, rowIndex int) string {
	prefix := " "
	titleS := selectedTitleStyle
	descS := selectedDescStyle

	if selected && !focused {
		titleS = activeTitleStyle
		descS = activeDescStyle
	} else if !selected {
		if rowIndex%2 == 1 {
			titleS = evenRowTitleStyle
			descS = evenRowDescStyle
		} else {
			titleS = titleStyle
			descS = listDescStyle
		}
	}

	// Photo status icon inherits the row background so it doesn't break the
	// row color.
	titleBg := titleS.GetBackground()
	var join string
	if p.HasPhoto() {
		join = photoStyle.Background(titleBg).Render(photoIcon)
	} else {
		join = noPhotoStyle.Background(titleBg).Render(noPhotoIcon)
	}

	titleText := p.SortName()
	if p.Role == roster.RoleStaff {
		titleText = staffBadgeStyle.Background(titleBg).Render(staffIcon) + titleText
	}

	widthAvail := r.width - 3 - runewidth.StringWidth(prefix) - 1
	if widthAvail > 0 && runewidth.StringWidth(titleText) > widthAvail {
		titleText = runewidth.Truncate(titleText, widthAvail-3, "...")
	}

	titleContent := fmt.Sprintf("%s %s", prefix, titleText)
	titleContentWidth := runewidth.StringWidth(ansi.Strip(titleContent))
	joinWidth := runewidth.StringWidth(ansi.Strip(join))
	titlePad := r.width - titleContentWidth - joinWidth
	if titlePad < 1 {
		titlePad = 1
	}
	titleLine := titleContent + strings.Repeat(" ", titlePad) + join
	title := titleS.Width(r.width).Render(titleLine)

	detail := p.Email
	if detail == "" {
		detail = "no email"
	}
	if n := len(p.GroupIDs); n == 1 {
		detail += " · 1 group"
	} else if n > 1 {
		detail += fmt.Sprintf(" · %d groups", n)
	}

	remainingWidth := r.width - runewidth.StringWidth(prefix) - 1
	if remainingWidth < 0 {
		detail = ""
	} else if runewidth.StringWidth(detail) > remainingWidth {
		if remainingWidth < 3 {
			detail = ""
		} else {
			detail = runewidth.Truncate(detail, remainingWidth-3, "...")
		}
	}

	detailLine := fmt.Sprintf("%s %s", prefix, detail)
	desc := descS.Width(r.width).Render(detailLine)

	return lipgloss.JoinVertical(lipgloss.Left, title, desc)
}
