package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PlaceOverlay composites fg on top of bg at the given cell position. When
// center is true, x and y are ignored and fg is centered in bg. ANSI styling
// in both layers is preserved.
func PlaceOverlay(x, y int, fg, bg string, center bool) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	fgWidth := 0
	for _, line := range fgLines {
		if w := ansi.StringWidth(line); w > fgWidth {
			fgWidth = w
		}
	}
	fgHeight := len(fgLines)

	bgWidth := 0
	for _, line := range bgLines {
		if w := ansi.StringWidth(line); w > bgWidth {
			bgWidth = w
		}
	}
	bgHeight := len(bgLines)

	if center {
		x = (bgWidth - fgWidth) / 2
		y = (bgHeight - fgHeight) / 2
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	out := make([]string, bgHeight)
	copy(out, bgLines)

	for i, fgLine := range fgLines {
		row := y + i
		if row >= bgHeight {
			break
		}
		bgLine := out[row]
		if ansi.StringWidth(bgLine) < x {
			bgLine += strings.Repeat(" ", x-ansi.StringWidth(bgLine))
		}

		left := ansi.Truncate(bgLine, x, "")
		right := ""
		if x+ansi.StringWidth(fgLine) < ansi.StringWidth(bgLine) {
			right = ansi.TruncateLeft(bgLine, x+ansi.StringWidth(fgLine), "")
		}
		out[row] = left + fgLine + right
	}

	return strings.Join(out, "\n")
}
